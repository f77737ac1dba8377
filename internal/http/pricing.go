package router

import (
	"net/http"

	"github.com/Renal37/laundry-service/internal/middlewares"
	"github.com/Renal37/laundry-service/internal/models"
)

func GetRateCard(w http.ResponseWriter, r *http.Request) {
	pricingService := middlewares.GetServiceFromContext[models.PricingService](w, r, middlewares.PricingServiceKey)

	middlewares.EncodeJSONResponse(w, (*pricingService).RateCard())
}

// CalculatePrice returns the estimate a client shows before submitting an order.
func CalculatePrice(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[models.PricingRequest](w, r)
	pricingService := middlewares.GetServiceFromContext[models.PricingService](w, r, middlewares.PricingServiceKey)

	breakdown, err := (*pricingService).Calculate(data)
	if err != nil {
		writeServiceError(w, r, err, "calculate price")
		return
	}

	middlewares.EncodeJSONResponse(w, breakdown)
}
