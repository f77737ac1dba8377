package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Renal37/laundry-service/internal/middlewares"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/utils"
)

// OrderRequest is the body of POST /api/orders. Price fields sent by the
// client are not part of it and are therefore ignored.
type OrderRequest struct {
	OrderType     models.OrderType          `json:"orderType"`
	Items         []models.ItemRequest      `json:"items"`
	IronService   models.IronServiceRequest `json:"ironService"`
	GuestInfo     *models.ContactInfo       `json:"guestInfo"`
	PickupDate    *utils.RFC3339Date        `json:"pickupDate"`
	DeliveryDate  *utils.RFC3339Date        `json:"deliveryDate"`
	PaymentMethod string                    `json:"paymentMethod"`
	Notes         string                    `json:"notes"`
}

type StatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	data := middlewares.GetParsedJSONData[OrderRequest](w, r)
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)
	user := middlewares.OptionalUserFromContext(r)

	var customer models.Customer
	switch data.OrderType {
	case models.OrderTypeUser:
		if user == nil {
			http.Error(w, "Authentication required for user orders", http.StatusUnauthorized)
			return
		}
		customer = models.UserCustomer{UserID: user.ID}
	case models.OrderTypeGuest:
		var info models.ContactInfo
		if data.GuestInfo != nil {
			info = *data.GuestInfo
		}
		customer = models.GuestCustomer{Info: info}
	case "":
		if user != nil {
			customer = models.UserCustomer{UserID: user.ID}
		} else if data.GuestInfo != nil {
			customer = models.GuestCustomer{Info: *data.GuestInfo}
		}
	default:
		http.Error(w, "Unknown order type", http.StatusBadRequest)
		return
	}

	paymentMethod, ok := models.ParsePaymentMethod(data.PaymentMethod)
	if !ok {
		http.Error(w, "Unknown payment method", http.StatusBadRequest)
		return
	}

	order, err := (*orderService).SubmitOrder(r.Context(), models.OrderSubmission{
		Customer:      customer,
		Items:         data.Items,
		IronService:   data.IronService,
		PickupDate:    optionalTime(data.PickupDate),
		DeliveryDate:  optionalTime(data.DeliveryDate),
		PaymentMethod: paymentMethod,
		Notes:         data.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err, "submit order")
		return
	}

	middlewares.EncodeJSONResponseWithStatus(w, http.StatusCreated, order)
}

func optionalTime(d *utils.RFC3339Date) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

func GetMyOrders(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	orders, err := (*orderService).GetUserOrders(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, r, err, "get user orders")
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

func GetOrder(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).GetOrder(r.Context(), chi.URLParam(r, "id"), user)
	if err != nil {
		writeServiceError(w, r, err, "get order")
		return
	}

	middlewares.EncodeJSONResponse(w, order)
}

// ListOrders serves the admin order board, optionally filtered by ?status=.
func ListOrders(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	filter := models.OrderFilter{Status: models.OrderStatus(r.URL.Query().Get("status"))}

	orders, err := (*orderService).ListOrders(r.Context(), user, filter)
	if err != nil {
		writeServiceError(w, r, err, "list orders")
		return
	}

	middlewares.EncodeJSONResponse(w, orders)
}

func UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	user := middlewares.GetUserFromContext(w, r)
	if user == nil {
		return
	}

	data := middlewares.GetParsedJSONData[StatusRequest](w, r)
	orderService := middlewares.GetServiceFromContext[models.OrderService](w, r, middlewares.OrderServiceKey)

	order, err := (*orderService).SetStatus(r.Context(), chi.URLParam(r, "id"), data.Status, user)
	if err != nil {
		writeServiceError(w, r, err, "update order status")
		return
	}

	middlewares.EncodeJSONResponse(w, order)
}
