package services

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Renal37/laundry-service/internal/logger"
	"github.com/Renal37/laundry-service/internal/metrics"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/pricing"
)

// PricingService prices estimates and submitted orders against one rate table,
// so both produce identical numbers for identical input.
type PricingService struct {
	rates   pricing.RateTable
	metrics *metrics.Recorder
}

func NewPricingService(rates pricing.RateTable, recorder *metrics.Recorder) *PricingService {
	return &PricingService{rates: rates, metrics: recorder}
}

func (p *PricingService) Calculate(req models.PricingRequest) (models.PricingBreakdown, error) {
	p.metrics.PricingRequested()

	breakdown, err := pricing.Compute(p.rates, req.Items, req.IronService)
	if err != nil {
		if errors.Is(err, models.ErrConfiguration) {
			logger.Log.Error("rate table cannot price request", zap.Error(err))
		}
		return models.PricingBreakdown{}, err
	}

	return breakdown, nil
}

func (p *PricingService) RateCard() models.RateCard {
	return models.RateCard{
		Tiers:         p.rates.Tiers(),
		IronRatePerKg: p.rates.IronRatePerKg(),
	}
}
