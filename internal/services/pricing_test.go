package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/laundry-service/internal/metrics"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/pricing"
)

func TestPricingServiceCalculate(t *testing.T) {
	service := NewPricingService(pricing.DefaultRateTable(), metrics.New())

	breakdown, err := service.Calculate(models.PricingRequest{
		Items:       []models.ItemRequest{{ServiceType: models.ServiceWash, Weight: 0.5}},
		IronService: models.IronServiceRequest{Requested: false, Weight: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 15.0, breakdown.Subtotal)
	assert.Equal(t, 0.0, breakdown.DiscountPercentage)
	assert.Equal(t, 0.0, breakdown.IronService.LineTotal)
	assert.Equal(t, 15.0, breakdown.Total)

	_, err = service.Calculate(models.PricingRequest{
		Items: []models.ItemRequest{{ServiceType: "starch", Weight: 1}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestPricingServiceRateCard(t *testing.T) {
	card := NewPricingService(pricing.DefaultRateTable(), nil).RateCard()

	assert.Equal(t, pricing.DefaultIronRatePerKg, card.IronRatePerKg)
	require.Len(t, card.Tiers, 9)
	assert.Equal(t, models.ServiceWash, card.Tiers[0].ServiceType)
	assert.Equal(t, 30.0, card.Tiers[0].PricePerKg)
}
