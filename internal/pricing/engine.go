package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Renal37/laundry-service/internal/models"
)

const (
	// DiscountThresholdKg is the laundry weight from which the order discount applies.
	// Iron add-on weight does not count towards it.
	DiscountThresholdKg = 3.0
	// OrderDiscountPercentage is taken off the item subtotal, never off the iron cost.
	OrderDiscountPercentage = 5.0
)

// Compute prices items and the iron add-on against rates. It does not modify
// its inputs and returns the same breakdown for the same arguments.
func Compute(rates RateTable, items []models.ItemRequest, iron models.IronServiceRequest) (models.PricingBreakdown, error) {
	if err := validate(items, iron); err != nil {
		return models.PricingBreakdown{}, err
	}

	priced := make([]models.OrderItem, 0, len(items))
	var subtotal, qualifyingWeight float64

	for _, item := range items {
		quote, err := rates.PriceFor(item.ServiceType, item.Weight)
		if err != nil {
			return models.PricingBreakdown{}, err
		}

		priced = append(priced, models.OrderItem{
			ServiceType: item.ServiceType,
			Weight:      item.Weight,
			PricePerKg:  quote.PricePerKg,
			LineTotal:   quote.LineTotal,
		})
		subtotal += quote.LineTotal
		qualifyingWeight += item.Weight
	}

	ironService := models.IronService{PricePerKg: rates.IronRatePerKg()}
	if iron.Requested {
		ironService.Requested = true
		ironService.Weight = iron.Weight
		ironService.LineTotal = iron.Weight * ironService.PricePerKg
	}

	var discountPercentage float64
	if qualifyingWeight >= DiscountThresholdKg {
		discountPercentage = OrderDiscountPercentage
	}
	discountAmount := subtotal * discountPercentage / 100

	total := subtotal - discountAmount + ironService.LineTotal
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return models.PricingBreakdown{}, models.NewValidationError("order is too large to price")
	}

	return models.PricingBreakdown{
		Items:              priced,
		IronService:        ironService,
		Subtotal:           subtotal,
		DiscountPercentage: discountPercentage,
		DiscountAmount:     discountAmount,
		Total:              RoundMoney(total),
	}, nil
}

// RoundMoney rounds to two decimal places, halves away from zero.
func RoundMoney(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

func validate(items []models.ItemRequest, iron models.IronServiceRequest) error {
	for i, item := range items {
		if !item.ServiceType.Valid() {
			return models.NewValidationError("item %d: unknown service type %q", i+1, item.ServiceType)
		}
		if !(item.Weight > 0) || math.IsInf(item.Weight, 0) {
			return models.NewValidationError("item %d: weight must be a positive number", i+1)
		}
	}

	if iron.Requested && (!(iron.Weight >= 0) || math.IsInf(iron.Weight, 0)) {
		return models.NewValidationError("iron service weight must not be negative")
	}

	return nil
}
