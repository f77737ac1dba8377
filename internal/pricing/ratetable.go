// Package pricing turns item weights into priced order breakdowns.
//
// A RateTable is built once, validated, and then only read. Compute takes the
// table as an argument so every caller prices against an explicit value.
package pricing

import (
	"math"
	"sort"

	"github.com/Renal37/laundry-service/internal/models"
)

// DefaultIronRatePerKg is the add-on ironing price.
const DefaultIronRatePerKg = 5.0

// FallbackRates are the flat per-kg prices used for a service type that has
// no tiers configured.
var FallbackRates = map[models.ServiceType]float64{
	models.ServiceWash:     30,
	models.ServiceDryClean: 50,
	models.ServiceIron:     15,
}

// Quote is the price of one item.
type Quote struct {
	PricePerKg float64
	LineTotal  float64
}

// RateTable maps a service type and weight to a per-kg price.
//
// Tiers of one service type cover [0, +inf) without gaps. A weight sitting on
// a boundary belongs to the lower tier, and weights above the highest tier's
// MaxWeight use the highest tier. The zero value has no tiers and prices
// everything at FallbackRates.
type RateTable struct {
	tiers    map[models.ServiceType][]models.RateTier
	ironRate float64
	ironSet  bool
}

// NewRateTable validates tiers and builds an immutable table. Any
// inconsistency is reported as a *models.ConfigurationError.
func NewRateTable(tiers []models.RateTier, ironRatePerKg float64) (RateTable, error) {
	if math.IsNaN(ironRatePerKg) || math.IsInf(ironRatePerKg, 0) || ironRatePerKg < 0 {
		return RateTable{}, models.NewConfigurationError("iron rate must be a non-negative number, got %v", ironRatePerKg)
	}

	grouped := make(map[models.ServiceType][]models.RateTier)
	for i, tier := range tiers {
		if err := checkTier(i, tier); err != nil {
			return RateTable{}, err
		}
		grouped[tier.ServiceType] = append(grouped[tier.ServiceType], tier)
	}

	for serviceType, ladder := range grouped {
		sort.Slice(ladder, func(i, j int) bool { return ladder[i].MinWeight < ladder[j].MinWeight })

		if ladder[0].MinWeight != 0 {
			return RateTable{}, models.NewConfigurationError("%s tiers must start at 0kg, first starts at %vkg", serviceType, ladder[0].MinWeight)
		}
		for i := 1; i < len(ladder); i++ {
			if ladder[i-1].MaxWeight != ladder[i].MinWeight {
				return RateTable{}, models.NewConfigurationError(
					"%s tiers are not contiguous: %vkg-%vkg is followed by %vkg-%vkg",
					serviceType, ladder[i-1].MinWeight, ladder[i-1].MaxWeight, ladder[i].MinWeight, ladder[i].MaxWeight,
				)
			}
		}
	}

	return RateTable{tiers: grouped, ironRate: ironRatePerKg, ironSet: true}, nil
}

func checkTier(index int, tier models.RateTier) error {
	if !tier.ServiceType.Valid() {
		return models.NewConfigurationError("tier %d: unknown service type %q", index, tier.ServiceType)
	}
	for _, v := range []float64{tier.MinWeight, tier.MaxWeight, tier.PricePerKg, tier.DiscountPercentage} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return models.NewConfigurationError("tier %d: values must be finite numbers", index)
		}
	}
	if tier.MinWeight < 0 || tier.MaxWeight <= tier.MinWeight {
		return models.NewConfigurationError("tier %d: invalid weight range %vkg-%vkg", index, tier.MinWeight, tier.MaxWeight)
	}
	if tier.PricePerKg < 0 {
		return models.NewConfigurationError("tier %d: price per kg must not be negative", index)
	}
	if tier.DiscountPercentage < 0 || tier.DiscountPercentage > 100 {
		return models.NewConfigurationError("tier %d: discount percentage must be within 0-100", index)
	}
	return nil
}

// DefaultRateTable is the stock price ladder used when no rate table file is
// configured.
func DefaultRateTable() RateTable {
	table, err := NewRateTable(defaultTiers(), DefaultIronRatePerKg)
	if err != nil {
		panic(err)
	}
	return table
}

// FallbackRateTable prices every service type at its flat fallback rate.
func FallbackRateTable() RateTable {
	return RateTable{ironRate: DefaultIronRatePerKg, ironSet: true}
}

func defaultTiers() []models.RateTier {
	ladder := func(serviceType models.ServiceType, first, second, third float64) []models.RateTier {
		return []models.RateTier{
			{ServiceType: serviceType, MinWeight: 0, MaxWeight: 1, PricePerKg: first},
			{ServiceType: serviceType, MinWeight: 1, MaxWeight: 2, PricePerKg: second},
			{ServiceType: serviceType, MinWeight: 2, MaxWeight: 999, PricePerKg: third, DiscountPercentage: 5},
		}
	}

	tiers := ladder(models.ServiceWash, 30, 29, 28)
	tiers = append(tiers, ladder(models.ServiceDryClean, 50, 48, 45)...)
	return append(tiers, ladder(models.ServiceIron, 15, 14, 13)...)
}

func (t RateTable) IronRatePerKg() float64 {
	if !t.ironSet {
		return DefaultIronRatePerKg
	}
	return t.ironRate
}

// Tiers returns a copy of the configured tiers ordered by service type and weight.
func (t RateTable) Tiers() []models.RateTier {
	result := make([]models.RateTier, 0)
	for _, serviceType := range models.ServiceTypes {
		result = append(result, t.tiers[serviceType]...)
	}
	return result
}

// PriceFor returns the per-kg price and the unrounded line total for weight.
func (t RateTable) PriceFor(serviceType models.ServiceType, weight float64) (Quote, error) {
	if !serviceType.Valid() {
		return Quote{}, models.NewValidationError("unknown service type %q", serviceType)
	}

	ladder := t.tiers[serviceType]
	if len(ladder) == 0 {
		rate := FallbackRates[serviceType]
		return Quote{PricePerKg: rate, LineTotal: weight * rate}, nil
	}

	tier, ok := selectTier(ladder, weight)
	if !ok {
		return Quote{}, models.NewConfigurationError("no %s tier covers %vkg", serviceType, weight)
	}

	return Quote{PricePerKg: tier.PricePerKg, LineTotal: weight * tier.PricePerKg}, nil
}

func selectTier(ladder []models.RateTier, weight float64) (models.RateTier, bool) {
	for _, tier := range ladder {
		if weight >= tier.MinWeight && weight <= tier.MaxWeight {
			return tier, true
		}
	}

	top := ladder[len(ladder)-1]
	if weight > top.MaxWeight {
		return top, true
	}

	return models.RateTier{}, false
}
