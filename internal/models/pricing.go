package models

// ServiceType is the kind of laundry treatment applied to an item.
type ServiceType string

const (
	ServiceWash     ServiceType = "wash"
	ServiceDryClean ServiceType = "dry-clean"
	ServiceIron     ServiceType = "iron"
)

// ServiceTypes lists the recognized service types in display order.
var ServiceTypes = []ServiceType{ServiceWash, ServiceDryClean, ServiceIron}

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceWash, ServiceDryClean, ServiceIron:
		return true
	}
	return false
}

// RateTier is a weight band with its per-kilogram price.
type RateTier struct {
	ServiceType        ServiceType `json:"serviceType" yaml:"service_type"`
	MinWeight          float64     `json:"minWeight" yaml:"min_weight"`
	MaxWeight          float64     `json:"maxWeight" yaml:"max_weight"`
	PricePerKg         float64     `json:"pricePerKg" yaml:"price_per_kg"`
	DiscountPercentage float64     `json:"discountPercentage" yaml:"discount_percentage"`
}

// ItemRequest is a single line of a pricing request as sent by a client.
type ItemRequest struct {
	ServiceType ServiceType `json:"serviceType"`
	Weight      float64     `json:"weight"`
}

type IronServiceRequest struct {
	Requested bool    `json:"requested"`
	Weight    float64 `json:"weight"`
}

type PricingRequest struct {
	Items       []ItemRequest      `json:"items"`
	IronService IronServiceRequest `json:"ironService"`
}

// OrderItem is a priced line. PricePerKg and LineTotal are always server computed.
type OrderItem struct {
	ServiceType ServiceType `json:"serviceType"`
	Weight      float64     `json:"weight"`
	PricePerKg  float64     `json:"pricePerKg"`
	LineTotal   float64     `json:"lineTotal"`
}

type IronService struct {
	Requested  bool    `json:"requested"`
	Weight     float64 `json:"weight"`
	PricePerKg float64 `json:"pricePerKg"`
	LineTotal  float64 `json:"lineTotal"`
}

// PricingBreakdown is the result of one pricing computation. It is never
// updated in place; any change of inputs means computing a new one.
type PricingBreakdown struct {
	Items              []OrderItem `json:"items"`
	IronService        IronService `json:"ironService"`
	Subtotal           float64     `json:"subtotal"`
	DiscountPercentage float64     `json:"discountPercentage"`
	DiscountAmount     float64     `json:"discountAmount"`
	Total              float64     `json:"total"`
}

// RateCard is the public view of the active rate table.
type RateCard struct {
	Tiers         []RateTier `json:"tiers"`
	IronRatePerKg float64    `json:"ironRatePerKg"`
}
