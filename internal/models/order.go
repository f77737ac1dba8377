package models

import (
	"strings"
	"time"

	"github.com/Renal37/laundry-service/internal/utils"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusReady      OrderStatus = "ready"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusReady, StatusDelivered, StatusCancelled}

func (s OrderStatus) Valid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the order has left the operational flow.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentElectronic PaymentMethod = "electronic"
)

// ParsePaymentMethod accepts the canonical names plus the legacy "cod" and
// "qr" aliases. An empty value means cash.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "cash", "cod":
		return PaymentCash, true
	case "electronic", "qr":
		return PaymentElectronic, true
	}
	return "", false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type OrderType string

const (
	OrderTypeUser  OrderType = "user"
	OrderTypeGuest OrderType = "guest"
)

// ContactInfo is who to call and where to go for pickup and delivery.
type ContactInfo struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	FacilityName string `json:"pgName"`
	RoomNumber   string `json:"roomNumber,omitempty"`
}

// Customer is who places an order: a UserCustomer or a GuestCustomer.
type Customer interface {
	orderType() OrderType
}

type UserCustomer struct {
	UserID string
}

func (UserCustomer) orderType() OrderType { return OrderTypeUser }

type GuestCustomer struct {
	Info ContactInfo
}

func (GuestCustomer) orderType() OrderType { return OrderTypeGuest }

// OrderSubmission carries everything a customer sends when placing an order.
// Prices are deliberately absent: they are always recomputed.
type OrderSubmission struct {
	Customer      Customer
	Items         []ItemRequest
	IronService   IronServiceRequest
	PickupDate    *time.Time
	DeliveryDate  *time.Time
	PaymentMethod PaymentMethod
	Notes         string
}

type Discount struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

type Order struct {
	ID            string            `json:"id"`
	Type          OrderType         `json:"orderType"`
	UserID        *string           `json:"userId,omitempty"`
	GuestInfo     *ContactInfo      `json:"guestInfo,omitempty"`
	CustomerInfo  ContactInfo       `json:"customerInfo"`
	Items         []OrderItem       `json:"items"`
	IronService   IronService       `json:"ironService"`
	Subtotal      float64           `json:"subtotal"`
	Discount      Discount          `json:"discount"`
	TotalAmount   float64           `json:"totalAmount"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	PaymentStatus PaymentStatus     `json:"paymentStatus"`
	Status        OrderStatus       `json:"status"`
	PickupDate    utils.RFC3339Date `json:"pickupDate"`
	DeliveryDate  utils.RFC3339Date `json:"deliveryDate"`
	Notes         string            `json:"notes"`
	CreatedAt     utils.RFC3339Date `json:"createdAt"`
}

// OwnedBy reports whether the order was placed by the given registered user.
func (o *Order) OwnedBy(userID string) bool {
	return o.UserID != nil && *o.UserID == userID
}

type OrderFilter struct {
	UserID string
	Status OrderStatus
}
