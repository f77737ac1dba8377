package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Renal37/laundry-service/internal/database"
	"github.com/Renal37/laundry-service/internal/logger"
	"github.com/Renal37/laundry-service/internal/metrics"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/utils"
)

const (
	DefaultPickupDelay   = 24 * time.Hour
	DefaultDeliveryDelay = 72 * time.Hour

	addressNotProvided = "Address not provided"
)

type orderStorage interface {
	CreateOrder(ctx context.Context, order models.Order) error
	FindOrder(ctx context.Context, orderID string) (*models.Order, error)
	FindOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error)
}

type profileStorage interface {
	FindUserByID(ctx context.Context, userID string) (*database.UserDB, error)
}

type orderNotifier interface {
	OrderPlaced(order models.Order)
}

type OrderService struct {
	storage  orderStorage
	users    profileStorage
	pricing  models.PricingService
	notifier orderNotifier
	metrics  *metrics.Recorder
	now      func() time.Time
}

func NewOrderService(
	storage orderStorage,
	users profileStorage,
	pricing models.PricingService,
	notifier orderNotifier,
	recorder *metrics.Recorder,
) *OrderService {
	return &OrderService{
		storage:  storage,
		users:    users,
		pricing:  pricing,
		notifier: notifier,
		metrics:  recorder,
		now:      time.Now,
	}
}

// SubmitOrder prices and persists a new pending order. Prices always come
// from the pricing service. Staff notification happens in the background
// and cannot fail the submission.
func (o *OrderService) SubmitOrder(ctx context.Context, submission models.OrderSubmission) (*models.Order, error) {
	if len(submission.Items) == 0 {
		return nil, models.NewValidationError("order must contain at least one item")
	}

	order, err := o.resolveCustomer(ctx, submission.Customer)
	if err != nil {
		return nil, err
	}

	breakdown, err := o.pricing.Calculate(models.PricingRequest{
		Items:       submission.Items,
		IronService: submission.IronService,
	})
	if err != nil {
		return nil, err
	}

	now := o.now()
	pickup, delivery, err := schedule(now, submission.PickupDate, submission.DeliveryDate)
	if err != nil {
		return nil, err
	}

	paymentMethod := submission.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}
	if paymentMethod != models.PaymentCash && paymentMethod != models.PaymentElectronic {
		return nil, models.NewValidationError("payment method %q is not supported", paymentMethod)
	}

	order.ID = uuid.NewString()
	order.Items = breakdown.Items
	order.IronService = breakdown.IronService
	order.Subtotal = breakdown.Subtotal
	order.Discount = models.Discount{
		Percentage: breakdown.DiscountPercentage,
		Amount:     breakdown.DiscountAmount,
	}
	order.TotalAmount = breakdown.Total
	order.PaymentMethod = paymentMethod
	order.PaymentStatus = models.PaymentPending
	order.Status = models.StatusPending
	order.PickupDate = utils.RFC3339Date{Time: pickup}
	order.DeliveryDate = utils.RFC3339Date{Time: delivery}
	order.Notes = strings.TrimSpace(submission.Notes)
	order.CreatedAt = utils.RFC3339Date{Time: now}

	if err := o.storage.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	o.metrics.OrderCreated(string(order.Type))
	logger.Log.Info("order placed",
		zap.String("orderID", order.ID),
		zap.String("orderType", string(order.Type)),
		zap.Float64("total", order.TotalAmount),
	)

	if o.notifier != nil {
		o.notifier.OrderPlaced(order)
	}

	return &order, nil
}

// resolveCustomer fills the customer part of a new order.
func (o *OrderService) resolveCustomer(ctx context.Context, customer models.Customer) (models.Order, error) {
	switch c := customer.(type) {
	case models.UserCustomer:
		return o.userOrder(ctx, c.UserID)
	case models.GuestCustomer:
		return guestOrder(c.Info)
	case nil:
		return models.Order{}, models.NewValidationError("customer details are required")
	default:
		return models.Order{}, fmt.Errorf("unsupported customer %T", customer)
	}
}

func (o *OrderService) userOrder(ctx context.Context, userID string) (models.Order, error) {
	user, err := o.users.FindUserByID(ctx, userID)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to load profile: %w", err)
	}

	if user == nil {
		return models.Order{}, models.ErrUserNotFound
	}

	addr := user.Address
	if strings.TrimSpace(addr.FacilityName) == "" {
		return models.Order{}, models.NewValidationError("profile incomplete: add a PG/hostel name to your profile before placing an order")
	}

	line := addr.Line()
	if line == "" {
		line = addressNotProvided
	}

	id := user.ID
	return models.Order{
		Type:   models.OrderTypeUser,
		UserID: &id,
		CustomerInfo: models.ContactInfo{
			Name:         user.Name,
			Phone:        user.Phone,
			Address:      line,
			FacilityName: strings.TrimSpace(addr.FacilityName),
			RoomNumber:   addr.RoomNumber,
		},
	}, nil
}

func guestOrder(info models.ContactInfo) (models.Order, error) {
	info = models.ContactInfo{
		Name:         strings.TrimSpace(info.Name),
		Phone:        strings.TrimSpace(info.Phone),
		Address:      strings.TrimSpace(info.Address),
		FacilityName: strings.TrimSpace(info.FacilityName),
		RoomNumber:   strings.TrimSpace(info.RoomNumber),
	}

	var missing []string
	if info.Name == "" {
		missing = append(missing, "name")
	}
	if info.Phone == "" {
		missing = append(missing, "phone")
	}
	if info.Address == "" {
		missing = append(missing, "address")
	}
	if info.FacilityName == "" {
		missing = append(missing, "pgName")
	}
	if len(missing) > 0 {
		return models.Order{}, models.NewValidationError("guest details are incomplete: %s required", strings.Join(missing, ", "))
	}

	guest := info
	return models.Order{
		Type:         models.OrderTypeGuest,
		GuestInfo:    &guest,
		CustomerInfo: info,
	}, nil
}

// schedule applies the default pickup and delivery offsets to missing dates.
func schedule(now time.Time, pickup, delivery *time.Time) (time.Time, time.Time, error) {
	p := now.Add(DefaultPickupDelay)
	if pickup != nil {
		p = *pickup
	}

	d := now.Add(DefaultDeliveryDelay)
	if delivery != nil {
		d = *delivery
	}

	if d.Before(p) {
		return time.Time{}, time.Time{}, models.NewValidationError("delivery date must not be before pickup date")
	}

	return p, d, nil
}

// GetOrder returns an order to its owner or to an admin.
func (o *OrderService) GetOrder(ctx context.Context, orderID string, actor *models.User) (*models.Order, error) {
	order, err := o.storage.FindOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if order == nil {
		return nil, models.ErrOrderNotFound
	}

	if actor == nil || (!actor.IsAdmin() && !order.OwnedBy(actor.ID)) {
		return nil, models.ErrAccessDenied
	}

	return order, nil
}

func (o *OrderService) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := o.storage.FindOrders(ctx, models.OrderFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// ListOrders returns every order matching filter. Admins only.
func (o *OrderService) ListOrders(ctx context.Context, actor *models.User, filter models.OrderFilter) ([]models.Order, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrAccessDenied
	}

	if filter.Status != "" && !filter.Status.Valid() {
		return nil, models.NewValidationError("unknown order status %q", filter.Status)
	}

	orders, err := o.storage.FindOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

// SetStatus moves an order to any of the known statuses. Admins only.
// Pricing is left untouched.
func (o *OrderService) SetStatus(ctx context.Context, orderID string, status models.OrderStatus, actor *models.User) (*models.Order, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrAccessDenied
	}

	if !status.Valid() {
		return nil, models.NewValidationError("unknown order status %q", status)
	}

	order, err := o.storage.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if order == nil {
		return nil, models.ErrOrderNotFound
	}

	o.metrics.StatusUpdated(string(status))
	logger.Log.Info("order status changed",
		zap.String("orderID", orderID),
		zap.String("status", string(status)),
		zap.String("actor", actor.Login),
	)

	return order, nil
}
