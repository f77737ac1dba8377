package database

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/utils"
)

var (
	ErrDuplicateOrder = errors.New("order already exists")
)

const (
	InsertOrderQuery = `
		INSERT INTO
			orders (
				id, order_type, user_id,
				customer_name, customer_phone, customer_address, customer_pg_name, customer_room,
				iron_requested, iron_weight, iron_price_per_kg, iron_total,
				subtotal, discount_percentage, discount_amount, total_amount,
				payment_method, payment_status, status,
				pickup_date, delivery_date, notes, created_at
			)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`
	InsertOrderItemQuery = `
		INSERT INTO
			order_items (order_id, position, service_type, weight, price_per_kg, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	selectOrderColumns = `
		SELECT
			id, order_type, user_id,
			customer_name, customer_phone, customer_address, customer_pg_name, customer_room,
			iron_requested, iron_weight, iron_price_per_kg, iron_total,
			subtotal, discount_percentage, discount_amount, total_amount,
			payment_method, payment_status, status,
			pickup_date, delivery_date, notes, created_at
		FROM
			orders
	`
	SelectOrderQuery = selectOrderColumns + `
		WHERE
			id = $1
	`
	SelectOrderItemsQuery = `
		SELECT
			order_id, service_type, weight, price_per_kg, line_total
		FROM
			order_items
		WHERE
			order_id = ANY($1)
		ORDER BY
			order_id, position
	`
	UpdateOrderStatusQuery = `
		UPDATE
			orders
		SET
			status = $2,
			updated_at = now()
		WHERE
			id = $1
	`
	SelectStatusTotalsQuery = `
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(total_amount), 0)
		FROM
			orders
		GROUP BY
			status
	`
)

// OrderStatusDB converts the order status to and from its column value.
type OrderStatusDB struct {
	models.OrderStatus
}

func (s *OrderStatusDB) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		return fmt.Errorf("order status must be a string, not %T", value)
	}

	status := models.OrderStatus(strVal)
	if !status.Valid() {
		return fmt.Errorf("unknown order status %q", strVal)
	}

	*s = OrderStatusDB{status}
	return nil
}

func (s OrderStatusDB) Value() (driver.Value, error) {
	return string(s.OrderStatus), nil
}

// CreateOrder stores the order and its items in one transaction.
func (d *Database) CreateOrder(ctx context.Context, order models.Order) error {
	err := pgx.BeginFunc(ctx, d.db, func(tx pgx.Tx) error {
		if err := insertOrder(ctx, tx, order); err != nil {
			return err
		}

		for i, item := range order.Items {
			_, err := tx.Exec(ctx, InsertOrderItemQuery,
				order.ID, i, string(item.ServiceType), item.Weight, item.PricePerKg, item.LineTotal)
			if err != nil {
				return fmt.Errorf("failed to insert order item %d: %w", i, err)
			}
		}

		return nil
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateOrder
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func insertOrder(ctx context.Context, exec DBExecutor, order models.Order) error {
	info := order.CustomerInfo
	_, err := exec.Exec(ctx, InsertOrderQuery,
		order.ID, string(order.Type), order.UserID,
		info.Name, info.Phone, info.Address, info.FacilityName, info.RoomNumber,
		order.IronService.Requested, order.IronService.Weight, order.IronService.PricePerKg, order.IronService.LineTotal,
		order.Subtotal, order.Discount.Percentage, order.Discount.Amount, order.TotalAmount,
		string(order.PaymentMethod), string(order.PaymentStatus), OrderStatusDB{order.Status},
		order.PickupDate.Time, order.DeliveryDate.Time, order.Notes, order.CreatedAt.Time,
	)
	return err
}

// FindOrder returns nil without an error when the order does not exist.
func (d *Database) FindOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := scanOrder(d.db.QueryRow(ctx, SelectOrderQuery, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	orders := []models.Order{*order}
	if err := d.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

// FindOrders returns the orders matching filter, newest first.
func (d *Database) FindOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := selectOrderColumns
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := d.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	result := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		result = append(result, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order rows: %w", err)
	}

	if err := d.attachItems(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateOrderStatus sets the status and returns the updated order, or nil if
// the order does not exist.
func (d *Database) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	tag, err := d.db.Exec(ctx, UpdateOrderStatusQuery, orderID, OrderStatusDB{status})
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	return d.FindOrder(ctx, orderID)
}

// FindStatusTotals returns the order count and amount sum per status.
func (d *Database) FindStatusTotals(ctx context.Context) ([]models.StatusTotals, error) {
	rows, err := d.db.Query(ctx, SelectStatusTotalsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query status totals: %w", err)
	}
	defer rows.Close()

	var result []models.StatusTotals
	for rows.Next() {
		var (
			status OrderStatusDB
			item   models.StatusTotals
		)
		if err := rows.Scan(&status, &item.Count, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan status totals: %w", err)
		}
		item.Status = status.OrderStatus
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status totals: %w", err)
	}

	return result, nil
}

func (d *Database) attachItems(ctx context.Context, orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	index := make(map[string]int, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
		index[order.ID] = i
		orders[i].Items = []models.OrderItem{}
	}

	rows, err := d.db.Query(ctx, SelectOrderItemsQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID     string
			serviceType string
			item        models.OrderItem
		)
		if err := rows.Scan(&orderID, &serviceType, &item.Weight, &item.PricePerKg, &item.LineTotal); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		item.ServiceType = models.ServiceType(serviceType)

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate order items: %w", err)
	}

	return nil
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var (
		order         models.Order
		info          models.ContactInfo
		orderType     string
		paymentMethod string
		paymentStatus string
		status        OrderStatusDB
		pickupDate    time.Time
		deliveryDate  time.Time
		createdAt     time.Time
	)

	err := row.Scan(
		&order.ID, &orderType, &order.UserID,
		&info.Name, &info.Phone, &info.Address, &info.FacilityName, &info.RoomNumber,
		&order.IronService.Requested, &order.IronService.Weight, &order.IronService.PricePerKg, &order.IronService.LineTotal,
		&order.Subtotal, &order.Discount.Percentage, &order.Discount.Amount, &order.TotalAmount,
		&paymentMethod, &paymentStatus, &status,
		&pickupDate, &deliveryDate, &order.Notes, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	order.Type = models.OrderType(orderType)
	order.CustomerInfo = info
	if order.Type == models.OrderTypeGuest {
		guest := info
		order.GuestInfo = &guest
	}
	order.PaymentMethod = models.PaymentMethod(paymentMethod)
	order.PaymentStatus = models.PaymentStatus(paymentStatus)
	order.Status = status.OrderStatus
	order.PickupDate = utils.RFC3339Date{Time: pickupDate}
	order.DeliveryDate = utils.RFC3339Date{Time: deliveryDate}
	order.CreatedAt = utils.RFC3339Date{Time: createdAt}

	return &order, nil
}
