package models

type Stats struct {
	TotalOrders      int64   `json:"totalOrders"`
	TotalUsers       int64   `json:"totalUsers"`
	TotalRevenue     float64 `json:"totalRevenue"`
	PendingOrders    int64   `json:"pendingOrders"`
	ProcessingOrders int64   `json:"processingOrders"`
	ReadyOrders      int64   `json:"readyOrders"`
	DeliveredOrders  int64   `json:"deliveredOrders"`
	CancelledOrders  int64   `json:"cancelledOrders"`
}

// StatusTotals is the per-status order count and amount sum as read from storage.
type StatusTotals struct {
	Status OrderStatus
	Count  int64
	Amount float64
}
