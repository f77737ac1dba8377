package notify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Renal37/laundry-service/internal/models"
)

const dateLayout = "2006-01-02"

// FormatOrderSummary renders the text staff receive when an order is placed.
func FormatOrderSummary(order models.Order) string {
	var b strings.Builder

	info := order.CustomerInfo
	b.WriteString("NEW LAUNDRY ORDER\n\n")
	b.WriteString("Customer:\n")
	fmt.Fprintf(&b, "Name: %s\n", info.Name)
	fmt.Fprintf(&b, "Phone: %s\n", info.Phone)
	fmt.Fprintf(&b, "Address: %s\n", info.Address)
	fmt.Fprintf(&b, "PG/Hostel: %s\n", info.FacilityName)
	if info.RoomNumber != "" {
		fmt.Fprintf(&b, "Room: %s\n", info.RoomNumber)
	}

	b.WriteString("\nOrder:\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.ID)
	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s: %skg - %s\n",
			i+1, strings.ToUpper(string(item.ServiceType)), weight(item.Weight), money(item.LineTotal))
	}
	if order.IronService.Requested {
		fmt.Fprintf(&b, "Iron Service: %skg - %s\n",
			weight(order.IronService.Weight), money(order.IronService.LineTotal))
	}
	if order.Discount.Amount > 0 {
		fmt.Fprintf(&b, "Discount: %s%% - %s\n",
			decimal.NewFromFloat(order.Discount.Percentage).String(), money(order.Discount.Amount))
	}

	fmt.Fprintf(&b, "\nTotal Amount: %s\n", money(order.TotalAmount))
	fmt.Fprintf(&b, "Pickup: %s\n", order.PickupDate.Format(dateLayout))
	fmt.Fprintf(&b, "Delivery: %s\n", order.DeliveryDate.Format(dateLayout))
	fmt.Fprintf(&b, "Payment: %s\n", strings.ToUpper(string(order.PaymentMethod)))
	if order.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", order.Notes)
	}

	return b.String()
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func weight(v float64) string {
	return decimal.NewFromFloat(v).String()
}
