package order

import (
	"time"

	"github.com/shopspring/decimal"

	"cornerstore/internal/entities/product"
)

type Order struct {
	Id            int             `json:"id"`
	CashierId     int             `json:"cashierId" validate:"gt=0"`
	PaidOnDate    *time.Time      `json:"paidOnDate"`
	OrderProducts []*OrderProduct `json:"orderProducts" validate:"min=1,dive"`
	Total         decimal.Decimal `json:"total"`
}

type OrderProduct struct {
	Id        int              `json:"id"`
	OrderId   int              `json:"orderId"`
	ProductId int              `json:"productId" validate:"gt=0"`
	Quantity  int              `json:"quantity" validate:"gt=0"`
	Product   *product.Product `json:"product,omitempty"`
}

// ComputeTotal sums price times quantity over the populated line items.
// Totals are never persisted; they always reflect current product prices.
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, op := range o.OrderProducts {
		if op.Product == nil {
			continue
		}
		total = total.Add(op.Product.Price.Mul(decimal.NewFromInt(int64(op.Quantity))))
	}
	return total
}
