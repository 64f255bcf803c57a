package product

import (
	"github.com/shopspring/decimal"

	"cornerstore/internal/entities/category"
)

func init() {
	// prices and totals go over the wire as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	Id          int                `json:"id"`
	ProductName string             `json:"productName" validate:"required"`
	Price       decimal.Decimal    `json:"price"`
	Brand       string             `json:"brand" validate:"required"`
	CategoryId  int                `json:"categoryId" validate:"gt=0"`
	Category    *category.Category `json:"category,omitempty"`
}
