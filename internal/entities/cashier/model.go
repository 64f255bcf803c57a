package cashier

import "cornerstore/internal/entities/order"

type Cashier struct {
	Id        int            `json:"id"`
	FirstName string         `json:"firstName" validate:"required"`
	LastName  string         `json:"lastName" validate:"required"`
	Orders    []*order.Order `json:"orders,omitempty"`
}
