package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// OrderStatusPending marks an order ready to be pushed to SAP. The label is
// written by the order-entry side, we only read it.
const OrderStatusPending = "Pedido de venta"

// OrderRow is one row of the joined order read: header and customer columns
// repeat for every line item.
type OrderRow struct {
	CardCode    string
	SalesOrigin string
	UserName    string
	ClientName  string
	CreatedAt   sql.NullTime
	OrderDate   sql.NullTime
	ItemCode    string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	TaxCode     string
	QtyOrdered  decimal.Decimal
	QtyBonus    decimal.Decimal
}

type SubmittedOrder struct {
	OrderID int `json:"orderId"`
	DocNum  int `json:"docNum"`
}

type FailedOrder struct {
	OrderID int    `json:"orderId"`
	Error   string `json:"error"`
}
