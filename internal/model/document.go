package model

import "github.com/shopspring/decimal"

// SalesDocument is the payload shape the SAP Service Layer expects on the
// Orders endpoint. Field names and the U_SL_* user fields are fixed by the
// SAP side, do not rename the json tags.
type SalesDocument struct {
	CardCode      string         `json:"CardCode"`
	DocDate       string         `json:"DocDate"`
	DocDueDate    string         `json:"DocDueDate"`
	Comments      string         `json:"Comments"`
	SalesOrigin   string         `json:"U_SL_ORI_VTA"`
	OdooUser      string         `json:"U_SL_USER_ODOO"`
	DocumentLines []DocumentLine `json:"DocumentLines"`
}

type DocumentLine struct {
	ItemCode        string          `json:"ItemCode"`
	Quantity        decimal.Decimal `json:"Quantity"`
	UnitPrice       decimal.Decimal `json:"UnitPrice"`
	DiscountPercent decimal.Decimal `json:"DiscountPercent"`
	WarehouseCode   string          `json:"WarehouseCode"`
	TaxCode         string          `json:"TaxCode"`
	QtyOrdered      decimal.Decimal `json:"U_SL_CANT_PED"`
	QtyBonus        decimal.Decimal `json:"U_SL_CANT_BON"`
}
