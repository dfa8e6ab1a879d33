package model

import "github.com/shopspring/decimal"

// Product mirrors the producto projection synced from the HANA side. The
// json tags match the column names the Odoo import expects.
type Product struct {
	Code         string          `json:"nxt_id_erp"`
	Name         string          `json:"name"`
	TaxCode      string          `json:"taxes_id"`
	Group        string          `json:"grupo"`
	Brand        string          `json:"sl_marca"`
	ListPrice    decimal.Decimal `json:"list_price"`
	RetailPrice  decimal.Decimal `json:"sl_product_pvp"`
	State        string          `json:"estado"`
	Fractionator string          `json:"fraccionador"`
	Presentation string          `json:"presentacion"`
	Stock        decimal.Decimal `json:"stock"`
}

type Client struct {
	Code string `json:"nxt_id_erp"`
	Name string `json:"name"`
}
