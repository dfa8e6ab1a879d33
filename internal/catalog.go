package internal

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/SAP/go-hdb/driver"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sistemas-sl/sapbridge/internal/model"
)

type ICatalog interface {
	SyncProducts(ctx context.Context) ([]model.Product, error)
	SyncClients(ctx context.Context) ([]model.Client, error)
}

// CatalogService projects products and clients from the SAP HANA analytical
// database into the local Postgres catalog tables. The company database name
// doubles as the HANA schema.
type CatalogService struct {
	Hana   *sql.DB
	Conn   *sql.DB
	Schema string
	Logger *zap.SugaredLogger
}

func NewCatalogService(hanaURI string, conn *sql.DB, schema string, logger *zap.SugaredLogger) (*CatalogService, error) {
	hana, err := sql.Open("hdb", hanaURI)
	if err != nil {
		return nil, err
	}

	return &CatalogService{Hana: hana, Conn: conn, Schema: schema, Logger: logger}, nil
}

const upsertProduct = `
	INSERT INTO producto (nxt_id_erp, name, taxes_id, grupo, sl_marca, list_price, sl_product_pvp, estado, fraccionador, presentacion, stock)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (nxt_id_erp) DO UPDATE SET
		name = EXCLUDED.name,
		taxes_id = EXCLUDED.taxes_id,
		grupo = EXCLUDED.grupo,
		sl_marca = EXCLUDED.sl_marca,
		list_price = EXCLUDED.list_price,
		sl_product_pvp = EXCLUDED.sl_product_pvp,
		estado = EXCLUDED.estado,
		fraccionador = EXCLUDED.fraccionador,
		presentacion = EXCLUDED.presentacion,
		stock = EXCLUDED.stock`

// SyncProducts reads the sellable-item projection from HANA and upserts each
// row into producto, keyed on nxt_id_erp.
func (c CatalogService) SyncProducts(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`
	SELECT
		T0."ItemCode",
		T1."Producto",
		T1."IVA VENTAS",
		T1."GrupoProductos",
		T1."Laboratorio",
		T1."PVF",
		T1."PVP",
		T1."Estado",
		T1."Fraccionador",
		T1."Presentación",
		(SELECT SUM(S0."OnHand" - S0."IsCommited")
		 FROM "%[1]s"."OITW" S0
		 WHERE S0."ItemCode" = T0."ItemCode"
		   AND S0."WhsCode" = 'BOMI')
	FROM "%[1]s"."OITM" T0
	INNER JOIN "%[1]s"."SL_PRODUCTOS_SAP_FOR_ORDERS" T1 ON T0."ItemCode" = T1."ItemCode"
	WHERE T0."SellItem" = 'Y'
	  AND T0."InvntItem" = 'Y'`, c.Schema)

	rows, err := c.Hana.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error connecting to SAP HANA: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var (
			p                    model.Product
			name                 sql.NullString
			listPrice, pvp       sql.NullString
			taxCode, group       sql.NullString
			brand, state         sql.NullString
			fractionator, presen sql.NullString
			stock                sql.NullFloat64
		)
		err = rows.Scan(&p.Code, &name, &taxCode, &group, &brand,
			&listPrice, &pvp, &state, &fractionator, &presen, &stock)
		if err != nil {
			return nil, err
		}

		p.Name = name.String
		p.TaxCode = taxCode.String
		p.Group = group.String
		p.Brand = brand.String
		p.State = state.String
		p.Fractionator = fractionator.String
		p.Presentation = presen.String
		if p.ListPrice, err = parsePrice(listPrice.String); err != nil {
			return nil, err
		}
		if p.RetailPrice, err = parsePrice(pvp.String); err != nil {
			return nil, err
		}
		if stock.Valid {
			p.Stock = decimal.NewFromFloat(stock.Float64)
		}

		_, err = c.Conn.ExecContext(ctx, upsertProduct,
			p.Code, p.Name, p.TaxCode, p.Group, p.Brand, p.ListPrice,
			p.RetailPrice, p.State, p.Fractionator, p.Presentation, p.Stock)
		if err != nil {
			return nil, fmt.Errorf("error upserting product %s: %w", p.Code, err)
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

// SyncClients upserts the active SAP customers into cliente.
func (c CatalogService) SyncClients(ctx context.Context) ([]model.Client, error) {
	query := fmt.Sprintf(`
	SELECT T0."CardCode", T0."CardName"
	FROM "%s"."OCRD" T0
	WHERE T0."CardType" = 'C'
	  AND T0."validFor" = 'Y'`, c.Schema)

	rows, err := c.Hana.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error connecting to SAP HANA: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var cl model.Client
		if err = rows.Scan(&cl.Code, &cl.Name); err != nil {
			return nil, err
		}
		cl.Code = strings.TrimSpace(cl.Code)

		_, err = c.Conn.ExecContext(ctx,
			`INSERT INTO cliente (nxt_id_erp, name) VALUES ($1, $2)
			 ON CONFLICT (nxt_id_erp) DO UPDATE SET name = EXCLUDED.name`,
			cl.Code, cl.Name)
		if err != nil {
			return nil, fmt.Errorf("error upserting client %s: %w", cl.Code, err)
		}

		clients = append(clients, cl)
	}

	return clients, rows.Err()
}

// HANA returns prices as strings with a comma decimal separator.
func parsePrice(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse decimal value from %q: %w", v, err)
	}
	return d, nil
}
