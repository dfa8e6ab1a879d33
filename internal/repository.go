package internal

import (
	"context"
	"database/sql"
	"embed"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/sistemas-sl/sapbridge/internal/model"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const orderRowsQuery = `
	SELECT
		c.nxt_id_erp,
		p.origen_venta,
		p.user_id,
		c.name,
		p.fecha_creacion,
		p.date_order,
		pr.nxt_id_erp,
		dp.product_uom_qty,
		dp.price_unit,
		dp.discount,
		pr.taxes_id,
		dp.qty_order,
		dp.qty_bonus
	FROM pedido p
	JOIN cliente c ON p.idcliente = c.idcliente
	JOIN detallepedidos dp ON p.idpedido = dp.idpedido
	JOIN producto pr ON dp.id_producto = pr.id_producto
	WHERE p.idpedido = $1`

type IRepository interface {
	GetOrderRows(ctx context.Context, orderID int) ([]model.OrderRow, error)
	GetPendingOrderIDs(ctx context.Context) ([]int, error)
	MarkOrderInserted(ctx context.Context, orderID int) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(databaseURI string, logger *zap.SugaredLogger) (*Repository, error) {
	db, err := sql.Open("pgx", databaseURI)
	if err != nil {
		return nil, err
	}

	if err = migrate(db); err != nil {
		return nil, err
	}

	return &Repository{Conn: db, Logger: logger}, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// GetOrderRows reads the order header, customer and line items in a single
// joined query. An order without matching rows comes back as an empty slice.
func (r Repository) GetOrderRows(ctx context.Context, orderID int) ([]model.OrderRow, error) {
	rows, err := r.Conn.QueryContext(ctx, orderRowsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []model.OrderRow
	for rows.Next() {
		var o model.OrderRow
		err = rows.Scan(&o.CardCode, &o.SalesOrigin, &o.UserName, &o.ClientName,
			&o.CreatedAt, &o.OrderDate, &o.ItemCode, &o.Quantity, &o.UnitPrice,
			&o.Discount, &o.TaxCode, &o.QtyOrdered, &o.QtyBonus)
		if err != nil {
			return nil, err
		}

		res = append(res, o)
	}

	return res, rows.Err()
}

// GetPendingOrderIDs returns orders waiting for SAP. No ORDER BY on purpose,
// the sweep does not depend on sequence.
func (r Repository) GetPendingOrderIDs(ctx context.Context) ([]int, error) {
	rows, err := r.Conn.QueryContext(ctx,
		"SELECT idpedido FROM pedido WHERE estado = $1 AND insertado_sap = FALSE",
		model.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r Repository) MarkOrderInserted(ctx context.Context, orderID int) error {
	_, err := r.Conn.ExecContext(ctx,
		"UPDATE pedido SET insertado_sap = TRUE WHERE idpedido = $1", orderID)
	return err
}
