package test

import (
	"context"
	"errors"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sistemas-sl/sapbridge/internal"
	"github.com/sistemas-sl/sapbridge/internal/model"
)

var orderColumns = []string{
	"nxt_id_erp", "origen_venta", "user_id", "name", "fecha_creacion",
	"date_order", "product_nxt_id_erp", "product_uom_qty", "price_unit",
	"discount", "taxes_id", "qty_order", "qty_bonus",
}

var _ = Describe("Repository", func() {
	var (
		repo internal.Repository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})
	Context("GetOrderRows", func() {
		It("scans header and line columns", func() {
			created := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

			expectedRows := sqlmock.NewRows(orderColumns).
				AddRow("C001", "Vendedor", "jperez", "FARMACIA CENTRAL", created, created,
					"ART-001", "3", "1.5", "10", "IVA0", "3", "0").
				AddRow("C001", "Vendedor", "jperez", "FARMACIA CENTRAL", created, created,
					"ART-002", "1", "7.25", "0", "IVA0", "1", "1")

			mock.ExpectQuery("(?s)SELECT (.+) FROM pedido p").
				WithArgs(7).WillReturnRows(expectedRows).RowsWillBeClosed()

			rows, err := repo.GetOrderRows(context.Background(), 7)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(rows).Should(HaveLen(2))
			Expect(rows[0].CardCode).Should(Equal("C001"))
			Expect(rows[0].CreatedAt.Valid).Should(BeTrue())
			Expect(rows[1].ItemCode).Should(Equal("ART-002"))
			Expect(rows[1].UnitPrice.Equal(decimal.NewFromFloat(7.25))).Should(BeTrue())
			Expect(rows[1].QtyBonus.Equal(decimal.NewFromInt(1))).Should(BeTrue())
		})
		It("returns no rows for an unknown order", func() {
			mock.ExpectQuery("(?s)SELECT (.+) FROM pedido p").
				WithArgs(42).WillReturnRows(sqlmock.NewRows(orderColumns)).RowsWillBeClosed()

			rows, err := repo.GetOrderRows(context.Background(), 42)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(rows).Should(BeEmpty())
		})
		It("propagates query errors", func() {
			mock.ExpectQuery("(?s)SELECT (.+) FROM pedido p").
				WithArgs(7).WillReturnError(errors.New("some error"))

			_, err := repo.GetOrderRows(context.Background(), 7)
			Expect(err).Should(HaveOccurred())
		})
	})
	Context("GetPendingOrderIDs", func() {
		It("selects by status and flag", func() {
			expectedRows := sqlmock.NewRows([]string{"idpedido"}).AddRow(1).AddRow(3)

			mock.ExpectQuery("SELECT idpedido FROM pedido WHERE estado = \\$1 AND insertado_sap = FALSE").
				WithArgs(model.OrderStatusPending).WillReturnRows(expectedRows).RowsWillBeClosed()

			ids, err := repo.GetPendingOrderIDs(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ids).Should(Equal([]int{1, 3}))
		})
		It("propagates query errors", func() {
			mock.ExpectQuery("SELECT idpedido FROM pedido WHERE estado = \\$1 AND insertado_sap = FALSE").
				WithArgs(model.OrderStatusPending).WillReturnError(errors.New("some error"))

			_, err := repo.GetPendingOrderIDs(context.Background())
			Expect(err).Should(HaveOccurred())
		})
	})
	Context("MarkOrderInserted", func() {
		It("sets the flag", func() {
			mock.ExpectExec("UPDATE pedido SET insertado_sap = TRUE WHERE idpedido = \\$1").
				WithArgs(5).WillReturnResult(sqlmock.NewResult(0, 1))

			err := repo.MarkOrderInserted(context.Background(), 5)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("propagates update errors", func() {
			mock.ExpectExec("UPDATE pedido SET insertado_sap = TRUE WHERE idpedido = \\$1").
				WithArgs(5).WillReturnError(errors.New("some error"))

			err := repo.MarkOrderInserted(context.Background(), 5)
			Expect(err).Should(HaveOccurred())
		})
	})
})

var _ = Describe("CatalogService", func() {
	var (
		catalog  internal.CatalogService
		hanaMock sqlmock.Sqlmock
		pgMock   sqlmock.Sqlmock
	)
	BeforeEach(func() {
		hana, hm, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())
		pg, pm, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		hanaMock = hm
		pgMock = pm
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		catalog = internal.CatalogService{
			Hana:   hana,
			Conn:   pg,
			Schema: "SBO_EC_SL_TEST",
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		Expect(hanaMock.ExpectationsWereMet()).ShouldNot(HaveOccurred())
		Expect(pgMock.ExpectationsWereMet()).ShouldNot(HaveOccurred())
	})
	Context("SyncProducts", func() {
		It("normalizes comma prices and upserts", func() {
			productRows := sqlmock.NewRows([]string{
				"ItemCode", "Producto", "IVA VENTAS", "GrupoProductos", "Laboratorio",
				"PVF", "PVP", "Estado", "Fraccionador", "Presentacion", "stock",
			}).AddRow("ART-001", "PARACETAMOL 500MG", "IVA0", "OTC", "LAB GENFAR",
				"12,50", "15,00", "Activo", "N", "CAJA X 100", 24.0)

			hanaMock.ExpectQuery(`(?s)SELECT (.+) FROM "SBO_EC_SL_TEST"."OITM" T0`).
				WillReturnRows(productRows).RowsWillBeClosed()

			pgMock.ExpectExec("(?s)INSERT INTO producto (.+) ON CONFLICT").
				WithArgs("ART-001", "PARACETAMOL 500MG", "IVA0", "OTC", "LAB GENFAR",
					sqlmock.AnyArg(), sqlmock.AnyArg(), "Activo", "N", "CAJA X 100", sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, 1))

			products, err := catalog.SyncProducts(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(products).Should(HaveLen(1))
			Expect(products[0].ListPrice.Equal(decimal.NewFromFloat(12.5))).Should(BeTrue())
			Expect(products[0].RetailPrice.Equal(decimal.NewFromInt(15))).Should(BeTrue())
			Expect(products[0].Stock.Equal(decimal.NewFromInt(24))).Should(BeTrue())
		})
		It("propagates HANA errors", func() {
			hanaMock.ExpectQuery(`(?s)SELECT (.+) FROM "SBO_EC_SL_TEST"."OITM" T0`).
				WillReturnError(errors.New("some error"))

			_, err := catalog.SyncProducts(context.Background())
			Expect(err).Should(HaveOccurred())
		})
	})
	Context("SyncClients", func() {
		It("upserts active customers", func() {
			clientRows := sqlmock.NewRows([]string{"CardCode", "CardName"}).
				AddRow("C001  ", "FARMACIA CENTRAL").
				AddRow("C002", "BOTICA DEL SUR")

			hanaMock.ExpectQuery(`(?s)SELECT (.+) FROM "SBO_EC_SL_TEST"."OCRD" T0`).
				WillReturnRows(clientRows).RowsWillBeClosed()

			pgMock.ExpectExec("(?s)INSERT INTO cliente (.+) ON CONFLICT").
				WithArgs("C001", "FARMACIA CENTRAL").WillReturnResult(sqlmock.NewResult(0, 1))
			pgMock.ExpectExec("(?s)INSERT INTO cliente (.+) ON CONFLICT").
				WithArgs("C002", "BOTICA DEL SUR").WillReturnResult(sqlmock.NewResult(0, 1))

			clients, err := catalog.SyncClients(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(clients).Should(Equal([]model.Client{
				{Code: "C001", Name: "FARMACIA CENTRAL"},
				{Code: "C002", Name: "BOTICA DEL SUR"},
			}))
		})
	})
})
