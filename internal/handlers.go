package internal

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handlers struct {
	Service IService
	Catalog ICatalog
	logger  *zap.SugaredLogger
}

func NewHandlers(service IService, catalog ICatalog, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: service, Catalog: catalog, logger: logger}
}

// SubmitOrder handles POST /api/saphana/orders/:id. Every failure is
// rendered as its message text with a client-error status, the callers on
// the Odoo side only look at the text.
func (h *Handlers) SubmitOrder(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	docNum, jsonData, err := h.Service.SubmitOrder(c.Context(), orderID)
	if err != nil {
		h.logger.Errorf("Error on submit order request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Orden insertada exitosamente",
		"docNum":   docNum,
		"jsonData": jsonData,
	})
}

// SubmitAllOrders handles POST /api/saphana/orders: a best-effort sweep over
// every pending order.
func (h *Handlers) SubmitAllOrders(c *fiber.Ctx) error {
	successful, failed, err := h.Service.SubmitPendingOrders(c.Context())
	if err != nil {
		h.logger.Errorf("Error on submit all orders request: %s", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":          "Orden procesada",
		"successfulOrders": successful,
		"failedOrders":     failed,
	})
}

// SyncProducts handles GET /api/obtenerproductos: pulls the product catalog
// from HANA, upserts it locally and returns the synced rows.
func (h *Handlers) SyncProducts(c *fiber.Ctx) error {
	products, err := h.Catalog.SyncProducts(c.Context())
	if err != nil {
		h.logger.Errorf("Error on product sync request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(products)
}
