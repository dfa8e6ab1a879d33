package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/sistemas-sl/sapbridge/internal"
)

func main() {
	//decimals at json as numbers, the Service Layer rejects quoted amounts
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}

	session := NewSession()
	sap := NewSapService(cfg, session, sugaredLogger)
	service := NewService(repository, sap, cfg.DocDate, cfg.DocDueDate, sugaredLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var catalog *CatalogService
	if cfg.HanaURI != "" {
		catalog, err = NewCatalogService(cfg.HanaURI, repository.Conn, cfg.SapCompanyDB, sugaredLogger)
		if err != nil {
			sugaredLogger.Fatal(err)
		}
		go StartCatalogSync(ctx, catalog, cfg.SyncInterval, sugaredLogger)
	}

	handlers := NewHandlers(service, catalog, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	sapGroup := api.Group("/saphana")
	sapGroup.Post("/orders/:id", handlers.SubmitOrder)
	sapGroup.Post("/orders", handlers.SubmitAllOrders)

	if catalog != nil {
		api.Get("/obtenerproductos", handlers.SyncProducts)
	}

	go func() {
		if err := app.Listen(cfg.RunAddress); err != nil {
			sugaredLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugaredLogger.Info("Shutting down service...")
	cancel()
	if err := app.Shutdown(); err != nil {
		sugaredLogger.Error(err)
	}
}
