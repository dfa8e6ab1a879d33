package internal

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartCatalogSync refreshes the client catalog from HANA on a fixed cadence
// until the context is cancelled. The first sync runs immediately.
func StartCatalogSync(ctx context.Context, catalog ICatalog, interval time.Duration, logger *zap.SugaredLogger) {
	logger.Infof("catalog synchronization started, interval %s", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		clients, err := catalog.SyncClients(ctx)
		if err != nil {
			logger.Errorf("client sync failed: %s", err.Error())
		} else {
			logger.Infof("client sync done, %d clients", len(clients))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			logger.Info("catalog synchronization stopped")
			return
		}
	}
}
