package cmd

import (
	"context"
	"fmt"
	"time"

	"product-gifts/core/cache"
	"product-gifts/core/catalog"
	"product-gifts/core/config"
	"product-gifts/core/storage"

	"go.uber.org/zap"
)

// newCatalogClient builds the configured catalog client, wrapped with the
// redis cache when enabled. The returned func releases the cache connection.
func newCatalogClient(ctx context.Context, cfg *config.Config, logg *zap.Logger) (catalog.Client, func(), error) {
	var (
		client catalog.Client
		err    error
	)

	switch cfg.Catalog.Source {
	case catalog.SourceSnapshot:
		store, sErr := storage.NewClient(cfg.Storage)
		if sErr != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", sErr)
		}
		client = catalog.NewSnapshotClient(store, cfg.Storage.Bucket, cfg.Catalog.SnapshotPrefix)
	default:
		client, err = catalog.NewHTTPClient(cfg.Catalog)
		if err != nil {
			return nil, nil, err
		}
	}

	if !cfg.Cache.Enabled {
		return client, func() {}, nil
	}

	rc, err := cache.New(ctx, cfg.Cache)
	if err != nil {
		// The service still answers without a cache.
		logg.Warn("Redis cache unavailable, querying catalog directly", zap.Error(err))
		return client, func() {}, nil
	}
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	logg.Info("Catalog responses cached in redis", zap.Duration("ttl", ttl))
	return catalog.NewCachedClient(client, rc, ttl, logg), func() { _ = rc.Close() }, nil
}
