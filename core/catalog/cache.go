package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"product-gifts/core/cache"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedClient decorates a Client with a response cache.
// Concurrent misses for the same key share one upstream call.
// Cache failures are logged and fall through to the upstream client.
type CachedClient struct {
	next   Client
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger
	sf     singleflight.Group
}

// NewCachedClient wraps next with store. A zero TTL disables caching.
func NewCachedClient(next Client, store cache.Store, ttl time.Duration, logger *zap.Logger) *CachedClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedClient{next: next, store: store, ttl: ttl, logger: logger}
}

// ProductGifts returns the cached product gifts response or queries next.
func (c *CachedClient) ProductGifts(ctx context.Context, productID string) (*ProductGiftsResponse, error) {
	key := c.store.Key("product", productID)
	v, err := c.load(ctx, key, func() (any, error) {
		return c.next.ProductGifts(ctx, productID)
	}, func(data []byte) (any, error) {
		var out ProductGiftsResponse
		err := json.Unmarshal(data, &out)
		return &out, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*ProductGiftsResponse), nil
}

// AdditionalInfo returns the cached additional info response or queries next.
func (c *CachedClient) AdditionalInfo(ctx context.Context, skuID string) (*AdditionalInfoResponse, error) {
	key := c.store.Key("sku", skuID)
	v, err := c.load(ctx, key, func() (any, error) {
		return c.next.AdditionalInfo(ctx, skuID)
	}, func(data []byte) (any, error) {
		var out AdditionalInfoResponse
		err := json.Unmarshal(data, &out)
		return &out, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*AdditionalInfoResponse), nil
}

func (c *CachedClient) load(ctx context.Context, key string, fetch func() (any, error), decode func([]byte) (any, error)) (any, error) {
	if c.ttl <= 0 {
		return fetch()
	}

	if data, err := c.store.Get(ctx, key); err == nil {
		v, decErr := decode(data)
		if decErr == nil {
			return v, nil
		}
		c.logger.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(decErr))
	} else if !errors.Is(err, cache.ErrMiss) {
		c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	v, err, _ := c.sf.Do(key, func() (any, error) {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(v)
		if err != nil {
			c.logger.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
			return v, nil
		}
		if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
			c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
		return v, nil
	})
	return v, err
}
