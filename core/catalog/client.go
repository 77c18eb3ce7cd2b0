package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a snapshot or upstream entry does not exist.
	ErrNotFound = errors.New("catalog entry not found")
	// ErrUpstream is returned when the upstream catalog reports an error.
	ErrUpstream = errors.New("catalog upstream error")
)

// Client defines the two catalog queries the gifts feature depends on.
type Client interface {
	// ProductGifts runs the product gifts query for a product id.
	ProductGifts(ctx context.Context, productID string) (*ProductGiftsResponse, error)
	// AdditionalInfo runs the additional info query for a SKU id.
	AdditionalInfo(ctx context.Context, skuID string) (*AdditionalInfoResponse, error)
}
