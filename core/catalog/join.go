package catalog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

// Results holds both query responses of a joined fetch.
// A response is nil when its fetch was skipped or failed.
type Results struct {
	Gifts *ProductGiftsResponse
	Info  *AdditionalInfoResponse
	// GiftsIssued reports whether the product gifts query was sent.
	GiftsIssued bool
	// InfoIssued reports whether the additional info query was sent.
	InfoIssued bool
}

// Join issues the product gifts query (keyed by productID) and the additional
// info query (keyed by skuID) concurrently and waits for both.
// A query whose key is empty is never issued. The returned error combines
// the errors of both queries, so either or both may be present.
func Join(ctx context.Context, client Client, productID, skuID string) (Results, error) {
	var (
		res      Results
		giftsErr error
		infoErr  error
		wg       sync.WaitGroup
	)

	if productID != "" {
		res.GiftsIssued = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			res.Gifts, giftsErr = client.ProductGifts(ctx, productID)
		}()
	}

	if skuID != "" {
		res.InfoIssued = true
		wg.Add(1)
		go func() {
			defer wg.Done()
			res.Info, infoErr = client.AdditionalInfo(ctx, skuID)
		}()
	}

	wg.Wait()

	if giftsErr != nil {
		res.Gifts = nil
		giftsErr = fmt.Errorf("product gifts query: %w", giftsErr)
	}
	if infoErr != nil {
		res.Info = nil
		infoErr = fmt.Errorf("additional info query: %w", infoErr)
	}

	return res, multierr.Combine(giftsErr, infoErr)
}
