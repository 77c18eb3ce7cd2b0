// Package gifts implements the product gifts feature.
//
// For a selected product and item it computes the promotional gift records
// that are highlighted for that item. Two catalog queries feed it:
//  1. Additional info: discount highlights whose "gifts" entry lists the
//     highlighted gift sku ids as a comma separated string.
//  2. Product gifts: per seller offers carrying the gift records and a
//     parallel giftSkuIds array.
//
// The gift records carry no identifier, so gifts[i] is matched to
// giftSkuIds[i] by position. A misaligned offer cannot be corrected, only
// detected when the two arrays have different lengths.
//
// # Components
//
//   - ExtractHighlightedGiftIDs: pulls the highlighted ids from additional info.
//   - ReconcileGifts: keeps the gifts whose positional id is highlighted.
//   - State: immutable {gifts, maxVisibleItems} snapshot, scoped through a context.
//   - Service: runs both queries concurrently and builds the State.
//   - Handler: exposes the State over HTTP.
//   - Feature: registers the handler with the loader.
//
// # HTTP Endpoints
//
//   - GET /gifts?productId=&itemId=&viewport=&width= : State as JSON, or 204.
//   - GET /gifts/:productId/items/:itemId : same with path parameters.
package gifts
