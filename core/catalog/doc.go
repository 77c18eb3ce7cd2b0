// Package catalog is the query facility for the two catalog queries behind
// the gifts feature.
//
// # Queries
//
//   - ProductGifts: the product keyed by {field: "id", value: productId}, with
//     every seller's parallel giftSkuIds and gifts arrays.
//   - AdditionalInfo: the products containing a SKU, with every seller's
//     discount highlights and their key/value metadata.
//
// # Clients
//
//   - HTTPClient: POSTs GraphQL documents to the upstream catalog.
//   - SnapshotClient: reads responses recorded in object storage.
//   - CachedClient: redis decorator with singleflight around either of them.
//
// # Join
//
// Join runs both queries concurrently, skips a query whose key is empty and
// combines both errors with multierr. It applies no retry; that belongs to
// the client in use.
package catalog
