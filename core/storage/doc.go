// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface. The catalog
// snapshot source reads recorded query responses through it, and the snapshot
// command writes them.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates the snapshot bucket if needed.
//   - PutObject: Uploads a recorded response.
//   - GetObject: Retrieves a recorded response as a stream.
//
// The mocks subpackage provides a testify mock of Client.
package storage
