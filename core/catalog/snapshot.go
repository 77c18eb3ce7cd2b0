package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"product-gifts/core/storage"

	"github.com/minio/minio-go/v7"
)

// SnapshotClient serves catalog queries from responses recorded in object storage.
//
// Objects are laid out as:
//
//	<prefix>/product/<productId>.json   ProductGiftsResponse
//	<prefix>/sku/<skuId>.json           AdditionalInfoResponse
type SnapshotClient struct {
	client storage.Client
	bucket string
	prefix string
}

// NewSnapshotClient creates a snapshot-backed catalog client.
func NewSnapshotClient(client storage.Client, bucket, prefix string) *SnapshotClient {
	return &SnapshotClient{client: client, bucket: bucket, prefix: prefix}
}

// ProductGiftsKey returns the object name of a recorded product gifts response.
func (s *SnapshotClient) ProductGiftsKey(productID string) string {
	return path.Join(s.prefix, "product", productID+".json")
}

// AdditionalInfoKey returns the object name of a recorded additional info response.
func (s *SnapshotClient) AdditionalInfoKey(skuID string) string {
	return path.Join(s.prefix, "sku", skuID+".json")
}

// ProductGifts reads the recorded product gifts response for productID.
func (s *SnapshotClient) ProductGifts(ctx context.Context, productID string) (*ProductGiftsResponse, error) {
	var out ProductGiftsResponse
	if err := s.read(ctx, s.ProductGiftsKey(productID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdditionalInfo reads the recorded additional info response for skuID.
func (s *SnapshotClient) AdditionalInfo(ctx context.Context, skuID string) (*AdditionalInfoResponse, error) {
	var out AdditionalInfoResponse
	if err := s.read(ctx, s.AdditionalInfoKey(skuID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Record stores both responses so later reads through this client return them.
// A nil response is skipped.
func (s *SnapshotClient) Record(ctx context.Context, productID, skuID string, gifts *ProductGiftsResponse, info *AdditionalInfoResponse) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	if gifts != nil && productID != "" {
		if err := s.write(ctx, s.ProductGiftsKey(productID), gifts); err != nil {
			return err
		}
	}
	if info != nil && skuID != "" {
		if err := s.write(ctx, s.AdditionalInfoKey(skuID), info); err != nil {
			return err
		}
	}
	return nil
}

func (s *SnapshotClient) read(ctx context.Context, objectName string, out any) error {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, objectName)
		}
		return fmt.Errorf("failed to get %s: %w", objectName, err)
	}
	defer obj.Close()

	// minio reports a missing key on the first read, not on GetObject.
	if err := json.NewDecoder(obj).Decode(out); err != nil {
		if storage.IsNotFound(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, objectName)
		}
		return fmt.Errorf("failed to decode %s: %w", objectName, err)
	}
	return nil
}

func (s *SnapshotClient) write(ctx context.Context, objectName string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", objectName, err)
	}
	_, err = s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", objectName, err)
	}
	return nil
}
