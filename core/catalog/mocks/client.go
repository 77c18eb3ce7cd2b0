package mocks

import (
	"context"

	"product-gifts/core/catalog"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of catalog.Client
type Client struct {
	mock.Mock
}

func (m *Client) ProductGifts(ctx context.Context, productID string) (*catalog.ProductGiftsResponse, error) {
	args := m.Called(ctx, productID)
	if resp, ok := args.Get(0).(*catalog.ProductGiftsResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) AdditionalInfo(ctx context.Context, skuID string) (*catalog.AdditionalInfoResponse, error) {
	args := m.Called(ctx, skuID)
	if resp, ok := args.Get(0).(*catalog.AdditionalInfoResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}
