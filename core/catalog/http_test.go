package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"product-gifts/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

func newUpstream(t *testing.T, handler func(w http.ResponseWriter, req capturedRequest, r *http.Request)) *catalog.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req capturedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		handler(w, req, r)
	}))
	t.Cleanup(srv.Close)

	client, err := catalog.NewHTTPClient(catalog.Config{Endpoint: srv.URL, Token: "secret", Locale: "pt-BR", TimeoutSeconds: 2})
	require.NoError(t, err)
	return client
}

func TestNewHTTPClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{"Valid", "https://catalog.example.com/graphql", false},
		{"Empty", "", true},
		{"NoScheme", "catalog.example.com/graphql", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := catalog.NewHTTPClient(catalog.Config{Endpoint: tt.endpoint})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, client)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestHTTPClient_ProductGifts(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, req capturedRequest, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "pt-BR", r.Header.Get("X-Locale"))
		assert.Equal(t, "productGifts", req.OperationName)
		assert.Contains(t, req.Query, "giftSkuIds")
		assert.Equal(t, map[string]any{"field": "id", "value": "P1"}, req.Variables["identifier"])

		_, _ = w.Write([]byte(`{"data":{"product":{"items":[{"itemId":"I1","sellers":[{"commertialOffer":{"giftSkuIds":["G2"],"gifts":[{"productName":"Mug"}]}}]}]}}}`))
	})

	resp, err := client.ProductGifts(context.Background(), "P1")
	require.NoError(t, err)
	require.NotNil(t, resp.Product)
	require.Len(t, resp.Product.Items, 1)
	offer := resp.Product.Items[0].Sellers[0].CommertialOffer
	assert.Equal(t, []string{"G2"}, offer.GiftSkuIDs)
	assert.Equal(t, "Mug", offer.Gifts[0].ProductName)
}

func TestHTTPClient_AdditionalInfo(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, req capturedRequest, r *http.Request) {
		assert.Equal(t, "productsAdditionalInfo", req.OperationName)
		assert.Equal(t, "I1", req.Variables["skuId"])

		_, _ = w.Write([]byte(`{"data":{"products":[{"productId":"P1","items":[{"itemId":"I1","sellers":[{"commertialOffer":{"discountHighlights":[{"name":"promo","additionalInfo":[{"key":"gifts","value":"G1, G2"}]}]}}]}]}]}}`))
	})

	resp, err := client.AdditionalInfo(context.Background(), "I1")
	require.NoError(t, err)
	require.Len(t, resp.Products, 1)
	hl := resp.Products[0].Items[0].Sellers[0].CommertialOffer.DiscountHighlights[0]
	assert.Equal(t, "promo", hl.Name)
	assert.Equal(t, catalog.KeyValue{Key: "gifts", Value: "G1, G2"}, hl.AdditionalInfo[0])
}

func TestHTTPClient_Errors(t *testing.T) {
	t.Run("GraphQLErrors", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, _ capturedRequest, _ *http.Request) {
			_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"product not found"},{"message":"again"}]}`))
		})
		_, err := client.ProductGifts(context.Background(), "P1")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrUpstream)
		assert.Contains(t, err.Error(), "product not found; again")
	})

	t.Run("HTTPStatus", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, _ capturedRequest, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		})
		_, err := client.AdditionalInfo(context.Background(), "I1")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrUpstream)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, _ capturedRequest, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		})
		_, err := client.AdditionalInfo(context.Background(), "I1")
		assert.Error(t, err)
	})

	t.Run("NullData", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, _ capturedRequest, _ *http.Request) {
			_, _ = w.Write([]byte(`{"data":null}`))
		})
		resp, err := client.ProductGifts(context.Background(), "P1")
		require.NoError(t, err)
		assert.Nil(t, resp.Product)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		client := newUpstream(t, func(w http.ResponseWriter, _ capturedRequest, _ *http.Request) {
			_, _ = w.Write([]byte(`{"data":{}}`))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.ProductGifts(ctx, "P1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
