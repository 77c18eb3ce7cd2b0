package gifts_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"product-gifts/core/catalog/mocks"
	"product-gifts/core/loader"
	"product-gifts/feature/gifts"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, client *mocks.Client) *fiber.App {
	t.Helper()
	cfg := gifts.Config{MaxVisibleItems: `{"small":2,"large":"showAll"}`, BreakpointTablet: 640, BreakpointDesktop: 1024}
	feature, err := gifts.NewFeature(client, cfg, zap.NewNop(), nil)
	require.NoError(t, err)

	app := fiber.New()
	manager := loader.NewManager()
	manager.Register(feature)
	loaded, err := manager.LoadAll(app)
	require.NoError(t, err)
	require.Equal(t, []string{"gifts"}, loaded)
	return app
}

func stubCatalog(client *mocks.Client) {
	client.On("ProductGifts", mock.Anything, "P1").
		Return(productGifts("P1", "I1", seller("1", []string{"G2", "G9"}, giftA, giftB)), nil)
	client.On("AdditionalInfo", mock.Anything, "I1").
		Return(additionalInfo("P1", "I1", "G1, G2,G3"), nil)
}

func TestHandleGetGifts(t *testing.T) {
	client := new(mocks.Client)
	stubCatalog(client)
	app := newTestApp(t, client)

	tests := []struct {
		name      string
		target    string
		wantMax   any
		userAgent string
	}{
		{"QueryViewport", "/gifts?productId=P1&itemId=I1&viewport=small", 2.0, ""},
		{"QueryWidthDesktop", "/gifts?productId=P1&itemId=I1&width=1280", "showAll", ""},
		{"PathWidthPhone", "/gifts/P1/items/I1?width=320", 2.0, ""},
		{"PathUserAgent", "/gifts/P1/items/I1", 2.0, "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile"},
		{"PathDefaultDesktop", "/gifts/P1/items/I1", "showAll", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			if tt.userAgent != "" {
				req.Header.Set("User-Agent", tt.userAgent)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantMax, body["maxVisibleItems"])
			list, ok := body["gifts"].([]any)
			require.True(t, ok)
			require.Len(t, list, 1)
			assert.Equal(t, "Gift A", list[0].(map[string]any)["productName"])
		})
	}
}

func TestHandleGetGifts_NoContent(t *testing.T) {
	client := new(mocks.Client)
	stubCatalog(client)
	client.On("AdditionalInfo", mock.Anything, "I2").
		Return(additionalInfo("P1", "I2"), nil)
	client.On("ProductGifts", mock.Anything, "P2").
		Return(productGifts("P2", "I2"), nil)
	app := newTestApp(t, client)

	for _, target := range []string{"/gifts", "/gifts?productId=P2&itemId=I2", "/gifts?productId=P1"} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode, target)
		body, _ := io.ReadAll(resp.Body)
		assert.Empty(t, body)
	}
}

func TestHandleGetGifts_BadRequest(t *testing.T) {
	app := newTestApp(t, new(mocks.Client))

	tests := []struct {
		name   string
		target string
		field  string
	}{
		{"UnknownViewport", "/gifts?productId=P1&itemId=I1&viewport=watch", "viewport"},
		{"MobileGroupViewport", "/gifts/P1/items/I1?viewport=mobile", "viewport"},
		{"NegativeWidth", "/gifts?productId=P1&itemId=I1&width=-5", "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var body struct {
				Error   string            `json:"error"`
				Details map[string]string `json:"details"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body.Details, tt.field)
		})
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/gifts?width=wide", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
