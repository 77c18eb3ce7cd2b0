package gifts

import (
	"errors"

	"product-gifts/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for gifts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the gifts routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/gifts")
	group.Get("/", h.HandleGetGifts)
	group.Get("/:productId/items/:itemId", h.HandleGetItemGifts)
}

// HandleGetGifts returns the highlighted gifts of a product item.
// @Summary Get Gifts
// @Description Get the highlighted gifts and the display cap for a product item.
// @Tags gifts
// @Produce json
// @Param productId query string false "Product ID"
// @Param itemId query string false "Item (SKU) ID"
// @Param viewport query string false "Viewport breakpoint" Enums(phone, small, tablet, medium, desktop, large)
// @Param width query int false "Viewport width in CSS pixels"
// @Success 200 {object} gifts.State "Gifts state"
// @Success 204 "Nothing to render"
// @Failure 400 {object} map[string]any "Invalid request"
// @Router /gifts [get]
func (h *Handler) HandleGetGifts(c *fiber.Ctx) error {
	var req Request
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, err)
	}
	return h.respond(c, &req)
}

// HandleGetItemGifts returns the highlighted gifts of a product item addressed by path.
// @Summary Get Item Gifts
// @Description Get the highlighted gifts and the display cap for a product item.
// @Tags gifts
// @Produce json
// @Param productId path string true "Product ID"
// @Param itemId path string true "Item (SKU) ID"
// @Param viewport query string false "Viewport breakpoint" Enums(phone, small, tablet, medium, desktop, large)
// @Param width query int false "Viewport width in CSS pixels"
// @Success 200 {object} gifts.State "Gifts state"
// @Success 204 "Nothing to render"
// @Failure 400 {object} map[string]any "Invalid request"
// @Router /gifts/{productId}/items/{itemId} [get]
func (h *Handler) HandleGetItemGifts(c *fiber.Ctx) error {
	var req Request
	if err := c.QueryParser(&req); err != nil {
		return badRequest(c, err)
	}
	req.ProductID = c.Params("productId")
	req.ItemID = c.Params("itemId")
	return h.respond(c, &req)
}

func (h *Handler) respond(c *fiber.Ctx, req *Request) error {
	if err := req.Validate(); err != nil {
		return badRequest(c, err)
	}

	l := logger.WithRayID(h.service.logger, c)
	sel := req.Selection(h.service.Thresholds(), c.Get(fiber.HeaderUserAgent))

	state, ok := h.service.Resolve(c.UserContext(), sel)
	if !ok {
		l.Debug("Gifts suppressed", zap.String("product_id", sel.ProductID), zap.String("item_id", sel.ItemID))
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.JSON(state)
}

func badRequest(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": "invalid request"}
	var verr *ValidationError
	if errors.As(err, &verr) {
		body["details"] = verr.Fields
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}
