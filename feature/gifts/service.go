package gifts

import (
	"context"
	"fmt"

	"product-gifts/core/catalog"
	"product-gifts/core/logger"
	"product-gifts/core/metrics"
	"product-gifts/core/responsive"

	"go.uber.org/zap"
)

// Selection identifies the product and item being viewed and the viewport class.
type Selection struct {
	ProductID  string
	ItemID     string
	Breakpoint responsive.Breakpoint
}

// Missing reports whether the selection carries no product context at all.
func (s Selection) Missing() bool {
	return s.ProductID == "" && s.ItemID == ""
}

// Service resolves the gifts state of a selection.
type Service struct {
	client     catalog.Client
	logger     *zap.Logger
	metrics    *metrics.GiftsMetrics
	maxVisible responsive.Input
	thresholds responsive.Thresholds
}

// NewService creates a new gifts service.
func NewService(client catalog.Client, cfg Config, logger *zap.Logger, m *metrics.GiftsMetrics) (*Service, error) {
	input, err := cfg.MaxVisibleInput()
	if err != nil {
		return nil, fmt.Errorf("invalid max visible items: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:     client,
		logger:     logger,
		metrics:    m,
		maxVisible: input,
		thresholds: cfg.Thresholds(),
	}, nil
}

// Thresholds returns the configured viewport width thresholds.
func (s *Service) Thresholds() responsive.Thresholds {
	return s.thresholds
}

// Resolve runs both catalog queries and reconciles their results.
// It reports false when the surface should render nothing: missing context,
// a failed query, or no highlighted gifts. Failures are logged, never returned.
func (s *Service) Resolve(ctx context.Context, sel Selection) (State, bool) {
	bp := sel.Breakpoint
	if bp == "" {
		bp = responsive.Desktop
	}
	maxVisible := s.maxVisible.Resolve(bp)
	empty := NewState(nil, maxVisible)

	if sel.Missing() {
		s.logger.Warn("No product selection available, rendering nothing")
		s.metrics.IncOutcome(metrics.OutcomeNoContext)
		return empty, false
	}

	l := logger.WithSelection(s.logger, sel.ProductID, sel.ItemID)

	res, err := catalog.Join(ctx, s.client, sel.ProductID, sel.ItemID)
	if err != nil {
		l.Error("Gifts queries failed", zap.Error(err))
		s.metrics.IncOutcome(metrics.OutcomeQueryError)
		return empty, false
	}

	highlighted := ExtractHighlightedGiftIDs(res.Info, sel.ProductID, sel.ItemID)
	sellers := selectedSellers(res.Gifts, sel.ItemID)

	for _, seller := range sellers {
		offer := NewIndexedGiftOffer(seller.CommertialOffer)
		if err := offer.Validate(); err != nil {
			l.Warn("Misaligned gift offer", zap.String("seller_id", seller.SellerID), zap.Error(err))
			s.metrics.IncMisaligned()
		}
	}

	gifts := ReconcileGifts(sellers, highlighted)
	if len(gifts) == 0 {
		l.Debug("No highlighted gifts", zap.Int("highlighted", len(highlighted)))
		s.metrics.IncOutcome(metrics.OutcomeEmpty)
		return empty, false
	}

	s.metrics.IncOutcome(metrics.OutcomeRendered)
	s.metrics.ObserveGifts(len(gifts))
	l.Debug("Resolved gifts", zap.Int("gifts", len(gifts)), zap.Stringer("max_visible", maxVisible))
	return NewState(gifts, maxVisible), true
}

// selectedSellers returns the sellers of the item itemID in the product gifts response.
func selectedSellers(data *catalog.ProductGiftsResponse, itemID string) []catalog.GiftsSeller {
	if data == nil || data.Product == nil {
		return nil
	}
	for _, item := range data.Product.Items {
		if item.ItemID == itemID {
			return item.Sellers
		}
	}
	return nil
}
