package gifts

import (
	"context"
	"errors"
	"slices"

	"product-gifts/core/catalog"
	"product-gifts/core/responsive"
)

// ErrNoState is returned when the gifts state is read outside a providing scope.
var ErrNoState = errors.New("gifts state read outside a providing scope")

// State is the read-only snapshot consumed by the rendering layer.
type State struct {
	Gifts           []catalog.Gift        `json:"gifts"`
	MaxVisibleItems responsive.MaxVisible `json:"maxVisibleItems" swaggertype:"string" example:"showAll"`
}

// NewState copies gifts so later changes to the caller's slice are not observed.
func NewState(gifts []catalog.Gift, maxVisible responsive.MaxVisible) State {
	return State{Gifts: cloneGifts(gifts), MaxVisibleItems: maxVisible}
}

// Empty reports whether the surface should render nothing.
func (s State) Empty() bool {
	return len(s.Gifts) == 0
}

type stateKey struct{}

// Provide returns a context that scopes state for its descendants.
func Provide(ctx context.Context, state State) context.Context {
	return context.WithValue(ctx, stateKey{}, NewState(state.Gifts, state.MaxVisibleItems))
}

// StateFromContext returns a copy of the state provided to ctx, or ErrNoState.
func StateFromContext(ctx context.Context) (State, error) {
	s, ok := ctx.Value(stateKey{}).(State)
	if !ok {
		return State{}, ErrNoState
	}
	return NewState(s.Gifts, s.MaxVisibleItems), nil
}

func cloneGifts(gifts []catalog.Gift) []catalog.Gift {
	out := make([]catalog.Gift, len(gifts))
	for i, g := range gifts {
		g.Images = slices.Clone(g.Images)
		out[i] = g
	}
	return out
}
