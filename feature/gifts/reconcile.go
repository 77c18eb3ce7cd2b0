package gifts

import (
	"errors"
	"fmt"

	"product-gifts/core/catalog"
)

// ErrMisalignedOffer is reported when an offer's id and record arrays differ in length.
var ErrMisalignedOffer = errors.New("gift ids and gift records differ in length")

// IndexedGiftOffer pairs one seller's gift ids with its gift records by position.
type IndexedGiftOffer struct {
	IDs     []string
	Records []catalog.Gift
}

// NewIndexedGiftOffer builds the positional view of a seller offer.
func NewIndexedGiftOffer(offer catalog.GiftsOffer) IndexedGiftOffer {
	return IndexedGiftOffer{IDs: offer.GiftSkuIDs, Records: offer.Gifts}
}

// Validate reports ErrMisalignedOffer when the arrays cannot be paired one to one.
// An offer with ids but no records is not misaligned, it just has no gifts.
func (o IndexedGiftOffer) Validate() error {
	if len(o.Records) == 0 || len(o.IDs) == len(o.Records) {
		return nil
	}
	return fmt.Errorf("%w: %d ids, %d records", ErrMisalignedOffer, len(o.IDs), len(o.Records))
}

// Filter returns the records whose positional id is in highlighted.
// Records past the end of IDs have no id and never match.
func (o IndexedGiftOffer) Filter(highlighted map[string]struct{}) []catalog.Gift {
	n := min(len(o.IDs), len(o.Records))
	var out []catalog.Gift
	for i := 0; i < n; i++ {
		if _, ok := highlighted[o.IDs[i]]; ok {
			out = append(out, o.Records[i])
		}
	}
	return out
}

// ReconcileGifts returns, in seller order and then offer order, the gifts whose
// positional sku id is highlighted. The result is never nil.
func ReconcileGifts(sellers []catalog.GiftsSeller, highlighted []string) []catalog.Gift {
	out := []catalog.Gift{}
	if len(highlighted) == 0 {
		return out
	}

	set := make(map[string]struct{}, len(highlighted))
	for _, id := range highlighted {
		set[id] = struct{}{}
	}

	for _, seller := range sellers {
		if len(seller.CommertialOffer.Gifts) == 0 {
			continue
		}
		out = append(out, NewIndexedGiftOffer(seller.CommertialOffer).Filter(set)...)
	}
	return out
}
