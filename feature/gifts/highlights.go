package gifts

import (
	"strings"

	"product-gifts/core/catalog"
)

// GiftsAdditionalInfoKey is the additional info key whose value lists highlighted gift ids.
const GiftsAdditionalInfoKey = "gifts"

// ExtractHighlightedGiftIDs returns the gift sku ids highlighted for the item,
// in encounter order and without deduplication. The result is never nil.
func ExtractHighlightedGiftIDs(data *catalog.AdditionalInfoResponse, productID, itemID string) []string {
	ids := []string{}
	if data == nil || productID == "" || itemID == "" {
		return ids
	}

	item := findInfoItem(data, productID, itemID)
	if item == nil {
		return ids
	}

	for _, seller := range item.Sellers {
		for _, highlight := range seller.CommertialOffer.DiscountHighlights {
			value, ok := giftsValue(highlight.AdditionalInfo)
			if !ok {
				continue
			}
			ids = append(ids, splitIDs(value)...)
		}
	}
	return ids
}

func findInfoItem(data *catalog.AdditionalInfoResponse, productID, itemID string) *catalog.InfoItem {
	for i := range data.Products {
		product := &data.Products[i]
		if product.ProductID != productID {
			continue
		}
		for j := range product.Items {
			if product.Items[j].ItemID == itemID {
				return &product.Items[j]
			}
		}
		return nil
	}
	return nil
}

// giftsValue returns the value of the first entry keyed GiftsAdditionalInfoKey.
func giftsValue(info []catalog.KeyValue) (string, bool) {
	for _, kv := range info {
		if kv.Key == GiftsAdditionalInfoKey {
			return kv.Value, kv.Value != ""
		}
	}
	return "", false
}

func splitIDs(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
