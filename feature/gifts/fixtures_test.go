package gifts_test

import (
	"product-gifts/core/catalog"
)

var (
	giftA = catalog.Gift{ProductName: "Gift A", SkuName: "A", Images: []catalog.GiftImage{{ImageURL: "https://img/a.png"}}}
	giftB = catalog.Gift{ProductName: "Gift B", SkuName: "B"}
	giftC = catalog.Gift{ProductName: "Gift C", SkuName: "C"}
)

func additionalInfo(productID, itemID string, values ...string) *catalog.AdditionalInfoResponse {
	highlights := make([]catalog.DiscountHighlight, 0, len(values))
	for _, v := range values {
		highlights = append(highlights, catalog.DiscountHighlight{
			Name:           "promo",
			AdditionalInfo: []catalog.KeyValue{{Key: "gifts", Value: v}},
		})
	}
	return &catalog.AdditionalInfoResponse{
		Products: []catalog.InfoProduct{{
			ProductID: productID,
			Items: []catalog.InfoItem{{
				ItemID: itemID,
				Sellers: []catalog.InfoSeller{{
					SellerID:        "1",
					CommertialOffer: catalog.InfoOffer{DiscountHighlights: highlights},
				}},
			}},
		}},
	}
}

func seller(id string, ids []string, gifts ...catalog.Gift) catalog.GiftsSeller {
	return catalog.GiftsSeller{
		SellerID:        id,
		CommertialOffer: catalog.GiftsOffer{GiftSkuIDs: ids, Gifts: gifts},
	}
}

func productGifts(productID, itemID string, sellers ...catalog.GiftsSeller) *catalog.ProductGiftsResponse {
	return &catalog.ProductGiftsResponse{
		Product: &catalog.GiftsProduct{
			ProductID: productID,
			Items:     []catalog.GiftsItem{{ItemID: itemID, Sellers: sellers}},
		},
	}
}
