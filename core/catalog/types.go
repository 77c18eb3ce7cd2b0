package catalog

// ProductGiftsResponse is the payload of the product gifts query.
// Product is nil when the catalog does not know the requested id.
type ProductGiftsResponse struct {
	Product *GiftsProduct `json:"product"`
}

// GiftsProduct holds the items of a product as returned by the gifts query.
type GiftsProduct struct {
	ProductID string      `json:"productId,omitempty"`
	Items     []GiftsItem `json:"items"`
}

// GiftsItem is a single SKU with its competing seller offers.
type GiftsItem struct {
	ItemID  string        `json:"itemId"`
	Sellers []GiftsSeller `json:"sellers"`
}

// GiftsSeller is one commercial offer for an item.
type GiftsSeller struct {
	SellerID        string     `json:"sellerId,omitempty"`
	SellerName      string     `json:"sellerName,omitempty"`
	CommertialOffer GiftsOffer `json:"commertialOffer"`
}

// GiftsOffer carries two parallel sequences: GiftSkuIDs[i] identifies Gifts[i].
// The upstream catalog never verifies the pairing.
type GiftsOffer struct {
	GiftSkuIDs []string `json:"giftSkuIds,omitempty"`
	Gifts      []Gift   `json:"gifts,omitempty"`
}

// Gift is an opaque promotional record. It has no identifier of its own.
type Gift struct {
	ProductName string      `json:"productName"`
	Brand       string      `json:"brand"`
	LinkText    string      `json:"linkText"`
	Description string      `json:"description"`
	SkuName     string      `json:"skuName"`
	Images      []GiftImage `json:"images"`
}

// GiftImage is an image attached to a gift.
type GiftImage struct {
	ImageURL   string `json:"imageUrl"`
	ImageLabel string `json:"imageLabel"`
	ImageText  string `json:"imageText"`
}

// AdditionalInfoResponse is the payload of the additional info query.
type AdditionalInfoResponse struct {
	Products []InfoProduct `json:"products"`
}

// InfoProduct is a product as returned by the additional info query.
type InfoProduct struct {
	ProductID string     `json:"productId"`
	Items     []InfoItem `json:"items"`
}

// InfoItem is a SKU as returned by the additional info query.
type InfoItem struct {
	ItemID  string       `json:"itemId"`
	Sellers []InfoSeller `json:"sellers"`
}

// InfoSeller carries the discount highlights of one seller offer.
type InfoSeller struct {
	SellerID        string    `json:"sellerId,omitempty"`
	CommertialOffer InfoOffer `json:"commertialOffer"`
}

// InfoOffer lists the promotions highlighted on an offer.
type InfoOffer struct {
	DiscountHighlights []DiscountHighlight `json:"discountHighlights"`
}

// DiscountHighlight is a promotion with free-form key/value metadata.
type DiscountHighlight struct {
	Name           string     `json:"name"`
	AdditionalInfo []KeyValue `json:"additionalInfo"`
}

// KeyValue is a single metadata entry of a discount highlight.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
