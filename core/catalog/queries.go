package catalog

const productGiftsQuery = `query productGifts($identifier: ProductUniqueIdentifier) {
  product(identifier: $identifier) {
    productId
    items {
      itemId
      sellers {
        sellerId
        sellerName
        commertialOffer {
          giftSkuIds
          gifts {
            productName
            brand
            linkText
            description
            skuName
            images {
              imageUrl
              imageLabel
              imageText
            }
          }
        }
      }
    }
  }
}`

const additionalInfoQuery = `query productsAdditionalInfo($skuId: ID!) {
  products: productsByIdentifier(field: sku, values: [$skuId]) {
    productId
    items {
      itemId
      sellers {
        sellerId
        commertialOffer {
          discountHighlights {
            name
            additionalInfo {
              key
              value
            }
          }
        }
      }
    }
  }
}`

type productIdentifier struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type graphqlRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}
