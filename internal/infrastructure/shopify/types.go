package shopify

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/profitlens/backend/internal/domain/profit"
)

// orderListResponse is the Admin API orders.json response envelope
type orderListResponse struct {
	Orders []orderPayload `json:"orders"`
}

// orderPayload is one order as returned by the Admin API. Money fields are
// decimal strings on the wire.
type orderPayload struct {
	ID                    int64             `json:"id"`
	TotalPrice            string            `json:"total_price"`
	TotalTax              string            `json:"total_tax"`
	TotalDiscounts        string            `json:"total_discounts"`
	TotalShippingPriceSet shippingPriceSet  `json:"total_shipping_price_set"`
	Gateway               string            `json:"gateway"`
	PaymentGatewayNames   []string          `json:"payment_gateway_names"`
	LineItems             []lineItemPayload `json:"line_items"`
}

type shippingPriceSet struct {
	ShopMoney moneyPayload `json:"shop_money"`
}

type moneyPayload struct {
	Amount string `json:"amount"`
}

type lineItemPayload struct {
	VariantID int64  `json:"variant_id"`
	SKU       string `json:"sku"`
	Quantity  int64  `json:"quantity"`
	Price     string `json:"price"`
}

// toDomain maps an Admin API order onto the domain Order. Unparseable money
// strings map to zero rather than failing the whole fetch.
func (p *orderPayload) toDomain() profit.Order {
	gateway := p.Gateway
	if gateway == "" && len(p.PaymentGatewayNames) > 0 {
		gateway = p.PaymentGatewayNames[0]
	}

	order := profit.Order{
		ID:             strconv.FormatInt(p.ID, 10),
		TotalPrice:     parseMoney(p.TotalPrice),
		TotalTax:       parseMoney(p.TotalTax),
		TotalShipping:  parseMoney(p.TotalShippingPriceSet.ShopMoney.Amount),
		TotalDiscounts: parseMoney(p.TotalDiscounts),
		Gateway:        gateway,
	}

	for _, li := range p.LineItems {
		item := profit.OrderLineItem{
			SKU:      li.SKU,
			Quantity: li.Quantity,
			Price:    parseMoney(li.Price),
		}
		if li.VariantID != 0 {
			item.VariantID = strconv.FormatInt(li.VariantID, 10)
		}
		order.LineItems = append(order.LineItems, item)
	}

	return order
}

func parseMoney(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
