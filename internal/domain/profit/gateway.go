package profit

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Gateway is a canonical payment gateway identifier
type Gateway string

const (
	GatewayShopifyPayments Gateway = "shopify_payments"
	GatewayStripe          Gateway = "stripe"
	GatewayPayPal          Gateway = "paypal"
	GatewayMercadoPago     Gateway = "mercado_pago"
	GatewayManual          Gateway = "manual"
)

// String returns the string representation of the Gateway
func (g Gateway) String() string {
	return string(g)
}

// gatewayAliases maps a lower-cased, letters-only gateway name to its
// canonical gateway
var gatewayAliases = map[string]Gateway{
	"shopifypayments": GatewayShopifyPayments,
	"shopify":         GatewayShopifyPayments,
	"shoppay":         GatewayShopifyPayments,
	"stripe":          GatewayStripe,
	"paypal":          GatewayPayPal,
	"paypalexpress":   GatewayPayPal,
	"paypalcheckout":  GatewayPayPal,
	"braintreepaypal": GatewayPayPal,
	"mercadopago":     GatewayMercadoPago,
	"mercadolibre":    GatewayMercadoPago,
	"manual":          GatewayManual,
	"cash":            GatewayManual,
	"cashondelivery":  GatewayManual,
	"banktransfer":    GatewayManual,
	"bankdeposit":     GatewayManual,
}

// NormalizeGateway maps a raw gateway identifier to a canonical gateway.
// Matching is case-insensitive and ignores non-letter characters.
// Unrecognized names default to Shopify Payments, the platform's native
// processor - a deliberate default, not an error.
func NormalizeGateway(name string) Gateway {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	if g, ok := gatewayAliases[b.String()]; ok {
		return g
	}
	return GatewayShopifyPayments
}

// FeeModel is a normalized payment fee: a percentage of the order total
// plus a fixed amount per order
type FeeModel struct {
	Percentage decimal.Decimal `json:"percentage"`
	Fixed      decimal.Decimal `json:"fixed"`
}

var (
	defaultFeeModel = FeeModel{
		Percentage: decimal.NewFromFloat(0.029),
		Fixed:      decimal.NewFromFloat(0.30),
	}

	feeTable = map[Gateway]FeeModel{
		GatewayShopifyPayments: {Percentage: decimal.NewFromFloat(0.029), Fixed: decimal.NewFromFloat(0.30)},
		GatewayStripe:          {Percentage: decimal.NewFromFloat(0.029), Fixed: decimal.NewFromFloat(0.30)},
		GatewayPayPal:          {Percentage: decimal.NewFromFloat(0.0349), Fixed: decimal.NewFromFloat(0.49)},
		GatewayMercadoPago:     {Percentage: decimal.NewFromFloat(0.0499), Fixed: decimal.Zero},
		GatewayManual:          {Percentage: decimal.Zero, Fixed: decimal.Zero},
	}
)

// FeeFor returns the fee model for a canonical gateway, falling back to
// the default card-processing model for unmapped canonical names
func FeeFor(gateway Gateway) FeeModel {
	if model, ok := feeTable[gateway]; ok {
		return model
	}
	return defaultFeeModel
}

// OrderFee estimates the payment fee for a single order total,
// rounded to 2 places per order
func OrderFee(total decimal.Decimal, gateway Gateway) decimal.Decimal {
	model := FeeFor(gateway)
	return total.Mul(model.Percentage).Add(model.Fixed).Round(2)
}

// GatewayFeeStat is the per-gateway slice of the fee breakdown
type GatewayFeeStat struct {
	Count      int64           `json:"count"`
	OrderTotal decimal.Decimal `json:"order_total"`
	Fees       decimal.Decimal `json:"fees"`
}

// FeeSummary is the aggregate fee estimate over an order list
type FeeSummary struct {
	Total     decimal.Decimal
	Breakdown map[Gateway]GatewayFeeStat
}

// TotalFees sums per-order fees over the order list and accumulates a
// per-canonical-gateway breakdown. Intermediate sums stay at full
// precision; only the final breakdown values are rounded.
func TotalFees(orders []Order) FeeSummary {
	total := decimal.Zero
	breakdown := make(map[Gateway]GatewayFeeStat)

	for _, o := range orders {
		gateway := NormalizeGateway(o.Gateway)
		fee := OrderFee(o.TotalPrice, gateway)
		total = total.Add(fee)

		stat := breakdown[gateway]
		stat.Count++
		stat.OrderTotal = stat.OrderTotal.Add(o.TotalPrice)
		stat.Fees = stat.Fees.Add(fee)
		breakdown[gateway] = stat
	}

	for gateway, stat := range breakdown {
		stat.OrderTotal = stat.OrderTotal.Round(2)
		stat.Fees = stat.Fees.Round(2)
		breakdown[gateway] = stat
	}

	return FeeSummary{Total: total, Breakdown: breakdown}
}
