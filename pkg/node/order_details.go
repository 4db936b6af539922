package node

// ProductOrderDetails holds the ordering quantities of a product.
type ProductOrderDetails struct {
	orderUnit        Value[string]
	contentUnit      Value[string]
	noCuPerOu        Value[float64]
	priceQuantity    Value[float64]
	quantityMin      Value[float64]
	quantityInterval Value[float64]
}

// SetOrderUnit sets the unit the article is ordered in, e.g. "C62".
func (o *ProductOrderDetails) SetOrderUnit(v string) { o.orderUnit = Of(v) }
func (o *ProductOrderDetails) OrderUnit() (string, bool) { return o.orderUnit.Get() }

// SetContentUnit sets the unit contained in one order unit.
func (o *ProductOrderDetails) SetContentUnit(v string) { o.contentUnit = Of(v) }
func (o *ProductOrderDetails) ContentUnit() (string, bool) { return o.contentUnit.Get() }

// SetNoCuPerOu sets the number of content units per order unit.
func (o *ProductOrderDetails) SetNoCuPerOu(v float64) { o.noCuPerOu = Of(v) }
func (o *ProductOrderDetails) NoCuPerOu() (float64, bool) { return o.noCuPerOu.Get() }

// SetPriceQuantity sets the number of order units a price refers to.
func (o *ProductOrderDetails) SetPriceQuantity(v float64) { o.priceQuantity = Of(v) }
func (o *ProductOrderDetails) PriceQuantity() (float64, bool) { return o.priceQuantity.Get() }

// SetQuantityMin sets the minimum order quantity.
func (o *ProductOrderDetails) SetQuantityMin(v float64) { o.quantityMin = Of(v) }
func (o *ProductOrderDetails) QuantityMin() (float64, bool) { return o.quantityMin.Get() }

// SetQuantityInterval sets the step between orderable quantities.
func (o *ProductOrderDetails) SetQuantityInterval(v float64) { o.quantityInterval = Of(v) }
func (o *ProductOrderDetails) QuantityInterval() (float64, bool) { return o.quantityInterval.Get() }

func (*ProductOrderDetails) NodeName() string { return "PRODUCT_ORDER_DETAILS" }
func (*ProductOrderDetails) Attributes() []Attr { return nil }

func (o *ProductOrderDetails) Members() []Member {
	return []Member{
		scalar("ORDER_UNIT", o.orderUnit),
		scalar("CONTENT_UNIT", o.contentUnit),
		scalar("NO_CU_PER_OU", o.noCuPerOu),
		scalar("PRICE_QUANTITY", o.priceQuantity),
		scalar("QUANTITY_MIN", o.quantityMin),
		scalar("QUANTITY_INTERVAL", o.quantityInterval),
	}
}
