package node

// Product is a single catalog article keyed by its supplier product id.
type Product struct {
	id           Value[string]
	details      *ProductDetails
	prices       []*ProductPrice
	features     []*ProductFeatures
	mimes        []*Mime
	orderDetails *ProductOrderDetails
}

// SetID sets the supplier product id.
func (p *Product) SetID(v string) { p.id = Of(v) }

// ID returns the supplier product id and whether it is set.
func (p *Product) ID() (string, bool) { return p.id.Get() }

// SetDetails attaches the descriptive block. Nil clears it.
func (p *Product) SetDetails(d *ProductDetails) { p.details = d }

// Details returns the descriptive block, nil when none is set.
func (p *Product) Details() *ProductDetails { return p.details }

// AddPrice appends a price. Nil values are ignored.
func (p *Product) AddPrice(v *ProductPrice) {
	if v != nil {
		p.prices = append(p.prices, v)
	}
}

// AddFeatures appends a feature block. Nil values are ignored.
func (p *Product) AddFeatures(v *ProductFeatures) {
	if v != nil {
		p.features = append(p.features, v)
	}
}

// AddMime appends a mime entry. Nil values are ignored.
func (p *Product) AddMime(v *Mime) {
	if v != nil {
		p.mimes = append(p.mimes, v)
	}
}

// SetOrderDetails attaches the single order details block, replacing any
// previous one.
func (p *Product) SetOrderDetails(v *ProductOrderDetails) { p.orderDetails = v }

// OrderDetails returns the order details block, nil when none is set.
func (p *Product) OrderDetails() *ProductOrderDetails { return p.orderDetails }

// Prices returns a copy of the prices in insertion order.
func (p *Product) Prices() []*ProductPrice { return append([]*ProductPrice(nil), p.prices...) }

// Features returns a copy of the feature blocks in insertion order.
func (p *Product) Features() []*ProductFeatures { return append([]*ProductFeatures(nil), p.features...) }

// Mimes returns a copy of the mime entries in insertion order.
func (p *Product) Mimes() []*Mime { return append([]*Mime(nil), p.mimes...) }

func (*Product) NodeName() string { return "PRODUCT" }
func (*Product) Attributes() []Attr { return nil }

func (p *Product) Members() []Member {
	return []Member{
		scalar("SUPPLIER_PID", p.id),
		child(p.details),
		wrapped("PRODUCT_PRICE_DETAILS", p.prices),
		list("PRODUCT_FEATURES", p.features),
		wrapped("MIME_INFO", p.mimes),
		child(p.orderDetails),
	}
}

// ProductDetails holds the descriptive texts of a product.
type ProductDetails struct {
	descriptionShort Value[string]
	descriptionLong  Value[string]
	ean              Value[string]
	manufacturerName Value[string]
}

// SetDescriptionShort sets the one-line description.
func (d *ProductDetails) SetDescriptionShort(v string) { d.descriptionShort = Of(v) }
func (d *ProductDetails) DescriptionShort() (string, bool) { return d.descriptionShort.Get() }

// SetDescriptionLong sets the long description. It may carry simple markup.
func (d *ProductDetails) SetDescriptionLong(v string) { d.descriptionLong = Of(v) }
func (d *ProductDetails) DescriptionLong() (string, bool) { return d.descriptionLong.Get() }

// SetEAN sets the international article number.
func (d *ProductDetails) SetEAN(v string) { d.ean = Of(v) }
func (d *ProductDetails) EAN() (string, bool) { return d.ean.Get() }

// SetManufacturerName sets the manufacturer name.
func (d *ProductDetails) SetManufacturerName(v string) { d.manufacturerName = Of(v) }
func (d *ProductDetails) ManufacturerName() (string, bool) { return d.manufacturerName.Get() }

func (*ProductDetails) NodeName() string { return "PRODUCT_DETAILS" }
func (*ProductDetails) Attributes() []Attr { return nil }

func (d *ProductDetails) Members() []Member {
	return []Member{
		scalar("DESCRIPTION_SHORT", d.descriptionShort),
		scalar(DescriptionLongElement, d.descriptionLong),
		scalar("EAN", d.ean),
		scalar("MANUFACTURER_NAME", d.manufacturerName),
	}
}

// DescriptionLongElement is the element whose text may carry markup.
const DescriptionLongElement = "DESCRIPTION_LONG"
