package node

// ProductPrice is one price entry of a product.
type ProductPrice struct {
	price         Value[float64]
	currency      Value[string]
	supplierPrice Value[float64]
}

// SetPrice sets the net amount.
func (p *ProductPrice) SetPrice(v float64) { p.price = Of(v) }

// Price returns the net amount and whether it is set.
func (p *ProductPrice) Price() (float64, bool) { return p.price.Get() }

// SetCurrency sets the ISO 4217 currency code.
func (p *ProductPrice) SetCurrency(v string) { p.currency = Of(v) }
func (p *ProductPrice) Currency() (string, bool) { return p.currency.Get() }

// SetSupplierPrice sets the supplier's own price for the same quantity.
func (p *ProductPrice) SetSupplierPrice(v float64) { p.supplierPrice = Of(v) }
func (p *ProductPrice) SupplierPrice() (float64, bool) { return p.supplierPrice.Get() }

func (*ProductPrice) NodeName() string { return "PRODUCT_PRICE" }
func (*ProductPrice) Attributes() []Attr { return nil }

func (p *ProductPrice) Members() []Member {
	return []Member{
		scalar("PRICE_AMOUNT", p.price),
		scalar("PRICE_CURRENCY", p.currency),
		scalar("SUPPLIER_PRICE", p.supplierPrice),
	}
}
