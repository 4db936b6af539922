package node

// NewCatalog is the body of a "new catalog" transaction.
type NewCatalog struct {
	products []*Product
}

// AddProduct appends p to the catalog. Nil products are ignored.
func (c *NewCatalog) AddProduct(p *Product) {
	if p == nil {
		return
	}
	c.products = append(c.products, p)
}

// Products returns the attached products in insertion order.
func (c *NewCatalog) Products() []*Product {
	return append([]*Product(nil), c.products...)
}

func (*NewCatalog) NodeName() string { return "T_NEW_CATALOG" }
func (*NewCatalog) Attributes() []Attr { return nil }

func (c *NewCatalog) Members() []Member {
	return []Member{list("PRODUCT", c.products)}
}
