// Package testsupport holds fixtures and golden helpers shared by package
// tests.
package testsupport

import (
	"math"

	"github.com/goliatone/go-bmecat/pkg/node"
)

// ReferenceConfig returns the header configuration of the reference catalog
// as a nested mapping.
func ReferenceConfig() map[string]any {
	return map[string]any{
		"document": map[string]any{
			"header": map[string]any{
				"generator_info": "DocumentTest Document",
				"catalog": map[string]any{
					"language": "eng",
					"id":       "MY_CATALOG",
					"version":  "0.99",
					"datetime": map[string]any{
						"date":     "1979-01-01",
						"time":     "10:59:54",
						"timezone": "-01:00",
					},
				},
				"supplier": map[string]any{
					"id":   "BMECAT_TEST",
					"name": "TestSupplier",
				},
			},
		},
	}
}

// ReferenceHeader builds the header described by ReferenceConfig directly on
// nodes.
func ReferenceHeader() *node.Header {
	header := node.NewHeader()
	header.SetGeneratorInfo("DocumentTest Document")

	catalog := header.Catalog()
	catalog.SetLanguage("eng")
	catalog.SetID("MY_CATALOG")
	catalog.SetVersion("0.99")

	dt := &node.DateTime{}
	dt.SetDate("1979-01-01")
	dt.SetTime("10:59:54")
	dt.SetTimezone("-01:00")
	catalog.SetDateTime(dt)

	supplier := header.Supplier()
	supplier.SetID("BMECAT_TEST")
	supplier.SetName("TestSupplier")
	return header
}

type priceRow struct {
	currency string
	amount   float64
}

type featuresRow struct {
	systemName, groupName, groupID string
	serialNumber                   bool
	tariffNumber                   string
	countryOfOrigin, tariffText    string
}

type mimeRow struct {
	mimeType, source, purpose string
}

// ReferenceCatalog builds the three product catalog body used by the golden
// documents. Every product carries two prices, two feature blocks, two mime
// entries and order details.
func ReferenceCatalog() *node.NewCatalog {
	catalog := &node.NewCatalog{}
	for _, id := range []string{"1", "2", "3"} {
		catalog.AddProduct(ReferenceProduct(id))
	}
	return catalog
}

// ReferenceProduct builds one product of the reference catalog.
func ReferenceProduct(id string) *node.Product {
	product := &node.Product{}
	product.SetID(id)

	for _, row := range []priceRow{{"EUR", 10.50}, {"GBP", 7.30}} {
		price := &node.ProductPrice{}
		price.SetPrice(row.amount)
		price.SetCurrency(row.currency)
		price.SetSupplierPrice(math.Round(row.amount/2*100) / 100)
		product.AddPrice(price)
	}

	for _, row := range []featuresRow{
		{"A", "B", "C", true, "2", "D", "E"},
		{"F", "G", "H", false, "4", "I", "J"},
	} {
		features := &node.ProductFeatures{}
		features.SetReferenceFeatureSystemName(row.systemName)
		features.SetReferenceFeatureGroupName(row.groupName)
		features.SetReferenceFeatureGroupID(row.groupID)
		features.SetSerialNumberRequired(row.serialNumber)
		features.SetCustomsTariffNumber(row.tariffNumber)
		features.SetCustomsCountryOfOrigin(row.countryOfOrigin)
		features.SetCustomsTariffText(row.tariffText)
		product.AddFeatures(features)
	}

	for _, row := range []mimeRow{
		{"image/jpeg", "http://a.b/c/d.jpg", "normal"},
		{"image/bmp", "http://w.x/y/z.bmp", "thumbnail"},
	} {
		mime := &node.Mime{}
		mime.SetType(row.mimeType)
		mime.SetSource(row.source)
		mime.SetPurpose(row.purpose)
		product.AddMime(mime)
	}

	order := &node.ProductOrderDetails{}
	order.SetNoCuPerOu(1)
	order.SetPriceQuantity(1)
	order.SetQuantityMin(1)
	order.SetQuantityInterval(1)
	product.SetOrderDetails(order)

	return product
}

// ReferenceDocument assembles the reference header and catalog body.
func ReferenceDocument() *node.Document {
	doc := node.NewDocument()
	doc.SetHeader(ReferenceHeader())
	doc.SetNewCatalog(ReferenceCatalog())
	return doc
}
