package builder

import (
	"bytes"
	"errors"
	"io"
	"reflect"

	"gopkg.in/yaml.v3"

	bmeerrors "github.com/goliatone/go-bmecat/pkg/errors"
	"github.com/goliatone/go-bmecat/pkg/node"
)

// Config is the typed form of the nested configuration consumed by Load.
// Nil leaves are left unset on the document.
type Config struct {
	Document DocumentConfig `yaml:"document" json:"document"`
}

// DocumentConfig holds the header, optional bulk product data and the
// format version to write.
type DocumentConfig struct {
	FormatVersion *string           `yaml:"format_version,omitempty" json:"format_version,omitempty"`
	Header        *HeaderConfig     `yaml:"header,omitempty" json:"header,omitempty"`
	NewCatalog    *NewCatalogConfig `yaml:"new_catalog,omitempty" json:"new_catalog,omitempty"`
}

type HeaderConfig struct {
	GeneratorInfo *string         `yaml:"generator_info,omitempty" json:"generator_info,omitempty"`
	Catalog       *CatalogConfig  `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Supplier      *SupplierConfig `yaml:"supplier,omitempty" json:"supplier,omitempty"`
}

type CatalogConfig struct {
	Language *string         `yaml:"language,omitempty" json:"language,omitempty"`
	ID       *string         `yaml:"id,omitempty" json:"id,omitempty"`
	Version  *string         `yaml:"version,omitempty" json:"version,omitempty"`
	Name     *string         `yaml:"name,omitempty" json:"name,omitempty"`
	DateTime *DateTimeConfig `yaml:"datetime,omitempty" json:"datetime,omitempty"`
	Currency *string         `yaml:"currency,omitempty" json:"currency,omitempty"`
}

type DateTimeConfig struct {
	Date     *string `yaml:"date,omitempty" json:"date,omitempty"`
	Time     *string `yaml:"time,omitempty" json:"time,omitempty"`
	Timezone *string `yaml:"timezone,omitempty" json:"timezone,omitempty"`
}

type SupplierConfig struct {
	ID   *string `yaml:"id,omitempty" json:"id,omitempty"`
	Name *string `yaml:"name,omitempty" json:"name,omitempty"`
}

type NewCatalogConfig struct {
	Products []ProductConfig `yaml:"products,omitempty" json:"products,omitempty"`
}

type ProductConfig struct {
	ID           *string               `yaml:"id,omitempty" json:"id,omitempty"`
	Details      *ProductDetailsConfig `yaml:"details,omitempty" json:"details,omitempty"`
	Prices       []PriceConfig         `yaml:"prices,omitempty" json:"prices,omitempty"`
	Features     []FeaturesConfig      `yaml:"features,omitempty" json:"features,omitempty"`
	Mimes        []MimeConfig          `yaml:"mimes,omitempty" json:"mimes,omitempty"`
	OrderDetails *OrderDetailsConfig   `yaml:"order_details,omitempty" json:"order_details,omitempty"`
}

type ProductDetailsConfig struct {
	DescriptionShort *string `yaml:"description_short,omitempty" json:"description_short,omitempty"`
	DescriptionLong  *string `yaml:"description_long,omitempty" json:"description_long,omitempty"`
	EAN              *string `yaml:"ean,omitempty" json:"ean,omitempty"`
	ManufacturerName *string `yaml:"manufacturer_name,omitempty" json:"manufacturer_name,omitempty"`
}

type PriceConfig struct {
	Price         *float64 `yaml:"price,omitempty" json:"price,omitempty"`
	Currency      *string  `yaml:"currency,omitempty" json:"currency,omitempty"`
	SupplierPrice *float64 `yaml:"supplier_price,omitempty" json:"supplier_price,omitempty"`
}

type FeaturesConfig struct {
	ReferenceFeatureSystemName *string         `yaml:"reference_feature_system_name,omitempty" json:"reference_feature_system_name,omitempty"`
	ReferenceFeatureGroupName  *string         `yaml:"reference_feature_group_name,omitempty" json:"reference_feature_group_name,omitempty"`
	ReferenceFeatureGroupID    *string         `yaml:"reference_feature_group_id,omitempty" json:"reference_feature_group_id,omitempty"`
	Features                   []FeatureConfig `yaml:"features,omitempty" json:"features,omitempty"`
	SerialNumberRequired       *bool           `yaml:"serial_number_required,omitempty" json:"serial_number_required,omitempty"`
	CustomsTariffNumber        *string         `yaml:"customs_tariff_number,omitempty" json:"customs_tariff_number,omitempty"`
	CustomsCountryOfOrigin     *string         `yaml:"customs_country_of_origin,omitempty" json:"customs_country_of_origin,omitempty"`
	CustomsTariffText          *string         `yaml:"customs_tariff_text,omitempty" json:"customs_tariff_text,omitempty"`
}

type FeatureConfig struct {
	Name  *string `yaml:"name,omitempty" json:"name,omitempty"`
	Value *string `yaml:"value,omitempty" json:"value,omitempty"`
	Unit  *string `yaml:"unit,omitempty" json:"unit,omitempty"`
}

type MimeConfig struct {
	Type        *string `yaml:"type,omitempty" json:"type,omitempty"`
	Source      *string `yaml:"source,omitempty" json:"source,omitempty"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
	Alt         *string `yaml:"alt,omitempty" json:"alt,omitempty"`
	Purpose     *string `yaml:"purpose,omitempty" json:"purpose,omitempty"`
}

type OrderDetailsConfig struct {
	OrderUnit        *string  `yaml:"order_unit,omitempty" json:"order_unit,omitempty"`
	ContentUnit      *string  `yaml:"content_unit,omitempty" json:"content_unit,omitempty"`
	NoCuPerOu        *float64 `yaml:"no_cu_per_ou,omitempty" json:"no_cu_per_ou,omitempty"`
	PriceQuantity    *float64 `yaml:"price_quantity,omitempty" json:"price_quantity,omitempty"`
	QuantityMin      *float64 `yaml:"quantity_min,omitempty" json:"quantity_min,omitempty"`
	QuantityInterval *float64 `yaml:"quantity_interval,omitempty" json:"quantity_interval,omitempty"`
}

// DecodeMap converts a nested key/value mapping into a Config. The top level
// must be a map; a nested value of the wrong shape also fails. Unknown keys
// are ignored unless strict is set.
func DecodeMap(raw any, strict bool) (Config, error) {
	if raw == nil {
		return Config{}, bmeerrors.NewConfigurationError("", "configuration is nil", nil)
	}
	if kind := reflect.ValueOf(raw).Kind(); kind != reflect.Map {
		return Config{}, bmeerrors.NewConfigurationError("", "top level must be a mapping, got "+kind.String(), nil)
	}
	tree, err := normalize("", reflect.ValueOf(raw), configType, strict)
	if err != nil {
		return Config{}, err
	}
	data, err := yaml.Marshal(tree)
	if err != nil {
		return Config{}, bmeerrors.NewConfigurationError("", "encode mapping", err)
	}
	return DecodeYAML(bytes.NewReader(data), strict)
}

// DecodeYAML reads a Config from YAML or JSON text. An empty input yields an
// empty Config.
func DecodeYAML(r io.Reader, strict bool) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(strict)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, bmeerrors.NewConfigurationError("", "decode configuration", err)
	}
	return cfg, nil
}

// Apply writes the set leaves of c onto doc, creating header, catalog,
// supplier and datetime nodes as needed. Products are appended to the
// catalog body.
func (c Config) Apply(doc *node.Document) {
	if h := c.Document.Header; h != nil {
		header := doc.Header()
		if header == nil {
			header = node.NewHeader()
			doc.SetHeader(header)
		}
		h.apply(header)
	}
	if nc := c.Document.NewCatalog; nc != nil && len(nc.Products) > 0 {
		body := doc.NewCatalog()
		if body == nil {
			body = &node.NewCatalog{}
			doc.SetNewCatalog(body)
		}
		for _, p := range nc.Products {
			body.AddProduct(p.Node())
		}
	}
}

// Keys returns the dotted paths of the leaves set in c, in field order.
func (c Config) Keys() []string {
	var keys []string
	add := func(path string, set bool) {
		if set {
			keys = append(keys, path)
		}
	}
	add("document.format_version", c.Document.FormatVersion != nil)
	h := c.Document.Header
	if h == nil {
		return keys
	}
	add("document.header.generator_info", h.GeneratorInfo != nil)
	if cat := h.Catalog; cat != nil {
		add("document.header.catalog.language", cat.Language != nil)
		add("document.header.catalog.id", cat.ID != nil)
		add("document.header.catalog.version", cat.Version != nil)
		add("document.header.catalog.name", cat.Name != nil)
		if dt := cat.DateTime; dt != nil {
			add("document.header.catalog.datetime.date", dt.Date != nil)
			add("document.header.catalog.datetime.time", dt.Time != nil)
			add("document.header.catalog.datetime.timezone", dt.Timezone != nil)
		}
		add("document.header.catalog.currency", cat.Currency != nil)
	}
	if sup := h.Supplier; sup != nil {
		add("document.header.supplier.id", sup.ID != nil)
		add("document.header.supplier.name", sup.Name != nil)
	}
	return keys
}

func (h *HeaderConfig) apply(header *node.Header) {
	setString(h.GeneratorInfo, header.SetGeneratorInfo)

	if c := h.Catalog; c != nil {
		catalog := header.Catalog()
		if catalog == nil {
			catalog = &node.Catalog{}
			header.SetCatalog(catalog)
		}
		setString(c.Language, catalog.SetLanguage)
		setString(c.ID, catalog.SetID)
		setString(c.Version, catalog.SetVersion)
		setString(c.Name, catalog.SetName)
		setString(c.Currency, catalog.SetCurrency)
		if dt := c.DateTime; dt != nil {
			target := catalog.DateTime()
			if target == nil {
				target = &node.DateTime{}
				catalog.SetDateTime(target)
			}
			setString(dt.Date, target.SetDate)
			setString(dt.Time, target.SetTime)
			setString(dt.Timezone, target.SetTimezone)
		}
	}

	if s := h.Supplier; s != nil {
		supplier := header.Supplier()
		if supplier == nil {
			supplier = &node.Supplier{}
			header.SetSupplier(supplier)
		}
		setString(s.ID, supplier.SetID)
		setString(s.Name, supplier.SetName)
	}
}

// Node builds a standalone product from the configuration.
func (p ProductConfig) Node() *node.Product {
	product := &node.Product{}
	setString(p.ID, product.SetID)

	if d := p.Details; d != nil {
		details := &node.ProductDetails{}
		setString(d.DescriptionShort, details.SetDescriptionShort)
		setString(d.DescriptionLong, details.SetDescriptionLong)
		setString(d.EAN, details.SetEAN)
		setString(d.ManufacturerName, details.SetManufacturerName)
		product.SetDetails(details)
	}

	for _, pc := range p.Prices {
		price := &node.ProductPrice{}
		setFloat(pc.Price, price.SetPrice)
		setString(pc.Currency, price.SetCurrency)
		setFloat(pc.SupplierPrice, price.SetSupplierPrice)
		product.AddPrice(price)
	}

	for _, fc := range p.Features {
		features := &node.ProductFeatures{}
		setString(fc.ReferenceFeatureSystemName, features.SetReferenceFeatureSystemName)
		setString(fc.ReferenceFeatureGroupName, features.SetReferenceFeatureGroupName)
		setString(fc.ReferenceFeatureGroupID, features.SetReferenceFeatureGroupID)
		for _, f := range fc.Features {
			feature := &node.Feature{}
			setString(f.Name, feature.SetName)
			setString(f.Value, feature.SetValue)
			setString(f.Unit, feature.SetUnit)
			features.AddFeature(feature)
		}
		if fc.SerialNumberRequired != nil {
			features.SetSerialNumberRequired(*fc.SerialNumberRequired)
		}
		setString(fc.CustomsTariffNumber, features.SetCustomsTariffNumber)
		setString(fc.CustomsCountryOfOrigin, features.SetCustomsCountryOfOrigin)
		setString(fc.CustomsTariffText, features.SetCustomsTariffText)
		product.AddFeatures(features)
	}

	for _, mc := range p.Mimes {
		mime := &node.Mime{}
		setString(mc.Type, mime.SetType)
		setString(mc.Source, mime.SetSource)
		setString(mc.Description, mime.SetDescription)
		setString(mc.Alt, mime.SetAlt)
		setString(mc.Purpose, mime.SetPurpose)
		product.AddMime(mime)
	}

	if oc := p.OrderDetails; oc != nil {
		details := &node.ProductOrderDetails{}
		setString(oc.OrderUnit, details.SetOrderUnit)
		setString(oc.ContentUnit, details.SetContentUnit)
		setFloat(oc.NoCuPerOu, details.SetNoCuPerOu)
		setFloat(oc.PriceQuantity, details.SetPriceQuantity)
		setFloat(oc.QuantityMin, details.SetQuantityMin)
		setFloat(oc.QuantityInterval, details.SetQuantityInterval)
		product.SetOrderDetails(details)
	}

	return product
}

func setString(v *string, set func(string)) {
	if v != nil {
		set(*v)
	}
}

func setFloat(v *float64, set func(float64)) {
	if v != nil {
		set(*v)
	}
}
