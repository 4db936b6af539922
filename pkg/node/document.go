package node

import "time"

// Document is the root aggregate: one Header and one catalog body.
type Document struct {
	header     *Header
	newCatalog *NewCatalog
}

// NewDocument returns a document with an empty header and an empty catalog
// body attached.
func NewDocument() *Document {
	return &Document{
		header:     NewHeader(),
		newCatalog: &NewCatalog{},
	}
}

// Header returns the attached header, nil when none is set.
func (d *Document) Header() *Header { return d.header }

// SetHeader replaces the header.
func (d *Document) SetHeader(h *Header) { d.header = h }

// NewCatalog returns the attached catalog body, nil when none is set.
func (d *Document) NewCatalog() *NewCatalog { return d.newCatalog }

// SetNewCatalog replaces the catalog body.
func (d *Document) SetNewCatalog(c *NewCatalog) { d.newCatalog = c }

func (*Document) NodeName() string { return "BMECAT" }
func (*Document) Attributes() []Attr { return nil }

func (d *Document) Members() []Member {
	return []Member{
		child(d.header),
		child(d.newCatalog),
	}
}

// Header carries generator, catalog and supplier metadata.
type Header struct {
	generatorInfo Value[string]
	catalog       *Catalog
	supplier      *Supplier
}

// NewHeader returns a header with empty catalog and supplier descriptors.
func NewHeader() *Header {
	return &Header{catalog: &Catalog{}, supplier: &Supplier{}}
}

// SetGeneratorInfo names the tool that produced the document.
func (h *Header) SetGeneratorInfo(v string) { h.generatorInfo = Of(v) }

// GeneratorInfo returns the generator name and whether it is set.
func (h *Header) GeneratorInfo() (string, bool) { return h.generatorInfo.Get() }

// Catalog returns the catalog descriptor, nil when none is set.
func (h *Header) Catalog() *Catalog { return h.catalog }

// SetCatalog replaces the catalog descriptor.
func (h *Header) SetCatalog(c *Catalog) { h.catalog = c }

// Supplier returns the supplier descriptor, nil when none is set.
func (h *Header) Supplier() *Supplier { return h.supplier }

// SetSupplier replaces the supplier descriptor.
func (h *Header) SetSupplier(s *Supplier) { h.supplier = s }

func (*Header) NodeName() string { return "HEADER" }
func (*Header) Attributes() []Attr { return nil }

func (h *Header) Members() []Member {
	return []Member{
		scalar("GENERATOR_INFO", h.generatorInfo),
		child(h.catalog),
		child(h.supplier),
	}
}

// Catalog describes the catalog being transferred.
type Catalog struct {
	language Value[string]
	id       Value[string]
	version  Value[string]
	name     Value[string]
	datetime *DateTime
	currency Value[string]
}

// SetLanguage sets the ISO 639-2 language code, e.g. "eng".
func (c *Catalog) SetLanguage(v string) { c.language = Of(v) }

// Language returns the language code and whether it is set.
func (c *Catalog) Language() (string, bool) { return c.language.Get() }

// SetID sets the catalog identifier.
func (c *Catalog) SetID(v string) { c.id = Of(v) }

// ID returns the catalog identifier and whether it is set.
func (c *Catalog) ID() (string, bool) { return c.id.Get() }

// SetVersion sets the catalog revision. It is unrelated to the format
// version written on the root element.
func (c *Catalog) SetVersion(v string) { c.version = Of(v) }
func (c *Catalog) Version() (string, bool) { return c.version.Get() }

// SetName sets the display name.
func (c *Catalog) SetName(v string) { c.name = Of(v) }
func (c *Catalog) Name() (string, bool) { return c.name.Get() }

// SetCurrency sets the default currency for prices without one.
func (c *Catalog) SetCurrency(v string) { c.currency = Of(v) }
func (c *Catalog) Currency() (string, bool) { return c.currency.Get() }

// SetDateTime attaches the generation timestamp. Nil clears it.
func (c *Catalog) SetDateTime(dt *DateTime) { c.datetime = dt }

// DateTime returns the generation timestamp, nil when none is set.
func (c *Catalog) DateTime() *DateTime { return c.datetime }

func (*Catalog) NodeName() string { return "CATALOG" }
func (*Catalog) Attributes() []Attr { return nil }

func (c *Catalog) Members() []Member {
	return []Member{
		scalar("LANGUAGE", c.language),
		scalar("CATALOG_ID", c.id),
		scalar("CATALOG_VERSION", c.version),
		scalar("CATALOG_NAME", c.name),
		child(c.datetime),
		scalar("CURRENCY", c.currency),
	}
}

// DateTime is the catalog generation timestamp, written as three elements.
type DateTime struct {
	date     Value[string]
	time     Value[string]
	timezone Value[string]
}

// DateTimeOf splits t into its date, time and timezone elements.
func DateTimeOf(t time.Time) *DateTime {
	dt := &DateTime{}
	dt.SetDate(t.Format("2006-01-02"))
	dt.SetTime(t.Format("15:04:05"))
	dt.SetTimezone(t.Format("-07:00"))
	return dt
}

// SetDate sets the date text, formatted YYYY-MM-DD.
func (d *DateTime) SetDate(v string) { d.date = Of(v) }
func (d *DateTime) Date() (string, bool) { return d.date.Get() }

// SetTime sets the time text, formatted hh:mm:ss.
func (d *DateTime) SetTime(v string) { d.time = Of(v) }
func (d *DateTime) Time() (string, bool) { return d.time.Get() }

// SetTimezone sets the UTC offset, e.g. "-01:00".
func (d *DateTime) SetTimezone(v string) { d.timezone = Of(v) }
func (d *DateTime) Timezone() (string, bool) { return d.timezone.Get() }

func (*DateTime) NodeName() string { return "DATETIME" }

func (*DateTime) Attributes() []Attr {
	return []Attr{{Name: "type", Value: "generation_date"}}
}

func (d *DateTime) Members() []Member {
	return []Member{
		scalar("DATE", d.date),
		scalar("TIME", d.time),
		scalar("TIMEZONE", d.timezone),
	}
}

// Supplier identifies the catalog supplier.
type Supplier struct {
	id   Value[string]
	name Value[string]
}

// SetID sets the supplier identifier.
func (s *Supplier) SetID(v string) { s.id = Of(v) }

// ID returns the supplier identifier and whether it is set.
func (s *Supplier) ID() (string, bool) { return s.id.Get() }

// SetName sets the supplier name.
func (s *Supplier) SetName(v string) { s.name = Of(v) }
func (s *Supplier) Name() (string, bool) { return s.name.Get() }

func (*Supplier) NodeName() string { return "SUPPLIER" }
func (*Supplier) Attributes() []Attr { return nil }

func (s *Supplier) Members() []Member {
	return []Member{
		scalar("SUPPLIER_ID", s.id),
		scalar("SUPPLIER_NAME", s.name),
	}
}
