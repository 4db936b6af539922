package node

// Mime references an additional document such as a product image.
type Mime struct {
	mimeType    Value[string]
	source      Value[string]
	description Value[string]
	alt         Value[string]
	purpose     Value[string]
}

// SetType sets the media type, e.g. "image/jpeg".
func (m *Mime) SetType(v string) { m.mimeType = Of(v) }
func (m *Mime) Type() (string, bool) { return m.mimeType.Get() }

// SetSource sets the file path or URL of the referenced document.
func (m *Mime) SetSource(v string) { m.source = Of(v) }
func (m *Mime) Source() (string, bool) { return m.source.Get() }

// SetDescription sets a short caption.
func (m *Mime) SetDescription(v string) { m.description = Of(v) }
func (m *Mime) Description() (string, bool) { return m.description.Get() }

// SetAlt sets the alternative text.
func (m *Mime) SetAlt(v string) { m.alt = Of(v) }
func (m *Mime) Alt() (string, bool) { return m.alt.Get() }

// SetPurpose sets the usage hint, e.g. "normal" or "thumbnail". Values are
// checked by the schema only.
func (m *Mime) SetPurpose(v string) { m.purpose = Of(v) }
func (m *Mime) Purpose() (string, bool) { return m.purpose.Get() }

func (*Mime) NodeName() string { return "MIME" }
func (*Mime) Attributes() []Attr { return nil }

func (m *Mime) Members() []Member {
	return []Member{
		scalar("MIME_TYPE", m.mimeType),
		scalar("MIME_SOURCE", m.source),
		scalar("MIME_DESCR", m.description),
		scalar("MIME_ALT", m.alt),
		scalar("MIME_PURPOSE", m.purpose),
	}
}
