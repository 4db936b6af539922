package serialize

import (
	"io"
	"strings"

	"github.com/beevik/etree"

	bmeerrors "github.com/goliatone/go-bmecat/pkg/errors"
	"github.com/goliatone/go-bmecat/pkg/node"
)

const indentSpaces = 2

// Serialize renders doc to XML text. The output is a pure function of the
// tree and opts and always ends with a single newline.
func Serialize(doc *node.Document, opts Options) (string, error) {
	tree, err := Tree(doc, opts)
	if err != nil {
		return "", err
	}
	tree.Indent(indentSpaces)
	out, err := tree.WriteToString()
	if err != nil {
		return "", bmeerrors.NewSerializationError(doc.NodeName(), "write xml", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

// Write renders doc and writes the XML text to w. Nothing is written when
// rendering fails.
func Write(w io.Writer, doc *node.Document, opts Options) (int64, error) {
	out, err := Serialize(doc, opts)
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}

// Tree builds the element tree for doc without indentation. It fails with a
// *errors.SerializationError when the document has no header and with a
// *errors.ConfigurationError when the version is unknown.
func Tree(doc *node.Document, opts Options) (*etree.Document, error) {
	if doc == nil {
		return nil, bmeerrors.NewSerializationError("BMECAT", "document is nil", nil)
	}
	if doc.Header() == nil {
		return nil, bmeerrors.NewSerializationError("HEADER", "document has no header", nil)
	}
	version, err := opts.registry().Resolve(opts.version())
	if err != nil {
		return nil, err
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := out.CreateElement(doc.NodeName())
	root.CreateAttr("version", version.ID)
	root.CreateAttr("xmlns", version.Namespace)

	w := walker{opts: opts}
	if err := w.members(root, doc); err != nil {
		return nil, err
	}
	return out, nil
}

type walker struct {
	opts Options
}

func (w walker) node(parent *etree.Element, n node.Node) error {
	el := parent.CreateElement(n.NodeName())
	for _, attr := range n.Attributes() {
		if err := CheckText(attr.Value); err != nil {
			return bmeerrors.NewSerializationError(n.NodeName()+"@"+attr.Name, "invalid xml character", err)
		}
		el.CreateAttr(attr.Name, attr.Value)
	}
	return w.members(el, n)
}

func (w walker) members(el *etree.Element, n node.Node) error {
	for _, m := range n.Members() {
		switch m.Kind {
		case node.KindScalar:
			if err := w.scalar(el, n, m); err != nil {
				return err
			}
		case node.KindNode:
			switch {
			case m.Node != nil:
				if err := w.node(el, m.Node); err != nil {
					return err
				}
			case w.opts.SerializeNull && m.Zero != nil:
				if err := w.node(el, m.Zero); err != nil {
					return err
				}
			}
		case node.KindList:
			for _, item := range m.Nodes {
				if err := w.node(el, item); err != nil {
					return err
				}
			}
		case node.KindWrappedList:
			if len(m.Nodes) == 0 && !w.opts.SerializeNull {
				continue
			}
			wrapper := el.CreateElement(m.Name)
			for _, item := range m.Nodes {
				if err := w.node(wrapper, item); err != nil {
					return err
				}
			}
		default:
			return bmeerrors.NewSerializationError(n.NodeName(), "unsupported member kind "+m.Kind.String(), nil)
		}
	}
	return nil
}

func (w walker) scalar(el *etree.Element, owner node.Node, m node.Member) error {
	if !m.Set {
		if w.opts.SerializeNull {
			el.CreateElement(m.Name)
		}
		return nil
	}
	text, err := FormatValue(m.Value)
	if err != nil {
		return bmeerrors.NewSerializationError(owner.NodeName()+"/"+m.Name, "format value", err)
	}
	if w.opts.SanitizeDescriptions && m.Name == node.DescriptionLongElement {
		text = SanitizeMarkup(text)
	}
	if err := CheckText(text); err != nil {
		return bmeerrors.NewSerializationError(owner.NodeName()+"/"+m.Name, "invalid xml character", err)
	}
	leaf := el.CreateElement(m.Name)
	if text != "" {
		leaf.SetText(text)
	}
	return nil
}
