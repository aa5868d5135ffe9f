package formats

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"

	"github.com/gokig/kigcore/document"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
)

// NativeVersion is the format version written into every KigDocument
// root element, matching the original's saveFile convention.
const NativeVersion = "2.0.000"

// Sentinel errors for the native format. All are structural failures:
// a malformed file, not a valueless calculation result.
var (
	ErrMalformed       = errors.New("formats: malformed native document")
	ErrForwardRef      = errors.New("formats: node refers to itself or a later node")
	ErrUnsupportedImp  = errors.New("formats: Imp kind cannot be serialized as a Fetch leaf")
	ErrUnknownDataType = errors.New("formats: unknown Fetch type attribute")
)

// xmlDocument is the KigDocument root: a single shared ObjectHierarchy
// node list plus the subset of its nodes that are Document Holders
// (Object elements, index into the hierarchy). Legacy files predating
// the hierarchy format instead carry standalone Point elements, read
// as backward compatibility and always treated as independent of
// any ObjectHierarchy in the same file.
type xmlDocument struct {
	XMLName      xml.Name         `xml:"KigDocument"`
	Version      string           `xml:"Version,attr"`
	LegacyPoints []xmlLegacyPoint `xml:"Point"`
	Hierarchy    xmlHierarchy     `xml:"ObjectHierarchy"`
	Objects      []xmlObjectRef   `xml:"Object"`
}

// xmlLegacyPoint is the pre-hierarchy standalone <Point x="…" y="…"/>
// format, materialized as a Data-backed FixedPoint holder.
type xmlLegacyPoint struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
}

// xmlObjectRef names one hierarchy node index as a Document Holder:
// each Holder's index is carried by its own Object child element, not
// by an attribute of the root element. Nodes
// of the hierarchy that are never referenced by an Object element are
// pure supporting nodes (e.g. a Fetch feeding an Apply) with no Holder
// of their own.
type xmlObjectRef struct {
	Index int    `xml:"index,attr"`
	Label string `xml:"label,attr"`
	Shown bool   `xml:"shown,attr"`
}

// hierarchyNode is one Given/Fetch/Property/Apply entry of an
// xmlHierarchy. Kind selects which of the remaining fields apply;
// xmlHierarchy's own Marshal/Unmarshal methods are responsible for
// round-tripping it to the distinct element names this format uses,
// since encoding/xml has no built-in notion of an ordered,
// heterogeneously-named element list.
//
// The element names follow the recipe vocabulary literally: Given is
// an empty input slot (type attribute only, no payload) and Fetch is
// a reference to a fixed Imp — a captured constant, carrying the
// payload. A Document's own objgraph.PropertyKind nodes (reading a
// numbered property off an earlier node's Imp) are a third, distinct
// shape with no payload of their own; they serialize as Property,
// named apart from Fetch so the wire format doesn't conflate "holds a
// constant" with "reads a property".
type hierarchyNode struct {
	Kind string // "Given", "Fetch", "Property", or "Apply"

	// Given (empty slot) and Fetch (captured constant)
	Type  string
	X, Y  *float64
	Value string

	// Property
	PropSource int
	PropIndex  int

	// Apply
	ApplyArgs []int
}

type xmlHierarchy struct {
	Nodes []hierarchyNode
}

func (h xmlHierarchy) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "ObjectHierarchy"}
	start.Attr = nil
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, n := range h.Nodes {
		switch n.Kind {
		case "Given":
			el := xml.StartElement{Name: xml.Name{Local: "Given"}, Attr: []xml.Attr{
				{Name: xml.Name{Local: "type"}, Value: n.Type},
			}}
			if err := encodeEmpty(e, el); err != nil {
				return err
			}
		case "Fetch":
			el := xml.StartElement{Name: xml.Name{Local: "Fetch"}}
			el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "type"}, Value: n.Type})
			if n.X != nil {
				el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "x"}, Value: formatFloat(*n.X)})
			}
			if n.Y != nil {
				el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "y"}, Value: formatFloat(*n.Y)})
			}
			if n.Value != "" {
				el.Attr = append(el.Attr, xml.Attr{Name: xml.Name{Local: "value"}, Value: n.Value})
			}
			if err := encodeEmpty(e, el); err != nil {
				return err
			}
		case "Property":
			el := xml.StartElement{Name: xml.Name{Local: "Property"}, Attr: []xml.Attr{
				{Name: xml.Name{Local: "source"}, Value: strconv.Itoa(n.PropSource)},
				{Name: xml.Name{Local: "property"}, Value: strconv.Itoa(n.PropIndex)},
			}}
			if err := encodeEmpty(e, el); err != nil {
				return err
			}
		case "Apply":
			el := xml.StartElement{Name: xml.Name{Local: "Apply"}, Attr: []xml.Attr{
				{Name: xml.Name{Local: "type"}, Value: n.Type},
			}}
			if err := e.EncodeToken(el); err != nil {
				return err
			}
			for _, a := range n.ApplyArgs {
				arg := xml.StartElement{Name: xml.Name{Local: "Arg"}, Attr: []xml.Attr{
					{Name: xml.Name{Local: "index"}, Value: strconv.Itoa(a)},
				}}
				if err := encodeEmpty(e, arg); err != nil {
					return err
				}
			}
			if err := e.EncodeToken(el.End()); err != nil {
				return err
			}
		}
	}

	return e.EncodeToken(start.End())
}

func encodeEmpty(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (h *xmlHierarchy) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node, err := decodeHierarchyNode(d, t)
			if err != nil {
				return err
			}
			h.Nodes = append(h.Nodes, node)
		case xml.EndElement:
			return nil
		}
	}
}

func decodeHierarchyNode(d *xml.Decoder, t xml.StartElement) (hierarchyNode, error) {
	switch t.Name.Local {
	case "Given":
		n := hierarchyNode{Kind: "Given"}
		for _, a := range t.Attr {
			if a.Name.Local == "type" {
				n.Type = a.Value
			}
		}
		return n, d.Skip()

	case "Fetch":
		n := hierarchyNode{Kind: "Fetch"}
		for _, a := range t.Attr {
			switch a.Name.Local {
			case "type":
				n.Type = a.Value
			case "x":
				v, err := strconv.ParseFloat(a.Value, 64)
				if err != nil {
					return n, err
				}
				n.X = &v
			case "y":
				v, err := strconv.ParseFloat(a.Value, 64)
				if err != nil {
					return n, err
				}
				n.Y = &v
			case "value":
				n.Value = a.Value
			}
		}
		return n, d.Skip()

	case "Property":
		n := hierarchyNode{Kind: "Property"}
		for _, a := range t.Attr {
			v, err := strconv.Atoi(a.Value)
			if err != nil {
				return n, err
			}
			switch a.Name.Local {
			case "source":
				n.PropSource = v
			case "property":
				n.PropIndex = v
			}
		}
		return n, d.Skip()

	case "Apply":
		n := hierarchyNode{Kind: "Apply"}
		for _, a := range t.Attr {
			if a.Name.Local == "type" {
				n.Type = a.Value
			}
		}
		for {
			tok, err := d.Token()
			if err != nil {
				return n, err
			}
			switch at := tok.(type) {
			case xml.StartElement:
				if at.Name.Local != "Arg" {
					if err := d.Skip(); err != nil {
						return n, err
					}
					continue
				}
				for _, a := range at.Attr {
					if a.Name.Local == "index" {
						v, err := strconv.Atoi(a.Value)
						if err != nil {
							return n, err
						}
						n.ApplyArgs = append(n.ApplyArgs, v)
					}
				}
				if err := d.Skip(); err != nil {
					return n, err
				}
			case xml.EndElement:
				return n, nil
			}
		}

	default:
		return hierarchyNode{}, fmt.Errorf("%w: unexpected element %q", ErrMalformed, t.Name.Local)
	}
}

// SaveDocument serializes every Holder of d, and every supporting
// ancestor Node behind them, into a single shared ObjectHierarchy
// plus one Object element per Holder naming its hierarchy index.
func SaveDocument(d *document.Document) ([]byte, error) {
	holders := d.Holders()
	roots := make([]*objgraph.Node, len(holders))
	for i, h := range holders {
		roots[i] = h.Node
	}

	flat, err := objgraph.Sort(roots)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	index := make(map[uint64]int, len(flat))
	for i, n := range flat {
		index[n.ID()] = i
	}

	out := xmlDocument{Version: NativeVersion}
	out.Hierarchy.Nodes = make([]hierarchyNode, len(flat))
	for i, n := range flat {
		parents := n.Parents()
		switch n.Kind() {
		case objgraph.DataKind:
			constant, err := serializeConstant(n.Imp())
			if err != nil {
				return nil, err
			}
			out.Hierarchy.Nodes[i] = constant
		case objgraph.PropertyKind:
			if len(parents) != 1 {
				return nil, fmt.Errorf("%w: property node has %d parents", ErrMalformed, len(parents))
			}
			out.Hierarchy.Nodes[i] = hierarchyNode{
				Kind:       "Property",
				PropSource: index[parents[0].ID()],
				PropIndex:  n.PropertyIndex(),
			}
		case objgraph.TypedKind:
			args := make([]int, len(parents))
			for k, p := range parents {
				args[k] = index[p.ID()]
			}
			out.Hierarchy.Nodes[i] = hierarchyNode{
				Kind:      "Apply",
				Type:      n.ObjectType().Name(),
				ApplyArgs: args,
			}
		}
	}

	for _, h := range holders {
		out.Objects = append(out.Objects, xmlObjectRef{
			Index: index[h.Node.ID()],
			Label: h.Label,
			Shown: h.Shown,
		})
	}

	body, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return append([]byte(xml.Header), body...), nil
}

// LoadDocument parses the native XML format and rebuilds a
// document.Document. Legacy standalone Point elements are materialized
// first, each as its own Holder, ahead of the shared hierarchy's nodes.
func LoadDocument(data []byte, doc imp.Doc) (*document.Document, error) {
	var parsed xmlDocument
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	d := document.NewDocument(doc)
	d.StartObjectGroup()

	for _, lp := range parsed.LegacyPoints {
		n := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: lp.X, Y: lp.Y}))
		d.AddObject(n, "Point")
	}

	built := make([]*objgraph.Node, len(parsed.Hierarchy.Nodes))
	for i, nd := range parsed.Hierarchy.Nodes {
		n, err := buildHierarchyNode(i, nd, built)
		if err != nil {
			d.CancelObjectGroup()
			return nil, err
		}
		built[i] = n
	}

	for _, ref := range parsed.Objects {
		if ref.Index < 0 || ref.Index >= len(built) {
			d.CancelObjectGroup()
			return nil, fmt.Errorf("%w: Object references index %d", ErrMalformed, ref.Index)
		}
		d.AddObject(built[ref.Index], ref.Label)
		if !ref.Shown {
			d.Holder(built[ref.Index].ID()).Shown = false
		}
	}

	d.FinishObjectGroup()
	return d, nil
}

func buildHierarchyNode(i int, nd hierarchyNode, built []*objgraph.Node) (*objgraph.Node, error) {
	switch nd.Kind {
	case "Fetch":
		v, err := parseConstant(nd)
		if err != nil {
			return nil, err
		}
		return objgraph.NewDataNode(v), nil

	case "Given":
		// A genuine empty input slot never occurs in a saved Document —
		// every Holder is already a resolved constant — but is accepted
		// here for forward compatibility with hand-authored or future
		// macro-embedding files: it materializes as an unresolved
		// placeholder rather than rejecting the whole document.
		return objgraph.NewDataNode(imp.InvalidImp{}), nil

	case "Property":
		if nd.PropSource < 0 || nd.PropSource >= i {
			return nil, fmt.Errorf("%w: node %d fetches %d", ErrForwardRef, i, nd.PropSource)
		}
		return objgraph.NewPropertyNode(built[nd.PropSource], nd.PropIndex), nil

	case "Apply":
		t, err := objtype.Lookup(nd.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrMalformed, i, err)
		}
		args := make([]*objgraph.Node, len(nd.ApplyArgs))
		for k, a := range nd.ApplyArgs {
			if a < 0 || a >= i {
				return nil, fmt.Errorf("%w: node %d applies over %d", ErrForwardRef, i, a)
			}
			args[k] = built[a]
		}
		return objgraph.NewTypedNode(t, args), nil

	default:
		return nil, fmt.Errorf("%w: node %d has unknown kind %q", ErrMalformed, i, nd.Kind)
	}
}

func serializeConstant(v imp.Imp) (hierarchyNode, error) {
	switch t := v.(type) {
	case imp.PointImp:
		x, y := t.Coord.X, t.Coord.Y
		return hierarchyNode{Kind: "Fetch", Type: "point", X: &x, Y: &y}, nil
	case imp.DoubleImp:
		return hierarchyNode{Kind: "Fetch", Type: "double", Value: formatFloat(t.Value)}, nil
	case imp.IntImp:
		return hierarchyNode{Kind: "Fetch", Type: "int", Value: strconv.Itoa(t.Value)}, nil
	case imp.StringImp:
		return hierarchyNode{Kind: "Fetch", Type: "string", Value: t.Value}, nil
	case imp.BoolImp:
		return hierarchyNode{Kind: "Fetch", Type: "bool", Value: strconv.FormatBool(t.Value)}, nil
	default:
		return hierarchyNode{}, fmt.Errorf("%w: %s", ErrUnsupportedImp, v.Type().Name())
	}
}

func parseConstant(n hierarchyNode) (imp.Imp, error) {
	switch n.Type {
	case "point":
		if n.X == nil || n.Y == nil {
			return nil, fmt.Errorf("%w: point Fetch missing x/y", ErrMalformed)
		}
		return imp.NewPointImp(imp.Coordinate{X: *n.X, Y: *n.Y}), nil
	case "double":
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return imp.NewDoubleImp(v), nil
	case "int":
		v, err := strconv.Atoi(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return imp.NewIntImp(v), nil
	case "string":
		return imp.NewStringImp(n.Value), nil
	case "bool":
		v, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return imp.NewBoolImp(v), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataType, n.Type)
	}
}
