package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gokig/kigcore/document"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
)

// Geo id codes read from a KGeo "Object N" group's Geo key. KGeo's own
// source enumerates many more construction kinds, but filters/kgeo.cc
// only ever implements these four — every other case in its switch is
// commented out — so LoadKGeo rejects the rest as ErrUnsupportedGeo
// rather than guessing at a mapping for code this importer was never
// grounded on.
const (
	geoPoint   = 2
	geoSegment = 3
	geoCircle  = 4
	geoLine    = 5
)

// Sentinel errors for the KGeo importer. All are structural failures:
// KGeo files that parse but describe a geometrically degenerate
// construction still round-trip, they simply calculate to InvalidImp.
var (
	ErrUnsupportedGeo = errors.New("formats: unsupported KGeo Geo id")
	ErrBadParentIndex = errors.New("formats: KGeo Parents entry out of range")
)

// kgeoGroup is one group of key=value lines: "[Main]" (stored under
// the key "Main") or an "[Object N]" group.
type kgeoGroup map[string]string

// parseKGeo splits KGeo's flat, ini-like text into named groups. KGeo
// groups look like "[Main]" or "[Object 3]" followed by "Key=Value"
// lines; this is a deliberately narrow reader matching exactly what
// filters/kgeo.cc reads (readNumEntry, readEntry, readListEntry on
// comma-separated "Parents" values), not a general ini parser.
func parseKGeo(data []byte) (map[string]kgeoGroup, error) {
	groups := map[string]kgeoGroup{}
	var current string

	for _, rawLine := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			groups[current] = kgeoGroup{}
			continue
		}
		if current == "" {
			return nil, fmt.Errorf("%w: key=value line outside any group", ErrMalformed)
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %q is not key=value", ErrMalformed, rawLine)
		}
		groups[current][key] = value
	}
	return groups, nil
}

// KgeoDocument is the result of importing a legacy KGeo file: the
// reconstructed Document plus the nominal canvas extent recorded in
// the file's "[Main]" group (KigFilterKGeo::loadMetrics reads
// XMax/YMax alongside the object count). kigcore's graph core never
// renders, so CanvasWidth/CanvasHeight are inert metadata, carried
// through for a caller that does.
type KgeoDocument struct {
	*document.Document
	CanvasWidth  float64
	CanvasHeight float64
}

// LoadKGeo imports a legacy KGeo file, grounded on
// KigFilterKGeo::loadMetrics/loadObjects: a "Main" group giving the
// object count and canvas extent, one "Object N" group (1-indexed) per
// object carrying a "Geo" id and type-specific fields, and a second
// pass linking parents from each object's "Parents" list (1-indexed, 0
// meaning no parent in that slot).
func LoadKGeo(data []byte, doc imp.Doc) (*KgeoDocument, error) {
	groups, err := parseKGeo(data)
	if err != nil {
		return nil, err
	}

	main, ok := groups["Main"]
	if !ok {
		return nil, fmt.Errorf("%w: missing [Main] group", ErrMalformed)
	}
	number, err := readInt(main, "Number")
	if err != nil {
		return nil, err
	}
	canvasWidth := readOptionalFloat(main, "XMax")
	canvasHeight := readOptionalFloat(main, "YMax")

	// First pass: create every object. Matching loadObjects, a
	// Segment/CircleBCP/LineTTP object is created with no parents yet
	// connected — its Parents list may reference an object appearing
	// later in the file, since by the time the second pass runs every
	// object of the file already exists.
	nodes := make([]*objgraph.Node, number)
	labels := make([]string, number)

	for i := 0; i < number; i++ {
		group, ok := groups[fmt.Sprintf("Object %d", i+1)]
		if !ok {
			return nil, fmt.Errorf("%w: missing [Object %d] group", ErrMalformed, i+1)
		}
		geo, err := readInt(group, "Geo")
		if err != nil {
			return nil, err
		}

		switch geo {
		case geoPoint:
			x, err := readFloat(group, "QPointX")
			if err != nil {
				return nil, err
			}
			y, err := readFloat(group, "QPointY")
			if err != nil {
				return nil, err
			}
			nodes[i] = objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: x, Y: y}))
			labels[i] = "point"
		case geoSegment:
			nodes[i] = objgraph.NewTypedNode(objtype.SegmentByTwoPointsType, nil)
			labels[i] = "segment"
		case geoCircle:
			nodes[i] = objgraph.NewTypedNode(objtype.CircleByCenterAndPointType, nil)
			labels[i] = "circle"
		case geoLine:
			nodes[i] = objgraph.NewTypedNode(objtype.LineByTwoPointsType, nil)
			labels[i] = "line"
		default:
			return nil, fmt.Errorf("%w: %d (object %d)", ErrUnsupportedGeo, geo, i+1)
		}
	}

	// Second pass: link each object's Parents, in list order, then hand
	// every object to the Document.
	d := document.NewDocument(doc)
	d.StartObjectGroup()

	for i := 0; i < number; i++ {
		group := groups[fmt.Sprintf("Object %d", i+1)]
		if err := linkParents(group, i, nodes); err != nil {
			d.CancelObjectGroup()
			return nil, err
		}
		if labels[i] != "point" && len(nodes[i].Parents()) != 2 {
			d.CancelObjectGroup()
			return nil, fmt.Errorf("%w: %s object %d needs exactly 2 parents, got %d", ErrMalformed, labels[i], i+1, len(nodes[i].Parents()))
		}
		d.AddObject(nodes[i], labels[i])
	}

	d.FinishObjectGroup()
	return &KgeoDocument{Document: d, CanvasWidth: canvasWidth, CanvasHeight: canvasHeight}, nil
}

// linkParents connects nodes[ownIndex] to each of its KGeo Parents, in
// list order, mirroring Object::selectArg's call order in the original
// loadObjects loop.
func linkParents(group kgeoGroup, ownIndex int, nodes []*objgraph.Node) error {
	raw, ok := group["Parents"]
	if !ok || raw == "" {
		return nil
	}
	for _, f := range strings.Split(raw, ",") {
		idx, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if idx == 0 {
			continue
		}
		if idx < 1 || idx > len(nodes) {
			return fmt.Errorf("%w: object %d parent %d", ErrBadParentIndex, ownIndex+1, idx)
		}
		objgraph.Connect(nodes[idx-1], nodes[ownIndex])
	}
	return nil
}

func readInt(g kgeoGroup, key string) (int, error) {
	raw, ok := g[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrMalformed, key)
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

// readOptionalFloat returns the Main group's numeric value for key, or
// 0 if key is absent or unparseable — XMax/YMax are metadata, not
// structural fields, so a missing or malformed extent degrades to 0
// rather than failing the whole import.
func readOptionalFloat(g kgeoGroup, key string) float64 {
	raw, ok := g[key]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func readFloat(g kgeoGroup, key string) (float64, error) {
	raw, ok := g[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", ErrMalformed, key)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}
