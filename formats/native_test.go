package formats_test

import (
	"testing"

	"github.com/gokig/kigcore/document"
	"github.com/gokig/kigcore/formats"
	"github.com/gokig/kigcore/imp"
	"github.com/gokig/kigcore/objgraph"
	"github.com/gokig/kigcore/objtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoc struct{}

func (stubDoc) CoordinateSystem() string { return "Euclidean" }

func buildSampleDocument() *document.Document {
	d := document.NewDocument(stubDoc{})
	a := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 0, Y: 0}))
	b := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 4, Y: 0}))
	mid := objgraph.NewTypedNode(objtype.MidpointType, []*objgraph.Node{a, b})

	d.AddObject(a, "A")
	d.AddObject(b, "B")
	d.AddObject(mid, "Midpoint")
	return d
}

func TestSaveDocumentRoundTrip(t *testing.T) {
	d := buildSampleDocument()

	data, err := formats.SaveDocument(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `Version="2.0.000"`)
	assert.Contains(t, string(data), `<ObjectHierarchy>`)
	assert.Contains(t, string(data), `type="kig.midpoint"`)
	assert.Contains(t, string(data), `<Fetch type="point"`)
	assert.NotContains(t, string(data), `<Given type="point"`, "a saved Document's leaves are captured constants, not empty slots")

	loaded, err := formats.LoadDocument(data, stubDoc{})
	require.NoError(t, err)
	require.Len(t, loaded.Holders(), 3)

	mid := loaded.Holders()[2]
	assert.Equal(t, "Midpoint", mid.Label)
	got := mid.Node.Imp().(imp.PointImp)
	assert.InDelta(t, 2, got.Coord.X, 1e-9)
}

func TestLoadDocumentRejectsForwardReference(t *testing.T) {
	bad := []byte(`<?xml version="1.0"?>
<KigDocument Version="2.0.000">
  <ObjectHierarchy>
    <Apply type="kig.midpoint"><Arg index="1"/><Arg index="2"/></Apply>
  </ObjectHierarchy>
  <Object index="0" label="Midpoint" shown="true"></Object>
</KigDocument>`)

	_, err := formats.LoadDocument(bad, stubDoc{})
	require.Error(t, err)
	assert.ErrorIs(t, err, formats.ErrForwardRef)
}

func TestLoadDocumentRejectsUnknownType(t *testing.T) {
	bad := []byte(`<?xml version="1.0"?>
<KigDocument Version="2.0.000">
  <ObjectHierarchy>
    <Fetch type="point" x="0" y="0"/>
    <Apply type="kig.does.not.exist"><Arg index="0"/></Apply>
  </ObjectHierarchy>
  <Object index="0" label="P" shown="true"></Object>
  <Object index="1" label="Q" shown="true"></Object>
</KigDocument>`)

	_, err := formats.LoadDocument(bad, stubDoc{})
	require.Error(t, err)
	assert.ErrorIs(t, err, formats.ErrMalformed)
}

func TestLoadDocumentRejectsMalformedXML(t *testing.T) {
	_, err := formats.LoadDocument([]byte("not xml at all"), stubDoc{})
	require.Error(t, err)
	assert.ErrorIs(t, err, formats.ErrMalformed)
}

func TestSaveDocumentPropertyNode(t *testing.T) {
	d := document.NewDocument(stubDoc{})
	p := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 1, Y: 2}))
	prop := objgraph.NewPropertyNode(p, 0)
	d.AddObject(p, "P")
	d.AddObject(prop, "P.coordinate")

	data, err := formats.SaveDocument(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<Property source="0" property="0">`)

	loaded, err := formats.LoadDocument(data, stubDoc{})
	require.NoError(t, err)
	require.Len(t, loaded.Holders(), 2)
	assert.True(t, loaded.Holders()[1].Node.Imp().(imp.PointImp).Equals(imp.NewPointImp(imp.Coordinate{X: 1, Y: 2})))
}

func TestLoadDocumentAcceptsEmptyGivenSlotForForwardCompatibility(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<KigDocument Version="2.0.000">
  <ObjectHierarchy>
    <Given type="point"/>
  </ObjectHierarchy>
  <Object index="0" label="P" shown="true"></Object>
</KigDocument>`)

	loaded, err := formats.LoadDocument(data, stubDoc{})
	require.NoError(t, err)
	require.Len(t, loaded.Holders(), 1)
	assert.False(t, loaded.Holders()[0].Node.Imp().Valid())
}

func TestLoadDocumentLegacyStandalonePoint(t *testing.T) {
	data := []byte(`<?xml version="1.0"?>
<KigDocument Version="2.0.000">
  <Point x="3" y="4"/>
</KigDocument>`)

	loaded, err := formats.LoadDocument(data, stubDoc{})
	require.NoError(t, err)
	require.Len(t, loaded.Holders(), 1)
	assert.Equal(t, imp.Coordinate{X: 3, Y: 4}, loaded.Holders()[0].Node.Imp().(imp.PointImp).Coord)
}

func TestSaveDocumentHiddenHolderRoundTrips(t *testing.T) {
	d := document.NewDocument(stubDoc{})
	p := objgraph.NewDataNode(imp.NewPointImp(imp.Coordinate{X: 5, Y: 5}))
	h := d.AddObject(p, "Hidden")
	h.Shown = false

	data, err := formats.SaveDocument(d)
	require.NoError(t, err)

	loaded, err := formats.LoadDocument(data, stubDoc{})
	require.NoError(t, err)
	require.Len(t, loaded.Holders(), 1)
	assert.False(t, loaded.Holders()[0].Shown)
}
