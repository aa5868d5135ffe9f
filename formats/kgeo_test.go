package formats_test

import (
	"testing"

	"github.com/gokig/kigcore/formats"
	"github.com/gokig/kigcore/imp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKGeoBuildsSegmentFromTwoPoints(t *testing.T) {
	data := []byte(`[Main]
Number=3
XMax=16
YMax=11

[Object 1]
Geo=2
QPointX=0
QPointY=0

[Object 2]
Geo=2
QPointX=4
QPointY=0

[Object 3]
Geo=3
Parents=1,2
`)

	d, err := formats.LoadKGeo(data, stubDoc{})
	require.NoError(t, err)
	require.Len(t, d.Holders(), 3)
	assert.Equal(t, 16.0, d.CanvasWidth)
	assert.Equal(t, 11.0, d.CanvasHeight)

	seg := d.Holders()[2]
	assert.Equal(t, "segment", seg.Label)
	assert.True(t, seg.Node.Imp().Valid())
}

func TestLoadKGeoCanvasExtentDefaultsWhenAbsent(t *testing.T) {
	data := []byte(`[Main]
Number=1

[Object 1]
Geo=2
QPointX=0
QPointY=0
`)
	d, err := formats.LoadKGeo(data, stubDoc{})
	require.NoError(t, err)
	assert.Zero(t, d.CanvasWidth)
	assert.Zero(t, d.CanvasHeight)
}

func TestLoadKGeoRejectsNonNumericCoordinate(t *testing.T) {
	data := []byte(`[Main]
Number=1

[Object 1]
Geo=2
QPointX=notanumber
QPointY=0
`)
	_, err := formats.LoadKGeo(data, stubDoc{})
	require.Error(t, err)
	assert.ErrorIs(t, err, formats.ErrMalformed)
}

func TestLoadKGeoRejectsUnsupportedGeoCode(t *testing.T) {
	data := []byte(`[Main]
Number=1

[Object 1]
Geo=99
`)
	_, err := formats.LoadKGeo(data, stubDoc{})
	require.Error(t, err)
	assert.ErrorIs(t, err, formats.ErrUnsupportedGeo)
}

func TestLoadKGeoZeroParentMeansNoParent(t *testing.T) {
	data := []byte(`[Main]
Number=1

[Object 1]
Geo=2
QPointX=1
QPointY=1
Parents=0
`)
	d, err := formats.LoadKGeo(data, stubDoc{})
	require.NoError(t, err)
	require.Len(t, d.Holders(), 1)
	assert.Empty(t, d.Holders()[0].Node.Parents())
	assert.Equal(t, imp.Coordinate{X: 1, Y: 1}, d.Holders()[0].Node.Imp().(imp.PointImp).Coord)
}

func TestLoadKGeoAllowsForwardParentReference(t *testing.T) {
	// Segment (Object 1) refers to points defined later in the file,
	// exactly as loadObjects supports: every object already exists as
	// a placeholder by the time the Parents-linking pass runs.
	data := []byte(`[Main]
Number=3

[Object 1]
Geo=3
Parents=2,3

[Object 2]
Geo=2
QPointX=0
QPointY=0

[Object 3]
Geo=2
QPointX=4
QPointY=0
`)
	d, err := formats.LoadKGeo(data, stubDoc{})
	require.NoError(t, err)
	require.Len(t, d.Holders(), 3)
	assert.True(t, d.Holders()[0].Node.Imp().Valid())
}

func TestLoadKGeoRejectsOutOfRangeParentIndex(t *testing.T) {
	data := []byte(`[Main]
Number=1

[Object 1]
Geo=2
QPointX=0
QPointY=0
Parents=5
`)
	_, err := formats.LoadKGeo(data, stubDoc{})
	require.Error(t, err)
	assert.ErrorIs(t, err, formats.ErrBadParentIndex)
}
