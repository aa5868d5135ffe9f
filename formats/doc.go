// Package formats implements kigcore's two external document formats:
//
//   - native: the XML document format, rooted at a "KigDocument"
//     element with Version="2.0.000", containing one shared
//     ObjectHierarchy element whose children serialize the document's
//     whole Node list, mirroring the shape
//     ObjectHierarchy::serialize/deserialize used in the original:
//     "<Given type="…"/>" is an empty input slot (no payload — never
//     emitted by a saved Document, only accepted on load for forward
//     compatibility), "<Fetch type="…" x="…" y="…" value="…"/>" is a
//     reference to a fixed Imp (a captured constant, carrying its
//     payload as attributes — what every Document Holder's leaf value
//     actually is),
//     "<Property source="…" property="…"/>" reads a numbered property
//     off an earlier node's Imp, and "<Apply type="…"><Arg index="n"/>…</Apply>"
//     applies an ObjectType. A parallel set of Object elements names
//     which hierarchy indices are Document Holders. Standalone legacy
//     "<Point x=… y=…/>" elements preceding the hierarchy are read as
//     backward compatibility, each becoming its own Data-backed holder.
//   - kgeo: the legacy KGeo key-value importer, grounded directly on
//     filters/kgeo.cc: a "Main" group with a "Number" count, and one
//     "Object N" group (1-indexed) per object carrying a "Geo" id code
//     (2=point, 3=segment, 4=circle, 5=line; every other id is
//     unsupported, matching the commented-out cases in kgeo.cc's own
//     switch), type-specific keys (QPointX/QPointY for points), and a
//     1-indexed "Parents" list (0 meaning "no parent" in that slot).
//
// Both formats draw the same line the original does between a
// structural failure (malformed XML, an unrecognized Geo code, a
// non-numeric coordinate) — always a Go error, wrapping one of this
// package's sentinel errors (ErrMalformed, ErrUnsupportedGeo, ...) —
// and a valueless construction result, which is never an error here:
// an imported object whose arguments don't actually produce a valid
// Imp still round-trips, it simply calculates to InvalidImp.
package formats
