// Package objtype implements the ObjectType catalog: each
// ObjectType is a named pure function (Args, Doc) → Imp plus
// capability metadata (canMove, isTransform, specialActions), backing
// exactly one kind of construction a user can place in a document
// ("point by two lines", "circle by center and point", ...).
//
// ObjectTypes are registered once, at package init, into a process-
// lifetime registry keyed by machine name — mirroring imptype's
// registry shape because both are append-only, name-addressed
// catalogs consulted during deserialization.
package objtype
