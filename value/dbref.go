package value

import "github.com/kilnbyte/bdoc/objectid"

// DbRef is convenience sugar for the `{ "$ref": ns, "$id": id, "$db": db }`
// document shape (§3.2). It has no wire tag of its own: encode emits it as
// an ordinary Document, and decode recognizes exactly that shape — "$ref"
// followed by "$id" and an optional "$db", with no further keys — and
// returns it as a DbRef instead. A Document whose first key is "$ref" but
// that carries additional or reordered keys is not DbRef-shaped and decodes
// as an ordinary Document, so no sibling data is ever silently dropped.
type DbRef struct {
	Namespace string
	ID        objectid.ObjectID
	DB        *string
}

// Kind implements Value. DbRef reports KindDocument since it has no tag of
// its own — it is purely a decode-time/encode-time convenience over a
// Document.
func (DbRef) Kind() Kind { return KindDocument }

// NewDbRef constructs a DbRef with no optional database and no extra keys.
func NewDbRef(namespace string, id objectid.ObjectID) DbRef {
	return DbRef{Namespace: namespace, ID: id}
}

// WithDB returns a copy of the DbRef with the database field set.
func (r DbRef) WithDB(db string) DbRef {
	r.DB = &db

	return r
}
