package codec

import (
	"strconv"

	"github.com/kilnbyte/bdoc/value"
)

// indexKey renders an array index as the decimal textual key BDoc uses for
// array elements on the wire (§3.2).
func indexKey(i int) string {
	return strconv.Itoa(i)
}

// dbRefDocument expands DbRef sugar into the Document shape it encodes as:
// `{ "$ref": ns, "$id": id, ["$db": db] }`, in that fixed order (§3.2).
func dbRefDocument(r value.DbRef) *value.Document {
	d := value.NewDocument()
	d.Append("$ref", value.String(r.Namespace))
	d.Append("$id", value.NewObjectID(r.ID))
	if r.DB != nil {
		d.Append("$db", value.String(*r.DB))
	}

	return d
}
