package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilnbyte/bdoc/objectid"
	"github.com/kilnbyte/bdoc/value"
	"github.com/kilnbyte/bdoc/vlong"
)

func TestRoundTripScalarValues(t *testing.T) {
	oid := objectid.Generate()
	doc := value.NewDocument(
		value.Element{Key: "null", Value: value.Null{}},
		value.Element{Key: "bool", Value: value.Bool(true)},
		value.Element{Key: "i32", Value: value.Int32(-7)},
		value.Element{Key: "f64", Value: value.Double(2.5)},
		value.Element{Key: "str", Value: value.String("café")},
		value.Element{Key: "bin", Value: value.NewBinary(value.BinaryUserDefined, []byte{1, 2, 3})},
		value.Element{Key: "oid", Value: value.NewObjectID(oid)},
		value.Element{Key: "date", Value: value.Datetime(1_700_000_000_000)},
		value.Element{Key: "regex", Value: value.NewRegex("^a+$", "i")},
		value.Element{Key: "i64", Value: value.NewInt64(vlong.FromInt(1 << 40))},
		value.Element{Key: "ts", Value: value.NewTimestamp(vlong.NewTimestamp(1000, 7))},
	)

	wire, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(wire)
	require.NoError(t, err)

	decoded, ok := got.(*value.Document)
	require.True(t, ok)
	require.Equal(t, doc.Len(), decoded.Len())

	for _, el := range doc.Elements {
		v, ok := decoded.Get(el.Key)
		require.True(t, ok, "missing key %q", el.Key)
		assert.Equal(t, el.Value, v, "mismatch for key %q", el.Key)
	}
}

func TestRoundTripNestedDocumentAndArray(t *testing.T) {
	inner := value.NewDocument(value.Element{Key: "k", Value: value.Int32(5)})
	arr := value.NewArray(value.String("a"), inner, value.Null{})
	doc := value.NewDocument(value.Element{Key: "nested", Value: arr})

	wire, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(wire)
	require.NoError(t, err)

	decoded := got.(*value.Document)
	nested, ok := decoded.Get("nested")
	require.True(t, ok)
	gotArr := nested.(*value.Array)
	require.Equal(t, 3, gotArr.Len())
	assert.Equal(t, value.String("a"), gotArr.Items[0])
	assert.Equal(t, value.Null{}, gotArr.Items[2])

	gotInner, ok := gotArr.Items[1].(*value.Document)
	require.True(t, ok)
	v, ok := gotInner.Get("k")
	require.True(t, ok)
	assert.Equal(t, value.Int32(5), v)
}

func TestRoundTripCodeWithScope(t *testing.T) {
	scope := value.NewDocument(value.Element{Key: "x", Value: value.Int32(1)})
	doc := value.NewDocument(value.Element{
		Key:   "fn",
		Value: value.NewCodeWithScope("function() { return x; }", scope),
	})

	wire, err := Encode(doc)
	require.NoError(t, err)

	got, err := Decode(wire)
	require.NoError(t, err)

	decoded := got.(*value.Document)
	fn, ok := decoded.Get("fn")
	require.True(t, ok)
	cws := fn.(value.CodeWithScope)
	assert.Equal(t, "function() { return x; }", cws.Code)

	x, ok := cws.Scope.Get("x")
	require.True(t, ok)
	assert.Equal(t, value.Int32(1), x)
}

func TestRoundTripRandomInt64Values(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		a := vlong.FromInt(r.Int63())
		doc := value.NewDocument(value.Element{Key: "n", Value: value.NewInt64(a)})

		wire, err := Encode(doc)
		require.NoError(t, err)
		got, err := Decode(wire)
		require.NoError(t, err)

		decoded := got.(*value.Document)
		v, ok := decoded.Get("n")
		require.True(t, ok)
		assert.Equal(t, a, v.(value.Int64).V)
	}
}
