package dbops

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewValueKinds(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		in   any
		kind Kind
		str  string
	}{
		{nil, Null, "NULL"},
		{int64(42), Int, "42"},
		{int32(-7), Int, "-7"},
		{1.5, Float, "1.5"},
		{true, Bool, "true"},
		{"hello", Text, "hello"},
		{[]byte("raw"), Bytes, "raw"},
		{[]byte{0xff, 0xfe}, Bytes, "//4="},
		{ts, Time, "2024-03-01T12:00:00Z"},
	}
	for _, tt := range tests {
		v := NewValue(tt.in)
		assert.Equal(t, tt.kind, v.Kind(), "%#v", tt.in)
		assert.Equal(t, tt.str, v.String(), "%#v", tt.in)
	}
}

func TestNewValueCopiesBytes(t *testing.T) {
	buf := []byte("abc")
	v := NewValue(buf)
	buf[0] = 'z'

	b, ok := v.Bytes()
	require.True(t, ok)
	assert.Equal(t, []byte("abc"), b)
}

func TestValueAccessors(t *testing.T) {
	i := NewValue(int64(3))
	f, ok := i.Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)
	b, ok := i.Bool()
	assert.True(t, ok)
	assert.True(t, b)
	_, ok = i.Text()
	assert.False(t, ok)

	s, ok := NewValue([]byte("txt")).Text()
	assert.True(t, ok)
	assert.Equal(t, "txt", s)

	_, ok = NewValue("x").Int()
	assert.False(t, ok)

	_, ok = Value{}.Time()
	assert.False(t, ok)
	assert.True(t, Value{}.IsNull())
	assert.Nil(t, Value{}.Interface())
}

func TestValueMarshal(t *testing.T) {
	row := Row{
		"id":    NewValue(int64(1)),
		"name":  NewValue("alice"),
		"score": NewValue(nil),
	}

	js, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"alice","score":null}`, string(js))

	ys, err := yaml.Marshal(row)
	require.NoError(t, err)
	assert.YAMLEq(t, "id: 1\nname: alice\nscore: null\n", string(ys))

	js, err = json.Marshal(Row{"text": NewValue([]byte("data")), "bin": NewValue([]byte{0xff})})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"data","bin":"/w=="}`, string(js))

	ys, err = yaml.Marshal(Row{"blob": NewValue([]byte("data"))})
	require.NoError(t, err)
	assert.YAMLEq(t, "blob: data\n", string(ys))
}

func TestCountValue(t *testing.T) {
	n, err := countValue(NewValue(int64(5)))
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = countValue(NewValue("12"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	n, err = countValue(NewValue(4.0))
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	_, err = countValue(Value{})
	assert.Error(t, err)

	_, err = countValue(NewValue("many"))
	assert.Error(t, err)
}
