// Package nbt implements the named tag container attached to items.
package nbt

import (
	"errors"
	"fmt"

	"github.com/iancoleman/strcase"
)

// Kind is the type discriminator of a tag.
type Kind byte

const (
	TagEnd Kind = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray

	// Any matches a tag of every kind.
	Any Kind = 0xff
)

var kindNames = map[Kind]string{
	TagEnd:       "end",
	TagByte:      "byte",
	TagShort:     "short",
	TagInt:       "int",
	TagLong:      "long",
	TagFloat:     "float",
	TagDouble:    "double",
	TagByteArray: "byte_array",
	TagString:    "string",
	TagList:      "list",
	TagCompound:  "compound",
	TagIntArray:  "int_array",
	TagLongArray: "long_array",
	Any:          "any",
}

var ErrUnknownKind = errors.New("unknown tag kind")

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%#x)", byte(k))
}

// ParseKind accepts a kind name in any case style, so "byte_array",
// "ByteArray" and "byteArray" are the same kind. The empty string is Any.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return Any, nil
	}
	name := strcase.ToSnake(s)
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Tag is a single named tag value.
type Tag interface {
	Kind() Kind
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	List      []Tag
	IntArray  []int32
	LongArray []int64
	Compound  map[string]Tag
)

func (Byte) Kind() Kind      { return TagByte }
func (Short) Kind() Kind     { return TagShort }
func (Int) Kind() Kind       { return TagInt }
func (Long) Kind() Kind      { return TagLong }
func (Float) Kind() Kind     { return TagFloat }
func (Double) Kind() Kind    { return TagDouble }
func (ByteArray) Kind() Kind { return TagByteArray }
func (String) Kind() Kind    { return TagString }
func (List) Kind() Kind      { return TagList }
func (IntArray) Kind() Kind  { return TagIntArray }
func (LongArray) Kind() Kind { return TagLongArray }
func (Compound) Kind() Kind  { return TagCompound }

// HasTag reports whether the compound holds a tag called name whose kind
// matches kind. A nil compound has no tags.
func (c Compound) HasTag(name string, kind Kind) bool {
	t, ok := c[name]
	if !ok || t == nil {
		return false
	}
	return kind == Any || t.Kind() == kind
}

// Get returns the tag called name, or nil.
func (c Compound) Get(name string) Tag {
	return c[name]
}

// Clone returns a shallow copy of the compound.
func (c Compound) Clone() Compound {
	if c == nil {
		return nil
	}
	out := make(Compound, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
