package nbt

import (
	"errors"
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNBT(t *testing.T) {
	spec.Run(t, "NBT", testNBT, spec.Report(report.Terminal{}))
}

func testNBT(t *testing.T, describe spec.G, it spec.S) {
	describe("Compound.HasTag()", func() {
		var subject Compound

		it.Before(func() {
			subject = Compound{
				"display": Compound{"Name": String("Sword")},
				"level":   Int(3),
				"nothing": nil,
			}
		})

		it("finds a tag of the requested kind", func() {
			assert.True(t, subject.HasTag("level", TagInt))
			assert.True(t, subject.HasTag("display", TagCompound))
		})

		it("rejects a tag of a different kind", func() {
			assert.False(t, subject.HasTag("level", TagString))
		})

		it("matches any kind with Any", func() {
			assert.True(t, subject.HasTag("level", Any))
			assert.True(t, subject.HasTag("display", Any))
		})

		it("reports missing and nil tags as absent", func() {
			assert.False(t, subject.HasTag("missing", Any))
			assert.False(t, subject.HasTag("nothing", Any))
		})

		it("is safe on a nil compound", func() {
			var empty Compound
			assert.False(t, empty.HasTag("level", Any))
		})
	})

	describe("ParseKind()", func() {
		it("accepts every case style", func() {
			for _, s := range []string{"byte_array", "ByteArray", "byteArray"} {
				k, err := ParseKind(s)
				require.NoError(t, err, s)
				assert.Equal(t, TagByteArray, k, s)
			}
		})

		it("treats the empty string as Any", func() {
			k, err := ParseKind("")
			require.NoError(t, err)
			assert.Equal(t, Any, k)
		})

		it("round trips through String()", func() {
			for k := TagEnd; k <= TagLongArray; k++ {
				parsed, err := ParseKind(k.String())
				require.NoError(t, err)
				assert.Equal(t, k, parsed)
			}
		})

		it("fails on unknown names", func() {
			_, err := ParseKind("quaternion")
			assert.True(t, errors.Is(err, ErrUnknownKind))
		})
	})

	describe("Compound.Clone()", func() {
		it("copies the top level", func() {
			src := Compound{"a": Byte(1)}
			dst := src.Clone()
			dst["b"] = Byte(2)
			assert.Len(t, src, 1)
			assert.Len(t, dst, 2)
		})

		it("keeps nil as nil", func() {
			var src Compound
			assert.Nil(t, src.Clone())
		})
	})
}
