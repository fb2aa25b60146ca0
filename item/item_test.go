package item

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
	"github.com/stretchr/testify/assert"

	"github.com/mrhaoxx/invmenu/nbt"
)

func TestItemStack(t *testing.T) {
	spec.Run(t, "ItemStack", testItemStack, spec.Report(report.Terminal{}))
}

func testItemStack(t *testing.T, describe spec.G, it spec.S) {
	describe("IsEmpty()", func() {
		it("is empty for nil, air and zero counts", func() {
			var nilStack *ItemStack
			assert.True(t, nilStack.IsEmpty())
			assert.True(t, New(0, 5).IsEmpty())
			assert.True(t, New(1, 0).IsEmpty())
		})

		it("is not empty otherwise", func() {
			assert.False(t, New(1, 1).IsEmpty())
		})
	})

	describe("NamedTag()", func() {
		it("is nil for a nil stack", func() {
			var nilStack *ItemStack
			assert.Nil(t, nilStack.NamedTag())
		})
	})

	describe("WithTag()", func() {
		it("leaves the original untouched", func() {
			orig := New(1, 1).WithTag("a", nbt.Byte(1))
			tagged := orig.WithTag("b", nbt.Byte(2))

			assert.False(t, orig.NamedTag().HasTag("b", nbt.Any))
			assert.True(t, tagged.NamedTag().HasTag("a", nbt.TagByte))
			assert.True(t, tagged.NamedTag().HasTag("b", nbt.TagByte))
		})

		it("works on a nil stack", func() {
			var nilStack *ItemStack
			tagged := nilStack.WithTag("a", nbt.String("x"))
			assert.True(t, tagged.NamedTag().HasTag("a", nbt.TagString))
		})
	})
}
