package item

import "github.com/mrhaoxx/invmenu/nbt"

// ItemStack is a stack of items placed in a menu slot.
type ItemStack struct {
	ItemID int32
	Count  byte
	Tag    nbt.Compound
}

func New(id int32, count byte) *ItemStack {
	return &ItemStack{ItemID: id, Count: count}
}

func (s *ItemStack) IsEmpty() bool {
	if s == nil {
		return true
	}
	if s.ItemID == 0 {
		return true
	}
	if s.Count == 0 {
		return true
	}
	return false
}

// NamedTag returns the tag container of the stack. Nil stacks have none.
func (s *ItemStack) NamedTag() nbt.Compound {
	if s == nil {
		return nil
	}
	return s.Tag
}

// WithTag returns a copy of the stack with the tag called name set.
func (s *ItemStack) WithTag(name string, tag nbt.Tag) *ItemStack {
	var out ItemStack
	if s != nil {
		out = *s
	}
	out.Tag = out.Tag.Clone()
	if out.Tag == nil {
		out.Tag = make(nbt.Compound)
	}
	out.Tag[name] = tag
	return &out
}
