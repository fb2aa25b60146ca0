package listener

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/mrhaoxx/invmenu/nbt"
)

// SlotSet is an immutable set of slot indices.
type SlotSet struct {
	slots map[int]struct{}
}

func NewSlotSet(slots ...int) SlotSet {
	set := SlotSet{slots: make(map[int]struct{}, len(slots))}
	for _, s := range slots {
		set.slots[s] = struct{}{}
	}
	return set
}

func (s SlotSet) Contains(slot int) bool {
	_, ok := s.slots[slot]
	return ok
}

func (s SlotSet) Len() int { return len(s.slots) }

// Slots returns the members in ascending order.
func (s SlotSet) Slots() []int {
	keys := maps.Keys(s.slots)
	slices.Sort(keys)
	return keys
}

// BlacklistSlots cancels every interaction in one of slots.
func BlacklistSlots(slots ...int) Listener {
	blacklist := NewSlotSet(slots...)
	return func(_ Player, _, _ Item, action SlotChangeAction) bool {
		return !blacklist.Contains(action.Slot)
	}
}

// WhitelistSlots cancels every interaction outside of slots.
func WhitelistSlots(slots ...int) Listener {
	whitelist := NewSlotSet(slots...)
	return func(_ Player, _, _ Item, action SlotChangeAction) bool {
		return whitelist.Contains(action.Slot)
	}
}

// OnlyItemsWithTag allows clicks on items carrying a tag called name of the
// given kind. Pass nbt.Any to accept a tag of any kind.
func OnlyItemsWithTag(name string, kind nbt.Kind) Listener {
	return func(_ Player, itemClicked, _ Item, _ SlotChangeAction) bool {
		return itemClicked.NamedTag().HasTag(name, kind)
	}
}

func OnlyItemsWithoutTag(name string, kind nbt.Kind) Listener {
	return func(_ Player, itemClicked, _ Item, _ SlotChangeAction) bool {
		return !itemClicked.NamedTag().HasTag(name, kind)
	}
}
