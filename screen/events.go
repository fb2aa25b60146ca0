package screen

import "github.com/mrhaoxx/invmenu/item"

// EventsListener is notified about changes the menu applied. Nil fields are
// skipped.
type EventsListener struct {
	SetSlot func(index int, stack *item.ItemStack) error
	Close   func() error
}
