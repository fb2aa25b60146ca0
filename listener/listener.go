// This file is part of go-mc/server project.
// Copyright (C) 2023.  Tnze
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package listener composes inventory menu click listeners.
//
// A menu calls its listener every time a player changes one of its slots.
// Writable menus use a Listener, whose result decides whether the change is
// applied. Readonly menus never apply changes and use a ReadonlyListener,
// which only observes. The helpers in this package build one listener out of
// several; none of them keeps state between interactions.
package listener

import (
	"github.com/google/uuid"

	"github.com/mrhaoxx/invmenu/nbt"
)

// AnySlot is the catch-all key of SlotSpecific.
const AnySlot = -1

// Menu is the part of a menu the combinators need to pick a mode.
type Menu interface {
	IsReadonly() bool
}

type Player interface {
	UUID() uuid.UUID
	Name() string
}

type Item interface {
	NamedTag() nbt.Compound
}

// SlotChangeAction identifies the slot a click happened in.
type SlotChangeAction struct {
	WindowID int32
	Slot     int
}

// Listener is called for a click in a writable menu. Returning false cancels
// the interaction.
type Listener func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) bool

// ReadonlyListener is called for a click in a readonly menu.
type ReadonlyListener func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction)

// Readonly drops the result of l.
func (l Listener) Readonly() ReadonlyListener {
	return func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) {
		l(p, itemClicked, itemClickedWith, action)
	}
}

// Gating calls l and allows the interaction.
func (l ReadonlyListener) Gating() Listener {
	return func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) bool {
		l(p, itemClicked, itemClickedWith, action)
		return true
	}
}
