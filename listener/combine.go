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

package listener

import (
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

// Multiple calls listeners in order, the first one first. For a readonly
// menu all of them run and their results are ignored, so the returned
// listener always allows. Otherwise it behaves like MultipleReadWrite.
func Multiple(menu Menu, listeners ...Listener) Listener {
	if menu.IsReadonly() {
		readonly := make([]ReadonlyListener, len(listeners))
		for i, l := range listeners {
			readonly[i] = l.Readonly()
		}
		return MultipleReadonly(readonly...).Gating()
	}
	return MultipleReadWrite(listeners...)
}

func MultipleReadonly(listeners ...ReadonlyListener) ReadonlyListener {
	listeners = append([]ReadonlyListener(nil), listeners...)
	return func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) {
		for _, l := range listeners {
			l(p, itemClicked, itemClickedWith, action)
		}
	}
}

// MultipleReadWrite stops at the first listener that cancels. No listeners
// at all allow the interaction.
func MultipleReadWrite(listeners ...Listener) Listener {
	listeners = append([]Listener(nil), listeners...)
	return func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) bool {
		for _, l := range listeners {
			if !l(p, itemClicked, itemClickedWith, action) {
				return false
			}
		}
		return true
	}
}

// SlotSpecific dispatches to the listener registered for the clicked slot,
// falling back to the one at AnySlot.
func SlotSpecific(menu Menu, listeners map[int]Listener) Listener {
	if menu.IsReadonly() {
		readonly := make(map[int]ReadonlyListener, len(listeners))
		for slot, l := range listeners {
			readonly[slot] = l.Readonly()
		}
		return SlotSpecificReadonly(readonly).Gating()
	}
	return SlotSpecificReadWrite(listeners)
}

func SlotSpecificReadonly(listeners map[int]ReadonlyListener) ReadonlyListener {
	listeners = maps.Clone(listeners)
	return func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) {
		if l, ok := lookup(listeners, action.Slot); ok {
			l(p, itemClicked, itemClickedWith, action)
		}
	}
}

// SlotSpecificReadWrite allows the interaction when neither the clicked slot
// nor AnySlot has a listener.
func SlotSpecificReadWrite(listeners map[int]Listener) Listener {
	listeners = maps.Clone(listeners)
	return func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) bool {
		l, ok := lookup(listeners, action.Slot)
		return !ok || l(p, itemClicked, itemClickedWith, action)
	}
}

func lookup[L any](listeners map[int]L, slot int) (L, bool) {
	if l, ok := listeners[slot]; ok {
		return l, true
	}
	l, ok := listeners[AnySlot]
	return l, ok
}

// Not inverts the decision of l.
func Not(l Listener) Listener {
	return func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) bool {
		return !l(p, itemClicked, itemClickedWith, action)
	}
}

// Logged reports every interaction cancelled by l.
func Logged(log *zap.Logger, name string, l Listener) Listener {
	log = log.With(zap.String("listener", name))
	return func(p Player, itemClicked, itemClickedWith Item, action SlotChangeAction) bool {
		if l(p, itemClicked, itemClickedWith, action) {
			return true
		}
		log.Debug("Interaction cancelled",
			zap.String("player", p.Name()),
			zap.Stringer("uuid", p.UUID()),
			zap.Int32("window", action.WindowID),
			zap.Int("slot", action.Slot),
		)
		return false
	}
}
