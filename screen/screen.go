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

package screen

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mrhaoxx/invmenu/item"
	"github.com/mrhaoxx/invmenu/listener"
)

var ErrClosed = errors.New("menu is closed")

type Config struct {
	WindowID int32
	Title    string
	Size     int
	Readonly bool
}

// Menu is a chest-like container whose clicks go through a listener.
type Menu struct {
	log    *zap.Logger
	config Config
	Events EventsListener

	sync.Mutex
	slots    []*item.ItemStack
	listener listener.Listener
	limiter  *rate.Limiter
	closed   bool
}

func New(logger *zap.Logger, config Config) *Menu {
	return &Menu{
		log: logger.With(
			zap.Int32("window", config.WindowID),
			zap.String("title", config.Title),
		),
		config: config,
		slots:  make([]*item.ItemStack, config.Size),
	}
}

func (m *Menu) IsReadonly() bool { return m.config.Readonly }
func (m *Menu) Size() int        { return len(m.slots) }
func (m *Menu) Title() string    { return m.config.Title }

// SetListener replaces the click listener. A nil listener allows every click.
func (m *Menu) SetListener(l listener.Listener) {
	m.Lock()
	defer m.Unlock()
	m.listener = l
}

// SetLimiter limits how often the menu accepts clicks. Clicks over the limit
// are cancelled before the listener runs.
func (m *Menu) SetLimiter(limiter *rate.Limiter) {
	m.Lock()
	defer m.Unlock()
	m.limiter = limiter
}

func (m *Menu) Slot(i int) *item.ItemStack {
	m.Lock()
	defer m.Unlock()
	if i < 0 || i >= len(m.slots) {
		return nil
	}
	return m.slots[i]
}

// SetSlot stores s in slot i. An empty stack clears the slot.
func (m *Menu) SetSlot(i int, s *item.ItemStack) error {
	if s.IsEmpty() {
		s = nil
	}
	m.Lock()
	if m.closed {
		m.Unlock()
		return ErrClosed
	}
	if i < 0 || i >= len(m.slots) {
		m.Unlock()
		return &SlotError{Index: i, Size: len(m.slots)}
	}
	m.slots[i] = s
	m.Unlock()
	if m.Events.SetSlot != nil {
		return m.Events.SetSlot(i, s)
	}
	return nil
}

// Click handles a player putting with into slot. It reports whether the
// change was applied. Readonly menus run the listener but never apply. An
// empty with takes the item out of the slot.
func (m *Menu) Click(p listener.Player, slot int, with *item.ItemStack) (bool, error) {
	m.Lock()
	if m.closed {
		m.Unlock()
		return false, ErrClosed
	}
	if slot < 0 || slot >= len(m.slots) {
		m.Unlock()
		return false, &SlotError{Index: slot, Size: len(m.slots)}
	}
	clicked := m.slots[slot]
	l, limiter := m.listener, m.limiter
	m.Unlock()

	logger := m.log.With(zap.String("player", p.Name()), zap.Int("slot", slot))
	if limiter != nil && !limiter.Allow() {
		logger.Debug("Click rate limited")
		return false, nil
	}

	// listener runs unlocked so it may read the menu
	action := listener.SlotChangeAction{WindowID: m.config.WindowID, Slot: slot}
	allowed := l == nil || l(p, clicked, with, action)
	if m.config.Readonly {
		return false, nil
	}
	if !allowed {
		logger.Debug("Click cancelled")
		return false, nil
	}
	// the menu may have been closed while the listener ran
	if err := m.SetSlot(slot, with); err != nil {
		logger.Debug("Apply click", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (m *Menu) Close() error {
	m.Lock()
	if m.closed {
		m.Unlock()
		return ErrClosed
	}
	m.closed = true
	m.Unlock()
	m.log.Debug("Menu closed")
	if m.Events.Close != nil {
		return m.Events.Close()
	}
	return nil
}

type SlotError struct {
	Index int
	Size  int
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("slot index %d out of bounds. maximum index is %d", e.Index, e.Size-1)
}
