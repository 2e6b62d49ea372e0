// Package joypad emulates the Game Boy's button matrix and its P1/JOYP
// register, and raises the joypad interrupt on a press edge.
package joypad

import (
	"github.com/kobold-labs/dmg-go/internal/interrupts"
)

// Button is a bitmask identifying one of the eight physical buttons.
type Button = uint8

const (
	ButtonA      Button = 1 << 0
	ButtonB      Button = 1 << 1
	ButtonSelect Button = 1 << 2
	ButtonStart  Button = 1 << 3
	ButtonRight  Button = 1 << 4
	ButtonLeft   Button = 1 << 5
	ButtonUp     Button = 1 << 6
	ButtonDown   Button = 1 << 7
)

// dPad and action group the buttons that share a P1 selection line.
const (
	dPad   = ButtonRight | ButtonLeft | ButtonUp | ButtonDown
	action = ButtonA | ButtonB | ButtonSelect | ButtonStart
)

// State is the joypad's matrix of pressed buttons plus the P1 register
// that selects which half of the matrix is currently observed.
type State struct {
	register uint8 // P1 bits 4-5: selection lines, written by the game
	pressed  Button

	irq *interrupts.Controller
}

// New returns a joypad with no buttons pressed, reporting interrupts
// through irq.
func New(irq *interrupts.Controller) *State {
	return &State{register: 0x30, irq: irq}
}

// Read returns the current value of P1 (0xFF00): bits 0-3 report
// button state for whichever column selection bits 4-5 leave clear,
// active-low, and unused bits read as 1.
func (s *State) Read() uint8 {
	result := s.register | 0xC0 | 0x0F

	if s.register&0x10 == 0 { // bit 4 clear: d-pad selected
		result &^= (s.pressed & dPad) >> 4
	}
	if s.register&0x20 == 0 { // bit 5 clear: buttons selected
		result &^= s.pressed & action
	}

	return result
}

// Write stores the selection bits (4-5) of P1; bits 0-3 are read-only
// and bits 6-7 always read as 1.
func (s *State) Write(value uint8) {
	s.register = (s.register & 0xCF) | (value & 0x30)
}

// Press marks a button as held and, if it transitions from released
// to pressed, requests the joypad interrupt.
func (s *State) Press(key Button) {
	wasPressed := s.pressed&key != 0
	s.pressed |= key

	if wasPressed {
		return
	}

	if s.irq != nil {
		s.irq.Request(interrupts.JoypadFlag)
	}
}

// Release marks a button as no longer held.
func (s *State) Release(key Button) {
	s.pressed &^= key
}

// Inputs is a batch of button edges gathered from the host since the
// last frame, handed to State.Apply at the frame boundary.
type Inputs struct {
	Pressed, Released []Button
}

// Apply presses and releases every button named in inputs.
func (s *State) Apply(inputs Inputs) {
	for _, key := range inputs.Pressed {
		s.Press(key)
	}
	for _, key := range inputs.Released {
		s.Release(key)
	}
}
