// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// submitButton is the element the enable binding drives. Removing it runs
// every registered removal callback once.
type submitButton struct {
	label    string
	enabled  bool
	removed  bool
	onRemove []func()
}

func newSubmitButton(label string) *submitButton {
	return &submitButton{label: label}
}

// SetEnabled implements binding.Element.
func (b *submitButton) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// OnRemove implements binding.Element.
func (b *submitButton) OnRemove(fn func()) {
	b.onRemove = append(b.onRemove, fn)
}

// Remove takes the button off screen.
func (b *submitButton) Remove() {
	if b.removed {
		return
	}
	b.removed = true

	callbacks := b.onRemove
	b.onRemove = nil
	for _, fn := range callbacks {
		fn()
	}
}

func (b *submitButton) Enabled() bool {
	return b.enabled && !b.removed
}

func (b *submitButton) View(busy bool) string {
	label := "[ " + b.label + " ]"
	if busy {
		label = "[ " + b.label + "... ]"
	}

	if b.Enabled() && !busy {
		return buttonEnabled.Render(label)
	}
	return buttonDisabled.Render(label)
}
