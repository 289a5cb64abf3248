package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-form-guard/internal/validation"
)

func TestSubmitButton_RemoveRunsCallbacksOnce(t *testing.T) {
	b := newSubmitButton("Submit")
	calls := 0
	b.OnRemove(func() { calls++ })
	b.OnRemove(func() { calls++ })

	b.SetEnabled(true)
	assert.True(t, b.Enabled())

	b.Remove()
	b.Remove()

	assert.Equal(t, 2, calls)
	assert.False(t, b.Enabled())
}

func TestStyleFor(t *testing.T) {
	assert.Equal(t, tagSuccessStyle, styleFor(validation.DefaultSuccessStyle))
	assert.Equal(t, tagErrorStyle, styleFor(validation.DefaultErrorStyle))
	assert.Equal(t, tagNeutralStyle, styleFor(""))
	assert.Equal(t, tagNeutralStyle, styleFor("sparkly"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Email a...", fitText("Email address", 10))
	assert.Equal(t, "Em", fitText("Email", 2))
}
