// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package binding

import (
	"testing"

	"github.com/MKhiriev/go-form-guard/internal/logger"
	"github.com/MKhiriev/go-form-guard/internal/mock"
	"github.com/MKhiriev/go-form-guard/internal/reactive"
	"github.com/MKhiriev/go-form-guard/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeElement records every SetEnabled call and keeps removal callbacks.
type fakeElement struct {
	calls    []bool
	onRemove []func()
}

func (f *fakeElement) SetEnabled(enabled bool) { f.calls = append(f.calls, enabled) }
func (f *fakeElement) OnRemove(fn func())      { f.onRemove = append(f.onRemove, fn) }

func (f *fakeElement) remove() {
	for _, fn := range f.onRemove {
		fn()
	}
}

func TestNewEnableBinding_InitialStateFromCurrentValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	el := mock.NewMockElement(ctrl)
	gomock.InOrder(
		el.EXPECT().SetEnabled(false),
		el.EXPECT().OnRemove(gomock.Any()),
	)

	b := NewEnableBinding(el, reactive.NewObservable(false), logger.Nop())

	assert.Equal(t, Disabled, b.State())
	assert.NotEmpty(t, b.ID())
}

func TestEnableBinding_TransitionsOnEveryChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := reactive.NewObservable(true)
	el := mock.NewMockElement(ctrl)
	gomock.InOrder(
		el.EXPECT().SetEnabled(true),
		el.EXPECT().OnRemove(gomock.Any()),
		el.EXPECT().SetEnabled(false),
		el.EXPECT().SetEnabled(true),
	)

	b := NewEnableBinding(el, valid, logger.Nop())
	require.Equal(t, Enabled, b.State())

	valid.Set(false)
	assert.Equal(t, Disabled, b.State())

	valid.Set(true)
	assert.Equal(t, Enabled, b.State())
}

func TestEnableBinding_RemovalDisposes(t *testing.T) {
	valid := reactive.NewObservable(false)
	el := &fakeElement{}
	b := NewEnableBinding(el, valid, logger.Nop())

	el.remove()
	valid.Set(true)

	assert.True(t, b.Disposed())
	assert.Equal(t, Disabled, b.State())
	assert.Equal(t, []bool{false}, el.calls)
	assert.Equal(t, 0, valid.Subscribers())
}

func TestEnableBinding_DisposeTwiceIsNoop(t *testing.T) {
	valid := reactive.NewObservable(true)
	el := &fakeElement{}
	b := NewEnableBinding(el, valid, logger.Nop())

	assert.NotPanics(t, func() {
		b.dispose()
		b.dispose()
		el.remove()
	})

	valid.Set(false)
	assert.Equal(t, Enabled, b.State())
	assert.Equal(t, []bool{true}, el.calls)
}

func TestEnableBinding_FollowsFormAggregate(t *testing.T) {
	name := reactive.NewObservable("")
	email := reactive.NewObservable("")
	model := validation.FormModel{
		"name":  validation.Attach(name, validation.Options{}),
		"email": validation.Attach(email, validation.Options{}),
		"notes": "opaque",
	}
	valid := validation.Aggregate(model)
	el := &fakeElement{}

	b := NewEnableBinding(el, valid, logger.Nop())
	require.Equal(t, Disabled, b.State())

	name.Set("Jane")
	assert.Equal(t, Disabled, b.State())

	email.Set("jane@example.com")
	assert.Equal(t, Enabled, b.State(), "transition happens within the write")

	email.Set(" ")
	assert.Equal(t, Disabled, b.State())

	assert.Equal(t, []bool{false, true, false}, el.calls)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "enabled", Enabled.String())
	assert.Equal(t, "disabled", Disabled.String())
	assert.Equal(t, "unknown", State(42).String())
}
