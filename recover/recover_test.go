package recover_test

import (
	"context"
	"errors"
	"testing"

	recoverpkg "github.com/rskv-p/guess/recover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var panicHookTriggered bool
var panicCapturedComponent, panicCapturedFunc string
var panicCapturedValue any

func TestMain(m *testing.M) {
	recoverpkg.OnPanic = func(component, fn string, r any) {
		panicHookTriggered = true
		panicCapturedComponent = component
		panicCapturedFunc = fn
		panicCapturedValue = r
	}
	m.Run()
}

func TestRecoverFunc_NoPanic(t *testing.T) {
	panicHookTriggered = false
	wantErr := errors.New("plain")

	f := recoverpkg.WrapRecover("cli", "ok", func(ctx context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, f(context.Background()), wantErr)
	assert.False(t, panicHookTriggered)
}

func TestRecoverFunc_WithPanic(t *testing.T) {
	panicHookTriggered = false

	f := recoverpkg.WrapRecover("cli", "boom", func(ctx context.Context) error {
		var tree map[string]int
		tree["x"] = 1
		return nil
	})
	err := f(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered in cli.boom")
	assert.True(t, panicHookTriggered)
	assert.Equal(t, "cli", panicCapturedComponent)
	assert.Equal(t, "boom", panicCapturedFunc)
	assert.NotNil(t, panicCapturedValue)
}
