// file: guess/recover/recover.go
package recover

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

const (
	tagComponent = "component"
	tagFunction  = "function"
)

// ----------------------------------------------------
// Global panic hook (optional)
// ----------------------------------------------------

var OnPanic func(component, function string, recovered any)

// ----------------------------------------------------
// Panic recovery functions
// ----------------------------------------------------

// report logs a recovered panic with its stack and calls OnPanic.
func report(component, function string, recovered any) {
	log.Error().
		Str(tagComponent, component).
		Str(tagFunction, function).
		Str("stack", string(debug.Stack())).
		Msgf("panic: %v", recovered)

	if OnPanic != nil {
		OnPanic(component, function, recovered)
	}
}

// ----------------------------------------------------
// Universal wrapper
// ----------------------------------------------------

// RecoverableFunc is a context-aware function that may panic.
type RecoverableFunc func(ctx context.Context) error

// WrapRecover turns a panic in f into an error.
func WrapRecover(component, function string, f RecoverableFunc) RecoverableFunc {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				report(component, function, r)
				err = fmt.Errorf("panic recovered in %s.%s: %v", component, function, r)
			}
		}()
		return f(ctx)
	}
}
