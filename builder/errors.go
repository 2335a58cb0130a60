// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Every Build failure also matches ErrConfiguration.

package builder

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every error returned from Build.
var ErrConfiguration = errors.New("builder: configuration error")

// ErrUnknownNavigator indicates a navigator key outside the registry.
var ErrUnknownNavigator = errors.New("builder: unknown navigator")

// ErrUnknownAlgorithm indicates an algorithm key outside the registry.
var ErrUnknownAlgorithm = errors.New("builder: unknown algorithm")

// ErrUnknownHeuristic indicates a heuristic key outside the registry.
var ErrUnknownHeuristic = errors.New("builder: unknown heuristic")

// ErrUnknownGenerator indicates a terrain generator key outside the registry.
var ErrUnknownGenerator = errors.New("builder: unknown terrain generator")

// ErrNoBidirectional indicates an algorithm without a bidirectional variant.
var ErrNoBidirectional = errors.New("builder: no bidirectional variant")

// ErrNilGrid indicates NewPathfinder was given a nil grid.
var ErrNilGrid = errors.New("builder: grid is nil")

// configError carries a cause and the method that rejected it.
// It matches ErrConfiguration and unwraps to the cause.
type configError struct {
	method string
	cause  error
	key    string
}

func (e *configError) Error() string {
	if e.key == "" {
		return fmt.Sprintf("%s: %v", e.method, e.cause)
	}
	return fmt.Sprintf("%s: %v %q", e.method, e.cause, e.key)
}

func (e *configError) Is(target error) bool { return target == ErrConfiguration }

func (e *configError) Unwrap() error { return e.cause }

// configErrorf wraps cause with method context; key may be empty.
func configErrorf(method string, cause error, key string) error {
	return &configError{method: method, cause: cause, key: key}
}
