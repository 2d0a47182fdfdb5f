//go:build !cgo

package display

import "errors"

// RunWindow is unavailable without cgo.
func RunWindow(cfg WindowConfig, loop func(Surface) error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
