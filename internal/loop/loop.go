// Package loop runs a game in a terminal: the fixed-rate frame loop, input
// translation, half-block rendering and the HUD.
package loop

import (
	"bufio"
	"context"
	"io"
)

// Run creates a session and blocks until it ends.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	s, err := NewSession(r, w, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}
