package gui

import "context"

// quitOnCancel calls quit once ctx is done, unless closed is closed first.
// It returns in either case.
func quitOnCancel(ctx context.Context, closed <-chan struct{}, quit func()) {
	select {
	case <-ctx.Done():
		quit()
	case <-closed:
	}
}
