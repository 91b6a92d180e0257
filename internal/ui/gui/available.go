//go:build !headless

package gui

// Available reports whether this build includes the desktop form.
func Available() bool { return true }
