package gui

import (
	"context"
	"testing"
	"time"
)

func TestQuitOnCancel_ReturnsWhenWindowCloses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	closed := make(chan struct{})
	quit := make(chan struct{}, 1)
	returned := make(chan struct{})

	go func() {
		quitOnCancel(ctx, closed, func() { quit <- struct{}{} })
		close(returned)
	}()
	close(closed)

	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher still running after the window closed")
	}
	cancel()
	select {
	case <-quit:
		t.Fatal("quit called after the window had closed")
	default:
	}
}

func TestQuitOnCancel_QuitsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	closed := make(chan struct{})
	defer close(closed)
	quit := make(chan struct{})

	go quitOnCancel(ctx, closed, func() { close(quit) })
	cancel()

	select {
	case <-quit:
	case <-time.After(2 * time.Second):
		t.Fatal("quit not called after cancel")
	}
}
