// Dietprefs - Dietary Preference Vendor Discovery
// Copyright 2026 The Dietprefs Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dietprefs/dietprefs

package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

// mockServer simulates http.Server lifecycle for the wrapper.
type mockServer struct {
	serveErr    error
	shutdownErr error
	release     chan struct{}
	shutdowns   int
}

func (m *mockServer) ListenAndServe() error {
	if m.release != nil {
		<-m.release
	}
	if m.serveErr != nil {
		return m.serveErr
	}
	return http.ErrServerClosed
}

func (m *mockServer) Shutdown(_ context.Context) error {
	m.shutdowns++
	if m.release != nil {
		close(m.release)
	}
	return m.shutdownErr
}

func TestHTTPServerServiceStartupFailure(t *testing.T) {
	boom := errors.New("port in use")
	svc := NewHTTPServerService(&mockServer{serveErr: boom}, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, boom) {
		t.Errorf("Expected wrapped startup error, got %v", err)
	}
}

func TestHTTPServerServiceGracefulShutdown(t *testing.T) {
	server := &mockServer{release: make(chan struct{})}
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled after shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Service did not stop after context cancellation")
	}
	if server.shutdowns != 1 {
		t.Errorf("Expected exactly one Shutdown call, got %d", server.shutdowns)
	}
}

func TestHTTPServerServiceString(t *testing.T) {
	svc := NewHTTPServerService(&mockServer{}, 0)
	if svc.String() != "http-server" {
		t.Errorf("Expected service name http-server, got %q", svc.String())
	}
}
