package infra

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestServerGracefulShutdownReturnsErrServerClosed(t *testing.T) {
	cfg := &Config{
		Port:             "0",
		HTTPReadTimeout:  time.Second,
		HTTPWriteTimeout: time.Second,
		HTTPIdleTimeout:  time.Second,
	}
	srv := NewHTTPServer(cfg, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	started := make(chan error, 1)
	go func() { started <- srv.Start() }()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	// Start must surface http.ErrServerClosed so main can tell a graceful
	// shutdown from a real listener failure.
	err := <-started
	if !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("Start returned %v, want http.ErrServerClosed", err)
	}
}

func TestServerNilGuards(t *testing.T) {
	var srv HTTPServer
	if err := srv.Start(); err != nil {
		t.Fatalf("Start on zero value = %v, want nil", err)
	}
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on zero value = %v, want nil", err)
	}
}
