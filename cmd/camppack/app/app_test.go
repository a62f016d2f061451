package app

import (
	"sync"
	"testing"

	camppack "github.com/pxlchk1/Complete-Camping-App-3.0-sub005"
	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/internal/storage"
)

func newTestClient(t *testing.T) camppack.Client {
	t.Helper()
	client, err := camppack.New(
		camppack.WithRepository(storage.NewMemory()),
		camppack.WithSynchronousSaves(),
	)
	if err != nil {
		t.Fatalf("camppack.New() failed: %v", err)
	}
	return client
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

// TestApp_Client_Singleton verifies that Client() returns the same instance.
func TestApp_Client_Singleton(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test",
		WithClient(newTestClient(t)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	c1, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}

	c2, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed on second call: %v", err)
	}

	if c1 != c2 {
		t.Error("Client() returned different instances, expected singleton")
	}
}

// TestApp_Client_ThreadSafe verifies concurrent Client() calls are safe.
func TestApp_Client_ThreadSafe(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test",
		WithClient(newTestClient(t)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	const goroutines = 100
	var wg sync.WaitGroup
	results := make([]camppack.Client, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			c, err := app.Client()
			results[idx] = c
			errs[idx] = err
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Goroutine %d: Client() failed: %v", i, err)
		}
	}

	first := results[0]
	for i, c := range results[1:] {
		if c != first {
			t.Errorf("Goroutine %d got different client instance", i+1)
		}
	}
}

// TestApp_Shutdown verifies shutdown is safe with and without a client.
func TestApp_Shutdown(t *testing.T) {
	app, err := New("1.0.0", "test", "2024-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	app.Shutdown() // no client created, must not panic

	app, err = New("1.0.0", "test", "2024-01-01", "test",
		WithClient(newTestClient(t)))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if _, err := app.Client(); err != nil {
		t.Fatalf("Client() failed: %v", err)
	}
	app.Shutdown()
}
