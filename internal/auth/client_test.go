package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hypechain/hypechain/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.AuthConfig{URL: server.URL}
	client, err := New(&cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client, server
}

func TestResolveValidToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("Authorization header = %q, want %q", got, "Bearer token-1")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "user-1", "email": "user@example.com"}`))
	})

	identity, err := client.Resolve(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if identity == nil {
		t.Fatal("Resolve() returned nil identity")
	}
	if identity.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", identity.UserID, "user-1")
	}
	if identity.Email != "user@example.com" {
		t.Errorf("Email = %q, want %q", identity.Email, "user@example.com")
	}
}

func TestResolveRejectedToken(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		identity, err := client.Resolve(context.Background(), "bad-token")
		if err != nil {
			t.Fatalf("Resolve() with status %d error = %v", status, err)
		}
		if identity != nil {
			t.Errorf("Resolve() with status %d = %+v, want nil", status, identity)
		}
	}
}

func TestResolveServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := client.Resolve(context.Background(), "token-1"); err == nil {
		t.Fatal("Resolve() expected error for 500 response")
	}
}

func TestResolveEmptyToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("auth service should not be called for empty token")
	})

	if _, err := client.Resolve(context.Background(), ""); err == nil {
		t.Fatal("Resolve() expected error for empty token")
	}
}

func TestResolveIdentityWithoutID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email": "user@example.com"}`))
	})

	identity, err := client.Resolve(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if identity != nil {
		t.Errorf("Resolve() = %+v, want nil for identity without id", identity)
	}
}
