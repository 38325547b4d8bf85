package blacklist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRemoteSourceContains(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"denied": ["evil", " Phish.Example "]}`))
	}))
	defer srv.Close()

	source := NewRemote(srv.URL, time.Second, discardLogger())
	if err := source.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() = %v", err)
	}

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "substring match", url: "https://notevil-but-contains-evil.test", want: true},
		{name: "case-insensitive match", url: "https://EVIL.test/", want: true},
		{name: "trimmed and lowered entry matches", url: "https://phish.example/login", want: true},
		{name: "clean URL", url: "https://example.com/", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := source.Contains(context.Background(), tt.url); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestRemoteSourceFailsOpen(t *testing.T) {
	t.Run("unreachable feed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
		srv.Close() // refuse connections

		source := NewRemote(srv.URL, time.Second, discardLogger())
		if err := source.Fetch(context.Background()); err == nil {
			t.Fatal("Fetch() should report the failure")
		}

		if source.Contains(context.Background(), "https://evil.test/") {
			t.Error("a failed fetch should degrade every lookup to no match")
		}
	})

	t.Run("non-200 response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		source := NewRemote(srv.URL, time.Second, discardLogger())
		if err := source.Fetch(context.Background()); err == nil {
			t.Fatal("Fetch() should report the failure")
		}

		if source.Contains(context.Background(), "https://evil.test/") {
			t.Error("a failed fetch should degrade every lookup to no match")
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"denied": [`))
		}))
		defer srv.Close()

		source := NewRemote(srv.URL, time.Second, discardLogger())
		if err := source.Fetch(context.Background()); err == nil {
			t.Fatal("Fetch() should report the failure")
		}
	})

	t.Run("unfetched source never matches", func(t *testing.T) {
		source := NewRemote("http://feed.invalid/denied.json", time.Second, discardLogger())

		if source.Contains(context.Background(), "https://evil.test/") {
			t.Error("an unfetched source should report no match")
		}
	})
}

func TestRegistryCheckAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"denied": ["evil"]}`))
	}))
	defer srv.Close()

	remote := NewRemote(srv.URL, time.Second, discardLogger())
	if err := remote.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch() = %v", err)
	}

	local := NewLocal(writeLocalList(t, `{"flagged_sites": ["https://evil.test/"]}`), discardLogger())
	registry := NewRegistry(local, remote)

	flagged, matched := registry.CheckAll(context.Background(), "https://evil.test/")
	if !flagged {
		t.Fatal("URL should be flagged")
	}

	// Both sources hit: local exactly, remote by substring.
	if len(matched) != 2 || matched[0] != "local" || matched[1] != "remote" {
		t.Errorf("matched = %v, want [local remote]", matched)
	}

	flagged, matched = registry.CheckAll(context.Background(), "https://example.com/")
	if flagged || matched != nil {
		t.Errorf("clean URL flagged by %v", matched)
	}
}
