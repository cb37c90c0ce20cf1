package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	tests := []struct {
		name         string
		responseBody string
		statusCode   int
		ctxFunc      func() (context.Context, context.CancelFunc)
		expectedKind domain.FetchErrorKind
		expectedInfo domain.NowPlayingInfo
	}{
		{
			name:         "Success - Valid Payload",
			responseBody: `{"song_string": "Song A", "artist_string": "Artist B"}`,
			statusCode:   http.StatusOK,
			expectedInfo: domain.NowPlayingInfo{SongTitle: "Song A", ArtistName: "Artist B"},
		},
		{
			name:         "Success - Markup Kept Verbatim",
			responseBody: `{"song_string": "<b>Loud</b>", "artist_string": "A & B"}`,
			statusCode:   http.StatusOK,
			expectedInfo: domain.NowPlayingInfo{SongTitle: "<b>Loud</b>", ArtistName: "A & B"},
		},
		{
			name:         "Success - Missing Artist",
			responseBody: `{"song_string": "Instrumental"}`,
			statusCode:   http.StatusOK,
			expectedInfo: domain.NowPlayingInfo{SongTitle: "Instrumental"},
		},
		{
			name:         "Error - 503 Service Unavailable",
			statusCode:   http.StatusServiceUnavailable,
			expectedKind: domain.FetchStatus,
		},
		{
			name:         "Error - Malformed JSON",
			responseBody: `{"song_string": `,
			statusCode:   http.StatusOK,
			expectedKind: domain.FetchMalformed,
		},
		{
			name:         "Error - Unrelated JSON",
			responseBody: `{"status": "ok"}`,
			statusCode:   http.StatusOK,
			expectedKind: domain.FetchMalformed,
		},
		{
			name:         "Error - Response Too Large",
			responseBody: `{"song_string": "` + strings.Repeat("a", 70*1024) + `"}`,
			statusCode:   http.StatusOK,
			expectedKind: domain.FetchMalformed,
		},
		{
			name: "Error - Context Cancelled",
			ctxFunc: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel() // Cancel immediately
				return ctx, cancel
			},
			expectedKind: domain.FetchNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup mock server
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			var ctx context.Context
			var cancel context.CancelFunc
			if tt.ctxFunc != nil {
				ctx, cancel = tt.ctxFunc()
			} else {
				ctx, cancel = context.WithTimeout(context.Background(), 2*time.Second)
			}
			defer cancel()

			fetcher := NewHTTPFetcher(zap.NewNop(), server.URL+"/updateinfo")
			info, err := fetcher.Fetch(ctx)

			if tt.expectedKind != "" {
				if err == nil {
					t.Fatalf("expected %s error, got nil", tt.expectedKind)
				}
				var fetchErr *domain.FetchError
				if !errors.As(err, &fetchErr) {
					t.Fatalf("expected *domain.FetchError, got %T", err)
				}
				if fetchErr.Kind != tt.expectedKind {
					t.Errorf("expected kind %s, got %s (%v)", tt.expectedKind, fetchErr.Kind, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if info != tt.expectedInfo {
				t.Errorf("expected %+v, got %+v", tt.expectedInfo, info)
			}
		})
	}
}

func TestHTTPFetcher_RequestShape(t *testing.T) {
	var gotPath, gotQuery, gotCacheControl string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotCacheControl = r.Header.Get("Cache-Control")
		_, _ = w.Write([]byte(`{"song_string": "s", "artist_string": "a"}`))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(zap.NewNop(), server.URL+"/updateinfo?ModPagespeed=noscript")
	if _, err := fetcher.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/updateinfo" {
		t.Errorf("expected path /updateinfo, got %q", gotPath)
	}
	if gotQuery != "ModPagespeed=noscript" {
		t.Errorf("expected cache-busting query, got %q", gotQuery)
	}
	if gotCacheControl != "no-cache" {
		t.Errorf("expected Cache-Control no-cache, got %q", gotCacheControl)
	}
}

func TestFetchError_StatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(zap.NewNop(), server.URL).Fetch(context.Background())

	var fetchErr *domain.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *domain.FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", fetchErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "unexpected status code: 404") {
		t.Errorf("unexpected message: %v", err)
	}
}
