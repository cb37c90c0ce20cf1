package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
)

const (
	_maxBodySize    = 64 * 1024 // 64 KB, the payload is two short strings
	_requestTimeout = 10 * time.Second
)

// HTTPFetcher requests now-playing metadata from the station server
type HTTPFetcher struct {
	logger *zap.Logger
	client *http.Client
	url    string
}

// NewHTTPFetcher creates a fetcher for the given /updateinfo URL
func NewHTTPFetcher(logger *zap.Logger, infoURL string) *HTTPFetcher {
	return &HTTPFetcher{
		logger: logger,
		client: &http.Client{
			Timeout: _requestTimeout,
		},
		url: infoURL,
	}
}

// Fetch retrieves the current track. Every failure is a *domain.FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context) (domain.NowPlayingInfo, error) {
	var info domain.NowPlayingInfo

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return info, &domain.FetchError{Kind: domain.FetchNetwork, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("User-Agent", "onair/1.0")
	req.Header.Set("Accept", "application/json")
	// The query parameter alone does not stop every intermediary from caching
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return info, &domain.FetchError{Kind: domain.FetchNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return info, &domain.FetchError{
			Kind:       domain.FetchStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", resp.Status),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, _maxBodySize+1))
	if err != nil {
		return info, &domain.FetchError{Kind: domain.FetchNetwork, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	if len(body) > _maxBodySize {
		return info, &domain.FetchError{Kind: domain.FetchMalformed, Err: fmt.Errorf("response exceeds %d bytes", _maxBodySize)}
	}

	var payload struct {
		Song   *string `json:"song_string"`
		Artist *string `json:"artist_string"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return info, &domain.FetchError{Kind: domain.FetchMalformed, Err: err}
	}
	if payload.Song == nil && payload.Artist == nil {
		return info, &domain.FetchError{Kind: domain.FetchMalformed, Err: fmt.Errorf("response has neither song_string nor artist_string")}
	}

	if payload.Song != nil {
		info.SongTitle = *payload.Song
	}
	if payload.Artist != nil {
		info.ArtistName = *payload.Artist
	}

	f.logger.Debug("Now playing fetched",
		zap.String("title", info.SongTitle),
		zap.String("artist", info.ArtistName))
	return info, nil
}
