package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	lru "github.com/hashicorp/golang-lru/v2"

	"migrator-deps/internal/ports"
	"migrator-deps/internal/types"
)

type MigratorAPIAdapter struct {
	Endpoint   string
	Token      string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	CacheTTL   time.Duration

	client *http.Client
	cache  *lru.Cache[string, cachedDependencies]
}

type cachedDependencies struct {
	records   []types.RawDependencyRecord
	fetchedAt time.Time
}

const defaultMigratorTimeout = 30 * time.Second
const defaultMigratorRetries = 3
const defaultMigratorRetryDelay = 200 * time.Millisecond
const maxMigratorRetryDelay = 2 * time.Second
const migratorCacheSize = 128

func NewMigratorAPIAdapter(endpoint string, token string, timeoutSec int, retries int, retryDelayMs int, cacheTTLSec int) *MigratorAPIAdapter {
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultMigratorTimeout
	}
	if retries <= 0 {
		retries = defaultMigratorRetries
	}
	retryDelay := time.Duration(retryDelayMs) * time.Millisecond
	if retryDelay <= 0 {
		retryDelay = defaultMigratorRetryDelay
	}
	cache, _ := lru.New[string, cachedDependencies](migratorCacheSize)
	return &MigratorAPIAdapter{
		Endpoint:   strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		Token:      strings.TrimSpace(token),
		Timeout:    timeout,
		Retries:    retries,
		RetryDelay: retryDelay,
		CacheTTL:   time.Duration(cacheTTLSec) * time.Second,
		client:     &http.Client{Timeout: timeout},
		cache:      cache,
	}
}

type dependenciesPayload struct {
	Dependencies []types.RawDependencyRecord `json:"dependencies"`
	Summary      json.RawMessage             `json:"summary"`
}

type dependentsPayload struct {
	Dependents []types.Dependent `json:"dependents"`
}

// FetchDependencies returns the raw detection records for a repository.
// Responses are cached per repository for CacheTTL so a polling loop
// only hits the network once per interval; a zero TTL disables the
// cache. The backend summary object is ignored, the caller recomputes
// its own from the merged list.
func (a *MigratorAPIAdapter) FetchDependencies(ctx context.Context, repository string) ([]types.RawDependencyRecord, error) {
	repo := strings.TrimSpace(repository)
	if repo == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository is empty")
	}
	if a.CacheTTL > 0 && a.cache != nil {
		if entry, ok := a.cache.Get(repo); ok && time.Since(entry.fetchedAt) < a.CacheTTL {
			return entry.records, nil
		}
	}
	body, err := a.getJSON(ctx, a.dependenciesURL(repo))
	if err != nil {
		return nil, err
	}
	var payload dependenciesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse dependencies response").
			WithCause(err)
	}
	if a.CacheTTL > 0 && a.cache != nil {
		a.cache.Add(repo, cachedDependencies{records: payload.Dependencies, fetchedAt: time.Now()})
	}
	return payload.Dependencies, nil
}

// FetchDependents returns the repositories depending on the given one.
// The backend has served both an enveloped object and a bare array for
// this endpoint, so both shapes are accepted.
func (a *MigratorAPIAdapter) FetchDependents(ctx context.Context, repository string) ([]types.Dependent, error) {
	repo := strings.TrimSpace(repository)
	if repo == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("repository is empty")
	}
	body, err := a.getJSON(ctx, a.dependentsURL(repo))
	if err != nil {
		return nil, err
	}
	var payload dependentsPayload
	if err := json.Unmarshal(body, &payload); err == nil && payload.Dependents != nil {
		return payload.Dependents, nil
	}
	var bare []types.Dependent
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse dependents response").
			WithCause(err)
	}
	return bare, nil
}

func (a *MigratorAPIAdapter) dependenciesURL(repository string) string {
	return fmt.Sprintf("%s/api/repositories/%s/dependencies", a.Endpoint, url.PathEscape(repository))
}

func (a *MigratorAPIAdapter) dependentsURL(repository string) string {
	return fmt.Sprintf("%s/api/repositories/%s/dependents", a.Endpoint, url.PathEscape(repository))
}

func (a *MigratorAPIAdapter) getJSON(ctx context.Context, requestURL string) ([]byte, error) {
	if a.Endpoint == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("migrator endpoint is empty")
	}
	var lastErr error
	for attempt := 0; attempt < a.Retries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		body, retry, err := a.getJSONOnce(ctx, requestURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retry || attempt == a.Retries-1 {
			return nil, err
		}
		time.Sleep(a.retryDelay(attempt))
	}
	if lastErr == nil {
		lastErr = errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("migrator request failed")
	}
	return nil, lastErr
}

func (a *MigratorAPIAdapter) getJSONOnce(ctx context.Context, requestURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create migrator request").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if a.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.Token)
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, true, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("migrator request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, false, nil
	}
	message := strings.TrimSpace(string(body))
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("repository not found").
			WithCause(fmt.Errorf("status=%d url=%s response=%s", resp.StatusCode, requestURL, message))
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodePermissionDenied).
			WithMsg("migrator rejected credentials").
			WithCause(fmt.Errorf("status=%d url=%s response=%s", resp.StatusCode, requestURL, message))
	}
	retry := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
	return nil, retry, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("migrator request failed").
		WithCause(fmt.Errorf("status=%d url=%s response=%s", resp.StatusCode, requestURL, message))
}

func (a *MigratorAPIAdapter) retryDelay(attempt int) time.Duration {
	delay := a.RetryDelay * time.Duration(1<<attempt)
	if delay > maxMigratorRetryDelay {
		delay = maxMigratorRetryDelay
	}
	jitter := time.Duration(time.Now().UnixNano() % int64(delay/2+1))
	return delay + jitter
}

var _ ports.MigratorAPIPort = (*MigratorAPIAdapter)(nil)
