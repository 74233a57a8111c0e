package recnet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/osse101/RecCross_Go/internal/logger"
	"github.com/osse101/RecCross_Go/internal/metrics"
)

// Resolver turns a Rec Room username into profile data. It holds only
// configuration and is safe for concurrent use.
type Resolver struct {
	cfg Config
}

// NewResolver creates a resolver, filling unset config with defaults
func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration
func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve looks username up on the profile API and, when that yields
// nothing usable, scrapes the public user page.
//
// "No data" outcomes are reported through the Result. The error is non-nil
// only for transport or decoding failures, which callers convert with
// Transient.
func (r *Resolver) Resolve(ctx context.Context, username string) (Result, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Result{}, ErrEmptyUsername
	}

	log := logger.FromContext(ctx).With("username", username)

	s := r.cfg.openSession()
	defer s.release()

	status, profile, err := r.fetchProfile(ctx, s.client, username)
	if err != nil {
		return Result{}, fmt.Errorf("primary request: %w", err)
	}
	if profile != nil {
		log.Debug("Resolved from profile API")
		return FromProfile(*profile), nil
	}

	log.Debug("Profile API insufficient, trying user page", "status", status)

	account, err := r.fetchUserPage(ctx, s.client, username)
	if err != nil {
		return Result{}, fmt.Errorf("fallback request: %w", err)
	}

	if account.Empty() {
		// The primary's status is the only hint whether rec.net is blocking us.
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			log.Info("No player data, access looks blocked", "primary_status", status)
			return AccessDenied(), nil
		default:
			log.Info("No player data found", "primary_status", status)
			return NotFound(), nil
		}
	}

	log.Debug("Resolved from user page")
	return FromAccount(account), nil
}

// fetchProfile calls the profile API. A nil profile with a nil error means
// the primary was insufficient; status tells why.
func (r *Resolver) fetchProfile(ctx context.Context, client *http.Client, username string) (int, *ProfileData, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.PrimaryTimeout)
	defer cancel()

	resp, err := r.get(ctx, client, r.cfg.ProfileURL(username), metrics.SourcePrimary)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return resp.StatusCode, nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read body: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		var v interface{}
		if json.Unmarshal(body, &v) == nil {
			// Valid JSON that is not an object is just not useful.
			return resp.StatusCode, nil, nil
		}
		return resp.StatusCode, nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if len(fields) == 0 {
		return resp.StatusCode, nil, nil
	}

	profile := decodeProfile(fields)
	return resp.StatusCode, &profile, nil
}

// fetchUserPage scrapes the public user page. A non-200 page yields an
// empty AccountData rather than an error.
func (r *Resolver) fetchUserPage(ctx context.Context, client *http.Client, username string) (AccountData, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.FallbackTimeout)
	defer cancel()

	resp, err := r.get(ctx, client, r.cfg.UserPageURL(username), metrics.SourceFallback)
	if err != nil {
		return AccountData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return AccountData{}, nil
	}

	html, err := readText(resp)
	if err != nil {
		return AccountData{}, fmt.Errorf("failed to read page: %w", err)
	}

	account := Extract(html)
	recordExtracted(account)
	return account, nil
}

func (r *Resolver) get(ctx context.Context, client *http.Client, url, source string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	setBrowserHeaders(req)

	start := time.Now()
	resp, err := client.Do(req)
	status := metrics.StatusError
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	metrics.UpstreamRequestDuration.WithLabelValues(source, status).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}
	return resp, nil
}

// readText reads the response body as UTF-8, transcoding when the server
// declares another charset.
func readText(resp *http.Response) (string, error) {
	var body io.Reader = io.LimitReader(resp.Body, maxBodyBytes)

	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		if cs := params["charset"]; cs != "" && !strings.EqualFold(cs, "utf-8") {
			if enc, err := htmlindex.Get(cs); err == nil {
				body = enc.NewDecoder().Reader(body)
			}
		}
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func recordExtracted(a AccountData) {
	if a.AccountID != nil {
		metrics.FieldsExtractedTotal.WithLabelValues("accountId").Inc()
	}
	if a.Username != "" {
		metrics.FieldsExtractedTotal.WithLabelValues("username").Inc()
	}
	if a.DisplayName != "" {
		metrics.FieldsExtractedTotal.WithLabelValues("displayName").Inc()
	}
	if a.ProfileImage != "" {
		metrics.FieldsExtractedTotal.WithLabelValues("profileImage").Inc()
	}
}
