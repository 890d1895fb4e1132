package enka

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kttyan/genshin-build-viewer/internal/constants"
	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/internal/service/relay"
	"github.com/kttyan/genshin-build-viewer/pkg/errors"
	"go.uber.org/zap"
)

// ProfileFetcher is implemented by Fetcher and faked in tests of its callers.
type ProfileFetcher interface {
	Fetch(ctx context.Context, uid string) (*domain.ProfileDocument, error)
}

type FetcherConfig struct {
	BaseURL        string
	UserAgent      string
	Routes         []relay.Route
	MaxRetries     int
	AttemptTimeout time.Duration
	RetryDelay     time.Duration
}

// Fetcher retrieves profile documents through a rotating list of relay routes.
type Fetcher struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	routes         []relay.Route
	maxRetries     int
	attemptTimeout time.Duration
	retryDelay     time.Duration
	logger         *zap.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewFetcher(httpClient *http.Client, cfg FetcherConfig, logger *zap.Logger) (*Fetcher, error) {
	if len(cfg.Routes) == 0 {
		return nil, fmt.Errorf("at least one relay route is required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("enka base url is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = constants.FetchConfig.MaxRetries
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = constants.FetchConfig.AttemptTimeout
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = constants.FetchConfig.RetryDelay
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = constants.APIConfig.UserAgent
	}

	routes := make([]relay.Route, len(cfg.Routes))
	copy(routes, cfg.Routes)

	return &Fetcher{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		routes:         routes,
		maxRetries:     cfg.MaxRetries,
		attemptTimeout: cfg.AttemptTimeout,
		retryDelay:     cfg.RetryDelay,
		logger:         logger,
		now:            time.Now,
		sleep:          sleepContext,
	}, nil
}

// Fetch returns the profile of uid. Every failure after validation is reported as
// errors.ErrProfileUnavailable; the last attempt error stays in the chain for logs.
func (f *Fetcher) Fetch(ctx context.Context, uid string) (*domain.ProfileDocument, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, errors.NewValidationError("uid is required", "uid", uid)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var lastErr error
	attempts := 0

	for attempt := 0; attempt < f.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		route := f.routes[attempt%len(f.routes)]
		attempts++

		f.logger.Info("Fetching profile",
			zap.String("uid", uid),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", f.maxRetries),
			zap.String("route", route.Name()),
		)

		doc, err := f.attempt(ctx, route, uid)
		if err == nil {
			f.logger.Info("Profile fetched",
				zap.String("uid", uid),
				zap.Int("attempt", attempt+1),
				zap.String("route", route.Name()),
				zap.Int("characters", len(doc.AvatarInfoList)),
			)
			return doc, nil
		}
		lastErr = err

		f.logger.Warn("Profile fetch attempt failed",
			zap.String("uid", uid),
			zap.Int("attempt", attempt+1),
			zap.String("route", route.Name()),
			zap.String("code", errors.CodeOf(err)),
			zap.Error(err),
		)

		if attempt == f.maxRetries-1 {
			break
		}
		if err := f.sleep(ctx, f.retryDelay); err != nil {
			lastErr = err
			break
		}
	}

	f.logger.Error("Profile fetch exhausted",
		zap.String("uid", uid),
		zap.Int("attempts", attempts),
		zap.Error(lastErr),
	)
	return nil, errors.NewUnavailableError(uid, attempts, lastErr)
}

func (f *Fetcher) attempt(ctx context.Context, route relay.Route, uid string) (*domain.ProfileDocument, error) {
	reqURL := route.BuildURL(f.targetURL(uid))

	attemptCtx, cancel := context.WithTimeout(ctx, f.attemptTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.NewTransportError("failed to build request", reqURL, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(attemptCtx, reqURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(attemptCtx, reqURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewHTTPStatusError(resp.StatusCode, reqURL)
	}

	payload, err := route.Unwrap(body)
	if err != nil {
		return nil, err
	}

	var doc domain.ProfileDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, errors.NewPayloadError("failed to decode profile document", route.Name(), err)
	}
	return &doc, nil
}

// targetURL appends a fresh millisecond timestamp on every attempt.
func (f *Fetcher) targetURL(uid string) string {
	return fmt.Sprintf("%s/%s?t=%d", f.baseURL, url.PathEscape(uid), f.now().UnixMilli())
}

func classifyTransport(attemptCtx context.Context, reqURL string, err error) error {
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return errors.NewTimeoutError("attempt timed out", reqURL, err)
	}
	return errors.NewTransportError("request failed", reqURL, err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
