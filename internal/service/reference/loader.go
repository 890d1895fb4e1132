package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/kttyan/genshin-build-viewer/internal/constants"
	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/pkg/errors"
	"github.com/sourcegraph/conc"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	tableCharacters = "characters"
	tableLocale     = "locale"

	snapshotKeyCharacters = "genshin:reference:characters"
	snapshotKeyLocale     = "genshin:reference:loc:%s"
)

// SnapshotStore keeps the last good copy of a table. *cache.CacheService satisfies it.
type SnapshotStore interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type LoaderConfig struct {
	CharactersURL  string
	LocURL         string
	Locale         string
	FallbackLocale string
	Timeout        time.Duration
	SnapshotTTL    time.Duration
}

// Loader builds the ReferenceTables exactly once per process.
type Loader struct {
	httpClient *http.Client
	cfg        LoaderConfig
	snapshots  SnapshotStore
	logger     *zap.Logger

	once   sync.Once
	tables *domain.ReferenceTables
}

// NewLoader creates a loader. snapshots may be nil.
func NewLoader(httpClient *http.Client, cfg LoaderConfig, snapshots SnapshotStore, logger *zap.Logger) *Loader {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = constants.ReferenceConfig.Timeout
	}
	return &Loader{
		httpClient: httpClient,
		cfg:        cfg,
		snapshots:  snapshots,
		logger:     logger,
	}
}

// Tables loads both tables on first call and returns the same frozen value afterwards.
// It never fails: a table that cannot be loaded is empty.
func (l *Loader) Tables(ctx context.Context) *domain.ReferenceTables {
	l.once.Do(func() {
		l.tables = l.load(ctx)
	})
	return l.tables
}

func (l *Loader) load(ctx context.Context) *domain.ReferenceTables {
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		characters map[string]domain.CharacterMeta
		texts      map[string]string
		wg         conc.WaitGroup
	)

	wg.Go(func() {
		characters = l.loadCharacters(ctx)
	})
	wg.Go(func() {
		texts = l.loadTexts(ctx)
	})
	wg.Wait()

	tables := domain.NewReferenceTables(characters, texts)
	l.logger.Info("Reference tables ready",
		zap.Int("characters", tables.CharacterCount()),
		zap.Int("texts", tables.TextCount()),
		zap.String("locale", l.cfg.Locale),
	)
	return tables
}

func (l *Loader) loadCharacters(ctx context.Context) map[string]domain.CharacterMeta {
	var characters map[string]domain.CharacterMeta

	err := func() error {
		body, err := l.get(ctx, l.cfg.CharactersURL)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, &characters); err != nil {
			return fmt.Errorf("decode characters: %w", err)
		}
		return nil
	}()
	if err == nil {
		l.saveSnapshot(ctx, snapshotKeyCharacters, characters)
		return characters
	}

	l.logger.Error("Reference table load failed",
		zap.String("table", tableCharacters),
		zap.String("code", errors.CodeReferenceLoad),
		zap.Error(errors.NewReferenceLoadError(tableCharacters, l.cfg.CharactersURL, err)),
	)

	var cached map[string]domain.CharacterMeta
	if l.loadSnapshot(ctx, snapshotKeyCharacters, &cached) {
		return cached
	}
	return map[string]domain.CharacterMeta{}
}

func (l *Loader) loadTexts(ctx context.Context) map[string]string {
	snapshotKey := fmt.Sprintf(snapshotKeyLocale, l.cfg.Locale)

	var texts map[string]string
	err := func() error {
		body, err := l.get(ctx, l.cfg.LocURL)
		if err != nil {
			return err
		}
		texts, err = l.selectLocale(body)
		return err
	}()
	if err == nil {
		l.saveSnapshot(ctx, snapshotKey, texts)
		return texts
	}

	l.logger.Error("Reference table load failed",
		zap.String("table", tableLocale),
		zap.String("code", errors.CodeReferenceLoad),
		zap.Error(errors.NewReferenceLoadError(tableLocale, l.cfg.LocURL, err)),
	)

	var cached map[string]string
	if l.loadSnapshot(ctx, snapshotKey, &cached) {
		return cached
	}
	return map[string]string{}
}

// selectLocale extracts only the configured locale from loc.json, which carries every
// language, falling back to the secondary locale when the first is absent.
func (l *Loader) selectLocale(body []byte) (map[string]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("loc table is not valid JSON")
	}

	for _, locale := range []string{l.cfg.Locale, l.cfg.FallbackLocale} {
		if locale == "" {
			continue
		}
		section := gjson.GetBytes(body, locale)
		if !section.IsObject() {
			continue
		}

		texts := make(map[string]string)
		if err := json.Unmarshal([]byte(section.Raw), &texts); err != nil {
			return nil, fmt.Errorf("decode locale %s: %w", locale, err)
		}
		if locale != l.cfg.Locale {
			l.logger.Warn("Primary locale missing, using fallback",
				zap.String("locale", l.cfg.Locale),
				zap.String("fallback", locale),
			)
		}
		return texts, nil
	}

	return nil, fmt.Errorf("locale %q and fallback %q not present", l.cfg.Locale, l.cfg.FallbackLocale)
}

func (l *Loader) get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewHTTPStatusError(resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

func (l *Loader) saveSnapshot(ctx context.Context, key string, value any) {
	if l.snapshots == nil {
		return
	}
	if err := l.snapshots.Set(ctx, key, value, l.cfg.SnapshotTTL); err != nil {
		l.logger.Warn("Failed to store reference snapshot",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (l *Loader) loadSnapshot(ctx context.Context, key string, dest any) bool {
	if l.snapshots == nil {
		return false
	}
	found, err := l.snapshots.Get(ctx, key, dest)
	if err != nil {
		l.logger.Warn("Failed to read reference snapshot",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	if found {
		l.logger.Info("Using reference snapshot", zap.String("key", key))
	}
	return found
}
