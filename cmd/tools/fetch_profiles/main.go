package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kttyan/genshin-build-viewer/internal/config"
	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/internal/service/enka"
	"github.com/kttyan/genshin-build-viewer/internal/service/relay"
)

const delayBetween = 350 * time.Millisecond

// fetch_profiles dumps raw profile documents for offline inspection and test fixtures.
func main() {
	outputDir := flag.String("out", "testdata/profiles", "directory for the fetched documents")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	uids := flag.Args()
	if len(uids) == 0 {
		logger.Fatal("usage: fetch_profiles [-out dir] <uid>...")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	routes, err := relay.ParseAll(cfg.Fetch.RelayRoutes)
	if err != nil {
		logger.Fatal("invalid relay routes", zap.Error(err))
	}

	fetcher, err := enka.NewFetcher(&http.Client{}, enka.FetcherConfig{
		BaseURL:        cfg.Enka.BaseURL,
		UserAgent:      cfg.Enka.UserAgent,
		Routes:         routes,
		MaxRetries:     cfg.Fetch.MaxRetries,
		AttemptTimeout: cfg.Fetch.AttemptTimeout,
		RetryDelay:     cfg.Fetch.RetryDelay,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create fetcher", zap.Error(err))
	}

	ctx := context.Background()
	written := 0
	for idx, uid := range uids {
		uid = strings.TrimSpace(uid)
		logger.Info("Fetching profile", zap.Int("index", idx+1), zap.String("uid", uid))

		doc, err := fetcher.Fetch(ctx, uid)
		if err != nil {
			logger.Error("failed to fetch profile", zap.String("uid", uid), zap.Error(err))
			continue
		}

		path, err := writeProfile(*outputDir, uid, doc)
		if err != nil {
			logger.Error("failed to write profile", zap.String("uid", uid), zap.Error(err))
			continue
		}
		written++
		logger.Info("Profile written",
			zap.String("uid", uid),
			zap.Int("characters", len(doc.AvatarInfoList)),
			zap.String("output", path),
		)

		if idx < len(uids)-1 {
			time.Sleep(delayBetween)
		}
	}

	if written == 0 {
		logger.Fatal("no profiles fetched")
	}
	logger.Info("Profile fetch completed", zap.Int("count", written), zap.String("output", *outputDir))
}

func writeProfile(dir, uid string, doc *domain.ProfileDocument) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	outputFile := filepath.Join(dir, fmt.Sprintf("%s.json", uid))
	tmpFile := outputFile + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmpFile, outputFile); err != nil {
		return "", err
	}
	return outputFile, nil
}
