package reference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

const charactersJSON = `{
	"10000073": {"Element": "Grass", "NameTextMapHash": 712501082, "SideIconName": "UI_AvatarIcon_Side_Nahida"},
	"10000046": {"Element": "Fire", "NameTextMapHash": 1940919994, "SideIconName": "UI_AvatarIcon_Side_Hutao"}
}`

const locJSON = `{
	"en": {"712501082": "Nahida"},
	"ja": {"712501082": "ナヒーダ", "1940919994": "胡桃"}
}`

type fakeSnapshots struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func (f *fakeSnapshots) Get(_ context.Context, key string, dest any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (f *fakeSnapshots) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if f.data == nil {
		f.data = make(map[string][]byte)
	}
	f.data[key] = raw
	f.sets++
	return nil
}

func newReferenceServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/characters.json":
			fmt.Fprint(w, charactersJSON)
		case "/loc.json":
			fmt.Fprint(w, locJSON)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestTablesLoadOnceWithFallbackLocale(t *testing.T) {
	var hits int32
	server := newReferenceServer(t, &hits)
	defer server.Close()

	snapshots := &fakeSnapshots{}
	loader := NewLoader(server.Client(), LoaderConfig{
		CharactersURL:  server.URL + "/characters.json",
		LocURL:         server.URL + "/loc.json",
		Locale:         "jp",
		FallbackLocale: "ja",
	}, snapshots, zap.NewNop())

	tables := loader.Tables(context.Background())
	if tables.CharacterCount() != 2 {
		t.Fatalf("expected 2 characters, got %d", tables.CharacterCount())
	}
	meta, ok := tables.Character(10000073)
	if !ok {
		t.Fatalf("character 10000073 missing")
	}
	if name, _ := tables.Text(meta.NameTextMapHash); name != "ナヒーダ" {
		t.Fatalf("expected fallback locale text, got %q", name)
	}

	again := loader.Tables(context.Background())
	if again != tables {
		t.Fatalf("tables must be built once and reused")
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Fatalf("expected exactly 2 reference requests, got %d", got)
	}
	if snapshots.sets != 2 {
		t.Fatalf("expected both tables to be snapshotted, got %d", snapshots.sets)
	}
}

func TestTablesDegradeToEmptyWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	loader := NewLoader(server.Client(), LoaderConfig{
		CharactersURL: server.URL + "/characters.json",
		LocURL:        "http://127.0.0.1:1/loc.json",
		Locale:        "jp",
		Timeout:       time.Second,
	}, nil, zap.NewNop())

	tables := loader.Tables(context.Background())
	if tables == nil {
		t.Fatalf("tables must never be nil")
	}
	if tables.CharacterCount() != 0 || tables.TextCount() != 0 {
		t.Fatalf("expected empty tables, got %d/%d", tables.CharacterCount(), tables.TextCount())
	}
	if _, ok := tables.Character(10000073); ok {
		t.Fatalf("lookups on empty tables must miss")
	}
}

func TestTablesUseSnapshotWhenRemoteFails(t *testing.T) {
	snapshots := &fakeSnapshots{}
	_ = snapshots.Set(context.Background(), snapshotKeyCharacters, map[string]any{
		"10000046": map[string]any{"Element": "Fire", "NameTextMapHash": "1940919994"},
	}, 0)
	_ = snapshots.Set(context.Background(), fmt.Sprintf(snapshotKeyLocale, "jp"), map[string]string{
		"1940919994": "胡桃",
	}, 0)

	loader := NewLoader(nil, LoaderConfig{
		CharactersURL: "http://127.0.0.1:1/characters.json",
		LocURL:        "http://127.0.0.1:1/loc.json",
		Locale:        "jp",
		Timeout:       time.Second,
	}, snapshots, zap.NewNop())

	tables := loader.Tables(context.Background())
	meta, ok := tables.Character(10000046)
	if !ok || meta.Element != "Fire" {
		t.Fatalf("expected snapshot character, got %+v (ok=%v)", meta, ok)
	}
	if name, _ := tables.Text(meta.NameTextMapHash); name != "胡桃" {
		t.Fatalf("expected snapshot text, got %q", name)
	}
}

func TestSelectLocaleMissing(t *testing.T) {
	loader := NewLoader(nil, LoaderConfig{Locale: "jp", FallbackLocale: "ja"}, nil, nil)
	if _, err := loader.selectLocale([]byte(`{"en":{"1":"a"}}`)); err == nil {
		t.Fatalf("expected error when neither locale is present")
	}
	texts, err := loader.selectLocale([]byte(`{"jp":{"1":"一"},"ja":{"1":"いち"}}`))
	if err != nil {
		t.Fatalf("selectLocale() error = %v", err)
	}
	if texts["1"] != "一" {
		t.Fatalf("primary locale should win, got %q", texts["1"])
	}
}
