package app

import (
	"context"
	"strings"
	"testing"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/pkg/errors"
	"go.uber.org/zap"
)

type fakeProfiles struct {
	views    map[string]*domain.ProfileView
	searches []string
}

func (f *fakeProfiles) Search(_ context.Context, uid string) (*domain.ProfileView, error) {
	f.searches = append(f.searches, uid)
	if view, ok := f.views[uid]; ok {
		return view, nil
	}
	return nil, errors.NewUnavailableError(uid, 3, nil)
}

func (f *fakeProfiles) Detail(view *domain.ProfileView, index int) (*domain.DisplayRecord, error) {
	c := view.Characters[index]
	return &domain.DisplayRecord{Name: c.Name, Element: c.Element, Level: c.Level}, nil
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{views: map[string]*domain.ProfileView{
		"801630705": {
			UID:    "801630705",
			Header: domain.PlayerHeader{Nickname: "Traveler"},
			Characters: []domain.CharacterSummary{
				{Index: 0, Name: "ナヒーダ", Element: "草", Level: "90"},
				{Index: 1, Name: "胡桃", Element: "炎", Level: "90"},
			},
		},
	}}
}

func TestConsoleRunsCommandsUntilQuit(t *testing.T) {
	profiles := newFakeProfiles()
	var out strings.Builder

	console := NewConsole(ConsoleConfig{
		Profiles: profiles,
		In:       strings.NewReader("801630705\n2\nlist\ndance\nexit\nsearch 1\n"),
		Out:      &out,
		Logger:   zap.NewNop(),
	})

	if err := console.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(profiles.searches) != 1 {
		t.Fatalf("commands after exit should not run, searches = %v", profiles.searches)
	}

	output := out.String()
	for _, want := range []string{
		"データ取得中...",
		"Traveler (UID: 801630705)",
		"✨ 胡桃 [炎] Lv.90",
		"▶ 2. 胡桃",
		"'dance' は不明なコマンドです",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}
}

func TestConsoleSearchFailure(t *testing.T) {
	var out strings.Builder
	console := NewConsole(ConsoleConfig{
		Profiles: newFakeProfiles(),
		Out:      &out,
	})

	if err := console.Search(context.Background(), "123456789"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if !strings.Contains(out.String(), "データが見つかりませんでした。ゲーム内で詳細を表示設定にしているか確認してください。") {
		t.Fatalf("expected generic failure message:\n%s", out.String())
	}
}

func TestConsoleStopsAtEOF(t *testing.T) {
	console := NewConsole(ConsoleConfig{
		Profiles: newFakeProfiles(),
		In:       strings.NewReader("help\n"),
		Out:      &strings.Builder{},
	})
	if err := console.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
