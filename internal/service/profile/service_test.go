package profile

import (
	"context"
	"testing"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/internal/service/catalog"
	"github.com/kttyan/genshin-build-viewer/pkg/errors"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	doc   *domain.ProfileDocument
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, uid string) (*domain.ProfileDocument, error) {
	f.calls = append(f.calls, uid)
	return f.doc, f.err
}

func newTestCatalog() *catalog.Catalog {
	return catalog.New(domain.NewReferenceTables(
		map[string]domain.CharacterMeta{
			"10000073": {Element: "Grass", NameTextMapHash: "712501082"},
		},
		map[string]string{"712501082": "ナヒーダ"},
	))
}

func TestSearchBuildsView(t *testing.T) {
	fetcher := &fakeFetcher{doc: &domain.ProfileDocument{
		PlayerInfo: &domain.PlayerInfo{Nickname: "Traveler", Level: 60},
		AvatarInfoList: []domain.AvatarInfo{
			{AvatarID: 10000073},
			{AvatarID: 99},
		},
	}}
	svc := NewService(fetcher, newTestCatalog(), zap.NewNop())

	view, err := svc.Search(context.Background(), " 801630705 ")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(fetcher.calls) != 1 || fetcher.calls[0] != "801630705" {
		t.Fatalf("uid should be trimmed before fetching: %v", fetcher.calls)
	}
	if view.UID != "801630705" || view.Header.Nickname != "Traveler" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if len(view.Characters) != 2 || view.Characters[0].Name != "ナヒーダ" || view.Characters[1].Name != "未登録(99)" {
		t.Fatalf("unexpected selector: %+v", view.Characters)
	}
}

func TestSearchPropagatesFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.NewUnavailableError("1", 3, nil)}
	svc := NewService(fetcher, newTestCatalog(), zap.NewNop())

	_, err := svc.Search(context.Background(), "1")
	if !errors.Is(err, errors.ErrProfileUnavailable) {
		t.Fatalf("expected ErrProfileUnavailable, got %v", err)
	}
}

func TestSearchWithoutCharactersIsUnavailable(t *testing.T) {
	fetcher := &fakeFetcher{doc: &domain.ProfileDocument{
		PlayerInfo: &domain.PlayerInfo{Nickname: "Hidden"},
	}}
	svc := NewService(fetcher, newTestCatalog(), zap.NewNop())

	_, err := svc.Search(context.Background(), "2")
	if !errors.Is(err, errors.ErrProfileUnavailable) {
		t.Fatalf("expected ErrProfileUnavailable, got %v", err)
	}
}

func TestDetail(t *testing.T) {
	svc := NewService(&fakeFetcher{}, newTestCatalog(), zap.NewNop())
	view := &domain.ProfileView{Document: &domain.ProfileDocument{
		AvatarInfoList: []domain.AvatarInfo{{AvatarID: 10000073}},
	}}

	record, err := svc.Detail(view, 0)
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if record.Name != "ナヒーダ" || record.Element != "草" {
		t.Fatalf("unexpected record: %+v", record)
	}

	if _, err := svc.Detail(view, 1); errors.CodeOf(err) != "VALIDATION_ERROR" {
		t.Fatalf("out of range index should be a validation error, got %v", err)
	}
	if _, err := svc.Detail(nil, 0); err == nil {
		t.Fatalf("expected an error without a loaded profile")
	}
}
