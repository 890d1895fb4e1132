package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/internal/service/catalog"
	"github.com/kttyan/genshin-build-viewer/internal/service/enka"
	"github.com/kttyan/genshin-build-viewer/pkg/errors"
	"go.uber.org/zap"
)

// Service runs a search end to end: fetch the document, then derive the header and
// the character selector from it.
type Service struct {
	fetcher enka.ProfileFetcher
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func NewService(fetcher enka.ProfileFetcher, cat *catalog.Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cat == nil {
		cat = catalog.New(nil)
	}
	return &Service{
		fetcher: fetcher,
		catalog: cat,
		logger:  logger,
	}
}

// Search returns errors.ErrProfileUnavailable for exhausted fetches and for showcases
// that expose no characters.
func (s *Service) Search(ctx context.Context, uid string) (*domain.ProfileView, error) {
	uid = strings.TrimSpace(uid)

	doc, err := s.fetcher.Fetch(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !doc.HasCharacters() {
		s.logger.Warn("Profile has no character details",
			zap.String("uid", uid),
			zap.Bool("has_player_info", doc != nil && doc.PlayerInfo != nil),
		)
		return nil, errors.NewUnavailableError(uid, 0, fmt.Errorf("avatarInfoList is empty"))
	}

	view := &domain.ProfileView{
		UID:        uid,
		Header:     s.catalog.BuildPlayerHeader(doc.PlayerInfo),
		Characters: s.catalog.BuildSelector(doc.AvatarInfoList),
		Document:   doc,
	}

	s.logger.Info("Profile loaded",
		zap.String("uid", uid),
		zap.String("nickname", view.Header.Nickname),
		zap.Int("characters", len(view.Characters)),
	)
	return view, nil
}

// Detail derives the display record of the character at index in the selector.
func (s *Service) Detail(view *domain.ProfileView, index int) (*domain.DisplayRecord, error) {
	if view == nil || view.Document == nil {
		return nil, errors.NewValidationError("no profile loaded", "profile", nil)
	}
	avatars := view.Document.AvatarInfoList
	if index < 0 || index >= len(avatars) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("character index must be between 1 and %d", len(avatars)),
			"index", index+1,
		)
	}
	return s.catalog.BuildDisplayRecord(avatars[index]), nil
}
