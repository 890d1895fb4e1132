package command

import (
	"context"

	"github.com/kttyan/genshin-build-viewer/internal/adapter"
	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"go.uber.org/zap"
)

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, session *Session, params map[string]any) error
}

// ProfileSearcher is implemented by profile.Service.
type ProfileSearcher interface {
	Search(ctx context.Context, uid string) (*domain.ProfileView, error)
	Detail(view *domain.ProfileView, index int) (*domain.DisplayRecord, error)
}

type Dependencies struct {
	Profiles    ProfileSearcher
	Formatter   *adapter.ResponseFormatter
	SendMessage func(message string) error
	SendError   func(message string) error
	Logger      *zap.Logger
}
