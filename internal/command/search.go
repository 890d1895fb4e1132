package command

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/kttyan/genshin-build-viewer/pkg/errors"
	"go.uber.org/zap"
)

type SearchCommand struct {
	deps *Dependencies
}

func NewSearchCommand(deps *Dependencies) *SearchCommand {
	return &SearchCommand{deps: deps}
}

func (c *SearchCommand) Name() string {
	return "search"
}

func (c *SearchCommand) Description() string {
	return "UIDのプロフィールを取得します"
}

// Execute clears the current view, fetches the profile and shows the first character.
// Every failure other than cancellation collapses into the generic not-found message.
func (c *SearchCommand) Execute(ctx context.Context, session *Session, params map[string]any) error {
	uid, _ := params["uid"].(string)
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return c.deps.SendError(c.deps.Formatter.FormatError("UIDを入力してください"))
	}

	session.Clear()
	if err := c.deps.SendMessage(c.deps.Formatter.FormatLoading(uid)); err != nil {
		return err
	}

	view, err := c.deps.Profiles.Search(ctx, uid)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		c.deps.Logger.Warn("Search failed",
			zap.String("uid", uid),
			zap.String("code", apperrors.CodeOf(err)),
			zap.Error(err),
		)
		return c.deps.SendError(c.deps.Formatter.FormatSearchFailure())
	}

	session.Show(view)
	if err := c.deps.SendMessage(c.deps.Formatter.FormatProfile(view, 0)); err != nil {
		return err
	}

	record, err := c.deps.Profiles.Detail(view, 0)
	if err != nil {
		return fmt.Errorf("render first character: %w", err)
	}
	return c.deps.SendMessage(c.deps.Formatter.FormatCharacterDetail(record))
}
