package command

import (
	"context"
)

type ListCommand struct {
	deps *Dependencies
}

func NewListCommand(deps *Dependencies) *ListCommand {
	return &ListCommand{deps: deps}
}

func (c *ListCommand) Name() string {
	return "list"
}

func (c *ListCommand) Description() string {
	return "キャラクター一覧を表示します"
}

func (c *ListCommand) Execute(ctx context.Context, session *Session, params map[string]any) error {
	view := session.View()
	if view == nil {
		return c.deps.SendError(c.deps.Formatter.FormatError(noProfileMessage))
	}
	return c.deps.SendMessage(c.deps.Formatter.FormatSelector(view.Characters, session.Selected()))
}
