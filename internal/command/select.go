package command

import (
	"context"
	"fmt"
)

const noProfileMessage = "先にUIDを検索してください"

type SelectCommand struct {
	deps *Dependencies
}

func NewSelectCommand(deps *Dependencies) *SelectCommand {
	return &SelectCommand{deps: deps}
}

func (c *SelectCommand) Name() string {
	return "select"
}

func (c *SelectCommand) Description() string {
	return "キャラクターの詳細を表示します"
}

func (c *SelectCommand) Execute(ctx context.Context, session *Session, params map[string]any) error {
	view := session.View()
	if view == nil {
		return c.deps.SendError(c.deps.Formatter.FormatError(noProfileMessage))
	}

	position, ok := params["index"].(int)
	if !ok || position < 1 || position > len(view.Characters) {
		return c.deps.SendError(c.deps.Formatter.FormatError(
			fmt.Sprintf("1〜%d の番号を指定してください", len(view.Characters)),
		))
	}

	record, err := c.deps.Profiles.Detail(view, position-1)
	if err != nil {
		return c.deps.SendError(c.deps.Formatter.FormatError(err.Error()))
	}

	session.Select(position - 1)
	return c.deps.SendMessage(c.deps.Formatter.FormatCharacterDetail(record))
}
