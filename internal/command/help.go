package command

import (
	"context"
)

type HelpCommand struct {
	deps *Dependencies
}

func NewHelpCommand(deps *Dependencies) *HelpCommand {
	return &HelpCommand{deps: deps}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "使い方を表示します"
}

func (c *HelpCommand) Execute(ctx context.Context, session *Session, params map[string]any) error {
	return c.deps.SendMessage(c.deps.Formatter.FormatHelp())
}
