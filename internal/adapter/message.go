package adapter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/internal/util"
)

var (
	controlCharsPattern = regexp.MustCompile(`[\x00-\x1F\x7F]`)
	uidPattern          = regexp.MustCompile(`^[0-9]{9,10}$`)
)

// MessageAdapter converts console input lines into viewer commands.
type MessageAdapter struct {
	prefix string
}

// NewMessageAdapter creates a new MessageAdapter. An empty prefix accepts bare commands.
func NewMessageAdapter(prefix string) *MessageAdapter {
	return &MessageAdapter{prefix: strings.TrimSpace(prefix)}
}

// ParsedCommand represents a parsed command
type ParsedCommand struct {
	Type       domain.CommandType
	Params     map[string]any
	RawMessage string
}

// ParseMessage parses one input line. A bare UID searches it and a bare small number
// selects that character.
func (ma *MessageAdapter) ParseMessage(line string) *ParsedCommand {
	text := strings.TrimSpace(controlCharsPattern.ReplaceAllString(line, " "))
	if text == "" {
		return ma.createUnknownCommand("")
	}

	if ma.prefix != "" {
		if !strings.HasPrefix(text, ma.prefix) {
			return ma.createUnknownCommand(text)
		}
		text = strings.TrimSpace(text[len(ma.prefix):])
	}

	parts := strings.Fields(text)
	if len(parts) == 0 {
		return ma.createUnknownCommand(text)
	}

	command := util.Normalize(parts[0])
	args := parts[1:]

	if len(args) == 0 && uidPattern.MatchString(command) {
		return &ParsedCommand{
			Type:       domain.CommandSearch,
			Params:     map[string]any{"uid": command},
			RawMessage: text,
		}
	}
	if len(args) == 0 {
		if index, ok := parseIndex(command); ok {
			return &ParsedCommand{
				Type:       domain.CommandSelect,
				Params:     map[string]any{"index": index},
				RawMessage: text,
			}
		}
	}

	switch {
	case ma.isSearchCommand(command):
		params := make(map[string]any)
		if len(args) > 0 {
			params["uid"] = args[0]
		}
		return &ParsedCommand{Type: domain.CommandSearch, Params: params, RawMessage: text}

	case ma.isSelectCommand(command):
		params := make(map[string]any)
		if len(args) > 0 {
			params["index"] = args[0]
			if index, ok := parseIndex(args[0]); ok {
				params["index"] = index
			}
		}
		return &ParsedCommand{Type: domain.CommandSelect, Params: params, RawMessage: text}

	case ma.isListCommand(command):
		return &ParsedCommand{Type: domain.CommandList, Params: make(map[string]any), RawMessage: text}

	case ma.isHelpCommand(command):
		return &ParsedCommand{Type: domain.CommandHelp, Params: make(map[string]any), RawMessage: text}

	case ma.isQuitCommand(command):
		return &ParsedCommand{Type: domain.CommandQuit, Params: make(map[string]any), RawMessage: text}
	}

	return ma.createUnknownCommand(text)
}

// Command matchers

func (ma *MessageAdapter) isSearchCommand(cmd string) bool {
	return contains([]string{"search", "s", "uid", "検索"}, cmd)
}

func (ma *MessageAdapter) isSelectCommand(cmd string) bool {
	return contains([]string{"select", "show", "c", "表示"}, cmd)
}

func (ma *MessageAdapter) isListCommand(cmd string) bool {
	return contains([]string{"list", "ls", "一覧"}, cmd)
}

func (ma *MessageAdapter) isHelpCommand(cmd string) bool {
	return contains([]string{"help", "h", "?", "ヘルプ"}, cmd)
}

func (ma *MessageAdapter) isQuitCommand(cmd string) bool {
	return contains([]string{"exit", "quit", "q", "終了"}, cmd)
}

func (ma *MessageAdapter) createUnknownCommand(text string) *ParsedCommand {
	return &ParsedCommand{
		Type:       domain.CommandUnknown,
		Params:     make(map[string]any),
		RawMessage: text,
	}
}

// parseIndex reads a 1-based selector position.
func parseIndex(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > 99 {
		return 0, false
	}
	return n, true
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
