package adapter

import (
	"fmt"
	"strings"

	"github.com/kttyan/genshin-build-viewer/internal/constants"
	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"github.com/kttyan/genshin-build-viewer/internal/util"
)

const (
	loadingMessage       = "データ取得中..."
	searchFailureMessage = "データが見つかりませんでした。ゲーム内で詳細を表示設定にしているか確認してください。"
	renderFailureMessage = "表示に失敗しました"
)

// ResponseFormatter renders viewer output as plain text.
type ResponseFormatter struct {
	prefix string
}

// NewResponseFormatter creates a new ResponseFormatter
func NewResponseFormatter(prefix string) *ResponseFormatter {
	return &ResponseFormatter{prefix: strings.TrimSpace(prefix)}
}

type profileTemplateData struct {
	UID        string
	Header     domain.PlayerHeader
	Signature  string
	Characters []selectorEntry
}

type selectorEntry struct {
	Position int
	Name     string
	Element  string
	Level    string
	Selected bool
}

type helpTemplateData struct {
	Prefix string
}

// FormatLoading is shown while a search is in flight.
func (f *ResponseFormatter) FormatLoading(uid string) string {
	return fmt.Sprintf("⏳ %s (UID: %s)", loadingMessage, uid)
}

// FormatSearchFailure is the only failure message a search ever shows.
func (f *ResponseFormatter) FormatSearchFailure() string {
	return f.FormatError(searchFailureMessage)
}

// FormatProfile renders the player header followed by the character selector.
func (f *ResponseFormatter) FormatProfile(view *domain.ProfileView, selected int) string {
	if view == nil {
		return f.FormatSearchFailure()
	}

	data := profileTemplateData{
		UID:        view.UID,
		Header:     view.Header,
		Signature:  util.TruncateString(view.Header.Signature, constants.StringLimits.Signature),
		Characters: f.selectorEntries(view.Characters, selected),
	}

	rendered, err := executeFormatterTemplate("profile.tmpl", data)
	if err != nil {
		return f.FormatError(renderFailureMessage)
	}
	return rendered
}

// FormatSelector renders only the character selector.
func (f *ResponseFormatter) FormatSelector(characters []domain.CharacterSummary, selected int) string {
	rendered, err := executeFormatterTemplate("selector.tmpl", f.selectorEntries(characters, selected))
	if err != nil {
		return f.FormatError(renderFailureMessage)
	}
	return rendered
}

// FormatCharacterDetail renders one character card.
func (f *ResponseFormatter) FormatCharacterDetail(record *domain.DisplayRecord) string {
	if record == nil {
		return f.FormatError(renderFailureMessage)
	}

	rendered, err := executeFormatterTemplate("detail.tmpl", record)
	if err != nil {
		return f.FormatError(renderFailureMessage)
	}
	return rendered
}

// FormatHelp formats help message
func (f *ResponseFormatter) FormatHelp() string {
	rendered, err := executeFormatterTemplate("help.tmpl", helpTemplateData{Prefix: f.prefix})
	if err != nil {
		return f.FormatError(renderFailureMessage)
	}
	return rendered
}

// FormatError formats error message
func (f *ResponseFormatter) FormatError(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

// FormatUnknownCommand points the user at the help command.
func (f *ResponseFormatter) FormatUnknownCommand(input string) string {
	return f.FormatError(fmt.Sprintf("'%s' は不明なコマンドです。%shelp で使い方を確認できます。", input, f.prefix))
}

func (f *ResponseFormatter) selectorEntries(characters []domain.CharacterSummary, selected int) []selectorEntry {
	entries := make([]selectorEntry, 0, len(characters))
	for _, c := range characters {
		entries = append(entries, selectorEntry{
			Position: c.Index + 1,
			Name:     util.TruncateString(c.Name, constants.StringLimits.SelectorName),
			Element:  c.Element,
			Level:    c.Level,
			Selected: c.Index == selected,
		})
	}
	return entries
}
