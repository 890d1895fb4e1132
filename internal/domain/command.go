package domain

type CommandType string

const (
	CommandSearch  CommandType = "search"
	CommandSelect  CommandType = "select"
	CommandList    CommandType = "list"
	CommandHelp    CommandType = "help"
	CommandQuit    CommandType = "quit"
	CommandUnknown CommandType = "unknown"
)

func (c CommandType) String() string {
	return string(c)
}
