package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kttyan/genshin-build-viewer/internal/adapter"
	"github.com/kttyan/genshin-build-viewer/internal/command"
	"github.com/kttyan/genshin-build-viewer/internal/domain"
	"go.uber.org/zap"
)

const prompt = "> "

type ConsoleConfig struct {
	Profiles       command.ProfileSearcher
	MessageAdapter *adapter.MessageAdapter
	Formatter      *adapter.ResponseFormatter
	In             io.Reader
	Out            io.Writer
	Logger         *zap.Logger
}

// Console is the single-user interactive front end. Commands run one at a time.
type Console struct {
	messageAdapter *adapter.MessageAdapter
	formatter      *adapter.ResponseFormatter
	dispatcher     command.Dispatcher
	session        *command.Session
	in             io.Reader
	out            io.Writer
	outMu          sync.Mutex
	logger         *zap.Logger
}

func NewConsole(cfg ConsoleConfig) *Console {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	messageAdapter := cfg.MessageAdapter
	if messageAdapter == nil {
		messageAdapter = adapter.NewMessageAdapter("")
	}
	formatter := cfg.Formatter
	if formatter == nil {
		formatter = adapter.NewResponseFormatter("")
	}

	c := &Console{
		messageAdapter: messageAdapter,
		formatter:      formatter,
		session:        command.NewSession(),
		in:             cfg.In,
		out:            cfg.Out,
		logger:         logger,
	}

	deps := &command.Dependencies{
		Profiles:    cfg.Profiles,
		Formatter:   formatter,
		SendMessage: c.write,
		SendError:   c.write,
		Logger:      logger,
	}

	registry := command.NewRegistry()
	registry.Register(command.NewSearchCommand(deps))
	registry.Register(command.NewSelectCommand(deps))
	registry.Register(command.NewListCommand(deps))
	registry.Register(command.NewHelpCommand(deps))
	logger.Debug("Commands registered", zap.Strings("commands", registry.Names()))

	c.dispatcher = command.NewSequentialDispatcher(registry, nil)
	return c
}

// Search runs a search as if the user had typed it.
func (c *Console) Search(ctx context.Context, uid string) error {
	_, err := c.dispatcher.Publish(ctx, c.session, command.CommandEvent{
		Type:   domain.CommandSearch,
		Params: map[string]any{"uid": uid},
	})
	return err
}

// Run reads commands until EOF, a quit command or ctx cancellation.
func (c *Console) Run(ctx context.Context) error {
	if c.in == nil {
		return fmt.Errorf("console input is nil")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.writePrompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}

			quit, err := c.handle(ctx, line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			c.writePrompt()
		}
	}
}

func (c *Console) handle(ctx context.Context, line string) (bool, error) {
	parsed := c.messageAdapter.ParseMessage(line)

	switch parsed.Type {
	case domain.CommandQuit:
		return true, nil
	case domain.CommandUnknown:
		if parsed.RawMessage != "" {
			_ = c.write(c.formatter.FormatUnknownCommand(parsed.RawMessage))
		}
		return false, nil
	}

	_, err := c.dispatcher.Publish(ctx, c.session, command.CommandEvent{
		Type:   parsed.Type,
		Params: parsed.Params,
	})
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		c.logger.Error("Command failed",
			zap.String("command", parsed.Type.String()),
			zap.Error(err),
		)
	}
	return false, nil
}

func (c *Console) write(message string) error {
	if c.out == nil {
		return nil
	}
	c.outMu.Lock()
	defer c.outMu.Unlock()
	_, err := io.WriteString(c.out, strings.TrimRight(message, "\n")+"\n")
	return err
}

func (c *Console) writePrompt() {
	if c.out == nil {
		return
	}
	c.outMu.Lock()
	defer c.outMu.Unlock()
	_, _ = io.WriteString(c.out, prompt)
}
