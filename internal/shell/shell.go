// Package shell implements the interactive loop of kafka-shell: it reads one
// keyword per line, resolves it through a fixed command table and runs the
// matching handler against a Gateway. Unknown input falls back to help and a
// failing command is reported without leaving the loop; only the exit
// command, the end of input or a cancelled context stops it.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/OliveiraNt/kafka-shell/internal/domain"
	"github.com/OliveiraNt/kafka-shell/internal/utils"
)

// DefaultCommand is submitted when the operator enters a blank line.
const DefaultCommand = "?"

// Gateway is the cluster side of the shell.
type Gateway interface {
	ListBrokers(ctx context.Context) (*domain.Cluster, error)
	ListTopics(ctx context.Context) ([]domain.TopicSummary, error)
	CreateTopic(ctx context.Context, req domain.CreateTopicRequest) (*domain.CreateTopicResult, error)
}

// Handler runs a command.
type Handler func(ctx context.Context, s *Shell) error

// Command binds keywords to a handler.
type Command struct {
	Name    string
	Aliases []string
	Usage   string
	Run     Handler
	// Exit stops the loop once Run returns.
	Exit bool
}

// Shell is the read-eval loop.
type Shell struct {
	gateway  Gateway
	prompter Prompter
	render   *Renderer
	label    string

	commands []Command
	table    map[string]int
	fallback int
}

// Option configures a Shell.
type Option func(*Shell)

// WithLabel sets the text of the command prompt.
func WithLabel(label string) Option {
	return func(s *Shell) { s.label = label }
}

// New creates a shell with the built-in command set.
func New(gateway Gateway, prompter Prompter, render *Renderer, opts ...Option) *Shell {
	s := &Shell{
		gateway:  gateway,
		prompter: prompter,
		render:   render,
		label:    "kafka",
		commands: builtinCommands(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.table = make(map[string]int)
	for i, c := range s.commands {
		s.table[c.Name] = i
		for _, a := range c.Aliases {
			s.table[a] = i
		}
		if c.Name == helpCommand {
			s.fallback = i
		}
	}
	return s
}

// Resolve maps an input line to its command. Matching is exact and case
// sensitive after trimming surrounding blanks; anything unknown resolves to help.
func (s *Shell) Resolve(input string) Command {
	if i, ok := s.table[strings.TrimSpace(input)]; ok {
		return s.commands[i]
	}
	return s.commands[s.fallback]
}

// Execute runs the command named by input and reports whether the loop must stop.
func (s *Shell) Execute(ctx context.Context, input string) bool {
	cmd := s.Resolve(input)
	utils.Logger.Debug("dispatch", "input", input, "command", cmd.Name)

	if err := cmd.Run(ctx, s); err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			utils.Logger.Debug("command interrupted", "command", cmd.Name)
			return cmd.Exit
		}
		if errors.Is(err, io.EOF) {
			err = errors.New("input closed, command aborted")
		}
		utils.Logger.Warn("command failed", "command", cmd.Name, "err", err)
		s.render.Error(err)
	}
	return cmd.Exit
}

// Run prompts for commands until exit is entered, input ends or ctx is
// cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			s.render.Goodbye()
			return nil
		}
		input, err := askContext(ctx, s.prompter, s.label, DefaultCommand)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				s.render.Goodbye()
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
		if s.Execute(ctx, input) {
			return nil
		}
	}
}
