package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks the operator a question and returns the trimmed answer, or
// def when the answer is blank. io.EOF is returned once input is exhausted.
type Prompter interface {
	Ask(label, def string) (string, error)
}

// LinePrompter reads answers line by line from a terminal or a pipe.
type LinePrompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles Styles
}

// NewLinePrompter creates a prompter reading from in and printing prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer, styles Styles) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out, styles: styles}
}

func (p *LinePrompter) Ask(label, def string) (string, error) {
	prompt := p.styles.Prompt.Render(label)
	if def != "" {
		prompt += " " + p.styles.Default.Render("["+def+"]")
	}
	fmt.Fprint(p.out, prompt+" › ")

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
		}
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// askContext asks p and gives up once ctx is done. An abandoned read keeps
// its goroutine until the input yields a line or is closed.
func askContext(ctx context.Context, p Prompter, label, def string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type reply struct {
		answer string
		err    error
	}
	ch := make(chan reply, 1)
	go func() {
		answer, err := p.Ask(label, def)
		ch <- reply{answer, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.answer, r.err
	}
}

// askNonEmpty repeats the question until a non blank answer is given.
func askNonEmpty(ctx context.Context, p Prompter, r *Renderer, label string) (string, error) {
	for {
		answer, err := askContext(ctx, p, label, "")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		r.Notice("a value is required")
	}
}

// askPositiveInt repeats the question until the answer is an integer in
// [1, limit]. A blank answer selects def.
func askPositiveInt(ctx context.Context, p Prompter, r *Renderer, label string, def, limit int) (int, error) {
	for {
		answer, err := askContext(ctx, p, label, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err == nil && n > 0 && n <= limit {
			return n, nil
		}
		r.Notice(fmt.Sprintf("expected a whole number between 1 and %d, got %q", limit, answer))
	}
}
