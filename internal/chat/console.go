package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// LineReader supplies console input one line at a time. ReadLine returns
// io.EOF when there is no more input.
type LineReader interface {
	ReadLine() (string, error)
}

// PromptReader reads lines with a promptui prompt, giving an interactive
// terminal line editing and history.
type PromptReader struct {
	Label  string
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// ReadLine shows the prompt and returns the entered line. Ctrl-C and
// Ctrl-D both end input.
func (r *PromptReader) ReadLine() (string, error) {
	p := promptui.Prompt{
		Label:  r.Label,
		Stdin:  r.Stdin,
		Stdout: r.Stdout,
	}
	line, err := p.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", io.EOF
	}
	return line, err
}

// ScannerReader reads newline-delimited input without prompting, for
// piped stdin and tests.
type ScannerReader struct {
	sc *bufio.Scanner
}

// NewScannerReader wraps r.
func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{sc: bufio.NewScanner(r)}
}

func (r *ScannerReader) ReadLine() (string, error) {
	if r.sc.Scan() {
		return r.sc.Text(), nil
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// RunConsole drives one console conversation: banner and help first, then
// a reply for every line until the customer quits, input ends, or ctx is
// cancelled. Quitting prints the farewell line and returns nil.
func RunConsole(ctx context.Context, bot *Bot, in LineReader, out io.Writer) error {
	session := bot.NewSession()

	if _, err := fmt.Fprintf(out, "%s\n\n%s\n", Banner, HelpText); err != nil {
		return fmt.Errorf("chat.RunConsole: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			_, err = fmt.Fprintf(out, "\n%s\n", Farewell)
			return err
		}
		if err != nil {
			return fmt.Errorf("chat.RunConsole: read: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		reply := session.Handle(ctx, line)
		if _, err := fmt.Fprintf(out, "\n%s\n", reply.Text); err != nil {
			return fmt.Errorf("chat.RunConsole: %w", err)
		}
		if reply.End {
			return nil
		}
	}
}
