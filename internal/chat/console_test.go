package chat_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/csr-assistant/internal/chat"
)

func TestRunConsole_bookAndQuit(t *testing.T) {
	in := chat.NewScannerReader(strings.NewReader(strings.Join([]string{
		"what services do you offer?",
		"",
		"book",
		"Justin Long",
		"plumbing",
		"94115",
		"2025-02-15",
		"10:00 AM",
		"quit",
		"this line is never read",
	}, "\n")))
	var out bytes.Buffer

	err := chat.RunConsole(context.Background(), newBot(), in, &out)

	require.NoError(t, err)
	got := out.String()
	assert.True(t, strings.HasPrefix(got, chat.Banner))
	assert.Contains(t, got, chat.HelpText)
	assert.Contains(t, got, "Plumbing, Electrical, Hvac")
	assert.Contains(t, got, "Technician: Michael Page")
	assert.True(t, strings.HasSuffix(got, chat.Farewell+"\n"))
	assert.NotContains(t, got, "never read")
}

// TestRunConsole_endOfInput treats EOF like quitting.
func TestRunConsole_endOfInput(t *testing.T) {
	var out bytes.Buffer

	err := chat.RunConsole(context.Background(), newBot(), chat.NewScannerReader(strings.NewReader("help\n")), &out)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), chat.Farewell+"\n"))
}

type failingReader struct{ err error }

func (r failingReader) ReadLine() (string, error) { return "", r.err }

func TestRunConsole_readError(t *testing.T) {
	readErr := errors.New("terminal gone")

	err := chat.RunConsole(context.Background(), newBot(), failingReader{readErr}, &bytes.Buffer{})

	assert.ErrorIs(t, err, readErr)
}

func TestRunConsole_cancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := chat.RunConsole(ctx, newBot(), chat.NewScannerReader(strings.NewReader("help\n")), &bytes.Buffer{})

	assert.ErrorIs(t, err, context.Canceled)
}
