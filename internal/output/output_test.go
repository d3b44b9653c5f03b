package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestScriptPrinter(t *testing.T) {
	lines := []string{"label B", "pick c1 one", "label c1", "exec git branch -f S", "reset B"}

	t.Run("plain output is the script verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewScriptPrinter(&buf).Print(lines))
		require.Equal(t, strings.Join(lines, "\n")+"\n", buf.String())
	})

	t.Run("styled output keeps every word", func(t *testing.T) {
		lipgloss.SetColorProfile(termenv.TrueColor)
		t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

		var buf bytes.Buffer
		require.NoError(t, NewScriptPrinterWithStyle(&buf, true).Print(lines))

		out := buf.String()
		require.Contains(t, out, "\x1b[")
		for _, word := range []string{"label", "pick", "c1", "one", "exec", "git branch -f", "S", "reset"} {
			require.Contains(t, out, word)
		}
	})
}

func TestSplog(t *testing.T) {
	t.Run("debug is hidden unless enabled", func(t *testing.T) {
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf, false)
		splog.Debug("hidden %d", 1)
		splog.Info("shown %d", 2)
		require.Equal(t, "shown 2\n", buf.String())

		buf.Reset()
		NewSplogWithWriter(&buf, true).Debug("visible")
		require.Equal(t, "visible\n", buf.String())
	})

	t.Run("warnings and tips are prefixed", func(t *testing.T) {
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf, false)
		splog.Warn("could not return to %s", "main")
		splog.Tip("run git checkout %s", "main")
		require.Equal(t, "⚠️  could not return to main\n💡 run git checkout main\n", buf.String())
	})

	t.Run("file log receives debug records", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "logs", "trail.log")
		splog, err := NewSplogWithConfig(logFile, false)
		require.NoError(t, err)

		splog.Debug("planning %s", "B")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "planning B")
	})

	t.Run("log path honors TRAIL_LOG_FILE", func(t *testing.T) {
		t.Setenv("TRAIL_LOG_FILE", "/tmp/custom.log")
		require.Equal(t, "/tmp/custom.log", GetLogFilePath())
	})
}

func TestSelectOneRespectsNoInteractive(t *testing.T) {
	t.Setenv("TRAIL_NO_INTERACTIVE", "1")
	_, err := SelectOne("pick", []string{"a"})
	require.ErrorIs(t, err, ErrInteractiveDisabled)
}
