package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, input string, out io.Writer) (*App, string) {
	t.Helper()
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "quasar.log")
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  path: "+logPath+"\n  level: debug\n"), 0o600))
	t.Setenv("QUASAR_SEED", "150")

	a := NewApp(strings.NewReader(input), out)
	a.envPath = filepath.Join(dir, ".env")
	a.configPath = configPath
	return a, logPath
}

func TestRun_AllInAndStopGoesBroke(t *testing.T) {
	var out bytes.Buffer
	a, logPath := newTestApp(t, "1000\ns\n", &out)

	err := a.Run()

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "You have 1000 credits.\nMake a bet: Your score is "))
	assert.True(t, strings.HasSuffix(out.String(), "You lost 1000 credits.\nYou have 0 credits.\nYou went broke.\n"))

	logs, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "seed=150")
	assert.Contains(t, string(logs), "session finished")
	assert.NotContains(t, out.String(), "session finished")
}

func TestRun_EndOfInput(t *testing.T) {
	a, _ := newTestApp(t, "", io.Discard)

	err := a.Run()

	assert.ErrorIs(t, err, io.EOF)
}

func TestRun_SameSeedSameGame(t *testing.T) {
	input := "10\na\na\na\na\nc\n10\nb\nb\nb\nb\np\n"

	var first, second bytes.Buffer
	a, _ := newTestApp(t, input, &first)
	_ = a.Run()
	b, _ := newTestApp(t, input, &second)
	_ = b.Run()

	assert.Equal(t, first.String(), second.String())
}
