package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("42\r\nlast"), &out)

	got, err := c.Ask("Make a bet: ")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = c.Ask("Make a bet: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = c.Ask("Make a bet: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Make a bet: Make a bet: Make a bet: ", out.String())
}

func TestChoose_RepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("x\nA\n s\nb\n"), &out)

	got, err := c.Choose("Pick: ", "a", "b", "s")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	invalid := "Invalid option. Choose one of ('a', 'b', 's')\n\nPick: "
	assert.Equal(t, "Pick: "+strings.Repeat(invalid, 3), out.String())
}

func TestChoose_EOF(t *testing.T) {
	c := New(strings.NewReader("z\n"), io.Discard)

	_, err := c.Choose("Pick: ", "c", "p")
	assert.ErrorIs(t, err, io.EOF)
}

func TestTuple(t *testing.T) {
	assert.Equal(t, "('c', 'p')", Tuple([]string{"c", "p"}))
	assert.Equal(t, "('a',)", Tuple([]string{"a"}))
	assert.Equal(t, "()", Tuple(nil))
}

func TestSayf(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Sayf("You have %d credits.", 1000)
	assert.Equal(t, "You have 1000 credits.\n", out.String())
}
