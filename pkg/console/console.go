// Package console implements the line oriented prompt/response channel of the game.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask печатает вопрос без перевода строки и возвращает ответ без "\n".
// Последняя строка без перевода строки перед EOF считается ответом.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Choose задаёт вопрос, пока ответ не совпадёт с одним из valid (с учётом регистра).
func (c *Console) Choose(prompt string, valid ...string) (string, error) {
	for {
		answer, err := c.Ask(prompt)
		if err != nil {
			return "", err
		}
		if slices.Contains(valid, answer) {
			return answer, nil
		}

		c.Say("Invalid option. Choose one of " + Tuple(valid))
		c.Say("")
	}
}

// Say печатает строку с переводом строки.
func (c *Console) Say(line string) {
	fmt.Fprintln(c.out, line)
}

// Sayf форматирует и печатает строку.
func (c *Console) Sayf(format string, args ...any) {
	c.Say(fmt.Sprintf(format, args...))
}

// Tuple Отображает набор вариантов в виде ('a', 'b', 's').
func Tuple(valid []string) string {
	quoted := make([]string, len(valid))
	for i, v := range valid {
		quoted[i] = "'" + v + "'"
	}
	if len(quoted) == 1 {
		return "(" + quoted[0] + ",)"
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}
