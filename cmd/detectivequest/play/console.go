package play

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/game"
)

// Console is the terminal side of a session: it reads one line per request and prints styled lines.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  map[game.Tone]lipgloss.Style
}

// NewConsole renders with colours only when out is a terminal.
func NewConsole(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles: map[game.Tone]lipgloss.Style{
			game.ToneNarrative: r.NewStyle().Foreground(lipgloss.Color("7")),
			game.ToneHeading:   r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			game.ToneClue:      r.NewStyle().Foreground(lipgloss.Color("10")),
			game.ToneNotice:    r.NewStyle().Foreground(lipgloss.Color("6")),
			game.ToneWarning:   r.NewStyle().Foreground(lipgloss.Color("11")),
			game.ToneVerdict:   r.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
			game.TonePrompt:    r.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

func (c *Console) Show(tone game.Tone, text string) {
	style, ok := c.styles[tone]
	if !ok {
		_, _ = fmt.Fprintln(c.out, text)
		return
	}
	_, _ = fmt.Fprintln(c.out, style.Render(text))
}

// ReadLine blocks until the player enters a line. It returns io.EOF when the input is closed.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, "read line")
	}
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "scan input")
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

func (c *Console) Pause(ctx context.Context) error {
	c.Show(game.TonePrompt, "Pressione Enter para continuar...")
	if _, err := c.ReadLine(ctx); err != nil {
		return err
	}
	return nil
}

func (c *Console) Welcome() {
	c.Show(game.ToneHeading, "Bem-vindo ao Detective Quest!")
	c.Show(game.ToneNarrative, "Explore a mansao para encontrar pistas e desvendar o misterio.")
}

func (c *Console) Farewell() {
	c.Show(game.ToneHeading, "Obrigado por jogar Detective Quest!")
	c.Show(game.ToneNarrative, "Esperamos que tenha encontrado todas as pistas!")
}
