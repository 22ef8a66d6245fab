package game_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/myrjola/detectivequest/internal/game"
	"github.com/myrjola/detectivequest/internal/navigator"
	"github.com/myrjola/detectivequest/internal/testhelpers"
	"github.com/myrjola/detectivequest/internal/verdict"
	"github.com/stretchr/testify/require"
)

type scriptedInput struct {
	lines []string
}

func (in *scriptedInput) ReadLine(_ context.Context) (string, error) {
	if len(in.lines) == 0 {
		return "", io.EOF
	}
	l := in.lines[0]
	in.lines = in.lines[1:]
	return l, nil
}

type shown struct {
	tone game.Tone
	text string
}

type recordingOutput struct {
	lines []shown
}

func (out *recordingOutput) Show(tone game.Tone, text string) {
	out.lines = append(out.lines, shown{tone: tone, text: text})
}

func (out *recordingOutput) contains(text string) bool {
	for _, l := range out.lines {
		if strings.Contains(l.text, text) {
			return true
		}
	}
	return false
}

type countingPauser struct {
	pauses int
}

func (p *countingPauser) Pause(_ context.Context) error {
	p.pauses++
	return nil
}

type harness struct {
	in      *scriptedInput
	out     *recordingOutput
	pauser  *countingPauser
	session *game.Session
}

func newHarness(t *testing.T, opts game.Options, lines ...string) *harness {
	t.Helper()
	h := &harness{
		in:      &scriptedInput{lines: lines},
		out:     &recordingOutput{lines: nil},
		pauser:  &countingPauser{pauses: 0},
		session: nil,
	}
	var err error
	h.session, err = game.NewSession(context.Background(), h.in, h.out, h.pauser, opts, testhelpers.NewLogger(io.Discard))
	require.NoError(t, err)
	require.NotEmpty(t, h.session.ID())
	return h
}

func defaultOptions() game.Options {
	return game.Options{DeadEnd: navigator.DeadEndReturn, Reveal: game.RevealAsk, Pause: true}
}

func TestSession_Scenario(t *testing.T) {
	h := newHarness(t, defaultOptions(),
		"e", "e", "e", // down to the secret office, then back to the hall
		"s", "s", // exit and confirm
		"Carlos",
		"n", // no reveal
	)

	result, err := h.session.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, verdict.Insufficient, result.Outcome)
	require.Equal(t, 1, result.Count)
	require.Equal(t, []string{"Cofre aberto e vazio"}, result.Evidence)

	require.Equal(t, 1, h.pauser.pauses, "only the dead end needs acknowledgement")
	require.True(t, h.out.contains("Pista encontrada: Porta principal arrombada"))
	require.True(t, h.out.contains("Voce retorna para: Hall de Entrada"))
	require.True(t, h.out.contains(
		"Caminho percorrido: Hall de Entrada -> Sala de Estar -> Biblioteca -> Escritorio Secreto"))
	require.True(t, h.out.contains("Pistas coletadas (4):"))
	require.True(t, h.out.contains("Provas insuficientes contra Carlos"))
	require.False(t, h.out.contains("O verdadeiro culpado era"))
	require.Empty(t, h.in.lines, "every scripted line was consumed")

	require.NoError(t, h.session.Close(context.Background()))
	require.NoError(t, h.session.Close(context.Background()), "closing twice is harmless")
}

func TestSession_Conviction(t *testing.T) {
	opts := defaultOptions()
	opts.Reveal = game.RevealAlways
	h := newHarness(t, opts,
		"d", "e", // Cozinha and Jardim both point at Joao
		"sair", "sim",
		"Joao",
	)

	result, err := h.session.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, verdict.Convicted, result.Outcome)
	require.Equal(t, 3, result.Count)
	require.True(t, h.out.contains("CULPADO! 3 pistas incriminam Joao."))
	require.True(t, h.out.contains("O verdadeiro culpado era: Carlos"))
	require.True(t, h.out.contains("Provas que passaram despercebidas: Cofre aberto e vazio"))
	require.True(t, h.out.contains("Sua acusacao estava errada."))
	require.Zero(t, h.pauser.pauses)
	require.NoError(t, h.session.Close(context.Background()))
}

func TestSession_RecoverableNotices(t *testing.T) {
	h := newHarness(t, defaultOptions(),
		"voar",     // invalid
		"d", "e",   // Cozinha, Jardim
		"e",        // no path to the left of the garden
		"s", "nao", // exit declined
		"s", "s",
		"", "   ", "Ana", // blank accusations are asked again
		"s", // reveal
	)

	result, err := h.session.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Ana", result.Accused)
	require.Equal(t, verdict.Insufficient, result.Outcome)

	require.True(t, h.out.contains("Opcao invalida!"))
	require.True(t, h.out.contains("Nao ha caminho a esquerda!"))
	require.True(t, h.out.contains("A investigacao continua."))
	require.True(t, h.out.contains("Sua acusacao estava errada."))
	require.Equal(t, 2, h.pauser.pauses)
	require.NoError(t, h.session.Close(context.Background()))
}

func TestSession_RevisitPrompt(t *testing.T) {
	h := newHarness(t, defaultOptions(),
		"e", "e", "d", // Porao, back to the hall
		"e", "n", // decline going back into the living room
		"e", "s", // accept
		"s", "s", "Carlos", "n",
	)

	_, err := h.session.Run(context.Background())
	require.NoError(t, err)
	require.True(t, h.out.contains("Voce ja visitou Sala de Estar. Deseja entrar novamente? (s/n)"))
	require.True(t, h.out.contains("Voce decide nao voltar para Sala de Estar."))
	require.True(t, h.out.contains("Nada de novo por aqui."))
	require.True(t, h.out.contains(
		"Caminho percorrido: Hall de Entrada -> Sala de Estar -> Biblioteca -> Porao -> Sala de Estar"))
}

func TestSession_DeadEndTerminate(t *testing.T) {
	opts := defaultOptions()
	opts.DeadEnd = navigator.DeadEndTerminate
	opts.Reveal = game.RevealNever
	opts.Pause = false
	h := newHarness(t, opts, "d", "d", "Ana")

	result, err := h.session.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, result.Count, "only the poisoned glass points at Ana")
	require.False(t, h.out.contains("Deseja realmente encerrar"), "the dead end ends the exploration on its own")
	require.Zero(t, h.pauser.pauses, "pausing is disabled")
	require.NoError(t, h.session.Close(context.Background()))
}

func TestSession_InputClosed(t *testing.T) {
	h := newHarness(t, defaultOptions(), "e")

	_, err := h.session.Run(context.Background())
	require.ErrorIs(t, err, io.EOF)
	require.ErrorIs(t, h.session.Close(context.Background()), game.ErrSessionActive)
}

func TestSession_CloseWhileExploring(t *testing.T) {
	h := newHarness(t, defaultOptions())
	require.ErrorIs(t, h.session.Close(context.Background()), game.ErrSessionActive)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want navigator.Command
	}{
		{line: "e", want: navigator.MoveLeft},
		{line: " Esquerda ", want: navigator.MoveLeft},
		{line: "left", want: navigator.MoveLeft},
		{line: "D", want: navigator.MoveRight},
		{line: "right", want: navigator.MoveRight},
		{line: "s", want: navigator.Exit},
		{line: "exit", want: navigator.Exit},
		{line: "", want: navigator.CommandUnknown},
		{line: "norte", want: navigator.CommandUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			require.Equal(t, tt.want, game.ParseCommand(tt.line))
		})
	}
}

func TestRevealMode_UnmarshalText(t *testing.T) {
	var m game.RevealMode
	require.NoError(t, m.UnmarshalText([]byte("always")))
	require.Equal(t, game.RevealAlways, m)
	require.ErrorIs(t, m.UnmarshalText([]byte("sometimes")), game.ErrInvalidRevealMode)
	require.Equal(t, game.RevealAlways, m)
}
