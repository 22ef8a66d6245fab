package game

import (
	"fmt"
	"strings"

	"github.com/myrjola/detectivequest/internal/navigator"
	"github.com/myrjola/detectivequest/internal/verdict"
)

type styledLine struct {
	tone Tone
	text string
}

func eventLines(e navigator.Event) []styledLine {
	switch e.Kind {
	case navigator.EventEntered:
		return []styledLine{{ToneNarrative, "Voce entrou em: " + e.Room}}
	case navigator.EventClueFound:
		return []styledLine{
			{ToneClue, "Pista encontrada: " + e.Clue},
			{ToneNarrative, "Esta pista aponta para: " + e.Suspect},
		}
	case navigator.EventNothingNew:
		return []styledLine{{ToneNotice, "Nada de novo por aqui."}}
	case navigator.EventNoPath:
		side := "a esquerda"
		if e.Command == navigator.MoveRight {
			side = "a direita"
		}
		return []styledLine{{ToneWarning, "Nao ha caminho " + side + "!"}}
	case navigator.EventRevisitDeclined:
		return []styledLine{{ToneNotice, "Voce decide nao voltar para " + e.Room + "."}}
	case navigator.EventDeadEnd:
		return []styledLine{
			{ToneNotice, "Esta e uma sala final!"},
			{ToneNotice, "Nao ha mais caminhos para explorar."},
		}
	case navigator.EventReturnedToEntry:
		return []styledLine{{ToneNarrative, "Voce retorna para: " + e.Room}}
	case navigator.EventExitDeclined:
		return []styledLine{{ToneNotice, "A investigacao continua."}}
	case navigator.EventExited:
		return []styledLine{{ToneNarrative, "Saindo da exploracao..."}}
	case navigator.EventInvalidCommand:
		return []styledLine{{ToneWarning, "Opcao invalida! Use 'e', 'd' ou 's'."}}
	}
	return nil
}

func promptText(p navigator.Prompt) string {
	if p.Kind == navigator.PromptRevisit {
		return "Voce ja visitou " + p.Room + ". Deseja entrar novamente? (s/n)"
	}
	return "Deseja realmente encerrar a exploracao? (s/n)"
}

func verdictLines(r verdict.Result) []styledLine {
	lines := make([]styledLine, 0, len(r.Evidence)+1)
	if r.Outcome == verdict.Convicted {
		lines = append(lines, styledLine{ToneVerdict,
			fmt.Sprintf("CULPADO! %d pistas incriminam %s. Caso encerrado.", r.Count, r.Accused)})
	} else {
		lines = append(lines, styledLine{ToneVerdict,
			fmt.Sprintf("Provas insuficientes contra %s: %d pista(s), sao necessarias %d.",
				r.Accused, r.Count, verdict.Threshold)})
	}
	for _, clue := range r.Evidence {
		lines = append(lines, styledLine{ToneClue, "- " + clue})
	}
	return lines
}

func revelationLines(rev verdict.Revelation) []styledLine {
	lines := []styledLine{{ToneHeading, "O verdadeiro culpado era: " + rev.Culprit}}
	if len(rev.Found) > 0 {
		lines = append(lines, styledLine{ToneNarrative, "Provas decisivas encontradas: " + strings.Join(rev.Found, ", ")})
	}
	if len(rev.Missed) > 0 {
		lines = append(lines, styledLine{ToneNarrative, "Provas que passaram despercebidas: " + strings.Join(rev.Missed, ", ")})
	}
	if rev.Correct {
		lines = append(lines, styledLine{ToneVerdict, "Sua acusacao estava correta."})
	} else {
		lines = append(lines, styledLine{ToneVerdict, "Sua acusacao estava errada."})
	}
	return lines
}
