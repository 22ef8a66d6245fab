package verdict_test

import (
	"testing"

	"github.com/myrjola/detectivequest/internal/ledger"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/myrjola/detectivequest/internal/verdict"
	"github.com/stretchr/testify/require"
)

func newLedger(clues ...string) *ledger.Ledger {
	l := ledger.New()
	for _, c := range clues {
		l.Insert(c)
	}
	return l
}

func TestJudge(t *testing.T) {
	index := suspects.Build(models.MansionCase().Attributions)
	scenario := []string{
		"Porta principal arrombada",
		"Copo de vinho pela metade",
		"Livro sobre venenos aberto",
		"Cofre aberto e vazio",
	}

	tests := []struct {
		name      string
		clues     []string
		accused   string
		wantOut   verdict.Outcome
		wantCount int
	}{
		{
			name:      "empty ledger",
			clues:     nil,
			accused:   "Carlos",
			wantOut:   verdict.Insufficient,
			wantCount: 0,
		},
		{
			name:      "scenario path against Carlos",
			clues:     scenario,
			accused:   "Carlos",
			wantOut:   verdict.Insufficient,
			wantCount: 1,
		},
		{
			name:      "scenario path against Joao",
			clues:     scenario,
			accused:   "Joao",
			wantOut:   verdict.Insufficient,
			wantCount: 1,
		},
		{
			name:      "two clues convict",
			clues:     append(scenario, "Pa suja de terra fresca"),
			accused:   "Carlos",
			wantOut:   verdict.Convicted,
			wantCount: 2,
		},
		{
			name:      "names match exactly",
			clues:     append(scenario, "Pa suja de terra fresca"),
			accused:   "carlos",
			wantOut:   verdict.Insufficient,
			wantCount: 0,
		},
		{
			name:      "unattributed clues count for nobody",
			clues:     []string{"Pegada de gato", "Poeira no tapete"},
			accused:   "Ana",
			wantOut:   verdict.Insufficient,
			wantCount: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := verdict.Judge(newLedger(tt.clues...), index, tt.accused)
			require.Equal(t, tt.wantOut, got.Outcome)
			require.Equal(t, tt.wantCount, got.Count)
			require.Len(t, got.Evidence, tt.wantCount)
			require.Equal(t, tt.accused, got.Accused)
		})
	}
}

func TestJudge_Monotonic(t *testing.T) {
	index := suspects.Build(models.MansionCase().Attributions)
	l := ledger.New()
	previous := verdict.Judge(l, index, "Maria")

	for _, clue := range []string{
		"Porta principal arrombada",
		"Copo de vinho pela metade",
		"Mala feita as pressas",
		"Cigarro apagado no parapeito",
	} {
		l.Insert(clue)
		current := verdict.Judge(l, index, "Maria")
		require.GreaterOrEqual(t, current.Count, previous.Count)
		require.GreaterOrEqual(t, current.Outcome, previous.Outcome, "verdict never goes back to insufficient")
		require.Equal(t, current.Count >= verdict.Threshold, current.Outcome == verdict.Convicted)
		previous = current
	}
	require.Equal(t, verdict.Convicted, previous.Outcome)
}

func TestReveal(t *testing.T) {
	truth := models.MansionCase().Truth
	l := newLedger("Cofre aberto e vazio", "Porta principal arrombada")

	rev := verdict.Reveal(truth, l, "Joao")
	require.Equal(t, "Carlos", rev.Culprit)
	require.False(t, rev.Correct)
	require.Equal(t, []string{"Cofre aberto e vazio"}, rev.Found)
	require.Equal(t, []string{"Pa suja de terra fresca", "Carta de chantagem rasgada"}, rev.Missed)

	require.True(t, verdict.Reveal(truth, l, "Carlos").Correct)
}
