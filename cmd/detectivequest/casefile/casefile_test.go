package casefile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/myrjola/detectivequest/cmd/detectivequest/casefile"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   []string
		absent []string
	}{
		{
			name: "layout only",
			args: []string{},
			want: []string{
				"Hall de Entrada\n",
				"  Sala de Estar\n",
				"    Biblioteca\n",
				"      Escritorio Secreto (beco sem saida)\n",
				"  Cozinha\n",
				"    Jardim\n",
				"      Banheiro (beco sem saida)\n",
			},
			absent: []string{"Cofre aberto e vazio"},
		},
		{
			name: "with clues",
			args: []string{"--clues"},
			want: []string{
				"Hall de Entrada: Porta principal arrombada -> Joao\n",
				"      Porao (beco sem saida): Pa suja de terra fresca -> Carlos\n",
			},
			absent: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			casefile.Map.SetOut(&out)
			casefile.Map.SetArgs(tt.args)
			t.Cleanup(func() { _ = casefile.Map.Flags().Set("clues", "false") })
			require.NoError(t, casefile.Map.Execute())

			got := out.String()
			require.Equal(t, 12, strings.Count(got, "\n"))
			require.True(t, strings.HasPrefix(got, "Hall de Entrada"))
			for _, w := range tt.want {
				require.Contains(t, got, w)
			}
			for _, a := range tt.absent {
				require.NotContains(t, got, a)
			}
		})
	}
}

func TestSuspects(t *testing.T) {
	var out bytes.Buffer
	casefile.Suspects.SetOut(&out)
	casefile.Suspects.SetArgs([]string{})
	require.NoError(t, casefile.Suspects.Execute())

	got := out.String()
	require.Equal(t, 20, strings.Count(got, "#"), "every attribution sits in some chain")
	require.Contains(t, got, "bucket 0: ")
	require.Contains(t, got, "bucket 9: ")
	require.Contains(t, got, "suspeitos: Ana, Beatriz, Carlos, Joao, Maria\n")
}
