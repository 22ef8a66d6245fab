// Package casefile prints the compiled-in case for inspection. The output spoils the game.
package casefile

import (
	"fmt"
	"io"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/myrjola/detectivequest/internal/suspects"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "casefile",
	Title: "Case file",
}

func init() {
	Map.Flags().Bool("clues", false, "show the clue left in each room and who it incriminates")
}

var Map = &cobra.Command{
	Use:     "map",
	GroupID: Group.ID,
	Short:   "Print the mansion layout",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		withClues, _ := cmd.Flags().GetBool("clues")
		c := models.MansionCase()
		rooms := mansion.Build()
		defer rooms.Release()
		index := suspects.Build(c.Attributions)
		defer index.Release()
		return WriteMap(cmd.OutOrStdout(), rooms, index, withClues)
	},
}

var Suspects = &cobra.Command{
	Use:     "suspects",
	GroupID: Group.ID,
	Short:   "Print the suspect index",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		index := suspects.Build(models.MansionCase().Attributions)
		defer index.Release()
		return WriteSuspects(cmd.OutOrStdout(), index)
	},
}

// WriteMap prints the rooms in pre-order, indented by depth. Dead ends are marked.
func WriteMap(w io.Writer, rooms *mansion.Map, index *suspects.Index, withClues bool) error {
	var err error
	rooms.Walk(func(id mansion.RoomID, depth int) bool {
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(rooms.Name(id))
		if rooms.IsDeadEnd(id) {
			b.WriteString(" (beco sem saida)")
		}
		if withClues && rooms.HasClue(id) {
			clue := rooms.Clue(id)
			fmt.Fprintf(&b, ": %s -> %s", clue, index.Lookup(clue))
		}
		_, err = fmt.Fprintln(w, b.String())
		return err == nil
	})
	if err != nil {
		return errors.Wrap(err, "write map")
	}
	return nil
}

// WriteSuspects prints every bucket chain length followed by the suspects.
func WriteSuspects(w io.Writer, index *suspects.Index) error {
	var b strings.Builder
	for i, n := range index.Buckets() {
		fmt.Fprintf(&b, "bucket %d: %s\n", i, strings.Repeat("#", n))
	}
	fmt.Fprintf(&b, "suspeitos: %s\n", strings.Join(index.Suspects(), ", "))
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write suspects")
	}
	return nil
}
