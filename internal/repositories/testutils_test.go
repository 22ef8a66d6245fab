package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/myrjola/detectivequest/internal/sqlite"
	"github.com/myrjola/detectivequest/internal/testhelpers"
)

// newTestDB creates a new in-memory database for testing purposes.
func newTestDB(t *testing.T) *sqlite.Database {
	t.Helper()
	ctx := context.Background()

	dbs, err := sqlite.NewDatabase(ctx, testhelpers.NewLogger(io.Discard))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err = dbs.Close(ctx); err != nil {
			t.Fatal(err)
		}
	})

	return dbs
}
