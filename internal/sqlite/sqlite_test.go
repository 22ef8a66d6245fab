package sqlite_test

import (
	"context"
	"io"
	"testing"

	"github.com/myrjola/detectivequest/internal/sqlite"
	"github.com/myrjola/detectivequest/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	logger := testhelpers.NewLogger(io.Discard)

	first, err := sqlite.NewDatabase(ctx, logger)
	require.NoError(t, err)
	second, err := sqlite.NewDatabase(ctx, logger)
	require.NoError(t, err)

	_, err = first.DB.ExecContext(ctx, "INSERT INTO sessions (id, case_title) VALUES ('a', 'Detective Quest')")
	require.NoError(t, err)

	var count int
	require.NoError(t, second.DB.GetContext(ctx, &count, "SELECT COUNT(*) FROM sessions"))
	require.Equal(t, 0, count, "databases must not share data")

	_, err = first.DB.ExecContext(ctx, "INSERT INTO turns (session_id, \"order\", kind) VALUES ('missing', 0, 'x')")
	require.Error(t, err, "foreign keys are enforced")

	require.NoError(t, first.Close(ctx))
	require.NoError(t, second.Close(ctx))
}
