package idx_test

import (
	"testing"
	"time"

	"github.com/flockhq/flock/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewAndParse(t *testing.T) {
	id := idx.New()
	require.NotEmpty(t, id.String())
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := idx.Parse("definitely-not-a-ulid")
	require.Error(t, err)

	_, err = idx.Parse("")
	require.Error(t, err)
}

func TestLexicographicOrdering(t *testing.T) {
	a := idx.NewAt(time.Unix(1, 0).UTC())
	b := idx.NewAt(time.Unix(2, 0).UTC())

	// ULIDs from later timestamps must sort after earlier ones, so id
	// order doubles as creation order in list queries.
	require.Less(t, a.String(), b.String())
}

func TestTimeExtraction(t *testing.T) {
	tm := time.Unix(1700000000, 0).UTC()
	id := idx.NewAt(tm)
	require.Equal(t, tm.UnixMilli(), id.Time().UnixMilli())
}

func TestMustParsePanics(t *testing.T) {
	require.Panics(t, func() { idx.MustParse("nope") })
}
