package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	token, err := EncodeCursor(Cursor{ID: "42", CreatedAt: "2026-01-02T03:04:05Z"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	require.Equal(t, "42", decoded.ID)
	require.Equal(t, "2026-01-02T03:04:05Z", decoded.CreatedAt)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	_, err := DecodeCursor("not base64!!")
	require.Error(t, err)

	_, err = DecodeCursor("bm90IGpzb24=")
	require.Error(t, err)
}

func TestBuildCursorPageInfo(t *testing.T) {
	type row struct{ id int }
	extract := func(r *row) string { return strconv.Itoa(r.id) }

	t.Run("empty", func(t *testing.T) {
		info := BuildCursorPageInfo(nil, 3, extract)
		require.False(t, info.HasMore)
		require.Empty(t, info.NextPageToken)
	})

	t.Run("partial page", func(t *testing.T) {
		rows := []*row{{1}, {2}}
		info := BuildCursorPageInfo(rows, 3, extract)
		require.False(t, info.HasMore)
		require.Equal(t, "2", info.NextPageToken)
	})

	t.Run("overfetched page", func(t *testing.T) {
		rows := []*row{{1}, {2}, {3}, {4}}
		info := BuildCursorPageInfo(rows, 3, extract)
		require.True(t, info.HasMore)
		require.Equal(t, "3", info.NextPageToken)
	})
}
