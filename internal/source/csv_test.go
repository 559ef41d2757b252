package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSource_Fetch(t *testing.T) {
	path := writeFeed(t, `rider_id,date,delivery_count,is_rainy,has_surge,district
BC123456,2026-08-10,5,true,false,Gangnam
BC234567,2026-08-10,3,,yes,Mapo
`)

	records, err := NewCSVSource(path).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "BC123456", records[0].RiderID)
	assert.Equal(t, "2026-08-10", records[0].Date)
	assert.Equal(t, "5", records[0].Count)
	assert.Equal(t, "true", records[0].IsRainy)
	assert.Equal(t, "Gangnam", records[0].District)
	assert.Equal(t, 2, records[0].Row)

	assert.Equal(t, "yes", records[1].HasSurge)
	assert.Equal(t, 3, records[1].Row)
}

func TestCSVSource_Fetch_ReorderedColumns(t *testing.T) {
	path := writeFeed(t, `district,rider_id,delivery_count,date
Mapo,BC111111,7,2026-08-12
`)

	records, err := NewCSVSource(path).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "BC111111", records[0].RiderID)
	assert.Equal(t, "7", records[0].Count)
	assert.Equal(t, "Mapo", records[0].District)
	assert.Empty(t, records[0].IsRainy)
}

func TestCSVSource_Fetch_RaggedRows(t *testing.T) {
	path := writeFeed(t, `rider_id,date,delivery_count
BC222222,2026-08-13
`)

	records, err := NewCSVSource(path).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Count)
}

func TestCSVSource_Fetch_MissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "absent.csv")).Fetch(context.Background())
	assert.Error(t, err)
}

func TestCSVSource_Fetch_CancelledContext(t *testing.T) {
	path := writeFeed(t, "rider_id,date\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVSource(path).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
