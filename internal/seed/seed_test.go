package seed

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/kampus/internal/catalog"
	"github.com/erazemk/kampus/internal/model"
)

func TestStaticIsValid(t *testing.T) {
	d := Static()
	require.NoError(t, d.Validate())
	assert.Len(t, d.Events(), 4)
	assert.Len(t, d.LostFound(), 4)
	assert.Len(t, d.Menu(), 6)
	assert.Len(t, d.Queues(), 3)
	assert.Len(t, d.Points(), 6)
}

func TestStaticCulturalScenario(t *testing.T) {
	got := catalog.Filter(Static().Events(), model.EventCategoryCultural, "")
	require.Len(t, got, 1)
	assert.Equal(t, "Cultural Festival", got[0].Title)
}

func TestProviderReturnsCopies(t *testing.T) {
	d := Static()
	events := d.Events()
	events[0].Title = "changed"
	assert.Equal(t, "Tech Conference 2024", d.Events()[0].Title)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.json")
	raw, err := json.Marshal(Static())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Static().Menu(), d.Menu())
}

func TestLoadFileRejectsUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	doc := `{"events":[{"id":"1","title":"x","category":"party"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "invalid category")
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	d := Static()
	d.EventList = append(d.EventList, d.EventList[0])
	assert.ErrorContains(t, d.Validate(), "event 1: duplicate id")

	d = Static()
	d.ItemList = append(d.ItemList, d.ItemList[2])
	assert.ErrorContains(t, d.Validate(), "lost-found item 3: duplicate id")

	d = Static()
	d.QueueList = append(d.QueueList, d.QueueList[0])
	assert.ErrorContains(t, d.Validate(), "queue 1: duplicate id")

	// The same id in different catalogs is fine.
	require.NoError(t, Static().Validate())
}

func TestValidateRejectsUnknownQueueStatus(t *testing.T) {
	d := Static()
	d.QueueList[1].Status = "busy"
	assert.ErrorContains(t, d.Validate(), `queue 2: invalid status "busy"`)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
