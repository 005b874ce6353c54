package locwidget_test

import (
	"testing"
	"time"

	"github.com/fwojciec/locwidget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := locwidget.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, locwidget.DefaultMarker, cfg.Marker)
	assert.Equal(t, "dist", cfg.Out)
	assert.Equal(t, locwidget.DefaultDataEndpoint, cfg.DataEndpoint)
}

func TestConfig_Merge(t *testing.T) {
	t.Parallel()

	t.Run("overrides non-zero fields", func(t *testing.T) {
		t.Parallel()

		cfg := locwidget.DefaultConfig().Merge(locwidget.Config{
			Dataset: "https://example.com/locations.json",
			Timeout: 3 * time.Second,
		})

		assert.Equal(t, "https://example.com/locations.json", cfg.Dataset)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.Equal(t, "index.html", cfg.Source)
	})

	t.Run("keeps defaults for zero fields", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, locwidget.DefaultConfig(), locwidget.DefaultConfig().Merge(locwidget.Config{}))
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects marker without tag", func(t *testing.T) {
		t.Parallel()

		cfg := locwidget.DefaultConfig()
		cfg.Marker = `id="main-content"`

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, locwidget.EINVALID, locwidget.ErrorCode(err))
	})

	t.Run("rejects negative rate limit", func(t *testing.T) {
		t.Parallel()

		cfg := locwidget.DefaultConfig()
		cfg.RateLimit = -1

		assert.Equal(t, locwidget.EINVALID, locwidget.ErrorCode(cfg.Validate()))
	})
}

func TestConfig_IsRemoteDataset(t *testing.T) {
	t.Parallel()

	assert.True(t, locwidget.Config{Dataset: "https://example.com/data.json"}.IsRemoteDataset())
	assert.True(t, locwidget.Config{Dataset: "http://localhost/data.json"}.IsRemoteDataset())
	assert.False(t, locwidget.Config{Dataset: "data/locations.json"}.IsRemoteDataset())
	assert.False(t, locwidget.Config{Dataset: locwidget.SnapshotSource}.IsRemoteDataset())
}

func TestSnapshot_Validate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locwidget.EINVALID, locwidget.ErrorCode((&locwidget.Snapshot{Dataset: &locwidget.Dataset{}}).Validate()))
	assert.Equal(t, locwidget.EINVALID, locwidget.ErrorCode((&locwidget.Snapshot{Source: "x"}).Validate()))
	assert.NoError(t, (&locwidget.Snapshot{Source: "x", Dataset: &locwidget.Dataset{}}).Validate())
}

func TestHostReport_OK(t *testing.T) {
	t.Parallel()

	assert.True(t, (&locwidget.HostReport{Found: locwidget.HostElements}).OK())
	assert.False(t, (&locwidget.HostReport{Missing: locwidget.HostElements[:1]}).OK())
}
