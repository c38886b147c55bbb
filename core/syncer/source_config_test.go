package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceConfigHTTPEndpoints(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		endpoints, err := SourceConfig{}.HTTPEndpoints()
		require.NoError(t, err)
		assert.Empty(t, endpoints)
	})

	t.Run("Ordered List", func(t *testing.T) {
		cfg := SourceConfig{HTTP: "lobby=http://10.0.0.5:8081, annex = http://10.0.0.6:8081 ,"}
		endpoints, err := cfg.HTTPEndpoints()
		require.NoError(t, err)
		require.Len(t, endpoints, 2)
		assert.Equal(t, HTTPEndpoint{ID: "lobby", BaseURL: "http://10.0.0.5:8081"}, endpoints[0])
		assert.Equal(t, HTTPEndpoint{ID: "annex", BaseURL: "http://10.0.0.6:8081"}, endpoints[1])
	})

	t.Run("Missing URL", func(t *testing.T) {
		_, err := SourceConfig{HTTP: "lobby"}.HTTPEndpoints()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "id=baseURL")
	})

	t.Run("Missing ID", func(t *testing.T) {
		_, err := SourceConfig{HTTP: "=http://10.0.0.5:8081"}.HTTPEndpoints()
		assert.Error(t, err)
	})
}

func TestSourceConfigStorageIDs(t *testing.T) {
	assert.Empty(t, SourceConfig{}.StorageIDs())
	assert.Equal(t, []string{"dock", "roof"}, SourceConfig{Storage: " dock , roof ,,"}.StorageIDs())
}
