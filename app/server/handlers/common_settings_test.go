package handlers_test

import (
	"class-website/app/server/constants"
	"class-website/app/server/types"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getSettings(t *testing.T, ts *testServer) types.Settings {
	t.Helper()
	rec := ts.do(t, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var settings types.Settings
	decode(t, rec, &settings)
	return settings
}

func TestSettings(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		first := getSettings(t, ts)
		assert.NotEmpty(t, first.ID)
		assert.Equal(t, constants.DefaultSiteName, first.SiteName)
		assert.Equal(t, first.ID, getSettings(t, ts).ID)

		rec := ts.do(t, http.MethodPut, "/api/settings", "", map[string]string{"siteName": "X"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = ts.do(t, http.MethodPut, "/api/settings", ts.token, map[string]string{
			"siteName":    "X",
			"lastUpdated": "2000-01-01T00:00:00Z",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		after := getSettings(t, ts)
		assert.Equal(t, first.ID, after.ID)
		assert.Equal(t, "X", after.SiteName)
		assert.Equal(t, constants.DefaultSiteTitle, after.SiteTitle)
		assert.True(t, after.LastUpdated.After(first.LastUpdated))
	})
}

func TestStats(t *testing.T) {
	eachBackend(t, func(t *testing.T, ts *testServer) {
		rec := ts.do(t, http.MethodPost, "/api/confessions", "", map[string]string{"message": "hi"})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = ts.do(t, http.MethodGet, "/api/stats", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var stats types.Stats
		decode(t, rec, &stats)
		assert.EqualValues(t, 0, stats.Gallery)
		assert.EqualValues(t, 13, stats.Structure)
		assert.EqualValues(t, 1, stats.Confessions)
		assert.False(t, stats.LastActivity.IsZero())
	})
}
