package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/config"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "sports-stats-api",
		HTTPAddr:           ":0",
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		CORSAllowedOrigins: []string{"*"},
		StatsFormLength:    5,
		ReportWorkerCount:  2,
		ReportMaxTeams:     10,
	}
}

func TestNewHTTPServer_MemoryBackend(t *testing.T) {
	srv, closer, err := NewHTTPServer(memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, closer()) }()

	req := httptest.NewRequest(http.MethodGet, "/v1/teams/team-lions/summary", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"totalMatches":6`)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(cfg, nil)
	require.Error(t, err)
}
