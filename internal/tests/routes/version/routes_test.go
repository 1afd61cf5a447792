package version_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lk16/reversi/internal/models"
	routesversion "github.com/lk16/reversi/internal/routes/version"
	"github.com/lk16/reversi/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestVersionEndpoint(t *testing.T) {
	app := tests.NewTestApp(t)

	req, err := http.NewRequest(http.MethodGet, "/version", nil)
	require.NoError(t, err)

	// No token needed outside of /api
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var version models.VersionResponse
	err = json.NewDecoder(resp.Body).Decode(&version)
	require.NoError(t, err)
	require.Equal(t, routesversion.Version, version)
}
