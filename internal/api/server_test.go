package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuciusCaesar/D360-Client/internal/api"
	"github.com/LuciusCaesar/D360-Client/internal/catalog"
	"github.com/LuciusCaesar/D360-Client/internal/models"
)

// stubCatalog is an in-memory instance.
type stubCatalog struct {
	url    string
	types  []models.AssetType
	assets []models.Asset
	fields map[string][]models.Field
	err    error
}

func (s *stubCatalog) AllAssetTypes(context.Context) ([]models.AssetType, error) {
	return s.types, s.err
}

func (s *stubCatalog) AllAssets(context.Context) ([]models.Asset, error) {
	return s.assets, s.err
}

func (s *stubCatalog) BaseURL() string { return s.url }

func (s *stubCatalog) GetFieldsByAssetTypeUID(_ context.Context, uid string) ([]models.Field, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Field{}, s.fields[uid]...), nil
}

func newTestServer(t *testing.T, authToken string, source, dest *stubCatalog) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	srv := api.NewServer(source, dest, logger, authToken)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, http.NoBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func instances() (*stubCatalog, *stubCatalog) {
	source := &stubCatalog{
		url:    "https://source.example.com/api/v2",
		types:  []models.AssetType{{UID: "s1", Name: "type1"}, {UID: "s2", Name: "type2"}},
		assets: []models.Asset{{AssetUID: "a1"}},
		fields: map[string][]models.Field{
			"s1": {{Name: "Acronyms", AssetTypeUID: "s1", Type: models.NewFieldType(models.TextAttributes{})}},
		},
	}
	dest := &stubCatalog{
		url:    "https://dest.example.com/api/v2",
		types:  []models.AssetType{{UID: "d1", Name: "type1"}, {UID: "d3", Name: "type3"}},
		assets: []models.Asset{{AssetUID: "a2"}},
	}
	return source, dest
}

func TestHealthzNoAuth(t *testing.T) {
	src, dst := instances()
	ts := newTestServer(t, "secret-token", src, dst)

	resp := doRequest(t, ts.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])
}

func TestAuthRequired(t *testing.T) {
	src, dst := instances()
	ts := newTestServer(t, "secret-token", src, dst)

	assert.Equal(t, http.StatusUnauthorized, doRequest(t, ts.URL+"/v1/diff", "").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, ts.URL+"/v1/diff", "wrong").StatusCode)
	assert.Equal(t, http.StatusOK, doRequest(t, ts.URL+"/v1/diff", "secret-token").StatusCode)
}

type diffBody struct {
	Summary string `json:"summary"`
	Empty   bool   `json:"empty"`
	Diff    struct {
		Added   []models.AssetType `json:"assetTypesToBeAdded"`
		Deleted []models.AssetType `json:"assetTypesToBeDeleted"`
		Assets  []models.Asset     `json:"assetsToBeAdded"`
	} `json:"diff"`
}

func TestDiff(t *testing.T) {
	src, dst := instances()
	ts := newTestServer(t, "", src, dst)

	resp := doRequest(t, ts.URL+"/v1/diff", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[diffBody](t, resp)
	assert.False(t, body.Empty)
	assert.Equal(t, "asset types: +1 -1", body.Summary)
	require.Len(t, body.Diff.Added, 1)
	assert.Equal(t, "type2", body.Diff.Added[0].Name)
	require.Len(t, body.Diff.Deleted, 1)
	assert.Equal(t, "type3", body.Diff.Deleted[0].Name)
	assert.Empty(t, body.Diff.Assets)
}

func TestDiffWithAssets(t *testing.T) {
	src, dst := instances()
	ts := newTestServer(t, "", src, dst)

	resp := doRequest(t, ts.URL+"/v1/diff?assets=true", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[diffBody](t, resp)
	require.Len(t, body.Diff.Assets, 1)
	assert.Equal(t, "a1", body.Diff.Assets[0].AssetUID)

	assert.Equal(t, http.StatusBadRequest, doRequest(t, ts.URL+"/v1/diff?assets=maybe", "").StatusCode)
}

func TestDiffUpstreamFailure(t *testing.T) {
	src, dst := instances()
	dst.err = &catalog.RequestError{Method: http.MethodGet, URL: "x", StatusCode: http.StatusUnauthorized}
	ts := newTestServer(t, "", src, dst)

	resp := doRequest(t, ts.URL+"/v1/diff", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, decode[map[string]string](t, resp)["error"], "destination")
}

func TestTypedNilCatalogIsUnavailable(t *testing.T) {
	src, _ := instances()
	var dst *stubCatalog
	ts := newTestServer(t, "", src, dst)

	resp := doRequest(t, ts.URL+"/v1/destination/asset-types", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = doRequest(t, ts.URL+"/v1/diff", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp = doRequest(t, ts.URL+"/v1/source/asset-types", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDrift(t *testing.T) {
	src, dst := instances()
	src.types[0].Notes = "changed"
	ts := newTestServer(t, "", src, dst)

	resp := doRequest(t, ts.URL+"/v1/drift", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		AssetTypes []struct {
			Name string `json:"name"`
		} `json:"assetTypes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.AssetTypes, 1)
	assert.Equal(t, "type1", body.AssetTypes[0].Name)
}

func TestAssetTypesByInstance(t *testing.T) {
	src, dst := instances()
	ts := newTestServer(t, "", src, dst)

	resp := doRequest(t, ts.URL+"/v1/destination/asset-types", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var types []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&types))
	require.Len(t, types, 2)
	assert.Equal(t, "d1", types[0]["Uid"])

	assert.Equal(t, http.StatusNotFound, doRequest(t, ts.URL+"/v1/staging/asset-types", "").StatusCode)
}

func TestFieldsByInstance(t *testing.T) {
	src, dst := instances()
	ts := newTestServer(t, "", src, dst)

	resp := doRequest(t, ts.URL+"/v1/source/asset-types/s1/fields", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fields []map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fields))
	require.Len(t, fields, 1)
	assert.JSONEq(t, `"Acronyms"`, string(fields[0]["Name"]))
	assert.Contains(t, string(fields[0]["Type"]), `"Text"`)
}
