package mcp_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	d360mcp "github.com/LuciusCaesar/D360-Client/internal/mcp"
	"github.com/LuciusCaesar/D360-Client/internal/models"
)

type stubCatalog struct {
	types  []models.AssetType
	assets []models.Asset
	fields map[string][]models.Field
	err    error
}

func (s *stubCatalog) AllAssetTypes(context.Context) ([]models.AssetType, error) { return s.types, s.err }
func (s *stubCatalog) AllAssets(context.Context) ([]models.Asset, error) { return s.assets, s.err }
func (s *stubCatalog) BaseURL() string { return "stub" }

func (s *stubCatalog) GetFieldsByAssetTypeUID(_ context.Context, uid string) ([]models.Field, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.fields[uid], nil
}

func business(name, uid string) models.AssetType {
	return models.AssetType{UID: uid, Name: name, Class: models.AssetClass{Value: models.AssetClassBusinessAsset}}
}

func newMCPServer(t *testing.T) (*d360mcp.Server, *stubCatalog, *stubCatalog) {
	t.Helper()
	src := &stubCatalog{
		types: []models.AssetType{
			business("type1", "s1"),
			business("type2", "s2"),
			{UID: "s9", Name: "Column", Class: models.AssetClass{Value: models.AssetClassTechnicalAsset}},
		},
		assets: []models.Asset{{AssetUID: "a1"}},
		fields: map[string][]models.Field{
			"s1": {{Name: "Acronyms", AssetTypeUID: "s1", Type: models.NewFieldType(models.TextAttributes{})}},
		},
	}
	dst := &stubCatalog{
		types: []models.AssetType{
			business("type1", "d1"),
			business("type3", "d3"),
			{UID: "d9", Name: "Column", Class: models.AssetClass{Value: models.AssetClassTechnicalAsset}},
		},
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return d360mcp.NewServer(src, dst, logger), src, dst
}

// makeReq builds a CallToolRequest with the given arguments.
func makeReq(toolName string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = args
	return req
}

// textContent extracts the first TextContent string from a CallToolResult.
func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected at least one content item")
	tc, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func TestMCPServerRegistersTools(t *testing.T) {
	srv, _, _ := newMCPServer(t)
	assert.NotNil(t, srv.MCPServer())
}

func TestMCPListAssetTypes(t *testing.T) {
	srv, _, _ := newMCPServer(t)

	result, err := srv.HandleListAssetTypes(context.Background(), makeReq("list_asset_types", nil))
	require.NoError(t, err)
	require.False(t, result.IsError, textContent(t, result))

	var out struct {
		Instance   string           `json:"instance"`
		AssetTypes []map[string]any `json:"asset_types"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &out))
	assert.Equal(t, "source", out.Instance)
	assert.Len(t, out.AssetTypes, 3)
}

func TestMCPListAssetTypesFiltersByClass(t *testing.T) {
	srv, _, _ := newMCPServer(t)

	result, err := srv.HandleListAssetTypes(context.Background(), makeReq("list_asset_types", map[string]any{
		"instance": "destination",
		"class":    "TechnicalAsset",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out struct {
		AssetTypes []map[string]any `json:"asset_types"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &out))
	require.Len(t, out.AssetTypes, 1)
	assert.Equal(t, "d9", out.AssetTypes[0]["Uid"])
}

func TestMCPListAssetTypesRejectsBadArguments(t *testing.T) {
	srv, _, _ := newMCPServer(t)

	result, err := srv.HandleListAssetTypes(context.Background(), makeReq("list_asset_types", map[string]any{"instance": "staging"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = srv.HandleListAssetTypes(context.Background(), makeReq("list_asset_types", map[string]any{"class": "Spaceship"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPListFields(t *testing.T) {
	srv, _, _ := newMCPServer(t)

	result, err := srv.HandleListFields(context.Background(), makeReq("list_fields", map[string]any{"asset_type_uid": "s1"}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, textContent(t, result), `"Acronyms"`)

	result, err = srv.HandleListFields(context.Background(), makeReq("list_fields", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPDiff(t *testing.T) {
	srv, _, _ := newMCPServer(t)

	result, err := srv.HandleDiff(context.Background(), makeReq("diff_metamodel", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out struct {
		Summary string `json:"summary"`
		Empty   bool   `json:"empty"`
		Diff    struct {
			Added   []map[string]any `json:"assetTypesToBeAdded"`
			Deleted []map[string]any `json:"assetTypesToBeDeleted"`
		} `json:"diff"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &out))
	assert.False(t, out.Empty)
	assert.Equal(t, "asset types: +1 -1", out.Summary)
	require.Len(t, out.Diff.Added, 1)
	assert.Equal(t, "type2", out.Diff.Added[0]["Name"])
	require.Len(t, out.Diff.Deleted, 1)
	assert.Equal(t, "type3", out.Diff.Deleted[0]["Name"])
}

func TestMCPDiffUpstreamError(t *testing.T) {
	srv, _, dst := newMCPServer(t)
	dst.err = errors.New("connection refused")

	result, err := srv.HandleDiff(context.Background(), makeReq("diff_metamodel", map[string]any{"include_assets": true}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "destination")
}

func TestMCPDrift(t *testing.T) {
	srv, src, _ := newMCPServer(t)
	src.types[2].Hierarchical = true

	result, err := srv.HandleDrift(context.Background(), makeReq("drift_metamodel", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, textContent(t, result), `"Column"`)
	assert.Contains(t, textContent(t, result), "/Hierarchical")
}

func TestMCPNilCatalogs(t *testing.T) {
	srv := d360mcp.NewServer(nil, nil, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	result, err := srv.HandleListAssetTypes(context.Background(), makeReq("list_asset_types", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = srv.HandleDiff(context.Background(), makeReq("diff_metamodel", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPTypedNilCatalog(t *testing.T) {
	var missing *stubCatalog
	srv := d360mcp.NewServer(missing, missing, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	result, err := srv.HandleListFields(context.Background(), makeReq("list_fields", map[string]any{"asset_type_uid": "s1"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = srv.HandleDrift(context.Background(), makeReq("drift_metamodel", nil))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
