// Package mcp implements the Model Context Protocol server for d360.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/LuciusCaesar/D360-Client/internal/metamodel"
	"github.com/LuciusCaesar/D360-Client/internal/models"
	"github.com/LuciusCaesar/D360-Client/internal/reconcile"
)

// Catalog is the read-only view of one instance the tools need.
// *catalog.Client satisfies it.
type Catalog interface {
	metamodel.Source
	GetFieldsByAssetTypeUID(ctx context.Context, uid string) ([]models.Field, error)
}

// Server wraps an MCPServer with the source and destination catalogs.
type Server struct {
	mcp         *mcpserver.MCPServer
	source      Catalog
	destination Catalog
	logger      *slog.Logger
}

// NewServer creates a new MCP server. If a catalog is nil, typed or not, tool
// calls that need it return an error response instead of panicking.
func NewServer(source, destination Catalog, logger *slog.Logger) *Server {
	s := &Server{
		source:      present(source),
		destination: present(destination),
		logger:      logger,
	}

	mcpSrv := mcpserver.NewMCPServer(
		"d360",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(buildListAssetTypesTool(), s.handleListAssetTypes)
	mcpSrv.AddTool(buildListFieldsTool(), s.handleListFields)
	mcpSrv.AddTool(buildDiffTool(), s.handleDiff)
	mcpSrv.AddTool(buildDriftTool(), s.handleDrift)

	s.mcp = mcpSrv
	return s
}

// MCPServer returns the underlying mcp-go MCPServer for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// HandleListAssetTypes is the exported handler for the "list_asset_types" tool.
// It is exposed for direct testing without the mcp-go transport layer.
func (s *Server) HandleListAssetTypes(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleListAssetTypes(ctx, req)
}

// HandleListFields is the exported handler for the "list_fields" tool.
func (s *Server) HandleListFields(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleListFields(ctx, req)
}

// HandleDiff is the exported handler for the "diff_metamodel" tool.
func (s *Server) HandleDiff(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleDiff(ctx, req)
}

// HandleDrift is the exported handler for the "drift_metamodel" tool.
func (s *Server) HandleDrift(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleDrift(ctx, req)
}

// --- helpers ---

// toolResultJSON marshals v to JSON and returns it as a tool text result.
func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: marshaling result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

// instance resolves the "instance" argument, defaulting to source.
func (s *Server) instance(req mcpgo.CallToolRequest) (Catalog, string, error) {
	name := strings.ToLower(req.GetString("instance", "source"))
	var c Catalog
	switch name {
	case "source":
		c = s.source
	case "destination":
		c = s.destination
	default:
		return nil, name, fmt.Errorf("invalid instance %q: must be source or destination", name)
	}
	if c == nil {
		return nil, name, fmt.Errorf("%s catalog is unavailable", name)
	}
	return c, name, nil
}

// present returns nil for a nil interface or an interface holding a nil pointer.
func present(c Catalog) Catalog {
	if c == nil {
		return nil
	}
	if v := reflect.ValueOf(c); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return c
}

// --- tool definitions ---

func buildListAssetTypesTool() mcpgo.Tool {
	return mcpgo.NewTool("list_asset_types",
		mcpgo.WithDescription("List the asset types defined on a catalog instance."),
		mcpgo.WithString("instance",
			mcpgo.Description("Instance to query: source or destination (default: source)"),
		),
		mcpgo.WithString("class",
			mcpgo.Description("Only return asset types of this asset class, e.g. BusinessAsset"),
		),
	)
}

func buildListFieldsTool() mcpgo.Tool {
	return mcpgo.NewTool("list_fields",
		mcpgo.WithDescription("List the fields of one asset type."),
		mcpgo.WithString("asset_type_uid",
			mcpgo.Required(),
			mcpgo.Description("UID of the asset type"),
		),
		mcpgo.WithString("instance",
			mcpgo.Description("Instance to query: source or destination (default: source)"),
		),
	)
}

func buildDiffTool() mcpgo.Tool {
	return mcpgo.NewTool("diff_metamodel",
		mcpgo.WithDescription("Compare the source meta-model (target state) with the destination. Lists asset types, and optionally assets, to add or delete on the destination."),
		mcpgo.WithBoolean("include_assets",
			mcpgo.Description("Also diff assets (default: false)"),
		),
	)
}

func buildDriftTool() mcpgo.Tool {
	return mcpgo.NewTool("drift_metamodel",
		mcpgo.WithDescription("List asset types present on both instances whose definitions differ, with a JSON Patch per type."),
	)
}

// --- tool handlers ---

func (s *Server) handleListAssetTypes(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	c, name, err := s.instance(req)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	var class models.AssetClassName
	if raw := req.GetString("class", ""); raw != "" {
		class, err = models.ParseAssetClassName(raw)
		if err != nil {
			return mcpgo.NewToolResultError(err.Error()), nil
		}
	}

	types, err := c.AllAssetTypes(ctx)
	if err != nil {
		return mcpgo.NewToolResultErrorf("listing asset types failed: %s", err.Error()), nil
	}
	if class != "" {
		filtered := make([]models.AssetType, 0, len(types))
		for _, t := range types {
			if t.Class.Value == class {
				filtered = append(filtered, t)
			}
		}
		types = filtered
	}

	s.logger.Info("mcp: listed asset types", "instance", name, "count", len(types))

	return toolResultJSON(map[string]any{
		"instance":    name,
		"asset_types": types,
	})
}

func (s *Server) handleListFields(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	uid := req.GetString("asset_type_uid", "")
	if strings.TrimSpace(uid) == "" {
		return mcpgo.NewToolResultError("asset_type_uid is required and must not be empty"), nil
	}
	c, name, err := s.instance(req)
	if err != nil {
		return mcpgo.NewToolResultError(err.Error()), nil
	}

	fields, err := c.GetFieldsByAssetTypeUID(ctx, uid)
	if err != nil {
		return mcpgo.NewToolResultErrorf("listing fields failed: %s", err.Error()), nil
	}
	return toolResultJSON(map[string]any{
		"instance": name,
		"fields":   fields,
	})
}

func (s *Server) snapshots(ctx context.Context, includeAssets bool) (target, current metamodel.MetaModel, err error) {
	if s.source == nil || s.destination == nil {
		return target, current, fmt.Errorf("both source and destination catalogs are required")
	}
	target, err = metamodel.Load(ctx, s.source, includeAssets)
	if err != nil {
		return target, current, fmt.Errorf("source: %w", err)
	}
	current, err = metamodel.Load(ctx, s.destination, includeAssets)
	if err != nil {
		return target, current, fmt.Errorf("destination: %w", err)
	}
	return target, current, nil
}

func (s *Server) handleDiff(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	target, current, err := s.snapshots(ctx, req.GetBool("include_assets", false))
	if err != nil {
		return mcpgo.NewToolResultErrorf("loading meta-models failed: %s", err.Error()), nil
	}
	d := reconcile.Compute(target, current)

	s.logger.Info("mcp: computed diff", "summary", d.Summary())

	return toolResultJSON(map[string]any{
		"summary": d.Summary(),
		"empty":   d.IsEmpty(),
		"diff":    d,
	})
}

func (s *Server) handleDrift(ctx context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	target, current, err := s.snapshots(ctx, false)
	if err != nil {
		return mcpgo.NewToolResultErrorf("loading meta-models failed: %s", err.Error()), nil
	}
	drift, err := reconcile.Drift(target, current)
	if err != nil {
		return mcpgo.NewToolResultErrorf("drift failed: %s", err.Error()), nil
	}
	return toolResultJSON(map[string]any{
		"asset_types": drift,
	})
}
