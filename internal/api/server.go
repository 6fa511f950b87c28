package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"expvar"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/LuciusCaesar/D360-Client/internal/catalog"
	"github.com/LuciusCaesar/D360-Client/internal/metamodel"
	"github.com/LuciusCaesar/D360-Client/internal/models"
	"github.com/LuciusCaesar/D360-Client/internal/reconcile"
)

// Instance names accepted in the {instance} path segment.
const (
	InstanceSource      = "source"
	InstanceDestination = "destination"
)

// Catalog is the read-only view of one instance the server needs.
// *catalog.Client satisfies it.
type Catalog interface {
	metamodel.Source
	GetFieldsByAssetTypeUID(ctx context.Context, uid string) ([]models.Field, error)
}

// Server is an HTTP API server that exposes the meta-model diff between the
// source instance (the target state) and the destination instance.
type Server struct {
	instances map[string]Catalog
	logger    *slog.Logger
	authToken string // empty = no auth required
}

// NewServer creates a new Server with the given dependencies. A nil catalog,
// typed or not, makes the routes that need it answer 503.
func NewServer(source, destination Catalog, logger *slog.Logger, authToken string) *Server {
	return &Server{
		instances: map[string]Catalog{
			InstanceSource:      present(source),
			InstanceDestination: present(destination),
		},
		logger:    logger,
		authToken: authToken,
	}
}

// Handler returns an http.Handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health check, no auth required.
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	mux.HandleFunc("GET /v1/diff", s.auth(s.handleDiff))
	mux.HandleFunc("GET /v1/drift", s.auth(s.handleDrift))
	mux.HandleFunc("GET /v1/{instance}/asset-types", s.auth(s.handleAssetTypes))
	mux.HandleFunc("GET /v1/{instance}/asset-types/{uid}/fields", s.auth(s.handleFields))
	mux.Handle("GET /debug/vars", s.auth(expvar.Handler().ServeHTTP))

	return mux
}

// --- middleware ---

// auth wraps a handler with Bearer token authentication when authToken is set.
func (s *Server) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.authToken == "" {
			next(w, r)
			return
		}
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.authToken)) != 1 {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	}
}

// --- handlers ---

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// diffResponse is returned by GET /v1/diff.
type diffResponse struct {
	Summary string         `json:"summary"`
	Empty   bool           `json:"empty"`
	Diff    reconcile.Diff `json:"diff"`
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	includeAssets := false
	if raw := r.URL.Query().Get("assets"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "assets must be a boolean")
			return
		}
		includeAssets = v
	}

	target, current, ok := s.snapshots(w, r, includeAssets)
	if !ok {
		return
	}
	d := reconcile.Compute(target, current)
	s.writeJSON(w, http.StatusOK, diffResponse{Summary: d.Summary(), Empty: d.IsEmpty(), Diff: d})
}

// driftResponse is returned by GET /v1/drift.
type driftResponse struct {
	AssetTypes []reconcile.TypeDrift `json:"assetTypes"`
}

func (s *Server) handleDrift(w http.ResponseWriter, r *http.Request) {
	target, current, ok := s.snapshots(w, r, false)
	if !ok {
		return
	}
	drift, err := reconcile.Drift(target, current)
	if err != nil {
		s.logger.Error("failed to compute drift", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to compute drift")
		return
	}
	s.writeJSON(w, http.StatusOK, driftResponse{AssetTypes: drift})
}

func (s *Server) handleAssetTypes(w http.ResponseWriter, r *http.Request) {
	inst, ok := s.instance(w, r)
	if !ok {
		return
	}
	types, err := inst.AllAssetTypes(r.Context())
	if err != nil {
		s.upstreamError(w, "failed to list asset types", err)
		return
	}
	s.writeJSON(w, http.StatusOK, types)
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	inst, ok := s.instance(w, r)
	if !ok {
		return
	}
	uid := r.PathValue("uid")
	if uid == "" {
		s.writeError(w, http.StatusBadRequest, "uid is required")
		return
	}
	fields, err := inst.GetFieldsByAssetTypeUID(r.Context(), uid)
	if err != nil {
		s.upstreamError(w, "failed to list fields", err)
		return
	}
	s.writeJSON(w, http.StatusOK, fields)
}

// --- helpers ---

func (s *Server) instance(w http.ResponseWriter, r *http.Request) (Catalog, bool) {
	name := r.PathValue("instance")
	inst, ok := s.instances[name]
	if !ok {
		s.writeError(w, http.StatusNotFound, "unknown instance "+strconv.Quote(name))
		return nil, false
	}
	if inst == nil {
		s.writeError(w, http.StatusServiceUnavailable, name+" catalog is unavailable")
		return nil, false
	}
	return inst, true
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

func (s *Server) snapshots(w http.ResponseWriter, r *http.Request, includeAssets bool) (target, current metamodel.MetaModel, ok bool) {
	if s.instances[InstanceSource] == nil || s.instances[InstanceDestination] == nil {
		s.writeError(w, http.StatusServiceUnavailable, "both source and destination catalogs are required")
		return target, current, false
	}
	target, err := metamodel.Load(r.Context(), s.instances[InstanceSource], includeAssets)
	if err != nil {
		s.upstreamError(w, "failed to load source meta-model", err)
		return target, current, false
	}
	current, err = metamodel.Load(r.Context(), s.instances[InstanceDestination], includeAssets)
	if err != nil {
		s.upstreamError(w, "failed to load destination meta-model", err)
		return target, current, false
	}
	return target, current, true
}

// upstreamError maps catalog failures to 502 and anything else to 500.
func (s *Server) upstreamError(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, "error", err)
	var re *catalog.RequestError
	var de *models.DecodingError
	if errors.As(err, &re) || errors.As(err, &de) {
		s.writeError(w, http.StatusBadGateway, msg)
		return
	}
	s.writeError(w, http.StatusInternalServerError, msg)
}

// writeJSON encodes v as JSON and writes it to w with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(v); encErr != nil {
		s.logger.Error("failed to encode response", "error", encErr)
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// Shutdown gracefully shuts down an http.Server with the given timeout.
// This is a convenience helper used by the serve command.
func Shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
