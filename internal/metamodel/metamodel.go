// Package metamodel holds point-in-time snapshots of a catalog's meta-model.
package metamodel

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/LuciusCaesar/D360-Client/internal/models"
)

// MetaModel is an immutable snapshot of one instance's asset types and,
// optionally, its assets. Accessors return copies.
type MetaModel struct {
	assetTypes  []models.AssetType
	assets      []models.Asset
	hasAssets   bool
	source      string
	retrievedAt time.Time
}

// Option configures a MetaModel at construction.
type Option func(*MetaModel)

// WithAssets attaches an asset list. An empty list is still an asset list.
func WithAssets(assets []models.Asset) Option {
	return func(m *MetaModel) {
		m.assets = cloneNonNil(assets)
		m.hasAssets = true
	}
}

// WithSource records where the snapshot was taken, usually the instance URL.
func WithSource(source string) Option {
	return func(m *MetaModel) { m.source = source }
}

// WithRetrievedAt records when the snapshot was taken.
func WithRetrievedAt(t time.Time) Option {
	return func(m *MetaModel) { m.retrievedAt = t }
}

// New builds a snapshot. The inputs are copied; duplicates are kept as given.
func New(assetTypes []models.AssetType, opts ...Option) MetaModel {
	m := MetaModel{assetTypes: cloneNonNil(assetTypes)}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// AssetTypes returns the snapshot's asset types.
func (m MetaModel) AssetTypes() []models.AssetType { return cloneNonNil(m.assetTypes) }

// Assets returns the snapshot's assets, or nil when the snapshot has none.
func (m MetaModel) Assets() []models.Asset {
	if !m.hasAssets {
		return nil
	}
	return cloneNonNil(m.assets)
}

// HasAssets reports whether the snapshot carries an asset list.
func (m MetaModel) HasAssets() bool { return m.hasAssets }

// Source returns where the snapshot was taken.
func (m MetaModel) Source() string { return m.source }

// RetrievedAt returns when the snapshot was taken.
func (m MetaModel) RetrievedAt() time.Time { return m.retrievedAt }

func cloneNonNil[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Source is anything that can list an instance's asset types and assets.
// *catalog.Client satisfies it.
type Source interface {
	AllAssetTypes(ctx context.Context) ([]models.AssetType, error)
	AllAssets(ctx context.Context) ([]models.Asset, error)
	BaseURL() string
}

// Load takes a snapshot of src. Assets are fetched only when includeAssets is set.
func Load(ctx context.Context, src Source, includeAssets bool) (MetaModel, error) {
	types, err := src.AllAssetTypes(ctx)
	if err != nil {
		return MetaModel{}, fmt.Errorf("loading asset types: %w", err)
	}
	opts := []Option{WithSource(src.BaseURL()), WithRetrievedAt(time.Now().UTC())}
	if includeAssets {
		assets, err := src.AllAssets(ctx)
		if err != nil {
			return MetaModel{}, fmt.Errorf("loading assets: %w", err)
		}
		opts = append(opts, WithAssets(assets))
	}
	return New(types, opts...), nil
}

// AssetTypeByName returns the first asset type with the given name.
func (m MetaModel) AssetTypeByName(name string) (models.AssetType, bool) {
	i := slices.IndexFunc(m.assetTypes, func(t models.AssetType) bool { return t.Name == name })
	if i < 0 {
		return models.AssetType{}, false
	}
	return m.assetTypes[i], true
}
