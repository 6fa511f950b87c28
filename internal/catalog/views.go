package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/LuciusCaesar/D360-Client/internal/metrics"
	"github.com/LuciusCaesar/D360-Client/internal/models"
)

// memo holds a whole-catalog view once it has been computed successfully.
type memo[T any] struct {
	mu    sync.Mutex
	done  bool
	value []T
}

func (m *memo[T]) load() ([]T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.done
}

func (m *memo[T]) store(v []T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.done {
		m.value, m.done = v, true
	}
}

// cached returns the memoised view, computing it at most once per client.
// Concurrent callers share a single computation that outlives any one caller's
// cancellation; each caller still returns as soon as its own ctx is done.
// Failures are not cached.
func cached[T any](ctx context.Context, c *Client, key string, m *memo[T], compute func(context.Context) ([]T, error)) ([]T, error) {
	if v, ok := m.load(); ok {
		metrics.Inc(metrics.CacheHits)
		return slices.Clone(v), nil
	}
	metrics.Inc(metrics.CacheMisses)
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if v, ok := m.load(); ok {
			return v, nil
		}
		v, err := compute(shared)
		if err != nil {
			return nil, err
		}
		m.store(v)
		return v, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]T)), nil
	}
}

// AllAssetTypes returns every asset type of the instance.
func (c *Client) AllAssetTypes(ctx context.Context) ([]models.AssetType, error) {
	return cached(ctx, c, "asset_types", &c.assetTypes, func(ctx context.Context) ([]models.AssetType, error) {
		return c.GetAssetTypes(ctx, nil)
	})
}

// skipAssets reports whether assets of t are left out of AllAssets.
// User and Group assets are directory entries, not governed content.
func skipAssets(t models.AssetType) bool {
	return t.Class.Value == models.AssetClassUser || t.Class.Value == models.AssetClassGroup
}

// AllAssets returns the assets of every asset type, except User and Group types.
func (c *Client) AllAssets(ctx context.Context) ([]models.Asset, error) {
	return cached(ctx, c, "assets", &c.assets, func(ctx context.Context) ([]models.Asset, error) {
		types, err := c.AllAssetTypes(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.Asset, 0)
		for _, t := range types {
			if skipAssets(t) {
				c.logger.Warn("skipping assets of asset type", "asset_type", t.Name, "uid", t.UID, "class", t.Class.Value)
				continue
			}
			assets, err := c.GetAssetsByAssetType(ctx, t)
			if err != nil {
				return nil, fmt.Errorf("loading assets of %q: %w", t.Name, err)
			}
			out = append(out, assets...)
		}
		return out, nil
	})
}

// AllFields returns the fields of every asset type.
func (c *Client) AllFields(ctx context.Context) ([]models.Field, error) {
	return cached(ctx, c, "fields", &c.fields, func(ctx context.Context) ([]models.Field, error) {
		types, err := c.AllAssetTypes(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.Field, 0)
		for _, t := range types {
			fields, err := c.GetFieldsForAssetType(ctx, t)
			if err != nil {
				return nil, fmt.Errorf("loading fields of %q: %w", t.Name, err)
			}
			out = append(out, fields...)
		}
		return out, nil
	})
}
