// Package reconcile compares two meta-model snapshots.
package reconcile

import (
	"fmt"

	"github.com/LuciusCaesar/D360-Client/internal/metamodel"
	"github.com/LuciusCaesar/D360-Client/internal/metrics"
	"github.com/LuciusCaesar/D360-Client/internal/models"
	"github.com/LuciusCaesar/D360-Client/pkg/keyset"
)

// Diff lists what must change for the current snapshot to match the target.
// Entities are matched by natural key only; a modified entity with an
// unchanged key does not appear. Ordering of each list is unspecified.
type Diff struct {
	AssetTypesToBeAdded   []models.AssetType `json:"assetTypesToBeAdded" yaml:"assetTypesToBeAdded"`
	AssetTypesToBeDeleted []models.AssetType `json:"assetTypesToBeDeleted" yaml:"assetTypesToBeDeleted"`
	// The asset lists are nil unless both snapshots carry assets.
	AssetsToBeAdded   []models.Asset `json:"assetsToBeAdded,omitempty" yaml:"assetsToBeAdded,omitempty"`
	AssetsToBeDeleted []models.Asset `json:"assetsToBeDeleted,omitempty" yaml:"assetsToBeDeleted,omitempty"`
}

// Compute diffs target against current.
func Compute(target, current metamodel.MetaModel) Diff {
	metrics.Inc(metrics.DiffsComputed)
	targetTypes, currentTypes := target.AssetTypes(), current.AssetTypes()
	d := Diff{
		AssetTypesToBeAdded:   Difference(targetTypes, currentTypes),
		AssetTypesToBeDeleted: Difference(currentTypes, targetTypes),
	}
	if target.HasAssets() && current.HasAssets() {
		targetAssets, currentAssets := target.Assets(), current.Assets()
		d.AssetsToBeAdded = Difference(targetAssets, currentAssets)
		d.AssetsToBeDeleted = Difference(currentAssets, targetAssets)
	}
	return d
}

// Difference returns the members of a whose natural key is absent from b.
// Duplicates in a are collapsed; the result is never nil.
func Difference[T models.Keyed](a, b []T) []T {
	return keyset.Of(a...).Minus(keyset.Of(b...))
}

// IsEmpty reports whether the snapshots already agree.
func (d Diff) IsEmpty() bool {
	return len(d.AssetTypesToBeAdded) == 0 && len(d.AssetTypesToBeDeleted) == 0 &&
		len(d.AssetsToBeAdded) == 0 && len(d.AssetsToBeDeleted) == 0
}

// HasAssets reports whether asset lists were computed.
func (d Diff) HasAssets() bool {
	return d.AssetsToBeAdded != nil || d.AssetsToBeDeleted != nil
}

// Summary is a one-line count of each category.
func (d Diff) Summary() string {
	s := fmt.Sprintf("asset types: +%d -%d", len(d.AssetTypesToBeAdded), len(d.AssetTypesToBeDeleted))
	if d.HasAssets() {
		s += fmt.Sprintf(", assets: +%d -%d", len(d.AssetsToBeAdded), len(d.AssetsToBeDeleted))
	}
	return s
}
