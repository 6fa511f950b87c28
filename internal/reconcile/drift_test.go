package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuciusCaesar/D360-Client/internal/metamodel"
	"github.com/LuciusCaesar/D360-Client/internal/models"
	"github.com/LuciusCaesar/D360-Client/internal/reconcile"
)

func TestDriftIgnoresInstanceIdentifiers(t *testing.T) {
	src := assetType("uid-a", "Application")
	dst := assetType("uid-bb", "Application")
	classID := int64(42)
	dst.Class.ID = &classID

	drift, err := reconcile.Drift(metamodel.New([]models.AssetType{src}), metamodel.New([]models.AssetType{dst}))
	require.NoError(t, err)
	assert.Empty(t, drift)
}

func TestDriftReportsChangedDefinition(t *testing.T) {
	src := assetType("uid-a", "Application")
	src.Hierarchical = true
	dst := assetType("uid-b", "Application")
	other := assetType("uid-c", "OnlyInTarget")

	drift, err := reconcile.Drift(
		metamodel.New([]models.AssetType{src, other}),
		metamodel.New([]models.AssetType{dst}),
	)
	require.NoError(t, err)
	require.Len(t, drift, 1)

	d := drift[0]
	assert.Equal(t, "Application", d.Name)
	assert.Equal(t, "uid-a", d.TargetUID)
	assert.Equal(t, "uid-b", d.CurrentUID)
	require.Len(t, d.Patch, 1)
	assert.Equal(t, "replace", d.Patch[0].Type)
	assert.Equal(t, "/Hierarchical", d.Patch[0].Path)
	assert.Equal(t, true, d.Patch[0].Value)
}

func TestDriftSortedByName(t *testing.T) {
	b1, b2 := assetType("1", "B"), assetType("2", "B")
	a1, a2 := assetType("3", "A"), assetType("4", "A")
	b2.Notes, a2.Notes = "changed", "changed"

	drift, err := reconcile.Drift(
		metamodel.New([]models.AssetType{b1, a1}),
		metamodel.New([]models.AssetType{b2, a2}),
	)
	require.NoError(t, err)
	require.Len(t, drift, 2)
	assert.Equal(t, "A", drift[0].Name)
	assert.Equal(t, "B", drift[1].Name)
}
