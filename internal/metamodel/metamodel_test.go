package metamodel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuciusCaesar/D360-Client/internal/metamodel"
	"github.com/LuciusCaesar/D360-Client/internal/models"
)

type stubSource struct {
	types      []models.AssetType
	assets     []models.Asset
	err        error
	assetCalls int
}

func (s *stubSource) AllAssetTypes(context.Context) ([]models.AssetType, error) {
	return s.types, s.err
}

func (s *stubSource) AllAssets(context.Context) ([]models.Asset, error) {
	s.assetCalls++
	return s.assets, nil
}

func (s *stubSource) BaseURL() string { return "https://tenant.example.com/api/v2" }

func TestNewCopiesInputs(t *testing.T) {
	types := []models.AssetType{{Name: "Application"}}
	m := metamodel.New(types)
	types[0].Name = "changed"
	assert.Equal(t, "Application", m.AssetTypes()[0].Name)

	out := m.AssetTypes()
	out[0].Name = "changed again"
	assert.Equal(t, "Application", m.AssetTypes()[0].Name)
}

func TestAssetsPresence(t *testing.T) {
	none := metamodel.New(nil)
	assert.False(t, none.HasAssets())
	assert.Nil(t, none.Assets())
	assert.NotNil(t, none.AssetTypes())

	empty := metamodel.New(nil, metamodel.WithAssets(nil))
	assert.True(t, empty.HasAssets())
	assert.NotNil(t, empty.Assets())
	assert.Empty(t, empty.Assets())
}

func TestDuplicatesPassThrough(t *testing.T) {
	m := metamodel.New([]models.AssetType{{Name: "A"}, {Name: "A"}})
	assert.Len(t, m.AssetTypes(), 2)
}

func TestMetadata(t *testing.T) {
	at := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	m := metamodel.New(nil, metamodel.WithSource("src"), metamodel.WithRetrievedAt(at))
	assert.Equal(t, "src", m.Source())
	assert.Equal(t, at, m.RetrievedAt())
}

func TestAssetTypeByName(t *testing.T) {
	m := metamodel.New([]models.AssetType{{UID: "1", Name: "A"}, {UID: "2", Name: "B"}})
	got, ok := m.AssetTypeByName("B")
	require.True(t, ok)
	assert.Equal(t, "2", got.UID)
	_, ok = m.AssetTypeByName("C")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	src := &stubSource{
		types:  []models.AssetType{{Name: "Application"}},
		assets: []models.Asset{{AssetUID: "a1"}},
	}

	m, err := metamodel.Load(context.Background(), src, false)
	require.NoError(t, err)
	assert.False(t, m.HasAssets())
	assert.Zero(t, src.assetCalls)
	assert.Equal(t, src.BaseURL(), m.Source())
	assert.False(t, m.RetrievedAt().IsZero())

	m, err = metamodel.Load(context.Background(), src, true)
	require.NoError(t, err)
	assert.True(t, m.HasAssets())
	assert.Len(t, m.Assets(), 1)
}

func TestLoadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := metamodel.Load(context.Background(), &stubSource{err: boom}, true)
	assert.ErrorIs(t, err, boom)
}
