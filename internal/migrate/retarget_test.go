package migrate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LuciusCaesar/D360-Client/internal/migrate"
	"github.com/LuciusCaesar/D360-Client/internal/models"
)

func field(id int64, name, typeUID string) models.Field {
	return models.Field{
		ID:           &id,
		Name:         name,
		FriendlyName: name,
		Category:     "General",
		AssetTypeUID: typeUID,
		Type:         models.NewFieldType(models.TextAttributes{DefaultValue: "n/a"}),
	}
}

func TestRetargetByWireName(t *testing.T) {
	in := []models.Field{field(1, "Acronyms", "src"), field(2, "Owner", "src")}

	out, err := migrate.Retarget("AssetTypeUid", "dst", in)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i, f := range out {
		assert.Equal(t, "dst", f.AssetTypeUID)
		assert.Equal(t, in[i].Name, f.Name)
		assert.Equal(t, in[i].Type, f.Type)
	}
	assert.Equal(t, "src", in[0].AssetTypeUID, "input must not change")
}

func TestRetargetByGoName(t *testing.T) {
	out, err := migrate.Retarget("AssetTypeUID", "dst", []models.Field{field(1, "Acronyms", "src")})
	require.NoError(t, err)
	assert.Equal(t, "dst", out[0].AssetTypeUID)
}

func TestRetargetUnknownAttribute(t *testing.T) {
	in := []models.Field{field(1, "Acronyms", "src")}
	out, err := migrate.Retarget("Colour", "red", in)
	assert.Nil(t, out)

	var ae *migrate.AttributeError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Colour", ae.Attribute)
	assert.ErrorIs(t, err, migrate.ErrUnknownAttribute)

	_, err = migrate.Retarget("Colour", "red", []models.Field{})
	assert.ErrorIs(t, err, migrate.ErrUnknownAttribute)
}

func TestRetargetEmptyInput(t *testing.T) {
	out, err := migrate.Retarget("AssetTypeUid", "dst", []models.Field{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestRetargetRejectsWrongShape(t *testing.T) {
	_, err := migrate.Retarget("AssetTypeUid", 42, []models.Field{field(1, "Acronyms", "src")})
	var de *models.DecodingError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "AssetTypeUid", de.Field)
}

func TestRetargetRejectsNullRequired(t *testing.T) {
	_, err := migrate.Retarget("Name", nil, []models.Field{field(1, "Acronyms", "src")})
	assert.ErrorIs(t, err, models.ErrMissingField)
}

func TestRetargetAssetCustomAttribute(t *testing.T) {
	var a models.Asset
	require.NoError(t, json.Unmarshal([]byte(`{"AssetId":1,"AssetUid":"a","AssetTypeId":2,"AssetTypeUid":"t",
		"Name":"n","Path":"p","DisplayPath":"d","CreatedOn":"c","UpdatedOn":"u","Owner":"alice"}`), &a))

	out, err := migrate.Retarget("Owner", "bob", []models.Asset{a})
	require.NoError(t, err)
	assert.JSONEq(t, `"bob"`, string(out[0].Attributes["Owner"]))
	assert.JSONEq(t, `"alice"`, string(a.Attributes["Owner"]))
}

func TestRetargetNestedValue(t *testing.T) {
	types := []models.AssetType{{UID: "u", Name: "Application", Class: models.AssetClass{Value: models.AssetClassGeneric, Name: "Generic"}}}
	class := models.AssetClass{Value: models.AssetClassTechnicalAsset, Name: "Technical Asset", Description: "d", AllowCommentsOnAsset: true}

	out, err := migrate.Retarget("Class", class, types)
	require.NoError(t, err)
	assert.True(t, class.Equal(out[0].Class))
	assert.Equal(t, models.AssetClassGeneric, types[0].Class.Value)
}

func TestCopyFields(t *testing.T) {
	in := []models.Field{field(4211, "Acronyms", "src")}
	out, err := migrate.CopyFields(in, "dst")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].ID)
	assert.Equal(t, "dst", out[0].AssetTypeUID)
	require.NotNil(t, in[0].ID)

	_, err = migrate.CopyFields(in, "")
	assert.Error(t, err)
}
