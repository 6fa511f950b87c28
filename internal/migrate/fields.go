package migrate

import (
	"fmt"

	"github.com/LuciusCaesar/D360-Client/internal/models"
)

// CopyFields prepares fields for creation under another asset type: each copy
// points at targetAssetTypeUID and has its server-assigned Id cleared.
func CopyFields(fields []models.Field, targetAssetTypeUID string) ([]models.Field, error) {
	if targetAssetTypeUID == "" {
		return nil, fmt.Errorf("target asset type uid must not be empty")
	}
	out, err := Retarget("AssetTypeUid", targetAssetTypeUID, fields)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].ID = nil
	}
	return out, nil
}
