package reconcile

import (
	"fmt"
	"sort"

	"github.com/wI2L/jsondiff"

	"github.com/LuciusCaesar/D360-Client/internal/metamodel"
	"github.com/LuciusCaesar/D360-Client/internal/models"
)

// TypeDrift is an asset type present in both snapshots whose definition differs.
type TypeDrift struct {
	Name       string `json:"name" yaml:"name"`
	TargetUID  string `json:"targetUid" yaml:"targetUid"`
	CurrentUID string `json:"currentUid" yaml:"currentUid"`
	// Patch turns the current definition into the target one (RFC 6902).
	Patch jsondiff.Patch `json:"patch" yaml:"patch"`
}

// Drift compares asset types that share a name. Instance-assigned identifiers
// are ignored. The result is sorted by name.
func Drift(target, current metamodel.MetaModel) ([]TypeDrift, error) {
	currentByName := make(map[string]models.AssetType)
	for _, t := range current.AssetTypes() {
		if _, ok := currentByName[t.Name]; !ok {
			currentByName[t.Name] = t
		}
	}

	seen := make(map[string]bool)
	out := make([]TypeDrift, 0)
	for _, want := range target.AssetTypes() {
		if seen[want.Name] {
			continue
		}
		seen[want.Name] = true
		have, ok := currentByName[want.Name]
		if !ok {
			continue
		}
		patch, err := jsondiff.Compare(withoutInstanceIDs(have), withoutInstanceIDs(want))
		if err != nil {
			return nil, fmt.Errorf("comparing asset type %q: %w", want.Name, err)
		}
		if len(patch) == 0 {
			continue
		}
		out = append(out, TypeDrift{Name: want.Name, TargetUID: want.UID, CurrentUID: have.UID, Patch: patch})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// withoutInstanceIDs strips the identifiers each instance assigns on its own.
func withoutInstanceIDs(t models.AssetType) models.AssetType {
	t.ID = nil
	t.UID = ""
	t.Class.ID = nil
	return t
}
