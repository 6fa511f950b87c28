// Package migrate prepares catalog entities for copying between instances.
package migrate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/LuciusCaesar/D360-Client/internal/models"
)

// ErrUnknownAttribute is wrapped by AttributeError.
var ErrUnknownAttribute = errors.New("unknown attribute")

// AttributeError reports an attribute name that does not exist on the entity type.
type AttributeError struct {
	Attribute string
	Type      string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute %q does not exist on %s", e.Attribute, e.Type)
}

func (e *AttributeError) Unwrap() error { return ErrUnknownAttribute }

// Retarget returns copies of entities with attribute set to value. attribute is
// either the wire name ("AssetTypeUid") or the Go field name ("AssetTypeUID").
// Each copy is re-encoded and passed back through the entity's decoder, so a
// value of the wrong shape is rejected. The inputs are not modified.
func Retarget[T any](attribute string, value any, entities []T) ([]T, error) {
	typ := reflect.TypeFor[T]()
	shape := models.WireFields(typ)
	key, known := resolve(attribute, shape)

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encoding value for %s: %w", attribute, err)
	}
	patch, err := addPatch(key, raw)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(entities))
	for i, e := range entities {
		doc, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("encoding %s at index %d: %w", typ.Name(), i, err)
		}
		if !known && !hasKey(doc, key) {
			return nil, &AttributeError{Attribute: attribute, Type: typ.String()}
		}
		patched, err := patch.Apply(doc)
		if err != nil {
			return nil, fmt.Errorf("patching %s at index %d: %w", typ.Name(), i, err)
		}
		var v T
		if err := json.Unmarshal(patched, &v); err != nil {
			return nil, fmt.Errorf("setting %s on %s at index %d: %w", attribute, typ.Name(), i, err)
		}
		out = append(out, v)
	}
	if !known && len(entities) == 0 {
		return nil, &AttributeError{Attribute: attribute, Type: typ.String()}
	}
	return out, nil
}

// resolve maps attribute to its wire key and reports whether T declares it.
func resolve(attribute string, shape map[string]string) (string, bool) {
	if _, ok := shape[attribute]; ok {
		return attribute, true
	}
	for wire, goName := range shape {
		if goName == attribute {
			return wire, true
		}
	}
	return attribute, false
}

func hasKey(doc []byte, key string) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(doc, &obj); err != nil {
		return false
	}
	_, ok := obj[key]
	return ok
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// addPatch builds a single-operation JSON Patch setting /key to value.
func addPatch(key string, value json.RawMessage) (jsonpatch.Patch, error) {
	ops := []map[string]any{{
		"op":    "add",
		"path":  "/" + pointerEscaper.Replace(key),
		"value": value,
	}}
	doc, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("encoding patch: %w", err)
	}
	patch, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	return patch, nil
}
