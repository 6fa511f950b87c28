package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// requireKeys checks that data is a JSON object carrying every key in required
// with a non-null value, and returns the object's raw members.
func requireKeys(entity string, data []byte, required []string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newDecodingError(entity, "", fmt.Errorf("expected JSON object: %w", err))
	}
	if raw == nil {
		return nil, newDecodingError(entity, "", errors.New("expected JSON object, got null"))
	}
	for _, key := range required {
		v, ok := raw[key]
		if !ok || isNull(v) {
			return nil, newDecodingError(entity, key, ErrMissingField)
		}
	}
	return raw, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func isObject(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	return len(v) > 0 && v[0] == '{'
}

// decodeFailure turns an error from json.Unmarshal into a DecodingError for entity.
// Errors raised by a nested entity are re-rooted under nestedKey.
func decodeFailure(entity, nestedKey string, err error) *DecodingError {
	var de *DecodingError
	if errors.As(err, &de) {
		field := de.Field
		if nestedKey != "" {
			field = joinPath(nestedKey, field)
		}
		return newDecodingError(entity, field, de.Err)
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return newDecodingError(entity, ute.Field, fmt.Errorf("expected %s, got %s", ute.Type, ute.Value))
	}
	return newDecodingError(entity, "", err)
}

// WrapDecodeError reports a json.Unmarshal failure on entity, naming the
// offending wire key when the error carries one.
func WrapDecodeError(entity string, err error) *DecodingError {
	return decodeFailure(entity, "", err)
}

func joinPath(parent, child string) string {
	if child == "" {
		return parent
	}
	return parent + "." + child
}

// DecodeList decodes a JSON array into entities of type T. Decoding stops at the
// first bad item; the returned DecodingError carries that item's index.
func DecodeList[T any](entity string, data []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, newDecodingError(entity, "", fmt.Errorf("expected JSON array: %w", err))
	}
	out := make([]T, 0, len(raw))
	for i, item := range raw {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			de := decodeFailure(entity, "", err)
			de.Index = i
			return nil, de
		}
		out = append(out, v)
	}
	return out, nil
}

var wireFieldCache sync.Map // reflect.Type -> map[string]string

// WireFields maps each wire (JSON) key of struct type t to its Go field name.
// Fields promoted from embedded structs are included; fields tagged "-" are not.
func WireFields(t reflect.Type) map[string]string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := wireFieldCache.Load(t); ok {
		return cached.(map[string]string)
	}
	out := make(map[string]string)
	if t.Kind() == reflect.Struct {
		collectWireFields(t, out)
	}
	wireFieldCache.Store(t, out)
	return out
}

func collectWireFields(t reflect.Type, out map[string]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			collectWireFields(f.Type, out)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = f.Name
	}
}

// joinKey builds an unambiguous composite key from its parts.
func joinKey(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = strconv.Quote(p)
	}
	return strings.Join(quoted, "|")
}
