package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Field is an attribute definition attached to an asset type or relationship type.
type Field struct {
	ID                  *int64    `json:"Id,omitempty"`
	Name                string    `json:"Name"`
	FriendlyName        string    `json:"FriendlyName"`
	Category            string    `json:"Category"`
	AssetTypeUID        string    `json:"AssetTypeUid"`
	ActionTypeUID       *string   `json:"ActionTypeUid,omitempty"`
	RelationshipTypeUID *string   `json:"RelationshipTypeUid,omitempty"`
	Type                FieldType `json:"Type"`
}

var fieldRequired = []string{"Name", "FriendlyName", "Category", "AssetTypeUid", "Type"}

// NaturalKey is the owning asset type UID together with the field name.
func (f Field) NaturalKey() string { return joinKey(f.AssetTypeUID, f.Name) }

// Equal reports whether f and o name the same field of the same asset type.
func (f Field) Equal(o Field) bool { return f.NaturalKey() == o.NaturalKey() }

func (f *Field) UnmarshalJSON(data []byte) error {
	if _, err := requireKeys("Field", data, fieldRequired); err != nil {
		return err
	}
	type wire Field
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return decodeFailure("Field", "Type", err)
	}
	*f = Field(w)
	return nil
}

// FieldKind names a field type variant. It is the single key of the wire object
// carrying the variant's attributes, e.g. {"Text": {...}}.
type FieldKind string

const (
	FieldKindBoolean                           FieldKind = "Boolean"
	FieldKindComputedOwnershipLookup           FieldKind = "ComputedOwnershipLookup"
	FieldKindComputedRelationshipField         FieldKind = "ComputedRelationshipField"
	FieldKindComputedRelationshipLookup        FieldKind = "ComputedRelationshipLookup"
	FieldKindComputedRelationshipReferenceList FieldKind = "ComputedRelationshipReferenceList"
	FieldKindReferenceList                     FieldKind = "ReferenceList"
	FieldKindCounter                           FieldKind = "Counter"
	FieldKindDate                              FieldKind = "Date"
	FieldKindDateTime                          FieldKind = "DateTime"
	FieldKindDecimal                           FieldKind = "Decimal"
	FieldKindHTML                              FieldKind = "Html"
	FieldKindJSON                              FieldKind = "Json"
	FieldKindJSONElement                       FieldKind = "JsonElement"
	FieldKindLink                              FieldKind = "Link"
	FieldKindLookup                            FieldKind = "Lookup"
	FieldKindNumber                            FieldKind = "Number"
	FieldKindPath                              FieldKind = "Path"
	FieldKindRelationship                      FieldKind = "Relationship"
	FieldKindText                              FieldKind = "Text"
	FieldKindTag                               FieldKind = "Tag"
	FieldKindScore                             FieldKind = "Score"
	FieldKindSystem                            FieldKind = "System"
)

// FieldTypeAttributes is the payload of one field type variant.
type FieldTypeAttributes interface {
	Kind() FieldKind
}

// variantDecoders holds one strict decoder per known variant.
var variantDecoders = map[FieldKind]func([]byte) (FieldTypeAttributes, error){
	FieldKindBoolean:                           decodeVariant[BooleanAttributes],
	FieldKindComputedOwnershipLookup:           decodeVariant[ComputedOwnershipLookupAttributes],
	FieldKindComputedRelationshipField:         decodeVariant[ComputedRelationshipFieldAttributes],
	FieldKindComputedRelationshipLookup:        decodeVariant[ComputedRelationshipLookupAttributes],
	FieldKindComputedRelationshipReferenceList: decodeVariant[ComputedRelationshipReferenceListAttributes],
	FieldKindReferenceList:                     decodeVariant[ReferenceListAttributes],
	FieldKindCounter:                           decodeVariant[CounterAttributes],
	FieldKindDate:                              decodeVariant[DateAttributes],
	FieldKindDateTime:                          decodeVariant[DateTimeAttributes],
	FieldKindDecimal:                           decodeVariant[DecimalAttributes],
	FieldKindHTML:                              decodeVariant[HTMLAttributes],
	FieldKindJSON:                              decodeVariant[JSONAttributes],
	FieldKindJSONElement:                       decodeVariant[JSONElementAttributes],
	FieldKindLink:                              decodeVariant[LinkAttributes],
	FieldKindLookup:                            decodeVariant[LookupAttributes],
	FieldKindNumber:                            decodeVariant[NumberAttributes],
	FieldKindPath:                              decodeVariant[PathAttributes],
	FieldKindRelationship:                      decodeVariant[RelationshipAttributes],
	FieldKindText:                              decodeVariant[TextAttributes],
	FieldKindTag:                               decodeVariant[TagAttributes],
	FieldKindScore:                             decodeVariant[ScoreAttributes],
	FieldKindSystem:                            decodeVariant[SystemAttributes],
}

// IsValid returns true if the field kind is recognized.
func (k FieldKind) IsValid() bool {
	_, ok := variantDecoders[k]
	return ok
}

func decodeVariant[T FieldTypeAttributes](payload []byte) (FieldTypeAttributes, error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// FieldType is the tagged variant describing how a field is typed and displayed.
// The tag is always the payload's own Kind, so tag and payload cannot disagree.
type FieldType struct {
	attrs FieldTypeAttributes
}

// NewFieldType wraps a variant payload.
func NewFieldType(attrs FieldTypeAttributes) FieldType {
	return FieldType{attrs: attrs}
}

// Kind returns the variant tag, or "" for the zero FieldType.
func (t FieldType) Kind() FieldKind {
	if t.attrs == nil {
		return ""
	}
	return t.attrs.Kind()
}

// Attributes returns the variant payload; callers type-switch on it.
func (t FieldType) Attributes() FieldTypeAttributes { return t.attrs }

// IsZero reports whether no variant is set.
func (t FieldType) IsZero() bool { return t.attrs == nil }

func (t FieldType) MarshalJSON() ([]byte, error) {
	if t.attrs == nil {
		return []byte("null"), nil
	}
	payload, err := json.Marshal(t.attrs)
	if err != nil {
		return nil, fmt.Errorf("encoding %s field type: %w", t.attrs.Kind(), err)
	}
	return json.Marshal(map[FieldKind]json.RawMessage{t.attrs.Kind(): payload})
}

func (t *FieldType) UnmarshalJSON(data []byte) error {
	raw, err := requireKeys("FieldType", data, nil)
	if err != nil {
		return err
	}
	if len(raw) != 1 {
		return newDecodingError("FieldType", "", fmt.Errorf("expected exactly one variant key, got %d", len(raw)))
	}
	for key, payload := range raw {
		kind := FieldKind(key)
		decode, ok := variantDecoders[kind]
		if !ok {
			return newDecodingError("FieldType", key, ErrUnknownFieldKind)
		}
		if !isObject(payload) {
			return newDecodingError("FieldType", key, errors.New("variant payload must be a JSON object"))
		}
		attrs, err := decode(payload)
		if err != nil {
			return newDecodingError("FieldType", key, err)
		}
		t.attrs = attrs
	}
	return nil
}
