package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// AssetClassName is one of the catalog's fixed asset categories.
type AssetClassName string

const (
	AssetClassGeneric           AssetClassName = "Generic"
	AssetClassBusinessAsset     AssetClassName = "BusinessAsset"
	AssetClassModel             AssetClassName = "Model"
	AssetClassPolicy            AssetClassName = "Policy"
	AssetClassRule              AssetClassName = "Rule"
	AssetClassTechnicalAsset    AssetClassName = "TechnicalAsset"
	AssetClassReference         AssetClassName = "Reference"
	AssetClassUser              AssetClassName = "User"
	AssetClassGroup             AssetClassName = "Group"
	AssetClassReferenceItemType AssetClassName = "ReferenceItemType"
	AssetClassDiagram           AssetClassName = "Diagram"
	AssetClassMetricAllocation  AssetClassName = "MetricAllocation"
	AssetClassPredicate         AssetClassName = "Predicate"
	AssetClassSemanticType      AssetClassName = "SemanticType"
	AssetClassGlossary          AssetClassName = "Glossary"
)

// ValidAssetClassNames is the set of all known asset classes.
var ValidAssetClassNames = []AssetClassName{
	AssetClassGeneric,
	AssetClassBusinessAsset,
	AssetClassModel,
	AssetClassPolicy,
	AssetClassRule,
	AssetClassTechnicalAsset,
	AssetClassReference,
	AssetClassUser,
	AssetClassGroup,
	AssetClassReferenceItemType,
	AssetClassDiagram,
	AssetClassMetricAllocation,
	AssetClassPredicate,
	AssetClassSemanticType,
	AssetClassGlossary,
}

// IsValid returns true if the asset class name is recognized.
func (n AssetClassName) IsValid() bool {
	for _, v := range ValidAssetClassNames {
		if n == v {
			return true
		}
	}
	return false
}

// ParseAssetClassName validates s as an asset class name.
func ParseAssetClassName(s string) (AssetClassName, error) {
	n := AssetClassName(s)
	if !n.IsValid() {
		return "", fmt.Errorf("unknown asset class %q", s)
	}
	return n, nil
}

// AssetClass describes a catalog category. The server-assigned ID is carried for
// round-tripping but is not part of the class's identity.
type AssetClass struct {
	ID                   *int64         `json:"ID,omitempty"`
	Value                AssetClassName `json:"Value"`
	Name                 string         `json:"Name"`
	Description          string         `json:"Description"`
	AllowCommentsOnAsset bool           `json:"AllowCommentsOnAsset"`
}

var assetClassRequired = []string{"Value", "Name", "Description", "AllowCommentsOnAsset"}

// NaturalKey covers every semantic field except ID.
func (c AssetClass) NaturalKey() string {
	return joinKey(string(c.Value), c.Name, c.Description, strconv.FormatBool(c.AllowCommentsOnAsset))
}

// Equal reports whether c and o have the same semantic content.
func (c AssetClass) Equal(o AssetClass) bool { return c.NaturalKey() == o.NaturalKey() }

func (c *AssetClass) UnmarshalJSON(data []byte) error {
	if _, err := requireKeys("AssetClass", data, assetClassRequired); err != nil {
		return err
	}
	type wire AssetClass
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return decodeFailure("AssetClass", "", err)
	}
	*c = AssetClass(w)
	return nil
}

// AssetType is a user-defined kind of asset within an asset class.
// Its identity across instances is its Name: UID and ID are assigned per instance.
type AssetType struct {
	ID                            *int64         `json:"Id,omitempty"`
	UID                           string         `json:"Uid"`
	Name                          string         `json:"Name"`
	Class                         AssetClass     `json:"Class"`
	Description                   string         `json:"Description"`
	AutoDisplayDescription        bool           `json:"AutoDisplayDescription"`
	Hierarchical                  bool           `json:"Hierarchical"`
	HierarchyMaximumDepth         int            `json:"HierarchyMaximumDepth"`
	DisplayFormat                 string         `json:"DisplayFormat"`
	Notes                         string         `json:"Notes"`
	UseAsTransformation           bool           `json:"UseAsTransformation"`
	CanOwnFusion                  bool           `json:"CanOwnFusion"`
	Path                          string         `json:"Path"`
	CanEditParent                 bool           `json:"CanEditParent"`
	IsDescriptionEnabled          bool           `json:"IsDescriptionEnabled"`
	IsDescriptionVisibleByDefault bool           `json:"IsDescriptionVisibleByDefault"`
	IsDefaultReadAccessEnabled    bool           `json:"IsDefaultReadAccessEnabled"`
	IconStyle                     map[string]any `json:"IconStyle,omitempty"`
	FlowObjectType                *string        `json:"FlowObjectType,omitempty"`
	AutoDisplayParent             *bool          `json:"AutoDisplayParent,omitempty"`
	DescriptionButtonName         *string        `json:"DescriptionButtonName,omitempty"`
}

var assetTypeRequired = []string{
	"Uid", "Name", "Class", "Description", "AutoDisplayDescription", "Hierarchical",
	"HierarchyMaximumDepth", "DisplayFormat", "Notes", "UseAsTransformation",
	"CanOwnFusion", "Path", "CanEditParent", "IsDescriptionEnabled",
	"IsDescriptionVisibleByDefault", "IsDefaultReadAccessEnabled",
}

// NaturalKey is the asset type name.
func (t AssetType) NaturalKey() string { return t.Name }

// Equal reports whether t and o have the same name. Other attributes are ignored.
func (t AssetType) Equal(o AssetType) bool { return t.NaturalKey() == o.NaturalKey() }

func (t *AssetType) UnmarshalJSON(data []byte) error {
	if _, err := requireKeys("AssetType", data, assetTypeRequired); err != nil {
		return err
	}
	type wire AssetType
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return decodeFailure("AssetType", "Class", err)
	}
	*t = AssetType(w)
	return nil
}

// Asset is a single catalog item of some asset type. Attributes holds the
// type-specific custom attributes the model does not name, keyed by wire name.
type Asset struct {
	AssetID                int64   `json:"AssetId"`
	AssetUID               string  `json:"AssetUid"`
	AssetTypeID            int64   `json:"AssetTypeId"`
	AssetTypeUID           string  `json:"AssetTypeUid"`
	Name                   string  `json:"Name"`
	Path                   string  `json:"Path"`
	DisplayPath            string  `json:"DisplayPath"`
	CreatedOn              string  `json:"CreatedOn"`
	UpdatedOn              string  `json:"UpdatedOn"`
	XrefID                 *string `json:"XrefId,omitempty"`
	Color                  *string `json:"Color,omitempty"`
	BusinessTerm           *string `json:"BusinessTerm,omitempty"`
	DataPoint              *string `json:"DataPoint,omitempty"`
	BusinessTermDefinition *string `json:"BusinessTermDefinition,omitempty"`
	DataPointDefinition    *string `json:"DataPointDefinition,omitempty"`
	Key                    *string `json:"Key,omitempty"`
	DataPrivacyType        *string `json:"DataPrivacyType,omitempty"`
	Integrity              *string `json:"Integrity,omitempty"`
	Confidentiality        *string `json:"Confidentiality,omitempty"`
	QltyScore              *string `json:"QltyScore,omitempty"`
	Critical               *string `json:"Critical,omitempty"`
	GovernanceScore        *string `json:"GovernanceScore,omitempty"`
	SuggestedCritical      *string `json:"SuggestedCritical,omitempty"`
	DataClassifiedBy       *string `json:"DataClassifiedBy,omitempty"`

	Attributes map[string]json.RawMessage `json:"-"`
}

var assetRequired = []string{
	"AssetId", "AssetUid", "AssetTypeId", "AssetTypeUid", "Name",
	"Path", "DisplayPath", "CreatedOn", "UpdatedOn",
}

// NaturalKey is the asset UID.
func (a Asset) NaturalKey() string { return a.AssetUID }

// Equal reports whether a and o share the same asset UID.
func (a Asset) Equal(o Asset) bool { return a.NaturalKey() == o.NaturalKey() }

func (a *Asset) UnmarshalJSON(data []byte) error {
	raw, err := requireKeys("Asset", data, assetRequired)
	if err != nil {
		return err
	}
	type wire Asset
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return decodeFailure("Asset", "", err)
	}
	known := WireFields(reflect.TypeOf(w))
	for k, v := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		if w.Attributes == nil {
			w.Attributes = make(map[string]json.RawMessage)
		}
		w.Attributes[k] = v
	}
	*a = Asset(w)
	return nil
}

func (a Asset) MarshalJSON() ([]byte, error) {
	type wire Asset
	base, err := json.Marshal(wire(a))
	if err != nil || len(a.Attributes) == 0 {
		return base, err
	}
	merged := make(map[string]json.RawMessage, len(a.Attributes)+16)
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range a.Attributes {
		if _, ok := merged[k]; !ok {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
