package models

// Building blocks shared by several field type variants.

// FieldDescription holds the help text shown on forms and in read-only display.
type FieldDescription struct {
	Form    string `json:"Form,omitempty"`
	Display string `json:"Display,omitempty"`
}

// SearchSettings controls how a field participates in search results.
type SearchSettings struct {
	AddToResult  bool   `json:"AddToResult"`
	Prefix       string `json:"Prefix"`
	Suffix       string `json:"Suffix"`
	DisplayOrder int    `json:"DisplayOrder"`
}

// FieldValidation carries the validation rules a variant supports. Rules a
// variant does not use are left nil.
type FieldValidation struct {
	Message       *string  `json:"Message,omitempty"`
	Pattern       *string  `json:"Pattern,omitempty"`
	MinimumLength *int     `json:"MinimumLength,omitempty"`
	MaximumLength *int     `json:"MaximumLength,omitempty"`
	Precision     *int     `json:"Precision,omitempty"`
	MinimumValue  *float64 `json:"MinimumValue,omitempty"`
	MaximumValue  *float64 `json:"MaximumValue,omitempty"`
	IsRequired    *bool    `json:"IsRequired,omitempty"`
}

// ColumnLayout positions a field in asset list tables.
type ColumnLayout struct {
	ColumnOrder     int  `json:"ColumnOrder"`
	ColumnWidth     int  `json:"ColumnWidth"`
	SortOrder       int  `json:"SortOrder"`
	SortByAscending bool `json:"SortByAscending"`
}

// ListingFlags are the display and behaviour switches of editable fields.
type ListingFlags struct {
	IsDisplayable   bool `json:"IsDisplayable"`
	IsEditable      bool `json:"IsEditable"`
	IsListable      bool `json:"IsListable"`
	IsPartOfKey     bool `json:"IsPartOfKey"`
	IsPrimaryFilter bool `json:"IsPrimaryFilter"`
	ShowIfEmpty     bool `json:"ShowIfEmpty"`
}

// Variants.

// BooleanAttributes is the payload of a yes/no field.
type BooleanAttributes struct {
	DefaultValue    bool             `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Validation      FieldValidation  `json:"Validation"`
	Search          SearchSettings   `json:"Search"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (BooleanAttributes) Kind() FieldKind { return FieldKindBoolean }

// OwnershipDefinition names the asset type and role a computed ownership lookup follows.
type OwnershipDefinition struct {
	DisplayAsList           bool   `json:"DisplayAsList"`
	DisplayAssignmentSource bool   `json:"DisplayAssignmentSource"`
	ExpandGroupMembership   bool   `json:"ExpandGroupMembership"`
	ResponsibilityType      int    `json:"ResponsibilityType"`
	ResponsibilityTypeUID   string `json:"ResponsibilityTypeUid"`
}

// ComputedOwnershipLookupAttributes is the payload of a field listing owners computed from ownership roles.
type ComputedOwnershipLookupAttributes struct {
	ColumnLayout
	Description     FieldDescription    `json:"Description"`
	Definition      OwnershipDefinition `json:"Definition"`
	IsDisplayable   bool                `json:"IsDisplayable"`
	IsListable      bool                `json:"IsListable"`
	ShowIfEmpty     bool                `json:"ShowIfEmpty"`
	HideFilter      bool                `json:"HideFilter"`
	HideFooter      bool                `json:"HideFooter"`
	HideHeader      bool                `json:"HideHeader"`
	DisplayInColumn bool                `json:"DisplayInColumn"`
}

func (ComputedOwnershipLookupAttributes) Kind() FieldKind { return FieldKindComputedOwnershipLookup }

// ComputedRelationshipFieldAttributes is the payload of a field whose value is read through a relationship.
type ComputedRelationshipFieldAttributes struct {
	ColumnLayout
	Description       FieldDescription `json:"Description"`
	IntersectTypeUID  string           `json:"IntersectTypeUid"`
	IntersectTypeName string           `json:"IntersectTypeName"`
	FieldTypeName     string           `json:"FieldTypeName"`
	IsDisplayable     bool             `json:"IsDisplayable"`
	IsListable        bool             `json:"IsListable"`
	ShowIfEmpty       bool             `json:"ShowIfEmpty"`
	IsPrimaryFilter   bool             `json:"IsPrimaryFilter"`
	Search            SearchSettings   `json:"Search"`
	DisplayInColumn   bool             `json:"DisplayInColumn"`
}

func (ComputedRelationshipFieldAttributes) Kind() FieldKind {
	return FieldKindComputedRelationshipField
}

// LookupDefinitionField is one asset type shown by a computed relationship lookup.
type LookupDefinitionField struct {
	AssetTypeUID        string `json:"AssetTypeUid"`
	FieldTypeName       string `json:"FieldTypeName"`
	Filter              string `json:"Filter"`
	OverrideDisplayName string `json:"OverrideDisplayName"`
	DisplayOrder        int    `json:"DisplayOrder"`
	SortOrder           int    `json:"SortOrder"`
	SortByAscending     bool   `json:"SortByAscending"`
	Show                bool   `json:"Show"`
	Width               int    `json:"Width"`
	RelationIndex       int    `json:"RelationIndex"`
}

// LookupRelation is one relationship hop of a computed lookup.
type LookupRelation struct {
	IntersectTypeUID string `json:"IntersectTypeUid"`
	AssetTypeUID     string `json:"AssetTypeUid"`
	RelationType     string `json:"RelationType"`
	Direction        string `json:"Direction"`
}

// LookupDefinition is the path a computed relationship lookup walks.
type LookupDefinition struct {
	Fields      []LookupDefinitionField `json:"Fields"`
	Relations   []LookupRelation        `json:"Relations"`
	Filters     string                  `json:"Filters"`
	FiltersJSON string                  `json:"FiltersJSON"`
}

// ComputedRelationshipLookupAttributes is the payload of a lookup computed from relationships.
type ComputedRelationshipLookupAttributes struct {
	ColumnOrder   int              `json:"ColumnOrder"`
	Description   FieldDescription `json:"Description"`
	Definition    LookupDefinition `json:"Definition"`
	IsDisplayable bool             `json:"IsDisplayable"`
	ShowIfEmpty   bool             `json:"ShowIfEmpty"`
	HideFilter    bool             `json:"HideFilter"`
	HideFooter    bool             `json:"HideFooter"`
	HideHeader    bool             `json:"HideHeader"`
}

func (ComputedRelationshipLookupAttributes) Kind() FieldKind {
	return FieldKindComputedRelationshipLookup
}

// ComputedRelationshipReferenceListAttributes is the payload of a reference list computed from relationships.
type ComputedRelationshipReferenceListAttributes struct {
	ColumnOrder               int              `json:"ColumnOrder"`
	Description               FieldDescription `json:"Description"`
	IntersectTypeUID          string           `json:"IntersectTypeUid"`
	IntersectTypeName         string           `json:"IntersectTypeName"`
	IsDisplayable             bool             `json:"IsDisplayable"`
	ShowIfEmpty               bool             `json:"ShowIfEmpty"`
	DisplayRefListDescription bool             `json:"DisplayRefListDescription"`
}

func (ComputedRelationshipReferenceListAttributes) Kind() FieldKind {
	return FieldKindComputedRelationshipReferenceList
}

// ReferenceListAttributes is the payload of a list of references to other assets.
type ReferenceListAttributes struct {
	ColumnLayout
	Description               FieldDescription `json:"Description"`
	IsDisplayable             bool             `json:"IsDisplayable"`
	ShowIfEmpty               bool             `json:"ShowIfEmpty"`
	DisplayRefListDescription bool             `json:"DisplayRefListDescription"`
	DisplayRefListInTable     bool             `json:"DisplayRefListInTable"`
	IsListable                bool             `json:"IsListable"`
}

func (ReferenceListAttributes) Kind() FieldKind { return FieldKindReferenceList }

// CounterAttributes is the payload of an auto-incremented counter.
type CounterAttributes struct {
	Description         FieldDescription `json:"Description"`
	Search              SearchSettings   `json:"Search"`
	CounterPrefix       string           `json:"CounterPrefix"`
	CounterInitialIndex int              `json:"CounterInitialIndex"`
	DisplayInColumn     bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (CounterAttributes) Kind() FieldKind { return FieldKindCounter }

// DateAttributes is the payload of a date field.
type DateAttributes struct {
	DefaultValue    string           `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Validation      FieldValidation  `json:"Validation"`
	Search          SearchSettings   `json:"Search"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (DateAttributes) Kind() FieldKind { return FieldKindDate }

// DateTimeAttributes is the payload of a date and time field.
type DateTimeAttributes struct {
	DefaultValue    string           `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Validation      FieldValidation  `json:"Validation"`
	Search          SearchSettings   `json:"Search"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (DateTimeAttributes) Kind() FieldKind { return FieldKindDateTime }

// DecimalAttributes is the payload of a fixed-precision decimal field.
type DecimalAttributes struct {
	DefaultValue    float64          `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Increment       float64          `json:"Increment"`
	Validation      FieldValidation  `json:"Validation"`
	Search          SearchSettings   `json:"Search"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (DecimalAttributes) Kind() FieldKind { return FieldKindDecimal }

// HTMLAttributes is the payload of a rich-text field.
type HTMLAttributes struct {
	DefaultValue    string           `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Validation      FieldValidation  `json:"Validation"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (HTMLAttributes) Kind() FieldKind { return FieldKindHTML }

// JSONAttributes is the payload of a raw JSON field.
type JSONAttributes struct {
	ColumnOrder   int              `json:"ColumnOrder"`
	Description   FieldDescription `json:"Description"`
	Validation    FieldValidation  `json:"Validation"`
	IsDisplayable bool             `json:"IsDisplayable"`
	ShowIfEmpty   bool             `json:"ShowIfEmpty"`
}

func (JSONAttributes) Kind() FieldKind { return FieldKindJSON }

// JSONAttributePath locates a value inside a JSON field.
type JSONAttributePath struct {
	FieldName string `json:"FieldName"`
	Path      string `json:"Path"`
	DataType  string `json:"DataType"`
}

// JSONElementAttributes is the payload of a field extracted from a JSON field.
type JSONElementAttributes struct {
	JSONAttribute JSONAttributePath `json:"JsonAttribute"`
	Description   FieldDescription  `json:"Description"`
	ColumnLayout
	IsDisplayable bool `json:"IsDisplayable"`
	IsListable    bool `json:"IsListable"`
	ShowIfEmpty   bool `json:"ShowIfEmpty"`
}

func (JSONElementAttributes) Kind() FieldKind { return FieldKindJSONElement }

// LinkValue is a URL with its display label.
type LinkValue struct {
	Text string `json:"Text"`
	URL  string `json:"Url"`
}

// LinkAttributes is the payload of a hyperlink field.
type LinkAttributes struct {
	DefaultValue    LinkValue        `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Validation      FieldValidation  `json:"Validation"`
	Search          SearchSettings   `json:"Search"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (LinkAttributes) Kind() FieldKind { return FieldKindLink }

// LookupFilter restricts the values a lookup offers.
type LookupFilter struct {
	FieldTypeName string `json:"FieldTypeName"`
	PredicateUID  string `json:"PredicateUid"`
	UseDirection  bool   `json:"UseDirection"`
}

// LookupFormat controls how lookup values are displayed.
type LookupFormat struct {
	Display string `json:"Display"`
	Edit    string `json:"Edit"`
}

// LookupList is the reference list a lookup draws from.
type LookupList struct {
	UID                 string `json:"Uid"`
	Class               string `json:"Class"`
	AllowMultipleValues bool   `json:"AllowMultipleValues"`
	TypeName            string `json:"TypeName"`
}

// LookupAttributes is the payload of a pick-from-list field.
type LookupAttributes struct {
	DefaultValue          string           `json:"DefaultValue"`
	DefaultFormattedValue string           `json:"DefaultFormattedValue"`
	Description           FieldDescription `json:"Description"`
	AllowAllValue         bool             `json:"AllowAllValue"`
	AllowAllLabel         string           `json:"AllowAllLabel"`
	ParentFieldTypeName   string           `json:"ParentFieldTypeName"`
	Filter                LookupFilter     `json:"Filter"`
	Format                LookupFormat     `json:"Format"`
	List                  LookupList       `json:"List"`
	Validation            FieldValidation  `json:"Validation"`
	Search                SearchSettings   `json:"Search"`
	DisplayInColumn       bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (LookupAttributes) Kind() FieldKind { return FieldKindLookup }

// NumberAttributes is the payload of an integer or floating number field.
type NumberAttributes struct {
	DefaultValue    float64          `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Increment       float64          `json:"Increment"`
	Validation      FieldValidation  `json:"Validation"`
	Search          SearchSettings   `json:"Search"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (NumberAttributes) Kind() FieldKind { return FieldKindNumber }

// PathDefinition names the asset type whose hierarchy a path field shows.
type PathDefinition struct {
	AssetTypeUID  string `json:"AssetTypeUid"`
	AssetTypeName string `json:"AssetTypeName"`
}

// PathAttributes is the payload of a hierarchy path field.
type PathAttributes struct {
	ColumnLayout
	Description     FieldDescription `json:"Description"`
	IsDisplayable   bool             `json:"IsDisplayable"`
	IsListable      bool             `json:"IsListable"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	Definition      PathDefinition   `json:"Definition"`
}

func (PathAttributes) Kind() FieldKind { return FieldKindPath }

// RelationshipAttributes is the payload of a field backed by a relationship type.
type RelationshipAttributes struct {
	Description       FieldDescription `json:"Description"`
	IntersectTypeUID  string           `json:"IntersectTypeUid"`
	IntersectTypeName string           `json:"IntersectTypeName"`
	ColumnLayout
	IsDisplayable    bool           `json:"IsDisplayable"`
	IsEditable       bool           `json:"IsEditable"`
	IsListable       bool           `json:"IsListable"`
	ShowIfEmpty      bool           `json:"ShowIfEmpty"`
	IsPrimaryFilter  bool           `json:"IsPrimaryFilter"`
	DisplayInColumn  bool           `json:"DisplayInColumn"`
	Search           SearchSettings `json:"Search"`
	UseDisplayFormat bool           `json:"UseDisplayFormat"`
	IsSubject        bool           `json:"IsSubject"`
}

func (RelationshipAttributes) Kind() FieldKind { return FieldKindRelationship }

// TextAttributes is the payload of a plain text field.
type TextAttributes struct {
	DefaultValue    string           `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Validation      FieldValidation  `json:"Validation"`
	Search          SearchSettings   `json:"Search"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (TextAttributes) Kind() FieldKind { return FieldKindText }

// TagAttributes is the payload of a tag field.
type TagAttributes struct {
	ColumnLayout
	Description     FieldDescription `json:"Description"`
	IsListable      bool             `json:"IsListable"`
	IsPrimaryFilter bool             `json:"IsPrimaryFilter"`
	TagTypeUID      string           `json:"TagTypeUID"`
	TagTypeID       int              `json:"TagTypeID"`
}

func (TagAttributes) Kind() FieldKind { return FieldKindTag }

// ScoreAttributes is the payload of a computed score.
type ScoreAttributes struct {
	ScoreType       string `json:"ScoreType"`
	IsDisplayable   bool   `json:"IsDisplayable"`
	IsListable      bool   `json:"IsListable"`
	ShowIfEmpty     bool   `json:"ShowIfEmpty"`
	IsPrimaryFilter bool   `json:"IsPrimaryFilter"`
	ColumnLayout
	Description     FieldDescription `json:"Description"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
}

func (ScoreAttributes) Kind() FieldKind { return FieldKindScore }

// SystemAttributes describe built-in fields such as Name and Description.
type SystemAttributes struct {
	DefaultValue    string           `json:"DefaultValue"`
	Description     FieldDescription `json:"Description"`
	Validation      FieldValidation  `json:"Validation"`
	Search          SearchSettings   `json:"Search"`
	DisplayInColumn bool             `json:"DisplayInColumn"`
	ColumnLayout
	ListingFlags
}

func (SystemAttributes) Kind() FieldKind { return FieldKindSystem }
