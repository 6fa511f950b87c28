package models

// Cardinality is the multiplicity of one side of a relationship type.
type Cardinality string

const (
	CardinalityOne  Cardinality = "One"
	CardinalityMany Cardinality = "Many"
)

// IsValid returns true if the cardinality is recognized.
func (c Cardinality) IsValid() bool {
	return c == CardinalityOne || c == CardinalityMany
}

// PredicateType groups predicates by their semantics.
type PredicateType struct {
	Type        string `json:"Type"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Predicate is the verb of a relationship, e.g. "contains" / "is contained by".
type Predicate struct {
	UID      string        `json:"Uid"`
	Name     string        `json:"Name"`
	Inverse  string        `json:"Inverse"`
	Type     PredicateType `json:"Type"`
	IsSystem bool          `json:"IsSystem"`
	IsInUse  bool          `json:"IsInUse"`
}

// NaturalKey is the predicate name.
func (p Predicate) NaturalKey() string { return p.Name }

// RelationshipType is a directed, typed association between two asset types.
type RelationshipType struct {
	ID                 int64       `json:"Id"`
	UID                string      `json:"Uid"`
	State              string      `json:"State"`
	IsSystem           bool        `json:"IsSystem"`
	Predicate          Predicate   `json:"Predicate"`
	Subject            AssetType   `json:"Subject"`
	SubjectCardinality Cardinality `json:"SubjectCardinality"`
	Object             AssetType   `json:"Object"`
	ObjectCardinality  Cardinality `json:"ObjectCardinality"`
}

// NaturalKey combines the predicate with the subject and object type names, the
// parts of a relationship type that survive a move between instances.
func (r RelationshipType) NaturalKey() string {
	return joinKey(r.Predicate.NaturalKey(), r.Subject.NaturalKey(), r.Object.NaturalKey())
}

// Equal reports whether r and o relate the same asset types by the same predicate.
func (r RelationshipType) Equal(o RelationshipType) bool { return r.NaturalKey() == o.NaturalKey() }

// Relationship links two assets through a relationship type.
type Relationship struct {
	UID              string           `json:"Uid"`
	RelationshipType RelationshipType `json:"RelationshipType"`
	State            string           `json:"State"`
	Predicate        Predicate        `json:"Predicate"`
	Subject          Asset            `json:"Subject"`
	Object           Asset            `json:"Object"`
}

// NaturalKey is the relationship UID.
func (r Relationship) NaturalKey() string { return r.UID }
