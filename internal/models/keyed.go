package models

// Keyed is implemented by every catalog entity. NaturalKey returns the value that
// defines the entity's identity across catalog instances; two entities are equal
// exactly when their natural keys are equal. Server-assigned surrogate ids never
// take part in a natural key because they differ from one instance to the next.
type Keyed interface {
	NaturalKey() string
}
