// Package entity holds the value objects a payment request is assembled
// from. Entities are plain data holders: fluent setters, no cross-field
// validation. Each entity reports emptiness via IsEmpty, and flat entities
// render their attributes as an ordered list of gateway wire fields.
package entity

// Pair is a single wire field: the gateway's field name and its value.
type Pair struct {
	Key   string
	Value string
}
