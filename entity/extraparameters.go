package entity

// ExtraParameters is an open key/value mapping attached to non-PSE payment
// methods. Insertion order is preserved; Set on an existing key updates it
// in place.
type ExtraParameters struct {
	pairs []Pair
}

func NewExtraParameters() *ExtraParameters {
	return &ExtraParameters{}
}

func (e *ExtraParameters) Set(key, value string) *ExtraParameters {
	for i := range e.pairs {
		if e.pairs[i].Key == key {
			e.pairs[i].Value = value
			return e
		}
	}
	e.pairs = append(e.pairs, Pair{Key: key, Value: value})
	return e
}

func (e *ExtraParameters) Get(key string) (string, bool) {
	for _, p := range e.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func (e *ExtraParameters) IsEmpty() bool {
	return len(e.pairs) == 0
}

func (e *ExtraParameters) Fields() []Pair {
	out := make([]Pair, len(e.pairs))
	copy(out, e.pairs)
	return out
}
