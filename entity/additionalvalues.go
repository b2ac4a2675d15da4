package entity

import "github.com/shopspring/decimal"

// AdditionalValue is a named amount attached to an order, for example
// TX_VALUE or TX_TAX.
type AdditionalValue struct {
	Name     string
	Value    decimal.Decimal
	Currency string
}

// AdditionalValues is the ordered list of amounts on an order. By gateway
// convention index 0 holds the transaction total and is the amount used for
// signing.
type AdditionalValues struct {
	values []AdditionalValue
}

func NewAdditionalValues() *AdditionalValues {
	return &AdditionalValues{}
}

func (a *AdditionalValues) Add(name string, value decimal.Decimal, currency string) *AdditionalValues {
	a.values = append(a.values, AdditionalValue{Name: name, Value: value, Currency: currency})
	return a
}

// First returns the signing amount, the entry at index 0.
func (a *AdditionalValues) First() (AdditionalValue, bool) {
	if len(a.values) == 0 {
		return AdditionalValue{}, false
	}
	return a.values[0], true
}

func (a *AdditionalValues) IsEmpty() bool {
	return len(a.values) == 0
}

func (a *AdditionalValues) Values() []AdditionalValue {
	out := make([]AdditionalValue, len(a.values))
	copy(out, a.values)
	return out
}
