package entity

// Address is a shipping or billing address. The gateway uses the same field
// set for both.
type Address struct {
	street1    string
	street2    string
	city       string
	state      string
	country    string
	postalCode string
	phone      string
}

func NewAddress() *Address {
	return &Address{}
}

func (a *Address) SetStreet1(street1 string) *Address {
	a.street1 = street1
	return a
}

func (a *Address) SetStreet2(street2 string) *Address {
	a.street2 = street2
	return a
}

func (a *Address) SetCity(city string) *Address {
	a.city = city
	return a
}

func (a *Address) SetState(state string) *Address {
	a.state = state
	return a
}

func (a *Address) SetCountry(country string) *Address {
	a.country = country
	return a
}

func (a *Address) SetPostalCode(postalCode string) *Address {
	a.postalCode = postalCode
	return a
}

func (a *Address) SetPhone(phone string) *Address {
	a.phone = phone
	return a
}

func (a *Address) Street1() string { return a.street1 }
func (a *Address) Street2() string { return a.street2 }
func (a *Address) City() string { return a.city }
func (a *Address) State() string { return a.state }
func (a *Address) Country() string { return a.country }
func (a *Address) PostalCode() string { return a.postalCode }
func (a *Address) Phone() string { return a.phone }

func (a *Address) IsEmpty() bool {
	return a.street1 == "" &&
		a.street2 == "" &&
		a.city == "" &&
		a.state == "" &&
		a.country == "" &&
		a.postalCode == "" &&
		a.phone == ""
}

func (a *Address) Fields() []Pair {
	return []Pair{
		{"street1", a.street1},
		{"street2", a.street2},
		{"city", a.city},
		{"state", a.state},
		{"country", a.country},
		{"postalCode", a.postalCode},
		{"phone", a.phone},
	}
}
