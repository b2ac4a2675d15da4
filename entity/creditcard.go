package entity

// CreditCard carries the raw card data for card payment methods. It is never
// persisted; the value lives only for the duration of the request.
type CreditCard struct {
	number         string
	securityCode   string
	expirationDate string
	name           string
}

func NewCreditCard() *CreditCard {
	return &CreditCard{}
}

func (c *CreditCard) SetNumber(number string) *CreditCard {
	c.number = number
	return c
}

func (c *CreditCard) SetSecurityCode(securityCode string) *CreditCard {
	c.securityCode = securityCode
	return c
}

// SetExpirationDate expects the gateway's "YYYY/MM" form.
func (c *CreditCard) SetExpirationDate(expirationDate string) *CreditCard {
	c.expirationDate = expirationDate
	return c
}

func (c *CreditCard) SetName(name string) *CreditCard {
	c.name = name
	return c
}

func (c *CreditCard) Number() string { return c.number }
func (c *CreditCard) SecurityCode() string { return c.securityCode }
func (c *CreditCard) ExpirationDate() string { return c.expirationDate }
func (c *CreditCard) Name() string { return c.name }

func (c *CreditCard) IsEmpty() bool {
	return c.number == "" &&
		c.securityCode == "" &&
		c.expirationDate == "" &&
		c.name == ""
}

func (c *CreditCard) Fields() []Pair {
	return []Pair{
		{"number", c.number},
		{"securityCode", c.securityCode},
		{"expirationDate", c.expirationDate},
		{"name", c.name},
	}
}
