package entity

// Payer is the person paying for the order. The billing address placeholder
// is always instantiated and excluded from the emptiness check.
type Payer struct {
	fullName       string
	emailAddress   string
	contactPhone   string
	dniNumber      string
	billingAddress *Address
}

func NewPayer() *Payer {
	return &Payer{billingAddress: NewAddress()}
}

func (p *Payer) SetFullName(fullName string) *Payer {
	p.fullName = fullName
	return p
}

func (p *Payer) SetEmailAddress(emailAddress string) *Payer {
	p.emailAddress = emailAddress
	return p
}

func (p *Payer) SetContactPhone(contactPhone string) *Payer {
	p.contactPhone = contactPhone
	return p
}

func (p *Payer) SetDniNumber(dniNumber string) *Payer {
	p.dniNumber = dniNumber
	return p
}

func (p *Payer) SetBillingAddress(billingAddress *Address) *Payer {
	p.billingAddress = billingAddress
	return p
}

func (p *Payer) FullName() string { return p.fullName }
func (p *Payer) EmailAddress() string { return p.emailAddress }
func (p *Payer) ContactPhone() string { return p.contactPhone }
func (p *Payer) DniNumber() string { return p.dniNumber }
func (p *Payer) BillingAddress() *Address { return p.billingAddress }

func (p *Payer) IsEmpty() bool {
	return p.fullName == "" &&
		p.emailAddress == "" &&
		p.contactPhone == "" &&
		p.dniNumber == ""
}

func (p *Payer) Fields() []Pair {
	return []Pair{
		{"fullName", p.fullName},
		{"emailAddress", p.emailAddress},
		{"contactPhone", p.contactPhone},
		{"dniNumber", p.dniNumber},
	}
}
