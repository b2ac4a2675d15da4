package entity

// Buyer is the person the order is sold to. The shipping address placeholder
// is always instantiated and excluded from the emptiness check; dniNumber and
// cnpj are nullable and only reach the wire when set.
type Buyer struct {
	fullName        string
	emailAddress    string
	dniNumber       *string
	cnpj            *string
	shippingAddress *Address
}

func NewBuyer() *Buyer {
	return &Buyer{shippingAddress: NewAddress()}
}

func (b *Buyer) SetFullName(fullName string) *Buyer {
	b.fullName = fullName
	return b
}

func (b *Buyer) SetEmailAddress(emailAddress string) *Buyer {
	b.emailAddress = emailAddress
	return b
}

func (b *Buyer) SetDniNumber(dniNumber string) *Buyer {
	b.dniNumber = &dniNumber
	return b
}

// SetCnpj sets the National Registry of Legal Entities number (Brazil only).
func (b *Buyer) SetCnpj(cnpj string) *Buyer {
	b.cnpj = &cnpj
	return b
}

func (b *Buyer) SetShippingAddress(shippingAddress *Address) *Buyer {
	b.shippingAddress = shippingAddress
	return b
}

func (b *Buyer) FullName() string { return b.fullName }
func (b *Buyer) EmailAddress() string { return b.emailAddress }

func (b *Buyer) DniNumber() (string, bool) {
	if b.dniNumber == nil {
		return "", false
	}
	return *b.dniNumber, true
}

func (b *Buyer) Cnpj() (string, bool) {
	if b.cnpj == nil {
		return "", false
	}
	return *b.cnpj, true
}

func (b *Buyer) ShippingAddress() *Address { return b.shippingAddress }

func (b *Buyer) IsEmpty() bool {
	return b.fullName == "" &&
		b.emailAddress == "" &&
		b.dniNumber == nil &&
		b.cnpj == nil
}

func (b *Buyer) Fields() []Pair {
	dni, _ := b.DniNumber()
	cnpj, _ := b.Cnpj()
	return []Pair{
		{"fullName", b.fullName},
		{"emailAddress", b.emailAddress},
		{"dniNumber", dni},
		{"cnpj", cnpj},
	}
}
