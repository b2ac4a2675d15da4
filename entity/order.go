package entity

// Order is the merchant's view of a sale: a unique reference code plus the
// buyer, shipping address and the amounts to charge. Nested placeholders are
// always instantiated and excluded from the emptiness check.
type Order struct {
	referenceCode    string
	description      string
	language         string
	notifyURL        string
	buyer            *Buyer
	shippingAddress  *Address
	additionalValues *AdditionalValues
}

func NewOrder() *Order {
	return &Order{
		buyer:            NewBuyer(),
		shippingAddress:  NewAddress(),
		additionalValues: NewAdditionalValues(),
	}
}

// SetReferenceCode sets the merchant-assigned order id. It must be unique
// per merchant account; the gateway rejects replays.
func (o *Order) SetReferenceCode(referenceCode string) *Order {
	o.referenceCode = referenceCode
	return o
}

func (o *Order) SetDescription(description string) *Order {
	o.description = description
	return o
}

func (o *Order) SetLanguage(language string) *Order {
	o.language = language
	return o
}

// SetNotifyURL sets the confirmation URL the gateway calls with the final
// transaction state.
func (o *Order) SetNotifyURL(notifyURL string) *Order {
	o.notifyURL = notifyURL
	return o
}

func (o *Order) SetBuyer(buyer *Buyer) *Order {
	o.buyer = buyer
	return o
}

func (o *Order) SetShippingAddress(shippingAddress *Address) *Order {
	o.shippingAddress = shippingAddress
	return o
}

func (o *Order) SetAdditionalValues(additionalValues *AdditionalValues) *Order {
	o.additionalValues = additionalValues
	return o
}

func (o *Order) ReferenceCode() string { return o.referenceCode }
func (o *Order) Description() string { return o.description }
func (o *Order) Language() string { return o.language }
func (o *Order) NotifyURL() string { return o.notifyURL }
func (o *Order) Buyer() *Buyer { return o.buyer }
func (o *Order) ShippingAddress() *Address { return o.shippingAddress }
func (o *Order) AdditionalValues() *AdditionalValues { return o.additionalValues }

func (o *Order) IsEmpty() bool {
	return o.referenceCode == "" &&
		o.description == "" &&
		o.language == "" &&
		o.notifyURL == ""
}

func (o *Order) Fields() []Pair {
	return []Pair{
		{"referenceCode", o.referenceCode},
		{"description", o.description},
		{"language", o.language},
		{"notifyUrl", o.notifyURL},
	}
}
