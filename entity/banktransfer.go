package entity

// BankTransfer holds the PSE bank-transfer fields. On the wire they travel
// as extraParameters entries under gateway-assigned names, not under the
// attribute names used here.
type BankTransfer struct {
	bank         string
	personType   string
	documentType string
	document     string
	responseURL  string
	ip           string
}

func NewBankTransfer() *BankTransfer {
	return &BankTransfer{}
}

// SetBank sets the FINANCIAL_INSTITUTION_CODE, a code from the bank list.
func (b *BankTransfer) SetBank(bank string) *BankTransfer {
	b.bank = bank
	return b
}

// SetPersonType sets the USER_TYPE: N for natural, J for juridical persons.
func (b *BankTransfer) SetPersonType(personType string) *BankTransfer {
	b.personType = personType
	return b
}

// SetDocumentType sets PSE_REFERENCE2, the identification document type.
func (b *BankTransfer) SetDocumentType(documentType string) *BankTransfer {
	b.documentType = documentType
	return b
}

// SetDocument sets PSE_REFERENCE3, the identification document number.
func (b *BankTransfer) SetDocument(document string) *BankTransfer {
	b.document = document
	return b
}

// SetResponseURL sets the RESPONSE_URL the bank redirects the client back to.
func (b *BankTransfer) SetResponseURL(responseURL string) *BankTransfer {
	b.responseURL = responseURL
	return b
}

// SetIP sets PSE_REFERENCE1, the client's IP address.
func (b *BankTransfer) SetIP(ip string) *BankTransfer {
	b.ip = ip
	return b
}

func (b *BankTransfer) Bank() string { return b.bank }
func (b *BankTransfer) PersonType() string { return b.personType }
func (b *BankTransfer) DocumentType() string { return b.documentType }
func (b *BankTransfer) Document() string { return b.document }
func (b *BankTransfer) ResponseURL() string { return b.responseURL }
func (b *BankTransfer) IP() string { return b.ip }

func (b *BankTransfer) IsEmpty() bool {
	return b.bank == "" &&
		b.personType == "" &&
		b.documentType == "" &&
		b.document == "" &&
		b.responseURL == "" &&
		b.ip == ""
}

func (b *BankTransfer) Fields() []Pair {
	return []Pair{
		{"RESPONSE_URL", b.responseURL},
		{"PSE_REFERENCE1", b.ip},
		{"FINANCIAL_INSTITUTION_CODE", b.bank},
		{"USER_TYPE", b.personType},
		{"PSE_REFERENCE2", b.documentType},
		{"PSE_REFERENCE3", b.document},
	}
}
