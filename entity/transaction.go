package entity

// TransactionType is the gateway's transaction type identifier.
type TransactionType string

const (
	TypeAuthorization           TransactionType = "AUTHORIZATION"
	TypeAuthorizationAndCapture TransactionType = "AUTHORIZATION_AND_CAPTURE"
	TypeCapture                 TransactionType = "CAPTURE"
	TypeRefund                  TransactionType = "REFUND"
	TypeVoid                    TransactionType = "VOID"
)

// Transaction is the full payment attempt submitted to the gateway. Nested
// placeholders are always instantiated and excluded from the emptiness
// check. BankTransfer and ExtraParameters are mutually exclusive on the
// wire: PSE transactions serialize the bank-transfer fields, every other
// payment method serializes the generic extra parameters.
type Transaction struct {
	txType          TransactionType
	paymentMethod   string
	paymentCountry  string
	ipAddress       string
	cookie          string
	userAgent       string
	deviceSessionID string
	expiration      int
	creditCard      *CreditCard
	payer           *Payer
	order           *Order
	extraParameters *ExtraParameters
	bankTransfer    *BankTransfer
}

func NewTransaction() *Transaction {
	return &Transaction{
		creditCard:      NewCreditCard(),
		payer:           NewPayer(),
		order:           NewOrder(),
		extraParameters: NewExtraParameters(),
		bankTransfer:    NewBankTransfer(),
	}
}

func (t *Transaction) SetType(txType TransactionType) *Transaction {
	t.txType = txType
	return t
}

func (t *Transaction) SetPaymentMethod(paymentMethod string) *Transaction {
	t.paymentMethod = paymentMethod
	return t
}

func (t *Transaction) SetPaymentCountry(paymentCountry string) *Transaction {
	t.paymentCountry = paymentCountry
	return t
}

func (t *Transaction) SetIPAddress(ipAddress string) *Transaction {
	t.ipAddress = ipAddress
	return t
}

func (t *Transaction) SetCookie(cookie string) *Transaction {
	t.cookie = cookie
	return t
}

func (t *Transaction) SetUserAgent(userAgent string) *Transaction {
	t.userAgent = userAgent
	return t
}

func (t *Transaction) SetDeviceSessionID(deviceSessionID string) *Transaction {
	t.deviceSessionID = deviceSessionID
	return t
}

// SetExpiration sets the payment window in days. A value above zero emits an
// expirationDate node; cash collections require it.
func (t *Transaction) SetExpiration(days int) *Transaction {
	t.expiration = days
	return t
}

func (t *Transaction) SetCreditCard(creditCard *CreditCard) *Transaction {
	t.creditCard = creditCard
	return t
}

func (t *Transaction) SetPayer(payer *Payer) *Transaction {
	t.payer = payer
	return t
}

func (t *Transaction) SetOrder(order *Order) *Transaction {
	t.order = order
	return t
}

func (t *Transaction) SetExtraParameters(extraParameters *ExtraParameters) *Transaction {
	t.extraParameters = extraParameters
	return t
}

func (t *Transaction) SetBankTransfer(bankTransfer *BankTransfer) *Transaction {
	t.bankTransfer = bankTransfer
	return t
}

func (t *Transaction) Type() TransactionType { return t.txType }
func (t *Transaction) PaymentMethod() string { return t.paymentMethod }
func (t *Transaction) PaymentCountry() string { return t.paymentCountry }
func (t *Transaction) IPAddress() string { return t.ipAddress }
func (t *Transaction) Cookie() string { return t.cookie }
func (t *Transaction) UserAgent() string { return t.userAgent }
func (t *Transaction) DeviceSessionID() string { return t.deviceSessionID }
func (t *Transaction) Expiration() int { return t.expiration }
func (t *Transaction) CreditCard() *CreditCard { return t.creditCard }
func (t *Transaction) Payer() *Payer { return t.payer }
func (t *Transaction) Order() *Order { return t.order }
func (t *Transaction) ExtraParameters() *ExtraParameters { return t.extraParameters }
func (t *Transaction) BankTransfer() *BankTransfer { return t.bankTransfer }

func (t *Transaction) IsEmpty() bool {
	return t.txType == "" &&
		t.paymentMethod == "" &&
		t.paymentCountry == "" &&
		t.ipAddress == "" &&
		t.cookie == "" &&
		t.userAgent == "" &&
		t.deviceSessionID == "" &&
		t.expiration == 0
}
