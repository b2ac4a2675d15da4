package payment

// Gateway command identifiers.
const (
	CommandPing              = "PING"
	CommandGetPaymentMethods = "GET_PAYMENT_METHODS"
	CommandGetBanksList      = "GET_BANKS_LIST"
	CommandSubmitTransaction = "SUBMIT_TRANSACTION"
)

// Gateway response status codes.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
	StatusPending = "PENDING"
)

// Payment methods.
const (
	MethodVisa           = "VISA"
	MethodMastercard     = "MASTERCARD"
	MethodAmex           = "AMEX"
	MethodDiners         = "DINERS"
	MethodPSE            = "PSE"
	MethodBoletoBancario = "BOLETO_BANCARIO"
	MethodBaloto         = "BALOTO"
	MethodEfecty         = "EFECTY"
)

// Payment countries (ISO 3166-1 alpha-2).
const (
	CountryArgentina = "AR"
	CountryBrazil    = "BR"
	CountryColombia  = "CO"
	CountryMexico    = "MX"
	CountryPanama    = "PA"
	CountryPeru      = "PE"
)

// Payment currencies (ISO 4217).
const (
	CurrencyArgentina = "ARS"
	CurrencyBrazil    = "BRL"
	CurrencyColombia  = "COP"
	CurrencyMexico    = "MXN"
	CurrencyPanama    = "USD"
	CurrencyPeru      = "PEN"
)
