package payment

import (
	"encoding/json"
	"encoding/xml"
)

// baseResponse is the envelope shared by every JSON command response.
type baseResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (r *baseResponse) status() (code, message string) {
	return r.Code, r.Error
}

type pingResponse struct {
	baseResponse
}

// PaymentMethod is one payment method enabled for the merchant account.
type PaymentMethod struct {
	ID          json.Number `json:"id"`
	Description string      `json:"description"`
	Country     string      `json:"country"`
}

type paymentMethodsResponse struct {
	baseResponse
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
}

// Bank is one PSE financial institution. PseCode is the value a bank
// transfer's FINANCIAL_INSTITUTION_CODE field expects.
type Bank struct {
	ID          json.Number `json:"id"`
	Description string      `json:"description"`
	PseCode     string      `json:"pseCode"`
}

type banksResponse struct {
	baseResponse
	Banks []Bank `json:"banks"`
}

// PaymentResponse is the parsed result of a SUBMIT_TRANSACTION call. Code is
// the request-level status; the transaction outcome (approved, declined,
// pending) lives in TransactionResponse.State.
type PaymentResponse struct {
	XMLName             xml.Name             `xml:"paymentResponse"`
	Code                string               `xml:"code"`
	Error               string               `xml:"error"`
	TransactionResponse *TransactionResponse `xml:"transactionResponse"`
}

// TransactionResponse is the gateway's verdict on a submitted transaction.
type TransactionResponse struct {
	OrderID                    string                  `xml:"orderId"`
	TransactionID              string                  `xml:"transactionId"`
	State                      string                  `xml:"state"`
	PaymentNetworkResponseCode string                  `xml:"paymentNetworkResponseCode"`
	TrazabilityCode            string                  `xml:"trazabilityCode"`
	AuthorizationCode          string                  `xml:"authorizationCode"`
	PendingReason              string                  `xml:"pendingReason"`
	ResponseCode               string                  `xml:"responseCode"`
	ErrorCode                  string                  `xml:"errorCode"`
	ResponseMessage            string                  `xml:"responseMessage"`
	OperationDate              string                  `xml:"operationDate"`
	ExtraParameters            responseExtraParameters `xml:"extraParameters"`
}

// ExtraParameter returns a response extra parameter by name, for example the
// BANK_URL a PSE payer must be redirected to.
func (r *TransactionResponse) ExtraParameter(key string) (string, bool) {
	for _, e := range r.ExtraParameters.Entries {
		if len(e.Strings) == 2 && e.Strings[0] == key {
			return e.Strings[1], true
		}
	}
	return "", false
}

type responseExtraParameters struct {
	Entries []responseEntry `xml:"entry"`
}

type responseEntry struct {
	Strings []string `xml:"string"`
}
