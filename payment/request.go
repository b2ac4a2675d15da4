package payment

import (
	"encoding/xml"
	"time"

	"payu/entity"
	"payu/signer"
)

// The assembler is a pure function from (entities, credentials, mode) to a
// request tree. Nothing here touches client state, so a failed build can
// never leak a half-populated request into the next call.

const expirationDateLayout = "2006-01-02T15:04:05"

type merchantAuth struct {
	ApiLogin string `json:"apiLogin" xml:"apiLogin"`
	ApiKey   string `json:"apiKey" xml:"apiKey"`
}

type bankListInformation struct {
	PaymentMethod  string `json:"paymentMethod"`
	PaymentCountry string `json:"paymentCountry"`
}

// commandRequest is the JSON envelope for the simple command family.
type commandRequest struct {
	Test                bool                 `json:"test"`
	Language            string               `json:"language"`
	Command             string               `json:"command"`
	Merchant            merchantAuth         `json:"merchant"`
	BankListInformation *bankListInformation `json:"bankListInformation,omitempty"`
}

// xmlSubmitRequest is the full SUBMIT_TRANSACTION document. Field order
// matches the node order the gateway expects.
type xmlSubmitRequest struct {
	XMLName     xml.Name       `xml:"request"`
	Language    string         `xml:"language"`
	Command     string         `xml:"command"`
	IsTest      bool           `xml:"isTest"`
	Merchant    merchantAuth   `xml:"merchant"`
	Transaction xmlTransaction `xml:"transaction"`
}

type xmlTransaction struct {
	Type            string             `xml:"type"`
	PaymentMethod   string             `xml:"paymentMethod"`
	PaymentCountry  string             `xml:"paymentCountry"`
	IPAddress       string             `xml:"ipAddress"`
	Cookie          string             `xml:"cookie"`
	UserAgent       string             `xml:"userAgent"`
	DeviceSessionID string             `xml:"deviceSessionId"`
	ExpirationDate  string             `xml:"expirationDate,omitempty"`
	CreditCard      *xmlCreditCard     `xml:"creditCard"`
	Payer           *xmlPayer          `xml:"payer"`
	Order           *xmlOrder          `xml:"order"`
	ExtraParameters xmlExtraParameters `xml:"extraParameters"`
}

type xmlCreditCard struct {
	Number         string `xml:"number"`
	SecurityCode   string `xml:"securityCode"`
	ExpirationDate string `xml:"expirationDate"`
	Name           string `xml:"name"`
}

type xmlPayer struct {
	FullName       string     `xml:"fullName"`
	EmailAddress   string     `xml:"emailAddress"`
	ContactPhone   string     `xml:"contactPhone"`
	DniNumber      string     `xml:"dniNumber"`
	BillingAddress xmlAddress `xml:"billingAddress"`
}

type xmlAddress struct {
	Street1    string `xml:"street1"`
	Street2    string `xml:"street2"`
	City       string `xml:"city"`
	State      string `xml:"state"`
	Country    string `xml:"country"`
	PostalCode string `xml:"postalCode"`
	Phone      string `xml:"phone"`
}

type xmlOrder struct {
	AccountID        string              `xml:"accountId"`
	ReferenceCode    string              `xml:"referenceCode"`
	Description      string              `xml:"description"`
	Language         string              `xml:"language"`
	NotifyURL        string              `xml:"notifyUrl"`
	Signature        string              `xml:"signature"`
	Buyer            *xmlBuyer           `xml:"buyer"`
	ShippingAddress  *xmlAddress         `xml:"shippingAddress"`
	AdditionalValues xmlAdditionalValues `xml:"additionalValues"`
}

type xmlBuyer struct {
	FullName        string      `xml:"fullName"`
	EmailAddress    string      `xml:"emailAddress"`
	DniNumber       string      `xml:"dniNumber,omitempty"`
	Cnpj            string      `xml:"cnpj,omitempty"`
	ShippingAddress *xmlAddress `xml:"shippingAddress"`
}

type xmlAdditionalValues struct {
	Entries []xmlAdditionalEntry `xml:"entry"`
}

type xmlAdditionalEntry struct {
	Name  string             `xml:"string"`
	Value xmlAdditionalValue `xml:"additionalValue"`
}

type xmlAdditionalValue struct {
	Currency string `xml:"currency"`
	Value    string `xml:"value"`
}

type xmlExtraParameters struct {
	Entries []xmlExtraEntry `xml:"entry"`
}

// xmlExtraEntry renders as <entry><string>KEY</string><string>VALUE</string></entry>.
type xmlExtraEntry struct {
	Strings []string `xml:"string"`
}

// xmlChildRequest is the reduced document for capture/refund/void: no payer,
// no buyer, just the parent transaction and the gateway's order id.
type xmlChildRequest struct {
	XMLName     xml.Name            `xml:"request"`
	Language    string              `xml:"language"`
	Command     string              `xml:"command"`
	IsTest      bool                `xml:"isTest"`
	Merchant    merchantAuth        `xml:"merchant"`
	Transaction xmlChildTransaction `xml:"transaction"`
}

type xmlChildTransaction struct {
	Type                string        `xml:"type"`
	ParentTransactionID string        `xml:"parentTransactionId"`
	Order               xmlChildOrder `xml:"order"`
}

type xmlChildOrder struct {
	ID string `xml:"id"`
}

func buildSubmitRequest(tx *entity.Transaction, creds *entity.Credentials, language string, isTest bool, now time.Time) (*xmlSubmitRequest, error) {
	req := &xmlSubmitRequest{
		Language: language,
		Command:  CommandSubmitTransaction,
		IsTest:   isTest,
		Merchant: merchantAuth{ApiLogin: creds.ApiLogin(), ApiKey: creds.ApiKey()},
	}

	xtx := xmlTransaction{
		Type:            string(tx.Type()),
		PaymentMethod:   tx.PaymentMethod(),
		PaymentCountry:  tx.PaymentCountry(),
		IPAddress:       tx.IPAddress(),
		Cookie:          tx.Cookie(),
		UserAgent:       tx.UserAgent(),
		DeviceSessionID: tx.DeviceSessionID(),
	}

	if days := tx.Expiration(); days > 0 {
		xtx.ExpirationDate = now.AddDate(0, 0, days).Format(expirationDateLayout)
	}

	if tx.PaymentMethod() != MethodPSE {
		if cc := tx.CreditCard(); !cc.IsEmpty() {
			xtx.CreditCard = &xmlCreditCard{
				Number:         cc.Number(),
				SecurityCode:   cc.SecurityCode(),
				ExpirationDate: cc.ExpirationDate(),
				Name:           cc.Name(),
			}
		}
	}

	if payer := tx.Payer(); !payer.IsEmpty() {
		xtx.Payer = &xmlPayer{
			FullName:       payer.FullName(),
			EmailAddress:   payer.EmailAddress(),
			ContactPhone:   payer.ContactPhone(),
			DniNumber:      payer.DniNumber(),
			BillingAddress: addressXML(payer.BillingAddress()),
		}
	}

	if order := tx.Order(); !order.IsEmpty() {
		xo, err := orderXML(order, creds)
		if err != nil {
			return nil, err
		}
		xtx.Order = xo
	}

	// PSE transactions carry the bank-transfer fields as extra parameters;
	// every other method carries the generic pairs.
	var extras []entity.Pair
	if tx.PaymentMethod() == MethodPSE {
		extras = tx.BankTransfer().Fields()
	} else {
		extras = tx.ExtraParameters().Fields()
	}
	for _, p := range extras {
		xtx.ExtraParameters.Entries = append(xtx.ExtraParameters.Entries, xmlExtraEntry{
			Strings: []string{p.Key, p.Value},
		})
	}

	req.Transaction = xtx
	return req, nil
}

func orderXML(order *entity.Order, creds *entity.Credentials) (*xmlOrder, error) {
	if order.ReferenceCode() == "" {
		return nil, validationError("order is missing a reference code")
	}
	total, ok := order.AdditionalValues().First()
	if !ok {
		return nil, validationError("order %q has no additional values to sign", order.ReferenceCode())
	}

	xo := &xmlOrder{
		AccountID:     creds.AccountID(),
		ReferenceCode: order.ReferenceCode(),
		Description:   order.Description(),
		Language:      order.Language(),
		NotifyURL:     order.NotifyURL(),
		Signature: signer.Sign(
			creds.ApiKey(),
			creds.MerchantID(),
			order.ReferenceCode(),
			total.Value.String(),
			total.Currency,
		),
	}

	if buyer := order.Buyer(); !buyer.IsEmpty() {
		xb := &xmlBuyer{
			FullName:     buyer.FullName(),
			EmailAddress: buyer.EmailAddress(),
		}
		if dni, ok := buyer.DniNumber(); ok {
			xb.DniNumber = dni
		}
		if cnpj, ok := buyer.Cnpj(); ok {
			xb.Cnpj = cnpj
		}
		xo.Buyer = xb
	}

	if shipping := order.ShippingAddress(); !shipping.IsEmpty() {
		addr := addressXML(shipping)
		xo.ShippingAddress = &addr
		// The gateway schema wants the shipping address at both the order
		// and the buyer level.
		if xo.Buyer != nil {
			buyerAddr := addr
			xo.Buyer.ShippingAddress = &buyerAddr
		}
	}

	for _, av := range order.AdditionalValues().Values() {
		xo.AdditionalValues.Entries = append(xo.AdditionalValues.Entries, xmlAdditionalEntry{
			Name: av.Name,
			Value: xmlAdditionalValue{
				Currency: av.Currency,
				Value:    av.Value.String(),
			},
		})
	}

	return xo, nil
}

func addressXML(a *entity.Address) xmlAddress {
	return xmlAddress{
		Street1:    a.Street1(),
		Street2:    a.Street2(),
		City:       a.City(),
		State:      a.State(),
		Country:    a.Country(),
		PostalCode: a.PostalCode(),
		Phone:      a.Phone(),
	}
}

func buildChildRequest(orderID, transactionID string, txType entity.TransactionType, creds *entity.Credentials, language string, isTest bool) (*xmlChildRequest, error) {
	if orderID == "" {
		return nil, validationError("%s requires the gateway order id", txType)
	}
	if transactionID == "" {
		return nil, validationError("%s requires the parent transaction id", txType)
	}
	return &xmlChildRequest{
		Language: language,
		Command:  CommandSubmitTransaction,
		IsTest:   isTest,
		Merchant: merchantAuth{ApiLogin: creds.ApiLogin(), ApiKey: creds.ApiKey()},
		Transaction: xmlChildTransaction{
			Type:                string(txType),
			ParentTransactionID: transactionID,
			Order:               xmlChildOrder{ID: orderID},
		},
	}, nil
}

func marshalRequest(req any) (string, error) {
	body, err := xml.Marshal(req)
	if err != nil {
		return "", err
	}
	return xml.Header + string(body), nil
}
