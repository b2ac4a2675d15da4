package payment

import (
	"strings"
	"testing"
	"time"

	"payu/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testCredentials = entity.NewCredentials("pRRXKOl8ikMmt9u", "4Vj8eK4rloUd272L48hsrarnUA", "509029", "512321")

func testOrder() *entity.Order {
	order := entity.NewOrder().
		SetReferenceCode("TestPayU").
		SetDescription("test order").
		SetLanguage("es").
		SetNotifyURL("http://example.com/confirm")
	order.AdditionalValues().Add("TX_VALUE", decimal.NewFromInt(30000), "COP")
	return order
}

func buildXML(t *testing.T, tx *entity.Transaction) string {
	t.Helper()
	req, err := buildSubmitRequest(tx, testCredentials, "en", true, time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	payload, err := marshalRequest(req)
	require.NoError(t, err)
	return payload
}

func TestSubmitRequest_NodeOrder(t *testing.T) {
	tx := entity.NewTransaction().
		SetPaymentMethod(MethodVisa).
		SetPaymentCountry(CountryColombia).
		SetIPAddress("127.0.0.1").
		SetCookie("pt1t38347bs6jc9ruv2ecpv7o2").
		SetUserAgent("Mozilla/5.0").
		SetDeviceSessionID("vghs6tvkcle931686k1900o6e1")
	tx.SetType(entity.TypeAuthorization)
	tx.SetOrder(testOrder())

	payload := buildXML(t, tx)

	nodes := []string{
		"<language>en</language>",
		"<command>SUBMIT_TRANSACTION</command>",
		"<isTest>true</isTest>",
		"<apiLogin>pRRXKOl8ikMmt9u</apiLogin>",
		"<apiKey>4Vj8eK4rloUd272L48hsrarnUA</apiKey>",
		"<type>AUTHORIZATION</type>",
		"<paymentMethod>VISA</paymentMethod>",
		"<paymentCountry>CO</paymentCountry>",
		"<ipAddress>127.0.0.1</ipAddress>",
		"<cookie>pt1t38347bs6jc9ruv2ecpv7o2</cookie>",
		"<userAgent>Mozilla/5.0</userAgent>",
		"<deviceSessionId>vghs6tvkcle931686k1900o6e1</deviceSessionId>",
		"<accountId>512321</accountId>",
		"<referenceCode>TestPayU</referenceCode>",
		"<notifyUrl>http://example.com/confirm</notifyUrl>",
		"<signature>",
		"<additionalValues>",
		"<extraParameters>",
	}
	last := -1
	for _, node := range nodes {
		idx := strings.Index(payload, node)
		require.Greaterf(t, idx, last, "node %s out of order in:\n%s", node, payload)
		last = idx
	}
}

func TestSubmitRequest_Signature(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
	tx.SetOrder(testOrder())

	payload := buildXML(t, tx)

	require.Contains(t, payload, "<signature>332826df3772a170dd87cc46a2741023e9290461</signature>")
}

func TestSubmitRequest_PSE(t *testing.T) {
	tx := entity.NewTransaction().
		SetPaymentMethod(MethodPSE).
		SetPaymentCountry(CountryColombia).
		SetIPAddress("127.0.0.1")
	tx.SetOrder(testOrder())
	// A populated card must stay off the wire for PSE.
	tx.CreditCard().SetNumber("4097440000000004").SetSecurityCode("321").SetExpirationDate("2030/02").SetName("APPROVED")
	tx.BankTransfer().
		SetBank("1007").
		SetPersonType("N").
		SetDocumentType("CC").
		SetDocument("5415668464654").
		SetResponseURL("http://www.payu.com.co/respuestaPse.html").
		SetIP("127.0.0.1")

	payload := buildXML(t, tx)

	require.NotContains(t, payload, "<creditCard>")
	for _, field := range []string{
		"<string>RESPONSE_URL</string>",
		"<string>PSE_REFERENCE1</string>",
		"<string>FINANCIAL_INSTITUTION_CODE</string>",
		"<string>USER_TYPE</string>",
		"<string>PSE_REFERENCE2</string>",
		"<string>PSE_REFERENCE3</string>",
	} {
		require.Contains(t, payload, field)
	}
	require.Contains(t, payload, "<string>FINANCIAL_INSTITUTION_CODE</string><string>1007</string>")
}

func TestSubmitRequest_CreditCardForNonPSE(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
	tx.SetOrder(testOrder())
	tx.CreditCard().SetNumber("4097440000000004").SetSecurityCode("321").SetExpirationDate("2030/02").SetName("APPROVED")

	payload := buildXML(t, tx)

	require.Contains(t, payload, "<creditCard><number>4097440000000004</number><securityCode>321</securityCode><expirationDate>2030/02</expirationDate><name>APPROVED</name></creditCard>")
}

func TestSubmitRequest_EmptyPayerAndOrderOmitted(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa).SetIPAddress("127.0.0.1")

	payload := buildXML(t, tx)

	require.NotContains(t, payload, "<payer>")
	require.NotContains(t, payload, "<order>")
	require.NotContains(t, payload, "<buyer>")
	require.NotContains(t, payload, "<signature>")
}

func TestSubmitRequest_EmptyCardOmitted(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
	tx.SetOrder(testOrder())

	payload := buildXML(t, tx)

	require.NotContains(t, payload, "<creditCard>")
}

func TestSubmitRequest_ExpirationDate(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodBaloto).SetExpiration(4)
	tx.SetOrder(testOrder())

	payload := buildXML(t, tx)

	require.Contains(t, payload, "<expirationDate>2026-09-02T10:00:00</expirationDate>")
}

func TestSubmitRequest_NoExpirationDateWhenUnset(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
	tx.SetOrder(testOrder())

	require.NotContains(t, buildXML(t, tx), "<expirationDate>")
}

func TestSubmitRequest_ShippingAddressDuplicatedUnderBuyer(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
	order := testOrder()
	order.Buyer().SetFullName("First Last").SetEmailAddress("buyer@example.com")
	order.ShippingAddress().SetStreet1("Calle 93 B 17 – 25").SetCity("Bogotá").SetCountry("CO")
	tx.SetOrder(order)

	payload := buildXML(t, tx)

	require.Equal(t, 2, strings.Count(payload, "<shippingAddress>"))
	require.Equal(t, 2, strings.Count(payload, "<street1>Calle 93 B 17 – 25</street1>"))
}

func TestSubmitRequest_NoShippingAddressWhenEmpty(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
	order := testOrder()
	order.Buyer().SetFullName("First Last").SetEmailAddress("buyer@example.com")
	tx.SetOrder(order)

	require.NotContains(t, buildXML(t, tx), "<shippingAddress>")
}

func TestSubmitRequest_BuyerDocumentsOnlyWhenSet(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
	order := testOrder()
	order.Buyer().SetFullName("First Last").SetEmailAddress("buyer@example.com")
	tx.SetOrder(order)

	payload := buildXML(t, tx)
	require.NotContains(t, payload, "<dniNumber>")
	require.NotContains(t, payload, "<cnpj>")

	order.Buyer().SetDniNumber("5415668464654").SetCnpj("32593371000110")
	payload = buildXML(t, tx)
	require.Contains(t, payload, "<dniNumber>5415668464654</dniNumber>")
	require.Contains(t, payload, "<cnpj>32593371000110</cnpj>")
}

func TestSubmitRequest_PayerBlock(t *testing.T) {
	tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
	tx.SetOrder(testOrder())
	tx.Payer().SetFullName("First Last").SetEmailAddress("payer@example.com").SetContactPhone("7563126").SetDniNumber("5415668464654")
	tx.Payer().BillingAddress().SetStreet1("Calle 93").SetCity("Bogotá").SetCountry("CO")

	payload := buildXML(t, tx)

	require.Contains(t, payload, "<payer>")
	require.Contains(t, payload, "<contactPhone>7563126</contactPhone>")
	require.Contains(t, payload, "<billingAddress>")
	require.Contains(t, payload, "<city>Bogotá</city>")
}

func TestSubmitRequest_ValidationErrors(t *testing.T) {
	now := time.Now()

	t.Run("order without reference code", func(t *testing.T) {
		tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
		tx.Order().SetDescription("no reference")
		_, err := buildSubmitRequest(tx, testCredentials, "en", true, now)
		requireKind(t, err, ErrorValidation)
	})

	t.Run("order without additional values", func(t *testing.T) {
		tx := entity.NewTransaction().SetPaymentMethod(MethodVisa)
		tx.Order().SetReferenceCode("ref-1")
		_, err := buildSubmitRequest(tx, testCredentials, "en", true, now)
		requireKind(t, err, ErrorValidation)
	})
}

func TestChildRequest(t *testing.T) {
	req, err := buildChildRequest("8485957", "5f2b4e1c-0de2-4b41-a4db-5ad6e0de936f", entity.TypeRefund, testCredentials, "en", false)
	require.NoError(t, err)
	payload, err := marshalRequest(req)
	require.NoError(t, err)

	require.Contains(t, payload, "<command>SUBMIT_TRANSACTION</command>")
	require.Contains(t, payload, "<isTest>false</isTest>")
	require.Contains(t, payload, "<type>REFUND</type>")
	require.Contains(t, payload, "<parentTransactionId>5f2b4e1c-0de2-4b41-a4db-5ad6e0de936f</parentTransactionId>")
	require.Contains(t, payload, "<order><id>8485957</id></order>")
	require.NotContains(t, payload, "<payer>")
	require.NotContains(t, payload, "<buyer>")
}

func TestChildRequest_Validation(t *testing.T) {
	_, err := buildChildRequest("", "tx-1", entity.TypeVoid, testCredentials, "en", false)
	requireKind(t, err, ErrorValidation)

	_, err = buildChildRequest("8485957", "", entity.TypeVoid, testCredentials, "en", false)
	requireKind(t, err, ErrorValidation)
}

func requireKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, kind, perr.Kind)
}
