package payment

import (
	"encoding/xml"
	"log/slog"
	"strings"
	"time"

	"payu/entity"
)

// The transaction family: XML envelopes, XML responses.

// DefaultCashExpiration is the payment window, in days, a cash collection
// gets when the caller does not pick one.
const DefaultCashExpiration = 4

// Authorize reserves the transaction amount on the payment method without
// charging it.
func (c *Client) Authorize(tx *entity.Transaction) (*PaymentResponse, error) {
	tx.SetType(entity.TypeAuthorization)
	return c.submitTransaction(tx, c.isTest())
}

// AuthorizeAndCapture authorizes and charges in a single step.
func (c *Client) AuthorizeAndCapture(tx *entity.Transaction) (*PaymentResponse, error) {
	tx.SetType(entity.TypeAuthorizationAndCapture)
	return c.submitTransaction(tx, c.isTest())
}

// CashCollection submits an over-the-counter cash payment with an expiration
// window of the given number of days (DefaultCashExpiration when zero or
// negative). With Config.LiveCashCollection the envelope is forced to
// isTest=false regardless of Staging, matching the historical gateway
// requirement for cash networks.
func (c *Client) CashCollection(tx *entity.Transaction, expirationDays int) (*PaymentResponse, error) {
	if expirationDays <= 0 {
		expirationDays = DefaultCashExpiration
	}
	tx.SetType(entity.TypeAuthorizationAndCapture).SetExpiration(expirationDays)
	isTest := c.isTest()
	if c.config.LiveCashCollection {
		isTest = false
	}
	return c.submitTransaction(tx, isTest)
}

// Capture charges a previously authorized transaction.
func (c *Client) Capture(orderID, transactionID string) (*PaymentResponse, error) {
	return c.childTransaction(orderID, transactionID, entity.TypeCapture)
}

// Refund returns the money of a captured transaction to the buyer.
func (c *Client) Refund(orderID, transactionID string) (*PaymentResponse, error) {
	return c.childTransaction(orderID, transactionID, entity.TypeRefund)
}

// Void cancels an authorized transaction before capture; no money moves.
func (c *Client) Void(orderID, transactionID string) (*PaymentResponse, error) {
	return c.childTransaction(orderID, transactionID, entity.TypeVoid)
}

func (c *Client) submitTransaction(tx *entity.Transaction, isTest bool) (*PaymentResponse, error) {
	req, err := buildSubmitRequest(tx, c.config.Credentials, c.config.Language, isTest, time.Now())
	if err != nil {
		return nil, err
	}
	return c.submit(req, string(tx.Type()))
}

func (c *Client) childTransaction(orderID, transactionID string, txType entity.TransactionType) (*PaymentResponse, error) {
	req, err := buildChildRequest(orderID, transactionID, txType, c.config.Credentials, c.config.Language, c.isTest())
	if err != nil {
		return nil, err
	}
	return c.submit(req, string(txType))
}

func (c *Client) submit(req any, txType string) (*PaymentResponse, error) {
	payload, err := marshalRequest(req)
	if err != nil {
		return nil, protocolError("encoding %s request: %v", txType, err)
	}
	slog.Debug("payu: submitting transaction", "type", txType)
	fastResp, err := c.httpClient.
		POST(servicePath).
		Header().Add("Accept", "application/xml").
		Header().Add("Content-Type", "application/xml; charset=utf-8").
		Body().AsString(payload).
		Send()
	if err != nil {
		return nil, transportError(err)
	}
	text, err := fastResp.Body().AsString()
	if err != nil {
		return nil, protocolError("reading %s response: %v", txType, err)
	}
	if fastResp.Status().IsError() {
		return nil, protocolError("gateway rejected %s: %s", txType, text)
	}

	// Some gateway frontends prefix the body with a UTF-8 BOM.
	text = strings.TrimPrefix(text, "\uFEFF")

	var resp PaymentResponse
	if err := xml.Unmarshal([]byte(text), &resp); err != nil {
		return nil, protocolError("decoding %s response: %v", txType, err)
	}
	slog.Debug("payu: transaction response", "type", txType, "code", resp.Code)
	if resp.Code == StatusError {
		return nil, gatewayError(resp.Error)
	}
	return &resp, nil
}
