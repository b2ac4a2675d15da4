package payment

import (
	"log/slog"
)

// The simple command family: JSON envelopes, JSON responses.

// Ping checks service health with the configured credentials. It returns
// true only when the gateway answers SUCCESS; every other outcome is an
// error, never a false.
func (c *Client) Ping() (bool, error) {
	var data pingResponse
	if err := c.sendCommand(c.commandEnvelope(CommandPing), &data); err != nil {
		return false, err
	}
	return true, nil
}

// PaymentMethods lists the payment methods enabled for the merchant's
// country configuration.
func (c *Client) PaymentMethods() ([]PaymentMethod, error) {
	var data paymentMethodsResponse
	if err := c.sendCommand(c.commandEnvelope(CommandGetPaymentMethods), &data); err != nil {
		return nil, err
	}
	return data.PaymentMethods, nil
}

// BankList lists the financial institutions available for PSE bank
// transfers. The gateway scopes the list to Colombia, the only country PSE
// operates in.
func (c *Client) BankList() ([]Bank, error) {
	req := c.commandEnvelope(CommandGetBanksList)
	req.BankListInformation = &bankListInformation{
		PaymentMethod:  MethodPSE,
		PaymentCountry: CountryColombia,
	}
	var data banksResponse
	if err := c.sendCommand(req, &data); err != nil {
		return nil, err
	}
	return data.Banks, nil
}

func (c *Client) commandEnvelope(command string) *commandRequest {
	creds := c.config.Credentials
	return &commandRequest{
		Test:     c.isTest(),
		Language: c.config.Language,
		Command:  command,
		Merchant: merchantAuth{ApiLogin: creds.ApiLogin(), ApiKey: creds.ApiKey()},
	}
}

type jsonResponse interface {
	status() (code, message string)
}

func (c *Client) sendCommand(req *commandRequest, out jsonResponse) error {
	body := mustMarshalJson(req)
	slog.Debug("payu: sending command", "command", req.Command)
	fastResp, err := c.httpClient.
		POST(servicePath).
		Header().Add("Accept", "application/json").
		Header().Add("Content-Type", "application/json").
		Body().AsString(string(body)).
		Send()
	if err != nil {
		return transportError(err)
	}
	if fastResp.Status().IsError() {
		text, _ := fastResp.Body().AsString()
		return protocolError("gateway rejected %s: %s", req.Command, text)
	}
	if err := fastResp.Body().AsJSON(out); err != nil {
		return protocolError("decoding %s response: %v", req.Command, err)
	}
	code, message := out.status()
	slog.Debug("payu: command response", "command", req.Command, "code", code)
	if code != StatusSuccess {
		return gatewayError(message)
	}
	return nil
}
