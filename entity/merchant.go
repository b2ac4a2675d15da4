package entity

// Credentials identifies the merchant to the gateway. The value is immutable
// once constructed; a client holds one and never mutates it, so concurrent
// callers stay isolated.
type Credentials struct {
	apiLogin   string
	apiKey     string
	merchantID string
	accountID  string
}

func NewCredentials(apiLogin, apiKey, merchantID, accountID string) *Credentials {
	return &Credentials{
		apiLogin:   apiLogin,
		apiKey:     apiKey,
		merchantID: merchantID,
		accountID:  accountID,
	}
}

func (c *Credentials) ApiLogin() string { return c.apiLogin }
func (c *Credentials) ApiKey() string { return c.apiKey }
func (c *Credentials) MerchantID() string { return c.merchantID }
func (c *Credentials) AccountID() string { return c.accountID }
