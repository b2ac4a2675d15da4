package payment_test

import (
	"testing"

	"payu/payment"

	"github.com/stretchr/testify/require"
)

func TestLoadCredentials(t *testing.T) {
	t.Setenv("PAYU_API_LOGIN", "pRRXKOl8ikMmt9u")
	t.Setenv("PAYU_API_KEY", "4Vj8eK4rloUd272L48hsrarnUA")
	t.Setenv("PAYU_MERCHANT_ID", "509029")
	t.Setenv("PAYU_ACCOUNT_ID", "512321")

	creds, err := payment.LoadCredentials()
	require.NoError(t, err)
	require.Equal(t, "pRRXKOl8ikMmt9u", creds.ApiLogin())
	require.Equal(t, "509029", creds.MerchantID())
}

func TestLoadCredentials_MissingKeys(t *testing.T) {
	t.Setenv("PAYU_API_LOGIN", "")
	t.Setenv("PAYU_API_KEY", "")

	_, err := payment.LoadCredentials()
	var perr *payment.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, payment.ErrorValidation, perr.Kind)
}
