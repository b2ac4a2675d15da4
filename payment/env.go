package payment

import (
	"os"

	"payu/entity"

	"github.com/joho/godotenv"
)

// LoadCredentials builds merchant credentials from PAYU_API_LOGIN,
// PAYU_API_KEY, PAYU_MERCHANT_ID and PAYU_ACCOUNT_ID, loading a .env file
// first when one is present. Meant for staging and integration runs;
// production callers usually construct credentials themselves.
func LoadCredentials() (*entity.Credentials, error) {
	_ = godotenv.Load()

	apiLogin := os.Getenv("PAYU_API_LOGIN")
	apiKey := os.Getenv("PAYU_API_KEY")
	if apiLogin == "" || apiKey == "" {
		return nil, validationError("PAYU_API_LOGIN and PAYU_API_KEY must be set")
	}
	return entity.NewCredentials(
		apiLogin,
		apiKey,
		os.Getenv("PAYU_MERCHANT_ID"),
		os.Getenv("PAYU_ACCOUNT_ID"),
	), nil
}
