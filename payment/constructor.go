// Package payment is the client for the PayU Latam payments API: simple
// JSON commands (ping, payment methods, bank list) and XML transaction
// submission (authorize, capture, refund, void, cash collection).
package payment

import (
	"payu/entity"

	fastshot "github.com/opus-domini/fast-shot"
)

const (
	productionURL = "https://api.payulatam.com"
	stagingURL    = "https://stg.api.payulatam.com"
	servicePath   = "/payments-api/4.0/service.cgi"

	defaultLanguage = "en"
)

// Config is the per-client configuration. It is copied on construction;
// a client never mutates it and concurrent callers never observe another
// caller's mode.
type Config struct {
	Credentials *entity.Credentials

	// Staging routes calls to the sandbox endpoint and marks request
	// envelopes as test traffic.
	Staging bool

	// Language of request envelopes. Defaults to "en".
	Language string

	// URL overrides the resolved endpoint. Useful for tests against a
	// local fake gateway.
	URL string

	// LiveCashCollection replicates the legacy behavior of always
	// submitting cash collections with isTest=false, even from a staging
	// client. Off by default: cash collections follow Staging like every
	// other operation.
	LiveCashCollection bool
}

// Client talks to the payment gateway. One request/response per call, no
// state shared between calls beyond the read-only configuration.
type Client struct {
	config     Config
	httpClient fastshot.ClientHttpMethods
}

func NewClient(config *Config) *Client {
	cfg := *config
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}
	return &Client{
		config:     cfg,
		httpClient: setupHttpClient(&cfg),
	}
}

func setupHttpClient(cfg *Config) fastshot.ClientHttpMethods {
	base := productionURL
	if cfg.Staging {
		base = stagingURL
	}
	if cfg.URL != "" {
		base = cfg.URL
	}
	return fastshot.NewClient(base).Build()
}

func (c *Client) isTest() bool {
	return c.config.Staging
}
