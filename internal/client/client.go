package client

import (
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/gordonmaloney/testify-admin/internal/logger"
)

// DefaultBaseURL is the production API origin. Point base_url in the config
// file at a staging deployment to override it.
const DefaultBaseURL = "https://testify-analytics.fly.dev"

type TestifyClient struct {
	HTTP   *resty.Client
	Config ClientConfig
}

type ClientConfig struct {
	BaseURL string
	Token   string // bearer token, sent on every request
}

func New(cfg ClientConfig) *TestifyClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	r := resty.New()
	r.SetBaseURL(cfg.BaseURL)
	r.SetHeader("Accept", "application/json")
	r.SetAuthToken(cfg.Token)

	r.JSONMarshal = json.Marshal
	r.JSONUnmarshal = json.Unmarshal

	r.SetLogger(logger.Get(logger.WarnLevel))

	return &TestifyClient{
		HTTP:   r,
		Config: cfg,
	}
}
