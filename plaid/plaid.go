package plaid

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/alpacahq/goplaid/log"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

var (
	once sync.Once
	pc   *PlaidClient
)

const (
	SandboxURL     = "https://sandbox.plaid.com"
	DevelopmentURL = "https://development.plaid.com"
	ProductionURL  = "https://production.plaid.com"
)

// Config is read from PLAID_URL, PLAID_CLIENT_ID, PLAID_SECRET,
// PLAID_TIMEOUT and PLAID_STATSD_ADDR. Metrics are off when the
// statsd address is empty.
type Config struct {
	URL        string        `envconfig:"URL" default:"https://sandbox.plaid.com"`
	ClientID   string        `envconfig:"CLIENT_ID"`
	Secret     string        `envconfig:"SECRET"`
	Timeout    time.Duration `envconfig:"TIMEOUT" default:"1m"`
	StatsdAddr string        `envconfig:"STATSD_ADDR"`
}

func LoadConfig() (Config, error) {
	cfg := Config{}
	if err := envconfig.Process("plaid", &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to load plaid config")
	}
	return cfg, nil
}

type PlaidClient struct {
	cfg     Config
	metrics metricsSink
	request func(req *fasthttp.Request, resp *fasthttp.Response) error
}

func NewClient(cfg Config) *PlaidClient {
	if cfg.URL == "" {
		cfg.URL = SandboxURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Minute
	}
	p := &PlaidClient{cfg: cfg, metrics: noopSink{}}
	if cfg.StatsdAddr != "" {
		sink, err := newStatsdSink(cfg.StatsdAddr)
		if err != nil {
			log.Warn("plaid metrics disabled", "error", err)
		} else {
			p.metrics = sink
		}
	}
	p.request = func(req *fasthttp.Request, resp *fasthttp.Response) error {
		return fasthttp.DoTimeout(req, resp, p.cfg.Timeout)
	}
	return p
}

// Client returns the process wide client configured from the environment.
func Client() *PlaidClient {
	once.Do(func() {
		cfg, err := LoadConfig()
		if err != nil {
			log.Fatal("failed to start plaid client", "error", err)
		}
		pc = NewClient(cfg)
	})
	return pc
}

func (pc *PlaidClient) BaseURL() string {
	return pc.cfg.URL
}

// Request posts the payload to the endpoint with the client credentials
// attached and decodes a 200 response into output. Any other status is
// decoded into an APIError.
func (pc *PlaidClient) Request(method, endpoint string, payload map[string]interface{}, output interface{}) error {
	body := map[string]interface{}{
		"client_id": pc.cfg.ClientID,
		"secret":    pc.cfg.Secret,
	}
	for k, v := range payload {
		body[k] = v
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode plaid request")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.SetRequestURI(pc.cfg.URL + endpoint)
	req.SetBody(buf)

	start := time.Now()
	if err = pc.request(req, resp); err != nil {
		pc.record(endpoint, 0, time.Since(start))
		return errors.Wrap(err, fmt.Sprintf("failed to reach plaid (endpoint = %v)", endpoint))
	}
	pc.record(endpoint, resp.StatusCode(), time.Since(start))

	if resp.StatusCode() != fasthttp.StatusOK {
		apiError := APIError{}

		if err := json.Unmarshal(resp.Body(), &apiError); err != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to parse error (status_code = %v)", resp.StatusCode()))
		}
		apiError.StatusCode = resp.StatusCode()

		log.Warn("plaid error",
			"endpoint", endpoint,
			"type", apiError.ErrorType,
			"code", apiError.ErrorCode,
			"request_id", apiError.RequestID)

		return apiError
	}

	if err = json.Unmarshal(resp.Body(), output); err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to parse response (endpoint = %v)", endpoint))
	}

	meta := struct {
		RequestID string `json:"request_id"`
	}{}
	json.Unmarshal(resp.Body(), &meta)

	log.Debug("plaid request",
		"endpoint", endpoint,
		"status", resp.StatusCode(),
		"request_id", meta.RequestID)

	return nil
}
