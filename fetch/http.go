package fetch

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"
	DefaultLanguage  = "en-GB,en;q=0.8"
	DefaultTimeout   = 30 * time.Second
)

type httpConfig struct {
	client    *http.Client
	userAgent string
	language  string
	timeout   time.Duration
	log       *zap.SugaredLogger
}

type Option func(*httpConfig)

// WithHTTPClient makes requests go through client instead of one built from the other options. The timeout option
// does not apply to it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *httpConfig) {
		c.client = client
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *httpConfig) {
		c.userAgent = userAgent
	}
}

// WithLanguage sets the Accept-Language header. Page text, and so some parsed titles, depend on it.
func WithLanguage(language string) Option {
	return func(c *httpConfig) {
		c.language = language
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *httpConfig) {
		c.timeout = timeout
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *httpConfig) {
		c.log = logger.Sugar().Named("fetch")
	}
}

// logger falls back to the global logger as it is at call time, so zap.ReplaceGlobals after construction still applies.
func (c *httpConfig) logger() *zap.SugaredLogger {
	if c.log != nil {
		return c.log
	}
	return zap.S().Named("fetch")
}

func newHTTPConfig(opts []Option) httpConfig {
	config := httpConfig{
		userAgent: DefaultUserAgent,
		language:  DefaultLanguage,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// HTTP fetches pages with GET requests.
type HTTP struct {
	config httpConfig
	reuse  bool
}

// Reusable returns a fetcher that sends every request through one shared client, keeping connections alive between
// requests.
func Reusable(opts ...Option) *HTTP {
	config := newHTTPConfig(opts)
	if config.client == nil {
		config.client = &http.Client{Timeout: config.timeout}
	}
	return &HTTP{config: config, reuse: true}
}

// NotReusable returns a fetcher that uses a fresh connection for each request and closes it afterwards.
func NotReusable(opts ...Option) *HTTP {
	return &HTTP{config: newHTTPConfig(opts)}
}

func (h *HTTP) client() *http.Client {
	if h.reuse || h.config.client != nil {
		return h.config.client
	}
	return &http.Client{
		Timeout: h.config.timeout,
		Transport: &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
		},
	}
}

func (h *HTTP) Fetch(ctx context.Context, url string) (string, error) {
	log := h.config.logger().With("request", uuid.NewString(), "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	if h.config.userAgent != "" {
		req.Header.Set("User-Agent", h.config.userAgent)
	}
	if h.config.language != "" {
		req.Header.Set("Accept-Language", h.config.language)
	}

	client := h.client()
	if !h.reuse {
		defer client.CloseIdleConnections()
	}

	start := time.Now()
	log.Debug("fetching")
	resp, err := client.Do(req)
	if err != nil {
		log.Debugw("fetch failed", "error", err)
		return "", &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debugw("unexpected status", "status", resp.StatusCode)
		return "", &TransportError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(&readerContext{ctx: ctx, r: resp.Body})
	if err != nil {
		log.Debugw("reading body failed", "error", err)
		return "", &TransportError{URL: url, Err: err}
	}
	log.Debugw("fetched", "status", resp.StatusCode, "bytes", len(body), "elapsed", time.Since(start))
	return string(body), nil
}
