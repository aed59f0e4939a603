package gpswox

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/lexfrei/go-gpswox/internal/httpclient"
	"github.com/lexfrei/go-gpswox/internal/middleware"
	"github.com/lexfrei/go-gpswox/observability"
)

const (
	// Version is the SDK version reported in the default User-Agent.
	Version = "0.1.0"

	// DefaultTimeout is the default per-call HTTP timeout.
	DefaultTimeout = httpclient.DefaultTimeout

	loginFailedMessage = "Login failed: invalid response from server."
)

// ClientConfig holds configuration for the GPSWox client.
type ClientConfig struct {
	// BaseURL is the server root, e.g. "https://gps.example.com/".
	// Request paths are resolved against it the RFC 3986 way.
	BaseURL string

	// APIHash is the initial session token (optional, Login sets it).
	APIHash string

	// HTTPClient is the HTTP client to use (optional).
	// Its transport is wrapped by the client middleware; the value itself is not modified.
	HTTPClient *http.Client

	// Timeout sets the per-call timeout (defaults to 10 seconds).
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification for
	// self-hosted servers with self-signed certificates.
	// Ignored when HTTPClient is set.
	InsecureSkipVerify bool

	// UserAgent overrides the default "go-gpswox/<version>" User-Agent.
	UserAgent string

	// Logger receives request logs (optional, defaults to no-op).
	Logger observability.Logger

	// Metrics receives request metrics (optional, defaults to no-op).
	Metrics observability.MetricsRecorder
}

// Client is a GPSWox API client. It is safe for concurrent use.
//
// The resource services share the client's transport and session.
type Client struct {
	http    *httpclient.Client
	session *Session
	logger  observability.Logger

	Addresses     *AddressService
	Alerts        *AlertService
	CallActions   *CallActionService
	Commands      *CommandService
	CustomEvents  *CustomEventService
	Devices       *DeviceService
	Drivers       *DriverService
	Events        *EventService
	Geofences     *GeofenceService
	GprsTemplates *GprsTemplateService
	History       *HistoryService
	MapIcons      *MapIconService
	Reports       *ReportService
	Routes        *RouteService
	Sensors       *SensorService
	Services      *MaintenanceService
	Setup         *SetupService
	Sharing       *SharingService
	SmsTemplates  *SmsTemplateService
	Tasks         *TaskService
}

// New creates a client for baseURL with default settings.
// apiHash may be empty when the caller intends to Login first.
//
// Example:
//
//	client, err := gpswox.New("https://gps.example.com/", "")
//	if err != nil {
//	    return err
//	}
//	if _, err := client.Login(ctx, "user@example.com", "secret"); err != nil {
//	    return err
//	}
func New(baseURL, apiHash string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		BaseURL: baseURL,
		APIHash: apiHash,
	})
}

// NewWithConfig creates a client with custom configuration.
//
// Example:
//
//	client, err := gpswox.NewWithConfig(&gpswox.ClientConfig{
//	    BaseURL:            "https://gps.example.com/",
//	    APIHash:            os.Getenv("GPSWOX_API_HASH"),
//	    Timeout:            30 * time.Second,
//	    InsecureSkipVerify: true,
//	    Logger:             observability.NewSlogLogger(slog.Default()),
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "go-gpswox/" + Version
	}

	session := NewSession(cfg.APIHash)

	chain := []httpclient.Middleware{
		middleware.Observability(logger, metrics),
		middleware.Headers(http.Header{
			"Accept":     []string{"application/json"},
			"User-Agent": []string{userAgent},
		}),
		middleware.Token(session.Token),
	}
	if cfg.HTTPClient == nil && cfg.InsecureSkipVerify {
		chain = append(chain, middleware.SelfSignedTLS())
	}

	transport, err := httpclient.New(cfg.BaseURL,
		httpclient.WithHTTPClient(cfg.HTTPClient),
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithMiddleware(chain...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create HTTP client")
	}

	c := &Client{
		http:    transport,
		session: session,
		logger:  logger,
	}
	c.Addresses = &AddressService{r: c}
	c.Alerts = &AlertService{r: c}
	c.CallActions = &CallActionService{r: c}
	c.Commands = &CommandService{r: c}
	c.CustomEvents = &CustomEventService{r: c}
	c.Devices = &DeviceService{r: c}
	c.Drivers = &DriverService{r: c}
	c.Events = &EventService{r: c}
	c.Geofences = &GeofenceService{r: c}
	c.GprsTemplates = &GprsTemplateService{r: c}
	c.History = &HistoryService{r: c}
	c.MapIcons = &MapIconService{r: c}
	c.Reports = &ReportService{r: c}
	c.Routes = &RouteService{r: c}
	c.Sensors = &SensorService{r: c}
	c.Services = &MaintenanceService{r: c}
	c.Setup = &SetupService{r: c}
	c.Sharing = &SharingService{r: c}
	c.SmsTemplates = &SmsTemplateService{r: c}
	c.Tasks = &TaskService{r: c}

	return c, nil
}

// Session returns the session holding the API hash.
func (c *Client) Session() *Session {
	return c.session
}

// HTTPClient returns the underlying http.Client, middleware included.
func (c *Client) HTTPClient() *http.Client {
	return c.http.HTTPClient()
}

// Login exchanges credentials for an API hash, stores it in the session and
// returns it.
//
// The server expects email and password as query parameters of a POST, so
// they travel in the URL. Request logs and error messages redact the
// password, but proxies and server access logs may still record it.
//
// A response without user_api_hash yields an *AuthenticationError with
// StatusCode 0 and leaves the current token unchanged.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := c.DoRaw(ctx, &Request{
		Method: http.MethodPost,
		Path:   "api/login",
		Query:  Params{"email": email, "password": password},
	})
	if err != nil {
		return "", err
	}

	doc := gjson.ParseBytes(body)
	hash := doc.Get(middleware.TokenParam)
	if !gjson.ValidBytes(body) || !doc.IsObject() || !hash.Exists() || hash.Type == gjson.Null {
		c.logger.Warn("login response carried no api hash")
		return "", &AuthenticationError{Message: loginFailedMessage}
	}

	token := hash.String()
	c.session.SetToken(token)
	c.logger.Info("login succeeded")

	return token, nil
}
