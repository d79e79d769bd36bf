// Package resilience provides a circuit-breaker-wrapped HTTP client for
// external provider calls. Requests are never retried; a failing upstream
// trips the breaker and subsequent calls fail fast until it half-opens.
package resilience

import (
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrCircuitOpen is returned when the circuit breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// ClientConfig holds configuration for the resilient HTTP client.
type ClientConfig struct {
	// Name identifies this client for circuit breaker naming.
	Name string

	// Timeout is the request timeout for individual HTTP calls.
	// Default: 10 seconds
	Timeout time.Duration

	// CircuitBreaker is the circuit breaker configuration.
	// If nil, uses DefaultCircuitBreakerConfig.
	CircuitBreaker *CircuitBreakerConfig
}

// CircuitBreakerConfig holds configuration for the circuit breaker.
type CircuitBreakerConfig struct {
	// Name identifies the circuit breaker for logging/metrics.
	Name string

	// MaxRequests is the maximum number of requests allowed in half-open state.
	// Default: 1
	MaxRequests uint32

	// Interval is the cyclic period for clearing internal counts when closed.
	// Default: 0 (disabled)
	Interval time.Duration

	// Timeout is the period of open state before switching to half-open.
	// Default: 60 seconds
	Timeout time.Duration

	// ReadyToTrip determines when to trip the circuit breaker.
	// If nil, uses DefaultReadyToTrip (50% failure rate with 5+ requests).
	ReadyToTrip func(counts gobreaker.Counts) bool
}

// DefaultCircuitBreakerConfig returns a sensible default configuration.
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:        name,
		MaxRequests: 1,
		Timeout:     60 * time.Second,
		ReadyToTrip: DefaultReadyToTrip,
	}
}

// DefaultReadyToTrip trips the circuit breaker when at least 5 requests have
// been made and the failure rate is 50% or higher.
func DefaultReadyToTrip(counts gobreaker.Counts) bool {
	failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
	return counts.Requests >= 5 && failureRatio >= 0.5
}

// Client is an HTTP client with circuit breaker protection.
type Client struct {
	httpClient     *http.Client
	circuitBreaker *gobreaker.CircuitBreaker[*http.Response]
}

// NewClient creates a new resilient HTTP client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	cbConfig := DefaultCircuitBreakerConfig(cfg.Name)
	if cfg.CircuitBreaker != nil {
		cbConfig = *cfg.CircuitBreaker
	}
	if cbConfig.MaxRequests == 0 {
		cbConfig.MaxRequests = 1
	}
	if cbConfig.Timeout == 0 {
		cbConfig.Timeout = 60 * time.Second
	}
	if cbConfig.ReadyToTrip == nil {
		cbConfig.ReadyToTrip = DefaultReadyToTrip
	}

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        cbConfig.Name,
		MaxRequests: cbConfig.MaxRequests,
		Interval:    cbConfig.Interval,
		Timeout:     cbConfig.Timeout,
		ReadyToTrip: cbConfig.ReadyToTrip,
	})

	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		circuitBreaker: cb,
	}
}

// Do executes an HTTP request through the circuit breaker. 5xx responses
// count as failures so a struggling upstream trips the breaker; the
// response is still returned to the caller. Returns ErrCircuitOpen
// immediately while the breaker is open.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.circuitBreaker.Execute(func() (*http.Response, error) {
		r, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		if r.StatusCode >= 500 {
			return r, &ServerError{StatusCode: r.StatusCode}
		}

		return r, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrCircuitOpen
		}

		var serverErr *ServerError
		if errors.As(err, &serverErr) && resp != nil {
			// Let the caller see the 5xx; the breaker has already counted it.
			return resp, nil
		}

		return nil, err
	}

	return resp, nil
}

// State returns the current state of the circuit breaker.
func (c *Client) State() gobreaker.State {
	return c.circuitBreaker.State()
}

// Counts returns the current counts of the circuit breaker.
func (c *Client) Counts() gobreaker.Counts {
	return c.circuitBreaker.Counts()
}

// ServerError represents an HTTP 5xx server error.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return "server error: " + http.StatusText(e.StatusCode)
}
