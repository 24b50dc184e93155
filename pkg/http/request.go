package http

import (
	"fmt"
	"time"
)

// RequestMethod represents the HTTP method for the request.
type RequestMethod string

const (
	GET    RequestMethod = "GET"
	POST   RequestMethod = "POST"
	PUT    RequestMethod = "PUT"
	DELETE RequestMethod = "DELETE"
)

// BackoffConfig represents the retry configuration for a request.
type BackoffConfig struct {
	// MaxRetries is the number of retry attempts after the initial request
	MaxRetries int
	// InitialDelay is the delay before the first retry
	InitialDelay time.Duration
	// Multiplier scales the delay after each attempt
	Multiplier float64
}

// NewBackoffConfig creates a backoff configuration with default values.
func NewBackoffConfig() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries:   3,
		InitialDelay: 200 * time.Millisecond,
		Multiplier:   2.0,
	}
}

// Request represents an HTTP request with various configuration options.
type Request struct {
	requestClient      *Client
	requestMethod      RequestMethod
	requestPath        string
	requestQueryParams map[string]string
	requestHeaders     map[string]string
	requestBody        any
	requestSuccessResp any
	requestErrorResp   any
	requestBackoff     *BackoffConfig
}

// NewHttpClientRequest creates a new Request object with the given client.
func NewHttpClientRequest(client *Client) *Request {
	return &Request{
		requestClient: client,
		requestMethod: GET,
		requestPath:   "/",
	}
}

// WithMethod sets the HTTP method for the request.
func (r *Request) WithMethod(method RequestMethod) *Request {
	r.requestMethod = method
	return r
}

// WithPath sets the path for the request.
func (r *Request) WithPath(path string) *Request {
	r.requestPath = path
	return r
}

// WithQueryParams sets the query parameters for the request.
func (r *Request) WithQueryParams(params map[string]string) *Request {
	r.requestQueryParams = params
	return r
}

// WithHeaders sets the headers for the request.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	r.requestHeaders = headers
	return r
}

// WithBody sets the body for the request.
func (r *Request) WithBody(body any) *Request {
	r.requestBody = body
	return r
}

// WithSuccessResp sets the success response target for the request.
func (r *Request) WithSuccessResp(successResp any) *Request {
	r.requestSuccessResp = successResp
	return r
}

// WithErrorResp sets the error response target for the request.
func (r *Request) WithErrorResp(errorResp any) *Request {
	r.requestErrorResp = errorResp
	return r
}

// WithBackoff sets the backoff configuration for the request.
func (r *Request) WithBackoff(backoff *BackoffConfig) *Request {
	r.requestBackoff = backoff
	return r
}

// Execute sends the request and returns the success response, error response,
// status code, and error if any. Server errors and transport errors are retried
// according to the backoff configuration; client errors are not.
func (r *Request) Execute() (any, any, int, error) {
	if r.requestClient == nil {
		return nil, nil, 0, fmt.Errorf("client is required")
	}
	if r.requestMethod == "" {
		return nil, nil, 0, fmt.Errorf("method is required")
	}
	if r.requestPath == "" {
		return nil, nil, 0, fmt.Errorf("path is required")
	}

	if r.requestBackoff == nil {
		return r.requestClient.doRequest(
			string(r.requestMethod), r.requestPath, r.requestQueryParams,
			r.requestHeaders, r.requestBody, r.requestSuccessResp, r.requestErrorResp)
	}

	delay := r.requestBackoff.InitialDelay
	var successResp, errorResp any
	var status int
	var err error

	for attempt := 0; attempt <= r.requestBackoff.MaxRetries; attempt++ {
		successResp, errorResp, status, err = r.requestClient.doRequest(
			string(r.requestMethod), r.requestPath, r.requestQueryParams,
			r.requestHeaders, r.requestBody, r.requestSuccessResp, r.requestErrorResp)

		if err == nil || (status >= 400 && status < 500) {
			return successResp, errorResp, status, err
		}

		if attempt < r.requestBackoff.MaxRetries {
			time.Sleep(delay)
			delay = time.Duration(float64(delay) * r.requestBackoff.Multiplier)
		}
	}

	return successResp, errorResp, status, err
}
