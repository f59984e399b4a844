package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/client"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/requesting"
	"github.com/rs/zerolog"
)

// Client talks to the back-office REST API: destination/package/agency
// lookups, the five create operations of the submission sequence, and
// acting-user resolution.
type Client struct {
	baseURL   string
	timeout   int
	logger    *zerolog.Logger
	transport http.RoundTripper
	bucket    requesting.RequestBucket
}

func NewClient(logger *zerolog.Logger, optionFuncs ...client.OptionFunc) (*Client, error) {
	baseURL := os.Getenv("BACKOFFICE_API_URL")
	clientOptions := []client.OptionFunc{client.WithBaseURL(baseURL)}
	clientOptions = append(clientOptions, optionFuncs...)

	options, err := client.NewOptions(clientOptions...)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   options.BaseURL("backoffice", "/api"),
		timeout:   int(options.Timeout().Milliseconds()),
		logger:    logger,
		transport: http.DefaultTransport,
	}, nil
}

// WithBucket returns a copy of the client whose requests are recorded into
// the given history bucket. Used by the submission sequence so the submit
// response can show which creates went through.
func (c *Client) WithBucket(bucket requesting.RequestBucket) *Client {
	clone := *c
	clone.bucket = bucket
	return &clone
}

func (c *Client) httpClient() *http.Client {
	middlewares := []requesting.TransportMiddleware{
		requesting.NewLoggingTransportMiddleware(c.logger),
	}

	if c.bucket != nil {
		middlewares = append(middlewares, requesting.NewBucketTransportMiddleware(c.bucket))
	}

	return &http.Client{
		Timeout: time.Duration(c.timeout) * time.Millisecond,
		Transport: &requesting.InterceptorTransport{
			Transport:   c.transport,
			Middlewares: middlewares,
		},
	}
}

// get runs a lookup request. Failures come back as the plain error taxonomy;
// callers degrade to empty option lists.
func (c *Client) get(ctx context.Context, name schema.BackendRequestName, url string, destination any) *schema.BackendResponseError {
	ctx = context.WithValue(ctx, schema.RequestingTypeKey, name)

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		return &e
	}

	response, requestErr := requesting.RequestErrors(c.httpClient().Do(httpRequest))
	if requestErr != nil {
		return requestErr
	}
	defer response.Body.Close()

	bodyBytes, _ := io.ReadAll(response.Body)

	if err := json.Unmarshal(bodyBytes, destination); err != nil {
		e := schema.NewBackendError(err.Error())
		return &e
	}

	return nil
}

// post runs a create request. On a non-2xx answer the backend's own message
// is extracted so it can be surfaced to the console verbatim.
func (c *Client) post(ctx context.Context, name schema.BackendRequestName, url string, body any, destination any) *schema.BackendResponseError {
	ctx = context.WithValue(ctx, schema.RequestingTypeKey, name)

	requestBytes, err := json.Marshal(body)
	if err != nil {
		e := schema.NewBackendError(err.Error())
		return &e
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBytes))
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		return &e
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient().Do(httpRequest)
	if err != nil {
		if os.IsTimeout(err) {
			e := schema.NewTimeoutError(err.Error())
			return &e
		}

		e := schema.NewConnectionError(err.Error())
		return &e
	}
	defer response.Body.Close()

	bodyBytes, _ := io.ReadAll(response.Body)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		e := schema.NewBackendError(backendMessage(bodyBytes, response.StatusCode))
		return &e
	}

	if destination != nil {
		if err := json.Unmarshal(bodyBytes, destination); err != nil {
			e := schema.NewBackendError(err.Error())
			return &e
		}
	}

	return nil
}

// backendMessage pulls the human-readable message out of an error body,
// falling back to the status code when there is none.
func backendMessage(body []byte, statusCode int) string {
	var parsed struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}

	return fmt.Sprintf("backend returned status code %d", statusCode)
}
