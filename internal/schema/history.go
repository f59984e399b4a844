package schema

import (
	"net/http"
	"os"
	"sync"
	"time"

	"bitbucket.org/crgw/reservation-wizard/internal/tools/converting"
)

type RequestContent struct {
	Url     *string                 `json:"url,omitempty"`
	Method  *string                 `json:"method,omitempty"`
	Body    *string                 `json:"body,omitempty"`
	Headers *map[string]interface{} `json:"headers,omitempty"`
}

type ResponseContent struct {
	StatusCode *int                    `json:"statusCode,omitempty"`
	Headers    *map[string]interface{} `json:"headers,omitempty"`
	Body       *string                 `json:"body,omitempty"`
}

// BackendRequest is one entry of the request history returned with a submit
// response, so an operator can see which creates went through before a
// failure.
type BackendRequest struct {
	Name            *BackendRequestName `json:"name,omitempty"`
	RequestContent  *RequestContent     `json:"requestContent,omitempty"`
	ResponseContent *ResponseContent    `json:"responseContent,omitempty"`
	Duration        *int                `json:"duration,omitempty"`
	StartDateTime   *time.Time          `json:"startDateTime,omitempty"`
}

type BackendRequests []BackendRequest

type backendRequestsBucket struct {
	backendRequests BackendRequests
	sync.Mutex
}

func NewBackendRequestsBucket() backendRequestsBucket {
	return backendRequestsBucket{
		backendRequests: []BackendRequest{},
	}
}

func (r *backendRequestsBucket) BackendRequests() *BackendRequests {
	return &r.backendRequests
}

func (r *backendRequestsBucket) AddRequests(requests BackendRequests) {
	r.Lock()
	r.backendRequests = append(r.backendRequests, requests...)
	r.Unlock()
}

func (r *backendRequestsBucket) FinishedRequest(
	requestType BackendRequestName,
	startTime time.Time,
	statusCode int,
	method string,
	url string,
	requestBody string,
	requestHeaders http.Header,
	responseBody string,
	responseHeaders http.Header,
) {
	reqHeaders := converting.ConvertMap(requestHeaders)

	req := RequestContent{
		Url:     &url,
		Method:  &method,
		Body:    &requestBody,
		Headers: &reqHeaders,
	}

	historyRequest := BackendRequest{
		Name:           &requestType,
		RequestContent: &req,
	}

	resHeaders := converting.ConvertMap(responseHeaders)

	res := ResponseContent{
		StatusCode: &statusCode,
		Headers:    &resHeaders,
		Body:       &responseBody,
	}

	historyRequest.ResponseContent = &res

	if os.Getenv("TEST") != "true" {
		duration := int(time.Since(startTime).Milliseconds())
		historyRequest.Duration = &duration
		historyRequest.StartDateTime = &startTime
	}

	r.Lock()
	r.backendRequests = append(r.backendRequests, historyRequest)
	r.Unlock()
}
