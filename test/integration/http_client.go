//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient drives the router in-process for integration tests.
type HTTPClient struct {
	router *gin.Engine
	token  string
}

func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{
		router: router,
		token:  token,
	}
}

type Request struct {
	Method      string
	Path        string
	Body        interface{}
	QueryParams map[string]string
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Do performs an HTTP request against the router.
func (c *HTTPClient) Do(req Request) (*Response, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	if len(req.QueryParams) > 0 {
		q := httpReq.URL.Query()
		for key, value := range req.QueryParams {
			q.Add(key, value)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, httpReq)

	bodyBytes, err := io.ReadAll(w.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	return &Response{
		StatusCode: w.Code,
		Body:       bodyBytes,
		Headers:    w.Header(),
	}, nil
}

func (c *HTTPClient) GET(path string, queryParams ...map[string]string) (*Response, error) {
	req := Request{
		Method: "GET",
		Path:   path,
	}
	if len(queryParams) > 0 {
		req.QueryParams = queryParams[0]
	}
	return c.Do(req)
}

func (c *HTTPClient) POST(path string, body interface{}, queryParams ...map[string]string) (*Response, error) {
	req := Request{
		Method: "POST",
		Path:   path,
		Body:   body,
	}
	if len(queryParams) > 0 {
		req.QueryParams = queryParams[0]
	}
	return c.Do(req)
}

func (c *HTTPClient) PUT(path string, body interface{}) (*Response, error) {
	return c.Do(Request{
		Method: "PUT",
		Path:   path,
		Body:   body,
	})
}

// DecodeJSON decodes the response body into target.
func (r *Response) DecodeJSON(target interface{}) error {
	return json.Unmarshal(r.Body, target)
}

// ErrorCode extracts the stable wire code from an error response.
func (r *Response) ErrorCode() string {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return ""
	}
	if code, ok := errResp["code"].(string); ok {
		return code
	}
	return ""
}
