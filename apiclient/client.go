package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/batlama/inspection-api-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// APIPathPrefix is prepended to every request path.
const APIPathPrefix = "/api/"

const DefaultTimeout = time.Second * 30

const loginPath = "auth/login"

// Config describes how to reach the application.
type Config struct {
	BaseURL string

	// Timeout applies to each request separately. It defaults to DefaultTimeout, and is ignored
	// if HTTPClient is set.
	Timeout time.Duration

	HTTPClient *http.Client

	Logger framework.Logger
}

// Client makes requests to the application API on behalf of the test suite, and remembers the
// Session established by Login.
//
// Requests never return errors. Whatever happens, including transport failures, is described by
// the returned Response so that every probe can be turned into a test result.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	logger     framework.Logger
}

type loginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewClient(config Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	logger := config.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		httpClient: httpClient,
		session:    &Session{},
		logger:     logger,
	}
}

// WithLogger returns a Client that shares this one's session but logs to a different place.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	c1 := *c
	if logger == nil {
		logger = framework.NullLogger()
	}
	c1.logger = logger
	return &c1
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Session() Session {
	return *c.session
}

// URL returns the full URL for a path relative to the API prefix.
func (c *Client) URL(path string) string {
	return c.baseURL + APIPathPrefix + strings.TrimPrefix(path, "/")
}

// Probe makes one request and reports whether the response had the expected status.
//
// The body, if not nil, is sent as JSON for POST and PUT requests. The session token, if there
// is one, is sent as a bearer token.
func (c *Client) Probe(method, path string, body interface{}, expectedStatus int) (bool, Response) {
	resp := Response{Method: method, Path: path}

	switch method {
	case http.MethodGet, http.MethodDelete:
		body = nil
	case http.MethodPost, http.MethodPut:
	default:
		resp.Body = errorBody(fmt.Errorf("unsupported method: %s", method))
		return false, resp
	}

	url := c.URL(path)
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			resp.Body = errorBody(err)
			return false, resp
		}
		if path == loginPath {
			c.logger.Printf(">> %s %s (credentials omitted)", method, url)
		} else {
			c.logger.Printf(">> %s %s %s", method, url, string(data))
		}
		reader = bytes.NewReader(data)
	} else {
		c.logger.Printf(">> %s %s", method, url)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		resp.Body = errorBody(err)
		return false, resp
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token; token.IsDefined() {
		req.Header.Set("Authorization", "Bearer "+token.StringValue())
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("<< request failed: %s", err)
		resp.Body = errorBody(err)
		return false, resp
	}
	defer func() { _ = httpResp.Body.Close() }()
	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		c.logger.Printf("<< error reading response: %s", err)
		resp.Body = errorBody(fmt.Errorf("error reading response body: %w", err))
		return false, resp
	}
	c.logger.Printf("<< %d %s", httpResp.StatusCode, string(data))

	resp = newResponse(method, path, httpResp.StatusCode, data)
	return resp.StatusCode == expectedStatus, resp
}

// Login posts the credentials and, if the service returns 200 with an access token, stores the
// token and user info as the session for all later requests. It returns false, leaving the
// session unchanged, otherwise.
func (c *Client) Login(email, password string) (Response, bool) {
	ok, resp := c.Probe(http.MethodPost, loginPath, loginParams{Email: email, Password: password}, http.StatusOK)
	if !ok {
		return resp, false
	}
	token := resp.Body.GetByKey("access_token")
	if !token.IsString() {
		return resp, false
	}
	user := resp.Body.GetByKey("user")
	if user.IsNull() {
		user = ldvalue.ObjectBuild().Build()
	}
	*c.session = Session{
		Token: ldvalue.NewOptionalString(token.StringValue()),
		User:  user,
	}
	return resp, true
}
