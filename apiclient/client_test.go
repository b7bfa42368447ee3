package apiclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/batlama/inspection-api-contract-tests/framework"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func loginHandler(role string) http.Handler {
	return httphelpers.HandlerWithJSONResponse(map[string]interface{}{
		"access_token": "token-123",
		"user":         map[string]interface{}{"email": "test@batlama.com", "role": role},
	}, nil)
}

func withAPI(routes map[string]http.Handler, action func(*Client)) {
	mux := http.NewServeMux()
	for path, h := range routes {
		mux.Handle(path, h)
	}
	httphelpers.WithServer(mux, func(server *httptest.Server) {
		action(NewClient(Config{BaseURL: server.URL + "/"}))
	})
}

func TestProbeListSuccess(t *testing.T) {
	routes := map[string]http.Handler{
		"/api/inspections": httphelpers.HandlerWithJSONResponse([]string{"a", "b", "c"}, nil),
	}
	withAPI(routes, func(c *Client) {
		ok, resp := c.Probe(http.MethodGet, "inspections", nil, http.StatusOK)

		assert.True(t, ok)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, resp.IsList())
		assert.Equal(t, 3, resp.Count())
	})
}

func TestProbeStatusMismatch(t *testing.T) {
	routes := map[string]http.Handler{
		"/api/payments": httphelpers.HandlerWithJSONResponse(map[string]interface{}{"detail": "Not authenticated"}, nil),
	}
	withAPI(routes, func(c *Client) {
		ok, resp := c.Probe(http.MethodGet, "payments", nil, http.StatusCreated)

		assert.False(t, ok)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Not authenticated", resp.Detail())
		assert.Equal(t, 0, resp.Count())
	})
}

func TestProbeFallsBackToRawText(t *testing.T) {
	routes := map[string]http.Handler{
		"/api/companies": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}),
	}
	withAPI(routes, func(c *Client) {
		ok, resp := c.Probe(http.MethodGet, "companies", nil, http.StatusOK)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, ldvalue.String("<html>bad gateway</html>"), resp.Body.GetByKey("raw_response"))
		assert.Equal(t, "", resp.Detail())
		assert.Equal(t, "fallback", resp.DetailOrDefault("fallback"))
	})
}

func TestProbeNetworkFailureHasStatusZero(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	url := server.URL
	server.Close()

	c := NewClient(Config{BaseURL: url, Timeout: time.Second})
	ok, resp := c.Probe(http.MethodGet, "activities", nil, http.StatusOK)

	assert.False(t, ok)
	assert.Equal(t, 0, resp.StatusCode)
	assert.NotEqual(t, "", resp.Detail())
}

func TestProbeUnsupportedMethod(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://localhost"})
	ok, resp := c.Probe("PATCH", "inspections", nil, http.StatusOK)

	assert.False(t, ok)
	assert.Equal(t, 0, resp.StatusCode)
	assert.Equal(t, "unsupported method: PATCH", resp.Detail())
}

func TestProbeSendsJSONBodyAndBearerToken(t *testing.T) {
	createHandler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithJSONResponse(map[string]interface{}{"id": "abc123"}, nil))
	routes := map[string]http.Handler{
		"/api/auth/login": loginHandler("admin"),
		"/api/payments":   createHandler,
	}
	withAPI(routes, func(c *Client) {
		_, ok := c.Login("test@batlama.com", "test123")
		require.True(t, ok)

		ok, resp := c.Probe(http.MethodPost, "payments", map[string]string{"hakedisNo": "H-001"}, http.StatusOK)
		require.True(t, ok)
		id, hasID := resp.ID()
		assert.True(t, hasID)
		assert.Equal(t, "abc123", id)

		r := <-requestsCh
		assert.Equal(t, http.MethodPost, r.Request.Method)
		assert.Equal(t, "/api/payments", r.Request.URL.Path)
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer token-123", r.Request.Header.Get("Authorization"))
		assert.JSONEq(t, `{"hakedisNo":"H-001"}`, string(r.Body))
	})
}

func TestProbeWithoutSessionSendsNoAuthorization(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	withAPI(map[string]http.Handler{"/api/workplans": handler}, func(c *Client) {
		c.Probe(http.MethodGet, "workplans", nil, http.StatusOK)

		r := <-requestsCh
		assert.Equal(t, "", r.Request.Header.Get("Authorization"))
	})
}

func TestLoginStoresSession(t *testing.T) {
	withAPI(map[string]http.Handler{"/api/auth/login": loginHandler("super_admin")}, func(c *Client) {
		assert.False(t, c.Session().Authenticated())

		_, ok := c.Login("test@batlama.com", "test123")
		require.True(t, ok)

		s := c.Session()
		assert.True(t, s.Authenticated())
		assert.Equal(t, "token-123", s.Token.StringValue())
		assert.Equal(t, "super_admin", s.Role())
		assert.True(t, s.IsPrivileged())
	})
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})
	withAPI(map[string]http.Handler{"/api/auth/login": handler}, func(c *Client) {
		resp, ok := c.Login("test@batlama.com", "wrong")

		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", resp.Detail())
		assert.False(t, c.Session().Authenticated())
		assert.True(t, c.Session().User.IsNull())
	})
}

func TestLoginWithoutTokenFails(t *testing.T) {
	handler := httphelpers.HandlerWithJSONResponse(map[string]interface{}{"user": map[string]string{"role": "admin"}}, nil)
	withAPI(map[string]http.Handler{"/api/auth/login": handler}, func(c *Client) {
		_, ok := c.Login("test@batlama.com", "test123")

		assert.False(t, ok)
		assert.False(t, c.Session().Authenticated())
	})
}

func TestWithLoggerSharesSession(t *testing.T) {
	withAPI(map[string]http.Handler{"/api/auth/login": loginHandler("admin")}, func(c *Client) {
		logger := &framework.CapturingLogger{}
		c1 := c.WithLogger(logger)

		_, ok := c1.Login("test@batlama.com", "test123")
		require.True(t, ok)

		assert.True(t, c.Session().Authenticated())
		require.NotEmpty(t, logger.Output())
		for _, m := range logger.Output() {
			assert.NotContains(t, m.Message, "test123")
		}
	})
}
