package apitests

import (
	"net/http"

	"github.com/batlama/inspection-api-contract-tests/apiclient"
	"github.com/batlama/inspection-api-contract-tests/framework"
)

// SuiteParams are the values that vary between test runs.
type SuiteParams struct {
	Email    string
	Password string
}

type environment struct {
	client  *apiclient.Client
	params  SuiteParams
	created []createdRecord
}

type createdRecord struct {
	resource resource
	id       string
}

// T represents a test, or a group of tests, in the API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner. Those features are provided by our lower-level framework package.
//
// It also provides functionality that is specific to this API: every request made through a T
// uses the shared session and writes its debug output to that test's log.
type T struct {
	context *framework.Context
	env     *environment
}

func (t *T) scope(c *framework.Context) *T {
	return &T{context: c, env: t.env}
}

// Errorf is called to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow causes the test to exit immediately.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a test, returning true if it ran and passed.
func (t *T) Run(name string, action func(*T)) bool {
	return t.context.Run(name, func(c *framework.Context) {
		action(t.scope(c))
	})
}

// Group runs a set of tests whose names will be prefixed with the group name.
func (t *T) Group(name string, action func(*T)) {
	t.context.Group(name, func(c *framework.Context) {
		action(t.scope(c))
	})
}

// Detailf describes what the test observed. The description appears in the console output and
// in the report regardless of whether the test passed.
func (t *T) Detailf(format string, args ...interface{}) {
	t.context.Detailf(format, args...)
}

func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) Session() apiclient.Session {
	return t.env.client.Session()
}

func (t *T) client() *apiclient.Client {
	return t.env.client.WithLogger(t.context.DebugLogger())
}

// Probe makes a request and returns the result without affecting the test's outcome.
func (t *T) Probe(method, path string, body interface{}) (bool, apiclient.Response) {
	return t.client().Probe(method, path, body, http.StatusOK)
}

// RequireProbe makes a request that is expected to return 200. If it does not, the test fails
// immediately, reporting the status and the service's explanation.
func (t *T) RequireProbe(method, path string, body interface{}) apiclient.Response {
	ok, resp := t.Probe(method, path, body)
	if !ok {
		t.failWithResponse(resp, "")
	}
	return resp
}

func (t *T) failWithResponse(resp apiclient.Response, defaultMessage string) {
	t.Detailf("Status: %d", resp.StatusCode)
	if defaultMessage == "" {
		if resp.StatusCode == 0 {
			defaultMessage = "request failed"
		} else {
			defaultMessage = http.StatusText(resp.StatusCode)
		}
	}
	t.Errorf("%s", resp.DetailOrDefault(defaultMessage))
	t.FailNow()
}

// RequirePrivilegedSession fails the test immediately, without making any requests, if the
// logged-in user is not an administrator.
func (t *T) RequirePrivilegedSession(message string) {
	if !t.Session().IsPrivileged() {
		t.Errorf("%s", message)
		t.FailNow()
	}
}

// RunAlways is like Run, but the test cannot be excluded by filters.
func (t *T) RunAlways(name string, action func(*T)) bool {
	return t.context.RunAlways(name, func(c *framework.Context) {
		action(t.scope(c))
	})
}

// Selected returns true if a test with this name would be run.
func (t *T) Selected(name string) bool {
	return t.context.Selected(name)
}
