package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results     Results
	testLogger  TestLogger
	debugLogger Logger
	filter      Filter
	now         func() time.Time
}

// Context is used similarly to *testing.T. It implements require.TestingT, so assertions from
// testify can be used within a test, and it has Run and Group methods for nesting.
//
// Only contexts created by Run are tests: each produces exactly one TestResult when its action
// returns, even if the action panicked. Contexts created by Group are just a way of naming a
// set of tests and are never recorded.
type Context struct {
	env         *environment
	id          TestID
	group       bool
	debugLogger CapturingLogger
	failed      bool
	details     string
	errors      []error
}

// Run executes the top-level action and returns the results of every test that it ran.
//
// The debugLogger receives debug output produced outside of any test, for instance by requests
// made at the group level. It may be nil.
func Run(
	filter Filter,
	testLogger TestLogger,
	debugLogger Logger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	env := &environment{
		filter:      filter,
		testLogger:  testLogger,
		debugLogger: debugLogger,
		now:         time.Now,
	}
	c := &Context{env: env, group: true}
	action(c)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
			}
		}
		result := TestResult{
			TestID:    c.id,
			Details:   c.details,
			Errors:    c.errors,
			Timestamp: c.env.now(),
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
		c.env.testLogger.TestFinished(result, c.debugLogger.Output())
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a test, unless it is excluded by the filter. It returns true if the test ran and
// passed.
func (c *Context) Run(name string, action func(*Context)) bool {
	id := c.id.child(name)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.results.Skipped = append(c.env.results.Skipped, id)
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return false
	}
	return c.runTest(id, action)
}

// RunAlways is like Run, but ignores the filter. It is for steps that other tests depend on,
// such as logging in, or that undo what other tests did.
func (c *Context) RunAlways(name string, action func(*Context)) bool {
	return c.runTest(c.id.child(name), action)
}

// Selected returns true if a test with this name would not be excluded by the filter.
func (c *Context) Selected(name string) bool {
	return c.env.filter == nil || c.env.filter(c.id.child(name))
}

func (c *Context) runTest(id TestID, action func(*Context)) bool {
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	return !c1.failed
}

// Group runs an action that will create tests whose IDs are prefixed with the group name.
func (c *Context) Group(name string, action func(*Context)) {
	c1 := &Context{
		id:    c.id.child(name),
		env:   c.env,
		group: true,
	}
	c.env.testLogger.GroupStarted(c1.id)
	action(c1)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	c.errors = append(c.errors, fmt.Errorf(format, args...))
}

func (c *Context) FailNow() {
	panic(c)
}

// Detailf sets the human-readable description of what the test observed. Each call replaces
// the previous value.
func (c *Context) Detailf(format string, args ...interface{}) {
	c.details = fmt.Sprintf(format, args...)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.DebugLogger().Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	if c.group {
		return c.env.debugLogger
	}
	return &c.debugLogger
}
