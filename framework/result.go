package framework

import (
	"strings"
	"time"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestID
}

// TestResult is the recorded outcome of one test. It is never modified after the test finishes.
type TestResult struct {
	TestID    TestID
	Details   string
	Errors    []error
	Timestamp time.Time
}

func (r TestResult) Success() bool {
	return len(r.Errors) == 0
}

// ErrorMessage returns all of the test's errors as a single string, or "" if it passed.
func (r TestResult) ErrorMessage() string {
	var ss []string
	for _, e := range r.Errors {
		ss = append(ss, e.Error())
	}
	return strings.Join(ss, "; ")
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Summary holds the counts derived from a Results. It is computed on demand rather than stored.
type Summary struct {
	Total       int
	Passed      int
	Failed      int
	SuccessRate float64
}

func (r Results) Summary() Summary {
	s := Summary{Total: len(r.Tests)}
	for _, t := range r.Tests {
		if t.Success() {
			s.Passed++
		}
	}
	s.Failed = s.Total - s.Passed
	if s.Total > 0 {
		s.SuccessRate = float64(s.Passed) / float64(s.Total) * 100
	}
	return s
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name returns the last path component, which is the name the test was given when it was run.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}

func (t TestID) child(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}
