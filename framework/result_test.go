package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeResults(outcomes ...bool) Results {
	var r Results
	for _, ok := range outcomes {
		result := TestResult{TestID: TestID{Path: []string{"x"}}}
		if !ok {
			result.Errors = []error{errors.New("failed")}
			r.Failures = append(r.Failures, result)
		}
		r.Tests = append(r.Tests, result)
	}
	return r
}

func TestSummaryOfEmptyResults(t *testing.T) {
	s := Results{}.Summary()
	assert.Equal(t, Summary{}, s)
	assert.Equal(t, "0%", s.FormatSuccessRate())
}

func TestSummaryAllPassed(t *testing.T) {
	s := makeResults(true, true, true).Summary()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 3, s.Passed)
	assert.Equal(t, 0, s.Failed)
	assert.Equal(t, 100.0, s.SuccessRate)
	assert.Equal(t, "100.0%", s.FormatSuccessRate())
}

func TestSummaryCountsAddUp(t *testing.T) {
	s := makeResults(true, false, true).Summary()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, s.Total, s.Passed+s.Failed)
	assert.Equal(t, "66.7%", s.FormatSuccessRate())
}

func TestTestIDName(t *testing.T) {
	assert.Equal(t, "", TestID{}.Name())
	assert.Equal(t, "b", TestID{Path: []string{"a", "b"}}.Name())
	assert.Equal(t, "a/b", TestID{Path: []string{"a", "b"}}.String())
}
