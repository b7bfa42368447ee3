// Package report turns the results of a test run into the JSON document that is saved at the
// end of every run.
package report

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/batlama/inspection-api-contract-tests/framework"

	"github.com/pkg/errors"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TimestampFormat is ISO-8601 with microseconds.
const TimestampFormat = "2006-01-02T15:04:05.000000Z07:00"

type Report struct {
	Summary         Summary       `json:"summary"`
	DetailedResults []Entry       `json:"detailed_results"`
	UserInfo        ldvalue.Value `json:"user_info"`
}

type Summary struct {
	TotalTests    int     `json:"total_tests"`
	PassedTests   int     `json:"passed_tests"`
	FailedTests   int     `json:"failed_tests"`
	SuccessRate   float64 `json:"success_rate"`
	TestTimestamp string  `json:"test_timestamp"`
	BackendURL    string  `json:"backend_url"`
	TestUser      string  `json:"test_user"`
	RunID         string  `json:"run_id"`
}

// Entry is the saved form of one framework.TestResult.
type Entry struct {
	TestName  string `json:"test_name"`
	Success   bool   `json:"success"`
	Details   string `json:"details"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

// RunInfo describes the run as a whole, as opposed to its individual results.
type RunInfo struct {
	RunID      string
	BackendURL string
	TestUser   string
	UserInfo   ldvalue.Value
	FinishedAt time.Time
}

func New(results framework.Results, info RunInfo) Report {
	s := results.Summary()
	r := Report{
		Summary: Summary{
			TotalTests:    s.Total,
			PassedTests:   s.Passed,
			FailedTests:   s.Failed,
			SuccessRate:   s.SuccessRate,
			TestTimestamp: info.FinishedAt.Format(TimestampFormat),
			BackendURL:    info.BackendURL,
			TestUser:      info.TestUser,
			RunID:         info.RunID,
		},
		DetailedResults: make([]Entry, 0, len(results.Tests)),
		UserInfo:        info.UserInfo,
	}
	for _, t := range results.Tests {
		r.DetailedResults = append(r.DetailedResults, Entry{
			TestName:  t.TestID.String(),
			Success:   t.Success(),
			Details:   t.Details,
			Error:     t.ErrorMessage(),
			Timestamp: t.Timestamp.Format(TimestampFormat),
		})
	}
	return r
}

// Marshal encodes the report with two-space indentation. Characters such as "<" and "ş" are
// written as they are rather than escaped.
func (r Report) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, errors.Wrap(err, "encoding report")
	}
	return buf.Bytes(), nil
}

func (r Report) WriteFile(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing report to %s", path)
	}
	return nil
}
