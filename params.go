package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/batlama/inspection-api-contract-tests/framework"

	"github.com/alessio/shellescape"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultEmail      = "test@batlama.com"
	defaultPassword   = "test123"
	defaultReportPath = "backend_test_results.json"
	defaultTimeout    = 30 * time.Second
)

var defaultEnvFiles = []string{".env", ".env.local"}

// environmentDefaults are read from the process environment, after loading any .env files, and
// become the defaults for the corresponding command-line flags.
type environmentDefaults struct {
	ServiceURL string        `env:"API_TEST_URL" envDefault:"https://batlama-template.preview.emergentagent.com"`
	Email      string        `env:"API_TEST_EMAIL" envDefault:"test@batlama.com"`
	Password   string        `env:"API_TEST_PASSWORD" envDefault:"test123"`
	ReportPath string        `env:"API_TEST_REPORT" envDefault:"backend_test_results.json"`
	Timeout    time.Duration `env:"API_TEST_TIMEOUT" envDefault:"30s"`
}

type commandParams struct {
	serviceURL string
	email      string
	password   string
	reportPath string
	timeout    time.Duration
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
	noColor    bool
}

func (c *commandParams) Read(args []string) bool {
	return c.read(args, defaultEnvFiles, os.Stderr)
}

func (c *commandParams) read(args []string, envFiles []string, errOut io.Writer) bool {
	defaults, err := loadEnvironmentDefaults(envFiles)
	if err != nil {
		fmt.Fprintf(errOut, "Invalid environment: %s\n", err)
		return false
	}

	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.serviceURL, "url", defaults.ServiceURL, "base URL of the service under test")
	fs.StringVar(&c.email, "email", defaults.Email, "email of the test user")
	fs.StringVar(&c.password, "password", defaults.Password, "password of the test user")
	fs.StringVar(&c.reportPath, "report", defaults.ReportPath, "file to save detailed results to")
	fs.DurationVar(&c.timeout, "timeout", defaults.Timeout, "timeout for each request")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.serviceURL == "" {
		fmt.Fprintln(errOut, "-url is required")
		fs.Usage()
		return false
	}
	if c.timeout <= 0 {
		fmt.Fprintln(errOut, "-timeout must be positive")
		fs.Usage()
		return false
	}
	return true
}

func loadEnvironmentDefaults(envFiles []string) (environmentDefaults, error) {
	var existing []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return environmentDefaults{}, errors.Wrap(err, "loading .env files")
		}
	}
	var d environmentDefaults
	if err := env.Parse(&d); err != nil {
		return environmentDefaults{}, errors.Wrap(err, "parsing environment variables")
	}
	return d, nil
}

// rerunCommand returns a command line that runs only the tests that failed. The password is
// never included; see passwordHint.
func (c *commandParams) rerunCommand(programName string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(programName, "-url", c.serviceURL)
	if c.email != defaultEmail {
		b.add("-email", c.email)
	}
	if c.timeout != defaultTimeout {
		b.add("-timeout", c.timeout.String())
	}
	if c.reportPath != defaultReportPath {
		b.add("-report", c.reportPath)
	}
	for _, f := range failures {
		b.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return b.String()
}

// passwordHint returns a reminder to print under the rerun command when it would not log in
// without extra configuration, or "" if it would.
func (c *commandParams) passwordHint() string {
	if c.password == defaultPassword {
		return ""
	}
	return "(the password is not repeated; set API_TEST_PASSWORD or pass -password)"
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
