package main

import (
	"fmt"
	"os"
	"time"

	"github.com/batlama/inspection-api-contract-tests/apiclient"
	"github.com/batlama/inspection-api-contract-tests/apitests"
	"github.com/batlama/inspection-api-contract-tests/framework"
	"github.com/batlama/inspection-api-contract-tests/report"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	os.Exit(run(params))
}

func run(params commandParams) int {
	if params.noColor {
		color.NoColor = true
	}
	runID := uuid.NewString()

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		logger := logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.DebugLevel)
		mainDebugLogger = framework.LoggerWithPrefix(logger.WithField("run", runID), "[suite] ")
	}

	fmt.Println("Starting backend API tests")
	fmt.Printf("Backend URL: %s\n", params.serviceURL)
	fmt.Printf("Test user: %s\n", params.email)
	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	client := apiclient.NewClient(apiclient.Config{
		BaseURL: params.serviceURL,
		Timeout: params.timeout,
		Logger:  mainDebugLogger,
	})
	testLogger := &framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := apitests.RunTestSuite(
		client,
		apitests.SuiteParams{Email: params.email, Password: params.password},
		params.filters.AsFilter,
		testLogger,
		mainDebugLogger,
	)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Println("  " + params.rerunCommand(os.Args[0], results.Failures))
		if hint := params.passwordHint(); hint != "" {
			fmt.Println("  " + hint)
		}
	}

	rep := report.New(results, report.RunInfo{
		RunID:      runID,
		BackendURL: params.serviceURL,
		TestUser:   params.email,
		UserInfo:   client.Session().User,
		FinishedAt: time.Now(),
	})
	if err := rep.WriteFile(params.reportPath); err != nil {
		fmt.Fprintf(os.Stderr, "Could not save results: %s\n", err)
		return 1
	}
	fmt.Printf("\nDetailed results saved to: %s\n", params.reportPath)

	if !results.OK() {
		return 1
	}
	return 0
}
