package apitests

import (
	"github.com/batlama/inspection-api-contract-tests/apiclient"
	"github.com/batlama/inspection-api-contract-tests/framework"
)

// RunTestSuite runs every probe in order. If login does not succeed, nothing else is run.
func RunTestSuite(
	client *apiclient.Client,
	params SuiteParams,
	filter framework.Filter,
	testLogger framework.TestLogger,
	debugLogger framework.Logger,
) framework.Results {
	return framework.Run(filter, testLogger, debugLogger, func(c *framework.Context) {
		t := &T{
			context: c,
			env: &environment{
				client: client,
				params: params,
			},
		}

		var loggedIn bool
		t.Group("Authentication", func(t *T) {
			loggedIn = DoLoginTest(t)
		})
		if !loggedIn {
			t.Debug("Login failed, not running any other tests")
			return
		}

		t.Group("Dashboard", DoDashboardTests)
		t.Group("Constructions", DoConstructionTests)
		t.Group("Site inspections", DoInspectionTests)
		t.Group("Progress payments", DoPaymentTests)
		t.Group("Licenses", DoLicenseTests)
		t.Group("Work plans", DoWorkPlanTests)
		t.Group("User management", DoUserManagementTests)
		t.Group("Companies", DoCompanyTests)
		t.Group("Activity logs", DoActivityTests)
		t.Group("Cleanup", DoCleanup)
	})
}
