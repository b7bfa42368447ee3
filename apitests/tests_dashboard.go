package apitests

import (
	"net/http"
	"strings"

	"github.com/batlama/inspection-api-contract-tests/apiclient"
	"github.com/batlama/inspection-api-contract-tests/servicedef"
)

// DoDashboardTests checks the dashboard statistics. Not every deployment has the stats
// endpoint, so if it fails the activity feed that the dashboard also shows is checked instead.
func DoDashboardTests(t *T) {
	const statsTestName = "Dashboard stats"

	var statsOK bool
	var stats apiclient.Response
	if t.Selected(statsTestName) {
		statsOK, stats = t.Probe(http.MethodGet, servicedef.PathDashboardStats, nil)
	}
	if statsOK {
		t.Run(statsTestName, func(t *T) {
			if keys := stats.Keys(); keys != nil {
				t.Detailf("Stats loaded: [%s]", strings.Join(keys, " "))
			} else {
				t.Detailf("Stats loaded: Data received")
			}
		})
		return
	}
	if t.Selected(statsTestName) {
		t.Debug("Dashboard stats returned status %d, falling back to activities", stats.StatusCode)
	}

	t.Run("Dashboard activities", func(t *T) {
		resp := t.RequireProbe(http.MethodGet, servicedef.PathActivities, nil)
		if resp.IsList() {
			t.Detailf("Activities count: %d", resp.Count())
		} else {
			t.Detailf("Activities count: Data received")
		}
	})
}
