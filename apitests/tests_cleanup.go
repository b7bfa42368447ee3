package apitests

import (
	"net/http"
)

// DoCleanup deletes every record that the create tests reported. Deleting requires an
// administrator; for anyone else a single failure is recorded and no requests are made.
func DoCleanup(t *T) {
	if !t.Session().IsPrivileged() {
		t.Run("Cleanup", func(t *T) {
			t.RequirePrivilegedSession("Insufficient permissions for cleanup")
		})
		return
	}

	// these always run, so that filtering can never leave test records behind
	for _, record := range t.env.created {
		record := record
		t.RunAlways("Cleanup "+record.resource.noun, func(t *T) {
			t.RequireProbe(http.MethodDelete, deletePath(record.resource, record.id), nil)
			t.Detailf("Deleted %s %s", record.resource.noun, record.id)
		})
	}
}
