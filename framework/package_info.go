// Package framework contains the domain-independent parts of the test harness.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing pieces of
// test logic to be associated with a test identifier and to accumulate success/failure results.
// Tests run strictly one after another; a failed test never stops the ones after it.
//
// 2. Tests can be organized into named groups, and selected or excluded with regex filters
// against their slash-separated IDs.
//
// 3. A TestLogger reports progress as tests finish, and PrintResults renders a summary once the
// run is over.
//
// The domain-specific code that knows what is being tested is responsible for making requests
// to the service under test and for deciding what counts as a pass.
package framework
