// Package apitests contains the contract tests for the construction inspection API and their
// supporting test API.
//
// Test infrastructure that is not specific to this application, such as test contexts, filters
// and result reporting, is in the lower-level framework package. Making the HTTP requests is
// the job of the apiclient package.
package apitests
