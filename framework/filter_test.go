package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testID(path ...string) TestID {
	return TestID{Path: path}
}

func TestRegexFiltersWithNoPatternsAllowEverything(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter(testID("Licenses", "Create license")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^Licenses/"))

	assert.True(t, f.AsFilter(testID("Licenses", "Create license")))
	assert.False(t, f.AsFilter(testID("Companies", "Get companies list")))
}

func TestRegexFiltersMustNotMatchWins(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("Licenses"))
	require.NoError(t, f.MustNotMatch.Set("Create"))

	assert.True(t, f.AsFilter(testID("Licenses", "Get licenses list")))
	assert.False(t, f.AsFilter(testID("Licenses", "Create license")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("("))
	assert.False(t, r.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var f RegexFilters
	var buf bytes.Buffer
	PrintFilterDescription(&buf, f)
	assert.Equal(t, "", buf.String())

	require.NoError(t, f.MustMatch.Set("a"))
	require.NoError(t, f.MustMatch.Set("b"))
	PrintFilterDescription(&buf, f)
	assert.Contains(t, buf.String(), `skip any not matching "a" or "b"`)
}
