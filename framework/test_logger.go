package framework

// TestLogger receives notifications as the test suite progresses.
type TestLogger interface {
	GroupStarted(id TestID)
	TestFinished(result TestResult, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) GroupStarted(TestID)                     {}
func (n nullTestLogger) TestFinished(TestResult, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)              {}
