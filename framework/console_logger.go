package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	skipLabel = color.New(color.FgYellow).SprintFunc()
	groupName = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// ConsoleTestLogger writes one block of output per test as each test finishes.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return color.Output
	}
	return c.Out
}

func (c *ConsoleTestLogger) GroupStarted(id TestID) {
	fmt.Fprintf(c.out(), "\n%s\n", groupName(id.String()))
}

func (c *ConsoleTestLogger) TestFinished(result TestResult, debugOutput CapturedOutput) {
	out := c.out()
	failed := !result.Success()
	if failed {
		fmt.Fprintf(out, "%s - %s\n", failLabel("FAIL"), result.TestID.Name())
	} else {
		fmt.Fprintf(out, "%s - %s\n", passLabel("PASS"), result.TestID.Name())
	}
	if result.Details != "" {
		fmt.Fprintf(out, "    Details: %s\n", result.Details)
	}
	for _, err := range result.Errors {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(out, "    Error: %s\n", line)
		}
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "%s - %s\n", skipLabel("SKIPPED"), id.Name())
	} else {
		fmt.Fprintf(c.out(), "%s - %s (%s)\n", skipLabel("SKIPPED"), id.Name(), reason)
	}
}
