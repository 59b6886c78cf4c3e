// Package agent defines the reasoning seam between user input and the
// assistant's capabilities. The gateway stays agnostic to how decisions are
// made: any backend that can turn input text plus a capability list into a
// decision plugs in here.
package agent

import "context"

// Capability describes one action the assistant can take on the user's
// behalf. Descriptions are written for the reasoning backend, not the user.
type Capability struct {
	Name        string
	Description string
}

// Decision is the outcome of one reasoning step: either a final answer for
// the user, or a single capability invocation. Exactly one side is set.
type Decision struct {
	Answer string
	Tool   string
	Input  string
}

// IsToolCall reports whether the decision selects a capability.
func (d Decision) IsToolCall() bool { return d.Tool != "" }

// Agent turns user input and the available capabilities into a Decision.
// A language-model backend implements this with a real reasoning loop; the
// bundled RuleAgent implements it with keyword matching.
type Agent interface {
	Decide(ctx context.Context, input string, capabilities []Capability) (Decision, error)
}
