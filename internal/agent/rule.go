package agent

import (
	"context"
	"fmt"
	"strings"
)

// RuleAgent is a deterministic keyword matcher used when no language-model
// backend is configured. It only ever selects capabilities it was offered,
// and answers with the capability list when nothing matches, so the
// assistant stays usable without any model.
type RuleAgent struct{}

// NewRuleAgent creates the rule-based fallback agent.
func NewRuleAgent() *RuleAgent {
	return &RuleAgent{}
}

// Well-known capability names the rule agent understands.
const (
	CapListDirectory = "list_directory"
	CapListProcesses = "list_processes"
	CapStartProgram  = "start_program"
	CapListVMs       = "list_vms"
	CapStartVM       = "start_vm"
	CapStopVM        = "stop_vm"
)

// Decide matches the input against a fixed rule table. Rules are ordered:
// process and VM phrasing is checked before the generic "open"/"start"
// program rule so that "start the vm devbox" is not read as a program launch.
func (a *RuleAgent) Decide(_ context.Context, input string, capabilities []Capability) (Decision, error) {
	offered := make(map[string]bool, len(capabilities))
	for _, c := range capabilities {
		offered[c.Name] = true
	}

	lower := strings.ToLower(input)
	hasAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	switch {
	case offered[CapListProcesses] && hasAny("process", "task"):
		return Decision{Tool: CapListProcesses}, nil

	case hasAny("vm", "virtual machine"):
		switch {
		case offered[CapStartVM] && hasAny("start", "boot", "power on"):
			return Decision{Tool: CapStartVM, Input: lastIdentifier(input)}, nil
		case offered[CapStopVM] && hasAny("stop", "shut", "power off"):
			return Decision{Tool: CapStopVM, Input: lastIdentifier(input)}, nil
		case offered[CapListVMs]:
			return Decision{Tool: CapListVMs}, nil
		}

	case offered[CapListDirectory] && hasAny("file", "folder", "director", "dir "):
		return Decision{Tool: CapListDirectory, Input: pathIdentifier(input)}, nil

	case offered[CapStartProgram] && hasAny("open", "launch", "start", "run"):
		return Decision{Tool: CapStartProgram, Input: lastIdentifier(input)}, nil
	}

	return Decision{Answer: unknownCommandAnswer(capabilities)}, nil
}

// lastIdentifier extracts the last word of the input as the likely target of
// the command, with surrounding quotes and sentence punctuation stripped.
func lastIdentifier(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[len(fields)-1], `"'.,!?`)
}

// pathIdentifier looks for a token that resembles a filesystem path and
// defaults to the current directory when the phrasing names none.
func pathIdentifier(input string) string {
	for _, f := range strings.Fields(input) {
		f = strings.Trim(f, `"'.,!?`)
		if strings.ContainsAny(f, `\/`) || strings.Contains(f, ":") {
			return f
		}
	}
	return "."
}

func unknownCommandAnswer(capabilities []Capability) string {
	var b strings.Builder
	b.WriteString("I did not understand that command. I can help with:\n")
	for _, c := range capabilities {
		fmt.Fprintf(&b, "  - %s: %s\n", c.Name, c.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
