// Package assistant wires the reasoning agent, the capability table, and the
// interaction history into one interface session.
package assistant

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Pablo-Gaspar/baka/internal/agent"
	"github.com/Pablo-Gaspar/baka/internal/command"
	"github.com/Pablo-Gaspar/baka/internal/history"
)

// Tool binds a capability to the code that fulfills it through the gateway.
type Tool struct {
	Capability agent.Capability
	Run        func(input string) command.Result
}

// Recorder receives a post-hoc record of each interaction. The session never
// reads it back; a recording failure must not fail the interaction.
type Recorder interface {
	Add(rec history.Record) error
}

// Session owns the collaborators for one interface session. Construct one
// per CLI (or future voice) session and let it go out of scope with the
// session; nothing in here is process-global.
type Session struct {
	agent   agent.Agent
	tools   []Tool
	history Recorder
	log     zerolog.Logger
}

// NewSession creates a session. history may be nil when recording is
// disabled.
func NewSession(a agent.Agent, tools []Tool, recorder Recorder, log zerolog.Logger) *Session {
	return &Session{agent: a, tools: tools, history: recorder, log: log}
}

// HandleInput runs one interaction: a single agent decision, at most one
// capability invocation, and a best-effort history record. The returned
// string is the textual response for the interface; structured detail stays
// in the history record.
func (s *Session) HandleInput(ctx context.Context, input, source string) string {
	s.log.Info().Str("source", source).Str("input", truncate(input, 100)).Msg("handling input")

	capabilities := make([]agent.Capability, len(s.tools))
	for i, t := range s.tools {
		capabilities[i] = t.Capability
	}

	decision, err := s.agent.Decide(ctx, input, capabilities)
	if err != nil {
		s.log.Error().Err(err).Msg("agent decision failed")
		response := fmt.Sprintf("An internal error occurred while interpreting the command: %v", err)
		s.record(history.Record{
			UserInput:     input,
			AgentAction:   "error",
			ActionDetails: err.Error(),
			AgentResponse: response,
		})
		return response
	}

	if !decision.IsToolCall() {
		s.record(history.Record{
			UserInput:     input,
			AgentAction:   "direct_response",
			AgentResponse: decision.Answer,
			Success:       true,
		})
		return decision.Answer
	}

	tool := s.findTool(decision.Tool)
	if tool == nil {
		s.log.Warn().Str("tool", decision.Tool).Msg("agent selected an unknown capability")
		response := fmt.Sprintf("The agent selected an unknown capability %q.", decision.Tool)
		s.record(history.Record{
			UserInput:     input,
			AgentAction:   "error",
			ActionDetails: "unknown capability " + decision.Tool,
			AgentResponse: response,
		})
		return response
	}

	result := tool.Run(decision.Input)
	s.log.Info().
		Str("tool", decision.Tool).
		Bool("succeeded", result.Succeeded).
		Stringer("failure", result.Failure).
		Msg("capability invoked")

	s.record(history.Record{
		UserInput:     input,
		AgentAction:   "use_tool:" + decision.Tool,
		ActionDetails: decision.Input,
		ToolOutput:    result.Output,
		AgentResponse: result.Output,
		Success:       result.Succeeded,
	})
	return result.Output
}

func (s *Session) findTool(name string) *Tool {
	for i := range s.tools {
		if s.tools[i].Capability.Name == name {
			return &s.tools[i]
		}
	}
	return nil
}

func (s *Session) record(rec history.Record) {
	if s.history == nil {
		return
	}
	if err := s.history.Add(rec); err != nil {
		s.log.Warn().Err(err).Msg("failed to record interaction history")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
