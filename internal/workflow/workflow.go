package workflow

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/alisyos/contract-scanner/internal/analysis"
)

// Execute runs the analysis workflow for a single request. It builds the
// state graph (compose → invoke → synthesize? → assemble), executes it, and
// extracts the response envelope from the final state. The request must
// already be validated; consent and field checks happen before the graph.
func Execute(ctx context.Context, rt *Runtime, req *analysis.AnalysisRequest) (*analysis.AnalysisResponse, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyRequest, req)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResponse(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("contract-analysis")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("compose", ComposeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("invoke", InvokeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("synthesize", SynthesizeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("assemble", AssembleNode(rt)); err != nil {
		return nil, err
	}

	// compose → invoke (unconditional)
	if err := graph.AddEdge("compose", "invoke", nil); err != nil {
		return nil, err
	}

	// invoke → synthesize (when the model invocation failed)
	if err := graph.AddEdge("invoke", "synthesize", invokeFailed); err != nil {
		return nil, err
	}

	// invoke → assemble (when the model produced an outcome)
	if err := graph.AddEdge("invoke", "assemble", state.Not(invokeFailed)); err != nil {
		return nil, err
	}

	// synthesize → assemble (unconditional)
	if err := graph.AddEdge("synthesize", "assemble", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("compose"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("assemble"); err != nil {
		return nil, err
	}

	return graph, nil
}

func invokeFailed(s state.State) bool {
	val, ok := s.Get(KeyFailed)
	if !ok {
		return false
	}

	failed, ok := val.(bool)
	return ok && failed
}

func extractRequest(s state.State) (*analysis.AnalysisRequest, error) {
	val, ok := s.Get(KeyRequest)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in state", ErrStateInvalid, KeyRequest)
	}

	req, ok := val.(*analysis.AnalysisRequest)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not *analysis.AnalysisRequest", ErrStateInvalid, KeyRequest)
	}

	return req, nil
}

func extractPrompts(s state.State) (ComposedPrompts, error) {
	val, ok := s.Get(KeyPrompts)
	if !ok {
		return ComposedPrompts{}, fmt.Errorf("%w: missing %s in state", ErrStateInvalid, KeyPrompts)
	}

	composed, ok := val.(ComposedPrompts)
	if !ok {
		return ComposedPrompts{}, fmt.Errorf("%w: %s is not ComposedPrompts", ErrStateInvalid, KeyPrompts)
	}

	return composed, nil
}

func extractOutcome(s state.State) (Outcome, error) {
	val, ok := s.Get(KeyOutcome)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: missing %s in state", ErrStateInvalid, KeyOutcome)
	}

	outcome, ok := val.(Outcome)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s is not Outcome", ErrStateInvalid, KeyOutcome)
	}

	return outcome, nil
}

func extractResponse(s state.State) (*analysis.AnalysisResponse, error) {
	val, ok := s.Get(KeyResponse)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s in final state", ErrStateInvalid, KeyResponse)
	}

	resp, ok := val.(*analysis.AnalysisResponse)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not *analysis.AnalysisResponse", ErrStateInvalid, KeyResponse)
	}

	return resp, nil
}
