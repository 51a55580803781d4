package chain

import (
	"context"
	"math/big"
	"sync"
)

// Call records one interaction observed by a Recorder.
type Call struct {
	Method string
	Args   []any
	Sender string
	Value  *big.Int
	View   bool
}

// Recorder is an in-memory Client that records every interaction and answers
// with canned results. It exists for tests and examples of generated code.
type Recorder struct {
	mu sync.Mutex

	// ViewResults maps method name to the value CallView returns for it.
	ViewResults map[string]any
	// Fail lists method names whose invocation should report failure.
	Fail map[string]bool

	calls []Call
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		ViewResults: make(map[string]any),
		Fail:        make(map[string]bool),
	}
}

// CallView implements Client.
func (r *Recorder) CallView(ctx context.Context, method string, args ...any) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: method, Args: args, View: true})
	return r.ViewResults[method], nil
}

// SendTransaction implements Client.
func (r *Recorder) SendTransaction(ctx context.Context, sender string, value *big.Int, method string, args ...any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: method, Args: args, Sender: sender, Value: value})
	return !r.Fail[method], nil
}

// Calls returns a copy of the recorded interactions, in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}
