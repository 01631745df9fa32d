package harness

// TraceEvent records one attempt of a scenario's search.
type TraceEvent struct {
	Attempt  int   `json:"attempt"`
	Scores   []int `json:"scores"`
	Accepted bool  `json:"accepted"`
}

// Outcome is what the search reported.
type Outcome struct {
	Found     bool   `json:"found"`
	Attempts  int    `json:"attempts"`
	Tolerance int    `json:"tolerance"`
	Scores    []int  `json:"scores,omitempty"`
	RunID     string `json:"run_id"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every expectation and contract check holds.
	Pass bool `json:"pass"`

	// Outcome is the search result.
	Outcome Outcome `json:"outcome"`

	// Trace contains every attempt in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddAttempt appends an attempt to the trace.
func (r *Result) AddAttempt(attempt int, scores []int, accepted bool) {
	r.Trace = append(r.Trace, TraceEvent{
		Attempt:  attempt,
		Scores:   scores,
		Accepted: accepted,
	})
}
