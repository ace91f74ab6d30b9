package agent

import "strconv"

// Payload is the decoded JSON body of an action request. The
// discriminator key stays in the map; handlers just ignore it.
type Payload map[string]any

// Result is the structured reply of a handler. Logical failures (unknown
// query, upstream chat errors) are reported inside a Result, not as an
// error; an error return is reserved for validation and storage faults.
type Result map[string]any

// Agent processes one category of action request.
type Agent interface {
	Handle(payload Payload) (Result, error)
}

// ValidationError reports a required payload field that is missing or
// has the wrong shape. The HTTP layer turns it into a 400.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// Dispatcher routes an action request to exactly one registered agent.
// The table is copied at construction and never mutated afterwards.
type Dispatcher struct {
	agents map[string]Agent
}

func NewDispatcher(agents map[string]Agent) *Dispatcher {
	table := make(map[string]Agent, len(agents))
	for key, a := range agents {
		table[key] = a
	}
	return &Dispatcher{agents: table}
}

// Dispatch delegates to the agent registered under agentType and returns
// its result verbatim. An unrecognized type is a normal outcome, reported
// in the result body.
func (d *Dispatcher) Dispatch(agentType string, payload Payload) (Result, error) {
	a, ok := d.agents[agentType]
	if !ok {
		return Result{"error": "Invalid agent type"}, nil
	}
	return a.Handle(payload)
}

func stringField(p Payload, key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// uintField accepts both JSON numbers and numeric strings, since the
// web gateway forwards form values as strings.
func uintField(p Payload, key string) (uint, bool) {
	switch v := p[key].(type) {
	case float64:
		if v >= 0 {
			return uint(v), true
		}
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return uint(n), true
		}
	}
	return 0, false
}
