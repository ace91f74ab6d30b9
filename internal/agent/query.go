package agent

// QueryAgent answers a fixed set of campus questions from a lookup
// table. No persistence, no external calls.
type QueryAgent struct{}

func NewQueryAgent() *QueryAgent {
	return &QueryAgent{}
}

var cannedAnswers = map[string]string{
	"academic_calendar": "The academic calendar is available online.",
	"backlog_exams":     "Backlog exams will be held next month.",
}

func (a *QueryAgent) Handle(payload Payload) (Result, error) {
	query, ok := stringField(payload, "query")
	if !ok {
		return nil, &ValidationError{Field: "query"}
	}
	answer, ok := cannedAnswers[query]
	if !ok {
		answer = "Unknown query"
	}
	return Result{"response": answer}, nil
}
