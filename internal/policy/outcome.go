package policy

import "github.com/saicharanbm/finTrack/internal/models"

// Status discriminates the two terminal parse outcomes.
type Status string

const (
	StatusSuccess    Status = "success"
	StatusIncomplete Status = "incomplete"
)

// Outcome is the tagged result of evaluating one parse request. Exactly one
// variant is ever populated: Transactions on success, Message on incomplete.
// Construct it through Success or Incomplete so the invariant holds.
type Outcome struct {
	Status       Status                        `json:"type"`
	Transactions []models.CandidateTransaction `json:"data,omitempty"`
	Message      string                        `json:"message,omitempty"`
}

// Success builds a success outcome carrying the full candidate list.
func Success(transactions []models.CandidateTransaction) Outcome {
	return Outcome{
		Status:       StatusSuccess,
		Transactions: transactions,
	}
}

// Incomplete builds an incomplete outcome carrying an actionable message.
func Incomplete(message string) Outcome {
	return Outcome{
		Status:  StatusIncomplete,
		Message: message,
	}
}

// IsSuccess reports whether the outcome carries transactions.
func (o Outcome) IsSuccess() bool {
	return o.Status == StatusSuccess
}
