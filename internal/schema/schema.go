// Package schema defines the strict wire contract between the parsing core
// and the generation capability. The same shape is sent to the model as a
// structured-output constraint and re-validated locally, because the model
// is an unreliable collaborator and its replies cross a trust boundary.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/models"
)

// Response discriminator values.
const (
	TypeSuccess    = "success"
	TypeIncomplete = "incomplete"
)

// WireTransaction is one candidate transaction as the model emits it.
// Date is nullable rather than optional because structured-output engines
// honor "required but nullable" far more reliably than field omission.
type WireTransaction struct {
	AmountPaise int64   `json:"amountPaise"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Date        *string `json:"date"`
	Title       string  `json:"title"`
}

// WireResponse is the complete model reply.
type WireResponse struct {
	Type    string            `json:"type"`
	Data    []WireTransaction `json:"data"`
	Message string            `json:"message"`
}

// ResponseSchema is the JSON-schema document sent to the generation
// capability as a strict output constraint: closed objects, every declared
// field required, closed enums.
var ResponseSchema = json.RawMessage(`{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"type": {"type": "string", "enum": ["success", "incomplete"]},
		"data": {
			"type": "array",
			"items": {
				"type": "object",
				"additionalProperties": false,
				"properties": {
					"amountPaise": {"type": "integer", "minimum": 1},
					"category": {
						"type": "string",
						"enum": ["FOOD", "TRANSPORT", "ENTERTAINMENT", "SHOPPING", "UTILITIES", "HEALTHCARE", "EDUCATION", "TRAVEL", "GROCERIES", "RENT", "SALARY", "FREELANCE", "INVESTMENT", "GIFT", "OTHER"]
					},
					"type": {"type": "string", "enum": ["INCOME", "EXPENSE"]},
					"date": {
						"type": ["string", "null"],
						"description": "dd/mm/yyyy or null if unspecified"
					},
					"title": {"type": "string"}
				},
				"required": ["amountPaise", "category", "type", "date", "title"]
			}
		},
		"message": {"type": "string"}
	},
	"required": ["type", "data", "message"]
}`)

// CleanRawReply strips markdown code fences and surrounding junk that models
// sometimes wrap around JSON output despite instructions not to.
func CleanRawReply(raw string) string {
	s := strings.TrimSpace(raw)

	// A trailing fence is only stripped when a leading one was seen, so
	// backticks inside an un-fenced reply's strings survive.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	// Keep only the outermost JSON object if junk remains around it.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

// Decode parses a raw model reply into a WireResponse. Unknown fields are
// rejected: the contract is closed in both directions.
func Decode(raw string) (*WireResponse, error) {
	clean := CleanRawReply(raw)

	dec := json.NewDecoder(bytes.NewReader([]byte(clean)))
	dec.DisallowUnknownFields()

	var resp WireResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("malformed reply: %w", err)
	}
	return &resp, nil
}

// Validate checks the structural invariants of a decoded reply. A failure
// here means the generation capability violated its contract, which the
// caller must treat differently from a self-reported incomplete.
func (r *WireResponse) Validate() error {
	switch r.Type {
	case TypeSuccess:
		if len(r.Data) == 0 {
			return fmt.Errorf("success reply carries no transactions")
		}
		for i, wt := range r.Data {
			if err := validateWireTransaction(wt); err != nil {
				return fmt.Errorf("transaction %d: %w", i, err)
			}
		}
	case TypeIncomplete:
		if strings.TrimSpace(r.Message) == "" {
			return fmt.Errorf("incomplete reply carries no message")
		}
	default:
		return fmt.Errorf("unknown response type %q", r.Type)
	}
	return nil
}

func validateWireTransaction(wt WireTransaction) error {
	if wt.AmountPaise <= 0 {
		return fmt.Errorf("amountPaise must be positive, got %d", wt.AmountPaise)
	}
	if !models.Category(wt.Category).Valid() {
		return fmt.Errorf("unknown category %q", wt.Category)
	}
	if !models.Direction(wt.Type).Valid() {
		return fmt.Errorf("unknown transaction type %q", wt.Type)
	}
	if wt.Date != nil {
		if _, err := dateutils.Parse(*wt.Date); err != nil {
			return err
		}
	}
	if strings.TrimSpace(wt.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	return nil
}

// Candidates converts a validated success reply into candidate transactions,
// filling the anchor date onto any transaction the model left dateless.
// This is the only place the default-date fill happens.
func (r *WireResponse) Candidates(anchor time.Time) []models.CandidateTransaction {
	anchorDate := dateutils.Format(anchor)
	out := make([]models.CandidateTransaction, 0, len(r.Data))
	for _, wt := range r.Data {
		date := anchorDate
		if wt.Date != nil {
			date = *wt.Date
		}
		out = append(out, models.CandidateTransaction{
			AmountPaise: wt.AmountPaise,
			Category:    models.Category(wt.Category),
			Direction:   models.Direction(wt.Type),
			Date:        date,
			Title:       strings.TrimSpace(wt.Title),
		})
	}
	return out
}
