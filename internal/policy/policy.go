// Package policy decides whether a set of model-proposed candidate
// transactions forms a successful parse or an incomplete one. The policy is
// deliberately permissive: wherever a wrong guess would not corrupt the
// financial record (category, date, currency marker absent) it defaults
// instead of rejecting. Incomplete is reserved for missing amounts,
// undeterminable direction, foreign currencies and future dates.
package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/models"
)

// foreignCurrencies maps lexical markers in user input to the currency they
// name. The home currency rupee markers (₹, rs, inr) are not listed; their
// absence defaults to INR.
var foreignCurrencies = []struct {
	marker   string
	currency string
}{
	{"$", "USD"},
	{"usd", "USD"},
	{"dollar", "USD"},
	{"€", "EUR"},
	{"eur", "EUR"},
	{"euro", "EUR"},
	{"£", "GBP"},
	{"gbp", "GBP"},
	{"pound", "GBP"},
	{"¥", "JPY"},
	{"jpy", "JPY"},
	{"yen", "JPY"},
}

// DetectForeignCurrency scans user input for an explicitly named foreign
// currency and returns its code. The scan is a deterministic backstop to the
// model's own currency rule; either one tripping makes the request
// incomplete.
func DetectForeignCurrency(input string) (string, bool) {
	lower := strings.ToLower(input)
	for _, fc := range foreignCurrencies {
		if len(fc.marker) == 1 || isSymbol(fc.marker) {
			if strings.Contains(lower, fc.marker) {
				return fc.currency, true
			}
			continue
		}
		if containsWord(lower, fc.marker) {
			return fc.currency, true
		}
	}
	return "", false
}

func isSymbol(marker string) bool {
	return strings.ContainsAny(marker, "$€£¥")
}

// containsWord matches a marker at word granularity so "euros" matches
// "euro" but "yen" does not match inside "yenta".
func containsWord(haystack, word string) bool {
	for _, field := range strings.FieldsFunc(haystack, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if field == word || field == word+"s" {
			return true
		}
	}
	return false
}

// Evaluate runs the completeness rules over all candidates of one request.
// The outcome is request-scoped: every candidate must pass for a success,
// and the first failing rule decides the incomplete message.
func Evaluate(input string, candidates []models.CandidateTransaction, anchor time.Time) Outcome {
	if currency, found := DetectForeignCurrency(input); found {
		return Incomplete(fmt.Sprintf(
			"Only INR (₹) is supported. The amount appears to be in %s; please provide it in Indian Rupees.", currency))
	}

	if len(candidates) == 0 {
		return Incomplete("No transactions could be identified in the message. Please describe what was spent or received, including the amount.")
	}

	checked := make([]models.CandidateTransaction, 0, len(candidates))
	for _, c := range candidates {
		if c.AmountPaise <= 0 {
			return Incomplete(fmt.Sprintf(
				"Could not determine the amount for %q. Please include a numeric amount in rupees.", labelFor(c)))
		}
		if !c.Direction.Valid() {
			return Incomplete(fmt.Sprintf(
				"Could not determine whether %q is income or an expense. Please rephrase with a word like 'spent' or 'received'.", labelFor(c)))
		}
		if strings.TrimSpace(c.Title) == "" {
			c.Title = "Transaction"
		}
		// Category ambiguity never fails a request; anything outside the
		// enumeration degrades to OTHER.
		if !c.Category.Valid() {
			c.Category = models.CategoryOther
		}

		date, err := dateutils.Parse(c.Date)
		if err != nil {
			return Incomplete(fmt.Sprintf(
				"Could not understand the date for %q. Please use dd/mm/yyyy or a phrase like 'yesterday'.", labelFor(c)))
		}
		if dateutils.IsFuture(date, anchor) {
			return Incomplete(fmt.Sprintf(
				"%q is dated %s, which is in the future. Transactions must be dated today (%s) or earlier.",
				labelFor(c), c.Date, dateutils.Format(anchor)))
		}

		checked = append(checked, c)
	}

	return Success(checked)
}

func labelFor(c models.CandidateTransaction) string {
	if strings.TrimSpace(c.Title) != "" {
		return c.Title
	}
	return "this transaction"
}
