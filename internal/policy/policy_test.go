package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saicharanbm/finTrack/internal/models"
)

var anchor = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

func candidate(mutate ...func(*models.CandidateTransaction)) models.CandidateTransaction {
	c := models.CandidateTransaction{
		AmountPaise: 2500,
		Category:    models.CategoryFood,
		Direction:   models.DirectionExpense,
		Date:        "10/06/2024",
		Title:       "Panda Express",
	}
	for _, m := range mutate {
		m(&c)
	}
	return c
}

func TestDetectForeignCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		currency string
		found    bool
	}{
		{"dollar symbol", "spent $50 on lunch", "USD", true},
		{"dollar word", "paid 50 dollars for a cab", "USD", true},
		{"usd code", "received 100 USD from a client", "USD", true},
		{"euro symbol", "bought a book for €20", "EUR", true},
		{"euro word plural", "sent 30 euros to a friend", "EUR", true},
		{"pound symbol", "£15 on coffee", "GBP", true},
		{"gbp code", "transferred 200 gbp", "GBP", true},
		{"yen word", "spent 500 yen on snacks", "JPY", true},
		{"rupee symbol is home currency", "spent ₹500 on groceries", "", false},
		{"rs shorthand is home currency", "paid rs 300 for auto", "", false},
		{"inr code is home currency", "got 5000 INR as a gift", "", false},
		{"plain amount", "spent 250 on lunch", "", false},
		{"word boundary respected", "met yenta at the market, spent 100", "", false},
		{"substring of another word", "used the card for 400", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currency, found := DetectForeignCurrency(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.currency, currency)
		})
	}
}

func TestEvaluateSuccess(t *testing.T) {
	out := Evaluate("spent 25 on lunch at panda express", []models.CandidateTransaction{candidate()}, anchor)

	require.True(t, out.IsSuccess())
	require.Len(t, out.Transactions, 1)
	assert.Equal(t, int64(2500), out.Transactions[0].AmountPaise)
	assert.Equal(t, models.CategoryFood, out.Transactions[0].Category)
}

func TestEvaluateForeignCurrencyWins(t *testing.T) {
	// Even a fully well-formed candidate cannot rescue a foreign-currency
	// message.
	out := Evaluate("spent $50 on dinner", []models.CandidateTransaction{candidate()}, anchor)

	require.False(t, out.IsSuccess())
	assert.Contains(t, out.Message, "USD")
	assert.Contains(t, out.Message, "INR")
	assert.Empty(t, out.Transactions)
}

func TestEvaluateEmptyCandidates(t *testing.T) {
	out := Evaluate("hello there", nil, anchor)

	require.False(t, out.IsSuccess())
	assert.Contains(t, out.Message, "amount")
}

func TestEvaluateDefaults(t *testing.T) {
	t.Run("unknown category degrades to OTHER", func(t *testing.T) {
		c := candidate(func(c *models.CandidateTransaction) { c.Category = "CRYPTO" })
		out := Evaluate("spent 25 on stuff", []models.CandidateTransaction{c}, anchor)

		require.True(t, out.IsSuccess())
		assert.Equal(t, models.CategoryOther, out.Transactions[0].Category)
	})

	t.Run("blank title defaults", func(t *testing.T) {
		c := candidate(func(c *models.CandidateTransaction) { c.Title = "  " })
		out := Evaluate("spent 25", []models.CandidateTransaction{c}, anchor)

		require.True(t, out.IsSuccess())
		assert.Equal(t, "Transaction", out.Transactions[0].Title)
	})
}

func TestEvaluateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CandidateTransaction)
		wantMsg string
	}{
		{
			name:    "zero amount",
			mutate:  func(c *models.CandidateTransaction) { c.AmountPaise = 0 },
			wantMsg: "amount",
		},
		{
			name:    "negative amount",
			mutate:  func(c *models.CandidateTransaction) { c.AmountPaise = -100 },
			wantMsg: "amount",
		},
		{
			name:    "invalid direction",
			mutate:  func(c *models.CandidateTransaction) { c.Direction = "TRANSFER" },
			wantMsg: "income or an expense",
		},
		{
			name:    "unparseable date",
			mutate:  func(c *models.CandidateTransaction) { c.Date = "June 10th" },
			wantMsg: "date",
		},
		{
			name:    "future date",
			mutate:  func(c *models.CandidateTransaction) { c.Date = "11/06/2024" },
			wantMsg: "future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Evaluate("spent 25 on lunch", []models.CandidateTransaction{candidate(tt.mutate)}, anchor)

			require.False(t, out.IsSuccess())
			assert.Contains(t, out.Message, tt.wantMsg)
			assert.Empty(t, out.Transactions)
		})
	}
}

func TestEvaluateIsAllOrNothing(t *testing.T) {
	good := candidate()
	bad := candidate(func(c *models.CandidateTransaction) { c.AmountPaise = 0 })

	out := Evaluate("coffee and lunch", []models.CandidateTransaction{good, bad}, anchor)

	require.False(t, out.IsSuccess())
	assert.Empty(t, out.Transactions, "one failing candidate fails the whole request")
}

func TestEvaluateMultipleCandidates(t *testing.T) {
	coffee := candidate(func(c *models.CandidateTransaction) {
		c.Title = "Coffee"
		c.AmountPaise = 1500
	})
	lunch := candidate(func(c *models.CandidateTransaction) {
		c.Title = "Lunch"
		c.AmountPaise = 20000
	})

	out := Evaluate("coffee for 15 and lunch for 200 yesterday", []models.CandidateTransaction{coffee, lunch}, anchor)

	require.True(t, out.IsSuccess())
	require.Len(t, out.Transactions, 2)
	assert.Equal(t, "Coffee", out.Transactions[0].Title)
	assert.Equal(t, "Lunch", out.Transactions[1].Title)
}
