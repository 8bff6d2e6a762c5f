// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Direction indicates whether money moved in or out.
type Direction string

const (
	DirectionIncome  Direction = "INCOME"
	DirectionExpense Direction = "EXPENSE"
)

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == DirectionIncome || d == DirectionExpense
}

// Category is the closed set of transaction categories. The parsing core
// rejects anything outside this enumeration.
type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryShopping      Category = "SHOPPING"
	CategoryUtilities     Category = "UTILITIES"
	CategoryHealthcare    Category = "HEALTHCARE"
	CategoryEducation     Category = "EDUCATION"
	CategoryTravel        Category = "TRAVEL"
	CategoryGroceries     Category = "GROCERIES"
	CategoryRent          Category = "RENT"
	CategorySalary        Category = "SALARY"
	CategoryFreelance     Category = "FREELANCE"
	CategoryInvestment    Category = "INVESTMENT"
	CategoryGift          Category = "GIFT"
	CategoryOther         Category = "OTHER"
)

// AllCategories lists every valid category in declaration order.
var AllCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryTravel,
	CategoryGroceries,
	CategoryRent,
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryGift,
	CategoryOther,
}

// Valid reports whether the category belongs to the closed enumeration.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// CandidateTransaction is a structurally valid, not-yet-persisted transaction
// proposal produced by the parsing core. Amounts are integer paise
// (100 paise = 1 rupee) so floating point never touches money.
type CandidateTransaction struct {
	AmountPaise int64     `json:"amountPaise"`
	Category    Category  `json:"category"`
	Direction   Direction `json:"type"`
	Date        string    `json:"date"` // dd/mm/yyyy, never empty after normalization
	Title       string    `json:"title"`
}

// TransactionRecord is the persisted shape of a transaction. The store owns
// its identity and lifecycle; the parsing core only produces the candidates
// it is built from. AmountPaise is serialized as a JSON string to stay safe
// for transports that truncate large integers.
type TransactionRecord struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	AmountPaise int64     `json:"amountPaise,string"`
	Category    Category  `json:"category"`
	Direction   Direction `json:"type"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTransactionRecord builds a persisted record from a validated candidate.
func NewTransactionRecord(userID string, c CandidateTransaction, date time.Time) TransactionRecord {
	return TransactionRecord{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       c.Title,
		AmountPaise: c.AmountPaise,
		Category:    c.Category,
		Direction:   c.Direction,
		Date:        date,
	}
}

// String renders a record for log and CLI output.
func (t TransactionRecord) String() string {
	return fmt.Sprintf("%s %-7s %s %s (%s)",
		t.Date.Format("02/01/2006"), t.Direction, FormatPaise(t.AmountPaise), t.Title, t.Category)
}
