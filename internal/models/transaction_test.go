package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionValid(t *testing.T) {
	assert.True(t, DirectionIncome.Valid())
	assert.True(t, DirectionExpense.Valid())
	assert.False(t, Direction("TRANSFER").Valid())
	assert.False(t, Direction("expense").Valid(), "directions are case sensitive")
	assert.False(t, Direction("").Valid())
}

func TestCategoryValid(t *testing.T) {
	for _, c := range AllCategories {
		assert.True(t, c.Valid(), "category %s", c)
	}
	assert.Len(t, AllCategories, 15)

	assert.False(t, Category("CRYPTO").Valid())
	assert.False(t, Category("food").Valid(), "categories are case sensitive")
	assert.False(t, Category("").Valid())
}

func TestNewTransactionRecord(t *testing.T) {
	date := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	c := CandidateTransaction{
		AmountPaise: 2500,
		Category:    CategoryFood,
		Direction:   DirectionExpense,
		Date:        "10/06/2024",
		Title:       "Panda Express",
	}

	rec := NewTransactionRecord("user-1", c, date)

	assert.NotEqual(t, rec.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "user-1", rec.UserID)
	assert.Equal(t, int64(2500), rec.AmountPaise)
	assert.Equal(t, CategoryFood, rec.Category)
	assert.Equal(t, DirectionExpense, rec.Direction)
	assert.True(t, rec.Date.Equal(date))

	other := NewTransactionRecord("user-1", c, date)
	assert.NotEqual(t, rec.ID, other.ID, "every record gets its own identity")
}

func TestTransactionRecordJSONAmountIsString(t *testing.T) {
	rec := TransactionRecord{AmountPaise: 9007199254740993}

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"amountPaise":"9007199254740993"`,
		"amounts travel as strings so JavaScript consumers cannot truncate them")

	var back TransactionRecord
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, rec.AmountPaise, back.AmountPaise)
}

func TestTransactionRecordString(t *testing.T) {
	rec := TransactionRecord{
		Title:       "Lunch",
		AmountPaise: 25000,
		Category:    CategoryFood,
		Direction:   DirectionExpense,
		Date:        time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	}

	s := rec.String()
	assert.Contains(t, s, "10/06/2024")
	assert.Contains(t, s, "₹250.00")
	assert.Contains(t, s, "Lunch")
	assert.Contains(t, s, "FOOD")
}
