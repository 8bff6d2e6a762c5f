// Package prompt composes the instruction text that steers the generation
// capability. The wording here is load-bearing: the date-scoping and
// category-inference rules have no deterministic substitute, so the
// instruction text is the mechanism of that behavior and is pinned down by
// example-based tests rather than by exact phrasing.
package prompt

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/saicharanbm/finTrack/internal/dateutils"
	"github.com/saicharanbm/finTrack/internal/models"
)

//go:embed taxonomy.yaml
var taxonomyYAML []byte

type taxonomy struct {
	Categories []struct {
		Name  string `yaml:"name"`
		Hints string `yaml:"hints"`
	} `yaml:"categories"`
}

// loadTaxonomy parses the embedded category taxonomy and checks it against
// the closed enumeration so the instruction can never advertise a category
// the validator would reject.
func loadTaxonomy() (*taxonomy, error) {
	var tax taxonomy
	if err := yaml.Unmarshal(taxonomyYAML, &tax); err != nil {
		return nil, fmt.Errorf("parsing category taxonomy: %w", err)
	}
	if len(tax.Categories) != len(models.AllCategories) {
		return nil, fmt.Errorf("taxonomy lists %d categories, enumeration has %d",
			len(tax.Categories), len(models.AllCategories))
	}
	for _, c := range tax.Categories {
		if !models.Category(c.Name).Valid() {
			return nil, fmt.Errorf("taxonomy category %q is not in the enumeration", c.Name)
		}
	}
	return &tax, nil
}

// Build composes the full system instruction for one parse request, anchored
// to the supplied current date. Everything the completeness policy enforces
// downstream is spelled out here first, so that well-behaved replies already
// satisfy it.
func Build(anchor time.Time) (string, error) {
	tax, err := loadTaxonomy()
	if err != nil {
		return "", err
	}

	today := dateutils.Format(anchor)
	yesterday := dateutils.Format(dateutils.Yesterday(anchor))

	var b strings.Builder

	b.WriteString("You are a financial transaction parser. Convert natural language descriptions of income and expenses into strictly structured JSON following the given schema.\n\n")
	fmt.Fprintf(&b, "CURRENT DATE: %s (dd/mm/yyyy format)\n\n", today)

	b.WriteString("### GENERAL RULES\n")
	b.WriteString("1. A single input may contain multiple transactions; parse ALL of them into the data array.\n")
	b.WriteString("2. Be context-aware: prefer reasonable inference over returning incomplete.\n")
	b.WriteString("3. Default to INR: if no currency is mentioned, assume Indian Rupees (₹). Only an explicitly named foreign currency makes the request incomplete.\n")
	b.WriteString("4. Response types:\n")
	b.WriteString("   - \"success\" when every required field can be determined through reasonable inference.\n")
	b.WriteString("   - \"incomplete\" ONLY when critical information is genuinely impossible to determine.\n")
	b.WriteString("5. Always perform arithmetic when quantities and unit prices are mentioned:\n")
	b.WriteString("   - \"20 pens for 10 rs each\" → 20 × 10 = ₹200 → 20000 paise\n")
	b.WriteString("   - \"3 coffees at ₹80 per cup\" → 3 × 80 = ₹240 → 24000 paise\n")
	b.WriteString("6. Amounts are integer paise (₹1 = 100 paise). ₹250 → 25000.\n")
	b.WriteString("7. Transaction type:\n")
	b.WriteString("   - spent, bought, paid, gave, purchased, ordered → EXPENSE\n")
	b.WriteString("   - earned, received, salary, got, income, paid (when receiving) → INCOME\n")
	b.WriteString("   - Use context: \"got paid salary\" is INCOME, \"paid for food\" is EXPENSE.\n")
	b.WriteString("8. Use brand names and context clues to pick a category. When genuinely ambiguous, use OTHER instead of returning incomplete.\n")

	b.WriteString("9. Dates:\n")
	fmt.Fprintf(&b, "   - If NO date is mentioned, set date to null (it defaults to %s).\n", today)
	b.WriteString("   - A date phrase that governs several clauses applies to all of them:\n")
	fmt.Fprintf(&b, "     \"Yesterday I bought lunch and then got coffee\" → BOTH dated %s.\n", yesterday)
	b.WriteString("     \"I bought lunch yesterday and got salary today\" → lunch yesterday, salary today.\n")
	b.WriteString("   - Never produce a date after the current date. If the user describes a future transaction, return incomplete and tell them only today or earlier is accepted.\n")
	b.WriteString("   - Date phrase resolution:\n")
	fmt.Fprintf(&b, "     \"today\" → %s\n", today)
	fmt.Fprintf(&b, "     \"yesterday\" → %s\n", yesterday)
	fmt.Fprintf(&b, "     \"N days ago\" or \"N days back\" → subtract N days from %s\n", today)
	fmt.Fprintf(&b, "     \"a week ago\" / \"last week\" → %s\n", dateutils.Format(dateutils.WeekAgo(anchor)))
	b.WriteString("     \"last Monday\" (or any weekday) → the most recent such weekday before the current date\n")
	b.WriteString("     \"15th\" → the 15th of the current month and year\n")
	b.WriteString("     \"15th January\" → 15/01 of the current year\n")
	b.WriteString("     \"15/01/2024\" → exactly as given\n")
	b.WriteString("10. Title: a short, human-readable, non-empty label per transaction (e.g. \"Pens\", \"Lunch\", \"Salary\").\n\n")

	b.WriteString("### CATEGORIES\n")
	for _, c := range tax.Categories {
		fmt.Fprintf(&b, "- %s: %s\n", c.Name, c.Hints)
	}
	b.WriteString("\n")

	b.WriteString("### WHEN TO RETURN INCOMPLETE (RARE)\n")
	b.WriteString("1. An explicitly foreign currency: \"$50\", \"€30\", \"£20\". Name the unsupported currency in the message.\n")
	b.WriteString("2. No numeric amount at all: \"I spent some money\".\n")
	b.WriteString("3. The direction cannot be determined even from context.\n")
	b.WriteString("4. The input is garbled or nonsensical.\n")
	b.WriteString("Never return incomplete merely because the category is unclear; use OTHER.\n\n")

	b.WriteString("### EXAMPLES\n")
	fmt.Fprintf(&b, "Input: \"Ordered Panda Express for rs 25\"\nOutput: {\"type\": \"success\", \"data\": [{\"amountPaise\": 2500, \"category\": \"FOOD\", \"type\": \"EXPENSE\", \"date\": null, \"title\": \"Panda Express\"}], \"message\": \"\"}\n\n")
	fmt.Fprintf(&b, "Input: \"Got paid rs 3500 salary today\"\nOutput: {\"type\": \"success\", \"data\": [{\"amountPaise\": 350000, \"category\": \"SALARY\", \"type\": \"INCOME\", \"date\": \"%s\", \"title\": \"Salary\"}], \"message\": \"\"}\n\n", today)
	fmt.Fprintf(&b, "Input: \"bought 10 pens for 5 rs each from the stationery shop\"\nOutput: {\"type\": \"success\", \"data\": [{\"amountPaise\": 5000, \"category\": \"EDUCATION\", \"type\": \"EXPENSE\", \"date\": null, \"title\": \"Pens\"}], \"message\": \"\"}\n\n")
	fmt.Fprintf(&b, "Input: \"Yesterday bought coffee for 80 and lunch for 250\"\nOutput: {\"type\": \"success\", \"data\": [{\"amountPaise\": 8000, \"category\": \"FOOD\", \"type\": \"EXPENSE\", \"date\": \"%s\", \"title\": \"Coffee\"}, {\"amountPaise\": 25000, \"category\": \"FOOD\", \"type\": \"EXPENSE\", \"date\": \"%s\", \"title\": \"Lunch\"}], \"message\": \"\"}\n\n", yesterday, yesterday)
	fmt.Fprintf(&b, "Input: \"spent 100 on miscellaneous stuff\"\nOutput: {\"type\": \"success\", \"data\": [{\"amountPaise\": 10000, \"category\": \"OTHER\", \"type\": \"EXPENSE\", \"date\": null, \"title\": \"Miscellaneous\"}], \"message\": \"\"}\n\n")
	b.WriteString("Input: \"I spent $50 on dinner\"\nOutput: {\"type\": \"incomplete\", \"data\": [], \"message\": \"Only INR currency is supported. Please provide the amount in Indian Rupees (₹).\"}\n\n")

	b.WriteString("### OUTPUT RULES\n")
	b.WriteString("- Return ONLY valid JSON matching the schema. No extra text, no markdown fences.\n")
	b.WriteString("- Perform all arithmetic explicitly before emitting amounts.\n")
	b.WriteString("- Apply the contextual date logic when multiple transactions share a date phrase.\n")

	return b.String(), nil
}
