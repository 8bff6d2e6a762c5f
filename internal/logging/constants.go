package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps log output easy to filter and aggregate.
const (
	FieldOperation = "operation"
	FieldOutcome   = "outcome"
	FieldReason    = "reason"
	FieldError     = "error"
	FieldProvider  = "provider"
	FieldModel     = "model"
	FieldUserID    = "user_id"
	FieldCategory  = "category"
	FieldCurrency  = "currency"
	FieldCount     = "count"
	FieldDuration  = "duration_ms"
	FieldInputLen  = "input_len"
)
