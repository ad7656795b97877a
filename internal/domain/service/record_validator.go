package service

// RecordValidator checks a generated record before it is persisted.
type RecordValidator interface {
	// Validate returns ErrValidationFailed with the offending fields as details.
	Validate(record any) error
}
