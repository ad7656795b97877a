package service

import "civic/internal/domain/entity"

// RecordKindUser labels user records in metrics; actions use their category.
const RecordKindUser = "user"

// SeedMetrics records seeding progress.
type SeedMetrics interface {
	RecordSeeded(kind string)
	RecordFailed(kind string)
}

// KindOf maps an action category to its metrics label.
func KindOf(category entity.ActionCategory) string {
	return string(category) + "_action"
}
