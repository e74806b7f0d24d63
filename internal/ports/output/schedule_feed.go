package output

import (
	"context"

	"fightnight/internal/domain/entities"
)

// ScheduleFeed fetches the decoded schedule of one organization for one
// calendar year.
type ScheduleFeed interface {
	FetchYear(ctx context.Context, year int) (*entities.ScheduleSnapshot, error)
}
