package input

import (
	"context"
	"time"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
)

type EventUseCase interface {
	NextEvent(ctx context.Context, org domain.OrgID, asOf time.Time) (*entities.EventWithCard, error)
}
