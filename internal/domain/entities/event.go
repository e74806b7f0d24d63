package entities

import (
	"time"

	"fightnight/internal/domain"
)

// FightEvent is the event chosen by the resolver, ready for display.
type FightEvent struct {
	ID        string
	Org       domain.OrgID
	Name      string
	ShortName string
	MainEvent string
	StartTime time.Time
	EndTime   time.Time // zero = unknown
	Venue     string
	City      string
	Broadcast string
	URL       string
	LogoURL   string
}

// Bout is one entry of the fight card, in feed order (prelims first).
type Bout struct {
	WeightClass string
	RedName     string
	RedRecord   string
	BlueName    string
	BlueRecord  string
	Scheduled   time.Time // zero = unknown
}

// EventWithCard is the output of the resolver.
type EventWithCard struct {
	Event FightEvent
	Card  []Bout
}
