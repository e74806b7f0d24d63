package entities

import (
	"time"

	"fightnight/internal/domain"
)

// ScheduleSnapshot is the decoded feed for one calendar year.
type ScheduleSnapshot struct {
	Year   int
	Events []RawEvent
}

// RawEvent is a feed event after decoding. Absent string fields are empty,
// absent instants are zero.
type RawEvent struct {
	ID        string
	Name      string
	ShortName string
	Date      time.Time
	State     domain.EventState
	Venue     *Venue
	Links     []Link
	LogoURL   string
	Bouts     []RawBout
}

// RawBout is one competition of a RawEvent.
type RawBout struct {
	Date         time.Time
	StartDate    time.Time
	EndDate      time.Time
	SegmentTitle string
	WeightClass  string
	State        domain.EventState
	Venue        *Venue
	// Broadcast is the single broadcast string when the feed provides one.
	Broadcast string
	// BroadcastNames holds every country and geo broadcast name in feed order,
	// possibly with duplicates.
	BroadcastNames []string
	Competitors    []Competitor
}

type Competitor struct {
	Order  int
	Name   string
	Record string
}

type Venue struct {
	FullName string
	City     string
	State    string
	Country  string
}

type Link struct {
	Href string
	Rels []string
}

// CandidateEvent annotates a RawEvent with its resolved time span.
type CandidateEvent struct {
	Source RawEvent
	Start  time.Time
	End    time.Time // zero = absent
	State  domain.EventState
}
