package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/output"
)

func utc(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func fighter(order int, name, record string) entities.Competitor {
	return entities.Competitor{Order: order, Name: name, Record: record}
}

func newResolver(feed *fakeFeed) *EventService {
	return NewEventService(map[domain.OrgID]output.ScheduleFeed{domain.OrgUFC: feed})
}

func TestNextEvent_SingleUpcomingEvent(t *testing.T) {
	start := utc(2024, time.May, 11, 22)
	feed := &fakeFeed{years: map[int][]entities.RawEvent{
		2024: {{
			ID:    "600000001",
			Name:  "UFC Fight Night: Lewis vs. Nascimento",
			Date:  start,
			State: domain.StatePre,
			Venue: &entities.Venue{FullName: "Enterprise Center", City: "St. Louis", State: "MO", Country: "USA"},
			Links: []entities.Link{{Href: "https://espn/summary", Rels: []string{"summary"}}, {Href: "https://espn/preview", Rels: []string{"Preview"}}},
			Bouts: []entities.RawBout{
				{Date: start, SegmentTitle: "Prelims", WeightClass: "Flyweight", Competitors: []entities.Competitor{fighter(2, "Blue Prelim", "10-2"), fighter(1, "Red Prelim", "12-1")}},
				{Date: start.Add(2 * time.Hour), WeightClass: "Heavyweight", Broadcast: "ESPN+", Competitors: []entities.Competitor{fighter(1, "Derrick Lewis", "27-12"), fighter(2, "Rodrigo Nascimento", "11-2")}},
			},
		}},
	}}

	got, err := newResolver(feed).NextEvent(context.Background(), domain.OrgUFC, start.AddDate(0, 0, -10))
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	ev := got.Event
	if ev.ID != "600000001" || ev.MainEvent != "Derrick Lewis vs Rodrigo Nascimento" {
		t.Errorf("event = %+v", ev)
	}
	if !ev.StartTime.Equal(start.Add(2 * time.Hour)) {
		t.Errorf("start = %v, want the main bout date", ev.StartTime)
	}
	if ev.Venue != "Enterprise Center" || ev.City != "St. Louis, MO, USA" {
		t.Errorf("venue = %q, city = %q", ev.Venue, ev.City)
	}
	if ev.Broadcast != "ESPN+" || ev.URL != "https://espn/preview" {
		t.Errorf("broadcast = %q, url = %q", ev.Broadcast, ev.URL)
	}
	if len(got.Card) != 2 {
		t.Fatalf("card has %d bouts, want 2", len(got.Card))
	}
	if got.Card[0].RedName != "Red Prelim" || got.Card[0].BlueName != "Blue Prelim" || got.Card[0].BlueRecord != "10-2" {
		t.Errorf("prelim corners = %+v", got.Card[0])
	}
	if got.Card[1].WeightClass != "Heavyweight" {
		t.Errorf("card order = %+v", got.Card)
	}
	if len(feed.calls) != 3 || feed.calls[0] != 2023 || feed.calls[2] != 2025 {
		t.Errorf("fetched years = %v", feed.calls)
	}
}

func TestNextEvent_OngoingBeatsUpcoming(t *testing.T) {
	live := utc(2024, time.March, 9, 23)
	feed := &fakeFeed{years: map[int][]entities.RawEvent{
		2024: {
			{ID: "next", Name: "UFC 300", Date: utc(2024, time.April, 13, 22), State: domain.StatePre},
			{ID: "live", Name: "UFC 299", Date: live, State: domain.StateInProgress, Bouts: []entities.RawBout{
				{Date: live}, {Date: live.Add(3 * time.Hour)},
			}},
		},
	}}
	got, err := newResolver(feed).NextEvent(context.Background(), domain.OrgUFC, live.Add(time.Hour))
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	if got.Event.ID != "live" {
		t.Errorf("resolved %q, want the ongoing event", got.Event.ID)
	}
}

func TestNextEvent_Absent(t *testing.T) {
	asOf := utc(2024, time.June, 1, 12)
	tests := []struct {
		name   string
		events []entities.RawEvent
	}{
		{"only finished", []entities.RawEvent{{ID: "done", Name: "UFC 301", Date: utc(2024, time.May, 4, 22), State: domain.StatePost}}},
		{"finished even if upcoming", []entities.RawEvent{{ID: "x", Name: "UFC 303", Date: utc(2024, time.June, 29, 22), State: domain.StatePost}}},
		{"no start", []entities.RawEvent{{ID: "nodate", Name: "UFC 302"}}},
		{"ignored only", []entities.RawEvent{{ID: "dwcs", Name: "Dana White's Contender Series: Week 1", Date: utc(2024, time.August, 6, 0)}}},
		{"ignored short name", []entities.RawEvent{{ID: "dwcs", Name: "Week 2", ShortName: "DWCS Week 2", Date: utc(2024, time.August, 13, 0)}}},
		{"ended ongoing", []entities.RawEvent{{ID: "old", Name: "UFC 300", State: domain.StateInProgress, Date: utc(2024, time.April, 13, 22), Bouts: []entities.RawBout{{EndDate: utc(2024, time.April, 14, 3)}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := &fakeFeed{years: map[int][]entities.RawEvent{2024: tt.events}}
			_, err := newResolver(feed).NextEvent(context.Background(), domain.OrgUFC, asOf)
			if !errors.Is(err, domain.ErrNoUpcomingEvent) {
				t.Errorf("err = %v, want ErrNoUpcomingEvent", err)
			}
		})
	}
}

func TestNextEvent_YearFailureIsNotFatal(t *testing.T) {
	feed := &fakeFeed{
		years: map[int][]entities.RawEvent{2025: {{ID: "jan", Name: "UFC 311", Date: utc(2025, time.January, 18, 23)}}},
		errs:  map[int]error{2023: errBoom, 2024: errBoom},
	}
	got, err := newResolver(feed).NextEvent(context.Background(), domain.OrgUFC, utc(2024, time.December, 20, 0))
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	if got.Event.ID != "jan" {
		t.Errorf("resolved %q", got.Event.ID)
	}
}

func TestNextEvent_UnsupportedOrg(t *testing.T) {
	_, err := newResolver(&fakeFeed{}).NextEvent(context.Background(), domain.OrgID("pfl"), time.Now())
	if !errors.Is(err, domain.ErrUnsupportedOrg) {
		t.Errorf("err = %v", err)
	}
}

func TestNextEvent_Placeholders(t *testing.T) {
	start := utc(2024, time.July, 6, 22)
	feed := &fakeFeed{years: map[int][]entities.RawEvent{2024: {{Date: start}}}}
	got, err := newResolver(feed).NextEvent(context.Background(), domain.OrgUFC, start.Add(-time.Hour))
	if err != nil {
		t.Fatalf("NextEvent: %v", err)
	}
	ev := got.Event
	if ev.Name != "UFC Fight Night" || ev.ShortName != "UFC Event" || ev.ID != "unknown" {
		t.Errorf("names = %q / %q / %q", ev.Name, ev.ShortName, ev.ID)
	}
	if ev.MainEvent != placeholder || ev.Venue != placeholder || ev.City != placeholder || ev.Broadcast != placeholder {
		t.Errorf("placeholders = %+v", ev)
	}
	if ev.URL != "https://www.ufc.com/events" || len(got.Card) != 0 {
		t.Errorf("url = %q, card = %v", ev.URL, got.Card)
	}
}

func TestMainBout(t *testing.T) {
	tests := []struct {
		name  string
		bouts []entities.RawBout
		want  string
	}{
		{"last by default", []entities.RawBout{{WeightClass: "A"}, {WeightClass: "B"}}, "B"},
		{"main segment", []entities.RawBout{{WeightClass: "A", SegmentTitle: "Main Card"}, {WeightClass: "B"}}, "A"},
		{"title fight", []entities.RawBout{{WeightClass: "A"}, {WeightClass: "B", SegmentTitle: "Title Fight"}, {WeightClass: "C", SegmentTitle: "main"}}, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mainBout(entities.RawEvent{Bouts: tt.bouts})
			if !ok || got.WeightClass != tt.want {
				t.Errorf("mainBout = %q, want %q", got.WeightClass, tt.want)
			}
		})
	}
	if _, ok := mainBout(entities.RawEvent{}); ok {
		t.Error("no bouts should have no main bout")
	}
}

func TestCorners(t *testing.T) {
	tests := []struct {
		name      string
		fighters  []entities.Competitor
		red, blue string
		blueRec   string
	}{
		{"none", nil, placeholder, placeholder, ""},
		{"single", []entities.Competitor{fighter(1, "Solo", "5-0")}, "Solo", "Solo", ""},
		{"ordered", []entities.Competitor{fighter(2, "B", "2-0"), fighter(1, "A", "1-0")}, "A", "B", "2-0"},
		{"stable ties", []entities.Competitor{fighter(0, "First", ""), fighter(0, "Second", "")}, "First", "Second", ""},
		{"blank name", []entities.Competitor{fighter(1, " ", ""), fighter(2, "B", "")}, placeholder, "B", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			red, blue := corners(entities.RawBout{Competitors: tt.fighters})
			if red.Name != tt.red || blue.Name != tt.blue || blue.Record != tt.blueRec {
				t.Errorf("corners = %+v / %+v", red, blue)
			}
		})
	}
}

func TestExtractBroadcast(t *testing.T) {
	tests := []struct {
		name string
		bout entities.RawBout
		want string
	}{
		{"single", entities.RawBout{Broadcast: "PPV", BroadcastNames: []string{"ESPN"}}, "PPV"},
		{"union", entities.RawBout{BroadcastNames: []string{"ESPN+", "ESPN", "ESPN+", " ", "PPV"}}, "ESPN+, ESPN, PPV"},
		{"none", entities.RawBout{}, placeholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBroadcast(tt.bout); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectURL(t *testing.T) {
	tests := []struct {
		name  string
		links []entities.Link
		want  string
	}{
		{"preview first", []entities.Link{{Href: "info", Rels: []string{"info"}}, {Href: "gc", Rels: []string{"gamecast"}}, {Href: "pv", Rels: []string{"desktop", "preview"}}}, "pv"},
		{"hub over info", []entities.Link{{Href: "info", Rels: []string{"info"}}, {Href: "hub", Rels: []string{"HUB"}}}, "hub"},
		{"first with href", []entities.Link{{Rels: []string{"preview"}}, {Href: "other", Rels: []string{"tickets"}}}, "other"},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectURL(tt.links); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnnotate(t *testing.T) {
	ev := entities.RawEvent{
		Date: utc(2024, time.May, 11, 23),
		Bouts: []entities.RawBout{
			{StartDate: utc(2024, time.May, 11, 21), Date: utc(2024, time.May, 11, 22), State: domain.StateInProgress},
			{Date: utc(2024, time.May, 12, 1), EndDate: utc(2024, time.May, 12, 2)},
		},
	}
	c, ok := annotate(ev)
	if !ok {
		t.Fatal("annotate rejected a dated event")
	}
	if !c.Start.Equal(utc(2024, time.May, 11, 21)) || !c.End.Equal(utc(2024, time.May, 12, 2)) {
		t.Errorf("span = %v .. %v", c.Start, c.End)
	}
	if c.State != domain.StateInProgress {
		t.Errorf("state = %q, want the first bout state", c.State)
	}

	c, _ = annotate(entities.RawEvent{Date: utc(2024, time.May, 11, 23)})
	if c.State != domain.StatePre || !c.End.IsZero() {
		t.Errorf("defaults = %+v", c)
	}
}
