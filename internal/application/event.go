package application

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/input"
	"fightnight/internal/ports/output"
)

const placeholder = "TBA"

// orgProfile holds the per-organization fallbacks of the resolver.
type orgProfile struct {
	defaultName      string
	defaultShortName string
	defaultURL       string
	ignoredKeywords  []string
}

var orgProfiles = map[domain.OrgID]orgProfile{
	domain.OrgUFC: {
		defaultName:      "UFC Fight Night",
		defaultShortName: "UFC Event",
		defaultURL:       "https://www.ufc.com/events",
		// Feeder series that must never be promoted.
		ignoredKeywords: []string{"contender series", "dana white's contender", "dwcs"},
	},
}

var preferredLinkRels = []string{"preview", "gamecast", "hub", "info"}

var _ input.EventUseCase = (*EventService)(nil)

// EventService resolves the current event of an organization from its
// multi-year schedule feed. Nothing is cached between calls.
type EventService struct {
	feeds map[domain.OrgID]output.ScheduleFeed
}

func NewEventService(feeds map[domain.OrgID]output.ScheduleFeed) *EventService {
	return &EventService{feeds: feeds}
}

// NextEvent returns the ongoing event of org, else its next upcoming one.
// It returns domain.ErrNoUpcomingEvent when there is neither.
func (s *EventService) NextEvent(ctx context.Context, org domain.OrgID, asOf time.Time) (*entities.EventWithCard, error) {
	feed, ok := s.feeds[org]
	profile, known := orgProfiles[org]
	if !ok || !known {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedOrg, org)
	}

	year := asOf.UTC().Year()
	var candidates []entities.CandidateEvent
	for _, y := range []int{year - 1, year, year + 1} {
		snapshot, err := feed.FetchYear(ctx, y)
		if err != nil {
			log.Printf("⚠️ Calendrier %s indisponible pour %d: %v", org.DisplayName(), y, err)
			continue
		}
		if snapshot == nil {
			continue
		}
		for _, ev := range snapshot.Events {
			if isIgnored(ev, profile.ignoredKeywords) {
				continue
			}
			if c, ok := annotate(ev); ok {
				candidates = append(candidates, c)
			}
		}
	}

	chosen, ok := selectCandidate(candidates, asOf)
	if !ok {
		return nil, domain.ErrNoUpcomingEvent
	}
	return &entities.EventWithCard{
		Event: buildFightEvent(org, profile, chosen),
		Card:  buildCard(chosen.Source),
	}, nil
}

func isIgnored(ev entities.RawEvent, keywords []string) bool {
	name := strings.ToLower(ev.Name)
	short := strings.ToLower(ev.ShortName)
	for _, k := range keywords {
		if strings.Contains(name, k) || strings.Contains(short, k) {
			return true
		}
	}
	return false
}

// annotate computes the time span of ev. Events without any usable instant
// are not candidates.
func annotate(ev entities.RawEvent) (entities.CandidateEvent, bool) {
	var start, end time.Time
	earliest := func(t time.Time) {
		if !t.IsZero() && (start.IsZero() || t.Before(start)) {
			start = t
		}
	}
	latest := func(t time.Time) {
		if !t.IsZero() && (end.IsZero() || t.After(end)) {
			end = t
		}
	}

	earliest(ev.Date)
	for _, b := range ev.Bouts {
		earliest(b.StartDate)
		earliest(b.Date)
		latest(b.EndDate)
		latest(b.Date)
	}
	if start.IsZero() {
		return entities.CandidateEvent{}, false
	}

	state := ev.State
	if state == "" && len(ev.Bouts) > 0 {
		state = ev.Bouts[0].State
	}
	if state == "" {
		state = domain.StatePre
	}
	return entities.CandidateEvent{Source: ev, Start: start, End: end, State: state}, true
}

// selectCandidate prefers the earliest ongoing candidate over the earliest
// upcoming one. Finished events are never selected.
func selectCandidate(candidates []entities.CandidateEvent, asOf time.Time) (entities.CandidateEvent, bool) {
	var ongoing, upcoming []entities.CandidateEvent
	for _, c := range candidates {
		if c.State == domain.StatePost {
			continue
		}
		switch {
		case c.Start.After(asOf):
			upcoming = append(upcoming, c)
		case c.End.IsZero() || !asOf.After(c.End):
			ongoing = append(ongoing, c)
		}
	}
	byStart := func(a, b entities.CandidateEvent) int { return a.Start.Compare(b.Start) }
	if len(ongoing) > 0 {
		return slices.MinFunc(ongoing, byStart), true
	}
	if len(upcoming) > 0 {
		return slices.MinFunc(upcoming, byStart), true
	}
	return entities.CandidateEvent{}, false
}

// mainBout returns the headline bout: an explicit main/title segment, else
// the last bout since the feed lists prelims first.
func mainBout(ev entities.RawEvent) (entities.RawBout, bool) {
	if len(ev.Bouts) == 0 {
		return entities.RawBout{}, false
	}
	for _, b := range ev.Bouts {
		title := strings.ToLower(b.SegmentTitle)
		if strings.Contains(title, "main") || strings.Contains(title, "title") {
			return b, true
		}
	}
	return ev.Bouts[len(ev.Bouts)-1], true
}

func buildFightEvent(org domain.OrgID, profile orgProfile, c entities.CandidateEvent) entities.FightEvent {
	ev := c.Source
	main, hasMain := mainBout(ev)

	mainEvent := placeholder
	broadcast := placeholder
	start, end := c.Start, c.End
	venue := ev.Venue
	if hasMain {
		mainEvent = formatMatchup(main)
		broadcast = extractBroadcast(main)
		start = firstInstant(main.StartDate, main.Date, c.Start)
		end = firstInstant(main.EndDate, main.Date, c.End)
		if venue == nil {
			venue = main.Venue
		}
	}

	venueName := placeholder
	if venue != nil && venue.FullName != "" {
		venueName = venue.FullName
	}

	url := selectURL(ev.Links)
	if url == "" {
		url = profile.defaultURL
	}

	return entities.FightEvent{
		ID:        firstNonEmpty(ev.ID, "unknown"),
		Org:       org,
		Name:      firstNonEmpty(ev.Name, profile.defaultName),
		ShortName: firstNonEmpty(ev.ShortName, ev.Name, profile.defaultShortName),
		MainEvent: mainEvent,
		StartTime: start,
		EndTime:   end,
		Venue:     venueName,
		City:      formatCity(venue),
		Broadcast: broadcast,
		URL:       url,
		LogoURL:   ev.LogoURL,
	}
}

func buildCard(ev entities.RawEvent) []entities.Bout {
	card := make([]entities.Bout, 0, len(ev.Bouts))
	for _, b := range ev.Bouts {
		red, blue := corners(b)
		card = append(card, entities.Bout{
			WeightClass: firstNonEmpty(b.WeightClass, "Bout"),
			RedName:     red.Name,
			RedRecord:   red.Record,
			BlueName:    blue.Name,
			BlueRecord:  blue.Record,
			Scheduled:   firstInstant(b.StartDate, b.Date),
		})
	}
	return card
}

// corners splits the competitors of b by feed order, the lower order being
// red. A lone competitor fills both names but only the red record.
func corners(b entities.RawBout) (red, blue entities.Competitor) {
	if len(b.Competitors) == 0 {
		return entities.Competitor{Name: placeholder}, entities.Competitor{Name: placeholder}
	}
	sorted := slices.Clone(b.Competitors)
	slices.SortStableFunc(sorted, func(x, y entities.Competitor) int { return cmp.Compare(x.Order, y.Order) })

	red = sorted[0]
	red.Name = firstNonEmpty(red.Name, placeholder)
	if len(sorted) > 1 {
		blue = sorted[1]
		blue.Name = firstNonEmpty(blue.Name, placeholder)
	} else {
		blue = entities.Competitor{Name: red.Name}
	}
	return red, blue
}

func formatMatchup(b entities.RawBout) string {
	red, blue := corners(b)
	return red.Name + " vs " + blue.Name
}

func formatCity(v *entities.Venue) string {
	if v == nil {
		return placeholder
	}
	var parts []string
	for _, p := range []string{v.City, v.State, v.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return placeholder
	}
	return strings.Join(parts, ", ")
}

func extractBroadcast(b entities.RawBout) string {
	if b.Broadcast != "" {
		return b.Broadcast
	}
	var names []string
	for _, n := range b.BroadcastNames {
		n = strings.TrimSpace(n)
		if n != "" && !slices.Contains(names, n) {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return placeholder
	}
	return strings.Join(names, ", ")
}

func selectURL(links []entities.Link) string {
	for _, rel := range preferredLinkRels {
		for _, l := range links {
			if l.Href == "" {
				continue
			}
			if slices.ContainsFunc(l.Rels, func(r string) bool { return strings.EqualFold(r, rel) }) {
				return l.Href
			}
		}
	}
	for _, l := range links {
		if l.Href != "" {
			return l.Href
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstInstant(values ...time.Time) time.Time {
	for _, v := range values {
		if !v.IsZero() {
			return v
		}
	}
	return time.Time{}
}
