package espn

import (
	"strings"
	"time"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
)

// ESPN mostly omits seconds ("2024-05-11T22:00Z").
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func decodeSnapshot(year int, root scoreboardRoot) *entities.ScheduleSnapshot {
	out := &entities.ScheduleSnapshot{Year: year, Events: make([]entities.RawEvent, 0, len(root.Events))}
	for _, ev := range root.Events {
		out.Events = append(out.Events, decodeEvent(ev))
	}
	return out
}

func decodeEvent(ev scoreboardEvent) entities.RawEvent {
	out := entities.RawEvent{
		ID:        firstString(ev.ID, ev.UID),
		Name:      str(ev.Name),
		ShortName: str(ev.ShortName),
		Date:      parseDate(ev.Date),
		State:     decodeState(ev.Status),
	}
	if len(ev.Venues) > 0 {
		out.Venue = decodeVenue(optional[scoreboardVenue]{value: ev.Venues[0], valid: true})
	}
	for _, l := range ev.Links {
		out.Links = append(out.Links, entities.Link{Href: str(l.Href), Rels: strs(l.Rel)})
	}
	if len(ev.Logos) > 0 {
		out.LogoURL = str(ev.Logos[0].Href)
	}
	for _, c := range ev.Competitions {
		out.Bouts = append(out.Bouts, decodeBout(c))
	}
	return out
}

func decodeBout(c scoreboardCompetition) entities.RawBout {
	out := entities.RawBout{
		Date:      parseDate(c.Date),
		StartDate: parseDate(c.StartDate),
		EndDate:   parseDate(c.EndDate),
		State:     decodeState(c.Status),
		Venue:     decodeVenue(c.Venue),
		Broadcast: str(c.Broadcast),
	}
	if seg, ok := c.CardSegment.get(); ok {
		out.SegmentTitle = str(seg.Title)
	}
	if typ, ok := c.Type.get(); ok {
		out.WeightClass = firstString(typ.Text, typ.Abbreviation)
	}
	for _, b := range c.Broadcasts {
		out.BroadcastNames = append(out.BroadcastNames, strs(b.Names)...)
	}
	for _, g := range c.GeoBroadcasts {
		if media, ok := g.Media.get(); ok {
			if n := str(media.ShortName); n != "" {
				out.BroadcastNames = append(out.BroadcastNames, n)
			}
		}
		if typ, ok := g.Type.get(); ok {
			if n := str(typ.ShortName); n != "" {
				out.BroadcastNames = append(out.BroadcastNames, n)
			}
		}
	}
	for _, comp := range c.Competitors {
		out.Competitors = append(out.Competitors, decodeCompetitor(comp))
	}
	return out
}

func decodeCompetitor(c scoreboardCompetitor) entities.Competitor {
	out := entities.Competitor{}
	if c.Order.valid {
		out.Order = c.Order.value
	}
	if a, ok := c.Athlete.get(); ok {
		out.Name = firstString(a.FullName, a.DisplayName, a.ShortName)
	}
	if len(c.Records) > 0 {
		out.Record = str(c.Records[0].Summary)
	}
	return out
}

func decodeVenue(o optional[scoreboardVenue]) *entities.Venue {
	v, ok := o.get()
	if !ok {
		return nil
	}
	out := &entities.Venue{FullName: str(v.FullName)}
	if addr, ok := v.Address.get(); ok {
		out.City = str(addr.City)
		out.State = str(addr.State)
		out.Country = str(addr.Country)
	}
	return out
}

// decodeState maps the feed state; ESPN reports live events as "in".
func decodeState(o optional[scoreboardStatus]) domain.EventState {
	s, ok := o.get()
	if !ok {
		return ""
	}
	typ, ok := s.Type.get()
	if !ok {
		return ""
	}
	switch state := strings.ToLower(str(typ.State)); state {
	case "":
		return ""
	case "in", "in_progress":
		return domain.StateInProgress
	default:
		return domain.EventState(state)
	}
}

func parseDate(value text) time.Time {
	v := str(value)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func str(t text) string {
	v, _ := t.get()
	return strings.TrimSpace(v)
}

// strs keeps the non-blank strings of l.
func strs(l list[text]) []string {
	var out []string
	for _, t := range l {
		if s := str(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstString(values ...text) string {
	for _, v := range values {
		if s := str(v); s != "" {
			return s
		}
	}
	return ""
}
