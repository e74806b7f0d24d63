package espn

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Wire shapes of the scoreboard. Every field is optional and tolerant: a
// value of the wrong JSON type decodes as absent, and a list element that
// cannot be decoded is dropped on its own. One malformed bout never costs
// the rest of the year.

type scoreboardRoot struct {
	Events list[scoreboardEvent] `json:"events"`
}

type scoreboardEvent struct {
	ID           text                        `json:"id"`
	UID          text                        `json:"uid"`
	Date         text                        `json:"date"`
	Name         text                        `json:"name"`
	ShortName    text                        `json:"shortName"`
	Competitions list[scoreboardCompetition] `json:"competitions"`
	Links        list[scoreboardLink]        `json:"links"`
	Venues       list[scoreboardVenue]       `json:"venues"`
	Status       optional[scoreboardStatus]  `json:"status"`
	Logos        list[scoreboardHref]        `json:"logos"`
}

type scoreboardHref struct {
	Href text `json:"href"`
}

type scoreboardStatus struct {
	Type optional[struct {
		State text `json:"state"`
	}] `json:"type"`
}

type scoreboardAddress struct {
	City    text `json:"city"`
	State   text `json:"state"`
	Country text `json:"country"`
}

type scoreboardVenue struct {
	FullName text                        `json:"fullName"`
	Address  optional[scoreboardAddress] `json:"address"`
}

type scoreboardLink struct {
	Href text       `json:"href"`
	Rel  list[text] `json:"rel"`
}

type scoreboardShortName struct {
	ShortName text `json:"shortName"`
}

type scoreboardCompetition struct {
	Date        text `json:"date"`
	StartDate   text `json:"startDate"`
	EndDate     text `json:"endDate"`
	CardSegment optional[struct {
		Title text `json:"title"`
	}] `json:"cardSegment"`
	Type optional[struct {
		Abbreviation text `json:"abbreviation"`
		Text         text `json:"text"`
	}] `json:"type"`
	Venue      optional[scoreboardVenue] `json:"venue"`
	Broadcasts list[struct {
		Names list[text] `json:"names"`
	}] `json:"broadcasts"`
	Broadcast     text `json:"broadcast"`
	GeoBroadcasts list[struct {
		Type  optional[scoreboardShortName] `json:"type"`
		Media optional[scoreboardShortName] `json:"media"`
	}] `json:"geoBroadcasts"`
	Status      optional[scoreboardStatus] `json:"status"`
	Competitors list[scoreboardCompetitor] `json:"competitors"`
}

type scoreboardCompetitor struct {
	Order   looseInt `json:"order"`
	Athlete optional[struct {
		DisplayName text `json:"displayName"`
		ShortName   text `json:"shortName"`
		FullName    text `json:"fullName"`
	}] `json:"athlete"`
	Records list[struct {
		Summary text `json:"summary"`
	}] `json:"records"`
}

// text is a JSON string; any other JSON type decodes as absent.
type text = optional[string]

// optional holds a value of type T when the payload carried one that
// decodes cleanly. null and mistyped values leave it unset.
type optional[T any] struct {
	value T
	valid bool
}

func (o *optional[T]) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	*o = optional[T]{value: v, valid: true}
	return nil
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.valid
}

// list decodes a JSON array element by element and keeps the elements that
// decode. A value that is not an array decodes as an empty list.
type list[T any] []T

func (l *list[T]) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = nil
		return nil
	}
	out := make(list[T], 0, len(raw))
	for _, r := range raw {
		if isNull(r) {
			continue
		}
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	*l = out
	return nil
}

// looseInt accepts a JSON number or numeric string; anything else decodes
// as absent instead of failing the whole payload.
type looseInt struct {
	value int
	valid bool
}

func (l *looseInt) UnmarshalJSON(b []byte) error {
	v, err := strconv.Atoi(string(bytes.Trim(b, `"`)))
	if err != nil {
		return nil
	}
	*l = looseInt{value: v, valid: true}
	return nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
