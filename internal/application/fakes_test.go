package application

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/output"
)

type fakeFeed struct {
	years map[int][]entities.RawEvent
	errs  map[int]error
	calls []int
}

func (f *fakeFeed) FetchYear(_ context.Context, year int) (*entities.ScheduleSnapshot, error) {
	f.calls = append(f.calls, year)
	if err := f.errs[year]; err != nil {
		return nil, err
	}
	return &entities.ScheduleSnapshot{Year: year, Events: f.years[year]}, nil
}

type memRepo struct {
	mu     sync.Mutex
	data   map[string]entities.GuildSettings
	getErr error
	putErr error
	gets   int
	puts   int
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string]entities.GuildSettings{}}
}

func (r *memRepo) Get(_ context.Context, guildID string) (entities.GuildSettings, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	if r.getErr != nil {
		return entities.GuildSettings{}, false, r.getErr
	}
	s, ok := r.data[guildID]
	return s.Clone(), ok, nil
}

func (r *memRepo) Put(_ context.Context, guildID string, s entities.GuildSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.puts++
	if r.putErr != nil {
		return r.putErr
	}
	r.data[guildID] = s.Clone()
	return nil
}

func (r *memRepo) Delete(_ context.Context, guildID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, guildID)
	return nil
}

func (r *memRepo) ListGuildIDs(context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.data))
	for id := range r.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type sentMessage struct {
	channelID string
	content   string
}

type fakeGateway struct {
	sent         []sentMessage
	crossposts   []string
	events       []output.ScheduledEventParams
	sendErr      map[string]error
	crosspostErr error
	eventErr     error
}

func (g *fakeGateway) SendMessage(_ context.Context, channelID, content string) (output.SentMessage, error) {
	if err := g.sendErr[channelID]; err != nil {
		return output.SentMessage{}, err
	}
	g.sent = append(g.sent, sentMessage{channelID: channelID, content: content})
	return output.SentMessage{ID: "msg-" + channelID, ChannelID: channelID}, nil
}

func (g *fakeGateway) Crosspost(_ context.Context, _, messageID string) error {
	if g.crosspostErr != nil {
		return g.crosspostErr
	}
	g.crossposts = append(g.crossposts, messageID)
	return nil
}

func (g *fakeGateway) CreateScheduledEvent(_ context.Context, _ string, params output.ScheduledEventParams) (output.CreatedScheduledEvent, error) {
	if g.eventErr != nil {
		return output.CreatedScheduledEvent{}, g.eventErr
	}
	g.events = append(g.events, params)
	return output.CreatedScheduledEvent{ID: "evt-1", Name: params.Name, Start: params.Start, End: params.End}, nil
}

// stubEvents always resolves to the same event.
type stubEvents struct {
	data *entities.EventWithCard
	err  error
}

func (s *stubEvents) NextEvent(context.Context, domain.OrgID, time.Time) (*entities.EventWithCard, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.data == nil {
		return nil, domain.ErrNoUpcomingEvent
	}
	return s.data, nil
}

var errBoom = errors.New("boom")

func mustLoad(t interface{ Fatalf(string, ...any) }, name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return loc
}
