package application

import (
	"fmt"
	"strings"
	"time"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/output"
)

const (
	cardPreviewSize = 5
	startTimeLayout = "Mon, Jan 2, 3:04 PM"

	scheduledEventDuration    = 3 * time.Hour
	scheduledEventDescription = "Auto-created by Fight Night bot"
)

// BuildNotificationMessage renders the fight-night alert posted to a guild.
// Only the last bouts of the card are listed, the headliners come last.
func BuildNotificationMessage(org domain.OrgID, data *entities.EventWithCard, loc *time.Location, zoneLabel string) string {
	ev := data.Event
	lines := []string{
		fmt.Sprintf("%s Fight Night Alert!", org.DisplayName()),
		fmt.Sprintf("**%s**", ev.Name),
		fmt.Sprintf("Main event: %s", ev.MainEvent),
		fmt.Sprintf("Starts at %s (%s)", ev.StartTime.In(loc).Format(startTimeLayout), zoneLabel),
		fmt.Sprintf("Broadcast: %s", ev.Broadcast),
		fmt.Sprintf("More info: %s", ev.URL),
	}
	if preview := CardPreview(data.Card); len(preview) > 0 {
		lines = append(lines, "", "Upcoming card:")
		for _, b := range preview {
			lines = append(lines, fmt.Sprintf("- %s: %s vs %s", b.WeightClass, b.RedName, b.BlueName))
		}
	}
	return strings.Join(lines, "\n")
}

// CardPreview returns the last bouts of card, at most five.
func CardPreview(card []entities.Bout) []entities.Bout {
	if len(card) <= cardPreviewSize {
		return card
	}
	return card[len(card)-cardPreviewSize:]
}

// NewScheduledEventParams describes the guild scheduled event of ev. The
// feed has no reliable end time for the headliner, so the event lasts a
// fixed three hours.
func NewScheduledEventParams(org domain.OrgID, ev entities.FightEvent) output.ScheduledEventParams {
	return output.ScheduledEventParams{
		Name:        fmt.Sprintf("%s: %s", org.DisplayName(), ev.Name),
		Description: scheduledEventDescription,
		Start:       ev.StartTime,
		End:         ev.StartTime.Add(scheduledEventDuration),
		Location:    scheduledEventLocation(ev),
	}
}

// scheduledEventLocation joins venue and city, ignoring placeholders.
func scheduledEventLocation(ev entities.FightEvent) string {
	var parts []string
	for _, p := range []string{ev.Venue, ev.City} {
		if p != "" && p != placeholder {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "TBD"
	}
	return strings.Join(parts, " - ")
}
