// Package calendar exports a resolved fight night as an iCalendar file so
// it can be imported outside Discord.
package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/output"
)

const productID = "-//fightnight//next-event//EN"

// Export renders one VEVENT carrying the same window and location as the
// Discord scheduled event described by params.
func Export(org domain.OrgID, ev entities.FightEvent, params output.ScheduledEventParams, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	vev := cal.AddEvent(UID(org, ev))
	vev.SetDtStampTime(stamp.UTC())
	vev.SetStartAt(params.Start.UTC())
	vev.SetEndAt(params.End.UTC())
	vev.SetSummary(params.Name)
	vev.SetLocation(params.Location)
	vev.SetDescription(description(ev))
	if ev.URL != "" {
		vev.SetURL(ev.URL)
	}
	return cal.Serialize()
}

// UID is stable per feed event so re-imports update instead of duplicate.
func UID(org domain.OrgID, ev entities.FightEvent) string {
	return fmt.Sprintf("%s-%s@fightnight", org, ev.ID)
}

func description(ev entities.FightEvent) string {
	lines := []string{"Main event: " + ev.MainEvent, "Broadcast: " + ev.Broadcast}
	if ev.URL != "" {
		lines = append(lines, "More info: "+ev.URL)
	}
	return strings.Join(lines, "\n")
}
