package domain

// Reasons reported alongside a negative (or positive) scheduler outcome.
const (
	ReasonTokenMissing       = "discord token not configured"
	ReasonOrgNotSet          = "organization not set"
	ReasonNoChannel          = "no channel configured"
	ReasonNotificationsOff   = "notifications disabled"
	ReasonOutsideHour        = "outside configured hour"
	ReasonNoUpcomingEvent    = "no upcoming event found"
	ReasonNotEventDay        = "not the event day"
	ReasonAlreadyPosted      = "already posted today"
	ReasonPosted             = "notification posted"
	ReasonScheduledEventsOff = "scheduled events disabled"
	ReasonOutsideWindow      = "not within creation window"
	ReasonAlreadyCreated     = "already created"
	ReasonCreated            = "scheduled event created"
)
