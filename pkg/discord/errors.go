package discord

import "fightnight/internal/domain"

// DomainErrorKey maps a domain error to its translation key. Errors that
// are not domain errors map to "error.unknown".
func DomainErrorKey(err error) string {
	switch domain.Code(err) {
	case "unsupported_org":
		return "error.unsupported_org"
	case "invalid_hour":
		return "error.invalid_hour"
	case "invalid_timezone":
		return "error.invalid_timezone"
	case "invalid_delivery_mode":
		return "error.invalid_delivery_mode"
	case "org_required":
		return "error.org_required"
	case "channel_required":
		return "error.channel_required"
	case "no_upcoming_event":
		return "error.no_upcoming_event"
	default:
		return "error.unknown"
	}
}
