package domain

import (
	"errors"
	"fmt"
)

// Error is a domain error carrying a stable code that adapters translate
// into user-facing messages.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error.
func (e *Error) Code() string { return e.code }

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Domain errors.
var (
	ErrNoUpcomingEvent     = newError("no_upcoming_event", "aucun événement à venir")
	ErrUnsupportedOrg      = newError("unsupported_org", "organisation non supportée")
	ErrInvalidHour         = newError("invalid_hour", "l'heure doit être comprise entre 0 et 23")
	ErrInvalidTimezone     = newError("invalid_timezone", "fuseau horaire IANA invalide")
	ErrInvalidDeliveryMode = newError("invalid_delivery_mode", "mode de diffusion invalide")
	ErrOrgRequired         = newError("org_required", "une organisation doit être choisie avant d'activer les notifications")
	ErrChannelRequired     = newError("channel_required", "aucun salon n'a pu être déterminé")
)

// Code extracts the domain error code from err, or "" when err is not a
// domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}

// GatewayError is returned by the Discord transport when the REST API
// answers with a non-2xx status.
type GatewayError struct {
	Op     string
	Status int
	Reason string
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("discord %s: %d %s: %s", e.Op, e.Status, e.Reason, e.Body)
}
