package domain

import "strings"

// OrgID identifies a tracked fight organization.
type OrgID string

const OrgUFC OrgID = "ufc"

// DisplayName is the upper-cased label used in messages ("UFC").
func (o OrgID) DisplayName() string {
	return strings.ToUpper(string(o))
}

// SupportedOrgs lists the organizations the resolver has a feed for.
var SupportedOrgs = []OrgID{OrgUFC}

// ParseOrg validates a user supplied organization identifier.
func ParseOrg(s string) (OrgID, error) {
	org := OrgID(strings.ToLower(strings.TrimSpace(s)))
	for _, o := range SupportedOrgs {
		if o == org {
			return org, nil
		}
	}
	return "", ErrUnsupportedOrg
}

// DeliveryMode controls whether a notification is crossposted.
type DeliveryMode string

const (
	DeliveryMessage      DeliveryMode = "message"
	DeliveryAnnouncement DeliveryMode = "announcement"
)

func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch m := DeliveryMode(strings.ToLower(strings.TrimSpace(s))); m {
	case DeliveryMessage, DeliveryAnnouncement:
		return m, nil
	}
	return "", ErrInvalidDeliveryMode
}

// EventState is the lifecycle tag the feed attaches to events and bouts.
type EventState string

const (
	StatePre        EventState = "pre"
	StateInProgress EventState = "in_progress"
	StatePost       EventState = "post"
)
