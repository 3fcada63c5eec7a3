package constants

import "fmt"

type Urgency string

const (
	UrgencyImmediate Urgency = "immediate"
	UrgencyDay       Urgency = "day"
	UrgencyWeek      Urgency = "week"
)

const DefaultUrgency = UrgencyWeek

// ParseUrgency maps a request value to an Urgency. Empty input yields the default.
func ParseUrgency(v string) (Urgency, error) {
	switch u := Urgency(v); u {
	case "":
		return DefaultUrgency, nil
	case UrgencyImmediate, UrgencyDay, UrgencyWeek:
		return u, nil
	default:
		return "", fmt.Errorf("unknown urgency %q", v)
	}
}
