package enums

import "fmt"

// GroupStatus tracks a product group's bulk-buy campaign lifecycle.
type GroupStatus string

const (
	GroupStatusPending   GroupStatus = "pending"
	GroupStatusAccepted  GroupStatus = "accepted"
	GroupStatusDeclined  GroupStatus = "declined"
	GroupStatusDelivered GroupStatus = "delivered"
)

var validGroupStatuses = []GroupStatus{
	GroupStatusPending,
	GroupStatusAccepted,
	GroupStatusDeclined,
	GroupStatusDelivered,
}

var groupTransitions = map[GroupStatus][]GroupStatus{
	GroupStatusPending:  {GroupStatusAccepted, GroupStatusDeclined},
	GroupStatusAccepted: {GroupStatusDelivered},
}

// String implements fmt.Stringer.
func (g GroupStatus) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GroupStatus.
func (g GroupStatus) IsValid() bool {
	for _, candidate := range validGroupStatuses {
		if candidate == g {
			return true
		}
	}
	return false
}

// CanTransition reports whether the status may move to next. Self-transitions
// are treated as no-ops and allowed.
func (g GroupStatus) CanTransition(next GroupStatus) bool {
	if g == next {
		return true
	}
	for _, candidate := range groupTransitions[g] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseGroupStatus converts raw input into a GroupStatus.
func ParseGroupStatus(value string) (GroupStatus, error) {
	for _, candidate := range validGroupStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid group status %q", value)
}
