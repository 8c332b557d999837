package engine

import "strings"

// FilterAll is the filter value that disables a filter.
const FilterAll = "all"

func normalize(input string) string {
	return strings.TrimSpace(strings.ToLower(input))
}

// ParseTier parses user input to a Tier. Empty, "all" or unrecognized input
// returns "" which means no tier filtering.
func ParseTier(input string) Tier {
	t := Tier(normalize(input))
	if t.IsValid() {
		return t
	}
	return ""
}

// ParsePriority parses user input to a Priority. Unknown input returns "".
func ParsePriority(input string) Priority {
	s := normalize(input)
	switch s {
	case "hi":
		return PriorityHigh
	case "med":
		return PriorityMedium
	case "lo":
		return PriorityLow
	}
	p := Priority(s)
	if p.IsValid() {
		return p
	}
	return ""
}

// ParseMissionType parses user input to a MissionType.
// Supported: follow_up, check_in, meeting, email, opportunity, call, task
// (dashes and spaces are accepted in place of underscores).
// Unknown input returns "".
func ParseMissionType(input string) MissionType {
	s := normalize(input)
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	switch s {
	case "followup":
		return MissionFollowUp
	case "checkin":
		return MissionCheckIn
	}
	t := MissionType(s)
	if t.IsValid() {
		return t
	}
	return ""
}

// ParseDirection returns Descending for "desc"/"descending", Ascending otherwise.
func ParseDirection(input string) SortDirection {
	switch normalize(input) {
	case "desc", "descending":
		return Descending
	default:
		return Ascending
	}
}

// ParseClientSortKey maps user input to a roster sort key, falling back to
// DefaultClientSort.
func ParseClientSortKey(input string) ClientSortKey {
	s := strings.ReplaceAll(normalize(input), "_", "")
	for _, k := range ClientSortKeys {
		if strings.ToLower(string(k)) == s {
			return k
		}
	}
	switch s {
	case "points", "rp":
		return SortByRelationshipPoints
	case "meeting":
		return SortByNextMeeting
	case "contact":
		return SortByLastContact
	}
	return DefaultClientSort
}

// ParseMissionSortKey maps user input to a mission sort key, falling back to
// DefaultMissionSort.
func ParseMissionSortKey(input string) MissionSortKey {
	s := strings.ReplaceAll(normalize(input), "_", "")
	for _, k := range MissionSortKeys {
		if strings.ToLower(string(k)) == s {
			return k
		}
	}
	switch s {
	case "due":
		return SortByDueDate
	case "xp":
		return SortByXPReward
	case "client":
		return SortByClientName
	}
	return DefaultMissionSort
}
