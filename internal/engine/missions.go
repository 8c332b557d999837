package engine

import (
	"sort"
	"time"

	"golang.org/x/text/language"
)

// UrgentWindow is how close a due date has to be for a mission to count as urgent.
const UrgentWindow = 24 * time.Hour

type MissionSortKey string

const (
	SortByDueDate    MissionSortKey = "dueDate"
	SortByPriority   MissionSortKey = "priority"
	SortByXPReward   MissionSortKey = "xpReward"
	SortByClientName MissionSortKey = "clientName"
)

var MissionSortKeys = []MissionSortKey{
	SortByDueDate,
	SortByPriority,
	SortByXPReward,
	SortByClientName,
}

// DefaultMissionSort is used for empty or unrecognized sort keys.
const DefaultMissionSort = SortByClientName

func (k MissionSortKey) IsValid() bool {
	switch k {
	case SortByDueDate, SortByPriority, SortByXPReward, SortByClientName:
		return true
	default:
		return false
	}
}

type MissionQuery struct {
	Search    string
	Priority  Priority
	Type      MissionType
	Sort      MissionSortKey
	Direction SortDirection
	Locale    language.Tag
}

// MissionView filters and orders missions without modifying the input.
func MissionView(missions []Mission, q MissionQuery) []Mission {
	match := newTextMatcher(q.Search)
	prio := q.Priority
	if !prio.IsValid() {
		prio = ""
	}
	typ := q.Type
	if !typ.IsValid() {
		typ = ""
	}

	out := make([]Mission, 0, len(missions))
	for _, m := range missions {
		if prio != "" && m.Priority != prio {
			continue
		}
		if typ != "" && m.Type != typ {
			continue
		}
		if !match.matchAny(m.ClientName, m.Description) {
			continue
		}
		out = append(out, m)
	}

	key := q.Sort
	if !key.IsValid() {
		key = DefaultMissionSort
	}
	cmp := missionComparator(key, q.Locale)
	desc := q.Direction == Descending

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return cmp(out[j], out[i]) < 0
		}
		return cmp(out[i], out[j]) < 0
	})
	return out
}

func missionComparator(key MissionSortKey, locale language.Tag) func(a, b Mission) int {
	switch key {
	case SortByDueDate:
		return func(a, b Mission) int { return a.DueDate.Compare(b.DueDate) }
	case SortByPriority:
		return func(a, b Mission) int { return compareInts(a.Priority.Rank(), b.Priority.Rank()) }
	case SortByXPReward:
		return func(a, b Mission) int { return compareInts(a.XPReward, b.XPReward) }
	default:
		coll := newCollator(locale)
		return func(a, b Mission) int { return coll.CompareString(a.ClientName, b.ClientName) }
	}
}

// IsUrgent reports whether m is due within UrgentWindow of now. Overdue
// missions are urgent.
func IsUrgent(m Mission, now time.Time) bool {
	return m.DueDate.Sub(now) < UrgentWindow
}

// NextMissionDue returns the earliest due date among missions, or nil when
// there are none.
func NextMissionDue(missions []Mission) *time.Time {
	var next *time.Time
	for i := range missions {
		d := missions[i].DueDate
		if next == nil || d.Before(*next) {
			next = &d
		}
	}
	return next
}
