package engine

import (
	"sort"

	"golang.org/x/text/language"
)

type ClientSortKey string

const (
	SortByName               ClientSortKey = "name"
	SortByTier               ClientSortKey = "tier"
	SortByLastContact        ClientSortKey = "lastContact"
	SortByNextMeeting        ClientSortKey = "nextMeeting"
	SortByRelationshipPoints ClientSortKey = "relationshipPoints"
)

// ClientSortKeys lists the roster sort keys in the order the board cycles them.
var ClientSortKeys = []ClientSortKey{
	SortByName,
	SortByTier,
	SortByLastContact,
	SortByNextMeeting,
	SortByRelationshipPoints,
}

// DefaultClientSort is used for empty or unrecognized sort keys.
const DefaultClientSort = SortByName

func (k ClientSortKey) IsValid() bool {
	switch k {
	case SortByName, SortByTier, SortByLastContact, SortByNextMeeting, SortByRelationshipPoints:
		return true
	default:
		return false
	}
}

// ClientQuery describes one roster view. Zero values mean: no search, all
// tiers, sort by name ascending.
type ClientQuery struct {
	Search    string
	Tier      Tier
	Sort      ClientSortKey
	Direction SortDirection
	Locale    language.Tag
}

// RosterView filters and orders clients. The input slice is left untouched
// and clients with equal sort keys keep their input order.
func RosterView(clients []Client, q ClientQuery) []Client {
	match := newTextMatcher(q.Search)
	tier := q.Tier
	if !tier.IsValid() {
		tier = ""
	}

	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		if tier != "" && c.Tier != tier {
			continue
		}
		if !match.matchAny(c.Name, c.Email, c.Industry) {
			continue
		}
		out = append(out, c)
	}

	key := q.Sort
	if !key.IsValid() {
		key = DefaultClientSort
	}
	desc := q.Direction == Descending
	cmp := clientComparator(key, q.Locale)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if key == SortByNextMeeting {
			// Clients without a meeting go last in either direction.
			switch {
			case a.NextMeeting == nil && b.NextMeeting == nil:
				return false
			case a.NextMeeting == nil:
				return false
			case b.NextMeeting == nil:
				return true
			}
		}
		if desc {
			return cmp(b, a) < 0
		}
		return cmp(a, b) < 0
	})
	return out
}

func clientComparator(key ClientSortKey, locale language.Tag) func(a, b Client) int {
	switch key {
	case SortByTier:
		return func(a, b Client) int { return compareInts(a.Tier.Rank(), b.Tier.Rank()) }
	case SortByLastContact:
		return func(a, b Client) int { return a.LastContact.Compare(b.LastContact) }
	case SortByNextMeeting:
		return func(a, b Client) int { return a.NextMeeting.Compare(*b.NextMeeting) }
	case SortByRelationshipPoints:
		return func(a, b Client) int { return compareInts(a.RelationshipPoints, b.RelationshipPoints) }
	default:
		coll := newCollator(locale)
		return func(a, b Client) int { return coll.CompareString(a.Name, b.Name) }
	}
}
