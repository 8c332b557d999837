package engine

// SortState tracks the active sort key and direction of a view.
type SortState[K comparable] struct {
	Key       K
	Direction SortDirection
}

// Select picks key. Selecting the active key again flips the direction;
// switching to another key resets to ascending.
func (s SortState[K]) Select(key K) SortState[K] {
	if key == s.Key {
		return SortState[K]{Key: key, Direction: s.Direction.Flip()}
	}
	return SortState[K]{Key: key, Direction: Ascending}
}

// Toggle flips the direction and keeps the key.
func (s SortState[K]) Toggle() SortState[K] {
	return SortState[K]{Key: s.Key, Direction: s.Direction.Flip()}
}

// InitialRosterSort is the roster sort a session starts with.
func InitialRosterSort() SortState[ClientSortKey] {
	return SortState[ClientSortKey]{Key: SortByName, Direction: Ascending}
}

// InitialMissionSort is the mission sort a session starts with.
func InitialMissionSort() SortState[MissionSortKey] {
	return SortState[MissionSortKey]{Key: SortByDueDate, Direction: Ascending}
}

// NextClientSortKey returns the key after k in ClientSortKeys, wrapping around.
func NextClientSortKey(k ClientSortKey) ClientSortKey {
	return nextKey(ClientSortKeys, k)
}

// NextMissionSortKey returns the key after k in MissionSortKeys, wrapping around.
func NextMissionSortKey(k MissionSortKey) MissionSortKey {
	return nextKey(MissionSortKeys, k)
}

func nextKey[K comparable](keys []K, k K) K {
	for i, cur := range keys {
		if cur == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}
