// Package mansion models the binary map of rooms a detective explores.
// Navigation is a player-directed descent: left, right, or out. There is
// no search and no way back up.
package mansion

// Walk visits rooms in pre-order. If fn returns false, the walk stops.
func Walk(root *Room, fn func(*Room) bool) {
	walk(root, fn)
}

func walk(r *Room, fn func(*Room) bool) bool {
	if r == nil {
		return true
	}
	if !fn(r) {
		return false
	}
	if !walk(r.Left, fn) {
		return false
	}
	return walk(r.Right, fn)
}

// Survey counts the rooms and the clues still waiting in them.
func Survey(root *Room) (rooms, clues int) {
	Walk(root, func(r *Room) bool {
		rooms++
		if r.HasClue() {
			clues++
		}
		return true
	})
	return rooms, clues
}
