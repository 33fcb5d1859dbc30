package mansion

// Clue is a piece of evidence left in a room, optionally implicating a
// suspect by name.
type Clue struct {
	Text    string
	Suspect string
}

// Room is a node of the mansion map. Children are owned by their parent;
// the tree shape never changes after construction.
type Room struct {
	Name  string
	Left  *Room
	Right *Room

	clue *Clue // nil once collected, or when the room never had one
}

func NewRoom(name string) *Room {
	return &Room{Name: name}
}

// WithClue places a clue in the room and returns the room for chaining.
func (r *Room) WithClue(text, suspect string) *Room {
	r.clue = &Clue{Text: text, Suspect: suspect}
	return r
}

func (r *Room) HasClue() bool {
	return r.clue != nil
}

// PeekClue reads the clue without collecting it.
func (r *Room) PeekClue() (Clue, bool) {
	if r.clue == nil {
		return Clue{}, false
	}
	return *r.clue, true
}

// TakeClue hands over the room's clue and clears it in place, so a second
// visit finds nothing.
func (r *Room) TakeClue() (Clue, bool) {
	if r.clue == nil {
		return Clue{}, false
	}
	c := *r.clue
	r.clue = nil
	return c, true
}

// IsLeaf reports a dead end: a room with no onward passages.
func (r *Room) IsLeaf() bool {
	return r.Left == nil && r.Right == nil
}
