package game

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/schollz/closestmatch"
	"github.com/zyedidia/generic/mapset"

	"detectivequest/internal/mansion"
)

// Suspect is one person of interest in a case.
type Suspect struct {
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`
}

// Mystery is a full case: the mansion layout plus the people of interest.
type Mystery struct {
	Title     string
	Intro     string
	Threshold int
	Suspects  []Suspect

	Entrance *mansion.Room
}

// roomJSON mirrors the nested room layout of a case file.
type roomJSON struct {
	Name    string    `json:"name"`
	Clue    string    `json:"clue,omitempty"`
	Suspect string    `json:"suspect,omitempty"`
	Left    *roomJSON `json:"left,omitempty"`
	Right   *roomJSON `json:"right,omitempty"`
}

type caseFile struct {
	Title     string    `json:"title"`
	Intro     string    `json:"introduction"`
	Threshold int       `json:"threshold,omitempty"`
	Suspects  []Suspect `json:"suspects,omitempty"`
	Mansion   *roomJSON `json:"mansion"`
}

// LoadMystery reads a case from a JSON file.
func LoadMystery(filename string) (Mystery, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Mystery{}, fmt.Errorf("failed to open case file: %w", err)
	}
	defer file.Close()

	m, err := decodeMystery(file)
	if err != nil {
		return Mystery{}, fmt.Errorf("failed to decode case JSON: %w", err)
	}
	return m, nil
}

func decodeMystery(r io.Reader) (Mystery, error) {
	var cf caseFile
	if err := json.NewDecoder(r).Decode(&cf); err != nil {
		return Mystery{}, err
	}

	m := Mystery{
		Title:     cf.Title,
		Intro:     cf.Intro,
		Threshold: cf.Threshold,
		Suspects:  cf.Suspects,
		Entrance:  buildRoom(cf.Mansion),
	}
	if len(m.Suspects) == 0 {
		m.Suspects = deriveSuspects(m.Entrance)
	}
	return m, nil
}

func buildRoom(src *roomJSON) *mansion.Room {
	if src == nil {
		return nil
	}

	room := mansion.NewRoom(src.Name)
	if src.Clue != "" || src.Suspect != "" {
		room.WithClue(src.Clue, src.Suspect)
	}
	room.Left = buildRoom(src.Left)
	room.Right = buildRoom(src.Right)
	return room
}

// deriveSuspects collects the distinct suspect names written on clues,
// for cases that do not list suspects explicitly.
func deriveSuspects(entrance *mansion.Room) []Suspect {
	seen := mapset.New[string]()
	var names []string

	mansion.Walk(entrance, func(r *mansion.Room) bool {
		if clue, ok := r.PeekClue(); ok && clue.Suspect != "" && !seen.Has(clue.Suspect) {
			seen.Put(clue.Suspect)
			names = append(names, clue.Suspect)
		}
		return true
	})
	sort.Strings(names)

	suspects := make([]Suspect, 0, len(names))
	for _, name := range names {
		suspects = append(suspects, Suspect{Name: name})
	}
	return suspects
}

// Validate rejects cases that cannot be played. A case that lists no
// suspects gets its roster derived from the clue labels first.
func (m *Mystery) Validate() error {
	if m.Entrance == nil {
		return fmt.Errorf("case has no entrance room")
	}
	if m.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d", m.Threshold)
	}
	if len(m.Suspects) == 0 {
		m.Suspects = deriveSuspects(m.Entrance)
	}

	known := mapset.New[string]()
	for _, s := range m.Suspects {
		known.Put(s.Name)
	}

	var err error
	mansion.Walk(m.Entrance, func(r *mansion.Room) bool {
		clue, ok := r.PeekClue()
		switch {
		case r.Name == "":
			err = fmt.Errorf("case has an unnamed room")
		case ok && clue.Text == "":
			err = fmt.Errorf("room %q has a suspect label but no clue text", r.Name)
		case ok && clue.Suspect != "" && !known.Has(clue.Suspect):
			err = fmt.Errorf("clue %q points at unlisted suspect %q", clue.Text, clue.Suspect)
		}
		return err == nil
	})
	return err
}

func (m *Mystery) closestSuspectMatches() *closestmatch.ClosestMatch {
	var names []string
	for _, s := range m.Suspects {
		names = append(names, s.Name)
	}
	return closestmatch.New(names, []int{2})
}
