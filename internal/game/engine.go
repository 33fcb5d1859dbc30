package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"detectivequest/config"
	"detectivequest/internal/evidence"
	"detectivequest/internal/game/audio"
	"detectivequest/internal/logger"
	"detectivequest/internal/mansion"
	"detectivequest/internal/notebook"
)

type Engine struct {
	mystery Mystery
	loaded  bool

	notebook *notebook.Notebook
	board    *evidence.Board
	visited  mapset.Set[string]

	logger *logger.Log
	config *config.Config

	threshold         int
	thresholdOverride int
	showHints         bool
	muted             bool

	totalRooms int
	totalClues int

	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
}

func NewEngine(cfg *config.Config) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("engine needs a config")
	}

	return &Engine{
		notebook:  notebook.New(),
		board:     evidence.NewBoard(),
		visited:   mapset.New[string](),
		logger:    logger.New(),
		config:    cfg,
		showHints: cfg.Game.Hints,
		in:        os.Stdin,
		out:       os.Stdout,
	}, nil
}

// WithMystery sets the case to investigate.
func (e *Engine) WithMystery(m Mystery) *Engine {
	e.mystery = m
	e.loaded = true
	return e
}

// WithMysteryFile loads the case from a JSON file.
func (e *Engine) WithMysteryFile(filename string) *Engine {
	if filename == "" {
		e.logger.Warn("empty case filename")
		return e
	}

	m, err := LoadMystery(filename)
	if err != nil {
		e.logger.WithError(err).Error("failed to load case")
		return e
	}
	e.mystery = m
	e.loaded = true
	return e
}

// WithThreshold overrides the conviction threshold from the config and the
// case file. Zero means no override.
func (e *Engine) WithThreshold(n int) *Engine {
	e.thresholdOverride = n
	return e
}

// WithMute disables ambience playback for this run.
func (e *Engine) WithMute(muted bool) *Engine {
	e.muted = muted
	return e
}

// WithIO redirects the player conversation away from the terminal.
func (e *Engine) WithIO(in io.Reader, out io.Writer) *Engine {
	e.in = in
	e.out = out
	return e
}

// Start runs one full investigation: exploration, then the accusation.
func (e *Engine) Start() error {
	if !e.loaded {
		return fmt.Errorf("no case loaded")
	}
	if err := e.mystery.Validate(); err != nil {
		return fmt.Errorf("invalid case: %w", err)
	}

	e.threshold = e.resolveThreshold()
	e.totalRooms, e.totalClues = mansion.Survey(e.mystery.Entrance)
	e.scanner = bufio.NewScanner(e.in)

	if e.config.Audio.Enabled && !e.muted {
		if err := audio.PlayAmbience(e.config.Audio.File, e.config.Audio.Volume); err != nil {
			e.logger.WithError(err).Warn("ambience unavailable")
		}
	}

	fmt.Fprintf(e.out, "🔍 Welcome Detective! You are investigating: %s\n", e.mystery.Title)
	if e.mystery.Intro != "" {
		fmt.Fprintf(e.out, "\n%s\n", e.mystery.Intro)
	}
	fmt.Fprintln(e.out, "\nType 'help' for available commands.")

	if !e.explore() {
		return nil
	}
	e.accuse()
	return nil
}

func (e *Engine) resolveThreshold() int {
	switch {
	case e.thresholdOverride > 0:
		return e.thresholdOverride
	case e.mystery.Threshold > 0:
		return e.mystery.Threshold
	default:
		return e.config.Game.Threshold
	}
}

// explore walks the player down the mansion until a dead end, or until they
// stop. It reports whether the investigation should proceed to an accusation.
func (e *Engine) explore() bool {
	room := e.mystery.Entrance
	e.enterRoom(room)

	for {
		if room.IsLeaf() {
			fmt.Fprintln(e.out, "\nA dead end. There is nowhere left to go.")
			return true
		}

		e.showExits(room)

		line, ok := e.readLine()
		if !ok {
			fmt.Fprintln(e.out, "\nThe trail goes cold. Investigation abandoned.")
			return false
		}

		switch strings.ToLower(line) {
		case "e", "left":
			if room.Left == nil {
				fmt.Fprintln(e.out, "There is no passage to the left.")
				continue
			}
			room = room.Left
			e.enterRoom(room)

		case "d", "right":
			if room.Right == nil {
				fmt.Fprintln(e.out, "There is no passage to the right.")
				continue
			}
			room = room.Right
			e.enterRoom(room)

		case "s", "stop":
			fmt.Fprintln(e.out, "\nYou stop exploring. Time to name the culprit.")
			return true

		case "help":
			e.showHelp()

		case "notebook":
			e.showNotebook()

		case "suspects":
			e.listSuspects()

		case "quit", "exit":
			fmt.Fprintln(e.out, "Goodbye detective.")
			return false

		case "":
			// re-prompt

		default:
			fmt.Fprintln(e.out, "Unknown command. Type 'help' for options.")
		}
	}
}

func (e *Engine) enterRoom(room *mansion.Room) {
	e.visited.Put(room.Name)
	e.logger.Debug(fmt.Sprintf("entered %s", room.Name))

	fmt.Fprintf(e.out, "\n== %s ==\n", room.Name)

	clue, ok := room.TakeClue()
	if !ok {
		fmt.Fprintln(e.out, "Nothing of interest here.")
		return
	}

	fmt.Fprintf(e.out, "📌 You found a clue: %s\n", clue.Text)
	e.notebook.Add(clue.Text)
	if clue.Suspect != "" {
		e.board.Link(clue.Text, clue.Suspect)
	}
}

func (e *Engine) showExits(room *mansion.Room) {
	fmt.Fprintln(e.out, "\nExits:")
	if room.Left != nil {
		fmt.Fprintf(e.out, "  [e] go left, into %s\n", room.Left.Name)
	}
	if room.Right != nil {
		fmt.Fprintf(e.out, "  [d] go right, into %s\n", room.Right.Name)
	}
	fmt.Fprintln(e.out, "  [s] stop exploring and accuse")
}

// accuse reviews the notebook, takes one accusation, and delivers the verdict.
func (e *Engine) accuse() {
	fmt.Fprintln(e.out, "\n== Case review ==")
	if e.notebook.Size() == 0 {
		fmt.Fprintln(e.out, "Your notebook is empty.")
	} else {
		fmt.Fprintf(e.out, "Notebook, %d clue(s) in alphabetical order:\n", e.notebook.Size())
		e.notebook.Walk(func(text string) bool {
			if suspect, ok := e.board.SuspectFor(text); ok {
				fmt.Fprintf(e.out, "  • %s (points at %s)\n", text, suspect)
			} else {
				fmt.Fprintf(e.out, "  • %s\n", text)
			}
			return true
		})
	}

	for {
		fmt.Fprint(e.out, "Who do you accuse? ")
		if !e.scanner.Scan() {
			fmt.Fprintln(e.out, "\nNo accusation made. The case stays open.")
			return
		}

		accused := strings.TrimSpace(e.scanner.Text())
		if accused == "" {
			continue
		}

		e.deliverVerdict(Judge(e.notebook, e.board, accused, e.threshold))
		return
	}
}

func (e *Engine) deliverVerdict(v Verdict) {
	fmt.Fprintf(e.out, "\nYou accuse %s.\n", v.Accused)

	if v.Sustained() {
		fmt.Fprintf(e.out, "🎉 The accusation is sustained: %d clue(s) point at %s.\n",
			v.Matches, v.Accused)
	} else {
		fmt.Fprintf(e.out, "❌ The accusation is weak: %d clue(s) point at %s, %d needed.\n",
			v.Matches, v.Accused, v.Threshold)
		e.suggestSuspect(v)
	}

	if v.Matches > 0 {
		fmt.Fprintln(e.out, "Supporting evidence:")
		e.notebook.Walk(func(text string) bool {
			if suspect, ok := e.board.SuspectFor(text); ok && suspect == v.Accused {
				fmt.Fprintf(e.out, "  • %s\n", text)
			}
			return true
		})
	}

	fmt.Fprintf(e.out, "\nYou explored %d of %d rooms and collected %d of %d clues.\n",
		e.visited.Size(), e.totalRooms, e.notebook.Size(), e.totalClues)
}

// suggestSuspect offers the closest known name when an accusation matched
// nothing, which usually means a typo.
func (e *Engine) suggestSuspect(v Verdict) {
	if !e.showHints || v.Matches > 0 || len(e.mystery.Suspects) == 0 {
		return
	}

	name := e.mystery.closestSuspectMatches().Closest(v.Accused)
	if name != "" && name != v.Accused {
		fmt.Fprintf(e.out, "💡 Did you mean %s?\n", name)
	}
}

func (e *Engine) showHelp() {
	fmt.Fprintln(e.out, "Available Commands:")
	fmt.Fprintln(e.out, "  e / left   - Take the left passage")
	fmt.Fprintln(e.out, "  d / right  - Take the right passage")
	fmt.Fprintln(e.out, "  s / stop   - Stop exploring and name the culprit")
	fmt.Fprintln(e.out, "  notebook   - List the clues collected so far")
	fmt.Fprintln(e.out, "  suspects   - List the people of interest")
	fmt.Fprintln(e.out, "  help       - Show this help message")
	fmt.Fprintln(e.out, "  quit/exit  - Abandon the investigation")
}

func (e *Engine) showNotebook() {
	if e.notebook.Size() == 0 {
		fmt.Fprintln(e.out, "Your notebook is empty.")
		return
	}

	fmt.Fprintf(e.out, "Notebook, %d clue(s) in alphabetical order:\n", e.notebook.Size())
	e.notebook.Walk(func(text string) bool {
		fmt.Fprintf(e.out, "  • %s\n", text)
		return true
	})
}

func (e *Engine) listSuspects() {
	fmt.Fprintln(e.out, "\nPeople of interest:")
	for _, s := range e.mystery.Suspects {
		if s.Notes != "" {
			fmt.Fprintf(e.out, "  • %s (%s)\n", s.Name, s.Notes)
		} else {
			fmt.Fprintf(e.out, "  • %s\n", s.Name)
		}
	}
	fmt.Fprintln(e.out)
}

func (e *Engine) readLine() (string, bool) {
	fmt.Fprint(e.out, "> ")
	if !e.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(e.scanner.Text()), true
}
