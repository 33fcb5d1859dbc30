package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"detectivequest/internal/evidence"
	"detectivequest/internal/game"
	"detectivequest/internal/mansion"
	"detectivequest/internal/notebook"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [case.json]",
	Short: "Validate a case and summarise what a full sweep would find",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := game.SampleMystery()
		if len(args) == 1 {
			var err error
			m, err = game.LoadMystery(args[0])
			if err != nil {
				return err
			}
		}
		if err := m.Validate(); err != nil {
			return fmt.Errorf("invalid case: %w", err)
		}

		rooms, clues := mansion.Survey(m.Entrance)
		fmt.Printf("Case: %s\n", m.Title)
		fmt.Printf("Rooms: %d, clues: %d, suspects: %d\n\n", rooms, clues, len(m.Suspects))

		fmt.Println("Mansion layout:")
		printRooms(m.Entrance, 0)

		// Sweep every room the way a perfect playthrough would.
		nb := notebook.New()
		board := evidence.NewBoard()
		mansion.Walk(m.Entrance, func(r *mansion.Room) bool {
			if clue, ok := r.PeekClue(); ok {
				nb.Add(clue.Text)
				if clue.Suspect != "" {
					board.Link(clue.Text, clue.Suspect)
				}
			}
			return true
		})

		fmt.Println("\nClues, alphabetical:")
		orphans := 0
		nb.Walk(func(text string) bool {
			if suspect, ok := board.SuspectFor(text); ok {
				fmt.Printf("  %s -> %s\n", text, suspect)
			} else {
				fmt.Printf("  %s -> (nobody)\n", text)
				orphans++
			}
			return true
		})
		if orphans > 0 {
			fmt.Printf("  ⚠ %d clue(s) implicate nobody and can never support an accusation\n", orphans)
		}

		threshold := cfg.Game.Threshold
		if m.Threshold > 0 {
			threshold = m.Threshold
		}

		fmt.Println("\nSuspects:")
		winnable := false
		for _, s := range m.Suspects {
			v := game.Judge(nb, board, s.Name, threshold)
			fmt.Printf("  %s: %d clue(s)\n", s.Name, v.Matches)
			if v.Sustained() {
				winnable = true
			} else {
				fmt.Printf("    ⚠ cannot be convicted even with every clue in hand (threshold %d)\n", threshold)
			}
		}
		if !winnable {
			fmt.Printf("\n⚠ No suspect can reach the threshold of %d; this case cannot be won.\n", threshold)
		}

		longest := 0
		for _, n := range board.ChainLengths() {
			if n > longest {
				longest = n
			}
		}
		fmt.Printf("\nEvidence board: %d entries across %d buckets, longest chain %d\n",
			board.Len(), len(board.ChainLengths()), longest)
		return nil
	},
}

func printRooms(room *mansion.Room, depth int) {
	if room == nil {
		return
	}

	line := strings.Repeat("  ", depth) + room.Name
	if room.IsLeaf() {
		line += " (dead end)"
	}
	if clue, ok := room.PeekClue(); ok {
		line += fmt.Sprintf("  📌 %s", clue.Text)
	}
	fmt.Println(line)

	printRooms(room.Left, depth+1)
	printRooms(room.Right, depth+1)
}
