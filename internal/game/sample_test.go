package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detectivequest/internal/mansion"
)

func TestSampleMysteryShape(t *testing.T) {
	m := SampleMystery()
	require.NoError(t, m.Validate())

	rooms, clues := mansion.Survey(m.Entrance)
	assert.Equal(t, 13, rooms)
	assert.Equal(t, 10, clues)
	assert.Len(t, m.Suspects, 5)

	// The entrance splits into the living wing and the kitchen wing.
	assert.Equal(t, "Hall de Entrada", m.Entrance.Name)
	assert.False(t, m.Entrance.HasClue())
	require.NotNil(t, m.Entrance.Left)
	require.NotNil(t, m.Entrance.Right)
	assert.Equal(t, "Sala de Estar", m.Entrance.Left.Name)
	assert.Equal(t, "Cozinha", m.Entrance.Right.Name)

	// The library is the nearest dead end.
	biblioteca := m.Entrance.Left.Left
	require.NotNil(t, biblioteca)
	assert.Equal(t, "Biblioteca", biblioteca.Name)
	assert.True(t, biblioteca.IsLeaf())
}

func TestSampleEveryClueSuspectIsListed(t *testing.T) {
	m := SampleMystery()

	listed := make(map[string]bool, len(m.Suspects))
	for _, s := range m.Suspects {
		listed[s.Name] = true
	}

	mansion.Walk(m.Entrance, func(r *mansion.Room) bool {
		if clue, ok := r.PeekClue(); ok && clue.Suspect != "" {
			assert.True(t, listed[clue.Suspect], "clue %q names %q", clue.Text, clue.Suspect)
		}
		return true
	})
}
