package mansion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeClueClearsInPlace(t *testing.T) {
	room := NewRoom("Biblioteca").WithClue("luva militar na poltrona", "Coronel Mostarda")

	require.True(t, room.HasClue())

	clue, ok := room.TakeClue()
	require.True(t, ok)
	assert.Equal(t, "luva militar na poltrona", clue.Text)
	assert.Equal(t, "Coronel Mostarda", clue.Suspect)

	// A second visit finds nothing.
	assert.False(t, room.HasClue())
	_, ok = room.TakeClue()
	assert.False(t, ok)
}

func TestPeekClueDoesNotCollect(t *testing.T) {
	room := NewRoom("Despensa").WithClue("frasco de veneno aberto", "Dona Violeta")

	clue, ok := room.PeekClue()
	require.True(t, ok)
	assert.Equal(t, "frasco de veneno aberto", clue.Text)
	assert.True(t, room.HasClue())
}

func TestIsLeaf(t *testing.T) {
	leaf := NewRoom("Varanda")
	assert.True(t, leaf.IsLeaf())

	parent := NewRoom("Jardim de Inverno")
	parent.Left = leaf
	assert.False(t, parent.IsLeaf())

	parent.Left = nil
	parent.Right = NewRoom("Escritório")
	assert.False(t, parent.IsLeaf())
}

func TestWalkPreOrderAndStop(t *testing.T) {
	root := NewRoom("Hall")
	root.Left = NewRoom("A")
	root.Right = NewRoom("B")
	root.Left.Left = NewRoom("C")

	var names []string
	Walk(root, func(r *Room) bool {
		names = append(names, r.Name)
		return true
	})
	assert.Equal(t, []string{"Hall", "A", "C", "B"}, names)

	names = nil
	Walk(root, func(r *Room) bool {
		names = append(names, r.Name)
		return r.Name != "A"
	})
	assert.Equal(t, []string{"Hall", "A"}, names)
}

func TestSurvey(t *testing.T) {
	root := NewRoom("Hall")
	root.Left = NewRoom("Cozinha").WithClue("faca fora do suporte", "Dona Branca")
	root.Right = NewRoom("Sala de Estar").WithClue("cinzas de charuto", "Coronel Mostarda")
	root.Right.Left = NewRoom("Varanda")

	rooms, clues := Survey(root)
	assert.Equal(t, 4, rooms)
	assert.Equal(t, 2, clues)

	// Collected clues leave the survey.
	root.Left.TakeClue()
	rooms, clues = Survey(root)
	assert.Equal(t, 4, rooms)
	assert.Equal(t, 1, clues)

	rooms, clues = Survey(nil)
	assert.Zero(t, rooms)
	assert.Zero(t, clues)
}
