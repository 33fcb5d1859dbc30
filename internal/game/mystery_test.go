package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detectivequest/internal/mansion"
)

const caseJSON = `{
	"title": "O Colar Desaparecido",
	"introduction": "O colar da condessa sumiu durante o baile.",
	"threshold": 1,
	"mansion": {
		"name": "Salão",
		"left": {
			"name": "Terraço",
			"clue": "pegada na terra do vaso",
			"suspect": "Barão Von Pato"
		},
		"right": {
			"name": "Galeria",
			"clue": "moldura fora do lugar",
			"suspect": "Arquiteto Sol",
			"left": {
				"name": "Cofre",
				"clue": "segredo arranhado na parede",
				"suspect": "Barão Von Pato"
			}
		}
	}
}`

func TestDecodeMystery(t *testing.T) {
	m, err := decodeMystery(strings.NewReader(caseJSON))
	require.NoError(t, err)

	assert.Equal(t, "O Colar Desaparecido", m.Title)
	assert.Equal(t, "O colar da condessa sumiu durante o baile.", m.Intro)
	assert.Equal(t, 1, m.Threshold)

	require.NotNil(t, m.Entrance)
	assert.Equal(t, "Salão", m.Entrance.Name)
	assert.False(t, m.Entrance.HasClue())

	require.NotNil(t, m.Entrance.Left)
	assert.Equal(t, "Terraço", m.Entrance.Left.Name)
	assert.True(t, m.Entrance.Left.IsLeaf())

	clue, ok := m.Entrance.Left.PeekClue()
	require.True(t, ok)
	assert.Equal(t, "pegada na terra do vaso", clue.Text)
	assert.Equal(t, "Barão Von Pato", clue.Suspect)

	require.NotNil(t, m.Entrance.Right)
	require.NotNil(t, m.Entrance.Right.Left)
	assert.Equal(t, "Cofre", m.Entrance.Right.Left.Name)
}

func TestDeriveSuspectsSortedAndDistinct(t *testing.T) {
	m, err := decodeMystery(strings.NewReader(caseJSON))
	require.NoError(t, err)

	// Three clues, two distinct names, sorted.
	names := make([]string, 0, len(m.Suspects))
	for _, s := range m.Suspects {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Arquiteto Sol", "Barão Von Pato"}, names)
}

func TestExplicitSuspectsKept(t *testing.T) {
	src := `{
		"title": "x",
		"suspects": [{"name": "Zé", "notes": "jardineiro"}, {"name": "Ana"}],
		"mansion": {"name": "Entrada", "clue": "vaso quebrado", "suspect": "Ana"}
	}`

	m, err := decodeMystery(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, m.Suspects, 2)
	assert.Equal(t, "Zé", m.Suspects[0].Name)
	assert.Equal(t, "jardineiro", m.Suspects[0].Notes)
	assert.NoError(t, m.Validate())
}

func TestLoadMystery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	require.NoError(t, os.WriteFile(path, []byte(caseJSON), 0o644))

	m, err := LoadMystery(path)
	require.NoError(t, err)
	assert.Equal(t, "O Colar Desaparecido", m.Title)
	assert.NoError(t, m.Validate())
}

func TestLoadMysteryMissingFile(t *testing.T) {
	_, err := LoadMystery(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadMysteryBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "case.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadMystery(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *Mystery)
		wantErr string
	}{
		{
			name:   "sample case is valid",
			mutate: func(m *Mystery) {},
		},
		{
			name:    "no entrance",
			mutate:  func(m *Mystery) { m.Entrance = nil },
			wantErr: "no entrance",
		},
		{
			name:    "negative threshold",
			mutate:  func(m *Mystery) { m.Threshold = -1 },
			wantErr: "negative",
		},
		{
			name:    "unnamed room",
			mutate:  func(m *Mystery) { m.Entrance.Left.Name = "" },
			wantErr: "unnamed",
		},
		{
			name:    "suspect label without clue text",
			mutate:  func(m *Mystery) { m.Entrance.WithClue("", "Coronel Mostarda") },
			wantErr: "no clue text",
		},
		{
			name:    "clue pointing at unlisted suspect",
			mutate:  func(m *Mystery) { m.Entrance.WithClue("bilhete sem remetente", "Duque Cinza") },
			wantErr: "unlisted suspect",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := SampleMystery()
			test.mutate(&m)

			err := m.Validate()
			if test.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.wantErr)
		})
	}
}

func TestValidateDerivesOmittedSuspects(t *testing.T) {
	hall := mansion.NewRoom("Hall").WithClue("pegadas na neve", "Greta")
	hall.Left = mansion.NewRoom("Sala")
	m := Mystery{Title: "Caso Curto", Entrance: hall}

	require.NoError(t, m.Validate())
	require.Len(t, m.Suspects, 1)
	assert.Equal(t, "Greta", m.Suspects[0].Name)
}

func TestClosestSuspectMatches(t *testing.T) {
	m := SampleMystery()
	assert.Equal(t, "Coronel Mostarda", m.closestSuspectMatches().Closest("mostarda"))
}
