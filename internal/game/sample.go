package game

import "detectivequest/internal/mansion"

// SampleMystery is the case shipped with the game, playable without a
// case file.
func SampleMystery() Mystery {
	hall := mansion.NewRoom("Hall de Entrada")

	estar := mansion.NewRoom("Sala de Estar").
		WithClue("cinzas de charuto no tapete", "Coronel Mostarda")
	cozinha := mansion.NewRoom("Cozinha").
		WithClue("faca fora do suporte", "Dona Branca")
	hall.Left, hall.Right = estar, cozinha

	biblioteca := mansion.NewRoom("Biblioteca").
		WithClue("luva militar esquecida na poltrona", "Coronel Mostarda")
	jantar := mansion.NewRoom("Sala de Jantar").
		WithClue("taça de vinho pela metade", "Sr. Marinho")
	estar.Left, estar.Right = biblioteca, jantar

	despensa := mansion.NewRoom("Despensa").
		WithClue("frasco de veneno aberto", "Dona Violeta")
	inverno := mansion.NewRoom("Jardim de Inverno").
		WithClue("insígnia do regimento entre os vasos", "Coronel Mostarda")
	cozinha.Left, cozinha.Right = despensa, inverno

	loucas := mansion.NewRoom("Dispensa de Louças")
	corredor := mansion.NewRoom("Corredor Oeste").
		WithClue("pegadas de lama no assoalho", "Sr. Marinho")
	jantar.Left, jantar.Right = loucas, corredor

	varanda := mansion.NewRoom("Varanda").
		WithClue("binóculo voltado para o portão", "Dona Violeta")
	escritorio := mansion.NewRoom("Escritório").
		WithClue("cofre aberto e vazio", "Srta. Rosa")
	inverno.Left, inverno.Right = varanda, escritorio

	quarto := mansion.NewRoom("Quarto Principal").
		WithClue("carta de ameaça amassada", "Srta. Rosa")
	banheiro := mansion.NewRoom("Banheiro")
	corredor.Left, corredor.Right = quarto, banheiro

	return Mystery{
		Title: "O Caso da Mansão",
		Intro: "A tempestade fechou as estradas e o anfitrião foi encontrado morto no salão. " +
			"Explore a mansão, recolha as pistas e, quando os corredores acabarem, aponte o culpado.",
		Suspects: []Suspect{
			{Name: "Coronel Mostarda", Notes: "militar reformado, hóspede frequente da casa"},
			{Name: "Dona Branca", Notes: "governanta, conhece cada canto da mansão"},
			{Name: "Dona Violeta", Notes: "viúva do sócio do anfitrião"},
			{Name: "Sr. Marinho", Notes: "vizinho, visto no jardim ao anoitecer"},
			{Name: "Srta. Rosa", Notes: "secretária particular do anfitrião"},
		},
		Entrance: hall,
	}
}
