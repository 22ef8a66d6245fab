package models

// Case is the compiled-in case file: the mansion layout with the clue left in each room, the table that
// attributes clues to suspects and the ground truth used by the optional reveal.
type Case struct {
	Title        string
	Entry        string
	Rooms        []RoomSpec
	Attributions []Attribution
	Truth        GroundTruth
}

// RoomSpec describes one room of the layout. Left and Right name the child rooms, empty when absent.
type RoomSpec struct {
	Name  string
	Clue  string
	Left  string
	Right string
}

// Attribution says which suspect a clue incriminates.
type Attribution struct {
	Clue    string
	Suspect string
}

// GroundTruth is the actual culprit and the clues that prove it.
type GroundTruth struct {
	Culprit string
	Clues   []string
}

// MansionCase returns the Detective Quest mansion. Every call returns fresh slices.
func MansionCase() Case {
	rooms := []RoomSpec{
		{Name: "Hall de Entrada", Clue: "Porta principal arrombada", Left: "Sala de Estar", Right: "Cozinha"},
		{Name: "Sala de Estar", Clue: "Copo de vinho pela metade", Left: "Biblioteca", Right: "Quarto de Hospedes"},
		{Name: "Cozinha", Clue: "Faca faltando no suporte", Left: "Jardim", Right: "Sala de Jantar"},
		{Name: "Biblioteca", Clue: "Livro sobre venenos aberto", Left: "Escritorio Secreto", Right: "Porao"},
		{Name: "Quarto de Hospedes", Clue: "Mala feita as pressas", Left: "Terraco", Right: "Quarto Principal"},
		{Name: "Jardim", Clue: "Pegadas de lama no canteiro", Left: "", Right: "Banheiro"},
		{Name: "Sala de Jantar", Clue: "Taca com residuo de veneno", Left: "", Right: ""},
		{Name: "Escritorio Secreto", Clue: "Cofre aberto e vazio", Left: "", Right: ""},
		{Name: "Porao", Clue: "Pa suja de terra fresca", Left: "", Right: ""},
		{Name: "Terraco", Clue: "Cigarro apagado no parapeito", Left: "", Right: ""},
		{Name: "Quarto Principal", Clue: "Carta de chantagem rasgada", Left: "", Right: ""},
		{Name: "Banheiro", Clue: "Luvas de borracha molhadas", Left: "", Right: ""},
	}

	attributions := []Attribution{
		{Clue: "Porta principal arrombada", Suspect: "Joao"},
		{Clue: "Copo de vinho pela metade", Suspect: "Maria"},
		{Clue: "Faca faltando no suporte", Suspect: "Joao"},
		{Clue: "Livro sobre venenos aberto", Suspect: "Ana"},
		{Clue: "Mala feita as pressas", Suspect: "Maria"},
		{Clue: "Pegadas de lama no canteiro", Suspect: "Joao"},
		{Clue: "Taca com residuo de veneno", Suspect: "Ana"},
		{Clue: "Cofre aberto e vazio", Suspect: "Carlos"},
		{Clue: "Pa suja de terra fresca", Suspect: "Carlos"},
		{Clue: "Cigarro apagado no parapeito", Suspect: "Maria"},
		{Clue: "Carta de chantagem rasgada", Suspect: "Carlos"},
		{Clue: "Luvas de borracha molhadas", Suspect: "Ana"},
		// Not placed in any room.
		{Clue: "Recibo de farmacia", Suspect: "Ana"},
		{Clue: "Chave mestra desaparecida", Suspect: "Joao"},
		{Clue: "Relogio parado as onze", Suspect: "Carlos"},
		{Clue: "Fio de cabelo loiro", Suspect: "Maria"},
		{Clue: "Bilhete anonimo", Suspect: "Beatriz"},
		{Clue: "Anel de noivado perdido", Suspect: "Beatriz"},
		{Clue: "Mancha de batom no colarinho", Suspect: "Maria"},
		{Clue: "Vela derretida no castical", Suspect: "Beatriz"},
	}

	return Case{
		Title:        "Detective Quest",
		Entry:        "Hall de Entrada",
		Rooms:        rooms,
		Attributions: attributions,
		Truth: GroundTruth{
			Culprit: "Carlos",
			Clues: []string{
				"Cofre aberto e vazio",
				"Pa suja de terra fresca",
				"Carta de chantagem rasgada",
			},
		},
	}
}

// JournalEntry is one recorded turn of a session.
type JournalEntry struct {
	Order   int64  `db:"order"`
	Kind    string `db:"kind"`
	Room    string `db:"room"`
	Clue    string `db:"clue"`
	Suspect string `db:"suspect"`
}
