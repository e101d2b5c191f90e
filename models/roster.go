package models

// MiiFighterID is the roster slot that requires a follow-up special-move
// selection before the character choice is persisted.
const MiiFighterID = "54"

type Character struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Characters lists the selectable roster. IDs must stay stable: they are the
// values stored in matches.character for the existing dataset.
var Characters = []Character{
	{ID: "1", Name: "Mario"},
	{ID: "2", Name: "Donkey Kong"},
	{ID: "3", Name: "Link"},
	{ID: "4", Name: "Samus"},
	{ID: "5", Name: "Yoshi"},
	{ID: "6", Name: "Kirby"},
	{ID: "7", Name: "Fox"},
	{ID: "8", Name: "Pikachu"},
	{ID: "9", Name: "Luigi"},
	{ID: "10", Name: "Ness"},
	{ID: "11", Name: "Captain Falcon"},
	{ID: "12", Name: "Jigglypuff"},
	{ID: "13", Name: "Peach"},
	{ID: "14", Name: "Bowser"},
	{ID: "15", Name: "Ice Climbers"},
	{ID: "16", Name: "Sheik"},
	{ID: "17", Name: "Zelda"},
	{ID: "18", Name: "Dr. Mario"},
	{ID: "19", Name: "Pichu"},
	{ID: "20", Name: "Falco"},
	{ID: "21", Name: "Marth"},
	{ID: "22", Name: "Young Link"},
	{ID: "23", Name: "Ganondorf"},
	{ID: "24", Name: "Mewtwo"},
	{ID: "25", Name: "Roy"},
	{ID: "26", Name: "Mr. Game & Watch"},
	{ID: "27", Name: "Meta Knight"},
	{ID: "28", Name: "Pit"},
	{ID: "29", Name: "Wario"},
	{ID: "30", Name: "Snake"},
	{ID: "31", Name: "Ike"},
	{ID: "32", Name: "Pokemon Trainer"},
	{ID: "33", Name: "Diddy Kong"},
	{ID: "34", Name: "Lucas"},
	{ID: "35", Name: "Sonic"},
	{ID: "36", Name: "King Dedede"},
	{ID: "37", Name: "Olimar"},
	{ID: "38", Name: "Lucario"},
	{ID: "39", Name: "R.O.B."},
	{ID: "40", Name: "Toon Link"},
	{ID: "41", Name: "Wolf"},
	{ID: "42", Name: "Villager"},
	{ID: "43", Name: "Mega Man"},
	{ID: "44", Name: "Wii Fit Trainer"},
	{ID: "45", Name: "Rosalina & Luma"},
	{ID: "46", Name: "Little Mac"},
	{ID: "47", Name: "Greninja"},
	{ID: "48", Name: "Palutena"},
	{ID: "49", Name: "Pac-Man"},
	{ID: "50", Name: "Robin"},
	{ID: "51", Name: "Shulk"},
	{ID: "52", Name: "Bowser Jr."},
	{ID: "53", Name: "Duck Hunt"},
	{ID: "54", Name: "Mii Fighter"},
	{ID: "55", Name: "Ryu"},
	{ID: "56", Name: "Cloud"},
	{ID: "57", Name: "Corrin"},
	{ID: "58", Name: "Bayonetta"},
	{ID: "59", Name: "Inkling"},
	{ID: "60", Name: "Ridley"},
	{ID: "61", Name: "King K. Rool"},
	{ID: "62", Name: "Isabelle"},
	{ID: "63", Name: "Incineroar"},
	{ID: "64", Name: "Joker"},
	{ID: "65", Name: "Hero"},
	{ID: "66", Name: "Banjo & Kazooie"},
	{ID: "67", Name: "Terry"},
	{ID: "68", Name: "Byleth"},
	{ID: "69", Name: "Min Min"},
	{ID: "70", Name: "Steve"},
	{ID: "71", Name: "Sephiroth"},
	{ID: "72", Name: "Pyra/Mythra"},
	{ID: "73", Name: "Kazuya"},
	{ID: "74", Name: "Sora"},
}

func CharacterName(id string) (string, bool) {
	for _, c := range Characters {
		if c.ID == id {
			return c.Name, true
		}
	}
	return "", false
}

// Stages lists the selectable stages; the stored value is the stage ID itself.
var Stages = []string{
	"BattleField",
	"SmallBattleField",
	"FinalDestination",
	"PokemonStadium2",
	"Smashville",
	"TownAndCity",
	"KalosPokemonLeague",
	"HollowBastion",
	"YoshisStory",
}

func ValidStage(id string) bool {
	for _, s := range Stages {
		if s == id {
			return true
		}
	}
	return false
}
