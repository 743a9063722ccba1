// Package threestones provides a client for playing Three Stones against a remote server over TCP
// i18n.go registers the translated strings shown to the player
package threestones

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the key.
const (
	msgConnected     = "Connected to server %s."
	msgWins          = "You have won: %d time(s)."
	msgLosses        = "You have lost: %d time(s)."
	msgPlayPrompt    = "Would you like to play a game (y/n)"
	msgSelectRow     = "Select your Row"
	msgSelectColumn  = "Select your Column"
	msgNotANumber    = "That's not a number, please enter a number!"
	msgOutOfRange    = "Please enter a number from 1 to %d."
	msgInvalidMove   = "That was an invalid move, try again."
	msgWhitePlaced   = "white placed at: %d, %d"
	msgBlackPlaced   = "black placed at: %d, %d"
	msgYouWin        = "YOU WIN"
	msgYouLose       = "YOU LOSE"
	msgStonesLeft    = "Stones Left: %d"
	msgPlayerScore   = "Player Score: %d"
	msgComputerScore = "Comp Score: %d"
	msgScriptPlayer  = "Scripted player: %s"
	msgCellBlocked   = "BLOCK"
	msgCellEmpty     = "EMPTY"
	msgCellPlayer    = "WHITE"
	msgCellOpponent  = "BLACK"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.CanadianFrench,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var frenchMessages = map[string]string{
	msgConnected:     "Connecté au serveur %s.",
	msgWins:          "Vous avez gagné : %d fois.",
	msgLosses:        "Vous avez perdu : %d fois.",
	msgPlayPrompt:    "Voulez-vous jouer une partie (y/n)",
	msgSelectRow:     "Choisissez votre rangée",
	msgSelectColumn:  "Choisissez votre colonne",
	msgNotANumber:    "Ce n'est pas un nombre, veuillez entrer un nombre!",
	msgOutOfRange:    "Veuillez entrer un nombre de 1 à %d.",
	msgInvalidMove:   "Ce coup est invalide, réessayez.",
	msgWhitePlaced:   "blanc placé à : %d, %d",
	msgBlackPlaced:   "noir placé à : %d, %d",
	msgYouWin:        "VOUS GAGNEZ",
	msgYouLose:       "VOUS PERDEZ",
	msgStonesLeft:    "Pierres restantes : %d",
	msgPlayerScore:   "Score du joueur : %d",
	msgComputerScore: "Score de l'ordinateur : %d",
	msgScriptPlayer:  "Joueur scripté : %s",
	msgCellBlocked:   "BLOC",
	msgCellEmpty:     "VIDE",
	msgCellPlayer:    "BLANC",
	msgCellOpponent:  "NOIR",
}

func init() {
	for key, text := range frenchMessages {
		if err := message.SetString(language.CanadianFrench, key, text); err != nil {
			panic(err)
		}
	}
}

// NewPrinter returns a printer for the closest supported language. Unknown
// or malformed tags get English.
func NewPrinter(lang string) *message.Printer {
	tag, err := language.Parse(lang)
	if err != nil {
		return message.NewPrinter(language.English)
	}
	_, index, _ := languageMatcher.Match(tag)
	return message.NewPrinter(supportedLanguages[index])
}

// cellLabel is the key used to render a cell
func cellLabel(c Cell) string {
	switch c {
	case CellEmpty:
		return msgCellEmpty
	case CellPlayer:
		return msgCellPlayer
	case CellOpponent:
		return msgCellOpponent
	default:
		return msgCellBlocked
	}
}

//!--
