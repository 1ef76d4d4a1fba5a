package cli

import (
	"fmt"

	"github.com/mcoot/battleship-go/internal/model"
)

// Prompts and notices printed during play
const (
	msgTheGameStarts   = "The game starts!"
	msgTakeAShot       = "Take a shot!"
	msgYouMissed       = "You missed!"
	msgYouHitAShip     = "You hit a ship!"
	msgYouSankAShip    = "You sank a ship!"
	msgYouWon          = "You sank the last ship. You won. Congratulations!"
	msgPassTheMove     = "Press Enter and pass the move to another player"
	msgPassSeparator   = "..."
	msgFleetAutoPlaced = "Your fleet has been placed at random."
)

// Error notices
const (
	msgWrongShipLength  = "Error! Wrong length of the %s! Try again:"
	msgWrongShipPlace   = "Error! Wrong ship location! Try again:"
	msgTooClose         = "Error! You placed it too close to another one. Try again:"
	msgWrongCoordinates = "Error! You entered the wrong coordinates! Try again:"
	msgAlreadyShot      = "Error! You already fired at that cell! Try again:"
)

func placeShipPrompt(kind model.ShipKind) string {
	return fmt.Sprintf("Enter the coordinates of the %s (%d cells):", kind.DisplayName(), kind.Length())
}

func planningStage(name string) string {
	return fmt.Sprintf("%s, place your ships on the game field", name)
}

func yourTurn(name string) string {
	return fmt.Sprintf("%s, it's your turn:", name)
}

func finalBoard(name string) string {
	return fmt.Sprintf("%s's fleet:", name)
}

func wrongShipLength(kind model.ShipKind) string {
	return fmt.Sprintf(msgWrongShipLength, kind.DisplayName())
}
