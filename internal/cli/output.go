package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/render"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a message preceded by an empty line
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w)
		fmt.Fprintln(o.w, msg)
	}
}

// PrintLine outputs a message without spacing
func (o *Output) PrintLine(msg string) {
	if o.format == "json" {
		o.PrintMessage(msg)
		return
	}
	fmt.Fprintln(o.w, msg)
}

// PrintBoard draws a board from one perspective
func (o *Output) PrintBoard(b *model.Board, p render.Perspective) {
	if o.format == "json" {
		o.printJSON(render.NewBoardView(b, p))
		return
	}
	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w, render.Board(b, p))
}

// PrintPvP draws the shooter's two-board view
func (o *Output) PrintPvP(enemy, own *model.Board) {
	if o.format == "json" {
		o.printJSON(map[string]render.BoardView{
			"enemy": render.NewBoardView(enemy, render.PerspectiveEnemy),
			"own":   render.NewBoardView(own, render.PerspectiveAlly),
		})
		return
	}
	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w, render.PvP(enemy, own))
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	if o.format != "json" {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case []render.FleetEntry:
		o.printFleet(v)
	case render.GameView:
		o.printGame(v)
	case VersionInfo:
		fmt.Fprintf(o.w, "battleship %s\n", v.Version)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// VersionInfo is printed by the version command
type VersionInfo struct {
	Version string `json:"version"`
}

func (o *Output) printFleet(fleet []render.FleetEntry) {
	for _, e := range fleet {
		fmt.Fprintf(o.w, "%-17s %d cells\n", e.Name, e.Length)
	}
}

func (o *Output) printGame(g render.GameView) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	fmt.Fprintf(o.w, "Shots fired: %d\n", g.ShotsFired)
	if g.Winner != nil {
		fmt.Fprintf(o.w, "Winner: %s\n", *g.Winner)
	}
}
