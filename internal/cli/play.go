package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/battleship-go/internal/factory"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/render"
	"github.com/mcoot/battleship-go/internal/services/game"
)

// errInputClosed is returned when stdin ends before the game is over
var errInputClosed = errors.New("input ended before the game finished")

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game on this terminal",
		Long: `Play battleship on a single terminal.

With two players each places a fleet and the seats alternate shots,
passing the terminal between moves. With one player the fleet is placed
and then sunk by its owner as a practice round.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := factory.New(factory.Config{Logger: logger})
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

			session := &playSession{
				ctx:        cmd.Context(),
				controller: app.GameController,
				in:         bufio.NewScanner(cmd.InOrStdin()),
				out:        out,
				cfg:        cfg,
				logger:     logger,
			}

			unsubscribe := app.Bus.Subscribe(session.logEvent)
			defer unsubscribe()

			return session.run()
		},
	}
}

type playSession struct {
	ctx        context.Context
	controller *game.Controller
	in         *bufio.Scanner
	out        *Output
	cfg        *Config
	logger     *slog.Logger

	game  *model.Game
	seats []model.Player
}

func newSeats(n int) []model.Player {
	seats := make([]model.Player, n)
	for i := range seats {
		seats[i] = model.Player{
			ID:          model.PlayerID(fmt.Sprintf("player-%d", i+1)),
			DisplayName: fmt.Sprintf("Player %d", i+1),
		}
	}
	return seats
}

func (p *playSession) seat(playerID model.PlayerID) model.Player {
	for _, s := range p.seats {
		if s.ID == playerID {
			return s
		}
	}
	return model.Player{ID: playerID, DisplayName: string(playerID)}
}

func (p *playSession) run() error {
	if p.ctx == nil {
		p.ctx = context.Background()
	}

	p.seats = newSeats(p.cfg.Players)
	players := make([]model.PlayerID, len(p.seats))
	for i, s := range p.seats {
		players[i] = s.ID
	}

	g, err := p.controller.CreateGame(p.ctx, players, p.cfg.RepeatPolicy())
	if err != nil {
		return err
	}
	p.game = g

	if err := p.play(); err != nil {
		if abandonErr := p.controller.AbandonGame(p.ctx, g.ID, err.Error()); abandonErr != nil {
			p.logger.Error("failed to abandon game",
				slog.String("game_id", string(g.ID)),
				slog.String("error", abandonErr.Error()),
			)
		}
		p.removeGame()
		return err
	}

	final, err := p.controller.GetGame(p.ctx, g.ID)
	if err != nil {
		return err
	}
	if err := p.revealBoards(); err != nil {
		return err
	}
	p.logSummary()
	p.out.Print(render.NewGameView(final))
	p.removeGame()
	return nil
}

// revealBoards draws every board once the game is over
func (p *playSession) revealBoards() error {
	perspective := p.cfg.FinalPerspective()
	for _, player := range p.seats {
		b, err := p.controller.Board(p.ctx, p.game.ID, player.ID)
		if err != nil {
			return err
		}
		p.out.PrintMessage(finalBoard(player.DisplayName))
		p.out.PrintBoard(b, perspective)
	}
	return nil
}

func (p *playSession) logSummary() {
	summary, err := p.controller.CreateGameSummary(p.ctx, p.game.ID)
	if err != nil {
		p.logger.Warn("failed to summarise game",
			slog.String("game_id", string(p.game.ID)),
			slog.String("error", err.Error()),
		)
		return
	}
	p.logger.Info("game summary",
		slog.String("game_id", string(summary.ID)),
		slog.String("winner", string(summary.Winner)),
		slog.Int("shots_fired", summary.ShotsFired),
		slog.Time("completed_at", summary.CompletedAt),
	)
}

// removeGame drops the finished game from the registry
func (p *playSession) removeGame() {
	if err := p.controller.RemoveGame(p.ctx, p.game.ID); err != nil {
		p.logger.Warn("failed to remove game",
			slog.String("game_id", string(p.game.ID)),
			slog.String("error", err.Error()),
		)
	}
}

func (p *playSession) play() error {
	for _, player := range p.seats {
		if err := p.placeFleet(player); err != nil {
			return err
		}
		if !p.game.IsSolo() {
			if err := p.passTheMove(); err != nil {
				return err
			}
		}
	}

	p.out.PrintMessage(msgTheGameStarts)
	return p.shootUntilWon()
}

func (p *playSession) placeFleet(player model.Player) error {
	playerID := player.ID
	if !p.game.IsSolo() {
		p.out.PrintLine(planningStage(player.DisplayName))
	}

	own, err := p.controller.Board(p.ctx, p.game.ID, playerID)
	if err != nil {
		return err
	}
	p.out.PrintBoard(own, render.PerspectiveEnemy)

	if p.cfg.AutoPlace {
		if err := p.controller.AutoPlace(p.ctx, p.game.ID, playerID); err != nil {
			return err
		}
		p.out.PrintMessage(msgFleetAutoPlaced)
		p.out.PrintBoard(own, render.PerspectiveAlly)
		return nil
	}

	for {
		kind, pending, err := p.controller.NextShip(p.ctx, p.game.ID, playerID)
		if err != nil {
			return err
		}
		if !pending {
			return nil
		}

		p.out.PrintMessage(placeShipPrompt(kind))
		if err := p.placeShip(playerID, kind); err != nil {
			return err
		}
		p.out.PrintBoard(own, render.PerspectiveAlly)
	}
}

// placeShip reads input until the ship is placed
func (p *playSession) placeShip(playerID model.PlayerID, kind model.ShipKind) error {
	for {
		line, err := p.readLine()
		if err != nil {
			return err
		}

		outcome, err := p.controller.PlaceShip(p.ctx, p.game.ID, playerID, line)
		switch {
		case errors.Is(err, model.ErrShipLengthMismatch):
			p.out.PrintMessage(wrongShipLength(kind))
		case errors.Is(err, model.ErrShipNotAligned):
			p.out.PrintMessage(msgWrongShipPlace)
		case errors.Is(err, model.ErrInvalidCoordinate), errors.Is(err, model.ErrInvalidPlacementInput):
			p.out.PrintMessage(msgWrongCoordinates)
		case err != nil:
			return err
		case outcome == model.PlacementTooClose:
			p.out.PrintMessage(msgTooClose)
		case outcome == model.PlacementOutOfBounds:
			p.out.PrintMessage(msgWrongShipPlace)
		default:
			return nil
		}
	}
}

func (p *playSession) shootUntilWon() error {
	for {
		current, err := p.controller.GetGame(p.ctx, p.game.ID)
		if err != nil {
			return err
		}
		if current.State == model.GameStateComplete {
			return nil
		}

		shooter := current.CurrentPlayer()
		if err := p.showTurn(current, shooter); err != nil {
			return err
		}

		outcome, err := p.takeShot(shooter)
		if err != nil {
			return err
		}
		if outcome == model.ShotWin {
			p.out.PrintMessage(msgYouWon)
			return nil
		}
		if !current.IsSolo() {
			if err := p.passTheMove(); err != nil {
				return err
			}
		}
	}
}

func (p *playSession) showTurn(current *model.Game, shooter model.PlayerID) error {
	target, err := p.controller.TargetBoard(p.ctx, current.ID, shooter)
	if err != nil {
		return err
	}

	if current.IsSolo() {
		p.out.PrintBoard(target, render.PerspectiveEnemy)
		p.out.PrintMessage(msgTakeAShot)
		return nil
	}

	own, err := p.controller.Board(p.ctx, current.ID, shooter)
	if err != nil {
		return err
	}
	p.out.PrintPvP(target, own)
	p.out.PrintMessage(yourTurn(p.seat(shooter).DisplayName))
	return nil
}

// takeShot reads input until a shot consumes the turn
func (p *playSession) takeShot(shooter model.PlayerID) (model.ShotOutcome, error) {
	for {
		line, err := p.readLine()
		if err != nil {
			return model.ShotOutOfBounds, err
		}

		result, err := p.controller.Shoot(p.ctx, p.game.ID, shooter, line)
		if errors.Is(err, model.ErrInvalidCoordinate) {
			p.out.PrintMessage(msgWrongCoordinates)
			continue
		}
		if err != nil {
			return model.ShotOutOfBounds, err
		}

		switch result.Outcome {
		case model.ShotOutOfBounds:
			p.out.PrintMessage(msgWrongCoordinates)
			continue
		case model.ShotAlreadyTaken:
			p.out.PrintMessage(msgAlreadyShot)
			continue
		}

		target, err := p.controller.TargetBoard(p.ctx, p.game.ID, shooter)
		if err != nil {
			return result.Outcome, err
		}
		p.out.PrintBoard(target, render.PerspectiveEnemy)
		if p.cfg.Output == "json" {
			p.out.Print(render.ShotView{
				Shooter:      string(result.Shooter),
				TargetPlayer: string(result.TargetPlayer),
				Target:       result.Target.Label(),
				Outcome:      result.Outcome.String(),
			})
		}

		switch result.Outcome {
		case model.ShotMiss:
			p.out.PrintMessage(msgYouMissed)
		case model.ShotHit:
			p.out.PrintMessage(msgYouHitAShip)
		case model.ShotSank:
			p.out.PrintMessage(msgYouSankAShip)
		}
		return result.Outcome, nil
	}
}

func (p *playSession) passTheMove() error {
	p.out.PrintMessage(msgPassTheMove)
	p.out.PrintLine(msgPassSeparator)
	_, err := p.readLine()
	return err
}

func (p *playSession) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return p.in.Text(), nil
}

// logEvent records bus traffic at debug level
func (p *playSession) logEvent(e model.Event) {
	p.logger.Debug("game event",
		slog.String("event_type", string(e.Type)),
		slog.String("game_id", string(e.GameID)),
		slog.String("player_id", string(e.PlayerID)),
	)
}
