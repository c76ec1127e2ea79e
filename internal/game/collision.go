package game

import (
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

// trackBall steps the CPU paddle's center toward the ball while the ball
// travels toward the CPU. While the ball moves away the paddle holds.
func (g *Game) trackBall() {
	if !g.ball.MovingRight() {
		return
	}
	center := g.cpu.Center()
	switch {
	case g.ball.Y > center:
		g.cpu.MoveDown(g.bounds)
	case g.ball.Y < center:
		g.cpu.MoveUp(g.bounds)
	}
}

// checkScore awards a point when the ball leaves through the left or right
// edge.
func (g *Game) checkScore() {
	var scorer Side
	switch {
	case g.ball.X-g.ball.Size < 0:
		scorer = Right
	case g.ball.X+g.ball.Size > g.bounds.Width:
		scorer = Left
	default:
		return
	}

	total := g.scores.add(scorer)
	g.notify(Event{Kind: EventScored, Side: scorer})

	if total >= g.cfg.WinningScore {
		g.winner = scorer
		message := MessageWin
		if scorer == Right {
			message = MessageLoss
		}
		g.setState(StateWon, message)
		g.notify(Event{Kind: EventRoundEnded, Side: scorer})
		g.logger.Info("round finished", "winner", scorer,
			"player", g.scores.Player, "cpu", g.scores.CPU, "ticks", g.ticks)
		return
	}

	g.serve()
}

// checkPaddle deflects the ball off p when they overlap and the ball moves
// toward side. The outgoing vertical speed depends on where the ball hit:
// center hits leave at the minimum vertical speed, edge hits at InitialSpeed.
func (g *Game) checkPaddle(p *object.Paddle, side Side) {
	toward := (side == Left && g.ball.MovingLeft()) || (side == Right && g.ball.MovingRight())
	if !toward || !physics.Overlap(g.ball.Box(), p.Rect()) {
		return
	}

	g.ball.DX = -g.ball.DX
	hit := physics.CollidePoint(g.ball.Y, p.Y, p.Height)
	g.ball.DY = physics.EnforceMinMagnitude(hit*g.ball.InitialSpeed, g.cfg.MinVerticalSpeed, g.coin)

	g.notify(Event{Kind: EventPaddleHit, Side: side})
}

// coin returns a uniformly random bool.
func (g *Game) coin() bool {
	return g.rng.IntN(2) == 0
}
