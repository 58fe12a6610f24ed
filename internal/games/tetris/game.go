// Package tetris implements the falling-block puzzle game core: the board,
// the tetromino pieces, and the session state machine that ties them
// together. The package is pure logic driven by the platform's input frames
// and tick events, which keeps every rule deterministic and testable.
package tetris

import (
	"fmt"
	"math/rand"

	"github.com/adambillekvist/tetris-game/internal/config"
	"github.com/adambillekvist/tetris-game/internal/core"
	"github.com/adambillekvist/tetris-game/internal/registry"
)

const (
	hudHeight      = 2  // Top HUD lines
	sidePanelWidth = 16 // Next-piece preview and key hints
)

// Game implements the tetris session.
type Game struct {
	cfg config.TetrisConfig
	rng *rand.Rand

	tick     uint64
	tickRate int

	board   *Board
	current Piece
	next    Kind

	score int
	level int
	lines int

	dropTicks  int // Gravity interval in ticks at the current level
	softTicks  int // Gravity interval while soft drop is held
	dropTicker int // Counts ticks until the next gravity step
	pausePrev  bool
	rotatePrev bool

	// Screen dimensions
	screenW int
	screenH int

	// Well placement, computed at reset
	wellX int
	wellY int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config, set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path for subsequently created games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequently created games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadTetris(configPath)
	if err != nil {
		gameCfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.score = 0
	g.lines = 0
	g.level = g.cfg.Rules.StartLevel
	g.gameOver = false
	g.paused = false
	g.pausePrev = false
	g.rotatePrev = false
	g.dropTicker = 0

	g.updateSpeed()
	g.layoutWell()

	g.next = g.randomKind()
	g.spawn()
}

// layoutWell centers the playfield and checks the screen is big enough.
func (g *Game) layoutWell() {
	wellW := g.board.Width()*2 + 2
	wellH := g.board.Height() + 2
	totalW := wellW + 1 + sidePanelWidth

	if g.screenW < totalW || g.screenH < wellH+hudHeight {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.wellX = (g.screenW - totalW) / 2
	g.wellY = hudHeight
}

// updateSpeed recomputes the gravity interval from the current level.
// The fall interval shrinks linearly with level down to a floor; with
// fixed_speed it stays at the base interval regardless of level.
func (g *Game) updateSpeed() {
	ms := g.cfg.Speed.BaseDropMs
	if !g.cfg.Rules.FixedSpeed {
		ms = core.Max(g.cfg.Speed.MinDropMs, g.cfg.Speed.BaseDropMs-g.cfg.Speed.LevelStepMs*(g.level-1))
	}
	g.dropTicks = g.ticksFor(ms)
	g.softTicks = g.ticksFor(g.cfg.Speed.SoftDropMs)
}

// ticksFor converts a millisecond interval to simulation ticks, minimum one.
func (g *Game) ticksFor(ms int) int {
	return core.Max(1, ms*g.tickRate/1000)
}

// randomKind picks the next tetromino kind from the injected RNG.
func (g *Game) randomKind() Kind {
	return Kind(g.rng.Intn(int(kindCount)))
}

// spawnPosition returns the fixed anchor where new pieces appear.
func (g *Game) spawnPosition() (row, col int) {
	return 0, g.board.Width()/2 - 1
}

// spawn promotes the next piece to current and rolls a new preview piece.
// A spawn collision is the terminal condition: the session transitions to
// game over with no other state change.
func (g *Game) spawn() {
	row, col := g.spawnPosition()
	g.current = Piece{Kind: g.next, Rotation: 0, Row: row, Col: col}
	g.next = g.randomKind()
	g.dropTicker = 0

	if !g.board.Fits(g.current.Cells()) {
		g.gameOver = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle on the key edge, not while held
	pauseHeld := input.Has(core.ActionPause)
	if pauseHeld && !g.pausePrev && !g.gameOver {
		g.paused = !g.paused
	}
	g.pausePrev = pauseHeld

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	g.applyGravity(input.Has(core.ActionSoftDrop))

	return core.StepResult{State: g.State()}
}

// processInput handles lateral movement and rotation.
func (g *Game) processInput(input core.InputFrame) {
	if input.Has(core.ActionLeft) {
		g.tryMove(0, -1)
	}
	if input.Has(core.ActionRight) {
		g.tryMove(0, 1)
	}

	// Rotate on the key edge so holding the key doesn't spin the piece
	rotateHeld := input.Has(core.ActionRotate)
	if rotateHeld && !g.rotatePrev {
		g.tryRotate()
	}
	g.rotatePrev = rotateHeld
}

// tryMove shifts the current piece if the target cells are free.
// Rejected moves leave the state untouched.
func (g *Game) tryMove(dRow, dCol int) bool {
	moved := g.current.Moved(dRow, dCol)
	if !g.board.Fits(moved.Cells()) {
		return false
	}
	g.current = moved
	return true
}

// tryRotate advances the current piece to its next rotation state if it
// fits. No wall kicks: rotation near a wall or obstacle simply fails.
func (g *Game) tryRotate() bool {
	rotated := g.current.Rotated()
	if !g.board.Fits(rotated.Cells()) {
		return false
	}
	g.current = rotated
	return true
}

// applyGravity counts ticks toward the next downward step. Holding soft
// drop swaps in the much shorter soft interval.
func (g *Game) applyGravity(softDrop bool) {
	interval := g.dropTicks
	if softDrop {
		interval = g.softTicks
	}

	g.dropTicker++
	if g.dropTicker < interval {
		return
	}
	g.dropTicker = 0

	if !g.tryMove(1, 0) {
		g.lockPiece()
	}
}

// lockPiece writes the current piece into the board, resolves line clears
// and scoring, and spawns the next piece.
func (g *Game) lockPiece() {
	g.board.Lock(g.current.Cells(), cellValue(g.current.Kind))

	cleared := g.board.ClearFullRows()
	if cleared > 0 {
		// Quadratic reward: clearing rows together beats clearing them apart
		g.score += cleared * cleared
		g.lines += cleared
		g.updateLevel()
	}

	g.spawn()
}

// updateLevel recomputes the level from cumulative lines cleared.
// The level never goes down.
func (g *Game) updateLevel() {
	newLevel := g.cfg.Rules.StartLevel + g.lines/g.cfg.Rules.LinesPerLevel
	if newLevel > g.level {
		g.level = newLevel
		g.updateSpeed()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWell(dst)
	g.renderBoard(dst)
	if !g.gameOver {
		g.renderPiece(dst)
	}
	g.renderSidePanel(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris   Score: %d   Level: %d   Lines: %d", g.score, g.level, g.lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the playfield border.
func (g *Game) renderWell(dst *core.Screen) {
	wellW := g.board.Width()*2 + 2
	wellH := g.board.Height() + 2
	dst.DrawBox(core.NewRect(g.wellX, g.wellY, wellW, wellH))
}

// renderBoard draws the locked cells.
func (g *Game) renderBoard(dst *core.Screen) {
	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			v := g.board.Cell(row, col)
			if v == 0 {
				continue
			}
			g.drawCell(dst, row, col, Kind(v-1).Color())
		}
	}
}

// renderPiece draws the falling piece.
func (g *Game) renderPiece(dst *core.Screen) {
	color := g.current.Kind.Color()
	for _, c := range g.current.Cells() {
		if c.Row < 0 {
			continue
		}
		g.drawCell(dst, c.Row, c.Col, color)
	}
}

// drawCell paints one board cell as two screen columns so cells look
// roughly square in a terminal.
func (g *Game) drawCell(dst *core.Screen, row, col int, color core.Color) {
	x := g.wellX + 1 + col*2
	y := g.wellY + 1 + row
	dst.SetColored(x, y, '█', color)
	dst.SetColored(x+1, y, '█', color)
}

// renderSidePanel draws the next-piece preview and key hints.
func (g *Game) renderSidePanel(dst *core.Screen) {
	px := g.wellX + g.board.Width()*2 + 3
	py := g.wellY

	dst.DrawText(px, py, "Next:")
	color := g.next.Color()
	for _, o := range ShapeCells(g.next, 0) {
		x := px + o.Col*2
		y := py + 1 + o.Row
		dst.SetColored(x, y, '█', color)
		dst.SetColored(x+1, y, '█', color)
	}

	hints := []string{
		"←/→  move",
		"↑    rotate",
		"↓    drop",
		"P    pause",
		"R    restart",
		"Q    quit",
	}
	for i, h := range hints {
		dst.DrawText(px, py+7+i, h)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 6
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
