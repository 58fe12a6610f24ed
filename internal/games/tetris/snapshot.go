package tetris

// SessionState labels the coarse state of a session.
type SessionState string

const (
	StateActive      SessionState = "active"
	StatePaused      SessionState = "paused"
	StateGameOver    SessionState = "game_over"
	StatePausedSmall SessionState = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick  uint64
	Score int
	Level int
	Lines int

	PieceKind     int
	PieceRotation int
	PieceRow      int
	PieceCol      int
	NextKind      int

	DropTicks  int
	DropTicker int

	State SessionState

	// Board cells, flattened row-major (row*width + col = index)
	BoardWidth  int
	BoardHeight int
	BoardData   []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StateActive
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	boardData := make([]int, g.board.Width()*g.board.Height())
	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			boardData[row*g.board.Width()+col] = int(g.board.Cell(row, col))
		}
	}

	return Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Level: g.level,
		Lines: g.lines,

		PieceKind:     int(g.current.Kind),
		PieceRotation: g.current.Rotation,
		PieceRow:      g.current.Row,
		PieceCol:      g.current.Col,
		NextKind:      int(g.next),

		DropTicks:  g.dropTicks,
		DropTicker: g.dropTicker,

		State: state,

		BoardWidth:  g.board.Width(),
		BoardHeight: g.board.Height(),
		BoardData:   boardData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceKind)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceRotation) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceRow)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PieceCol)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextKind)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DropTicks)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DropTicker)    //#nosec G115 -- hash computation

	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}

	for _, v := range snap.BoardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
