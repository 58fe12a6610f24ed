package registry

import (
	"testing"

	"github.com/adambillekvist/tetris-game/internal/core"
)

type fakeGame struct{}

func (fakeGame) ID() string                           { return "fake" }
func (fakeGame) Title() string                        { return "Fake Game" }
func (fakeGame) Reset(core.RuntimeConfig)             {}
func (fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (fakeGame) Render(*core.Screen)                  {}
func (fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("fake", func() Game { return fakeGame{} })

	if !Exists("fake") {
		t.Error("Exists() should report a registered game")
	}
	if Exists("nope") {
		t.Error("Exists() should not report an unregistered game")
	}

	g, err := Create("fake")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "fake" {
		t.Errorf("Created game ID = %q, expected %q", g.ID(), "fake")
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create() should fail for an unregistered game")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("aaa", func() Game { return fakeGame{} })

	games := List()
	if len(games) < 2 {
		t.Fatalf("List() returned %d games, expected at least 2", len(games))
	}

	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	for _, g := range games {
		if g.Title == "" {
			t.Errorf("Game %q has no title", g.ID)
		}
	}
}
