package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

type stubGame struct {
	id    string
	ticks uint64
}

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return strings.ToUpper(s.id) }
func (s *stubGame) Reset(core.RuntimeConfig) { s.ticks = 0 }
func (s *stubGame) Resize(core.RuntimeConfig) {}
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{Tick: s.ticks} }
func (s *stubGame) Step(core.InputFrame) core.StepResult {
	s.ticks++
	return core.StepResult{State: s.State()}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("expected zz-stub to be registered")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	g.Step(core.NewInputFrame())
	if got := g.State().Tick; got != 1 {
		t.Errorf("expected tick 1, got %d", got)
	}

	other, _ := Create("zz-stub")
	if other.State().Tick != 0 {
		t.Error("each Create should return a fresh instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestListSortedWithTitles(t *testing.T) {
	Register("zz-b", func() Game { return &stubGame{id: "zz-b"} })
	Register("zz-a", func() Game { return &stubGame{id: "zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "zz-a" {
			found = true
			if info.Title != "ZZ-A" {
				t.Errorf("expected title ZZ-A, got %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("zz-a missing from List")
	}
}
