package maze

import (
	"testing"

	"github.com/lixenwraith/muncher/vmath"
)

var roomLayout = []string{
	"#####",
	"#.o #",
	"# # #",
	"#   #",
	"#####",
}

func mustGrid(t *testing.T, layout []string) *Grid {
	t.Helper()
	g, err := New(layout)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewRejectsEmptyLayout(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty layout")
	}
	if _, err := New([]string{""}); err == nil {
		t.Fatal("expected error for empty row")
	}
}

func TestNewRejectsRaggedLayout(t *testing.T) {
	_, err := New([]string{
		"####",
		"#  #",
		"###", // short row
	})
	if err == nil {
		t.Fatal("expected error for ragged layout")
	}
}

func TestIsWalkable(t *testing.T) {
	g := mustGrid(t, roomLayout)

	cases := []struct {
		row, col int
		want     bool
	}{
		{1, 1, true},  // pellet tile
		{1, 2, true},  // super pellet tile
		{1, 3, true},  // open tile
		{0, 0, false}, // wall
		{2, 2, false}, // interior wall
		{-1, 2, false},
		{2, -1, false},
		{5, 2, false},
		{2, 5, false},
	}
	for _, c := range cases {
		if got := g.IsWalkable(c.row, c.col); got != c.want {
			t.Errorf("IsWalkable(%d,%d) = %v, want %v", c.row, c.col, got, c.want)
		}
	}
}

func TestTileCenterRoundTrip(t *testing.T) {
	g := mustGrid(t, roomLayout)
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			r, c := g.TileOf(g.TileCenter(row, col))
			if r != row || c != col {
				t.Fatalf("round trip (%d,%d) -> (%d,%d)", row, col, r, c)
			}
		}
	}
}

func TestHasCollisionOpenTile(t *testing.T) {
	g := mustGrid(t, roomLayout)
	// Center of an open tile with a radius small relative to tile size
	pos := g.TileCenter(3, 2)
	if g.HasCollision(pos, 0.01) {
		t.Error("collision reported in the middle of an open tile")
	}
}

func TestHasCollisionWallOverlap(t *testing.T) {
	g := mustGrid(t, roomLayout)
	w, _ := g.TileSize()

	// Circle centered in an open tile but overlapping the interior wall
	pos := g.TileCenter(2, 1)
	pos.X += w * 0.45 // push toward the wall at (2,2)
	if !g.HasCollision(pos, w*0.2) {
		t.Error("no collision for circle overlapping a wall rectangle")
	}

	// Center inside a wall tile must collide regardless of radius
	if !g.HasCollision(g.TileCenter(2, 2), 0.001) {
		t.Error("no collision for center inside a wall tile")
	}
}

func TestWrap(t *testing.T) {
	g := mustGrid(t, roomLayout)
	const margin = 0.01

	// No-op strictly inside the band
	p := vmath.Vec{X: 0.5, Y: 0.5}
	if got := g.Wrap(p, margin); got != p {
		t.Errorf("Wrap moved interior position: %v", got)
	}

	// Idempotent at the exact boundary
	edge := vmath.Vec{X: margin, Y: 0.5}
	if got := g.Wrap(edge, margin); got != edge {
		t.Errorf("Wrap not idempotent at boundary: %v", got)
	}

	// Left exit teleports to the right mouth
	left := vmath.Vec{X: margin / 2, Y: 0.5}
	if got := g.Wrap(left, margin); got.X != 1.0-margin {
		t.Errorf("left wrap: got X=%v", got.X)
	}

	// Right exit teleports to the left mouth, and vertical is untouched
	right := vmath.Vec{X: 1.0 - margin/2, Y: 0.9}
	got := g.Wrap(right, margin)
	if got.X != margin || got.Y != 0.9 {
		t.Errorf("right wrap: got %v", got)
	}
}

func TestConsumePelletIdempotent(t *testing.T) {
	g := mustGrid(t, roomLayout)

	if !g.ConsumePellet(1, 1) {
		t.Fatal("first consumption failed")
	}
	if g.ConsumePellet(1, 1) {
		t.Error("second consumption succeeded")
	}
	if g.PelletAt(1, 1) {
		t.Error("pellet still present after consumption")
	}

	if !g.ConsumeSuperPellet(1, 2) {
		t.Fatal("first super consumption failed")
	}
	if g.ConsumeSuperPellet(1, 2) {
		t.Error("second super consumption succeeded")
	}
}

func TestCollectiblesMutuallyExclusive(t *testing.T) {
	g := mustGrid(t, DefaultLayout)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			if g.PelletAt(r, c) && g.SuperPelletAt(r, c) {
				t.Fatalf("tile (%d,%d) set in both pellet grids", r, c)
			}
		}
	}
}

func TestInitCollectiblesRepopulates(t *testing.T) {
	g := mustGrid(t, roomLayout)
	total := g.RemainingCollectibles()
	if total != 2 {
		t.Fatalf("RemainingCollectibles = %d, want 2", total)
	}

	g.ConsumePellet(1, 1)
	g.ConsumeSuperPellet(1, 2)
	if g.RemainingCollectibles() != 0 {
		t.Fatal("collectibles remain after consuming all")
	}

	g.InitCollectibles()
	if g.RemainingCollectibles() != total {
		t.Fatal("InitCollectibles did not repopulate")
	}
}

func TestDefaultLayoutParses(t *testing.T) {
	g := mustGrid(t, DefaultLayout)
	if g.Columns() != 28 || g.Rows() != 31 {
		t.Fatalf("unexpected dimensions %dx%d", g.Columns(), g.Rows())
	}
	if g.RemainingCollectibles() != 244 {
		t.Errorf("RemainingCollectibles = %d, want 244", g.RemainingCollectibles())
	}
	// Tunnel row must be open at both mouths
	if !g.IsWalkable(14, 0) || !g.IsWalkable(14, 27) {
		t.Error("tunnel mouths not walkable")
	}
	// House door is solid to circle collision
	if g.IsWalkable(12, 13) || g.IsWalkable(12, 14) {
		t.Error("house door should not be walkable")
	}
}
