package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/delve/dungeon"
	"github.com/katalvlaran/delve/pathfind"
	"github.com/katalvlaran/delve/tilegrid"
	"github.com/katalvlaran/delve/visibility"
)

// Config describes the levels an Explorer walks through.
type Config struct {
	Width, Height int
	Seed          int64
	// Options are passed to dungeon.Generate.
	Options []dungeon.Option
	// Generate replaces dungeon.Generate when set.
	Generate func(seed int64) (*dungeon.Level, error)

	// Walkable and Blocking default to dungeon.WalkableTiles and
	// dungeon.BlockingTiles.
	Walkable []int
	Blocking []int

	// Radius is the sight radius; 0 means 8.
	Radius int
	Glyphs map[int]rune
}

// Explorer is a Bubble Tea model that walks a player through a level with
// field of view, remembered tiles and an optional path to the exit.
type Explorer struct {
	cfg   Config
	seed  int64
	level *dungeon.Level
	pf    *pathfind.Pathfinder
	vis   *visibility.Visibility

	player   tilegrid.Point
	visible  mapset.Set[tilegrid.Point]
	seen     mapset.Set[tilegrid.Point]
	path     pathfind.Path
	showPath bool
	steps    int

	keys keyMap
	help help.Model

	status   string
	width    int
	height   int
	quitting bool
}

// NewExplorer generates the first level and places the player on its
// entrance.
func NewExplorer(cfg Config) (Explorer, error) {
	if cfg.Generate == nil {
		w, h, opts := cfg.Width, cfg.Height, cfg.Options
		cfg.Generate = func(seed int64) (*dungeon.Level, error) {
			return dungeon.Generate(w, h, seed, opts...)
		}
	}
	if cfg.Walkable == nil {
		cfg.Walkable = dungeon.WalkableTiles()
	}
	if cfg.Blocking == nil {
		cfg.Blocking = dungeon.BlockingTiles()
	}
	if cfg.Radius <= 0 {
		cfg.Radius = 8
	}
	m := Explorer{cfg: cfg, keys: defaultKeyMap(), help: help.New()}
	if err := m.load(cfg.Seed); err != nil {
		return Explorer{}, err
	}
	return m, nil
}

// RunExplorer starts the Bubble Tea program on the alternate screen.
func RunExplorer(cfg Config) error {
	m, err := NewExplorer(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// load generates the level for seed and resets the player state.
func (m *Explorer) load(seed int64) error {
	lvl, err := m.cfg.Generate(seed)
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}
	pf, err := pathfind.New(lvl.Grid, pathfind.WithWalkable(m.cfg.Walkable...))
	if err != nil {
		return err
	}
	vis, err := visibility.New(lvl.Grid, visibility.WithBlocking(m.cfg.Blocking...))
	if err != nil {
		return err
	}
	m.seed, m.level, m.pf, m.vis = seed, lvl, pf, vis
	m.player = lvl.Entrance
	m.seen = mapset.New[tilegrid.Point]()
	m.steps = 0
	m.status = ""
	m.look()
	return nil
}

// look recomputes the view from the player and the path to the exit.
func (m *Explorer) look() {
	m.visible = m.vis.ComputeFOV(m.player.X, m.player.Y, m.cfg.Radius)
	m.visible.Each(func(p tilegrid.Point) { m.seen.Put(p) })
	m.path = nil
	if m.showPath && m.level.HasExit {
		m.path = m.pf.AStar(m.player, m.level.Exit, tilegrid.Conn4, nil)
	}
}

// move steps the player by (dx,dy) if the target is walkable.
func (m *Explorer) move(dx, dy int) {
	to := m.player.Add(dx, dy)
	if !m.pf.Walkable(to) {
		m.status = "blocked"
		return
	}
	m.player = to
	m.steps++
	m.status = ""
	if m.level.HasExit && to == m.level.Exit {
		m.status = fmt.Sprintf("exit reached in %d steps, r for the next level", m.steps)
	}
	m.look()
}

// Init implements tea.Model.
func (m Explorer) Init() tea.Cmd { return nil }

// Update handles key presses and window resizes.
func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.move(0, -1)
		case key.Matches(msg, m.keys.Down):
			m.move(0, 1)
		case key.Matches(msg, m.keys.Left):
			m.move(-1, 0)
		case key.Matches(msg, m.keys.Right):
			m.move(1, 0)
		case key.Matches(msg, m.keys.Path):
			m.showPath = !m.showPath
			m.look()
			if m.showPath && m.path == nil {
				m.status = "no path to the exit"
			}
		case key.Matches(msg, m.keys.Regenerate):
			if err := m.load(m.seed + 1); err != nil {
				m.status = err.Error()
			}
		}
	}
	return m, nil
}

// View draws the map, a status bar and the key help.
func (m Explorer) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(Render(m.level.Grid, Options{
		Glyphs:    m.cfg.Glyphs,
		Path:      m.path,
		Visible:   &m.visible,
		Seen:      &m.seen,
		Player:    m.player,
		HasPlayer: true,
	}))
	sb.WriteByte('\n')
	sb.WriteString(m.statusLine())
	if m.status != "" {
		sb.WriteByte('\n')
		sb.WriteString(styleError.Render(m.status))
	}
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Explorer) statusLine() string {
	parts := []string{
		fmt.Sprintf("seed %d", m.seed),
		string(m.level.Algorithm),
		m.player.String(),
		fmt.Sprintf("steps %d", m.steps),
		fmt.Sprintf("seen %d", m.seen.Size()),
	}
	if m.path != nil {
		parts = append(parts, fmt.Sprintf("exit %d", len(m.path)-1))
	}
	line := " " + strings.Join(parts, " | ") + " "
	if m.width > 0 && len(line) < m.width {
		line += strings.Repeat(" ", m.width-len(line))
	}
	return styleStatusBar.Render(line)
}

// Player returns the player position.
func (m Explorer) Player() tilegrid.Point { return m.player }

// Seed returns the seed of the current level.
func (m Explorer) Seed() int64 { return m.seed }

// Level returns the current level.
func (m Explorer) Level() *dungeon.Level { return m.level }

// Path returns the displayed path to the exit, nil when hidden.
func (m Explorer) Path() pathfind.Path { return m.path }

// Visible returns the cells in view.
func (m Explorer) Visible() mapset.Set[tilegrid.Point] { return m.visible }

// Status returns the last status message.
func (m Explorer) Status() string { return m.status }
