// Delve generates dungeon levels and previews them.
// Usage: delve [--version] [--recipe f.lua] [--algo name] [--size WxH] [--seed n]
//
//	[--doors] [--load f] [--save f] [--path] [--fov r] [--stats] [--plain]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/delve/dungeon"
	"github.com/katalvlaran/delve/levelscript"
	"github.com/katalvlaran/delve/pathfind"
	"github.com/katalvlaran/delve/preview"
	"github.com/katalvlaran/delve/tilegrid"
	"github.com/katalvlaran/delve/visibility"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

const usage = "Usage: delve [--version] [--recipe f.lua] [--algo name] [--size WxH] [--seed n] " +
	"[--doors] [--load f] [--save f] [--path] [--fov r] [--stats] [--plain]"

// config is the parsed command line.
type config struct {
	recipe   string
	algo     string
	width    int
	height   int
	seed     int64
	seedSet  bool
	doors    bool
	load     string
	save     string
	path     bool
	fov      int
	stats    bool
	plain    bool
	showHelp bool
	version  bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("delve: ")

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		log.Fatalf("%v", err)
	}
	switch {
	case cfg.version:
		fmt.Printf("delve %s (commit %s)\n", version, commit)
		return
	case cfg.showHelp:
		fmt.Println(usage)
		return
	}

	recipe, err := buildRecipe(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.load == "" && cfg.save == "" && !cfg.plain && isTerminal() {
		err := preview.RunExplorer(preview.Config{
			Width:    recipe.Width,
			Height:   recipe.Height,
			Seed:     recipe.Seed,
			Options:  recipe.Options(),
			Walkable: recipe.Walkable,
			Blocking: recipe.Blocking,
			Radius:   cfg.fov,
		})
		if err != nil {
			log.Fatalf("explorer: %v", err)
		}
		return
	}

	g, err := obtainGrid(cfg, recipe)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.save != "" {
		if err := g.SaveFile(cfg.save); err != nil {
			log.Fatalf("saving %s: %v", cfg.save, err)
		}
		log.Printf("saved %s", cfg.save)
	}
	out, err := show(g, cfg, recipe)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(out)
}

// parseArgs reads flags by hand; every value flag takes the next argument.
func parseArgs(args []string) (config, error) {
	var cfg config
	next := func(i *int, flag string) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		*i++
		return args[*i], nil
	}
	for i := 0; i < len(args); i++ {
		var (
			v   string
			err error
		)
		switch a := args[i]; a {
		case "--version":
			cfg.version = true
		case "--help", "-h":
			cfg.showHelp = true
		case "--doors":
			cfg.doors = true
		case "--path":
			cfg.path = true
		case "--stats":
			cfg.stats = true
		case "--plain":
			cfg.plain = true
		case "--recipe":
			cfg.recipe, err = next(&i, a)
		case "--algo":
			cfg.algo, err = next(&i, a)
		case "--load":
			cfg.load, err = next(&i, a)
		case "--save":
			cfg.save, err = next(&i, a)
		case "--size":
			if v, err = next(&i, a); err == nil {
				cfg.width, cfg.height, err = parseSize(v)
			}
		case "--seed":
			if v, err = next(&i, a); err == nil {
				cfg.seed, err = strconv.ParseInt(v, 10, 64)
				cfg.seedSet = true
			}
		case "--fov":
			if v, err = next(&i, a); err == nil {
				cfg.fov, err = strconv.Atoi(v)
				if err == nil && cfg.fov < 0 {
					err = fmt.Errorf("--fov must not be negative")
				}
			}
		default:
			err = fmt.Errorf("unknown argument %q", a)
		}
		if err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// parseSize reads "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("--size wants WxH, got %q", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("--size width: %w", err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("--size height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("--size must be positive, got %q", s)
	}
	return w, h, nil
}

// buildRecipe starts from the recipe file (or the defaults) and applies
// command-line overrides.
func buildRecipe(cfg config) (*levelscript.Recipe, error) {
	var (
		r   *levelscript.Recipe
		err error
	)
	if cfg.recipe != "" {
		r, err = levelscript.Load(cfg.recipe)
	} else {
		r, err = levelscript.Parse("defaults", "Level {}")
	}
	if err != nil {
		return nil, err
	}
	if cfg.algo != "" {
		if r.Algorithm, err = dungeon.ParseAlgorithm(cfg.algo); err != nil {
			return nil, err
		}
	}
	if cfg.width > 0 {
		r.Width, r.Height = cfg.width, cfg.height
	}
	if cfg.seedSet {
		r.Seed = cfg.seed
	}
	if cfg.doors {
		r.Doors = true
	}
	return r, nil
}

// obtainGrid loads the grid file or generates a level from the recipe.
func obtainGrid(cfg config, r *levelscript.Recipe) (*tilegrid.Grid, error) {
	if cfg.load != "" {
		g, err := tilegrid.LoadFile(cfg.load)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", cfg.load, err)
		}
		return g, nil
	}
	lvl, err := r.Generate()
	if err != nil {
		return nil, err
	}
	return lvl.Grid, nil
}

// show renders g with the requested overlays and summaries.
func show(g *tilegrid.Grid, cfg config, r *levelscript.Recipe) (string, error) {
	opts := preview.Options{Plain: cfg.plain, ShowObjects: true}
	entrance, hasEntrance := first(g, dungeon.Entrance)
	exit, hasExit := first(g, dungeon.Exit)
	if hasEntrance {
		opts.Player, opts.HasPlayer = entrance, true
	}

	var notes []string
	if cfg.path && hasEntrance && hasExit {
		pf, err := pathfind.New(g, r.PathfindOptions()...)
		if err != nil {
			return "", err
		}
		opts.Path = pf.AStar(entrance, exit, tilegrid.Conn4, nil)
		if opts.Path == nil {
			notes = append(notes, "no path from entrance to exit")
		} else {
			notes = append(notes, fmt.Sprintf("path: %d steps, smoothed to %d waypoints",
				len(opts.Path)-1, len(pf.SmoothPath(opts.Path))))
		}
	}
	if cfg.fov > 0 && hasEntrance {
		vis, err := visibility.New(g, r.VisibilityOptions()...)
		if err != nil {
			return "", err
		}
		rep := vis.VisibleInRadius(entrance.X, entrance.Y, cfg.fov)
		// the rest of the map stays on screen, dimmed
		seen := mapset.New[tilegrid.Point]()
		for _, p := range g.PositionsFunc(func(int) bool { return true }) {
			seen.Put(p)
		}
		opts.Visible, opts.Seen = &rep.Visible, &seen
		notes = append(notes, fmt.Sprintf("fov: %d cells visible, %d walls in view", rep.Count, len(rep.BlockedBy)))
	}
	if cfg.stats {
		notes = append(notes, stats(g))
	}

	var sb strings.Builder
	sb.WriteString(preview.Render(g, opts))
	for _, n := range notes {
		sb.WriteString("\n")
		sb.WriteString(n)
	}
	return sb.String(), nil
}

func first(g *tilegrid.Grid, code int) (tilegrid.Point, bool) {
	ps := g.Positions(code)
	if len(ps) == 0 {
		return tilegrid.Point{}, false
	}
	return ps[0], true
}

// stats summarizes the grid, e.g. "bsp 80x50 seed 7: 0=1234 1=2766 ...".
func stats(g *tilegrid.Grid) string {
	s := g.Stats()
	parts := make([]string, 0, len(s.Tiles))
	for _, tc := range s.Tiles {
		parts = append(parts, fmt.Sprintf("%d=%d", tc.Code, tc.Count))
	}
	return fmt.Sprintf("%s %dx%d seed %d: %s objects=%d",
		s.Generator, s.Width, s.Height, s.Seed, strings.Join(parts, " "), s.TotalObjects)
}

// isTerminal reports whether stdout is a terminal.
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
