// Command gridpath builds a grid, draws terrain on it, runs one pathfinder and
// prints the result or replays the search in the terminal.
//
//	gridpath -width 61 -height 31 -terrain maze-vskew -algo bi-a* -replay
//	gridpath -map level.txt -algo dijkstra -from 1,1 -to 20,8
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/replay"
	"github.com/katalvlaran/gridpath/search"
)

// terrainNone disables terrain generation.
const terrainNone = "none"

type config struct {
	width, height int
	terrain       string
	seed          int64
	nav           string
	algo          string
	heur          string
	from, to      string
	replay        bool
	delay         string
	mapFile       string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridpath: ")

	var cfg config
	flag.IntVar(&cfg.width, "width", 41, "grid width (ignored with -map)")
	flag.IntVar(&cfg.height, "height", 21, "grid height (ignored with -map)")
	flag.StringVar(&cfg.terrain, "terrain", "", "terrain: "+strings.Join(builder.Generators(), ", ")+", none (default maze, none with -map)")
	flag.Int64Var(&cfg.seed, "seed", 0, "terrain seed (0 = default)")
	flag.StringVar(&cfg.nav, "nav", builder.DefaultNavigator, "navigator: "+strings.Join(builder.Navigators(), ", "))
	flag.StringVar(&cfg.algo, "algo", builder.DefaultAlgorithm, "algorithm: "+strings.Join(builder.Algorithms(), ", "))
	flag.StringVar(&cfg.heur, "heur", builder.DefaultHeuristic, "heuristic: "+strings.Join(builder.Heuristics(), ", "))
	flag.StringVar(&cfg.from, "from", "", "initial point x,y (default top-left interior)")
	flag.StringVar(&cfg.to, "to", "", "goal point x,y (default bottom-right interior)")
	flag.BoolVar(&cfg.replay, "replay", false, "animate the search in the terminal")
	flag.StringVar(&cfg.delay, "delay", replay.DefaultDelay.String(), "replay delay per generation")
	flag.StringVar(&cfg.mapFile, "map", "", "ASCII map file ('.' empty, '#' solid, '2'-'9' weighted)")
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, out io.Writer) error {
	g, err := loadGrid(cfg)
	if err != nil {
		return err
	}

	from, err := pointOrDefault(cfg.from, grid.Point{X: 1, Y: 1}, g)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	to, err := pointOrDefault(cfg.to, grid.Point{X: g.Width() - 2, Y: g.Height() - 2}, g)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	if key := terrainKey(cfg); key != terrainNone {
		gen, err := builder.NewTerrain(g.Width(), g.Height()).Generator(key).Ignore(from, to).Seed(cfg.seed).Build()
		if err != nil {
			return err
		}
		gen.Apply(g, grid.Point{X: 1, Y: 1}, grid.Point{X: g.Width() - 2, Y: g.Height() - 2})
	}
	for _, p := range []grid.Point{from, to} {
		if g.IsSolid(p) {
			return fmt.Errorf("%v is solid", p)
		}
	}

	pf, err := builder.NewPathfinder(g).Navigator(cfg.nav).Algorithm(cfg.algo).Heuristic(cfg.heur).Build()
	if err != nil {
		return err
	}
	path := pf.FindPath(from, to)
	gens := pf.RecentGenerations()

	if cfg.replay {
		delay, err := parseDelay(cfg.delay)
		if err != nil {
			return err
		}
		if err := play(g, gens, path, pf.AlgorithmName(), delay); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, replay.Text(g, path, gens))
	}
	report(out, g, pf, from, to, path)

	return nil
}

func loadGrid(cfg config) (*grid.Grid, error) {
	if cfg.mapFile == "" {
		return grid.New(cfg.width, cfg.height)
	}
	data, err := os.ReadFile(cfg.mapFile)
	if err != nil {
		return nil, err
	}

	return grid.Parse(splitRows(string(data)))
}

func terrainKey(cfg config) string {
	switch {
	case cfg.terrain != "":
		return strings.ToLower(cfg.terrain)
	case cfg.mapFile != "":
		return terrainNone
	}

	return builder.DefaultGenerator
}

func report(out io.Writer, g *grid.Grid, pf search.Pathfinder, from, to grid.Point, path []grid.Tile) {
	fmt.Fprintf(out, "algorithm: %s (%s)\n", pf.AlgorithmName(), pf.Navigator().Type())
	fmt.Fprintf(out, "from %v to %v\n", from, to)
	if len(path) == 0 && from != to {
		fmt.Fprintln(out, "path: unreachable")
	} else {
		fmt.Fprintf(out, "path: %d steps, cost %.2f\n", len(path), search.PathCost(pf.Navigator(), from, path))
	}
	fmt.Fprintf(out, "nodes: %d of %d tiles, %d open regions\n", pf.RecentNodes(), g.Width()*g.Height(), len(g.Components()))
}

func play(g *grid.Grid, gens []search.Generation, path []grid.Tile, title string, delay time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := replay.NewPlayer(screen, g, gens, path, replay.WithDelay(delay), replay.WithTitle(title))
	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
