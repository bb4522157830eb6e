// Command gridpath loads a map file and prints the path from the map's start
// cell to a destination.
//
// Usage:
//
//	gridpath -map FILE [-goal x,y] [-heuristic blended|manhattan|dijkstra] [-png FILE] [-cell N] [-regions]
//
// Without -goal, destinations are read from stdin, one "x,y" per line, until EOF.
// Exit codes: 0 on success (including "no path"), 1 when the map cannot be
// loaded, 2 for usage errors (bad flags or environment) and invalid destinations.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logger"
	"github.com/katalvlaran/gridpath/render"
	"github.com/sirupsen/logrus"
)

const (
	exitOK      = 0
	exitLoad    = 1
	exitBadGoal = 2
	exitUsage   = exitBadGoal
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app is one loaded map plus the search and output settings.
type app struct {
	grid      *gridmap.Grid
	heuristic astar.Heuristic
	pngPath   string
	cellSize  int
	out       io.Writer
	log       *logrus.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mapPath := fs.String("map", "", "map file to load (required)")
	goalArg := fs.String("goal", "", "destination as x,y; read from stdin when empty")
	heuristic := fs.String("heuristic", cfg.Heuristic, "blended, manhattan or dijkstra")
	pngPath := fs.String("png", "", "also draw the result into this PNG file")
	cellSize := fs.Int("cell", cfg.CellSize, "PNG cell size in pixels")
	regions := fs.Bool("regions", false, "list the connected regions of walkable cells")
	if err = fs.Parse(args); err != nil {
		return exitUsage
	}
	if *mapPath == "" {
		fmt.Fprintln(stderr, "gridpath: -map is required")
		fs.Usage()
		return exitUsage
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Out: stderr})

	h, err := astar.ParseHeuristic(*heuristic)
	if err != nil {
		log.WithError(err).Error("invalid heuristic")
		return exitUsage
	}

	g, err := gridmap.Load(*mapPath)
	if err != nil {
		msg := "cannot read map"
		if errors.Is(err, gridmap.ErrFormat) {
			msg = "invalid map file"
		}
		log.WithError(err).WithField("file", *mapPath).Error(msg)
		return exitLoad
	}
	log.WithFields(logrus.Fields{
		"file": *mapPath, "width": g.Width(), "height": g.Height(), "start": g.Start().String(),
	}).Debug("map loaded")

	a := &app{grid: g, heuristic: h, pngPath: *pngPath, cellSize: *cellSize, out: stdout, log: log}
	if *regions {
		a.printRegions()
	}
	if *goalArg != "" {
		return a.solve(*goalArg)
	}
	return a.interactive(stdin)
}

// interactive answers one destination per input line. Invalid lines are
// reported and skipped.
func (a *app) interactive(in io.Reader) int {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		a.solve(line)
	}
	if err := sc.Err(); err != nil {
		a.log.WithError(err).Error("read destinations")
		return exitLoad
	}
	return exitOK
}

// solve parses and checks a destination, runs the search and prints the result.
// An out-of-bounds destination is rejected before any search.
func (a *app) solve(raw string) int {
	goal, err := gridmap.ParseCell(raw)
	if err == nil {
		err = a.grid.Validate(goal)
	}
	if err != nil {
		fmt.Fprintf(a.out, "invalid destination: %v\n", err)
		return exitBadGoal
	}

	start := a.grid.Start()
	res, err := astar.Find(a.grid, start, goal, astar.WithHeuristic(a.heuristic))
	if err != nil {
		a.log.WithError(err).Error("search failed")
		return exitLoad
	}
	a.log.WithFields(logrus.Fields{
		"goal": goal.String(), "found": res.Found, "cost": res.Cost, "expanded": res.Expanded,
	}).Debug("search finished")

	if res.Found {
		fmt.Fprintf(a.out, "path %s cost=%d expanded=%d\n", formatPath(res.Path), res.Cost, res.Expanded)
	} else {
		fmt.Fprintf(a.out, "no path from %v to %v\n", start, goal)
	}

	ov := render.Overlay{Path: res.Path, Goal: &goal}
	if err = render.Text(a.out, a.grid, ov); err != nil {
		a.log.WithError(err).Error("render text")
	}
	if a.pngPath != "" {
		if err = render.SavePNG(a.pngPath, a.grid, ov, a.cellSize); err != nil {
			a.log.WithError(err).Error("render png")
		} else {
			a.log.WithField("file", a.pngPath).Info("image written")
		}
	}
	return exitOK
}

func (a *app) printRegions() {
	regions := a.grid.Regions()
	fmt.Fprintf(a.out, "regions: %d\n", len(regions))
	for i, r := range regions {
		fmt.Fprintf(a.out, "  %d: %d cells from %v\n", i, len(r), r[0])
	}
}

func formatPath(path []gridmap.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
