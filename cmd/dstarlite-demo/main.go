// Command dstarlite-demo builds a grid, plans a path, injects an
// obstacle, and replans, logging each phase and optionally serving the
// resulting Prometheus metrics.
package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pcannon67/robotics-d-star-lite/dstarlite"
	"github.com/pcannon67/robotics-d-star-lite/grid"
	"github.com/pcannon67/robotics-d-star-lite/metrics"
)

var CLI struct {
	Rows        int      `name:"rows" help:"Grid height." default:"10"`
	Cols        int      `name:"cols" help:"Grid width." default:"10"`
	Obstacle    []string `name:"obstacle" help:"Obstacle cell as x,y. May be repeated." sep:"none"`
	MetricsAddr string   `name:"metrics-addr" help:"If set, serve Prometheus metrics on this address (e.g. :9100) instead of exiting."`
}

// logAdapter satisfies dstarlite.Logger over charmbracelet/log.
type logAdapter struct {
	*log.Logger
}

func (a logAdapter) Debugf(format string, args ...interface{}) {
	a.Logger.Debug(fmt.Sprintf(format, args...))
}

func main() {
	_ = kong.Parse(&CLI)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})

	obstacles, err := parseObstacles(CLI.Obstacle)
	if err != nil {
		logger.Fatal("invalid obstacle flag", "error", err)
	}

	m, err := grid.New(CLI.Cols, CLI.Rows, 1)
	if err != nil {
		logger.Fatal("failed to build grid", "error", err)
	}

	start, err := m.Cell(0, 0)
	if err != nil {
		logger.Fatal("start cell out of bounds", "error", err)
	}
	goal, err := m.Cell(CLI.Cols-1, CLI.Rows-1)
	if err != nil {
		logger.Fatal("goal cell out of bounds", "error", err)
	}

	recorder := metrics.New("dstarlite")

	planner, err := dstarlite.New(start, goal,
		dstarlite.WithLogger(logAdapter{logger}),
		dstarlite.WithMetrics(recorder),
	)
	if err != nil {
		logger.Fatal("failed to construct planner", "error", err)
	}

	logger.Info("planning initial path", "rows", CLI.Rows, "cols", CLI.Cols)
	if !planner.Replan() {
		logger.Error("no path found")
	} else {
		logger.Info("initial path found", "length", len(planner.Path()))
	}

	for _, o := range obstacles {
		cell, err := m.Cell(o[0], o[1])
		if err != nil {
			logger.Warn("skipping out-of-bounds obstacle", "x", o[0], "y", o[1])
			continue
		}
		logger.Info("injecting obstacle", "x", o[0], "y", o[1])
		planner.Update(cell, grid.UNWALKABLE)
	}

	if len(obstacles) > 0 {
		if !planner.Replan() {
			logger.Error("no path found after obstacles applied")
		} else {
			logger.Info("replanned around obstacles", "length", len(planner.Path()))
		}
	}

	for _, c := range planner.Path() {
		fmt.Printf("%s\n", c)
	}

	if CLI.MetricsAddr == "" {
		return
	}

	logger.Info("serving metrics", "addr", CLI.MetricsAddr)
	http.Handle("/metrics", promhttp.HandlerFor(recorder.Registry(), promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(CLI.MetricsAddr, nil); err != nil {
		logger.Fatal("metrics server failed", "error", err)
	}
}

func parseObstacles(raw []string) ([][2]int, error) {
	out := make([][2]int, 0, len(raw))
	for _, s := range raw {
		parts := strings.Split(s, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("obstacle %q: want format x,y", s)
		}
		x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("obstacle %q: %w", s, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("obstacle %q: %w", s, err)
		}
		out = append(out, [2]int{x, y})
	}
	return out, nil
}
