package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/danieljhkim/tileplan/internal/clock"
	"github.com/danieljhkim/tileplan/internal/config"
	"github.com/danieljhkim/tileplan/internal/engine"
	"github.com/danieljhkim/tileplan/internal/grid"
	"github.com/danieljhkim/tileplan/internal/logx"
	"github.com/danieljhkim/tileplan/internal/store"
)

// newEngine creates a new engine with real implementations of all
// dependencies. The returned closer releases the quadrant database.
func newEngine() (*engine.Engine, func(), error) {
	var (
		paths *config.Paths
		err   error
	)
	if rootDir != "" {
		paths = config.PathsAt(rootDir)
	} else {
		paths, err = config.DefaultPaths()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get config paths: %w", err)
		}
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return nil, nil, err
	}
	cfg.ApplyTo(paths)

	log, err := logx.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	st, err := store.OpenSQLite(paths.Database)
	if err != nil {
		return nil, nil, err
	}

	closer := func() {
		_ = st.Close()
		_ = log.Sync()
	}
	return engine.New(st, log, &clock.RealClock{}, paths), closer, nil
}

// parseBounds interprets four coordinate arguments as a region,
// top-left x/y then bottom-right x/y.
func parseBounds(args []string) (grid.RectBounds, error) {
	coords := make([]int, 4)
	for i, arg := range args[:4] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return grid.RectBounds{}, fmt.Errorf("coordinate %q is not an integer", arg)
		}
		coords[i] = n
	}
	return grid.RectBounds{
		TopLeft:     grid.Point{X: coords[0], Y: coords[1]},
		BottomRight: grid.Point{X: coords[2], Y: coords[3]},
	}, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
