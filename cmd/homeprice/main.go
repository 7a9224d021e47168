// homeprice - London property price estimation CLI
//
// Usage:
//   homeprice estimate --borough Hackney --type Flat --floor-area 75 --rooms 4
//   homeprice models
//   homeprice boroughs [--model london-2025]
//   homeprice property-types [--model london-2025]
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"homeprice/internal/estimator"
	"homeprice/internal/model"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// UI-level input bounds. These mirror the ranges the model was trained
// on; the estimator itself only rejects mathematically invalid values.
const (
	minFloorArea = 15.0
	maxFloorArea = 500.0
	minRooms     = 1
	maxRooms     = 10
)

func main() {
	app := &cli.App{
		Name:    "homeprice",
		Usage:   "Estimate London property sale prices from a trained regression model",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"HOMEPRICE_LOG_LEVEL"},
			},
		},

		Commands: []*cli.Command{
			estimateCommand(),
			modelsCommand(),
			boroughsCommand(),
			propertyTypesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func modelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "model",
			Aliases: []string{"m"},
			Value:   model.DefaultBundle,
			Usage:   "Built-in model bundle to use",
			EnvVars: []string{"HOMEPRICE_MODEL"},
		},
		&cli.StringFlag{
			Name:    "model-file",
			Usage:   "Path to a YAML model bundle (overrides --model)",
			EnvVars: []string{"HOMEPRICE_MODEL_FILE"},
		},
	}
}

// loadEstimator resolves the model bundle from flags: an explicit file
// wins over a built-in name.
func loadEstimator(c *cli.Context) (*estimator.Estimator, error) {
	var (
		params *model.Params
		err    error
	)
	if path := c.String("model-file"); path != "" {
		params, err = model.LoadFile(path)
	} else {
		params, err = model.Builtin(c.String("model"))
	}
	if err != nil {
		return nil, err
	}
	return estimator.New(params)
}

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

func estimateCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "borough",
			Aliases:  []string{"b"},
			Usage:    "London borough (see 'homeprice boroughs')",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "type",
			Aliases:  []string{"t"},
			Usage:    "Property type (see 'homeprice property-types')",
			Required: true,
		},
		&cli.Float64Flag{
			Name:     "floor-area",
			Aliases:  []string{"a"},
			Usage:    "Total floor area in m²",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "rooms",
			Aliases:  []string{"r"},
			Usage:    "Number of habitable rooms",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "new-build",
			Usage: "Property is a new build",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "table",
			Usage:   "Output format (table, json, markdown)",
		},
		&cli.BoolFlag{
			Name:  "breakdown",
			Usage: "Include the per-factor price breakdown",
		},
		&cli.BoolFlag{
			Name:  "no-range",
			Usage: "Omit the likely price range",
		},
	}
	flags = append(flags, modelFlags()...)

	return &cli.Command{
		Name:   "estimate",
		Usage:  "Estimate the sale price of a single property",
		Flags:  flags,
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	logger := newLogger(c)

	est, err := loadEstimator(c)
	if err != nil {
		return err
	}

	in := estimator.Input{
		Borough:      c.String("borough"),
		PropertyType: c.String("type"),
		FloorArea:    c.Float64("floor-area"),
		Rooms:        float64(c.Int("rooms")),
		NewBuild:     c.Bool("new-build"),
	}

	if in.FloorArea < minFloorArea || in.FloorArea > maxFloorArea {
		return fmt.Errorf("floor area must be between %v and %v m², got %v",
			minFloorArea, maxFloorArea, in.FloorArea)
	}
	if rooms := c.Int("rooms"); rooms < minRooms || rooms > maxRooms {
		return fmt.Errorf("rooms must be between %d and %d, got %d",
			minRooms, maxRooms, rooms)
	}

	// Unknown categories silently fall back to the model baseline, so a
	// typo quietly misprices. Surface it without failing.
	if !contains(est.KnownBoroughs(), in.Borough) {
		logger.Warn().Str("borough", in.Borough).
			Msg("Borough not in model; using baseline offset")
	}
	if !contains(est.KnownPropertyTypes(), in.PropertyType) {
		logger.Warn().Str("property_type", in.PropertyType).
			Msg("Property type not in model; using baseline offset")
	}

	logger.Debug().Str("model", est.ModelName()).Msg("Running estimation")

	result, err := est.Estimate(in)
	if err != nil {
		return fmt.Errorf("estimation failed: %w", err)
	}

	var breakdown *estimator.Breakdown
	if c.Bool("breakdown") {
		breakdown, err = est.Breakdown(in)
		if err != nil {
			return fmt.Errorf("breakdown failed: %w", err)
		}
	}

	report := newReport(est, in, result, breakdown, c.Bool("no-range"))

	switch c.String("format") {
	case "json":
		return outputJSON(report)
	case "markdown":
		return outputMarkdown(report)
	case "table":
		return outputTable(report)
	default:
		return fmt.Errorf("unknown format %q (table, json, markdown)", c.String("format"))
	}
}

// =============================================================================
// LISTING COMMANDS
// =============================================================================

func modelsCommand() *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "List built-in model bundles",
		Action: func(c *cli.Context) error {
			for _, name := range model.BuiltinNames() {
				params, err := model.Builtin(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == model.DefaultBundle {
					marker = "*"
				}
				fmt.Printf("%s %-16s %s, %d boroughs, %d property types\n",
					marker, name, params.Currency,
					len(params.DistrictCoefs), len(params.PropertyTypeCoefs))
			}
			return nil
		},
	}
}

func boroughsCommand() *cli.Command {
	return &cli.Command{
		Name:  "boroughs",
		Usage: "List the boroughs a model bundle knows",
		Flags: modelFlags(),
		Action: func(c *cli.Context) error {
			est, err := loadEstimator(c)
			if err != nil {
				return err
			}
			for _, b := range est.KnownBoroughs() {
				fmt.Println(b)
			}
			return nil
		},
	}
}

func propertyTypesCommand() *cli.Command {
	return &cli.Command{
		Name:  "property-types",
		Usage: "List the property types a model bundle knows",
		Flags: modelFlags(),
		Action: func(c *cli.Context) error {
			est, err := loadEstimator(c)
			if err != nil {
				return err
			}
			for _, t := range est.KnownPropertyTypes() {
				fmt.Println(t)
			}
			return nil
		},
	}
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
