package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
	"github.com/eugenenazirov/wagon-calculator/internal/catalog"
	"github.com/eugenenazirov/wagon-calculator/internal/config"
	"github.com/eugenenazirov/wagon-calculator/internal/logging"
	"github.com/eugenenazirov/wagon-calculator/internal/report"
)

type options struct {
	configFile  string
	catalogFile string
	vehicle     string
	doors       int
	pallets     float64
	list        bool
	asJSON      bool
	logLevel    string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	kingpin.FatalIfError(err, "")

	logger, err := logging.New(opts.logLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(opts, os.Stdout); err != nil {
		reportFailure(logger, os.Stderr, err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	app := kingpin.New("wagoncalc", "Calculate wagon floor, cube and weight utilisation for a door and pallet load")
	app.Flag("config", "Path to YAML configuration file").StringVar(&opts.configFile)
	app.Flag("catalog", "Path to YAML vehicle catalog").StringVar(&opts.catalogFile)
	app.Flag("vehicle", "Vehicle name from the catalog").Short('v').StringVar(&opts.vehicle)
	app.Flag("doors", "Number of doors").Short('d').Default("0").IntVar(&opts.doors)
	app.Flag("pallets", "Number of 2.8m large pallets").Short('p').Default("0").Float64Var(&opts.pallets)
	app.Flag("list", "List catalog vehicles and exit").BoolVar(&opts.list)
	app.Flag("json", "Print the report as JSON").BoolVar(&opts.asJSON)
	app.Flag("log-level", "Log level for diagnostics written to stderr").Default("error").StringVar(&opts.logLevel)

	if _, err := app.Parse(args); err != nil {
		return options{}, err
	}
	if !opts.list && opts.vehicle == "" {
		return options{}, errors.New("required flag --vehicle not provided")
	}
	return opts, nil
}

func run(opts options, out io.Writer) error {
	overrides := &config.CLIOverrides{ConfigFile: opts.configFile}
	if opts.catalogFile != "" {
		overrides.CatalogFile = &opts.catalogFile
	}
	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	vehicles, err := catalog.New(cfg.Vehicles)
	if err != nil {
		return err
	}

	if opts.list {
		return printVehicles(out, vehicles.List())
	}

	spec, err := vehicles.Lookup(opts.vehicle)
	if err != nil {
		return err
	}

	in := calculator.LoadInput{Doors: opts.doors, Pallets: opts.pallets}
	rep, err := calculator.New().Calculate(spec, in)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport{Vehicle: spec.Name, Input: in, Report: rep})
	}
	return printReport(out, spec, in, rep)
}

type jsonReport struct {
	Vehicle string               `json:"vehicle"`
	Input   calculator.LoadInput `json:"input"`
	Report  calculator.Report    `json:"report"`
}

func printVehicles(out io.Writer, specs []calculator.VehicleSpec) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VEHICLE\tFLOOR (STILLAGES)\tFLOOR (PALLETS)\tCUBE\tWEIGHT")
	for _, s := range specs {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			s.Name, s.FloorCapacityStillages, s.FloorCapacityStillages*calculator.PalletsPerStillage, s.CubeCapacity, s.WeightCapacity)
	}
	return tw.Flush()
}

func printReport(out io.Writer, spec calculator.VehicleSpec, in calculator.LoadInput, rep calculator.Report) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Vehicle\t%s\n", spec.Name)
	fmt.Fprintf(tw, "Doors\t%d\n", in.Doors)
	fmt.Fprintf(tw, "Large pallets\t%.2f\n", in.Pallets)
	fmt.Fprintf(tw, "Stillage equivalent\t%.3f\n", rep.StillageEquivalent)
	for _, m := range report.Metrics(rep) {
		fmt.Fprintf(tw, "%s\t%.1f%%\n", m.Label, m.Pct)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, report.Status(rep))
	return err
}

// reportFailure prints the user-facing message once. The raw error is only
// logged at debug level so the default error level does not repeat it.
func reportFailure(logger *zap.Logger, stderr io.Writer, err error) {
	logger.Debug("calculation failed", zap.Error(err))
	fmt.Fprintln(stderr, describeError(err))
}

// describeError turns calculation failures into user-facing messages.
func describeError(err error) string {
	switch {
	case errors.Is(err, calculator.ErrConfiguration):
		return "calculation unavailable for this vehicle: " + err.Error()
	case errors.Is(err, calculator.ErrInvalidInput):
		return "invalid input: " + err.Error()
	case errors.Is(err, catalog.ErrVehicleNotFound):
		return err.Error() + " (use --list to see available vehicles)"
	default:
		return err.Error()
	}
}
