package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/flavorsim/internal/config"
	"github.com/san-kum/flavorsim/internal/experiment"
	"github.com/san-kum/flavorsim/internal/monitoring"
	"github.com/san-kum/flavorsim/internal/observable"
	"github.com/san-kum/flavorsim/internal/optim"
	"github.com/san-kum/flavorsim/internal/params"
	"github.com/san-kum/flavorsim/internal/sampling"
	"github.com/san-kum/flavorsim/internal/storage"
	"github.com/san-kum/flavorsim/internal/telemetry"
	"github.com/san-kum/flavorsim/internal/viz"
)

var (
	dataDir     string
	configFile  string
	metricsAddr string
	verbose     bool
	preset      string
	sets        []string
	optFlags    []string
	prefix      string
	workers     int
	samples     int
	seed        uint64
	vary        []string
	scanParams  []string
	column      string
	bins        int
	pngOut      string
	htmlOut     string
	jsonOut     bool

	cfg      *config.Config
	registry = experiment.NewRegistry()
)

// main registers the flavorsim commands and runs the root command. With no
// subcommand it opens the parameter browser.
func main() {
	rootCmd := &cobra.Command{
		Use:               "flavorsim",
		Short:             "flavor physics parameter lab",
		SilenceUsage:      true,
		RunE:              browse,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", "", "data directory (default "+config.DefaultDataDir+")")
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log progress")
	pf.StringVar(&preset, "preset", "", "apply a named preset")
	pf.StringArrayVar(&sets, "set", nil, "override a parameter, name=value (repeatable)")

	paramsCmd := &cobra.Command{
		Use:   "params",
		Short: "list parameters",
		Args:  cobra.NoArgs,
		RunE:  listParams,
	}
	paramsCmd.Flags().StringVar(&prefix, "prefix", "", "only names with this prefix")

	getCmd := &cobra.Command{
		Use:   "get <name>",
		Short: "show one parameter",
		Args:  cobra.ExactArgs(1),
		RunE:  getParam,
	}

	evalCmd := &cobra.Command{
		Use:   "eval [observable...]",
		Short: "evaluate observables (default: those in --config)",
		RunE:  evalObservables,
	}
	evalCmd.Flags().BoolVar(&jsonOut, "json", false, "print results as json")

	depsCmd := &cobra.Command{
		Use:   "deps <observable>",
		Short: "list the parameters an observable depends on",
		Args:  cobra.ExactArgs(1),
		RunE:  showDeps,
	}

	sensCmd := &cobra.Command{
		Use:   "sensitivity <observable>",
		Short: "response to each input at the ends of its range",
		Args:  cobra.ExactArgs(1),
		RunE:  sensitivity,
	}

	scanCmd := &cobra.Command{
		Use:   "scan <observable>",
		Short: "grid scan over parameters",
		Args:  cobra.ExactArgs(1),
		RunE:  scan,
	}
	scanCmd.Flags().StringArrayVar(&scanParams, "param", nil, "scan axis, name:steps or name:min:max:steps (repeatable)")
	scanCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel workers")

	sampleCmd := &cobra.Command{
		Use:   "sample <observable>",
		Short: "monte carlo over parameter ranges",
		Args:  cobra.ExactArgs(1),
		RunE:  sample,
	}
	sampleCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	sampleCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel workers")
	sampleCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed")
	sampleCmd.Flags().StringArrayVar(&vary, "vary", nil, "parameter to vary (repeatable, default: all inputs)")

	for _, c := range []*cobra.Command{evalCmd, depsCmd, sensCmd, scanCmd, sampleCmd} {
		c.Flags().StringArrayVar(&optFlags, "opt", nil, "observable option, key=value (repeatable)")
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot <run_id>",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&column, "column", "value", "column to plot")
	plotCmd.Flags().IntVar(&bins, "bins", 20, "histogram bins")
	plotCmd.Flags().StringVar(&pngOut, "png", "", "also write the plot to this png file")
	plotCmd.Flags().StringVar(&htmlOut, "html", "", "also write an interactive html chart to this file")

	exportCmd := &cobra.Command{
		Use:   "export <run_id> [file]",
		Short: "export a stored run as json",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			if len(args) == 2 {
				return st.ExportJSON(args[0], args[1])
			}
			return st.Export(args[0], os.Stdout)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVALUES\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(p.Values), p.Description)
			}
			return w.Flush()
		},
	}

	listObsCmd := &cobra.Command{
		Use:   "list-observables",
		Short: "list registered observables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	browseCmd := &cobra.Command{
		Use:   "browse [observable]",
		Short: "interactive parameter browser",
		Args:  cobra.MaximumNArgs(1),
		RunE:  browse,
	}
	browseCmd.Flags().StringArrayVar(&optFlags, "opt", nil, "observable option, key=value (repeatable)")

	initCmd := &cobra.Command{
		Use:   "init <file>",
		Short: "write a default config file (.yaml or .toml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.DefaultConfig()
			c.Observables = []config.ObservableConfig{{Name: "B_q::Gamma", Options: map[string]string{"q": "d"}}}
			c.Scan.Parameters = []config.ScanParameter{{Name: "life_time::B_d", Steps: config.DefaultScanSteps}}
			if err := config.Save(args[0], c); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(paramsCmd, getCmd, evalCmd, depsCmd, sensCmd, scanCmd, sampleCmd, runsCmd, plotCmd, exportCmd, presetsCmd, listObsCmd, browseCmd, initCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// setup loads the config file and starts the metrics endpoint.
func setup(cmd *cobra.Command, args []string) error {
	if !verbose {
		monitoring.SetLogger(nil)
	}

	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	if preset != "" {
		if config.GetPreset(preset) == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Preset = preset
	}
	if !cmd.Flags().Changed("workers") {
		workers = cfg.Workers
	}
	if !cmd.Flags().Changed("samples") {
		samples = cfg.Sampling.Samples
	}
	if !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
	if !cmd.Flags().Changed("vary") {
		vary = cfg.Sampling.Vary
	}

	if metricsAddr != "" {
		telemetry.Serve(cmd.Context(), metricsAddr)
		monitoring.Logf("serving metrics on %s/metrics", metricsAddr)
	}
	return nil
}

// overrides combines the preset, the config overrides and --set flags, in
// increasing precedence.
func overrides() (map[string]float64, error) {
	values := cfg.Overlay()
	flags, err := parseAssignments(sets)
	if err != nil {
		return nil, err
	}
	for k, v := range flags {
		values[k] = v
	}
	return values, nil
}

// baseParameters is a fresh default view with all overrides applied.
func baseParameters() (params.Parameters, error) {
	p := params.Defaults()
	values, err := overrides()
	if err != nil {
		return p, err
	}
	if err := p.Apply(values); err != nil {
		return p, err
	}
	return p, nil
}

// observableOptions prefers --opt flags, then the options given for name in
// the config file.
func observableOptions(name string) (observable.Options, error) {
	opts, err := parseOptionFlags(optFlags)
	if err != nil {
		return nil, err
	}
	if len(opts) > 0 {
		return opts, nil
	}
	for _, o := range cfg.Observables {
		if o.Name == name {
			return observable.Options(o.Options).Clone(), nil
		}
	}
	return opts, nil
}

func builder(name string) (observable.Builder, observable.Options, error) {
	opts, err := observableOptions(name)
	if err != nil {
		return nil, nil, err
	}
	b, err := registry.Builder(name, opts)
	return b, opts, err
}

func listParams(cmd *cobra.Command, args []string) error {
	p, err := baseParameters()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMIN\tCENTRAL\tMAX\tVALUE")
	for par := range p.All() {
		if !strings.HasPrefix(par.Name(), prefix) {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%g\t%g\t%g\t%g\n", par.ID(), par.Name(), par.Min(), par.Central(), par.Max(), par.Value())
	}
	return w.Flush()
}

func getParam(cmd *cobra.Command, args []string) error {
	p, err := baseParameters()
	if err != nil {
		return err
	}
	par, err := p.ByName(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("name:    %s\n", par.Name())
	fmt.Printf("id:      %d\n", par.ID())
	fmt.Printf("value:   %g\n", par.Value())
	fmt.Printf("central: %g\n", par.Central())
	fmt.Printf("range:   [%g, %g]\n", par.Min(), par.Max())
	return nil
}

func evalObservables(cmd *cobra.Command, args []string) error {
	values, err := overrides()
	if err != nil {
		return err
	}

	var expCfg experiment.Config
	if len(args) == 0 {
		if len(cfg.Observables) == 0 {
			return fmt.Errorf("no observables given and none in config")
		}
		expCfg = cfg.Experiment()
		expCfg.Overrides = values
	} else {
		expCfg.Overrides = values
		for _, name := range args {
			opts, err := observableOptions(name)
			if err != nil {
				return err
			}
			expCfg.Observables = append(expCfg.Observables, experiment.Spec{Name: name, Options: opts})
		}
	}

	exp := experiment.New(expCfg, registry)
	if err := exp.Setup(params.Defaults()); err != nil {
		return err
	}
	results, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OBSERVABLE\tOPTIONS\tVALUE\tINPUTS")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%.6g\t%d\n", r.Name, r.Options.String(), r.Value, len(r.Uses))
	}
	return w.Flush()
}

func showDeps(cmd *cobra.Command, args []string) error {
	p, err := baseParameters()
	if err != nil {
		return err
	}
	build, _, err := builder(args[0])
	if err != nil {
		return err
	}
	o, err := build(p)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVALUE\tMIN\tMAX")
	for id := range o.User().IDs() {
		par, err := p.ByID(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%g\t%g\t%g\n", id, par.Name(), par.Value(), par.Min(), par.Max())
	}
	return w.Flush()
}

func sensitivity(cmd *cobra.Command, args []string) error {
	p, err := baseParameters()
	if err != nil {
		return err
	}
	build, _, err := builder(args[0])
	if err != nil {
		return err
	}
	rows, err := optim.Sensitivities(cmd.Context(), p, build)
	if err != nil {
		return err
	}

	fmt.Printf("%s = %.6g\n\n", args[0], rows[0].Central)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tAT MIN\tAT MAX\tREL. DELTA")
	for _, s := range rows {
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.3e\n", s.Name, s.Low, s.High, s.Delta)
	}
	return w.Flush()
}

func scan(cmd *cobra.Command, args []string) error {
	p, err := baseParameters()
	if err != nil {
		return err
	}
	build, opts, err := builder(args[0])
	if err != nil {
		return err
	}

	sps := cfg.Scan.Parameters
	if len(scanParams) > 0 {
		sps = nil
		for _, s := range scanParams {
			sp, err := parseScanParam(s)
			if err != nil {
				return err
			}
			sps = append(sps, sp)
		}
	}
	if len(sps) == 0 {
		return fmt.Errorf("no scan parameters: use --param or scan.parameters in config")
	}
	axes, err := scanAxes(p, sps)
	if err != nil {
		return err
	}

	monitoring.Logf("scanning %s over %d axes with %d workers", args[0], len(axes), workers)
	res, err := optim.NewGridSearch(axes, workers).Search(cmd.Context(), p, build)
	if err != nil {
		return err
	}

	table := storage.Table{}
	for _, a := range axes {
		table.Columns = append(table.Columns, a.Name)
	}
	table.Columns = append(table.Columns, "value")
	for _, pt := range res.Points {
		table.Rows = append(table.Rows, append(slices.Clone(pt.Coords), pt.Value))
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save("scan", storage.RunMetadata{
		Observable: args[0],
		Options:    opts,
		Workers:    workers,
		Parameters: p.Snapshot(),
		Summary:    map[string]float64{"min": res.Min.Value, "max": res.Max.Value},
	}, table)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("points: %d\n", len(res.Points))
	fmt.Printf("min: %.6g at %v\n", res.Min.Value, res.Min.Coords)
	fmt.Printf("max: %.6g at %v\n", res.Max.Value, res.Max.Coords)
	return nil
}

func sample(cmd *cobra.Command, args []string) error {
	p, err := baseParameters()
	if err != nil {
		return err
	}
	build, opts, err := builder(args[0])
	if err != nil {
		return err
	}

	monitoring.Logf("sampling %s: %d samples, %d workers, seed %d", args[0], samples, workers, seed)
	res, err := sampling.New(sampling.Config{
		Samples: samples,
		Workers: workers,
		Seed:    seed,
		Vary:    vary,
	}).Run(cmd.Context(), p, build)
	if err != nil {
		return err
	}

	table := storage.Table{Columns: append(slices.Clone(res.Vary), "value")}
	for i, v := range res.Values {
		table.Rows = append(table.Rows, append(slices.Clone(res.Inputs[i]), v))
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save("sample", storage.RunMetadata{
		Observable: args[0],
		Options:    opts,
		Seed:       seed,
		Workers:    workers,
		Parameters: p.Snapshot(),
		Summary:    summaryMap(res.Summary),
	}, table)
	if err != nil {
		return err
	}

	s := res.Summary
	fmt.Printf("run: %s\n", runID)
	fmt.Printf("varied: %s\n", strings.Join(res.Vary, ", "))
	fmt.Printf("n: %d\n", s.N)
	fmt.Printf("mean: %.6g ± %.3g\n", s.Mean, s.StdDev)
	fmt.Printf("median: %.6g (68%%: [%.6g, %.6g])\n", s.Median, s.Q16, s.Q84)
	fmt.Printf("range: [%.6g, %.6g]\n", s.Min, s.Max)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tOBSERVABLE\tOPTIONS\tTIME\tROWS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			run.ID,
			run.Kind,
			run.Observable,
			observable.Options(run.Options).String(),
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	table, err := st.LoadTable(runID)
	if err != nil {
		return err
	}
	values, err := table.Column(column)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("observable: %s\n", meta.Observable)
	fmt.Printf("rows: %d\n\n", len(values))

	switch meta.Kind {
	case "scan":
		// one axis plots against it, more axes against the point index
		var xs []float64
		xlabel := "point"
		if len(table.Columns) == 2 && column != table.Columns[0] {
			xlabel = table.Columns[0]
			if xs, err = table.Column(xlabel); err != nil {
				return err
			}
		}
		graph, err := viz.CurveChart(xs, values, column+" vs "+xlabel)
		if err != nil {
			return err
		}
		fmt.Println(graph)
		if xs == nil {
			xs = make([]float64, len(values))
			for i := range xs {
				xs[i] = float64(i)
			}
		}
		if pngOut != "" {
			if err := viz.SaveCurvePNG(xs, values, meta.Observable, xlabel, column, pngOut); err != nil {
				return err
			}
		}
		if htmlOut != "" {
			if err := writeFile(htmlOut, func(w io.Writer) error {
				return viz.WriteCurveHTML(w, xs, values, meta.Observable, column)
			}); err != nil {
				return err
			}
		}
	default:
		counts, edges := sampling.Histogram(values, bins)
		graph, err := viz.HistogramChart(counts, edges, column+" histogram")
		if err != nil {
			return err
		}
		fmt.Println(graph)
		if pngOut != "" {
			if err := viz.SaveHistogramPNG(finiteValues(values), bins, meta.Observable, column, pngOut); err != nil {
				return err
			}
		}
		if htmlOut != "" {
			if err := writeFile(htmlOut, func(w io.Writer) error {
				return viz.WriteHistogramHTML(w, counts, edges, meta.Observable)
			}); err != nil {
				return err
			}
		}
	}
	for _, f := range []string{pngOut, htmlOut} {
		if f != "" {
			fmt.Printf("wrote %s\n", f)
		}
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func browse(cmd *cobra.Command, args []string) error {
	p, err := baseParameters()
	if err != nil {
		return err
	}
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	opts, err := observableOptions(name)
	if err != nil {
		return err
	}
	return viz.RunBrowser(registry, p, opts, name)
}
