package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/odelab/internal/analysis"
	"github.com/san-kum/odelab/internal/config"
	"github.com/san-kum/odelab/internal/experiment"
	"github.com/san-kum/odelab/internal/fractal"
	"github.com/san-kum/odelab/internal/ivp"
	"github.com/san-kum/odelab/internal/rootfind"
	"github.com/san-kum/odelab/internal/stats"
	"github.com/san-kum/odelab/internal/store"
	"github.com/san-kum/odelab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	method     string
	x0Flag     string
	t0         float64
	t1         float64
	samples    int
	configFile string
	preset     string
	// Plot axes
	component int
	// Convergence study
	baseN  int
	levels int
	// Root finding
	rootFn   string
	lower    float64
	upper    float64
	guess    float64
	guess2   float64
	tol      float64
	maxIters int
	// Fractal
	cre      float64
	cim      float64
	width    int
	height   int
	outFile  string
	// Frame rate for live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "odelab",
		Short: "fixed-step ODE integration lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odelab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "solve an initial value problem",
		Args:  cobra.ExactArgs(1),
		RunE:  solveProblem,
	}
	solveCmd.Flags().StringVar(&method, "method", "heun", "integration method")
	solveCmd.Flags().Float64Var(&t0, "t0", 0.0, "start time")
	solveCmd.Flags().Float64Var(&t1, "t1", 10.0, "end time")
	solveCmd.Flags().IntVar(&samples, "samples", 32, "number of grid points")
	solveCmd.Flags().StringVar(&x0Flag, "x0", "", "initial state override, comma separated")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file (YAML)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "preset name")

	compareCmd := &cobra.Command{
		Use:   "compare [problem] [method...]",
		Short: "compare integration methods on one problem",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareMethods,
	}
	compareCmd.Flags().Float64Var(&t0, "t0", 0.0, "start time")
	compareCmd.Flags().Float64Var(&t1, "t1", 10.0, "end time")
	compareCmd.Flags().IntVar(&samples, "samples", 32, "number of grid points")

	convergeCmd := &cobra.Command{
		Use:   "converge [problem]",
		Short: "run a step-halving convergence study",
		Args:  cobra.ExactArgs(1),
		RunE:  convergeStudy,
	}
	convergeCmd.Flags().StringVar(&method, "method", "heun", "integration method")
	convergeCmd.Flags().Float64Var(&t0, "t0", 0.0, "start time")
	convergeCmd.Flags().Float64Var(&t1, "t1", 10.0, "end time")
	convergeCmd.Flags().IntVar(&baseN, "base", 51, "coarsest sample count")
	convergeCmd.Flags().IntVar(&levels, "levels", 5, "number of refinements")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&component, "component", 0, "state component to plot")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				return fmt.Errorf("no presets for problem: %s", args[0])
			}
			for _, name := range names {
				p := config.GetPreset(args[0], name)
				fmt.Printf("%-12s method=%s t=[%g,%g] samples=%d\n",
					name, p.Method, p.T0, p.T1, p.Samples)
			}
			return nil
		},
	}

	rootsCmd := &cobra.Command{
		Use:   "roots",
		Short: "find a root of a sample function",
		RunE:  findRoot,
	}
	rootsCmd.Flags().StringVar(&method, "method", "bisection", "bisection, newton, secant or steffensen")
	rootsCmd.Flags().StringVar(&rootFn, "fn", "quadratic", "sample function: quadratic, cosfix, cubic")
	rootsCmd.Flags().Float64Var(&lower, "lower", 0.0, "bracket lower bound (bisection)")
	rootsCmd.Flags().Float64Var(&upper, "upper", 2.0, "bracket upper bound (bisection)")
	rootsCmd.Flags().Float64Var(&guess, "guess", 1.0, "initial guess (newton, secant)")
	rootsCmd.Flags().Float64Var(&guess2, "guess2", 2.0, "second guess (secant)")
	rootsCmd.Flags().Float64Var(&tol, "tol", 0.0, "tolerance (0 = default)")
	rootsCmd.Flags().IntVar(&maxIters, "max-iters", 0, "iteration budget (0 = default)")

	fractalCmd := &cobra.Command{
		Use:   "fractal",
		Short: "render a Julia set escape-time image",
		RunE:  renderFractal,
	}
	fractalCmd.Flags().Float64Var(&cre, "cre", -0.8, "real part of c")
	fractalCmd.Flags().Float64Var(&cim, "cim", 0.156, "imaginary part of c")
	fractalCmd.Flags().IntVar(&width, "width", 800, "image width")
	fractalCmd.Flags().IntVar(&height, "height", 800, "image height")
	fractalCmd.Flags().StringVar(&outFile, "out", "julia.png", "output file")

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "watch a solve step by step",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&method, "method", "heun", "integration method")
	liveCmd.Flags().Float64Var(&t0, "t0", 0.0, "start time")
	liveCmd.Flags().Float64Var(&t1, "t1", 10.0, "end time")
	liveCmd.Flags().IntVar(&samples, "samples", 256, "number of grid points")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frames per second")

	rootCmd.AddCommand(solveCmd, compareCmd, convergeCmd, listCmd, plotCmd,
		exportCmd, exportCSVCmd, presetsCmd, rootsCmd, fractalCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func solveProblem(cmd *cobra.Command, args []string) error {
	problem := args[0]
	params := map[string]float64{}

	// Load preset if specified
	if preset != "" {
		cfg := config.GetPreset(problem, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(problem))
		}
		method = cfg.Method
		t0 = cfg.T0
		t1 = cfg.T1
		samples = cfg.Samples
		for k, v := range cfg.Params {
			params[k] = v
		}
	}

	// Load config file if specified (CLI flags override config)
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("method") {
			method = cfg.Method
		}
		if !cmd.Flags().Changed("t0") {
			t0 = cfg.T0
		}
		if !cmd.Flags().Changed("t1") {
			t1 = cfg.T1
		}
		if !cmd.Flags().Changed("samples") {
			samples = cfg.Samples
		}
		if x0Flag == "" && len(cfg.X0) > 0 {
			x0Flag = formatState(cfg.X0)
		}
		for k, v := range cfg.Params {
			params[k] = v
		}
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()

	prob, err := registry.GetProblem(problem)
	if err != nil {
		return err
	}
	stepper, err := registry.GetStepper(method)
	if err != nil {
		return err
	}

	var x0 ivp.State
	if x0Flag != "" {
		x0, err = parseState(x0Flag)
		if err != nil {
			return err
		}
	}

	exp := experiment.New(experiment.Config{
		Problem: problem,
		Method:  method,
		T0:      t0,
		T1:      t1,
		Samples: samples,
		Params:  params,
		X0:      x0,
	})

	// Error metrics compare against the analytic solution through the
	// default initial condition, so they only apply when it is in use.
	ms := registry.DefaultMetrics(prob)
	if x0 != nil {
		ms = nil
	}
	if err := exp.Setup(prob, stepper, ms); err != nil {
		return err
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	exact := exp.Exact()
	if x0 != nil {
		exact = nil
	}
	runID, err := st.Save(problem, method, t0, t1, result, exact)
	if err != nil {
		return err
	}

	fmt.Printf("run %s: %s with %s, %d points on [%g, %g]\n",
		runID, problem, method, samples, t0, t1)
	fmt.Printf("steps taken: %d\n", result.StepsTaken)
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Printf("  %-12s %.6g\n", name, result.Metrics[name])
	}
	for _, e := range result.Errors {
		fmt.Printf("  warning: %v\n", e)
	}
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	problem := args[0]
	registry := experiment.NewRegistry()

	methods := args[1:]
	if len(methods) == 0 {
		methods = registry.ListSteppers()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHOD\tMAX_ERROR\tRMSE\tFINAL_ERROR")

	var maxErrs []float64
	for _, name := range methods {
		prob, err := registry.GetProblem(problem)
		if err != nil {
			return err
		}
		stepper, err := registry.GetStepper(name)
		if err != nil {
			return err
		}

		exp := experiment.New(experiment.Config{
			Problem: problem,
			Method:  name,
			T0:      t0,
			T1:      t1,
			Samples: samples,
		})
		if err := exp.Setup(prob, stepper, registry.DefaultMetrics(prob)); err != nil {
			return err
		}
		result, err := exp.Run(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%.6g\t%.6g\t%.6g\n", name,
			result.Metrics["max_error"], result.Metrics["rmse"], result.Metrics["final_error"])
		maxErrs = append(maxErrs, result.Metrics["max_error"])
	}
	w.Flush()

	if mean, err := stats.Mean(maxErrs); err == nil {
		median, _ := stats.Median(stats.SortedCopy(maxErrs))
		best, _ := stats.Min(maxErrs)
		fmt.Printf("\nmax error across methods: mean=%.6g median=%.6g best=%.6g\n",
			mean, median, best)
	}
	return nil
}

func convergeStudy(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	prob, err := registry.GetProblem(args[0])
	if err != nil {
		return err
	}

	if _, err := registry.GetStepper(method); err != nil {
		return err
	}
	mk := func() ivp.Stepper {
		st, _ := registry.GetStepper(method)
		return st
	}

	study, err := analysis.Convergence(mk, prob, prob.InitialState(), t0, t1, baseN, levels)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SAMPLES\tSTEP\tMAX_ERROR\tORDER")
	for i, lvl := range study {
		if i == 0 {
			fmt.Fprintf(w, "%d\t%.6g\t%.6g\t-\n", lvl.Samples, lvl.StepSize, lvl.MaxError)
			continue
		}
		fmt.Fprintf(w, "%d\t%.6g\t%.6g\t%.2f\n", lvl.Samples, lvl.StepSize, lvl.MaxError, lvl.Order)
	}
	w.Flush()

	fmt.Printf("\nobserved order of %s: %.2f\n", method, analysis.ObservedOrder(study))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tMETHOD\tSAMPLES\tMAX_ERROR\tTIMESTAMP")
	for _, run := range runs {
		maxErr := "-"
		if v, ok := run.Metrics["max_error"]; ok {
			maxErr = fmt.Sprintf("%.6g", v)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
			run.ID, run.Problem, run.Method, run.Samples, maxErr,
			run.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(traj.States) == 0 {
		return fmt.Errorf("run %s has no trajectory", args[0])
	}
	if component < 0 || component >= len(traj.States[0]) {
		return fmt.Errorf("component %d out of range for %d-dimensional state",
			component, len(traj.States[0]))
	}

	caption := fmt.Sprintf("%s / %s, component %d", meta.Problem, meta.Method, component)
	numeric := viz.Series(traj.States, component)
	if len(traj.Exact) > 0 {
		fmt.Println(viz.Compare(numeric, viz.Series(traj.Exact, component), caption))
	} else {
		fmt.Println(viz.Plot(numeric, caption))
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	result := &ivp.Result{
		Times:      traj.Times,
		States:     traj.States,
		Metrics:    meta.Metrics,
		StepsTaken: len(traj.Times) - 1,
	}
	return store.ExportJSON(os.Stdout, meta.Problem, meta.Method, meta.T0, meta.T1,
		result, traj.Exact)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)

	traj, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(traj.States) == 0 {
		return fmt.Errorf("run %s has no trajectory", args[0])
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	dim := len(traj.States[0])
	header := []string{"time"}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if len(traj.Exact) > 0 {
		for i := 0; i < dim; i++ {
			header = append(header, fmt.Sprintf("exact%d", i))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range traj.States {
		row := []string{strconv.FormatFloat(traj.Times[i], 'g', 17, 64)}
		for _, val := range traj.States[i] {
			row = append(row, strconv.FormatFloat(val, 'g', 17, 64))
		}
		if len(traj.Exact) > 0 {
			for _, val := range traj.Exact[i] {
				row = append(row, strconv.FormatFloat(val, 'g', 17, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func findRoot(cmd *cobra.Command, args []string) error {
	f, df, err := sampleFunction(rootFn)
	if err != nil {
		return err
	}

	cfg := rootfind.Config{Tolerance: tol, MaxIterations: maxIters}

	var root float64
	switch method {
	case "bisection":
		root, err = rootfind.Bisection(f, lower, upper, cfg)
	case "newton":
		root, err = rootfind.Newton(f, df, guess, cfg)
	case "secant":
		root, err = rootfind.Secant(f, guess, guess2, cfg)
	case "steffensen":
		root, err = rootfind.Steffensen(f, guess, cfg)
	default:
		return fmt.Errorf("unknown method: %s (bisection, newton, secant, steffensen)", method)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s root of %s: %.15g (residual %.3g)\n", method, rootFn, root, f(root))
	return nil
}

func renderFractal(cmd *cobra.Command, args []string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	c := complex(cre, cim)
	if err := fractal.WritePNG(f, c, width, height); err != nil {
		return err
	}
	fmt.Printf("wrote %dx%d Julia set for c = %g%+gi to %s\n", width, height, cre, cim, outFile)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	registry := experiment.NewRegistry()

	prob, err := registry.GetProblem(args[0])
	if err != nil {
		return err
	}
	stepper, err := registry.GetStepper(method)
	if err != nil {
		return err
	}
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples")
	}

	dt := (t1 - t0) / float64(samples-1)
	model := viz.NewLive(prob, stepper, prob.InitialState(), t0, t1, dt, args[0], method, frameRate)
	_, err = tea.NewProgram(model).Run()
	return err
}

func formatState(xs []float64) string {
	parts := make([]string, len(xs))
	for i, v := range xs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// parseState reads a comma separated float list into a state vector.
func parseState(s string) (ivp.State, error) {
	parts := strings.Split(s, ",")
	out := make(ivp.State, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad initial state %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// sampleFunction maps a name to a demo function and its derivative.
func sampleFunction(name string) (f, df func(float64) float64, err error) {
	switch strings.ToLower(name) {
	case "quadratic":
		return func(x float64) float64 { return x*x - 2.0 },
			func(x float64) float64 { return 2.0 * x }, nil
	case "cosfix":
		return func(x float64) float64 { return math.Cos(x) - x },
			func(x float64) float64 { return -math.Sin(x) - 1.0 }, nil
	case "cubic":
		return func(x float64) float64 { return x*x*x - x - 2.0 },
			func(x float64) float64 { return 3.0*x*x - 1.0 }, nil
	default:
		return nil, nil, fmt.Errorf("unknown function: %s (quadratic, cosfix, cubic)", name)
	}
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
