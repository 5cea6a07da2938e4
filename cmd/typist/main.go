package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/isbosykh/typist/internal/config"
	"github.com/isbosykh/typist/internal/curve"
	"github.com/isbosykh/typist/internal/engine"
	"github.com/isbosykh/typist/internal/script"
	"github.com/isbosykh/typist/internal/trace"
	"github.com/isbosykh/typist/internal/tui"
)

var (
	dataDir string
	// run flags
	texts      []string
	typeSpeed  int
	backSpeed  int
	startDelay int
	backDelay  int
	loop       bool
	noCursor   bool
	cursorChar string
	curvature  string
	configFile string
	preset     string
	record     bool
	// curves flags
	curveSpeed int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "typist",
		Short: "typewriter text animation for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive preset menu when no command given
			return tui.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".typist", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "animate a string sequence",
		RunE:  runAnimation,
	}
	runCmd.Flags().StringArrayVar(&texts, "text", nil, "string to type (repeatable)")
	runCmd.Flags().IntVar(&typeSpeed, "type-speed", config.DefaultTypeSpeedMs, "base delay per typed character (ms)")
	runCmd.Flags().IntVar(&backSpeed, "back-speed", config.DefaultBackSpeedMs, "delay per erased character (ms)")
	runCmd.Flags().IntVar(&startDelay, "start-delay", 0, "delay before the first character (ms)")
	runCmd.Flags().IntVar(&backDelay, "back-delay", config.DefaultBackDelayMs, "pause before erasing a typed string (ms)")
	runCmd.Flags().BoolVar(&loop, "loop", false, "wrap to the first string after the last")
	runCmd.Flags().BoolVar(&noCursor, "no-cursor", false, "disable the blinking cursor")
	runCmd.Flags().StringVar(&cursorChar, "cursor", config.DefaultCursorChar, "cursor glyph")
	runCmd.Flags().StringVar(&curvature, "curvature", config.DefaultCurvature, "speed curve: linear|bezier|exponential|sine")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&record, "record", false, "save the run's step timeline")

	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "plot the per-character delay of each speed curve",
		RunE:  plotCurves,
	}
	curvesCmd.Flags().IntVar(&curveSpeed, "speed", config.DefaultTypeSpeedMs, "base type speed (ms)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE:  listPresets,
	}

	playCmd := &cobra.Command{
		Use:   "play [scenario.yaml]",
		Short: "run a scripted scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  playScenario,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	rootCmd.AddCommand(runCmd, curvesCmd, presetsCmd, playCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	case preset != "":
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (see `typist presets`)", preset)
		}
		c := *p
		cfg = &c
	default:
		cfg = config.DefaultConfig()
	}

	if len(texts) > 0 {
		cfg.Strings = texts
	}
	if cmd.Flags().Changed("type-speed") {
		cfg.TypeSpeedMs = typeSpeed
	}
	if cmd.Flags().Changed("back-speed") {
		cfg.BackSpeedMs = backSpeed
	}
	if cmd.Flags().Changed("start-delay") {
		cfg.StartDelayMs = startDelay
	}
	if cmd.Flags().Changed("back-delay") {
		cfg.BackDelayMs = backDelay
	}
	if cmd.Flags().Changed("loop") {
		cfg.Loop = loop
	}
	if cmd.Flags().Changed("no-cursor") {
		show := !noCursor
		cfg.ShowCursor = &show
	}
	if cmd.Flags().Changed("cursor") {
		cfg.CursorChar = cursorChar
	}
	if cmd.Flags().Changed("curvature") {
		cfg.Curvature = curvature
	}

	if len(cfg.Strings) == 0 {
		return nil, fmt.Errorf("nothing to type: pass --text, --preset or --config")
	}
	return cfg, nil
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if !record {
		return tui.Run(cfg)
	}

	rec := trace.NewRecorder()
	if err := tui.Run(cfg, engine.WithObserver(rec)); err != nil {
		return err
	}

	store := trace.NewStore(dataDir)
	if err := store.Init(); err != nil {
		return err
	}
	runID, err := store.Save(trace.RunMetadata{
		Preset:      preset,
		TypeSpeedMs: cfg.TypeSpeedMs,
		BackSpeedMs: cfg.BackSpeedMs,
		Curvature:   cfg.Curvature,
		Strings:     cfg.Strings,
	}, rec.Frames())
	if err != nil {
		return fmt.Errorf("save trace: %w", err)
	}
	fmt.Printf("recorded %s (%d frames, %s)\n", runID, len(rec.Frames()), rec.Duration().Round(time.Millisecond))
	return nil
}

func plotCurves(cmd *cobra.Command, args []string) error {
	speed := time.Duration(curveSpeed) * time.Millisecond

	for _, c := range []curve.Curvature{curve.Linear, curve.Bezier, curve.Exponential, curve.Sine} {
		const samples = 80
		data := make([]float64, samples)
		for i := 0; i < samples; i++ {
			p := float64(i) / float64(samples)
			data[i] = float64(curve.Delay(c, speed, p)) / float64(time.Millisecond)
		}

		caption := fmt.Sprintf("%s: delay per character (ms) over string progress, base %dms", c, curveSpeed)
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tBACK\tCURVE\tLOOP\tSTRINGS")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dms\t%dms\t%s\t%v\t%s\n",
			name,
			p.TypeSpeedMs,
			p.BackSpeedMs,
			p.Curvature,
			p.Loop,
			summarize(p.Strings),
		)
	}

	return w.Flush()
}

func summarize(strs []string) string {
	if len(strs) == 0 {
		return "-"
	}
	first := strs[0]
	if len(first) > 30 {
		first = first[:27] + "..."
	}
	if len(strs) == 1 {
		return fmt.Sprintf("%q", first)
	}
	return fmt.Sprintf("%q +%d more", first, len(strs)-1)
}

func playScenario(cmd *cobra.Command, args []string) error {
	scenario, err := script.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	if scenario.Name != "" {
		fmt.Printf("%s", scenario.Name)
		if scenario.Description != "" {
			fmt.Printf(" - %s", scenario.Description)
		}
		fmt.Println()
	}

	sink := &stdoutSink{}
	defer sink.finish()
	return script.RunScenario(cmd.Context(), scenario, sink, nil)
}

// stdoutSink renders each step in place on the current terminal line.
type stdoutSink struct {
	lastLen int
}

func (s *stdoutSink) SetText(text string) {
	pad := ""
	if n := s.lastLen - len([]rune(text)); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	fmt.Printf("\r%s%s", text, pad)
	s.lastLen = len([]rune(text))
}

func (s *stdoutSink) finish() {
	fmt.Println()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := trace.NewStore(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPRESET\tCURVE\tFRAMES\tDURATION")

	for _, run := range runs {
		presetName := run.Preset
		if presetName == "" {
			presetName = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			presetName,
			run.Curvature,
			run.Frames,
			run.Duration.Round(time.Millisecond),
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	store := trace.NewStore(dataDir)
	return store.ExportJSON(os.Stdout, args[0])
}
