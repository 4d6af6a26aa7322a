package main

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sortviz/internal/bench"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sortalg"
	"github.com/san-kum/sortviz/internal/stepper"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/san-kum/sortviz/internal/viz"
)

const demoSize = 30

var demoWords = []string{
	"pear", "apple", "quince", "fig", "banana", "kiwi", "mango", "cherry",
	"date", "lime", "grape", "plum", "lemon", "papaya", "melon", "olive",
}

func newSession[T cmp.Ordered](cfg *config.Config) (*session.Session[T], error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}
	ord, err := cfg.SortOrder()
	if err != nil {
		return nil, err
	}
	return session.New[T](
		session.WithKind(kind),
		session.WithOrder(ord),
		session.WithSpeed(cfg.SpeedValue()),
		session.WithSeed(cfg.Seed),
		session.WithLogger(log.StandardLogger()),
	), nil
}

// loadFile reads path as ints or strings depending on T.
func loadFile[T cmp.Ordered](path string) (*dataset.Dataset[T], error) {
	var (
		ds  any
		err error
	)
	switch any(*new(T)).(type) {
	case string:
		ds, err = dataset.LoadStrings(path)
	default:
		ds, err = dataset.LoadInts(path)
	}
	if err != nil {
		return nil, err
	}
	return ds.(*dataset.Dataset[T]), nil
}

func demoData[T cmp.Ordered](rng *rand.Rand) []T {
	var out any
	switch any(*new(T)).(type) {
	case string:
		words := slices.Clone(demoWords)
		rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
		out = words
	default:
		out = bench.RandomInts(demoSize, rng)
	}
	return out.([]T)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	if cfg.ElementType() == dataset.Strings {
		return live[string](cfg, path)
	}
	return live[int](cfg, path)
}

func live[T cmp.Ordered](cfg *config.Config, path string) error {
	logFile, err := redirectLogs(cfg.DataDir)
	if err != nil {
		return err
	}
	defer logFile.Close()

	sess, err := newSession[T](cfg)
	if err != nil {
		return err
	}

	var loader viz.Loader[T]
	if path != "" {
		loader = func() (string, []T, error) {
			ds, err := loadFile[T](path)
			if err != nil {
				return "", nil, err
			}
			return ds.Name, ds.Values, nil
		}
		name, values, err := loader()
		if err != nil {
			return err
		}
		if err := sess.LoadDataset(name, values); err != nil {
			return err
		}
	} else {
		if err := sess.LoadDataset("demo", demoData[T](rand.New(rand.NewSource(cfg.Seed)))); err != nil {
			return err
		}
	}

	m := viz.NewModel(sess, loader, cfg.Theme, cfg.Limit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var onStart func(p *tea.Program)
	if cfg.Watch && path != "" {
		onStart = func(p *tea.Program) {
			go func() {
				err := dataset.Watch(ctx, path, func() { p.Send(viz.ReloadMsg{}) })
				if err != nil {
					log.WithError(err).Warn("dataset watch stopped")
				}
			}()
		}
	}
	return viz.Run(m, onStart)
}

// redirectLogs sends log output to <dir>/sortviz.log while the TUI owns the
// terminal.
func redirectLogs(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "sortviz.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.ElementType() == dataset.Strings {
		return sortFile[string](cfg, args[0])
	}
	return sortFile[int](cfg, args[0])
}

func sortFile[T cmp.Ordered](cfg *config.Config, path string) error {
	ds, err := loadFile[T](path)
	if err != nil {
		return err
	}
	sess, err := newSession[T](cfg)
	if err != nil {
		return err
	}
	if err := sess.LoadDataset(ds.Name, ds.Values); err != nil {
		return err
	}

	sum, err := sess.Summary()
	if err != nil {
		return err
	}
	fmt.Print(viz.FormatSummary(sum, cfg.Limit))

	if !save {
		return nil
	}
	res, err := sess.Result()
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := storage.SaveResult(st, ds.Name, cfg.Elements, cfg.Seed, res)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved: %s\n", runID)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.ElementType() == dataset.Strings {
		return trace[string](cfg, args[0])
	}
	return trace[int](cfg, args[0])
}

func trace[T cmp.Ordered](cfg *config.Config, path string) error {
	ds, err := loadFile[T](path)
	if err != nil {
		return err
	}
	ord, err := cfg.SortOrder()
	if err != nil {
		return err
	}
	vis, err := stepper.New(ds.Values, ord)
	if err != nil {
		return err
	}
	frames, err := vis.Run()
	if err != nil {
		return err
	}

	if svgFile != "" && len(frames) > 0 {
		svg := export.SnapshotToSVG(frames[len(frames)-1], viz.GetTheme(cfg.Theme), 800, 300)
		if err := export.WriteFile(svgFile, svg); err != nil {
			return err
		}
		log.WithField("file", svgFile).Info("final frame written")
	}

	if asJSON || outFile != "" {
		te := storage.NewTraceExport(ds.Name, ord.String(), ds.Values, frames)
		if outFile != "" {
			if err := storage.ExportTrace(outFile, te); err != nil {
				return err
			}
			fmt.Printf("exported %d steps to %s\n", len(frames), outFile)
			return nil
		}
		return storage.WriteTrace(os.Stdout, te)
	}

	if ascii {
		r := viz.NewPlainRenderer(os.Stdout, 60, 12, animate, cfg.SpeedValue().Delay())
		r.Start()
		defer r.Stop()
		for i, snap := range frames {
			if err := viz.Render(r, i+1, snap); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Printf("%s: bubble sort, %s, %d elements\n", ds.Name, ord, len(ds.Values))
	fmt.Printf("start: %s\n", viz.FormatSequence(ds.Values, cfg.Limit))
	for i, snap := range frames {
		fmt.Printf("%4d  (%d, %d)  %-9s  %s\n", i+1, snap.Cursor.Outer, snap.Cursor.Inner,
			snap.State, viz.FormatSequence(snap.Values, cfg.Limit))
	}
	if len(frames) > 0 {
		fmt.Printf("%s\n", frames[len(frames)-1].Stats)
	}
	return nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.ElementType() == dataset.Strings {
		return compareAll[string](cfg, args[0])
	}
	return compareAll[int](cfg, args[0])
}

func compareAll[T cmp.Ordered](cfg *config.Config, path string) error {
	ds, err := loadFile[T](path)
	if err != nil {
		return err
	}
	ord, err := cfg.SortOrder()
	if err != nil {
		return err
	}

	kinds := sortalg.Kinds()
	results := make([]*sortalg.Result[T], len(kinds))
	var g errgroup.Group
	for i, k := range kinds {
		g.Go(func() error {
			res, err := sortalg.Run(k, ds.Values, ord, rand.New(rand.NewSource(cfg.Seed)))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	registry := sortalg.NewRegistry()
	fmt.Printf("comparing algorithms on %s (%d elements, %s)\n\n", ds.Name, len(ds.Values), ord)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tTIME (ms)\tCOMPARISONS\tSWAPS\tPASSES\tAGREES")
	disagree := 0
	for i, res := range results {
		agrees := slices.Equal(res.Sorted, results[0].Sorted)
		if !agrees {
			disagree++
		}
		fmt.Fprintf(w, "%s\t%.3f\t%d\t%d\t%d\t%v\n", registry.Title(kinds[i]), res.Millis(),
			res.Stats.Comparisons, res.Stats.Swaps, res.Stats.Passes, agrees)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if disagree > 0 {
		return fmt.Errorf("%d algorithms disagree with %s", disagree, kinds[0])
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ord, err := cfg.SortOrder()
	if err != nil {
		return err
	}

	bc := bench.DefaultConfig()
	bc.Order = ord
	bc.Seed = cfg.Seed
	bc.Repeats = repeats
	if len(sizes) > 0 {
		bc.Sizes = sizes
	}
	if workers > 0 {
		bc.Workers = workers
	}

	fmt.Printf("benchmarking %d algorithms on sizes %v (best of %d)\n\n", len(bc.Kinds), bc.Sizes, bc.Repeats)
	rep, err := bench.Sweep(cmd.Context(), bc)
	if err != nil {
		return err
	}

	fmt.Println(bench.Plot(rep, 70, 15))
	fmt.Print(bench.Table(rep))
	if svgFile != "" {
		if err := export.WriteFile(svgFile, timingSVG(rep)); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgFile)
	}
	if k, ok := bench.Fastest(rep); ok {
		fmt.Printf("\nfastest at %d: %s\n", rep.Sizes[len(rep.Sizes)-1], sortalg.NewRegistry().Title(k))
	}
	return nil
}

var svgColors = []string{"#ff4444", "#ffc107", "#28a745", "#4682b4", "#b48ad6", "#00ffff"}

func timingSVG(rep *bench.Report) string {
	series := make([]export.Series, 0, len(rep.Kinds))
	for i, k := range rep.Kinds {
		s := export.Series{Name: k.String(), Color: svgColors[i%len(svgColors)]}
		for _, p := range rep.Series[k] {
			s.Points = append(s.Points, export.Point{X: float64(p.Size), Y: p.Millis()})
		}
		series = append(series, s)
	}
	return export.SeriesToSVG(series, 800, 400)
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	st := storage.New(cfg.DataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATASET\tTIME\tALGO\tORDER\tSIZE\tSECONDS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%.6f\n",
			run.ID,
			run.Dataset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Algorithm,
			run.Order,
			run.Size,
			run.Seconds,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(cfg.DataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	original, sorted, err := st.LoadValues(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run:       %s\n", meta.ID)
	fmt.Printf("dataset:   %s (%s, %d elements)\n", meta.Dataset, meta.Elements, meta.Size)
	fmt.Printf("algorithm: %s, %s\n", meta.Algorithm, meta.Order)
	fmt.Printf("time:      %.9f s\n", meta.Seconds)
	fmt.Printf("work:      %s\n", meta.Stats)
	fmt.Printf("\nOriginal:\n%s\n", viz.FormatSequence(original, cfg.Limit))
	fmt.Printf("\nSorted:\n%s\n", viz.FormatSequence(sorted, cfg.Limit))
	return nil
}
