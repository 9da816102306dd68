package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursemap/internal/catalog"
	"github.com/abhisek/coursemap/internal/config"
	"github.com/abhisek/coursemap/internal/llm"
	"github.com/abhisek/coursemap/internal/loader"
	"github.com/abhisek/coursemap/internal/logger"
	"github.com/abhisek/coursemap/internal/metrics"
	"github.com/abhisek/coursemap/internal/quiz"
	"github.com/abhisek/coursemap/internal/store"
	"github.com/abhisek/coursemap/internal/summarizer"
)

var rootCmd = &cobra.Command{
	Use:   "coursemap",
	Short: "Course catalog, progress tracker and study assistant",
	Long: "coursemap tracks progress through a course of dependent modules, " +
		"indexes its learning resources and summarizes modules with an LLM.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides COURSEMAP_DB)")
	pf.String("config", "", "Path to YAML config file (overrides COURSEMAP_CONFIG)")
	pf.String("catalog", "", "Catalog data file replacing the built-in course")
	pf.String("resources", "", "Resources data file replacing the built-in list")
	pf.String("log", "", "Log mode: dev or prod")
	pf.Bool("strict", false, "Fail on inconsistent module status or unknown resource modules")

	rootCmd.AddCommand(moduleCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resourceCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig layers the persistent flags over config.Load.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	overrides := &config.Config{}
	overrides.DB.Path, _ = cmd.Flags().GetString("db")
	overrides.Data.Catalog, _ = cmd.Flags().GetString("catalog")
	overrides.Data.Resources, _ = cmd.Flags().GetString("resources")
	overrides.Log.Mode, _ = cmd.Flags().GetString("log")
	overrides.Data.Strict, _ = cmd.Flags().GetBool("strict")
	cfg.Merge(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runtime is what most commands need: config, logger, store and the
// course data with stored progress applied.
type runtime struct {
	cfg     *config.Config
	log     *logger.Logger
	store   *store.Store
	catalog *catalog.Catalog
	data    *loader.Result
}

type setupOptions struct {
	// logToStderr is for the server. Other commands log to a file so their
	// output stays clean.
	logToStderr bool
}

func setup(cmd *cobra.Command, opts setupOptions) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := store.EnsureDir(cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	log, err := newLogger(cfg, opts.logToStderr)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.DB.Path)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	rt := &runtime{cfg: cfg, log: log, store: st}
	if err := rt.reload(cmd.Context()); err != nil {
		rt.Close()
		return nil, err
	}
	return rt, nil
}

// reload rebuilds the catalog from the data files and stored progress.
func (rt *runtime) reload(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	recs, err := rt.store.ProgressRepo().All(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	data, err := loader.Load(loader.Options{
		CatalogPath:   rt.cfg.Data.Catalog,
		ResourcesPath: rt.cfg.Data.Resources,
		Progress:      progressUpdates(recs),
		Strict:        rt.cfg.Data.Strict,
		Logger:        rt.log,
	})
	if err != nil {
		return err
	}
	rt.data = data
	rt.catalog = data.Catalog
	return nil
}

func (rt *runtime) Close() {
	rt.store.Close()
	rt.log.Sync()
}

// quizzes builds the quiz service over the built-in quizzes.
func (rt *runtime) quizzes() (*quiz.Service, error) {
	return quiz.NewService(rt.store.QuizRepo(), quiz.DefaultQuizzes())
}

// summarizer builds the summarizer, or returns the reason no provider is
// configured. m may be nil.
func (rt *runtime) summarizer(ctx context.Context, m *metrics.Metrics) (*summarizer.Service, error) {
	if rt.cfg.LLMErr != nil {
		return nil, rt.cfg.LLMErr
	}
	opts := []llm.Option{
		llm.WithEventRepo(rt.store.EventRepo()),
		llm.WithLogger(rt.log),
	}
	if m != nil {
		opts = append(opts, llm.WithObserver(m))
	}
	provider, err := llm.NewProvider(ctx, rt.cfg.LLM, opts...)
	if err != nil {
		return nil, err
	}
	cfg := summarizer.Config{
		MaxTokens:   rt.cfg.Summarizer.MaxTokens,
		Temperature: rt.cfg.Summarizer.Temperature,
	}
	return summarizer.NewService(provider, cfg, rt.store.EventRepo(), summarizer.WithLogger(rt.log)), nil
}

// newLogger writes to cfg.Log.File when set. Otherwise the server logs to
// stderr and everything else to coursemap.log beside the database.
func newLogger(cfg *config.Config, toStderr bool) (*logger.Logger, error) {
	switch {
	case cfg.Log.File != "":
		return logger.New(cfg.Log.Mode, cfg.Log.File)
	case toStderr:
		return logger.New(cfg.Log.Mode)
	default:
		return logger.New(cfg.Log.Mode, filepath.Join(filepath.Dir(cfg.DB.Path), "coursemap.log"))
	}
}

// progressUpdates turns stored rows into the loader's overlay.
func progressUpdates(recs []store.ProgressRecord) map[string]catalog.ProgressUpdate {
	out := make(map[string]catalog.ProgressUpdate, len(recs))
	for _, r := range recs {
		out[r.ModuleID] = catalog.ProgressUpdate{
			Status:   catalog.Status(r.Status),
			Progress: r.Progress,
			Score:    r.Score,
		}
	}
	return out
}
