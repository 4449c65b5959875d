package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hanjihoon73/lawquiz/internal/catalog"
	"github.com/hanjihoon73/lawquiz/internal/communitystats"
	"github.com/hanjihoon73/lawquiz/internal/lifecycle"
	"github.com/hanjihoon73/lawquiz/internal/progression"
	"github.com/hanjihoon73/lawquiz/internal/quizbank"
	"github.com/hanjihoon73/lawquiz/internal/store"
	"github.com/hanjihoon73/lawquiz/internal/unlock"
)

var rootCmd = &cobra.Command{
	Use:   "lawquiz",
	Short: "Constitutional-law quiz trainer",
	Long:  "Lawquiz — work through ordered quizpacks of constitutional-law questions, one unlock at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env next to the binary is optional; real env vars win.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LAWQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "User id (overrides LAWQUIZ_USER env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Verbose logging")

	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(abortCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LAWQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUser returns the opaque user id from --user, then LAWQUIZ_USER,
// then a local default.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("LAWQUIZ_USER"); u != "" {
		return u
	}
	return "local"
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

// core bundles the opened store and the wired progression services for a
// single command invocation.
type core struct {
	store  *store.Store
	coord  *progression.Coordinator
	view   *catalog.Service
	stats  *communitystats.Writer
	userID string
	log    *zap.Logger
}

func (c *core) Close() {
	c.store.Close()
	_ = c.log.Sync()
}

// openCore opens the store and wires the progression core for a command.
func openCore(cmd *cobra.Command) (*core, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	log, err := newLogger(cmd)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build logger: %w", err)
	}

	progress := st.ProgressRepo()
	answers := st.AnswerRepo()
	cat := st.CatalogRepo()
	bank := st.BankRepo()

	lc := lifecycle.NewService(progress, answers, cat, bank, log)
	engine := unlock.NewEngine(progress, cat, bank, log)
	reader := quizbank.NewReader(bank)
	writer := communitystats.NewWriter(st.StatsRepo(), log)
	coord := progression.NewCoordinator(progress, answers, lc, engine, reader, writer, log)
	view := catalog.NewService(progress, cat, bank, st.StatsRepo())

	return &core{
		store:  st,
		coord:  coord,
		view:   view,
		stats:  writer,
		userID: resolveUser(cmd),
		log:    log,
	}, nil
}
