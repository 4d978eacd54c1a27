package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/jmallard/compass/internal/actions"
	"github.com/jmallard/compass/internal/cli"
	"github.com/jmallard/compass/internal/conversation"
	"github.com/jmallard/compass/internal/db"
	"github.com/jmallard/compass/internal/domain"
	"github.com/jmallard/compass/internal/growth"
	"github.com/jmallard/compass/internal/inrole"
	"github.com/jmallard/compass/internal/intent"
	"github.com/jmallard/compass/internal/knowledge"
	"github.com/jmallard/compass/internal/paths"
	"github.com/jmallard/compass/internal/repository"
	"github.com/jmallard/compass/internal/service"
	"github.com/jmallard/compass/internal/skills"
	"github.com/jmallard/compass/internal/transition"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env file; real environment variables win.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.compass/compass.db
	dbPath := os.Getenv("COMPASS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".compass", "compass.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	base, err := knowledge.Load()
	if err != nil {
		return fmt.Errorf("loading knowledge tables: %w", err)
	}

	// Wire repositories behind the coaching store
	store := service.NewSQLiteStore(
		repository.NewSQLiteProfileRepo(database),
		repository.NewSQLiteConversationRepo(database),
		repository.NewSQLiteProgressRepo(database),
		db.NewSQLiteUnitOfWork(database),
	)

	ids := domain.UUIDGenerator{}
	clock := domain.UTCClock{}

	engines := service.Engines{
		Paths:      paths.NewEngine(base, ids),
		Skills:     skills.NewRecommender(base),
		Actions:    actions.NewGenerator(ids, clock),
		Growth:     growth.NewBuilder(ids, clock),
		Transition: transition.NewAdvisor(base),
		InRole:     inrole.NewAdvisor(),
	}

	cfg := conversation.LoadConfig()
	manager := conversation.NewManager(cfg, conversation.NewMemorySessionStore(), ids, clock)

	var observers []service.UseCaseObserver
	if os.Getenv("COMPASS_LOG_USE_CASES") == "true" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	coach := service.NewCoachService(
		store,
		manager,
		conversation.NewFormatter(),
		intent.NewRecognizer(base),
		engines,
		cfg,
		clock,
		observers...,
	)

	app := &cli.App{
		Coach: coach,
		Store: store,
		Paths: engines.Paths,
	}

	// Detect interactive terminal for the chat TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
