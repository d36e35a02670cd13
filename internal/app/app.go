package app

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"InkSight/internal/config"
	"InkSight/internal/infrastructure/llm"
	"InkSight/internal/infrastructure/storage"
	"InkSight/internal/logging"
	"InkSight/internal/ports"
	"InkSight/internal/usecase"
)

// Application wires configuration to use cases and owns shared resources.
type Application struct {
	Assistant *usecase.Assistant
	Pipeline  *usecase.Pipeline
	Seo       ports.SeoRepository
	Bookmarks ports.BookmarkRepository
	Posts     ports.PostSource

	cfg config.Config
	db  *sql.DB
}

// Options tweak how the application is assembled.
type Options struct {
	// InMemory swaps the Postgres gateway for the map-backed store.
	InMemory bool
}

// New builds a runnable application instance. The generator stays nil when
// no API key is configured; generation operations then fail as unavailable
// while the deterministic analyzers keep working.
func New(cfg config.Config, logger *slog.Logger, opts Options) (*Application, error) {
	if logger == nil {
		logger = logging.New(cfg.Logging)
	}

	var generator ports.TextGenerator
	if cfg.Gemini.APIKey != "" {
		generator = llm.NewGeminiClient(cfg.Gemini)
	} else {
		logger.Warn("no Gemini API key configured, generation operations will be unavailable")
	}

	assistant := usecase.NewAssistant(generator, logger.With("component", "assistant"))

	application := &Application{Assistant: assistant, cfg: cfg}

	if opts.InMemory || cfg.Database.DSN == "" {
		mem := storage.NewMemoryStore()
		application.Seo = mem
		application.Bookmarks = mem
		application.Posts = mem
	} else {
		db, err := sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		application.db = db
		application.Seo = storage.NewPostgresSeoRepository(db)
		application.Bookmarks = storage.NewPostgresBookmarkRepository(db)
		application.Posts = storage.NewPostgresPostSource(db)
	}

	application.Pipeline = usecase.NewPipeline(usecase.PipelineDeps{
		Source:    application.Posts,
		SeoRepo:   application.Seo,
		Assistant: assistant,
		Logger:    logger.With("component", "pipeline"),
	})

	return application, nil
}

// Close releases the database handle if one was opened.
func (a *Application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
