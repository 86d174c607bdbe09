package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofiber/template/html/v2"
	"github.com/latestcomment/truthlens/internal/config"
	"github.com/latestcomment/truthlens/internal/handlers"
	"github.com/latestcomment/truthlens/internal/lexicon"
	"github.com/latestcomment/truthlens/internal/logging"
	"github.com/latestcomment/truthlens/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	port    string
	verbose bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "truthlens",
	Short: "Misinformation detection demo server",
	Long: `truthlens scores submitted news text with a keyword or sentiment heuristic,
searches the web for corroborating sources and combines both into a verdict.

Run without arguments to start the web server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if port != "" {
			cfg.Port = port
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		var err error
		logger, err = logging.New(level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(serveCmd)
}

type deps struct {
	analyzer  *services.AnalyzeService
	explainer *services.ExplainService
	suggester *services.SuggestionService
	news      *services.NewsService
	feed      *services.FeedService
}

func buildServices(cfg config.Config, logger *zap.Logger) (*deps, error) {
	lex, err := lexicon.Load(cfg.LexiconFile)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: cfg.UpstreamTimeout}

	evidence := services.NewEvidenceService(client, services.SearchConfig{
		BaseURL:        cfg.SearchAPIURL,
		APIKey:         cfg.GoogleAPIKey,
		SearchEngineID: cfg.SearchEngineID,
	}, lex, logger)

	var provider services.NewsProvider
	if cfg.NewsProvider == "newsapi" {
		provider = services.NewNewsAPIProvider(client, cfg.NewsAPIURL, cfg.NewsAPIKey)
	} else {
		provider = services.NewRSSProvider(client, cfg.NewsRSSURL)
	}
	news := services.NewNewsService(provider, logger)

	return &deps{
		analyzer:  services.NewAnalyzeService(services.NewScorerService(lex), evidence, logger),
		explainer: services.NewExplainService(lex, nil),
		suggester: services.NewSuggestionService(client, cfg.SuggestAPIURL, logger),
		news:      news,
		feed:      services.NewFeedService(news, cfg.FeedRefreshInterval, logger),
	}, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	d, err := buildServices(cfg, logger)
	if err != nil {
		return err
	}

	engine := html.New(cfg.ViewsDir, ".html")
	app := handlers.NewApp(handlers.AppOptions{
		Views:       engine,
		AssetsDir:   filepath.Join(cfg.ViewsDir, "assets"),
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
		Logger:      logger,
	})

	h := handlers.NewHandler(d.analyzer, d.explainer, d.suggester, d.news, d.feed, engine, logger)
	ws := handlers.NewWebSocketHandler(d.feed)
	handlers.Routes(app, h, ws)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("truthlens server running",
			zap.String("addr", cfg.Addr()),
			zap.String("news_provider", cfg.NewsProvider))
		errc <- app.Listen(cfg.Addr())
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		return app.Shutdown()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
