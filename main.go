package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource"
	_ "github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource/mysql"
	_ "github.com/sqlchat-io/sqlchat-engine/pkg/adapters/datasource/postgres"
	"github.com/sqlchat-io/sqlchat-engine/pkg/audit"
	"github.com/sqlchat-io/sqlchat-engine/pkg/config"
	"github.com/sqlchat-io/sqlchat-engine/pkg/handlers"
	"github.com/sqlchat-io/sqlchat-engine/pkg/llm"
	"github.com/sqlchat-io/sqlchat-engine/pkg/middleware"
	"github.com/sqlchat-io/sqlchat-engine/pkg/services"
	"github.com/sqlchat-io/sqlchat-engine/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("addr", cfg.Addr()),
		zap.Duration("query_timeout", cfg.QueryTimeout()),
		zap.Duration("llm_timeout", cfg.LLMTimeout()),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)

	auditor := audit.NewSecurityAuditor(logger)

	schemaService := services.NewSchemaService(datasource.Connect, logger.Named("schema"))
	queryService := services.NewQueryService(datasource.Connect, cfg.QueryTimeout(), logger.Named("query"))
	generateService := services.NewGenerateService(queryService, llm.NewClient, cfg.LLMTimeout(), logger.Named("generate"))

	mux := http.NewServeMux()

	handlers.NewHealthHandler(cfg, logger.Named("health")).RegisterRoutes(mux)
	handlers.NewSchemaHandler(schemaService, auditor, logger.Named("schema")).RegisterRoutes(mux)
	handlers.NewQueryHandler(queryService, generateService, auditor, logger.Named("query")).RegisterRoutes(mux)

	// Static frontend at the root
	mux.Handle("/", http.FileServerFS(ui.DistFS()))

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSOrigins)(handler)
	handler = middleware.RequestLogger(logger.Named("http"))(handler)

	logger.Info("starting sqlchat-engine",
		zap.String("addr", cfg.Addr()),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// newLogger builds a production JSON logger everywhere except local
// development, which gets the human-readable console encoder.
func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
