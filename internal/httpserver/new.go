package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"invoice-assistant/config"
	"invoice-assistant/pkg/llmprovider"
	"invoice-assistant/pkg/log"
	"invoice-assistant/pkg/objectstore"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Dependencies shared by the domains
	db     *sql.DB
	llm    llmprovider.Provider
	store  objectstore.ObjectStore
	config *config.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB          *sql.DB
	LLM         llmprovider.Provider
	ObjectStore objectstore.ObjectStore
	AppConfig   *config.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		db:          cfg.DB,
		llm:         cfg.LLM,
		store:       cfg.ObjectStore,
		config:      cfg.AppConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("postgres db is required")
	}
	if srv.llm == nil {
		return errors.New("llm provider is required")
	}
	if srv.store == nil {
		return errors.New("object store is required")
	}
	if srv.config == nil {
		return errors.New("app config is required")
	}
	return nil
}
