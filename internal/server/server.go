package server

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/czmj/ambridge/internal/archive"
	"github.com/czmj/ambridge/internal/config"
	"github.com/czmj/ambridge/internal/driver"
)

type Server struct {
	Archive *archive.Service
	Config  *config.Config
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Falling back to defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}

	if cfg.Server.EnsureIndices {
		if err := d.EnsureIndices(context.Background()); err != nil {
			log.Printf("Failed to ensure indices: %v", err)
		}
	}

	return &Server{
		Archive: archive.NewService(d),
		Config:  cfg,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	r.GET("/", s.Timeline)
	r.GET("/character/:slug", s.Character)
	r.GET("/character/:slug/family", s.Family)
	r.GET("/on/:date", s.Episode)

	return r
}

// requestID stamps each response so a failing request can be matched to
// its log lines.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
