package main

import (
	"context"
	"encoding/base64"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"srkr.edu.in/campus/core"
	"srkr.edu.in/campus/infrastructure/devops"
	"srkr.edu.in/campus/web/handlers"
	"srkr.edu.in/campus/web/middlewares"
)

func main() {
	ctx := context.Background()

	cfg, err := devops.LoadConfig(ctx)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	dsn := cfg.DSN
	if env := os.Getenv("DSN"); env != "" {
		dsn = env
	}

	dm, err := core.New(dsn, 10)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.JwtSecret)
	if err != nil {
		log.Fatal("Failed to decode JWT secret:", err)
	}

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/campus/v1.0")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		handlers.Register(protected, dm, cfg)
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
