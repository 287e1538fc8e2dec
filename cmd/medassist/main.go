package main

import (
	"net"
	"net/http"
	"os"

	"github.com/medassist/medassist/internal/bot"
	"github.com/medassist/medassist/internal/config"
	"github.com/medassist/medassist/internal/handlers"
	"github.com/medassist/medassist/internal/logger"
	"github.com/medassist/medassist/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.L.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	// Pick the response strategy
	var strategy bot.Strategy
	mode := cfg.Bot.Mode
	switch mode {
	case config.ModeLLM:
		if cfg.LLM.APIKey == "" {
			logger.L.Warn("llm mode requested but no API key configured; using rule-based replies")
			mode = config.ModeRules
			strategy = bot.NewRules()
			break
		}
		strategy = bot.NewLLM(bot.NewClient(cfg.LLM), cfg.LLM)
	default:
		mode = config.ModeRules
		strategy = bot.NewRules()
	}

	handler := router.New(handlers.NewChatHandler(strategy))

	// Start server
	serverAddr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	logger.L.Info("starting server", "address", serverAddr, "mode", mode)
	if err := http.ListenAndServe(serverAddr, handler); err != nil {
		logger.L.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
