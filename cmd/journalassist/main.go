// Command journalassist serves the multi-agent journal assistant API:
// progress and summarize agents orchestrated over a shared conversation.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"

	journalassist "github.com/Akesh-M/JournalAssistCrew"
	"github.com/Akesh-M/JournalAssistCrew/agent"
	"github.com/Akesh-M/JournalAssistCrew/config"
	"github.com/Akesh-M/JournalAssistCrew/logging"
	"github.com/Akesh-M/JournalAssistCrew/model"
	anthropicmodel "github.com/Akesh-M/JournalAssistCrew/model/anthropic"
	openaimodel "github.com/Akesh-M/JournalAssistCrew/model/openai"
	"github.com/Akesh-M/JournalAssistCrew/server"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "path to YAML configuration")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)

	llm, err := buildModel(cfg)
	if err != nil {
		logger.Error("model setup failed", "error", err)
		os.Exit(1)
	}

	crew := journalassist.New(func(o *journalassist.Options) {
		o.Logger = logger
	})
	crew.RegisterAgent(agent.NewProgressCapability(llm))
	crew.RegisterAgent(agent.NewSummarizeCapability(llm))

	srv := server.New(crew.Registry(), crew.Engine(), func(o *server.Options) {
		o.Logger = logger
		o.RequestTimeout = cfg.Server.RequestTimeout
	})

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		info := llm.Info()
		logger.Info("http server listening",
			"addr", cfg.Server.Addr,
			"provider", info.Provider,
			"model", info.Name,
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}

// buildModel selects the text-generation provider from config. An empty
// model name keeps the provider's default.
func buildModel(cfg *config.Config) (model.Model, error) {
	switch cfg.Model.Provider {
	case "openai":
		return openaimodel.NewModel(func(o *openaimodel.Options) {
			if cfg.Model.Name != "" {
				o.Model = cfg.Model.Name
			}
			o.Temperature = cfg.Model.Temperature
			o.MaxCompletionTokens = cfg.Model.MaxTokens
		}), nil
	case "anthropic":
		return anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
			if cfg.Model.Name != "" {
				o.Model = sdk.Model(cfg.Model.Name)
			}
			o.Temperature = cfg.Model.Temperature
			o.MaxTokens = cfg.Model.MaxTokens
		}), nil
	case "mock":
		return model.NewMockModel("mock", "mock"), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Model.Provider)
	}
}
