package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/formsense/formsense/internal/config"
	"github.com/formsense/formsense/internal/engine"
	"github.com/formsense/formsense/internal/heuristic"
	"github.com/formsense/formsense/internal/llm"
	"github.com/formsense/formsense/internal/match"
	"github.com/formsense/formsense/internal/rules"
	"github.com/formsense/formsense/internal/storage"
	"github.com/formsense/formsense/internal/template"
)

// buildOrchestrator assembles the full pipeline from config and the
// settings store. The returned cleanup closes the store; it is safe to
// call even when store setup failed.
func buildOrchestrator(ctx context.Context) (*engine.Orchestrator, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, func() {}, err
	}

	var store storage.Store
	sqliteStore, err := storage.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		// The pipeline runs without the settings store; built-in
		// defaults apply.
		slog.Warn("settings store unavailable, using defaults",
			"path", cfg.DatabasePath,
			"error", err)
	} else {
		store = sqliteStore
		values, getErr := store.Get(ctx, []string{
			storage.KeyAPIKey,
			storage.KeyProvider,
			storage.KeyModel,
			storage.KeyPerMinuteLimit,
			storage.KeyDailyLimit,
		})
		if getErr != nil {
			slog.Warn("failed to read stored settings, using defaults", "error", getErr)
		} else {
			cfg.ApplySettings(values)
		}
	}

	cleanup := func() {
		if store != nil {
			_ = store.Close()
		}
	}

	ruleSet, err := rules.NewDefault()
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to build rule set: %w", err)
	}

	matcher, err := match.NewMatcher()
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("failed to build pattern matcher: %w", err)
	}

	var inference engine.Inferencer
	client, err := llm.NewInferenceClient(cfg.LLM, slog.Default())
	if err != nil {
		slog.Warn("inference unavailable, local stages only", "error", err)
		inference = llm.NewDisabledInference(slog.Default())
	} else {
		inference = client
	}

	orch := engine.New(ruleSet, heuristic.NewScorer(), matcher, inference, template.NewLibrary(), slog.Default())
	return orch, cleanup, nil
}
