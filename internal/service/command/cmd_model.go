package command

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/sandevgo/auralis/internal/config"
	"github.com/sandevgo/auralis/internal/core"
)

const maxListedModels = 30

type ModelLister interface {
	Models(ctx context.Context) ([]core.Model, error)
}

type ModelCommand struct {
	cfg       config.ProviderConfig
	models    ModelLister
	formatter *ResponseFormatter
}

func NewModelCommand(cfg config.ProviderConfig, models ModelLister) *ModelCommand {
	return &ModelCommand{
		cfg:       cfg,
		models:    models,
		formatter: NewResponseFormatter(),
	}
}

func (c *ModelCommand) Name() string {
	return "model"
}

func (c *ModelCommand) Description() string {
	return "Show the generation model, or list available ones"
}

func (c *ModelCommand) Execute(ctx context.Context, sessionID string, args []string) (string, error) {
	if len(args) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Current Model"),
			c.formatter.Label("Provider", c.cfg.Provider),
			c.formatter.Label("Model", c.cfg.GetModel()),
			c.formatter.Usage("/model list [filter]"),
		), nil
	}

	if args[0] != "list" {
		return "", fmt.Errorf("unknown subcommand %q", args[0])
	}

	models, err := c.models.Models(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list models: %w", err)
	}

	filter := ""
	if len(args) > 1 {
		filter = strings.ToLower(args[1])
	}

	ids := make([]string, 0, len(models))
	for _, m := range models {
		if filter != "" && !strings.Contains(strings.ToLower(m.ID), filter) {
			continue
		}
		ids = append(ids, "`"+m.ID+"`")
	}
	slices.Sort(ids)

	total := len(ids)
	if total > maxListedModels {
		ids = ids[:maxListedModels]
	}

	return c.formatter.Combine(
		c.formatter.Info(fmt.Sprintf("Available Models (%d)", total)),
		c.formatter.List(ids),
	), nil
}
