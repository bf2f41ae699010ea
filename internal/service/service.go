// Package service implements the agent request pipeline.
package service

import (
	"context"

	"github.com/xiaot623/snippetagent/internal/adapter/llm"
	"github.com/xiaot623/snippetagent/internal/config"
	"github.com/xiaot623/snippetagent/internal/domain"
	"github.com/xiaot623/snippetagent/internal/policy"
	"github.com/xiaot623/snippetagent/internal/repository"
)

// Service holds the process-wide clients shared by every request.
type Service struct {
	store        repository.Store
	completer    llm.Completer
	config       *config.Config
	policyEngine *policy.Engine
}

// New creates the service. cfg may be nil, in which case defaults apply.
func New(store repository.Store, completer llm.Completer, cfg *config.Config, policyEngine *policy.Engine) *Service {
	if cfg == nil {
		cfg = &config.Config{HistoryLimit: domain.DefaultHistoryLimit}
	}
	return &Service{
		store:        store,
		completer:    completer,
		config:       cfg,
		policyEngine: policyEngine,
	}
}

// Ping checks the store connection.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
