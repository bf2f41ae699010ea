package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiaot623/snippetagent/internal/domain"
	"github.com/xiaot623/snippetagent/internal/logger"
)

// Stage names a step of the agent request pipeline.
type Stage string

const (
	StageFetchingHistory      Stage = "fetching_history"
	StageStoringUserTurn      Stage = "storing_user_turn"
	StageCallingModel         Stage = "calling_model"
	StageStoringAssistantTurn Stage = "storing_assistant_turn"
	StageResponding           Stage = "responding"
)

// apologyWriteTimeout bounds the error-turn write, which outlives request cancellation.
const apologyWriteTimeout = 5 * time.Second

// Admit evaluates the admission policy against the decoded request body.
// A nil policy engine admits everything.
func (s *Service) Admit(ctx context.Context, input map[string]any) error {
	if s.policyEngine == nil {
		return nil
	}
	return s.policyEngine.Admit(ctx, input)
}

// HandleAgentRequest runs the pipeline for an authenticated request. Failures are
// reported in-band: the response carries success=false and an apology turn is stored.
func (s *Service) HandleAgentRequest(ctx context.Context, req *domain.AgentRequest) *domain.AgentResponse {
	log := logger.L().With(
		zap.String("request_id", req.RequestID),
		zap.String("session_id", req.SessionID),
		zap.String("user_id", req.UserID),
	)

	stage, err := s.process(ctx, req, log)
	if err != nil {
		log.Error("Error processing request", zap.String("stage", string(stage)), zap.Error(err))
		s.storeErrorTurn(ctx, req, err, log)
		return &domain.AgentResponse{Success: false}
	}

	log.Info("Request processed", zap.String("stage", string(stage)))
	return &domain.AgentResponse{Success: true}
}

func (s *Service) process(ctx context.Context, req *domain.AgentRequest, log *zap.Logger) (Stage, error) {
	history, err := s.FetchHistory(ctx, req.SessionID, s.config.HistoryLimit)
	if err != nil {
		return StageFetchingHistory, err
	}

	if err := s.StoreMessage(ctx, req.SessionID, domain.MessageTypeHuman, req.Query, nil); err != nil {
		return StageStoringUserTurn, err
	}

	reply, err := s.completer.Complete(ctx, req.Query, history)
	if err != nil {
		if !domain.IsCompletion(err) {
			err = domain.NewCompletionError(err)
		}
		return StageCallingModel, err
	}
	if reply == "" {
		log.Warn("No response content found")
	}

	if err := s.StoreMessage(ctx, req.SessionID, domain.MessageTypeAI, reply, map[string]any{
		domain.DataKeyRequestID: req.RequestID,
	}); err != nil {
		return StageStoringAssistantTurn, err
	}

	return StageResponding, nil
}

// storeErrorTurn is best effort: its own failure is logged and never returned,
// so the original error stays the one reported.
func (s *Service) storeErrorTurn(ctx context.Context, req *domain.AgentRequest, cause error, log *zap.Logger) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), apologyWriteTimeout)
	defer cancel()

	err := s.StoreMessage(writeCtx, req.SessionID, domain.MessageTypeAI, domain.ApologyMessage, map[string]any{
		domain.DataKeyError:     cause.Error(),
		domain.DataKeyRequestID: req.RequestID,
	})
	if err != nil {
		log.Error("Failed to store error message",
			zap.NamedError("cause", cause),
			zap.Error(err),
		)
	}
}
