package services

import (
	"context"
	"log/slog"

	"github.com/sjperalta/statutory-api/internal/models"
	"github.com/sjperalta/statutory-api/internal/repository"
	"github.com/sjperalta/statutory-api/pkg/logger"
)

// Actor identifies who performed an operation
type Actor struct {
	Name      string
	IPAddress string
	UserAgent string
}

// DefaultActorName is recorded when the caller is anonymous
const DefaultActorName = "admin"

func (a Actor) name() string {
	if a.Name == "" {
		return DefaultActorName
	}
	return a.Name
}

type AuditService struct {
	repo repository.AuditRepository
}

func NewAuditService(repo repository.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

// WithRepos returns an AuditService writing through repos, typically the
// repositories of an open transaction
func (s *AuditService) WithRepos(repos *repository.Repositories) *AuditService {
	return &AuditService{repo: repos.Audit}
}

// Log records an audit entry
func (s *AuditService) Log(ctx context.Context, actor Actor, action, entity string, entityID uint, details string) error {
	logEntry := &models.AuditLog{
		Actor:     actor.name(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		IPAddress: actor.IPAddress,
		UserAgent: actor.UserAgent,
	}
	if err := s.repo.Create(ctx, logEntry); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("audit",
		slog.String("actor", logEntry.Actor),
		slog.String("action", action),
		slog.String("entity", entity),
		slog.Uint64("entity_id", uint64(entityID)),
	)
	return nil
}

// List retrieves audit logs, newest first
func (s *AuditService) List(ctx context.Context, limit, offset int) ([]models.AuditLog, int64, error) {
	logs, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, internalError("list audit logs", err)
	}
	return logs, total, nil
}
