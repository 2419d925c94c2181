package database

import (
	"github.com/robalyx/warden/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	escalation *models.EscalationModel
	decision   *models.DecisionModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		escalation: models.NewEscalation(db, logger),
		decision:   models.NewDecision(db, logger),
	}
}

// Escalation returns the escalation ledger model.
func (r *Repository) Escalation() *models.EscalationModel {
	return r.escalation
}

// Decision returns the moderation audit log model.
func (r *Repository) Decision() *models.DecisionModel {
	return r.decision
}
