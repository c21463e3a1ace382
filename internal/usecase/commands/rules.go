package commands

import (
	"context"
	"time"

	"parkpricer/internal/domain/pricing"
	"parkpricer/internal/infra"
	"parkpricer/internal/pkg/clock"
	"parkpricer/internal/pkg/errs"
	"parkpricer/internal/pkg/patch"

	"github.com/google/uuid"
)

type RuleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error)
	Save(ctx context.Context, rule pricing.Rule, updatedAt time.Time) (*pricing.Rule, error)
}

// UpdateRuleParams patches a stored rule. Nil fields keep the stored value;
// a non-nil Conditions slice replaces the condition set wholesale.
type UpdateRuleParams struct {
	Name       *string
	Multiplier *float64
	Priority   *int
	Active     *bool
	Conditions []pricing.Condition
}

type RuleCommands interface {
	UpdateRule(ctx context.Context, id uuid.UUID, params UpdateRuleParams) (*pricing.Rule, error)
}

type ruleCommandsImpl struct {
	repo  RuleRepository
	clock clock.Clock
}

func NewRuleCommands(repo RuleRepository, clock clock.Clock) RuleCommands {
	return &ruleCommandsImpl{repo: repo, clock: clock}
}

func (c *ruleCommandsImpl) UpdateRule(ctx context.Context, id uuid.UUID, params UpdateRuleParams) (*pricing.Rule, error) {
	current, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRuleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	updated := *current
	updated.Name = patch.Coalesce(params.Name, current.Name)
	updated.Multiplier = patch.Coalesce(params.Multiplier, current.Multiplier)
	updated.Priority = patch.Coalesce(params.Priority, current.Priority)
	updated.Active = patch.Coalesce(params.Active, current.Active)
	if params.Conditions != nil {
		updated.Conditions = params.Conditions
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	saved, err := c.repo.Save(ctx, updated, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return saved, nil
}
