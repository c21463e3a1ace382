package writerepo

import (
	"context"
	"encoding/json"
	"time"

	"parkpricer/internal/domain/pricing"
	"parkpricer/internal/infra"
	"parkpricer/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RuleRepository struct {
	pool *pgxpool.Pool
}

func NewRuleRepository(pool *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{pool: pool}
}

const findRuleByIDQuery = `
SELECT id, name, conditions, multiplier, priority, active
FROM pricing_rules
WHERE id = $1
`

func (r *RuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pricing.Rule, error) {
	row := r.pool.QueryRow(ctx, findRuleByIDQuery, pgconv.UUIDToPgtype(id))

	var (
		ruleID     pgtype.UUID
		name       string
		conditions []byte
		multiplier float64
		priority   int32
		active     bool
	)
	if err := row.Scan(&ruleID, &name, &conditions, &multiplier, &priority, &active); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pricing rule", err)
	}

	rule := pricing.Rule{
		ID:         pgconv.UUIDFromPgtype(ruleID),
		Name:       name,
		Conditions: []pricing.Condition{},
		Multiplier: multiplier,
		Priority:   int(priority),
		Active:     active,
	}
	if len(conditions) > 0 {
		if err := json.Unmarshal(conditions, &rule.Conditions); err != nil {
			return nil, infra.WrapRepoErr("failed to decode rule conditions", err)
		}
	}
	return &rule, nil
}

const saveRuleQuery = `
UPDATE pricing_rules
SET name = $2, conditions = $3, multiplier = $4, priority = $5, active = $6, updated_at = $7
WHERE id = $1
`

func (r *RuleRepository) Save(ctx context.Context, rule pricing.Rule, updatedAt time.Time) (*pricing.Rule, error) {
	conditions, err := json.Marshal(rule.Conditions)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode rule conditions", err)
	}

	tag, err := r.pool.Exec(ctx, saveRuleQuery,
		pgconv.UUIDToPgtype(rule.ID),
		rule.Name,
		conditions,
		rule.Multiplier,
		int32(rule.Priority),
		rule.Active,
		pgconv.TimeToPgtype(updatedAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}

	return &rule, nil
}
