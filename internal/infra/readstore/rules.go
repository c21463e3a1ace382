package readstore

import (
	"context"
	"encoding/json"

	"parkpricer/internal/domain/pricing"
	"parkpricer/internal/infra"
	"parkpricer/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RulesReadStore struct {
	pool *pgxpool.Pool
}

func NewRulesReadStore(pool *pgxpool.Pool) *RulesReadStore {
	return &RulesReadStore{pool: pool}
}

const findAllRulesQuery = `
SELECT id, name, conditions, multiplier, priority, active
FROM pricing_rules
ORDER BY priority DESC, name
`

func (r *RulesReadStore) FindAll(ctx context.Context) ([]pricing.Rule, error) {
	rows, err := r.pool.Query(ctx, findAllRulesQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query pricing rules", err)
	}
	defer rows.Close()

	var rules []pricing.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pricing rules", err)
	}

	return rules, nil
}

type ruleRow interface {
	Scan(dest ...any) error
}

func scanRule(row ruleRow) (pricing.Rule, error) {
	var (
		id         pgtype.UUID
		name       string
		conditions []byte
		multiplier float64
		priority   int32
		active     bool
	)
	if err := row.Scan(&id, &name, &conditions, &multiplier, &priority, &active); err != nil {
		return pricing.Rule{}, infra.WrapRepoErr("failed to scan pricing rule", err)
	}

	rule := pricing.Rule{
		ID:         pgconv.UUIDFromPgtype(id),
		Name:       name,
		Conditions: []pricing.Condition{},
		Multiplier: multiplier,
		Priority:   int(priority),
		Active:     active,
	}
	if len(conditions) > 0 {
		if err := json.Unmarshal(conditions, &rule.Conditions); err != nil {
			return pricing.Rule{}, infra.WrapRepoErr("failed to decode rule conditions", err)
		}
	}
	return rule, nil
}
