package advice

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propertyloop/leadmatch/internal/db"
	"github.com/propertyloop/leadmatch/internal/rules"
)

// Store provides CRUD operations for advice items and their persisted rules.
type Store struct {
	db *db.DB
}

// NewStore creates a new advice store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

func marshalRule(g *rules.FieldGroup) (sql.NullString, error) {
	if g == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(g)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshaling rule: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func marshalAuthored(g *rules.ConceptGroup) (sql.NullString, error) {
	if g == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(g)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshaling authored rule: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// Create inserts a new advice item.
func (s *Store) Create(ctx context.Context, a *Advice) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Category == "" {
		a.Category = "general"
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	ruleJSON, err := marshalRule(a.Rule)
	if err != nil {
		return err
	}
	authoredJSON, err := marshalAuthored(a.Authored)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO advice (id, tenant_id, flow_id, title, body, category, rule, authored_rule, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.TenantID, a.FlowID, a.Title, a.Body, a.Category, ruleJSON, authoredJSON, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating advice: %w", err)
	}
	return nil
}

func scanAdvice(scan func(dest ...any) error) (*Advice, error) {
	a := &Advice{}
	var ruleJSON, authoredJSON sql.NullString
	err := scan(&a.ID, &a.TenantID, &a.FlowID, &a.Title, &a.Body, &a.Category,
		&ruleJSON, &authoredJSON, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if ruleJSON.Valid {
		a.Rule = &rules.FieldGroup{}
		if err := json.Unmarshal([]byte(ruleJSON.String), a.Rule); err != nil {
			return nil, fmt.Errorf("unmarshaling rule: %w", err)
		}
	}
	if authoredJSON.Valid {
		a.Authored = &rules.ConceptGroup{}
		if err := json.Unmarshal([]byte(authoredJSON.String), a.Authored); err != nil {
			return nil, fmt.Errorf("unmarshaling authored rule: %w", err)
		}
	}
	return a, nil
}

const adviceColumns = `id, tenant_id, flow_id, title, body, category, rule, authored_rule, created_at, updated_at`

// Get retrieves an advice item by ID.
func (s *Store) Get(ctx context.Context, id string) (*Advice, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+adviceColumns+` FROM advice WHERE id = ?`, id)
	a, err := scanAdvice(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("getting advice: %w", err)
	}
	return a, nil
}

// ListByTenant returns a tenant's advice items in title order. When flowID
// is non-empty the result also includes items scoped to that flow alongside
// the tenant-wide ones.
func (s *Store) ListByTenant(ctx context.Context, tenantID, flowID string) ([]Advice, error) {
	query := `SELECT ` + adviceColumns + ` FROM advice WHERE tenant_id = ?`
	args := []any{tenantID}
	if flowID != "" {
		query += ` AND (flow_id = '' OR flow_id = ?)`
		args = append(args, flowID)
	}
	query += ` ORDER BY title`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing advice: %w", err)
	}
	defer rows.Close()

	var result []Advice
	for rows.Next() {
		a, err := scanAdvice(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning advice: %w", err)
		}
		result = append(result, *a)
	}
	return result, rows.Err()
}

// Update updates an advice item's content and rules.
func (s *Store) Update(ctx context.Context, a *Advice) error {
	a.UpdatedAt = time.Now().UTC()

	ruleJSON, err := marshalRule(a.Rule)
	if err != nil {
		return err
	}
	authoredJSON, err := marshalAuthored(a.Authored)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE advice SET flow_id=?, title=?, body=?, category=?, rule=?, authored_rule=?, updated_at=?
		 WHERE id=?`,
		a.FlowID, a.Title, a.Body, a.Category, ruleJSON, authoredJSON, a.UpdatedAt, a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating advice: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an advice item by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM advice WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting advice: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
