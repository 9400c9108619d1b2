package leads

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propertyloop/leadmatch/internal/db"
)

// Store provides CRUD operations for leads.
type Store struct {
	db *db.DB
}

// NewStore creates a new leads store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Create inserts a new lead.
func (s *Store) Create(ctx context.Context, l *Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	if l.Answers == nil {
		l.Answers = map[string]string{}
	}
	answersJSON, err := json.Marshal(l.Answers)
	if err != nil {
		return fmt.Errorf("marshaling answers: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO leads (id, tenant_id, flow_id, answers, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.TenantID, l.FlowID, string(answersJSON), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating lead: %w", err)
	}
	return nil
}

// Get retrieves a lead by ID.
func (s *Store) Get(ctx context.Context, id string) (*Lead, error) {
	l := &Lead{}
	var answersJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, flow_id, answers, created_at, updated_at
		 FROM leads WHERE id = ?`, id,
	).Scan(&l.ID, &l.TenantID, &l.FlowID, &answersJSON, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting lead: %w", err)
	}
	if err := json.Unmarshal([]byte(answersJSON), &l.Answers); err != nil {
		return nil, fmt.Errorf("unmarshaling answers: %w", err)
	}
	return l, nil
}

// ListByTenant returns a tenant's leads, newest first.
func (s *Store) ListByTenant(ctx context.Context, tenantID string) ([]Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tenant_id, flow_id, answers, created_at, updated_at
		 FROM leads WHERE tenant_id = ? ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing leads: %w", err)
	}
	defer rows.Close()

	var result []Lead
	for rows.Next() {
		var l Lead
		var answersJSON string
		if err := rows.Scan(&l.ID, &l.TenantID, &l.FlowID, &answersJSON, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning lead: %w", err)
		}
		if err := json.Unmarshal([]byte(answersJSON), &l.Answers); err != nil {
			return nil, fmt.Errorf("unmarshaling answers: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

// SetAnswer records or replaces a single answer on a lead.
func (s *Store) SetAnswer(ctx context.Context, id, fieldID, value string) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	l.Answers[fieldID] = value
	return s.update(ctx, l)
}

// ReplaceAnswers replaces a lead's whole answer map.
func (s *Store) ReplaceAnswers(ctx context.Context, id string, answers map[string]string) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if answers == nil {
		answers = map[string]string{}
	}
	l.Answers = answers
	return s.update(ctx, l)
}

func (s *Store) update(ctx context.Context, l *Lead) error {
	l.UpdatedAt = time.Now().UTC()
	answersJSON, err := json.Marshal(l.Answers)
	if err != nil {
		return fmt.Errorf("marshaling answers: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE leads SET answers=?, updated_at=? WHERE id=?`,
		string(answersJSON), l.UpdatedAt, l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating lead: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a lead by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting lead: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
