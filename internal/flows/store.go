package flows

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/propertyloop/leadmatch/internal/db"
)

// Store provides CRUD operations for conversational flows.
type Store struct {
	db *db.DB
}

// NewStore creates a new flows store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Create inserts a new flow.
func (s *Store) Create(ctx context.Context, f *Flow) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	if f.Questions == nil {
		f.Questions = []Question{}
	}
	questionsJSON, err := json.Marshal(f.Questions)
	if err != nil {
		return fmt.Errorf("marshaling questions: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO flows (id, tenant_id, name, questions, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.TenantID, f.Name, string(questionsJSON), f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating flow: %w", err)
	}
	return nil
}

// Get retrieves a flow by ID.
func (s *Store) Get(ctx context.Context, id string) (*Flow, error) {
	f := &Flow{}
	var questionsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, tenant_id, name, questions, created_at, updated_at
		 FROM flows WHERE id = ?`, id,
	).Scan(&f.ID, &f.TenantID, &f.Name, &questionsJSON, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting flow: %w", err)
	}
	if err := json.Unmarshal([]byte(questionsJSON), &f.Questions); err != nil {
		return nil, fmt.Errorf("unmarshaling questions: %w", err)
	}
	return f, nil
}

// ListByTenant returns all flows that belong to the given tenant, in name order.
func (s *Store) ListByTenant(ctx context.Context, tenantID string) ([]Flow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tenant_id, name, questions, created_at, updated_at
		 FROM flows WHERE tenant_id = ? ORDER BY name`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing flows: %w", err)
	}
	defer rows.Close()

	var result []Flow
	for rows.Next() {
		var f Flow
		var questionsJSON string
		if err := rows.Scan(&f.ID, &f.TenantID, &f.Name, &questionsJSON, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning flow: %w", err)
		}
		if err := json.Unmarshal([]byte(questionsJSON), &f.Questions); err != nil {
			return nil, fmt.Errorf("unmarshaling questions: %w", err)
		}
		result = append(result, f)
	}
	return result, rows.Err()
}

// Update updates a flow's name and question set.
func (s *Store) Update(ctx context.Context, f *Flow) error {
	f.UpdatedAt = time.Now().UTC()
	if f.Questions == nil {
		f.Questions = []Question{}
	}
	questionsJSON, err := json.Marshal(f.Questions)
	if err != nil {
		return fmt.Errorf("marshaling questions: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE flows SET name=?, questions=?, updated_at=? WHERE id=?`,
		f.Name, string(questionsJSON), f.UpdatedAt, f.ID,
	)
	if err != nil {
		return fmt.Errorf("updating flow: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a flow by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM flows WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("deleting flow: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
