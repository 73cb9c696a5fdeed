package database

import (
	"context"
	"database/sql"

	"github.com/advancedmkt/leads-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Create insere o lead e preenche ID e CreatedAt gerados pelo banco.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (name, company, email, phone, budget, project_details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.Name,
		nullString(lead.Company),
		lead.Email,
		lead.Phone,
		nullString(lead.Budget),
		nullString(lead.ProjectDetails),
	).Scan(
		&lead.ID,
		&lead.CreatedAt,
	)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
