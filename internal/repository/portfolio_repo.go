package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogfolio-api/internal/database"
	"github.com/blogfolio-api/internal/models"
	"github.com/lib/pq"
)

// portfolioRepo is the concrete implementation of PortfolioRepository
type portfolioRepo struct {
	db *database.DB
}

// NewPortfolioRepo creates a new portfolio repository
func NewPortfolioRepo(db *database.DB) PortfolioRepository {
	return &portfolioRepo{db: db}
}

const portfolioColumns = `id, user_id, username, categories, title, description, picture,
	tech_stack, skills, live_link, github_link, linked_in, phone_number, email, contact,
	media_type, create_date`

// Create inserts a new portfolio fact
func (r *portfolioRepo) Create(ctx context.Context, fact *models.PortfolioFact) error {
	query := `
		INSERT INTO portfolios (id, user_id, username, categories, title, description,
			picture, tech_stack, skills, live_link, github_link, linked_in, phone_number,
			email, contact, media_type, create_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	_, err := r.db.ExecContext(ctx, query,
		fact.ID, fact.UserID, fact.Username, fact.Categories, fact.Title, fact.Description,
		fact.Picture, fact.TechStack, fact.Skills, fact.LiveLink, fact.GithubLink,
		fact.LinkedIn, fact.PhoneNumber, fact.Email, fact.Contact, fact.MediaType,
		fact.CreateDate,
	)
	return err
}

// GetByID retrieves a portfolio fact by ID
func (r *portfolioRepo) GetByID(ctx context.Context, id string) (*models.PortfolioFact, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolios WHERE id = $1`, portfolioColumns)

	fact, err := scanPortfolioFact(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fact, nil
}

// Find retrieves portfolio facts, optionally narrowed to one category tag,
// newest first. Consolidation order downstream depends on this sort.
func (r *portfolioRepo) Find(ctx context.Context, category string) ([]models.PortfolioFact, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolios`, portfolioColumns)
	var args []interface{}

	if category != "" {
		args = append(args, category)
		query += " WHERE categories = $1"
	}
	query += " ORDER BY create_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPortfolioFacts(rows)
}

// FindByUser retrieves all of one user's portfolio facts, newest first
func (r *portfolioRepo) FindByUser(ctx context.Context, userID string) ([]models.PortfolioFact, error) {
	query := fmt.Sprintf(`SELECT %s FROM portfolios WHERE user_id = $1 ORDER BY create_date DESC`, portfolioColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPortfolioFacts(rows)
}

// FindContactEmail returns the email from a user's Contact-tagged fact, or
// empty when none carries one.
func (r *portfolioRepo) FindContactEmail(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT email FROM portfolios
		WHERE user_id = $1 AND categories = ANY($2) AND email <> ''
		ORDER BY create_date DESC LIMIT 1
	`
	var email string
	err := r.db.QueryRowContext(ctx, query, userID, pq.Array([]string{"contact", "Contact"})).Scan(&email)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return email, nil
}

// Update rewrites a portfolio fact's mutable fields
func (r *portfolioRepo) Update(ctx context.Context, fact *models.PortfolioFact) error {
	query := `
		UPDATE portfolios SET categories = $2, title = $3, description = $4, picture = $5,
			tech_stack = $6, skills = $7, live_link = $8, github_link = $9, linked_in = $10,
			phone_number = $11, email = $12, contact = $13, media_type = $14
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		fact.ID, fact.Categories, fact.Title, fact.Description, fact.Picture,
		fact.TechStack, fact.Skills, fact.LiveLink, fact.GithubLink, fact.LinkedIn,
		fact.PhoneNumber, fact.Email, fact.Contact, fact.MediaType,
	)
	return err
}

// Delete removes a portfolio fact
func (r *portfolioRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM portfolios WHERE id = $1", id)
	return err
}

func scanPortfolioFact(row rowScanner) (*models.PortfolioFact, error) {
	var fact models.PortfolioFact

	err := row.Scan(
		&fact.ID, &fact.UserID, &fact.Username, &fact.Categories, &fact.Title,
		&fact.Description, &fact.Picture, &fact.TechStack, &fact.Skills, &fact.LiveLink,
		&fact.GithubLink, &fact.LinkedIn, &fact.PhoneNumber, &fact.Email, &fact.Contact,
		&fact.MediaType, &fact.CreateDate,
	)
	if err != nil {
		return nil, err
	}
	return &fact, nil
}

func collectPortfolioFacts(rows *sql.Rows) ([]models.PortfolioFact, error) {
	var facts []models.PortfolioFact
	for rows.Next() {
		fact, err := scanPortfolioFact(rows)
		if err != nil {
			return nil, err
		}
		facts = append(facts, *fact)
	}
	return facts, rows.Err()
}
