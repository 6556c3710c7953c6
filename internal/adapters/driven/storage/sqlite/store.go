package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ideaflux/ideaflux/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/ideaflux/ideaflux/internal/core/domain"
	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ProposalStore = (*Store)(nil)

// Store is a SQLite-backed proposal store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.ideaflux/data/ideaflux.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ideaflux", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ideaflux.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveProject stores or updates a project.
func (s *Store) SaveProject(ctx context.Context, p domain.Project) error {
	if p.ID == "" {
		return fmt.Errorf("project id required: %w", domain.ErrInvalidInput)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, title, description, summary, deadline, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			summary = excluded.summary,
			deadline = excluded.deadline
	`, p.ID, p.Title, p.Description, p.Summary, nullTime(p.Deadline), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving project: %w", err)
	}
	return nil
}

// GetProject retrieves a project by ID.
func (s *Store) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, summary, deadline, created_at
		FROM projects WHERE id = ?
	`, projectID)

	var p domain.Project
	var deadline, createdAt sql.NullTime
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Summary, &deadline, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	if deadline.Valid {
		p.Deadline = deadline.Time
	}
	if createdAt.Valid {
		p.CreatedAt = createdAt.Time
	}
	return &p, nil
}

// ListProposals returns all proposals for a project, oldest first.
func (s *Store) ListProposals(ctx context.Context, projectID string) ([]domain.Proposal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, title, description, summary, author_id, created_at
		FROM proposals WHERE project_id = ?
		ORDER BY created_at, id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying proposals: %w", err)
	}
	defer rows.Close()

	var proposals []domain.Proposal
	for rows.Next() {
		var p domain.Proposal
		var createdAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Title, &p.Description,
			&p.Summary, &p.AuthorID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning proposal: %w", err)
		}
		if createdAt.Valid {
			p.CreatedAt = createdAt.Time
		}
		proposals = append(proposals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proposals: %w", err)
	}
	return proposals, nil
}

// InsertProposal persists a new proposal, assigning an ID when absent.
func (s *Store) InsertProposal(ctx context.Context, p *domain.Proposal) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO proposals (id, project_id, title, description, summary, author_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.ProjectID, p.Title, p.Description, p.Summary, p.AuthorID, p.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("inserting proposal: %w", err)
	}
	return nil
}

// UpdateProjectSummary stores a generated summary on the project.
func (s *Store) UpdateProjectSummary(ctx context.Context, projectID, summary string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE projects SET summary = ? WHERE id = ?", summary, projectID)
	if err != nil {
		return fmt.Errorf("updating project summary: %w", err)
	}
	return requireRow(res)
}

// UpdateProposalSummary stores a generated summary on the proposal.
func (s *Store) UpdateProposalSummary(ctx context.Context, proposalID, summary string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE proposals SET summary = ? WHERE id = ?", summary, proposalID)
	if err != nil {
		return fmt.Errorf("updating proposal summary: %w", err)
	}
	return requireRow(res)
}

// UpsertVote records a vote, replacing any previous vote by the same user
// on the same proposal.
func (s *Store) UpsertVote(ctx context.Context, v domain.Vote) error {
	if !v.Valid() {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (proposal_id, user_id, value)
		VALUES (?, ?, ?)
		ON CONFLICT(proposal_id, user_id) DO UPDATE SET
			value = excluded.value,
			created_at = CURRENT_TIMESTAMP
	`, v.ProposalID, v.UserID, v.Value)
	if err != nil {
		if strings.Contains(err.Error(), "FOREIGN KEY constraint") {
			return domain.ErrNotFound
		}
		return fmt.Errorf("upserting vote: %w", err)
	}
	return nil
}

// Votes returns all recorded votes for a proposal.
func (s *Store) Votes(ctx context.Context, proposalID string) ([]domain.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT proposal_id, user_id, value
		FROM votes WHERE proposal_id = ?
	`, proposalID)
	if err != nil {
		return nil, fmt.Errorf("querying votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ProposalID, &v.UserID, &v.Value); err != nil {
			return nil, fmt.Errorf("scanning vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

// requireRow maps a zero-row update to domain.ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullTime converts a zero time to SQL NULL.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
