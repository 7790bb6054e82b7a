package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"repertorio/internal/models"
	"repertorio/internal/shared"
)

// WorkRepository implements models.Repository[*models.PersistedWork].
type WorkRepository struct {
	db *sql.DB
}

// NewWorkRepository creates a new WorkRepository with the given database connection
func NewWorkRepository(db *sql.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

// Create inserts a new [models.PersistedWork] into the database with generated ID and sequence
func (r *WorkRepository) Create(work *models.PersistedWork) error {
	sequence, err := NextSequence(r.db, "works")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}
	work.SetSequence(sequence)

	id := shared.GenerateID()
	work.SetID(id)

	if err := work.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	dto := work.Work()
	query := `
		INSERT INTO works (id, sequence, registry_work_id, external_code, title, status, registered_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		dto.RegistryWorkID,
		dto.ExternalCode,
		dto.Title,
		dto.Status,
		dto.CreatedAt,
		work.CreatedAt(),
		work.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert work: %w", err)
	}

	return nil
}

// Get retrieves a work by ID, excluding soft-deleted works
func (r *WorkRepository) Get(id string) (*models.PersistedWork, error) {
	query := workSelect + " WHERE id = ? AND deleted_at IS NULL"
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByRegistryID retrieves a work by its source registry work id
func (r *WorkRepository) GetByRegistryID(registryWorkID string) (*models.PersistedWork, error) {
	query := workSelect + " WHERE registry_work_id = ? AND deleted_at IS NULL LIMIT 1"
	return r.scanOne(r.db.QueryRow(query, registryWorkID))
}

// Update modifies an existing work in the database
func (r *WorkRepository) Update(work *models.PersistedWork) error {
	if err := work.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	work.SetUpdatedAt(now)

	dto := work.Work()
	query := `
		UPDATE works
		SET external_code = ?, title = ?, status = ?, registered_at = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		dto.ExternalCode,
		dto.Title,
		dto.Status,
		dto.CreatedAt,
		now,
		work.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update work: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return shared.ErrWorkNotFound
	}

	return nil
}

// Delete soft-deletes a work by setting deleted_at
func (r *WorkRepository) Delete(id string) error {
	result, err := r.db.Exec("UPDATE works SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete work: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return shared.ErrWorkNotFound
	}

	return nil
}

// List retrieves works matching the given criteria (supported: "status"),
// ordered by their source-report sequence
func (r *WorkRepository) List(criteria map[string]any) ([]*models.PersistedWork, error) {
	query := workSelect + " WHERE deleted_at IS NULL"
	args := []any{}

	if status, ok := criteria["status"].(string); ok && status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query works: %w", err)
	}
	defer rows.Close()

	var works []*models.PersistedWork
	for rows.Next() {
		work, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, work)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return works, nil
}

const workSelect = `
	SELECT id, sequence, registry_work_id, external_code, title, status, registered_at, created_at, updated_at, deleted_at
	FROM works`

type scannable interface {
	Scan(dest ...any) error
}

func (r *WorkRepository) scanOne(row *sql.Row) (*models.PersistedWork, error) {
	work, err := scanWork(row)
	if err == sql.ErrNoRows {
		return nil, shared.ErrWorkNotFound
	}
	return work, err
}

func scanWork(row scannable) (*models.PersistedWork, error) {
	var (
		id           string
		sequence     int
		registryID   string
		externalCode string
		title        string
		status       string
		registeredAt string
		createdAt    time.Time
		updatedAt    time.Time
		deletedAt    sql.NullTime
	)

	err := row.Scan(&id, &sequence, &registryID, &externalCode, &title, &status, &registeredAt, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan work: %w", err)
	}

	dto := models.Work{
		RegistryWorkID: registryID,
		ExternalCode:   externalCode,
		Title:          title,
		Status:         status,
		CreatedAt:      registeredAt,
	}

	work := models.NewPersistedWork(sequence, dto)
	work.SetID(id)
	work.SetCreatedAt(createdAt)
	work.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		work.SetDeletedAt(&deletedAt.Time)
	}

	return work, nil
}
