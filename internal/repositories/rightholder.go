package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"repertorio/internal/models"
	"repertorio/internal/shared"
)

// RightHolderRepository implements models.Repository[*models.PersistedRightHolder].
//
// A stored right holder always references the PersistedWork row it was
// extracted under; ListByWork returns them in source-report order.
type RightHolderRepository struct {
	db *sql.DB
}

// NewRightHolderRepository creates a new RightHolderRepository with the given database connection
func NewRightHolderRepository(db *sql.DB) *RightHolderRepository {
	return &RightHolderRepository{db: db}
}

// Create inserts a new [models.PersistedRightHolder] with generated ID and sequence
func (r *RightHolderRepository) Create(holder *models.PersistedRightHolder) error {
	sequence, err := NextSequence(r.db, "right_holders")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}
	holder.SetSequence(sequence)

	id := shared.GenerateID()
	holder.SetID(id)

	if err := holder.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	dto := holder.RightHolder()
	sourceSystem, sourceRecordID := sourceReference(dto)

	query := `
		INSERT INTO right_holders (id, sequence, work_id, registry_person_id, name, role, share, society_name, registry_number, pseudonym, source_system, source_record_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		holder.WorkID(),
		dto.RegistryPersonID,
		dto.Name,
		string(dto.Role),
		dto.Share,
		dto.SocietyName,
		dto.RegistryNumber,
		dto.PrimaryPseudonym(),
		sourceSystem,
		sourceRecordID,
		holder.CreatedAt(),
		holder.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert right holder: %w", err)
	}

	return nil
}

// Get retrieves a right holder by ID, excluding soft-deleted rows
func (r *RightHolderRepository) Get(id string) (*models.PersistedRightHolder, error) {
	query := rightHolderSelect + " WHERE id = ? AND deleted_at IS NULL"
	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing right holder in the database
func (r *RightHolderRepository) Update(holder *models.PersistedRightHolder) error {
	if err := holder.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	holder.SetUpdatedAt(now)

	dto := holder.RightHolder()
	sourceSystem, sourceRecordID := sourceReference(dto)

	query := `
		UPDATE right_holders
		SET name = ?, role = ?, share = ?, society_name = ?, registry_number = ?, pseudonym = ?, source_system = ?, source_record_id = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		dto.Name,
		string(dto.Role),
		dto.Share,
		dto.SocietyName,
		dto.RegistryNumber,
		dto.PrimaryPseudonym(),
		sourceSystem,
		sourceRecordID,
		now,
		holder.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update right holder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return shared.ErrRightHolderNotFound
	}

	return nil
}

// Delete soft-deletes a right holder by setting deleted_at
func (r *RightHolderRepository) Delete(id string) error {
	result, err := r.db.Exec("UPDATE right_holders SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete right holder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return shared.ErrRightHolderNotFound
	}

	return nil
}

// List retrieves right holders matching the given criteria (supported:
// "work_id", "role"), ordered by their source-report sequence
func (r *RightHolderRepository) List(criteria map[string]any) ([]*models.PersistedRightHolder, error) {
	query := rightHolderSelect + " WHERE deleted_at IS NULL"
	args := []any{}

	if workID, ok := criteria["work_id"].(string); ok && workID != "" {
		query += " AND work_id = ?"
		args = append(args, workID)
	}
	if role, ok := criteria["role"].(string); ok && role != "" {
		query += " AND role = ?"
		args = append(args, role)
	}

	query += " ORDER BY sequence ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query right holders: %w", err)
	}
	defer rows.Close()

	var holders []*models.PersistedRightHolder
	for rows.Next() {
		holder, err := scanRightHolder(rows)
		if err != nil {
			return nil, err
		}
		holders = append(holders, holder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return holders, nil
}

// ListByWork retrieves all right holders attached to the given stored work
func (r *RightHolderRepository) ListByWork(workID string) ([]*models.PersistedRightHolder, error) {
	return r.List(map[string]any{"work_id": workID})
}

const rightHolderSelect = `
	SELECT id, sequence, work_id, registry_person_id, name, role, share, society_name, registry_number, pseudonym, source_system, source_record_id, created_at, updated_at, deleted_at
	FROM right_holders`

func (r *RightHolderRepository) scanOne(row *sql.Row) (*models.PersistedRightHolder, error) {
	holder, err := scanRightHolder(row)
	if err == sql.ErrNoRows {
		return nil, shared.ErrRightHolderNotFound
	}
	return holder, err
}

func scanRightHolder(row scannable) (*models.PersistedRightHolder, error) {
	var (
		id             string
		sequence       int
		workID         string
		personID       string
		name           string
		role           string
		share          float64
		societyName    string
		registryNumber string
		pseudonym      string
		sourceSystem   string
		sourceRecordID string
		createdAt      time.Time
		updatedAt      time.Time
		deletedAt      sql.NullTime
	)

	err := row.Scan(&id, &sequence, &workID, &personID, &name, &role, &share, &societyName, &registryNumber, &pseudonym, &sourceSystem, &sourceRecordID, &createdAt, &updatedAt, &deletedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan right holder: %w", err)
	}

	dto := models.RightHolder{
		RegistryPersonID: personID,
		Name:             name,
		Role:             models.Role(role),
		Share:            share,
		SocietyName:      societyName,
		RegistryNumber:   registryNumber,
	}
	if pseudonym != "" {
		dto.Pseudonyms = []models.Pseudonym{{Name: pseudonym, IsPrimary: true}}
	}
	if sourceSystem != "" || sourceRecordID != "" {
		dto.SourceReferences = []models.SourceReference{
			{SourceSystemName: sourceSystem, SourceRecordID: sourceRecordID},
		}
	}

	holder := models.NewPersistedRightHolder(sequence, workID, dto)
	holder.SetID(id)
	holder.SetCreatedAt(createdAt)
	holder.SetUpdatedAt(updatedAt)
	if deletedAt.Valid {
		holder.SetDeletedAt(&deletedAt.Time)
	}

	return holder, nil
}

// sourceReference flattens the single provenance entry for storage.
func sourceReference(dto models.RightHolder) (system, recordID string) {
	if len(dto.SourceReferences) > 0 {
		return dto.SourceReferences[0].SourceSystemName, dto.SourceReferences[0].SourceRecordID
	}
	return "", ""
}
