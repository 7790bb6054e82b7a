package models

import (
	"fmt"
	"time"
)

var (
	_ Model = (*PersistedWork)(nil)
	_ Model = (*PersistedRightHolder)(nil)
)

// PersistedWork is a database-backed [Work] with lifecycle metadata.
type PersistedWork struct {
	id        string
	sequence  int
	work      Work
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewPersistedWork wraps a Work DTO for persistence. The sequence number is
// assigned by the repository on create; pass 0 for new entities.
func NewPersistedWork(sequence int, dto Work) *PersistedWork {
	now := time.Now()
	return &PersistedWork{
		sequence:  sequence,
		work:      dto,
		createdAt: now,
		updatedAt: now,
	}
}

func (w *PersistedWork) ID() string              { return w.id }
func (w *PersistedWork) SetID(id string)         { w.id = id }
func (w *PersistedWork) Sequence() int           { return w.sequence }
func (w *PersistedWork) SetSequence(n int)       { w.sequence = n }
func (w *PersistedWork) CreatedAt() time.Time    { return w.createdAt }
func (w *PersistedWork) UpdatedAt() time.Time    { return w.updatedAt }
func (w *PersistedWork) SetCreatedAt(t time.Time) { w.createdAt = t }
func (w *PersistedWork) SetUpdatedAt(t time.Time) { w.updatedAt = t }
func (w *PersistedWork) DeletedAt() *time.Time   { return w.deletedAt }
func (w *PersistedWork) SetDeletedAt(t *time.Time) { w.deletedAt = t }

// Work returns the underlying DTO.
func (w *PersistedWork) Work() Work        { return w.work }
func (w *PersistedWork) SetWork(dto Work)  { w.work = dto }

func (w *PersistedWork) RegistryWorkID() string { return w.work.RegistryWorkID }
func (w *PersistedWork) ExternalCode() string   { return w.work.ExternalCode }
func (w *PersistedWork) Title() string          { return w.work.Title }
func (w *PersistedWork) Status() string         { return w.work.Status }

// Validate checks required fields before persistence.
func (w *PersistedWork) Validate() error {
	if err := requireField("registry_work_id", w.work.RegistryWorkID); err != nil {
		return err
	}
	return nil
}

// PersistedRightHolder is a database-backed [RightHolder] linked to a stored work.
type PersistedRightHolder struct {
	id        string
	sequence  int
	workID    string
	holder    RightHolder
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

// NewPersistedRightHolder wraps a RightHolder DTO for persistence under the
// work identified by workID (the PersistedWork id, not the registry work id).
func NewPersistedRightHolder(sequence int, workID string, dto RightHolder) *PersistedRightHolder {
	now := time.Now()
	return &PersistedRightHolder{
		sequence:  sequence,
		workID:    workID,
		holder:    dto,
		createdAt: now,
		updatedAt: now,
	}
}

func (r *PersistedRightHolder) ID() string                { return r.id }
func (r *PersistedRightHolder) SetID(id string)           { r.id = id }
func (r *PersistedRightHolder) Sequence() int             { return r.sequence }
func (r *PersistedRightHolder) SetSequence(n int)         { r.sequence = n }
func (r *PersistedRightHolder) WorkID() string            { return r.workID }
func (r *PersistedRightHolder) CreatedAt() time.Time      { return r.createdAt }
func (r *PersistedRightHolder) UpdatedAt() time.Time      { return r.updatedAt }
func (r *PersistedRightHolder) SetCreatedAt(t time.Time)  { r.createdAt = t }
func (r *PersistedRightHolder) SetUpdatedAt(t time.Time)  { r.updatedAt = t }
func (r *PersistedRightHolder) DeletedAt() *time.Time     { return r.deletedAt }
func (r *PersistedRightHolder) SetDeletedAt(t *time.Time) { r.deletedAt = t }

// RightHolder returns the underlying DTO.
func (r *PersistedRightHolder) RightHolder() RightHolder       { return r.holder }
func (r *PersistedRightHolder) SetRightHolder(dto RightHolder) { r.holder = dto }

func (r *PersistedRightHolder) RegistryPersonID() string { return r.holder.RegistryPersonID }
func (r *PersistedRightHolder) Name() string             { return r.holder.Name }
func (r *PersistedRightHolder) Role() Role               { return r.holder.Role }
func (r *PersistedRightHolder) Share() float64           { return r.holder.Share }

// Validate checks required fields before persistence.
func (r *PersistedRightHolder) Validate() error {
	if err := requireField("work_id", r.workID); err != nil {
		return err
	}
	if err := requireField("registry_person_id", r.holder.RegistryPersonID); err != nil {
		return err
	}
	if err := requireField("name", r.holder.Name); err != nil {
		return err
	}
	if !ValidRole(r.holder.Role) {
		return fmt.Errorf("role %q is not a known legal role", r.holder.Role)
	}
	if r.holder.Share < 0 {
		return fmt.Errorf("share must not be negative, got %v", r.holder.Share)
	}
	return nil
}
