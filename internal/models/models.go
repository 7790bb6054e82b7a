// package models defines the data model for repertoire report extraction
package models

import (
	"fmt"
	"time"
)

// Role is the legal capacity a right holder claims on a work, resolved from
// the report's 1-2 letter category code.
type Role string

const (
	RoleAuthor       Role = "Author"
	RolePublisher    Role = "Publisher"
	RoleVersionist   Role = "Versionist"
	RoleSubPublisher Role = "SubPublisher"
)

// Pseudonym is an alternate name a right holder publishes under.
type Pseudonym struct {
	Name      string `json:"name"`
	IsPrimary bool   `json:"is_primary"`
}

// SourceReference records where a right-holder row was extracted from:
// the origin registry and the row id within the source report.
type SourceReference struct {
	SourceSystemName string `json:"source_system_name"`
	SourceRecordID   string `json:"source_record_id"`
}

// RightHolder represents one party's claim on the enclosing Work.
type RightHolder struct {
	RegistryPersonID string `json:"registry_person_id"`
	Name             string `json:"name"`
	Role             Role   `json:"role"`
	// Share is kept at printed magnitude: a source token "33,33" is stored
	// as 33.33, never divided down to a [0,1] fraction.
	Share            float64           `json:"share"`
	SocietyName      string            `json:"society_name,omitempty"`
	RegistryNumber   string            `json:"registry_number,omitempty"`
	Pseudonyms       []Pseudonym       `json:"pseudonyms,omitempty"`
	SourceReferences []SourceReference `json:"source_references,omitempty"`
}

// PrimaryPseudonym returns the primary pseudonym name, or "" if none is set.
func (rh RightHolder) PrimaryPseudonym() string {
	for _, p := range rh.Pseudonyms {
		if p.IsPrimary {
			return p.Name
		}
	}
	return ""
}

// Work represents one musical composition entry in the source registry.
//
// RightHolders are appended in source order; the slice stays empty until the
// first right-holder line after this work's header.
type Work struct {
	RegistryWorkID string `json:"registry_work_id"`
	// ExternalCode is the ISWC-style identifier, or the report's explicit
	// "-" marker when the work has none.
	ExternalCode string `json:"external_code,omitempty"`
	Title        string `json:"title"`
	Status       string `json:"status,omitempty"`
	// CreatedAt is the registration date exactly as printed; the report's
	// date formats vary, so it is not parsed.
	CreatedAt    string        `json:"created_at,omitempty"`
	RightHolders []RightHolder `json:"right_holders"`
}

// Model defines the base interface for all persistent models.
// Implementations include PersistedWork and PersistedRightHolder.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// ValidRole reports whether r is one of the four known legal roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAuthor, RolePublisher, RoleVersionist, RoleSubPublisher:
		return true
	}
	return false
}

func requireField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}
