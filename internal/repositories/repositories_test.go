package repositories

import (
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"repertorio/internal/models"
	"repertorio/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func sampleWork() models.Work {
	return models.Work{
		RegistryWorkID: "1",
		ExternalCode:   "T-000123",
		Title:          "My Song Title",
		Status:         "Active",
		CreatedAt:      "2020",
	}
}

func sampleHolder() models.RightHolder {
	return models.RightHolder{
		RegistryPersonID: "12345",
		Name:             "Jane Doe",
		Role:             models.RoleAuthor,
		Share:            33.33,
		SocietyName:      "BMI",
		RegistryNumber:   "12345678",
		Pseudonyms:       []models.Pseudonym{{Name: "J. Roe", IsPrimary: true}},
		SourceReferences: []models.SourceReference{{SourceSystemName: "ECAD", SourceRecordID: "1"}},
	}
}

func TestWorkRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWorkRepository(db)

		work := models.NewPersistedWork(0, sampleWork())
		if err := repo.Create(work); err != nil {
			t.Fatalf("failed to create work: %v", err)
		}

		if work.ID() == "" {
			t.Error("work ID should be set after creation")
		}
		if work.Sequence() == 0 {
			t.Error("work sequence should be assigned on creation")
		}
	})

	t.Run("Create rejects invalid work", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWorkRepository(db)

		if err := repo.Create(models.NewPersistedWork(0, models.Work{Title: "No ID"})); err == nil {
			t.Error("creating a work without registry_work_id should fail")
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWorkRepository(db)

		work := models.NewPersistedWork(0, sampleWork())
		if err := repo.Create(work); err != nil {
			t.Fatalf("failed to create work: %v", err)
		}

		retrieved, err := repo.Get(work.ID())
		if err != nil {
			t.Fatalf("failed to get work: %v", err)
		}
		if !reflect.DeepEqual(retrieved.Work(), work.Work()) {
			t.Errorf("retrieved DTO differs: %+v vs %+v", retrieved.Work(), work.Work())
		}
	})

	t.Run("GetByRegistryID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWorkRepository(db)

		work := models.NewPersistedWork(0, sampleWork())
		if err := repo.Create(work); err != nil {
			t.Fatalf("failed to create work: %v", err)
		}

		retrieved, err := repo.GetByRegistryID("1")
		if err != nil {
			t.Fatalf("failed to get work by registry id: %v", err)
		}
		if retrieved.ID() != work.ID() {
			t.Errorf("expected ID %s, got %s", work.ID(), retrieved.ID())
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWorkRepository(db)

		work := models.NewPersistedWork(0, sampleWork())
		if err := repo.Create(work); err != nil {
			t.Fatalf("failed to create work: %v", err)
		}

		dto := work.Work()
		dto.Status = "Archived"
		work.SetWork(dto)

		if err := repo.Update(work); err != nil {
			t.Fatalf("failed to update work: %v", err)
		}

		retrieved, err := repo.Get(work.ID())
		if err != nil {
			t.Fatalf("failed to get work: %v", err)
		}
		if retrieved.Status() != "Archived" {
			t.Errorf("expected status Archived, got %s", retrieved.Status())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWorkRepository(db)

		work := models.NewPersistedWork(0, sampleWork())
		if err := repo.Create(work); err != nil {
			t.Fatalf("failed to create work: %v", err)
		}

		if err := repo.Delete(work.ID()); err != nil {
			t.Fatalf("failed to delete work: %v", err)
		}
		if _, err := repo.Get(work.ID()); !errors.Is(err, shared.ErrWorkNotFound) {
			t.Errorf("expected ErrWorkNotFound after delete, got %v", err)
		}
		if err := repo.Delete(work.ID()); !errors.Is(err, shared.ErrWorkNotFound) {
			t.Errorf("double delete should report not found, got %v", err)
		}
	})

	t.Run("List preserves source order", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWorkRepository(db)

		for _, id := range []string{"1", "2", "3"} {
			dto := sampleWork()
			dto.RegistryWorkID = id
			if err := repo.Create(models.NewPersistedWork(0, dto)); err != nil {
				t.Fatalf("failed to create work %s: %v", id, err)
			}
		}

		works, err := repo.List(nil)
		if err != nil {
			t.Fatalf("failed to list works: %v", err)
		}
		if len(works) != 3 {
			t.Fatalf("expected 3 works, got %d", len(works))
		}
		for i, id := range []string{"1", "2", "3"} {
			if works[i].RegistryWorkID() != id {
				t.Errorf("expected work %s at position %d, got %s", id, i, works[i].RegistryWorkID())
			}
		}
	})

	t.Run("List filters by status", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewWorkRepository(db)

		active := sampleWork()
		pending := sampleWork()
		pending.RegistryWorkID = "2"
		pending.Status = "Pending"

		for _, dto := range []models.Work{active, pending} {
			if err := repo.Create(models.NewPersistedWork(0, dto)); err != nil {
				t.Fatalf("failed to create work: %v", err)
			}
		}

		works, err := repo.List(map[string]any{"status": "Pending"})
		if err != nil {
			t.Fatalf("failed to list works: %v", err)
		}
		if len(works) != 1 || works[0].Status() != "Pending" {
			t.Errorf("unexpected filter result: %d works", len(works))
		}
	})
}

func TestRightHolderRepository(t *testing.T) {
	createWork := func(t *testing.T, db *sql.DB) *models.PersistedWork {
		t.Helper()
		work := models.NewPersistedWork(0, sampleWork())
		if err := NewWorkRepository(db).Create(work); err != nil {
			t.Fatalf("failed to create parent work: %v", err)
		}
		return work
	}

	t.Run("Create and Get round-trip", func(t *testing.T) {
		db := setupTestDB(t)
		work := createWork(t, db)
		repo := NewRightHolderRepository(db)

		holder := models.NewPersistedRightHolder(0, work.ID(), sampleHolder())
		if err := repo.Create(holder); err != nil {
			t.Fatalf("failed to create right holder: %v", err)
		}

		retrieved, err := repo.Get(holder.ID())
		if err != nil {
			t.Fatalf("failed to get right holder: %v", err)
		}

		dto := retrieved.RightHolder()
		if dto.Name != "Jane Doe" || dto.Role != models.RoleAuthor || dto.Share != 33.33 {
			t.Errorf("unexpected DTO: %+v", dto)
		}
		if dto.PrimaryPseudonym() != "J. Roe" {
			t.Errorf("pseudonym lost in round-trip: %+v", dto.Pseudonyms)
		}
		if len(dto.SourceReferences) != 1 || dto.SourceReferences[0].SourceSystemName != "ECAD" {
			t.Errorf("source reference lost in round-trip: %+v", dto.SourceReferences)
		}
		if retrieved.WorkID() != work.ID() {
			t.Errorf("expected work id %s, got %s", work.ID(), retrieved.WorkID())
		}
	})

	t.Run("Create rejects missing work id", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewRightHolderRepository(db)

		if err := repo.Create(models.NewPersistedRightHolder(0, "", sampleHolder())); err == nil {
			t.Error("creating a right holder without work_id should fail")
		}
	})

	t.Run("ListByWork preserves source order", func(t *testing.T) {
		db := setupTestDB(t)
		work := createWork(t, db)
		repo := NewRightHolderRepository(db)

		names := []string{"Jane Doe", "John Roe", "Ann Smith"}
		for _, name := range names {
			dto := sampleHolder()
			dto.Name = name
			if err := repo.Create(models.NewPersistedRightHolder(0, work.ID(), dto)); err != nil {
				t.Fatalf("failed to create right holder %s: %v", name, err)
			}
		}

		holders, err := repo.ListByWork(work.ID())
		if err != nil {
			t.Fatalf("failed to list right holders: %v", err)
		}
		if len(holders) != 3 {
			t.Fatalf("expected 3 right holders, got %d", len(holders))
		}
		for i, name := range names {
			if holders[i].Name() != name {
				t.Errorf("expected %s at position %d, got %s", name, i, holders[i].Name())
			}
		}
	})

	t.Run("Update", func(t *testing.T) {
		db := setupTestDB(t)
		work := createWork(t, db)
		repo := NewRightHolderRepository(db)

		holder := models.NewPersistedRightHolder(0, work.ID(), sampleHolder())
		if err := repo.Create(holder); err != nil {
			t.Fatalf("failed to create right holder: %v", err)
		}

		dto := holder.RightHolder()
		dto.Share = 50
		holder.SetRightHolder(dto)

		if err := repo.Update(holder); err != nil {
			t.Fatalf("failed to update right holder: %v", err)
		}

		retrieved, err := repo.Get(holder.ID())
		if err != nil {
			t.Fatalf("failed to get right holder: %v", err)
		}
		if retrieved.Share() != 50 {
			t.Errorf("expected share 50, got %v", retrieved.Share())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		work := createWork(t, db)
		repo := NewRightHolderRepository(db)

		holder := models.NewPersistedRightHolder(0, work.ID(), sampleHolder())
		if err := repo.Create(holder); err != nil {
			t.Fatalf("failed to create right holder: %v", err)
		}

		if err := repo.Delete(holder.ID()); err != nil {
			t.Fatalf("failed to delete right holder: %v", err)
		}
		if _, err := repo.Get(holder.ID()); !errors.Is(err, shared.ErrRightHolderNotFound) {
			t.Errorf("expected ErrRightHolderNotFound after delete, got %v", err)
		}
	})
}
