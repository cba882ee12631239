package students

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"student-registry/feature/students/models"

	"gorm.io/gorm"
)

// Store is the persistence component owning the students table. It alone
// assigns ids and timestamps; callers never set them.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on top of an established database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the students table and its unique indexes.
// Idempotent, safe to run on every process start.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.Student{}); err != nil {
		return fmt.Errorf("failed to migrate students table: %w", err)
	}
	return nil
}

// List returns all records, newest first.
func (s *Store) List(ctx context.Context) ([]models.Student, error) {
	return find(s.db.WithContext(ctx))
}

// Search returns the records whose name, surname, email or id_number
// contains the query as a case-insensitive substring, newest first.
func (s *Store) Search(ctx context.Context, query string) ([]models.Student, error) {
	like := "%" + strings.ToLower(query) + "%"
	tx := s.db.WithContext(ctx).Where(
		"LOWER(name) LIKE ? OR LOWER(surname) LIKE ? OR LOWER(email) LIKE ? OR id_number LIKE ?",
		like, like, like, like,
	)
	return find(tx)
}

func find(tx *gorm.DB) ([]models.Student, error) {
	// Non-nil so an empty table encodes as [] rather than null.
	records := make([]models.Student, 0)
	// id tiebreak keeps ordering stable when timestamps collide.
	if err := tx.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return records, nil
}

// GetByID returns the record with the given id, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student %d: %w", id, err)
	}
	return &student, nil
}

// Insert persists a new record. The id and both timestamps are assigned
// here; created_at equals updated_at on the fresh row. A unique-constraint
// rejection surfaces as ConflictError.
func (s *Store) Insert(ctx context.Context, payload *models.StudentPayload) (*models.Student, error) {
	var student models.Student
	payload.Apply(&student)

	if err := s.db.WithContext(ctx).Create(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Email or ID number already exists"}
		}
		return nil, fmt.Errorf("failed to insert student: %w", err)
	}
	return &student, nil
}

// Update replaces all mutable fields of an existing record and refreshes
// updated_at. Returns ErrNotFound if no row has that id.
func (s *Store) Update(ctx context.Context, id int64, payload *models.StudentPayload) (*models.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload.Apply(student)

	if err := s.db.WithContext(ctx).Save(student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "Email or ID number already used by another student"}
		}
		return nil, fmt.Errorf("failed to update student %d: %w", id, err)
	}
	return student, nil
}

// Delete removes the record. Returns ErrNotFound if no row has that id.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&models.Student{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete student %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HasConflict reports whether any record other than excludeID already uses
// the email or the id_number. Pass excludeID 0 for creates.
func (s *Store) HasConflict(ctx context.Context, email, idNumber string, excludeID int64) (bool, error) {
	var count int64
	tx := s.db.WithContext(ctx).Model(&models.Student{}).
		Where("email = ? OR id_number = ?", email, idNumber)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check uniqueness: %w", err)
	}
	return count > 0, nil
}
