package students

import (
	"context"

	"student-registry/feature/students/models"

	"go.uber.org/zap"
)

// MaxQueryLength bounds the search query; anything longer is rejected as
// malformed before it reaches the store.
const MaxQueryLength = 100

// Service orchestrates record operations: validation, uniqueness pre-check,
// then the store call. Cross-record (semantic) checks live here.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new students service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns all records, or only those matching the query when one is
// given, newest first.
func (s *Service) List(ctx context.Context, query string) ([]models.Student, error) {
	if query == "" {
		return s.store.List(ctx)
	}
	return s.store.Search(ctx, query)
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.store.GetByID(ctx, id)
}

// Create validates the payload, rejects duplicate email/id_number, and
// inserts the record. The returned record carries the generated id and
// timestamps.
func (s *Service) Create(ctx context.Context, payload *models.StudentPayload) (*models.Student, error) {
	payload.Normalize()
	if fields := payload.Validate(); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	// Uniqueness pre-check. The store's unique indexes remain the backstop
	// for the read-then-write race under concurrent identical submissions.
	taken, err := s.store.HasConflict(ctx, payload.Email, payload.IDNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: "Email or ID number already exists"}
	}

	student, err := s.store.Insert(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Student created", zap.Int64("id", student.ID))
	return student, nil
}

// Update validates the payload, rejects email/id_number collisions with any
// OTHER record, and replaces all mutable fields of the record.
func (s *Service) Update(ctx context.Context, id int64, payload *models.StudentPayload) (*models.Student, error) {
	payload.Normalize()
	if fields := payload.Validate(); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	// Excluding the record itself lets it keep its own email/id_number.
	taken, err := s.store.HasConflict(ctx, payload.Email, payload.IDNumber, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: "Email or ID number already used by another student"}
	}

	student, err := s.store.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Student updated", zap.Int64("id", id))
	return student, nil
}

// Delete removes a record by id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Student deleted", zap.Int64("id", id))
	return nil
}
