package students

import (
	"context"
	"testing"
	"time"

	"student-registry/core/database"
	"student-registry/feature/students/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)

	store := NewStore(db)
	require.NoError(t, store.Migrate())
	return NewService(store, zap.NewNop())
}

func TestServiceCreate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.StudentPayload{
		Name:     "Jane",
		Surname:  "Doe",
		Email:    "J@X.com",
		Phone:    "0123456789",
		IDNumber: "1234567890123",
		Course:   "CS",
	})
	require.NoError(t, err)

	assert.Positive(t, created.ID)
	assert.Equal(t, "j@x.com", created.Email, "email is stored in canonical lowercase form")
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, "", created.Address, "address defaults to empty string")
}

func TestServiceCreateValidationFailed(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Create(context.Background(), &models.StudentPayload{
		Name:  "J4ne",
		Phone: "123",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	// All violations come back at once, not just the first.
	assert.GreaterOrEqual(t, len(verr.Fields), 4)
}

func TestServiceCreateConflict(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, payload("jane@x.com", "1234567890123"))
	require.NoError(t, err)

	var cerr *ConflictError

	// Same id_number, different email.
	_, err = svc.Create(ctx, payload("other@x.com", "1234567890123"))
	assert.ErrorAs(t, err, &cerr)

	// Same email in different case collides after normalization.
	_, err = svc.Create(ctx, payload("JANE@X.COM", "9999999999999"))
	assert.ErrorAs(t, err, &cerr)
}

func TestServiceUpdate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, payload("jane@x.com", "1234567890123"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// Re-submitting the record's own email/id_number is not a conflict.
	changed := payload("jane@x.com", "1234567890123")
	changed.Course = "Math"
	updated, err := svc.Update(ctx, created.ID, changed)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Math", updated.Course)
	assert.Equal(t, "1234567890123", updated.IDNumber)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))
}

func TestServiceUpdateConflictWithOther(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, payload("first@x.com", "1111111111111"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, payload("second@x.com", "2222222222222"))
	require.NoError(t, err)

	var cerr *ConflictError
	_, err = svc.Update(ctx, second.ID, payload("first@x.com", "2222222222222"))
	assert.ErrorAs(t, err, &cerr)
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Update(context.Background(), 404, payload("jane@x.com", "1234567890123"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceList(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, payload("a@x.com", "1111111111111"))
	require.NoError(t, err)
	second := payload("b@x.com", "2222222222222")
	second.Name = "Bob"
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "b@x.com", all[0].Email, "newest first")

	matched, err := svc.List(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "b@x.com", matched[0].Email)
}

func TestServiceDelete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, payload("jane@x.com", "1234567890123"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
