package students_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"student-registry/core/database"
	"student-registry/feature/students"
	"student-registry/feature/students/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)

	app := fiber.New()
	require.NoError(t, students.NewFeature(db, zap.NewNop()).Load(app))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 2000) // 2s timeout
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func janePayload() map[string]string {
	return map[string]string{
		"name":      "Jane",
		"surname":   "Doe",
		"email":     "J@X.com",
		"phone":     "0123456789",
		"id_number": "1234567890123",
		"course":    "CS",
	}
}

func TestHandleHealth(t *testing.T) {
	app := setupApp(t)

	status, body := doJSON(t, app, "GET", "/api/health", nil)
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestStudentLifecycle(t *testing.T) {
	app := setupApp(t)

	// Create: 201 with normalized email.
	status, body := doJSON(t, app, "POST", "/api/students", janePayload())
	require.Equal(t, 201, status)

	var created models.Student
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, "j@x.com", created.Email)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	// Same id_number with a different email: 409.
	dup := janePayload()
	dup["email"] = "other@x.com"
	status, body = doJSON(t, app, "POST", "/api/students", dup)
	assert.Equal(t, 409, status)
	assert.Contains(t, string(body), "already exists")

	// Update course: 200, id_number unchanged, updated_at moved.
	upd := janePayload()
	upd["course"] = "Math"
	status, body = doJSON(t, app, "PUT", "/api/students/1", upd)
	require.Equal(t, 200, status)

	var updated models.Student
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Math", updated.Course)
	assert.Equal(t, "1234567890123", updated.IDNumber)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// Delete: 200 with success flag, then the record is gone.
	status, body = doJSON(t, app, "DELETE", "/api/students/1", nil)
	assert.Equal(t, 200, status)
	assert.JSONEq(t, `{"success":true}`, string(body))

	status, _ = doJSON(t, app, "GET", "/api/students/1", nil)
	assert.Equal(t, 404, status)

	status, _ = doJSON(t, app, "DELETE", "/api/students/1", nil)
	assert.Equal(t, 404, status)
}

func TestHandleCreateValidationErrors(t *testing.T) {
	app := setupApp(t)

	bad := janePayload()
	bad["name"] = "J4ne"
	bad["phone"] = "123"
	status, body := doJSON(t, app, "POST", "/api/students", bad)
	require.Equal(t, 400, status)

	var resp struct {
		Errors []models.FieldError `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))

	fields := make([]string, 0, len(resp.Errors))
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "phone"}, fields)
}

func TestHandleListAndSearch(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, "POST", "/api/students", janePayload())
	require.Equal(t, 201, status)

	bob := janePayload()
	bob["name"] = "Bob"
	bob["email"] = "bob@y.com"
	bob["id_number"] = "7777777777777"
	status, _ = doJSON(t, app, "POST", "/api/students", bob)
	require.Equal(t, 201, status)

	status, body := doJSON(t, app, "GET", "/api/students", nil)
	require.Equal(t, 200, status)

	var all []models.Student
	require.NoError(t, json.Unmarshal(body, &all))
	require.Len(t, all, 2)
	assert.Equal(t, "bob@y.com", all[0].Email, "newest first")

	status, body = doJSON(t, app, "GET", "/api/students?q=BOB", nil)
	require.Equal(t, 200, status)

	var matched []models.Student
	require.NoError(t, json.Unmarshal(body, &matched))
	require.Len(t, matched, 1)
	assert.Equal(t, "bob@y.com", matched[0].Email)

	// Empty result is an empty array, not null.
	status, body = doJSON(t, app, "GET", "/api/students?q=nobody", nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestHandleListQueryTooLong(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, "GET", "/api/students?q="+strings.Repeat("a", 101), nil)
	assert.Equal(t, 400, status)
}

func TestHandleInvalidID(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/api/students/abc", "/api/students/-1"} {
		status, _ := doJSON(t, app, "GET", path, nil)
		assert.Equal(t, 400, status, "GET %s", path)

		status, _ = doJSON(t, app, "DELETE", path, nil)
		assert.Equal(t, 400, status, "DELETE %s", path)
	}

	status, _ := doJSON(t, app, "PUT", "/api/students/abc", janePayload())
	assert.Equal(t, 400, status)
}

func TestHandleUpdateConflict(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, "POST", "/api/students", janePayload())
	require.Equal(t, 201, status)

	bob := janePayload()
	bob["email"] = "bob@y.com"
	bob["id_number"] = "7777777777777"
	status, _ = doJSON(t, app, "POST", "/api/students", bob)
	require.Equal(t, 201, status)

	// Bob taking Jane's email must 409.
	steal := bob
	steal["email"] = "j@x.com"
	status, body := doJSON(t, app, "PUT", "/api/students/2", steal)
	assert.Equal(t, 409, status)
	assert.Contains(t, string(body), "already used by another student")
}

func TestHandleUpdateNotFound(t *testing.T) {
	app := setupApp(t)

	status, _ := doJSON(t, app, "PUT", "/api/students/999", janePayload())
	assert.Equal(t, 404, status)
}
