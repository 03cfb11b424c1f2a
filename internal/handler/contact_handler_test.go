package handler_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/folio-go-api/internal/database"
	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/handler"
	"github.com/noah-isme/folio-go-api/internal/repository"
	"github.com/noah-isme/folio-go-api/internal/service"
)

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, service.ActivityEntry) {}

func newHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newContactApps(t *testing.T) *fiber.App {
	t.Helper()
	db := newHandlerTestDB(t)
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := service.NewContactService(repository.NewContactRepository(db), nopRecorder{}, validate, nil, nil, zerolog.New(io.Discard))

	app := fiber.New()
	handler.NewContactHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/contact"))
	handler.NewAdminContactHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/admin/messages"))
	return app
}

func TestContactHandlerSubmitSuccess(t *testing.T) {
	app := newContactApps(t)

	req := jsonRequest(t, http.MethodPost, "/api/v1/contact", dto.ContactSubmitRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "I would like to talk about a project.",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body struct {
		Success bool                       `json:"success"`
		Data    dto.ContactMessageResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.NotZero(t, body.Data.ID)
}

func TestContactHandlerSubmitValidation(t *testing.T) {
	app := newContactApps(t)

	req := jsonRequest(t, http.MethodPost, "/api/v1/contact", dto.ContactSubmitRequest{
		Name:  "Ada",
		Email: "not-an-email",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminContactHandlerFlagsRoundTrip(t *testing.T) {
	app := newContactApps(t)

	submit := jsonRequest(t, http.MethodPost, "/api/v1/contact", dto.ContactSubmitRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "I would like to talk about a project.",
	})
	resp, err := app.Test(submit)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data dto.ContactMessageResponse `json:"data"`
	}
	decodeResponse(t, resp, &created)

	read := true
	patch := jsonRequest(t, http.MethodPatch,
		fmt.Sprintf("/api/v1/admin/messages/%d", created.Data.ID),
		dto.ContactFlagsRequest{Read: &read})
	resp, err = app.Test(patch)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated struct {
		Data dto.ContactMessageResponse `json:"data"`
	}
	decodeResponse(t, resp, &updated)
	require.True(t, updated.Data.Read)

	list, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/admin/messages?box=unread", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, list.StatusCode)

	var listBody struct {
		Data []dto.ContactMessageResponse `json:"data"`
	}
	decodeResponse(t, list, &listBody)
	require.Empty(t, listBody.Data)
}

func TestAdminContactHandlerFlagsNotFound(t *testing.T) {
	app := newContactApps(t)

	read := true
	patch := jsonRequest(t, http.MethodPatch, "/api/v1/admin/messages/999", dto.ContactFlagsRequest{Read: &read})
	resp, err := app.Test(patch)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
