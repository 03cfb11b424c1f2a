package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/handler"
	"github.com/noah-isme/folio-go-api/internal/service"
)

type mockSkillService struct {
	items      []dto.SkillResponse
	createErr  error
	updateErr  error
	deleteErr  error
	reorderErr error
	reorderIDs []uint
}

func (m *mockSkillService) List(context.Context) ([]dto.SkillResponse, error) {
	return m.items, nil
}

func (m *mockSkillService) Get(_ context.Context, id uint) (dto.SkillResponse, error) {
	for _, item := range m.items {
		if item.ID == id {
			return item, nil
		}
	}
	return dto.SkillResponse{}, service.ErrNotFound
}

func (m *mockSkillService) Create(_ context.Context, req dto.SkillRequest) (dto.SkillResponse, error) {
	if m.createErr != nil {
		return dto.SkillResponse{}, m.createErr
	}
	return dto.SkillResponse{ID: 1, Category: req.Category, Items: req.Items}, nil
}

func (m *mockSkillService) Update(_ context.Context, id uint, req dto.SkillUpdateRequest) (dto.SkillResponse, error) {
	if m.updateErr != nil {
		return dto.SkillResponse{}, m.updateErr
	}
	resp := dto.SkillResponse{ID: id}
	if req.Category != nil {
		resp.Category = *req.Category
	}
	return resp, nil
}

func (m *mockSkillService) Delete(_ context.Context, id uint) error {
	return m.deleteErr
}

func (m *mockSkillService) Reorder(_ context.Context, ids []uint) error {
	m.reorderIDs = append([]uint(nil), ids...)
	return m.reorderErr
}

func newSkillApp(svc service.SkillService) *fiber.App {
	app := fiber.New()
	handler.NewContentHandler(svc, "skill", zerolog.New(io.Discard)).Register(app.Group("/api/v1/admin/skills"))
	return app
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func validationError(t *testing.T) error {
	t.Helper()
	err := validator.New(validator.WithRequiredStructEnabled()).Struct(dto.SkillRequest{})
	require.Error(t, err)
	return err
}

func TestContentHandlerListSuccess(t *testing.T) {
	svc := &mockSkillService{items: []dto.SkillResponse{{ID: 1, Category: "Frontend"}}}
	app := newSkillApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/admin/skills", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                `json:"success"`
		Data    []dto.SkillResponse `json:"data"`
		Message string              `json:"message"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, "skills retrieved", body.Message)
	require.Len(t, body.Data, 1)
}

func TestContentHandlerCreateSuccess(t *testing.T) {
	svc := &mockSkillService{}
	app := newSkillApp(svc)

	req := jsonRequest(t, http.MethodPost, "/api/v1/admin/skills", dto.SkillRequest{
		Category: "Frontend",
		Items:    []string{"React"},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestContentHandlerCreateValidationFailure(t *testing.T) {
	svc := &mockSkillService{createErr: validationError(t)}
	app := newSkillApp(svc)

	req := jsonRequest(t, http.MethodPost, "/api/v1/admin/skills", dto.SkillRequest{})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestContentHandlerCreateDuplicateSlug(t *testing.T) {
	svc := &mockSkillService{createErr: service.ErrDuplicateSlug}
	app := newSkillApp(svc)

	req := jsonRequest(t, http.MethodPost, "/api/v1/admin/skills", dto.SkillRequest{
		Category: "Frontend",
		Items:    []string{"React"},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestContentHandlerUpdateNotFound(t *testing.T) {
	svc := &mockSkillService{updateErr: service.ErrNotFound}
	app := newSkillApp(svc)

	category := "Backend"
	req := jsonRequest(t, http.MethodPatch, "/api/v1/admin/skills/42", dto.SkillUpdateRequest{Category: &category})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestContentHandlerUpdateInvalidID(t *testing.T) {
	app := newSkillApp(&mockSkillService{})

	category := "Backend"
	req := jsonRequest(t, http.MethodPatch, "/api/v1/admin/skills/abc", dto.SkillUpdateRequest{Category: &category})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestContentHandlerDeleteNotFound(t *testing.T) {
	svc := &mockSkillService{deleteErr: service.ErrNotFound}
	app := newSkillApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/skills/42", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestContentHandlerReorder(t *testing.T) {
	svc := &mockSkillService{}
	app := newSkillApp(svc)

	req := jsonRequest(t, http.MethodPut, "/api/v1/admin/skills/reorder", dto.ReorderRequest{
		OrderedIDs: []uint{3, 1, 2},
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, []uint{3, 1, 2}, svc.reorderIDs)
}

func TestContentHandlerReorderEmptyPayload(t *testing.T) {
	svc := &mockSkillService{}
	app := newSkillApp(svc)

	req := jsonRequest(t, http.MethodPut, "/api/v1/admin/skills/reorder", dto.ReorderRequest{})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Empty(t, svc.reorderIDs)
}
