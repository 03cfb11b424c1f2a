package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/folio-go-api/internal/dto"
)

func TestSkillServiceCreateAppendsAndAudits(t *testing.T) {
	db := newTestDB(t)
	spy := &recorderSpy{}
	svc := NewSkillService(db, spy, testValidator(), testLogger())
	ctx := context.Background()

	frontend, err := svc.Create(ctx, dto.SkillRequest{Category: "Frontend", Items: []string{"React", "TS"}})
	require.NoError(t, err)
	require.Equal(t, 0, frontend.Order)

	backend, err := svc.Create(ctx, dto.SkillRequest{Category: "Backend", Items: []string{"Go"}})
	require.NoError(t, err)
	require.Equal(t, 1, backend.Order)

	entry := spy.last(t)
	require.Equal(t, "Created skill", entry.Action)
	require.Equal(t, "Backend", entry.Item)
	require.Equal(t, "skills", entry.Category)
	require.NotNil(t, entry.RelatedID)
	require.Equal(t, backend.ID, *entry.RelatedID)
}

func TestSkillServiceCreateValidates(t *testing.T) {
	db := newTestDB(t)
	spy := &recorderSpy{}
	svc := NewSkillService(db, spy, testValidator(), testLogger())

	_, err := svc.Create(context.Background(), dto.SkillRequest{Category: "", Items: nil})
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Empty(t, spy.all())
}

func TestSkillServiceReorderAndList(t *testing.T) {
	db := newTestDB(t)
	spy := &recorderSpy{}
	svc := NewSkillService(db, spy, testValidator(), testLogger())
	ctx := context.Background()

	frontend, err := svc.Create(ctx, dto.SkillRequest{Category: "Frontend", Items: []string{"React"}})
	require.NoError(t, err)
	backend, err := svc.Create(ctx, dto.SkillRequest{Category: "Backend", Items: []string{"Go"}})
	require.NoError(t, err)

	require.NoError(t, svc.Reorder(ctx, []uint{backend.ID, frontend.ID}))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Backend", items[0].Category)
	require.Equal(t, "Frontend", items[1].Category)

	entry := spy.last(t)
	require.Equal(t, "Reordered skills", entry.Action)
}

func TestSkillServiceUpdateAuditsUpdatedLabel(t *testing.T) {
	db := newTestDB(t)
	spy := &recorderSpy{}
	svc := NewSkillService(db, spy, testValidator(), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.SkillRequest{Category: "Frontend", Items: []string{"React"}})
	require.NoError(t, err)

	renamed := "Web Platform"
	updated, err := svc.Update(ctx, created.ID, dto.SkillUpdateRequest{Category: &renamed})
	require.NoError(t, err)
	require.Equal(t, "Web Platform", updated.Category)
	require.Equal(t, []string{"React"}, updated.Items)

	// The audit record names the document as it reads after the update.
	entry := spy.last(t)
	require.Equal(t, "Updated skill", entry.Action)
	require.Equal(t, "Web Platform", entry.Item)
}

func TestSkillServiceUpdateMissingID(t *testing.T) {
	db := newTestDB(t)
	svc := NewSkillService(db, &recorderSpy{}, testValidator(), testLogger())

	renamed := "X"
	_, err := svc.Update(context.Background(), 999, dto.SkillUpdateRequest{Category: &renamed})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSkillServiceDeleteCompactsAndAudits(t *testing.T) {
	db := newTestDB(t)
	spy := &recorderSpy{}
	svc := NewSkillService(db, spy, testValidator(), testLogger())
	ctx := context.Background()

	var ids []uint
	for _, category := range []string{"A", "B", "C"} {
		created, err := svc.Create(ctx, dto.SkillRequest{Category: category, Items: []string{"x"}})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	require.NoError(t, svc.Delete(ctx, ids[1]))

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, 0, items[0].Order)
	require.Equal(t, "A", items[0].Category)
	require.Equal(t, 1, items[1].Order)
	require.Equal(t, "C", items[1].Category)

	entry := spy.last(t)
	require.Equal(t, "Deleted skill", entry.Action)
	require.Equal(t, "B", entry.Item)
}

func TestSkillServiceDeleteMissingIDRecordsNothing(t *testing.T) {
	db := newTestDB(t)
	spy := &recorderSpy{}
	svc := NewSkillService(db, spy, testValidator(), testLogger())

	require.ErrorIs(t, svc.Delete(context.Background(), 999), ErrNotFound)
	require.Empty(t, spy.all())
}

func TestSkillServiceCreateSurvivesAuditFailure(t *testing.T) {
	db := newTestDB(t)
	// A real recorder over a broken audit store; the mutation must not care.
	recorder := NewActivityService(failingActivityRepo{}, NewActivityBroker(), nil, testLogger())
	svc := NewSkillService(db, recorder, testValidator(), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.SkillRequest{Category: "Frontend", Items: []string{"React"}})
	require.NoError(t, err)
	require.Equal(t, 0, created.Order)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestFeedbackServiceRequiresProjectNameForProjectType(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db, &recorderSpy{}, testValidator(), testLogger())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.FeedbackRequest{
		Name:     "Ada",
		Role:     "CTO",
		Feedback: "Great work",
		Type:     "project",
	})
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)

	_, err = svc.Create(ctx, dto.FeedbackRequest{
		Name:        "Ada",
		Role:        "CTO",
		Feedback:    "Great work",
		Type:        "project",
		ProjectName: "Portfolio",
	})
	require.NoError(t, err)

	// General feedback needs no project reference.
	_, err = svc.Create(ctx, dto.FeedbackRequest{
		Name:     "Grace",
		Role:     "Engineer",
		Feedback: "Lovely site",
		Type:     "general",
	})
	require.NoError(t, err)
}

func TestFeedbackServiceModerationGate(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db, &recorderSpy{}, testValidator(), testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.FeedbackRequest{
		Name:     "Ada",
		Role:     "CTO",
		Feedback: "Great work",
		Type:     "general",
	})
	require.NoError(t, err)
	require.False(t, created.IsApproved)

	public, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Empty(t, public)

	approved := true
	_, err = svc.Update(ctx, created.ID, dto.FeedbackUpdateRequest{IsApproved: &approved})
	require.NoError(t, err)

	public, err = svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	require.Equal(t, "Ada", public[0].Name)

	// Hiding an approved entry removes it again without deleting it.
	hidden := false
	_, err = svc.Update(ctx, created.ID, dto.FeedbackUpdateRequest{IsVisible: &hidden})
	require.NoError(t, err)

	public, err = svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Empty(t, public)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestFeedbackServiceDefaultsRating(t *testing.T) {
	db := newTestDB(t)
	svc := NewFeedbackService(db, &recorderSpy{}, testValidator(), testLogger())

	created, err := svc.Create(context.Background(), dto.FeedbackRequest{
		Name:     "Ada",
		Role:     "CTO",
		Feedback: "Great work",
		Type:     "general",
	})
	require.NoError(t, err)
	require.Equal(t, 5, created.Rating)
}
