package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/folio-go-api/internal/dto"
	"github.com/noah-isme/folio-go-api/internal/models"
	"github.com/noah-isme/folio-go-api/internal/repository"
)

type deliveryStub struct {
	delivered chan models.ContactMessage
	err       error
}

func (d *deliveryStub) Deliver(_ context.Context, message models.ContactMessage) error {
	if d.delivered != nil {
		d.delivered <- message
	}
	return d.err
}

func newContactService(t *testing.T, delivery ContactDelivery, rdb *redis.Client) (*ContactService, *recorderSpy) {
	t.Helper()
	db := newTestDB(t)
	spy := &recorderSpy{}
	svc := NewContactService(repository.NewContactRepository(db), spy, testValidator(), delivery, rdb, testLogger())
	return svc, spy
}

func submitRequest() dto.ContactSubmitRequest {
	return dto.ContactSubmitRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "I would like to talk about a project.",
	}
}

func TestContactServiceSubmitPersistsAndAudits(t *testing.T) {
	svc, spy := newContactService(t, nil, nil)

	message, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)
	require.NotZero(t, message.ID)
	require.False(t, message.Read)

	entry := spy.last(t)
	require.Equal(t, "New message received", entry.Action)
	require.Equal(t, "Ada", entry.Item)
	require.Equal(t, models.CategoryMessages, entry.Category)
}

func TestContactServiceSubmitTruncatesActivityDetails(t *testing.T) {
	svc, spy := newContactService(t, nil, nil)

	req := submitRequest()
	req.Message = strings.Repeat("a", 150)

	_, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	entry := spy.last(t)
	require.Equal(t, strings.Repeat("a", 100)+"...", entry.Details)
	require.Len(t, entry.Details, 103)
}

func TestContactServiceSubmitHoneypot(t *testing.T) {
	svc, spy := newContactService(t, nil, nil)

	req := submitRequest()
	req.Honeypot = "http://spam.example"

	message, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	require.Zero(t, message.ID)
	require.Empty(t, spy.all())

	listed, err := svc.List(context.Background(), dto.ContactListRequest{Box: repository.ContactBoxAll})
	require.NoError(t, err)
	require.Empty(t, listed.Items)
}

func TestContactServiceSubmitDeduplicates(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc, _ := newContactService(t, nil, rdb)
	ctx := context.Background()

	_, err = svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	_, err = svc.Submit(ctx, submitRequest())
	require.ErrorIs(t, err, ErrDuplicateSubmission)

	// A different message from the same sender passes.
	other := submitRequest()
	other.Message = "A different enquiry entirely."
	_, err = svc.Submit(ctx, other)
	require.NoError(t, err)
}

func TestContactServiceSubmitSurvivesDeliveryFailure(t *testing.T) {
	delivered := make(chan models.ContactMessage, 1)
	delivery := &deliveryStub{delivered: delivered, err: errors.New("chat api down")}
	svc, _ := newContactService(t, delivery, nil)

	message, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)
	require.NotZero(t, message.ID)

	select {
	case sent := <-delivered:
		require.Equal(t, "Ada", sent.Name)
	case <-time.After(time.Second):
		t.Fatal("expected the notification to be attempted")
	}
}

func TestContactServiceUpdateFlagsTransitions(t *testing.T) {
	svc, spy := newContactService(t, nil, nil)
	ctx := context.Background()

	message, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)
	before := len(spy.all())

	read := true
	updated, err := svc.UpdateFlags(ctx, message.ID, dto.ContactFlagsRequest{Read: &read})
	require.NoError(t, err)
	require.True(t, updated.Read)

	entry := spy.last(t)
	require.Equal(t, "Marked message as read", entry.Action)

	// Starring is not an audited transition.
	starred := true
	updated, err = svc.UpdateFlags(ctx, message.ID, dto.ContactFlagsRequest{Starred: &starred})
	require.NoError(t, err)
	require.True(t, updated.Starred)
	require.Len(t, spy.all(), before+1)

	archived := true
	_, err = svc.UpdateFlags(ctx, message.ID, dto.ContactFlagsRequest{Archived: &archived})
	require.NoError(t, err)
	require.Equal(t, "Archived message", spy.last(t).Action)

	// Setting read to its current value is not a transition.
	_, err = svc.UpdateFlags(ctx, message.ID, dto.ContactFlagsRequest{Read: &read})
	require.NoError(t, err)
	require.Len(t, spy.all(), before+2)
}

func TestContactServiceUpdateFlagsReplyMarksReplied(t *testing.T) {
	svc, _ := newContactService(t, nil, nil)
	ctx := context.Background()

	message, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	reply := "Thanks, talk soon."
	updated, err := svc.UpdateFlags(ctx, message.ID, dto.ContactFlagsRequest{ReplyMessage: &reply})
	require.NoError(t, err)
	require.True(t, updated.Replied)
	require.Equal(t, reply, updated.ReplyMessage)
}

func TestContactServiceUpdateFlagsMissingID(t *testing.T) {
	svc, _ := newContactService(t, nil, nil)

	read := true
	_, err := svc.UpdateFlags(context.Background(), 999, dto.ContactFlagsRequest{Read: &read})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestContactServiceListBoxes(t *testing.T) {
	svc, _ := newContactService(t, nil, nil)
	ctx := context.Background()

	first, err := svc.Submit(ctx, submitRequest())
	require.NoError(t, err)

	second := submitRequest()
	second.Email = "grace@example.com"
	second.Message = "Another enquiry."
	other, err := svc.Submit(ctx, second)
	require.NoError(t, err)

	read, archived := true, true
	_, err = svc.UpdateFlags(ctx, first.ID, dto.ContactFlagsRequest{Read: &read, Archived: &archived})
	require.NoError(t, err)

	unread, err := svc.List(ctx, dto.ContactListRequest{Box: repository.ContactBoxUnread})
	require.NoError(t, err)
	require.Len(t, unread.Items, 1)
	require.Equal(t, other.ID, unread.Items[0].ID)

	archivedBox, err := svc.List(ctx, dto.ContactListRequest{Box: repository.ContactBoxArchived})
	require.NoError(t, err)
	require.Len(t, archivedBox.Items, 1)
	require.Equal(t, first.ID, archivedBox.Items[0].ID)

	inbox, err := svc.List(ctx, dto.ContactListRequest{Box: repository.ContactBoxInbox})
	require.NoError(t, err)
	require.Len(t, inbox.Items, 1)
	require.Equal(t, other.ID, inbox.Items[0].ID)

	all, err := svc.List(ctx, dto.ContactListRequest{Box: repository.ContactBoxAll})
	require.NoError(t, err)
	require.Len(t, all.Items, 2)
}
