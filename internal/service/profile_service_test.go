package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/folio-go-api/internal/repository"
)

func newProfileService(t *testing.T) (*ProfileService, *recorderSpy) {
	t.Helper()
	db := newTestDB(t)
	spy := &recorderSpy{}
	svc, err := NewProfileService(repository.NewProfileRepository(db), spy, testLogger())
	require.NoError(t, err)
	return svc, spy
}

func TestProfileServiceGetCreatesEmptyDocument(t *testing.T) {
	svc, _ := newProfileService(t)

	profile, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, profile.Data)
}

func TestProfileServiceUpdateRoundTrip(t *testing.T) {
	svc, spy := newProfileService(t)
	ctx := context.Background()

	data := map[string]interface{}{
		"name":     "Noah",
		"headline": "Software engineer",
		"socials":  map[string]interface{}{"github": "https://github.com/noah-isme"},
	}

	updated, err := svc.Update(ctx, data)
	require.NoError(t, err)
	require.Equal(t, "Noah", updated.Data["name"])

	entry := spy.last(t)
	require.Equal(t, "Updated profile", entry.Action)

	fetched, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Software engineer", fetched.Data["headline"])
}

func TestProfileServiceUpdateRejectsInvalidDocument(t *testing.T) {
	svc, spy := newProfileService(t)

	_, err := svc.Update(context.Background(), map[string]interface{}{
		"headline": "missing the required name",
	})
	require.ErrorIs(t, err, ErrProfileInvalid)
	require.Empty(t, spy.all())

	_, err = svc.Update(context.Background(), map[string]interface{}{
		"name":    "Noah",
		"socials": map[string]interface{}{"github": 42},
	})
	require.ErrorIs(t, err, ErrProfileInvalid)
}
