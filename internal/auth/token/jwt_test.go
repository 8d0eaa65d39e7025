package token

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

func TestIssueParseRoundTrip(t *testing.T) {
	m := New("test-secret", "posbankum", time.Hour)
	unitID := uuid.New()
	acc := domain.Account{
		ID:     uuid.New(),
		Email:  "pos@example.go.id",
		Role:   domain.RoleOwner,
		UnitID: &unitID,
	}

	raw, issued, err := m.Issue(context.Background(), acc)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.NotEmpty(t, issued.JTI)

	got, err := m.Parse(context.Background(), raw)
	require.NoError(t, err)

	assert.Equal(t, issued.JTI, got.JTI)
	assert.Equal(t, acc.ID, got.AccountID)
	assert.Equal(t, acc.Email, got.Email)
	assert.Equal(t, domain.RoleOwner, got.Role)
	require.NotNil(t, got.UnitID)
	assert.Equal(t, unitID, *got.UnitID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, 5*time.Second)
}

func TestParseRejectsForeignSecret(t *testing.T) {
	issuer := New("secret-a", "posbankum", time.Hour)
	parser := New("secret-b", "posbankum", time.Hour)

	raw, _, err := issuer.Issue(context.Background(), domain.Account{ID: uuid.New(), Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = parser.Parse(context.Background(), raw)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := New("test-secret", "posbankum", -time.Minute)

	raw, _, err := m.Issue(context.Background(), domain.Account{ID: uuid.New(), Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = m.Parse(context.Background(), raw)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := New("test-secret", "posbankum", time.Hour)
	_, err := m.Parse(context.Background(), "not-a-token")
	assert.Error(t, err)
}
