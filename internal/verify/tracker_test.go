package verify

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

var testFile = domain.FileMeta{
	StorageKey: "f0e1/sk_posbankum/1714550000000_sk.pdf",
	FileName:   "sk.pdf",
	MIME:       "application/pdf",
	SizeBytes:  120_000,
}

func TestNewUpload(t *testing.T) {
	unitID := uuid.New()
	now := time.Now().UTC()

	s := NewUpload(unitID, "sk_posbankum", testFile, now)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, unitID, s.UnitID)
	assert.Equal(t, domain.StatusPending, NormalizeStatus(s.RawStatus))
	assert.Equal(t, testFile.StorageKey, s.StorageKey)
	assert.Equal(t, now, s.UploadedAt)
}

func TestApproveReject(t *testing.T) {
	pending := NewUpload(uuid.New(), "sarpras", testFile, time.Now())

	ap, err := Approve(pending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, NormalizeStatus(ap.RawStatus))
	// only the status field changed
	assert.Equal(t, pending.ID, ap.ID)
	assert.Equal(t, pending.StorageKey, ap.StorageKey)
	assert.Equal(t, pending.FileName, ap.FileName)
	assert.Equal(t, pending.UploadedAt, ap.UploadedAt)

	rj, err := Reject(pending)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, NormalizeStatus(rj.RawStatus))

	// not allowed twice
	_, err = Approve(ap)
	assert.ErrorIs(t, err, domain.ErrTransition)
	_, err = Reject(ap)
	assert.ErrorIs(t, err, domain.ErrTransition)
	_, err = Approve(rj)
	assert.ErrorIs(t, err, domain.ErrTransition)
}

func TestApproveNormalizesLegacySpellings(t *testing.T) {
	s := NewUpload(uuid.New(), "sarpras", testFile, time.Now())
	s.RawStatus = "menunggu" // as stored by the old frontend

	ap, err := Approve(s)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, NormalizeStatus(ap.RawStatus))
}

func TestReplacePreservesIdentity(t *testing.T) {
	orig := NewUpload(uuid.New(), "sk_kadarkum", testFile, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	orig.RawStatus = "disetujui"

	newFile := domain.FileMeta{
		StorageKey: "f0e1/sk_kadarkum/1714990000000_sk_v2.pdf",
		FileName:   "sk_v2.pdf",
		MIME:       "application/pdf",
		SizeBytes:  98_000,
	}
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got, err := Replace(orig, newFile, now)
	require.NoError(t, err)
	assert.Equal(t, orig.ID, got.ID, "resubmission keeps the same id")
	assert.Equal(t, domain.StatusPending, NormalizeStatus(got.RawStatus))
	assert.NotEqual(t, orig.StorageKey, got.StorageKey)
	assert.Equal(t, newFile.FileName, got.FileName)
	assert.Equal(t, now, got.UploadedAt)
}

func TestReplaceFromRejected(t *testing.T) {
	s := NewUpload(uuid.New(), "tagging_area", testFile, time.Now())
	s.RawStatus = "ditolak"

	got, err := Replace(s, testFile, time.Now())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, NormalizeStatus(got.RawStatus))
}

func TestReplaceFromPendingRejected(t *testing.T) {
	s := NewUpload(uuid.New(), "tagging_area", testFile, time.Now())
	_, err := Replace(s, testFile, time.Now())
	assert.ErrorIs(t, err, domain.ErrTransition)
}

func TestCanDelete(t *testing.T) {
	s := NewUpload(uuid.New(), "sarpras", testFile, time.Now())

	assert.ErrorIs(t, CanDelete(s), domain.ErrTransition, "pending must not be deletable")

	s.RawStatus = "disetujui"
	assert.ErrorIs(t, CanDelete(s), domain.ErrTransition, "approved must not be deletable")

	s.RawStatus = "ditolak"
	assert.NoError(t, CanDelete(s))
}
