package verify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

// Status transitions of a submission:
//
//	(none)   --new upload--> pending        (owner, new id)
//	pending  --approve-----> approved       (admin)
//	pending  --reject------> rejected       (admin)
//	approved --resubmit----> pending        (owner, same id, new file)
//	rejected --resubmit----> pending        (owner, same id, new file)
//	rejected --delete------> (row removed)  (owner)
//
// Everything else is ErrTransition. The two upload paths are distinct
// on purpose: NewUpload mints an id, Replace keeps it, and audit history
// downstream relies on that identity difference.

// NewUpload builds a fresh pending submission for a category that has
// no current record yet.
func NewUpload(unitID domain.UnitID, rawCategory string, f domain.FileMeta, now time.Time) domain.Submission {
	return domain.Submission{
		ID:          uuid.New(),
		UnitID:      unitID,
		RawCategory: rawCategory,
		RawStatus:   string(domain.StatusPending),
		StorageKey:  f.StorageKey,
		FileName:    f.FileName,
		MIME:        f.MIME,
		SizeBytes:   f.SizeBytes,
		UploadedAt:  now,
	}
}

// Replace models owner resubmission: the prior file reference and
// timestamp are discarded, status resets to pending, identity stays.
// Permitted only from approved or rejected.
func Replace(s domain.Submission, f domain.FileMeta, now time.Time) (domain.Submission, error) {
	switch st := NormalizeStatus(s.RawStatus); st {
	case domain.StatusApproved, domain.StatusRejected:
	default:
		return domain.Submission{}, fmt.Errorf("resubmit from %q: %w", st, domain.ErrTransition)
	}
	s.StorageKey = f.StorageKey
	s.FileName = f.FileName
	s.MIME = f.MIME
	s.SizeBytes = f.SizeBytes
	s.UploadedAt = now
	s.RawStatus = string(domain.StatusPending)
	return s, nil
}

// Approve is an administrator action on a pending submission. File
// reference, filename and timestamp are untouched.
func Approve(s domain.Submission) (domain.Submission, error) {
	if st := NormalizeStatus(s.RawStatus); st != domain.StatusPending {
		return domain.Submission{}, fmt.Errorf("approve from %q: %w", st, domain.ErrTransition)
	}
	s.RawStatus = string(domain.StatusApproved)
	return s, nil
}

// Reject is an administrator action on a pending submission.
func Reject(s domain.Submission) (domain.Submission, error) {
	if st := NormalizeStatus(s.RawStatus); st != domain.StatusPending {
		return domain.Submission{}, fmt.Errorf("reject from %q: %w", st, domain.ErrTransition)
	}
	s.RawStatus = string(domain.StatusRejected)
	return s, nil
}

// CanDelete: owner deletion is meaningful only while rejected ("fix and
// resubmit" and "abandon" are both open from that state).
func CanDelete(s domain.Submission) error {
	if st := NormalizeStatus(s.RawStatus); st != domain.StatusRejected {
		return fmt.Errorf("delete from %q: %w", st, domain.ErrTransition)
	}
	return nil
}
