package domain

import (
	"context"
)

// Unit list filtering (admin pages: search by name + two-level region filter)
type UnitFilter struct {
	Query       string // ILIKE on name
	KabupatenID string
	KecamatanID string
	Limit       int
}

type UnitsRepo interface {
	Close()
	Ping(context.Context) error
	CreateUnit(ctx context.Context, u Unit) (Unit, error)
	UpdateUnit(ctx context.Context, u Unit) (Unit, error)
	DeleteUnit(ctx context.Context, id UnitID) error
	UnitByID(ctx context.Context, id UnitID) (Unit, error)
	UnitsList(ctx context.Context, f UnitFilter) ([]Unit, error)
}

type SubmissionsRepo interface {
	CreateSubmission(ctx context.Context, s Submission) (Submission, error)
	SubmissionByID(ctx context.Context, id SubmissionID) (Submission, error)
	// ReplaceFile swaps file fields and timestamp on the same row and
	// resets the stored status to pending. Identity is preserved.
	ReplaceFile(ctx context.Context, id SubmissionID, f FileMeta, rawStatus string) (Submission, error)
	// SetStatus only touches status_verifikasi, never the file fields.
	SetStatus(ctx context.Context, id SubmissionID, rawStatus string) (Submission, error)
	DeleteSubmission(ctx context.Context, id SubmissionID) error
	SubmissionsByUnit(ctx context.Context, unitID UnitID) ([]Submission, error)
	SubmissionsByUnits(ctx context.Context, unitIDs []UnitID) (map[UnitID][]Submission, error)
}

type RegionsRepo interface {
	KabupatenList(ctx context.Context) ([]Kabupaten, error)
	KecamatanByKabupaten(ctx context.Context, kabupatenID string) ([]Kecamatan, error)
}

type AccountsRepo interface {
	CreateAccount(ctx context.Context, email, passHash string, role Role, unitID *UnitID) (Account, error)
	AccountByEmail(ctx context.Context, email string) (Account, error)
	AccountByID(ctx context.Context, id AccountID) (Account, error)
}

// Snapshot is one consistent read of units plus their submissions, the
// input the completeness reports are computed from. Partial marks a
// snapshot where the submission fetch failed for some units; reports
// built from it must say "indeterminate" instead of guessing.
type Snapshot struct {
	Units       []Unit
	Submissions map[UnitID][]Submission
	Partial     bool
	Reason      string
}
