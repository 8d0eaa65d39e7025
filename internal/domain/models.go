package domain

import (
	"time"

	"github.com/google/uuid"
)

// Base identifiers
type UnitID = uuid.UUID
type SubmissionID = uuid.UUID
type AccountID = uuid.UUID

// Canonical document category key (e.g. "sk_posbankum").
// Derived from the raw label on read, never stored.
type Category string

// Verification status of a single submission.
type VerifyStatus string

const (
	StatusPending  VerifyStatus = "pending"
	StatusApproved VerifyStatus = "approved"
	StatusRejected VerifyStatus = "rejected"
)

// Caller role. Enforcing who may call what is the API layer's job.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner" // posbankum account, bound to exactly one unit
)

// Account of a portal user (admin or unit owner).
type Account struct {
	ID        AccountID `json:"id"`
	Email     string    `json:"email"`
	PassHash  string    `json:"-"` // never exposed
	Role      Role      `json:"role"`
	UnitID    *UnitID   `json:"unit_id,omitempty"` // set for owners only
	CreatedAt time.Time `json:"created_at"`
}

// Region reference records (two levels: kabupaten -> kecamatan).
type Kabupaten struct {
	ID   string `json:"id_kabupaten"`
	Name string `json:"nama"`
}

type Kecamatan struct {
	ID          string `json:"id_kecamatan"`
	KabupatenID string `json:"id_kabupaten"`
	Name        string `json:"nama"`
}

// Unit is an organizational post (posbankum) whose compliance is tracked.
type Unit struct {
	ID          UnitID    `json:"id_posbankum"`
	Name        string    `json:"nama"`
	KabupatenID string    `json:"id_kabupaten"`
	KecamatanID string    `json:"id_kecamatan"`
	Email       string    `json:"email_akun"`
	CreatedAt   time.Time `json:"created_at"`
}

// Submission is one uploaded document instance.
// RawCategory and RawStatus are stored as-is (historical rows are
// inconsistently labeled); canonical values are recomputed on read.
type Submission struct {
	ID          SubmissionID `json:"id_data"`
	UnitID      UnitID       `json:"id_posbankum"`
	RawCategory string       `json:"kategori"`
	RawStatus   string       `json:"status_verifikasi"`
	StorageKey  string       `json:"path_berkas"` // object key or absolute URL
	FileName    string       `json:"nama_berkas"`
	MIME        string       `json:"mime_type"`
	SizeBytes   int64        `json:"size_bytes"`
	UploadedAt  time.Time    `json:"tgl_upload"`
}

// FileMeta describes an uploaded blob after it landed in object storage.
type FileMeta struct {
	StorageKey string
	FileName   string
	MIME       string
	SizeBytes  int64
}
