package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

const subColumns = "id_data, id_posbankum, kategori, status_verifikasi, path_berkas, nama_berkas, mime_type, size_bytes, tgl_upload"

func (r *PGRepo) scanSubmission(row pgx.Row) (domain.Submission, error) {
	var s domain.Submission
	err := row.Scan(&s.ID, &s.UnitID, &s.RawCategory, &s.RawStatus,
		&s.StorageKey, &s.FileName, &s.MIME, &s.SizeBytes, &s.UploadedAt)
	return s, err
}

func (r *PGRepo) CreateSubmission(ctx context.Context, s domain.Submission) (domain.Submission, error) {
	q := r.qb().Insert(r.table("data_posbankum")).
		Columns("id_data", "id_posbankum", "kategori", "status_verifikasi",
			"path_berkas", "nama_berkas", "mime_type", "size_bytes", "tgl_upload").
		Values(s.ID, s.UnitID, s.RawCategory, s.RawStatus,
			s.StorageKey, s.FileName, s.MIME, s.SizeBytes, s.UploadedAt).
		Suffix("RETURNING " + subColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateSubmission", sqlStr, args)

	start := time.Now()
	out, err := r.scanSubmission(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("CreateSubmission scan error after %s: %v", time.Since(start), err)
		return domain.Submission{}, mapPGError(err)
	}
	r.logger.Printf("CreateSubmission ok in %s id=%s kategori=%q", time.Since(start), out.ID, out.RawCategory)
	return out, nil
}

func (r *PGRepo) SubmissionByID(ctx context.Context, id domain.SubmissionID) (domain.Submission, error) {
	q := r.qb().Select(subColumns).
		From(r.table("data_posbankum")).
		Where(sq.Eq{"id_data": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SubmissionByID", sqlStr, args)

	start := time.Now()
	out, err := r.scanSubmission(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("SubmissionByID scan error after %s: %v", time.Since(start), err)
		return domain.Submission{}, mapPGError(err)
	}
	r.logger.Printf("SubmissionByID ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

// ReplaceFile: resubmission path. Same row, new file fields and
// timestamp, status reset. Identity never changes here.
func (r *PGRepo) ReplaceFile(ctx context.Context, id domain.SubmissionID, f domain.FileMeta, rawStatus string) (domain.Submission, error) {
	q := r.qb().Update(r.table("data_posbankum")).
		Set("path_berkas", f.StorageKey).
		Set("nama_berkas", f.FileName).
		Set("mime_type", f.MIME).
		Set("size_bytes", f.SizeBytes).
		Set("tgl_upload", time.Now().UTC()).
		Set("status_verifikasi", rawStatus).
		Where(sq.Eq{"id_data": id}).
		Suffix("RETURNING " + subColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("ReplaceFile", sqlStr, args)

	start := time.Now()
	out, err := r.scanSubmission(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("ReplaceFile scan error after %s: %v", time.Since(start), err)
		return domain.Submission{}, mapPGError(err)
	}
	r.logger.Printf("ReplaceFile ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

// SetStatus only touches status_verifikasi, never the file fields.
func (r *PGRepo) SetStatus(ctx context.Context, id domain.SubmissionID, rawStatus string) (domain.Submission, error) {
	q := r.qb().Update(r.table("data_posbankum")).
		Set("status_verifikasi", rawStatus).
		Where(sq.Eq{"id_data": id}).
		Suffix("RETURNING " + subColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SetStatus", sqlStr, args)

	start := time.Now()
	out, err := r.scanSubmission(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("SetStatus scan error after %s: %v", time.Since(start), err)
		return domain.Submission{}, mapPGError(err)
	}
	r.logger.Printf("SetStatus ok in %s id=%s status=%q", time.Since(start), out.ID, rawStatus)
	return out, nil
}

func (r *PGRepo) DeleteSubmission(ctx context.Context, id domain.SubmissionID) error {
	q := r.qb().Delete(r.table("data_posbankum")).Where(sq.Eq{"id_data": id})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteSubmission", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteSubmission exec error after %s: %v", time.Since(start), err)
		return mapPGError(err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("DeleteSubmission no rows affected in %s", time.Since(start))
		return fmt.Errorf("submission not found: %w", domain.ErrNotFound)
	}
	r.logger.Printf("DeleteSubmission ok in %s", time.Since(start))
	return nil
}

func (r *PGRepo) SubmissionsByUnit(ctx context.Context, unitID domain.UnitID) ([]domain.Submission, error) {
	q := r.qb().Select(subColumns).
		From(r.table("data_posbankum")).
		Where(sq.Eq{"id_posbankum": unitID}).
		OrderBy("tgl_upload DESC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SubmissionsByUnit", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("SubmissionsByUnit query error after %s: %v", time.Since(start), err)
		return nil, mapPGError(err)
	}
	defer rows.Close()

	out := make([]domain.Submission, 0, 8)
	for rows.Next() {
		s, err := r.scanSubmission(rows)
		if err != nil {
			return nil, mapPGError(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPGError(err)
	}
	r.logger.Printf("SubmissionsByUnit ok in %s rows=%d", time.Since(start), len(out))
	return out, nil
}

// SubmissionsByUnits fetches one batch for the fleet snapshot.
func (r *PGRepo) SubmissionsByUnits(ctx context.Context, unitIDs []domain.UnitID) (map[domain.UnitID][]domain.Submission, error) {
	out := make(map[domain.UnitID][]domain.Submission, len(unitIDs))
	if len(unitIDs) == 0 {
		return out, nil
	}

	q := r.qb().Select(subColumns).
		From(r.table("data_posbankum")).
		Where(sq.Eq{"id_posbankum": unitIDs})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("SubmissionsByUnits", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("SubmissionsByUnits query error after %s: %v", time.Since(start), err)
		return nil, mapPGError(err)
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		s, err := r.scanSubmission(rows)
		if err != nil {
			return nil, mapPGError(err)
		}
		out[s.UnitID] = append(out[s.UnitID], s)
		total++
	}
	if err := rows.Err(); err != nil {
		return nil, mapPGError(err)
	}
	r.logger.Printf("SubmissionsByUnits ok in %s rows=%d units=%d", time.Since(start), total, len(out))
	return out, nil
}
