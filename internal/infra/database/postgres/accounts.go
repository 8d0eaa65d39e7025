package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

const accountColumns = "id, email, pass_hash, role, id_posbankum, created_at"

func (r *PGRepo) scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.PassHash, &a.Role, &a.UnitID, &a.CreatedAt)
	return a, err
}

func (r *PGRepo) CreateAccount(ctx context.Context, email, passHash string, role domain.Role, unitID *domain.UnitID) (domain.Account, error) {
	q := r.qb().Insert(r.table("profiles")).
		Columns("email", "pass_hash", "role", "id_posbankum").
		Values(email, passHash, role, unitID).
		Suffix("RETURNING " + accountColumns)

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateAccount", sqlStr, args)

	start := time.Now()
	out, err := r.scanAccount(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("CreateAccount scan error after %s: %v", time.Since(start), err)
		return domain.Account{}, mapPGError(err)
	}
	r.logger.Printf("CreateAccount ok in %s id=%s email=%s role=%s", time.Since(start), out.ID, out.Email, out.Role)
	return out, nil
}

func (r *PGRepo) AccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	q := r.qb().Select(accountColumns).
		From(r.table("profiles")).
		Where(sq.Eq{"email": email})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("AccountByEmail", sqlStr, args)

	start := time.Now()
	out, err := r.scanAccount(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("AccountByEmail scan error after %s: %v", time.Since(start), err)
		return domain.Account{}, mapPGError(err)
	}
	r.logger.Printf("AccountByEmail ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

func (r *PGRepo) AccountByID(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	q := r.qb().Select(accountColumns).
		From(r.table("profiles")).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("AccountByID", sqlStr, args)

	start := time.Now()
	out, err := r.scanAccount(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		r.logger.Printf("AccountByID scan error after %s: %v", time.Since(start), err)
		return domain.Account{}, mapPGError(err)
	}
	r.logger.Printf("AccountByID ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}
