package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jobmanagement/job-service/internal/domain"
	pkgdto "github.com/jobmanagement/job-service/pkg/dto"
	"github.com/jobmanagement/job-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (data domain.User, err error)
	PersonalNumberExists(ctx context.Context, personalNumber string) (exists bool, err error)
	PhoneNumberExists(ctx context.Context, phoneNumber string) (exists bool, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
	SoftDeleteUser(ctx context.Context, id int64) (err error)
	GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, err error)
	CountUsers(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
}

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL", email)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (data domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) PersonalNumberExists(ctx context.Context, personalNumber string) (exists bool, err error) {
	err = r.db.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM users WHERE personal_number = $1 AND deleted_at IS NULL)", personalNumber)
	if err != nil {
		log.Error().Err(err).Str("component", "PersonalNumberExists").Msg("")
		return false, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) PhoneNumberExists(ctx context.Context, phoneNumber string) (exists bool, err error) {
	err = r.db.GetContext(ctx, &exists, "SELECT EXISTS (SELECT 1 FROM users WHERE phone_number = $1 AND deleted_at IS NULL)", phoneNumber)
	if err != nil {
		log.Error().Err(err).Str("component", "PhoneNumberExists").Msg("")
		return false, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, `INSERT INTO users(external_id, personal_number, first_name, last_name, email, phone_number, hashed_password, role, personal_number_verified, personal_number_verified_at, email_verified, email_verified_at, created_at, updated_at)
		VALUES (:external_id, :personal_number, :first_name, :last_name, :email, :phone_number, :hashed_password, :role, :personal_number_verified, :personal_number_verified_at, :email_verified, :email_verified_at, :created_at, :updated_at) RETURNING id`)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, uniqueViolationError(err)
	}

	return
}

func (r *UserRepositoryImpl) UpdateUser(ctx context.Context, data domain.User) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, `UPDATE users SET first_name=:first_name, last_name=:last_name, phone_number=:phone_number, updated_at=:updated_at
		WHERE id=:id AND deleted_at IS NULL`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return uniqueViolationError(err)
	}

	return
}

func (r *UserRepositoryImpl) SoftDeleteUser(ctx context.Context, id int64) (err error) {
	timestamp := time.Now().UnixMilli()

	_, err = r.db.ExecContext(ctx, "UPDATE users SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL", timestamp, id)
	if err != nil {
		log.Error().Err(err).Str("component", "SoftDeleteUser").Msg("")
		return errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUsers(ctx context.Context, filter pkgdto.Filter) (data []domain.User, err error) {
	query := "SELECT * FROM users WHERE deleted_at IS NULL ORDER BY id"

	args := make(map[string]interface{})

	if filter.Limit != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.Limit
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.Limit
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetUsers").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *UserRepositoryImpl) CountUsers(ctx context.Context, filter pkgdto.Filter) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(id) FROM users WHERE deleted_at IS NULL")
	if err != nil {
		log.Error().Err(err).Str("component", "CountUsers").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}
