package profile_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
	"sionlog-blog-service/internal/repository/postgres/db"
)

type ProfileRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewProfileRepository(db db.PgDB, log *logger.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, log: log}
}

const profileColumns = `uid, nickname, email, created_at, updated_at`

func scanProfile(row pgx.Row, profile *model.UserProfile) error {
	return row.Scan(
		&profile.UID,
		&profile.Nickname,
		&profile.Email,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
}

func (p *ProfileRepository) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	args := pgx.NamedArgs{"uid": uid}
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE uid = @uid`

	profile := &model.UserProfile{}
	err := scanProfile(p.db.QueryRow(ctx, query, args), profile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Profile not found by uid", slog.String("uid", uid), slog.String("error", err.Error()))
			return nil, custom_errors.ErrProfileNotFound
		}
		p.log.Error("Error getting profile by uid", slog.String("uid", uid), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return profile, nil
}

func (p *ProfileRepository) Upsert(ctx context.Context, profile *model.UserProfile) (*model.UserProfile, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"uid":        profile.UID,
		"nickname":   profile.Nickname,
		"email":      profile.Email,
		"created_at": now,
		"updated_at": now,
	}

	// created_at is kept from the first write; only nickname, email and
	// updated_at move on conflict.
	query := `
		INSERT INTO user_profiles (uid, nickname, email, created_at)
		VALUES (@uid, @nickname, @email, @created_at)
		ON CONFLICT (uid) DO UPDATE
		SET nickname = @nickname, email = @email, updated_at = @updated_at
		RETURNING ` + profileColumns

	var stored model.UserProfile
	err := scanProfile(p.db.QueryRow(ctx, query, args), &stored)
	if err != nil {
		p.log.Error("Error upserting profile", slog.String("uid", profile.UID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &stored, nil
}

func (p *ProfileRepository) Update(ctx context.Context, uid string, update *model.UpdateProfileDTO) (*model.UserProfile, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"uid": uid}

	if update.Nickname != nil {
		setClauses = append(setClauses, "nickname = @nickname")
		args["nickname"] = *update.Nickname
	}
	if update.Email != nil {
		setClauses = append(setClauses, "email = @email")
		args["email"] = *update.Email
	}

	updatedAt := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = updatedAt

	query := "UPDATE user_profiles SET " + strings.Join(setClauses, ", ") + " WHERE uid = @uid RETURNING " + profileColumns

	var updated model.UserProfile
	err := scanProfile(p.db.QueryRow(ctx, query, args), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Profile not found by uid during Update", slog.String("uid", uid), slog.String("error", err.Error()))
			return nil, custom_errors.ErrProfileNotFound
		}
		p.log.Error("Error updating profile", slog.String("uid", uid), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &updated, nil
}
