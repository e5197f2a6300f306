package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"sionlog-blog-service/internal/custom_errors"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/model"
)

type ProfileRepository struct {
	log      *logger.Logger
	mu       sync.RWMutex
	profiles map[string]*model.UserProfile
}

func NewProfileRepository(log *logger.Logger) *ProfileRepository {
	return &ProfileRepository{
		log:      log,
		profiles: make(map[string]*model.UserProfile),
	}
}

func (p *ProfileRepository) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	profile, exists := p.profiles[uid]
	if !exists {
		p.log.Debug("Profile not found by uid", slog.String("uid", uid))
		return nil, custom_errors.ErrProfileNotFound
	}

	result := *profile
	return &result, nil
}

func (p *ProfileRepository) Upsert(ctx context.Context, profile *model.UserProfile) (*model.UserProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	stored, exists := p.profiles[profile.UID]
	if exists {
		stored.Nickname = profile.Nickname
		stored.Email = profile.Email
		stored.UpdatedAt = now
	} else {
		stored = &model.UserProfile{
			UID:       profile.UID,
			Nickname:  profile.Nickname,
			Email:     profile.Email,
			CreatedAt: now,
		}
		p.profiles[profile.UID] = stored
	}

	result := *stored
	return &result, nil
}

func (p *ProfileRepository) Update(ctx context.Context, uid string, update *model.UpdateProfileDTO) (*model.UserProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	profile, exists := p.profiles[uid]
	if !exists {
		return nil, custom_errors.ErrProfileNotFound
	}

	if update.Nickname != nil {
		profile.Nickname = *update.Nickname
	}
	if update.Email != nil {
		profile.Email = *update.Email
	}

	profile.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *profile
	return &result, nil
}
