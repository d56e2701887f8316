package repo

import (
	"context"

	dom "github.com/omer1abay/Todo-App/internal/domain"

	"gorm.io/gorm"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	Create(ctx context.Context, username, passwordHash string) (dom.User, error)
}

// PGUserRepo implements UserRepo through GORM (Postgres in production).
type PGUserRepo struct {
	db *gorm.DB
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *gorm.DB) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return u, notFound(err)
}

// GetByID returns the user by id.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.WithContext(ctx).First(&u, id).Error
	return u, notFound(err)
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	u := dom.User{Username: username, PasswordHash: passwordHash}
	if err := constraint(r.db.WithContext(ctx).Create(&u).Error); err != nil {
		return dom.User{}, err
	}
	return u, nil
}
