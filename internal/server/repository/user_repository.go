package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"

	"github.com/loopcard/loyalty-backend/internal/server/repository/queries"
	"github.com/loopcard/loyalty-backend/pkg/database"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

// ErrEmailTaken is returned when signup reuses an existing email.
var ErrEmailTaken = errors.New("email already registered")

type UserRepository interface {
	CreateUser(ctx context.Context, email string, passwordHash string, wallet string, role string) (*types.User, error)
	GetByID(ctx context.Context, id gocql.UUID) (*types.User, error)
	GetByEmail(ctx context.Context, email string) (*types.User, error)
}

type userRepository struct {
	db *database.Connection
}

func NewUserRepository(db *database.Connection) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, email string, passwordHash string, wallet string, role string) (*types.User, error) {
	var existingID gocql.UUID
	err := r.db.NewQuery(queries.GetUserIDByEmailQuery, email).WithContext(ctx).Scan(&existingID)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != gocql.ErrNotFound {
		return nil, err
	}

	user := &types.User{
		UserID:       gocql.TimeUUID(),
		Email:        email,
		PasswordHash: passwordHash,
		Wallet:       wallet,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	err = r.db.NewQuery(queries.CreateUserQuery,
		user.UserID, user.Email, user.PasswordHash,
		user.Wallet, user.Role, user.CreatedAt,
	).WithContext(ctx).Idempotent().Exec()
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id gocql.UUID) (*types.User, error) {
	var user types.User
	err := r.db.NewQuery(queries.GetUserByIDQuery, id).WithContext(ctx).Scan(
		&user.UserID, &user.Email, &user.PasswordHash,
		&user.Wallet, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*types.User, error) {
	var user types.User
	err := r.db.NewQuery(queries.GetUserByEmailQuery, email).WithContext(ctx).Scan(
		&user.UserID, &user.Email, &user.PasswordHash,
		&user.Wallet, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
