// Package postgres contains the concrete implementation of the persistence layer using GORM.
// The repositories run on PostgreSQL and on SQLite for local fixtures and tests.
package postgres

import (
	"context"

	"civic/internal/domain/entity"
	"civic/internal/domain/repository"
	"civic/internal/errors"
	"civic/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create inserts a single user. Outside a transaction the insert commits on its own.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return mapCreateError(err, "user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Count returns the number of stored users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// FindAtOffset returns the user at a zero based position in insertion order.
func (repo *userRepository) FindAtOffset(ctx context.Context, offset int64) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at, id").
		Offset(int(offset)).
		Take(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user at offset")
	}

	return toUserDomain(&userM), nil
}

// DeleteAll removes every user row.
func (repo *userRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete users")
	}

	return result.RowsAffected, nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		UserName:       data.UserName,
		DeviceID:       data.DeviceID,
		Email:          data.Email,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		About:          data.About,
		StreetAddress1: data.StreetAddress1,
		StreetAddress2: data.StreetAddress2,
		City:           data.City,
		State:          data.State,
		Zip:            data.Zip,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		UserName:       data.UserName,
		DeviceID:       data.DeviceID,
		Email:          data.Email,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		About:          data.About,
		StreetAddress1: data.StreetAddress1,
		StreetAddress2: data.StreetAddress2,
		City:           data.City,
		State:          data.State,
		Zip:            data.Zip,
	}
}
