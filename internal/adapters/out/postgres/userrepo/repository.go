package userrepo

import (
	"context"
	"errors"

	"takeout/internal/core/domain/model/user"
	"takeout/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// AddUser saves a new user and assigns the generated identity.
func (r *GormUserRepository) AddUser(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return u.AssignIdentity(dto.ID)
}

// GetUser retrieves a user by id.
func (r *GormUserRepository) GetUser(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", id)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// AddAddress saves a new address book entry and assigns the generated
// identity.
func (r *GormUserRepository) AddAddress(ctx context.Context, a *user.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return a.AssignIdentity(dto.ID)
}

// UpdateAddress saves changes to an existing address book entry.
func (r *GormUserRepository) UpdateAddress(ctx context.Context, a *user.Address) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := addressFromDomain(a)
	result := r.db.WithContext(ctx).Model(&AddressDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"consignee":  dto.Consignee,
			"phone":      dto.Phone,
			"detail":     dto.Detail,
			"is_default": dto.IsDefault,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("addressId", dto.ID)
	}

	return nil
}

// GetAddress retrieves an address book entry by id.
func (r *GormUserRepository) GetAddress(ctx context.Context, id int64) (*user.Address, error) {
	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("addressId", id)
		}
		return nil, err
	}

	return addressToDomain(dto)
}

// GetAddresses retrieves all address book entries of a user.
func (r *GormUserRepository) GetAddresses(ctx context.Context, userID int64) ([]*user.Address, error) {
	var dtos []AddressDTO
	err := r.db.WithContext(ctx).Order("id").Find(&dtos, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}

	addresses := make([]*user.Address, 0, len(dtos))
	for _, dto := range dtos {
		a, err := addressToDomain(dto)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	return addresses, nil
}

// DeleteAddress removes an address book entry.
func (r *GormUserRepository) DeleteAddress(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&AddressDTO{}, "id = ?", id).Error
}

// ClearDefaultAddress removes the default flag from all of the user's
// entries.
func (r *GormUserRepository) ClearDefaultAddress(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Model(&AddressDTO{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}
