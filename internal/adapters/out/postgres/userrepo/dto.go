// Package userrepo persists users and their address books.
package userrepo

import (
	"time"

	"takeout/internal/core/domain/model/user"
)

// UserDTO represents the database structure for registered customers.
type UserDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:64"`
	Phone     string `gorm:"size:32;index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// AddressDTO represents the database structure for address book entries.
type AddressDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"index"`
	Consignee string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
	Detail    string `gorm:"size:512"`
	IsDefault bool
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

func userFromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		CreatedAt: u.CreatedAt(),
	}
}

func userToDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(user.Snapshot{
		ID:        dto.ID,
		Name:      dto.Name,
		Phone:     dto.Phone,
		CreatedAt: dto.CreatedAt,
	})
}

func addressFromDomain(a *user.Address) AddressDTO {
	return AddressDTO{
		ID:        a.ID(),
		UserID:    a.UserID(),
		Consignee: a.Consignee(),
		Phone:     a.Phone(),
		Detail:    a.Detail(),
		IsDefault: a.IsDefault(),
	}
}

func addressToDomain(dto AddressDTO) (*user.Address, error) {
	return user.RestoreAddress(user.AddressSnapshot{
		ID:        dto.ID,
		UserID:    dto.UserID,
		Consignee: dto.Consignee,
		Phone:     dto.Phone,
		Detail:    dto.Detail,
		IsDefault: dto.IsDefault,
	})
}
