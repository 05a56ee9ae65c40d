package request

import (
	"time"

	"stay-client/internal/domain/account"
	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/errs"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyTwoFactorRequest struct {
	UserID string `json:"userId" binding:"required"`
	Token  string `json:"token" binding:"required,len=6,numeric"`
}

// RegisterRequest checks shape only. Age and password rules come back from
// the command as a 422.
type RegisterRequest struct {
	Username   string `json:"username" binding:"required,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	FirstName  string `json:"firstName" binding:"required,max=100"`
	LastName   string `json:"lastName" binding:"required,max=100"`
	NationalID string `json:"nationalId" binding:"required"`
	BirthDate  string `json:"birthDate"`
	Phone      string `json:"phone"`
	Address    string `json:"address" binding:"max=255"`
}

func (r *RegisterRequest) ToDomain() (account.Registration, error) {
	reg := account.Registration{
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		NationalID: r.NationalID,
		Phone:      r.Phone,
		Address:    r.Address,
	}
	if r.BirthDate != "" {
		birth, err := time.Parse(booking.DateLayout, r.BirthDate)
		if err != nil {
			return account.Registration{}, errs.Wrapf(err, "birthDate must be %s", booking.DateLayout)
		}
		reg.BirthDate = birth
	}
	return reg, nil
}

type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,max=100"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address" binding:"omitempty,max=255"`
}

func (r *UpdateProfileRequest) ToDomain() account.ProfileUpdate {
	return account.ProfileUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type ConfirmTwoFactorRequest struct {
	Token string `json:"token" binding:"required,len=6,numeric"`
}

type DisableTwoFactorRequest struct {
	Password string `json:"password" binding:"required"`
}
