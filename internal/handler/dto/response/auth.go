package response

import (
	"stay-client/internal/domain/account"
	"stay-client/internal/domain/booking"
)

type UserResponse struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	NationalID       string `json:"nationalId,omitempty"`
	BirthDate        string `json:"birthDate,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	PhotoURL         string `json:"photoUrl,omitempty"`
	Role             string `json:"role"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
	FrequentGuest    bool   `json:"frequentGuest"`
}

type LoginResponse struct {
	AccessToken       string        `json:"access_token,omitempty"`
	User              *UserResponse `json:"user,omitempty"`
	RequiresTwoFactor bool          `json:"requiresTwoFactor"`
	UserID            string        `json:"userId,omitempty"`
}

type TwoFactorSetupResponse struct {
	QRCode string `json:"qrCode"`
	Secret string `json:"secret"`
}

func FromUser(u *account.User) *UserResponse {
	res := &UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		FullName:         u.FullName(),
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		NationalID:       u.NationalID,
		Phone:            u.Phone,
		Address:          u.Address,
		PhotoURL:         u.PhotoURL,
		Role:             string(u.Role),
		TwoFactorEnabled: u.TwoFactorEnabled,
		FrequentGuest:    u.FrequentGuest,
	}
	if !u.BirthDate.IsZero() {
		res.BirthDate = u.BirthDate.Format(booking.DateLayout)
	}
	return res
}

func FromLoginOutcome(o *account.LoginOutcome) *LoginResponse {
	if o.RequiresTwoFactor {
		return &LoginResponse{RequiresTwoFactor: true, UserID: o.PendingUserID}
	}
	res := &LoginResponse{AccessToken: o.Token}
	if o.User != nil {
		res.User = FromUser(o.User)
	}
	return res
}

func FromTwoFactorSetup(s *account.TwoFactorSetup) *TwoFactorSetupResponse {
	return &TwoFactorSetupResponse{QRCode: s.QRCode, Secret: s.Secret}
}
