package account

import "time"

type Role string

const (
	RoleGuest Role = "cliente"
	RoleAdmin Role = "admin"
)

type User struct {
	ID               string
	Username         string
	Email            string
	FirstName        string
	LastName         string
	NationalID       string
	BirthDate        time.Time
	Phone            string
	Address          string
	PhotoURL         string
	Role             Role
	TwoFactorEnabled bool
	FrequentGuest    bool
}

func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// LoginOutcome is either a session (Token set) or a pending second factor
// for PendingUserID.
type LoginOutcome struct {
	User              *User
	Token             string
	RequiresTwoFactor bool
	PendingUserID     string
}

// TwoFactorSetup is what the authenticator app needs to enroll the account.
type TwoFactorSetup struct {
	QRCode string
	Secret string
}
