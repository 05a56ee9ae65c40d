package account

import (
	"net/mail"
	"strings"
	"time"

	"stay-client/internal/pkg/errs"
)

const (
	MinPasswordLength = 6
	MinimumAge        = 18
	MaxPhotoBytes     = 5 << 20
)

var (
	ErrIncompleteRegistration = errs.New("required registration fields missing")
	ErrInvalidEmail           = errs.New("invalid email address")
	ErrWeakPassword           = errs.New("password too short")
	ErrSamePassword           = errs.New("new password equals the current one")
	ErrMissingPassword        = errs.New("current password required")
	ErrInvalidNationalID      = errs.New("national id must have 10 digits")
	ErrInvalidPhone           = errs.New("phone must have 10 digits")
	ErrUnderage               = errs.New("registrant is under age")
	ErrEmptyProfileUpdate     = errs.New("profile update has no fields")
	ErrInvalidPhoto           = errs.New("invalid profile photo")
)

// Registration is a new guest account. BirthDate and Phone are optional.
type Registration struct {
	Username   string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	NationalID string
	BirthDate  time.Time
	Phone      string
	Address    string
}

// Normalize trims every free-text field and lowercases the email.
func (r Registration) Normalize() Registration {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.NationalID = strings.TrimSpace(r.NationalID)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	return r
}

func (r Registration) Validate(now time.Time) error {
	if r.Username == "" || r.Email == "" || r.Password == "" || r.FirstName == "" || r.LastName == "" || r.NationalID == "" {
		return ErrIncompleteRegistration
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errs.Mark(errs.Wrapf(err, "email %q", r.Email), ErrInvalidEmail)
	}
	if err := checkPassword(r.Password); err != nil {
		return err
	}
	if !isDigits(r.NationalID, 10) {
		return ErrInvalidNationalID
	}
	if r.Phone != "" && !isDigits(r.Phone, 10) {
		return ErrInvalidPhone
	}
	if !r.BirthDate.IsZero() && AgeOn(r.BirthDate, now) < MinimumAge {
		return ErrUnderage
	}
	return nil
}

// AgeOn counts completed years between birth and now.
func AgeOn(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
}

func (u ProfileUpdate) Validate() error {
	if u.FirstName == nil && u.LastName == nil && u.Phone == nil && u.Address == nil {
		return ErrEmptyProfileUpdate
	}
	if u.Phone != nil && *u.Phone != "" && !isDigits(*u.Phone, 10) {
		return ErrInvalidPhone
	}
	return nil
}

type PasswordChange struct {
	Current string
	New     string
}

func (p PasswordChange) Validate() error {
	if p.Current == "" {
		return ErrMissingPassword
	}
	if err := checkPassword(p.New); err != nil {
		return err
	}
	if p.New == p.Current {
		return ErrSamePassword
	}
	return nil
}

// Photo is an uploaded profile picture held in memory until forwarded.
type Photo struct {
	Filename    string
	ContentType string
	Content     []byte
}

func (p Photo) Validate() error {
	switch {
	case len(p.Content) == 0:
		return errs.Mark(errs.New("empty upload"), ErrInvalidPhoto)
	case len(p.Content) > MaxPhotoBytes:
		return errs.Mark(errs.Newf("%d bytes exceeds %d", len(p.Content), MaxPhotoBytes), ErrInvalidPhoto)
	case !strings.HasPrefix(p.ContentType, "image/"):
		return errs.Mark(errs.Newf("content type %q", p.ContentType), ErrInvalidPhoto)
	}
	return nil
}

func checkPassword(pw string) error {
	if len([]rune(pw)) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
