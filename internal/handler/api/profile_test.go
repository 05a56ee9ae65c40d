//go:build unit

package api_test

import (
	"context"
	"net/http"
	"time"

	"stay-client/internal/domain/account"
	reqdto "stay-client/internal/handler/dto/request"
	resdto "stay-client/internal/handler/dto/response"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
	"stay-client/internal/usecase/commands"
	"stay-client/tests/common/httptest"
	"stay-client/tests/common/testutil"

	"go.uber.org/mock/gomock"
)

func sampleUser() *account.User {
	return &account.User{
		ID:         "user-1",
		Username:   "ana",
		Email:      "ana@example.com",
		FirstName:  "Ana",
		LastName:   "Paz",
		NationalID: "1712345678",
		BirthDate:  time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC),
		Phone:      "0991234567",
		Role:       account.RoleGuest,
	}
}

func (s *AccountHandlerTestSuite) TestRegister() {
	url := "/api/auth/register"
	reqBody := reqdto.RegisterRequest{
		Username:   "ana",
		Email:      "ana@example.com",
		Password:   "secret1",
		FirstName:  "Ana",
		LastName:   "Paz",
		NationalID: "1712345678",
		BirthDate:  "1990-03-01",
	}

	s.Run("success: 201 signs the new account in", func() {
		s.authCmds.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reg account.Registration) (*account.LoginOutcome, error) {
				s.Equal(time.Date(1990, 3, 1, 0, 0, 0, 0, time.UTC), reg.BirthDate)
				s.Equal("1712345678", reg.NationalID)
				return &account.LoginOutcome{Token: "tok", User: sampleUser()}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("tok", body.AccessToken)
		s.Require().NotNil(body.User)
		s.Equal("1990-03-01", body.User.BirthDate)
	})

	s.Run("error: 400 on shape errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing national id", mutate: testutil.Field("nationalId", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "ana")},
			{name: "malformed birth date", mutate: testutil.Field("birthDate", "01/03/1990")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 names the broken rule", func() {
		s.authCmds.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(account.ErrUnderage, commands.ErrInvalidAccountData)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "at least 18 years old")
	})

	s.Run("error: 422 when upstream rejects a taken email", func() {
		s.authCmds.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrRejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Request rejected")
	})
}

func (s *AccountHandlerTestSuite) TestProfile() {
	s.Run("success: me", func() {
		s.accountCmds.EXPECT().Me(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sess session.Session) (*account.User, error) {
				s.Equal("user-1", sess.Subject())
				return sampleUser(), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/auth/me", nil, s.token)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Ana Paz", body.FullName)
		s.Equal("0991234567", body.Phone)
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/profile", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("success: partial update", func() {
		s.accountCmds.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ session.Session, upd account.ProfileUpdate) (*account.User, error) {
				s.Require().NotNil(upd.Phone)
				s.Equal("0987654321", *upd.Phone)
				s.Nil(upd.FirstName)
				u := sampleUser()
				u.Phone = *upd.Phone
				return u, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/profile", map[string]string{"phone": "0987654321"}, s.token)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("0987654321", body.Phone)
	})

	s.Run("error: 422 on an empty update", func() {
		s.accountCmds.EXPECT().UpdateProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(account.ErrEmptyProfileUpdate, commands.ErrInvalidAccountData)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/profile", map[string]string{}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Nothing to update")
	})
}

func (s *AccountHandlerTestSuite) TestChangePassword() {
	url := "/api/profile/password"
	reqBody := reqdto.ChangePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}

	s.Run("success: 204", func() {
		s.accountCmds.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), account.PasswordChange{Current: "secret1", New: "secret2"}).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.token)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 422 on a wrong current password", func() {
		s.accountCmds.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrRejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Request rejected")
	})
}

func (s *AccountHandlerTestSuite) TestChangePhoto() {
	url := "/api/profile/photo"
	png := []byte("\x89PNG\r\n\x1a\n0000")

	s.Run("success: upload is forwarded with its content type", func() {
		s.accountCmds.EXPECT().ChangePhoto(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ session.Session, photo account.Photo) (*account.User, error) {
				s.Equal("me.png", photo.Filename)
				s.Equal("image/png", photo.ContentType)
				s.Equal(png, photo.Content)
				u := sampleUser()
				u.PhotoURL = "/uploads/me.png"
				return u, nil
			}).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, http.MethodPut, url, "photo", "me.png", "image/png", png, s.token)

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("/uploads/me.png", body.PhotoURL)
	})

	s.Run("success: missing content type is sniffed", func() {
		s.accountCmds.EXPECT().ChangePhoto(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ session.Session, photo account.Photo) (*account.User, error) {
				s.Equal("image/png", photo.ContentType)
				return sampleUser(), nil
			}).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, http.MethodPut, url, "photo", "me.png", "application/octet-stream", png, s.token)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 without the photo field", func() {
		rec := httptest.PerformUpload(s.T(), s.router, http.MethodPut, url, "avatar", "me.png", "image/png", png, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Photo file is required")
	})

	s.Run("error: 422 on a rejected file", func() {
		s.accountCmds.EXPECT().ChangePhoto(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(account.ErrInvalidPhoto, commands.ErrInvalidAccountData)).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, http.MethodPut, url, "photo", "notes.txt", "text/plain", []byte("hello"), s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Photo must be an image")
	})
}

func (s *AccountHandlerTestSuite) TestTwoFactorSettings() {
	s.Run("success: enable returns the enrollment secret", func() {
		s.accountCmds.EXPECT().EnableTwoFactor(gomock.Any(), gomock.Any()).
			Return(&account.TwoFactorSetup{QRCode: "data:image/png;base64,AAA", Secret: "JBSWY3DP"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/enable-2fa", nil, s.token)

		var body resdto.TwoFactorSetupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("JBSWY3DP", body.Secret)
		s.Equal("data:image/png;base64,AAA", body.QRCode)
	})

	s.Run("success: confirm", func() {
		s.accountCmds.EXPECT().ConfirmTwoFactor(gomock.Any(), gomock.Any(), "123456").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/confirm-2fa", map[string]string{"token": "123456"}, s.token)

		var body map[string]bool
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body["twoFactorEnabled"])
	})

	s.Run("error: 400 when the code is not six digits", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/confirm-2fa", map[string]string{"token": "12"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 422 when disable is rejected", func() {
		s.accountCmds.EXPECT().DisableTwoFactor(gomock.Any(), gomock.Any(), "wrong1").Return(commands.ErrRejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/disable-2fa", map[string]string{"password": "wrong1"}, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Request rejected")
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/auth/enable-2fa", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
