//go:build unit

package drafts_test

import (
	"context"
	"net/http"
	"time"

	"stay-client/internal/domain/booking"
	"stay-client/internal/infra"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
	"stay-client/internal/usecase/drafts"

	"go.uber.org/mock/gomock"
)

func (s *WorkflowTestSuite) TestAvailabilityChecker() {
	stay, err := booking.NewDateRange(date(2024, 1, 1), date(2024, 1, 3))
	s.Require().NoError(err)

	s.Run("maps the remote answer", func() {
		checker := drafts.NewAvailabilityChecker(s.availability, time.Second, s.logger)
		s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), "u1", stay).Return(true, nil).Times(1)
		s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), "u2", stay).Return(false, nil).Times(1)

		got, err := checker.Check(s.ctx, s.sess, "u1", stay)
		s.NoError(err)
		s.Equal(booking.AvailabilityAvailable, got)

		got, err = checker.Check(s.ctx, s.sess, "u2", stay)
		s.NoError(err)
		s.Equal(booking.AvailabilityUnavailable, got)
	})

	s.Run("timeout is a failed check", func() {
		checker := drafts.NewAvailabilityChecker(s.availability, 20*time.Millisecond, s.logger)
		s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), "slow", stay).
			DoAndReturn(func(ctx context.Context, _ session.Session, _ string, _ booking.DateRange) (bool, error) {
				<-ctx.Done()
				return false, ctx.Err()
			}).Times(1)

		got, err := checker.Check(s.ctx, s.sess, "slow", stay)

		s.True(errs.Is(err, drafts.ErrAvailabilityCheckFailed))
		s.Equal(booking.AvailabilityUnknown, got)
	})

	s.Run("unauthorized is marked for login", func() {
		checker := drafts.NewAvailabilityChecker(s.availability, time.Second, s.logger)
		s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), "u1", stay).
			Return(false, s.remoteErr(infra.KindUnauthorized, http.StatusUnauthorized)).Times(1)

		_, err := checker.Check(s.ctx, s.sess, "u1", stay)

		s.True(errs.Is(err, drafts.ErrAuthRequired))
		s.False(errs.Is(err, drafts.ErrAvailabilityCheckFailed))
	})
}
