//go:build unit

package drafts_test

import (
	"context"
	"time"

	"stay-client/internal/domain/booking"
	"stay-client/internal/pkg/config"
	"stay-client/internal/pkg/errs"
	"stay-client/internal/pkg/session"
	"stay-client/internal/usecase/drafts"
	"stay-client/tests/common/authtest"

	"go.uber.org/mock/gomock"
)

func (s *WorkflowTestSuite) TestRegistry() {
	cfg := config.NewTestConfig().Drafts

	s.Run("drafts are visible only to their owner", func() {
		reg := drafts.NewRegistry(s.deps, cfg, s.logger)
		s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(1)

		view, err := reg.Open(s.ctx, s.sess, s.unit.ID())
		s.Require().NoError(err)
		s.NotEmpty(view.DraftID)
		s.Equal(1, reg.Len())

		wf, err := reg.Get(s.sess, view.DraftID)
		s.Require().NoError(err)
		s.Equal(view.DraftID, wf.ID())

		other := authtest.NewJWTHelper(s.clock.Now).Session(s.T(), "user-2")
		_, err = reg.Get(other, view.DraftID)
		s.ErrorIs(err, drafts.ErrDraftNotFound)
		s.ErrorIs(reg.Discard(other, view.DraftID), drafts.ErrDraftNotFound)
	})

	s.Run("discard closes the workflow", func() {
		reg := drafts.NewRegistry(s.deps, cfg, s.logger)
		s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(1)

		view, err := reg.Open(s.ctx, s.sess, s.unit.ID())
		s.Require().NoError(err)
		wf, err := reg.Get(s.sess, view.DraftID)
		s.Require().NoError(err)

		s.Require().NoError(reg.Discard(s.sess, view.DraftID))

		s.Equal(0, reg.Len())
		_, err = reg.Get(s.sess, view.DraftID)
		s.ErrorIs(err, drafts.ErrDraftNotFound)
		_, err = wf.Edit(twoNights(1))
		s.ErrorIs(err, drafts.ErrDraftClosed)
	})

	s.Run("failed loads are not kept", func() {
		reg := drafts.NewRegistry(s.deps, cfg, s.logger)

		view, err := reg.Open(s.ctx, s.sess, "")

		s.True(errs.Is(err, drafts.ErrUnitNotFound))
		s.Equal(drafts.StateFailed, view.State)
		s.Equal(0, reg.Len())
	})

	s.Run("drafts are independent", func() {
		reg := drafts.NewRegistry(s.deps, cfg, s.logger)
		s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(2)

		a, err := reg.Open(s.ctx, s.sess, s.unit.ID())
		s.Require().NoError(err)
		b, err := reg.Open(s.ctx, s.sess, s.unit.ID())
		s.Require().NoError(err)
		s.NotEqual(a.DraftID, b.DraftID)

		wfA, err := reg.Get(s.sess, a.DraftID)
		s.Require().NoError(err)
		_, err = wfA.Edit(twoNights(2))
		s.Require().NoError(err)

		wfB, err := reg.Get(s.sess, b.DraftID)
		s.Require().NoError(err)
		s.Equal(1, wfB.View().Guests)
	})

	s.Run("confirmed drafts are dropped after the confirmation is returned", func() {
		reg := drafts.NewRegistry(s.deps, cfg, s.logger)
		s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(1)
		s.availability.EXPECT().CheckAvailability(gomock.Any(), gomock.Any(), s.unit.ID(), gomock.Any()).Return(true, nil).Times(1)
		s.store.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, session.Session, booking.ReservationRequest) (*booking.Reservation, error) {
				return &booking.Reservation{ID: "res-1", Code: "RES-0001", Status: booking.ReservationPending}, nil
			}).Times(1)

		opened, err := reg.Open(s.ctx, s.sess, s.unit.ID())
		s.Require().NoError(err)
		wf, err := reg.Get(s.sess, opened.DraftID)
		s.Require().NoError(err)
		_, err = wf.Edit(twoNights(2))
		s.Require().NoError(err)
		_, err = wf.Check(s.ctx, s.sess)
		s.Require().NoError(err)

		view, err := reg.Submit(s.ctx, s.sess, opened.DraftID)

		s.Require().NoError(err)
		s.Equal(drafts.StateConfirmed, view.State)
		s.Equal("RES-0001", view.Reservation.Code)
		s.Equal(0, reg.Len())
		_, err = reg.Get(s.sess, opened.DraftID)
		s.ErrorIs(err, drafts.ErrDraftNotFound)
	})

	s.Run("failed submissions stay registered", func() {
		reg := drafts.NewRegistry(s.deps, cfg, s.logger)
		s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(1)

		opened, err := reg.Open(s.ctx, s.sess, s.unit.ID())
		s.Require().NoError(err)

		_, err = reg.Submit(s.ctx, s.sess, opened.DraftID)

		s.ErrorIs(err, drafts.ErrNotQuoted)
		s.Equal(1, reg.Len())
	})

	s.Run("expired credentials still reach their own draft", func() {
		reg := drafts.NewRegistry(s.deps, cfg, s.logger)
		s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(1)

		opened, err := reg.Open(s.ctx, s.sess, s.unit.ID())
		s.Require().NoError(err)

		expired := authtest.NewJWTHelper(s.clock.Now).ExpiredSession(s.T(), "user-1")
		wf, err := reg.Get(expired, opened.DraftID)
		s.Require().NoError(err)
		_, err = wf.Check(s.ctx, expired)
		s.ErrorIs(err, drafts.ErrAuthRequired)
	})
}

func (s *WorkflowTestSuite) TestRegistryIdleExpiry() {
	ttl := 300 * time.Millisecond
	reg := drafts.NewRegistry(s.deps, config.DraftConfig{TTL: ttl, Capacity: 8}, s.logger)
	s.units.EXPECT().GetUnit(gomock.Any(), gomock.Any(), s.unit.ID()).Return(s.unit, nil).Times(1)

	opened, err := reg.Open(s.ctx, s.sess, s.unit.ID())
	s.Require().NoError(err)

	// active for twice the TTL
	for range 6 {
		time.Sleep(ttl / 3)
		wf, err := reg.Get(s.sess, opened.DraftID)
		s.Require().NoError(err)
		_, err = wf.Edit(twoNights(1))
		s.Require().NoError(err)
	}

	time.Sleep(ttl + ttl/2)
	_, err = reg.Get(s.sess, opened.DraftID)
	s.ErrorIs(err, drafts.ErrDraftNotFound)
}
