package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyHoursHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("prints a table", func(t *testing.T) {
		svc := NewMockOwnerLister(ctrl)
		svc.EXPECT().ListForOwner(gomock.Any(), int64(3)).Return([]models.OwnerHourEntry{
			{HourID: 1, EventName: "Food Drive", Date: "2024-05-01", HoursWorked: 3.5, Status: models.StatusApproved},
			{HourID: 4, EventName: "Park", Date: "May 2", HoursWorked: 2, Status: models.StatusPending},
		}, nil)
		svc.EXPECT().Totals(gomock.Any(), int64(3)).Return(map[models.Status]float64{
			models.StatusApproved: 3.5,
			models.StatusPending:  2,
			models.StatusRejected: 0,
		}, nil)

		var out bytes.Buffer
		require.NoError(t, NewMyHoursHandler(svc, &out)(volunteerCtx()))

		expected := "" +
			"ID  EVENT       DATE        HOURS  STATUS\n" +
			"1   Food Drive  2024-05-01  3.5    Approved\n" +
			"4   Park        May 2       2      Pending\n" +
			"Total hours: 3.5 approved, 2 pending, 0 rejected\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("no submissions", func(t *testing.T) {
		svc := NewMockOwnerLister(ctrl)
		svc.EXPECT().ListForOwner(gomock.Any(), int64(3)).Return([]models.OwnerHourEntry{}, nil)

		var out bytes.Buffer
		require.NoError(t, NewMyHoursHandler(svc, &out)(volunteerCtx()))
		assert.Equal(t, "No submissions yet\n", out.String())
	})

	t.Run("store error", func(t *testing.T) {
		svc := NewMockOwnerLister(ctrl)
		svc.EXPECT().ListForOwner(gomock.Any(), int64(3)).Return(nil, errors.New("boom"))

		var out bytes.Buffer
		assert.Error(t, NewMyHoursHandler(svc, &out)(volunteerCtx()))
		assert.Equal(t, "Error: Internal error\n", out.String())
	})

	t.Run("totals error", func(t *testing.T) {
		svc := NewMockOwnerLister(ctrl)
		svc.EXPECT().ListForOwner(gomock.Any(), int64(3)).Return([]models.OwnerHourEntry{
			{HourID: 1, EventName: "Food Drive", Date: "2024-05-01", HoursWorked: 1, Status: models.StatusPending},
		}, nil)
		svc.EXPECT().Totals(gomock.Any(), int64(3)).Return(nil, errors.New("boom"))

		var out bytes.Buffer
		assert.Error(t, NewMyHoursHandler(svc, &out)(volunteerCtx()))
		assert.Contains(t, out.String(), "Error: Internal error\n")
	})

	t.Run("no session", func(t *testing.T) {
		var out bytes.Buffer
		err := NewMyHoursHandler(NewMockOwnerLister(ctrl), &out)(context.Background())
		assert.ErrorIs(t, err, middlewares.ErrNotLoggedIn)
	})
}

func TestPendingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("prints a table", func(t *testing.T) {
		svc := NewMockPendingLister(ctrl)
		svc.EXPECT().ListPending(gomock.Any()).Return([]models.PendingHourEntry{
			{HourID: 2, EventName: "Shelter", Date: "2024-06-10", HoursWorked: 4},
		}, nil)

		var out bytes.Buffer
		require.NoError(t, NewPendingHandler(svc, &out)(adminCtx()))

		expected := "" +
			"ID  EVENT    DATE        HOURS\n" +
			"2   Shelter  2024-06-10  4\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("nothing pending", func(t *testing.T) {
		svc := NewMockPendingLister(ctrl)
		svc.EXPECT().ListPending(gomock.Any()).Return(nil, nil)

		var out bytes.Buffer
		require.NoError(t, NewPendingHandler(svc, &out)(adminCtx()))
		assert.Equal(t, "No pending submissions\n", out.String())
	})

	t.Run("store error", func(t *testing.T) {
		svc := NewMockPendingLister(ctrl)
		svc.EXPECT().ListPending(gomock.Any()).Return(nil, errors.New("boom"))

		var out bytes.Buffer
		assert.Error(t, NewPendingHandler(svc, &out)(adminCtx()))
		assert.Equal(t, "Error: Internal error\n", out.String())
	})
}
