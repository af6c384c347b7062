package handlers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/models"
	"github.com/sbilibin2017/volunteer-hours/internal/services"
	"github.com/stretchr/testify/assert"
)

func volunteerCtx() context.Context {
	return middlewares.WithSession(context.Background(), &models.Session{UserID: 3, Role: models.RoleVolunteer})
}

func adminCtx() context.Context {
	return middlewares.WithSession(context.Background(), &models.Session{UserID: 1, Role: models.RoleAdmin})
}

func TestSubmitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type form struct {
		event, date, hours, description string
	}

	tests := []struct {
		name        string
		form        form
		mockSetup   func(m *MockSubmitter)
		expectErr   error
		expectedOut string
	}{
		{
			name: "success",
			form: form{"Food Drive", "2024-05-01", "3.5", "sorting"},
			mockSetup: func(m *MockSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), int64(3), "Food Drive", "2024-05-01", 3.5, "sorting").
					Return(int64(12), nil)
			},
			expectedOut: "Success: Hours submitted for approval (entry #12)\n",
		},
		{
			name: "empty description is allowed",
			form: form{"Park Cleanup", "May 2", "2", ""},
			mockSetup: func(m *MockSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), int64(3), "Park Cleanup", "May 2", float64(2), "").
					Return(int64(1), nil)
			},
			expectedOut: "Success: Hours submitted for approval (entry #1)\n",
		},
		{
			name:        "hours not a number",
			form:        form{"Food Drive", "2024-05-01", "three", ""},
			mockSetup:   func(m *MockSubmitter) {},
			expectedOut: "Error: hours worked must be a number\n",
		},
		{
			name:        "missing event name",
			form:        form{"", "2024-05-01", "1", ""},
			mockSetup:   func(m *MockSubmitter) {},
			expectedOut: "Error: event name is required\n",
		},
		{
			name: "rejected by the ledger",
			form: form{"Food Drive", "2024-05-01", "0", ""},
			mockSetup: func(m *MockSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), int64(3), "Food Drive", "2024-05-01", float64(0), "").
					Return(int64(0), services.ErrInvalidHours)
			},
			expectErr:   services.ErrInvalidHours,
			expectedOut: "Error: hours worked must be greater than zero\n",
		},
		{
			name: "internal error",
			form: form{"Food Drive", "2024-05-01", "1", ""},
			mockSetup: func(m *MockSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), int64(3), "Food Drive", "2024-05-01", float64(1), "").
					Return(int64(0), errors.New("disk full"))
			},
			expectedOut: "Error: Internal error\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockSubmitter(ctrl)
			in := NewMockPrompter(ctrl)
			tt.mockSetup(svc)

			in.EXPECT().Text("Event name").Return(tt.form.event, nil)
			in.EXPECT().Text("Date (YYYY-MM-DD)").Return(tt.form.date, nil)
			in.EXPECT().Text("Hours worked").Return(tt.form.hours, nil)
			in.EXPECT().Text("Description (optional)").Return(tt.form.description, nil)

			var out bytes.Buffer
			err := NewSubmitHandler(svc, in, &out)(volunteerCtx())

			assert.Equal(t, tt.expectedOut, out.String())
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			}
		})
	}
}

func TestSubmitHandler_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var out bytes.Buffer
	err := NewSubmitHandler(NewMockSubmitter(ctrl), NewMockPrompter(ctrl), &out)(context.Background())

	assert.ErrorIs(t, err, middlewares.ErrNotLoggedIn)
	assert.Empty(t, out.String())
}
