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

func TestDecideHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		ctx         context.Context
		decision    models.Status
		input       string
		mockSetup   func(m *MockDecider)
		expectErr   error
		expectedOut string
	}{
		{
			name:     "approve",
			ctx:      adminCtx(),
			decision: models.StatusApproved,
			input:    "5",
			mockSetup: func(m *MockDecider) {
				m.EXPECT().Decide(gomock.Any(), models.RoleAdmin, int64(5), models.StatusApproved).Return(nil)
			},
			expectedOut: "Success: Entry #5 marked Approved\n",
		},
		{
			name:     "reject",
			ctx:      adminCtx(),
			decision: models.StatusRejected,
			input:    "9",
			mockSetup: func(m *MockDecider) {
				m.EXPECT().Decide(gomock.Any(), models.RoleAdmin, int64(9), models.StatusRejected).Return(nil)
			},
			expectedOut: "Success: Entry #9 marked Rejected\n",
		},
		{
			name:     "volunteer caller is passed through and refused",
			ctx:      volunteerCtx(),
			decision: models.StatusApproved,
			input:    "5",
			mockSetup: func(m *MockDecider) {
				m.EXPECT().Decide(gomock.Any(), models.RoleVolunteer, int64(5), models.StatusApproved).Return(services.ErrUnauthorized)
			},
			expectErr:   services.ErrUnauthorized,
			expectedOut: "Error: only admins can approve or reject entries\n",
		},
		{
			name:     "entry already decided",
			ctx:      adminCtx(),
			decision: models.StatusRejected,
			input:    "5",
			mockSetup: func(m *MockDecider) {
				m.EXPECT().Decide(gomock.Any(), models.RoleAdmin, int64(5), models.StatusRejected).Return(services.ErrInvalidState)
			},
			expectErr:   services.ErrInvalidState,
			expectedOut: "Error: entry is not pending\n",
		},
		{
			name:     "internal error",
			ctx:      adminCtx(),
			decision: models.StatusApproved,
			input:    "5",
			mockSetup: func(m *MockDecider) {
				m.EXPECT().Decide(gomock.Any(), models.RoleAdmin, int64(5), models.StatusApproved).Return(errors.New("boom"))
			},
			expectedOut: "Error: Internal error\n",
		},
		{
			name:        "not a number",
			ctx:         adminCtx(),
			decision:    models.StatusApproved,
			input:       "five",
			mockSetup:   func(m *MockDecider) {},
			expectedOut: "Error: entry id must be a whole number\n",
		},
		{
			name:        "out of range",
			ctx:         adminCtx(),
			decision:    models.StatusApproved,
			input:       "99999999999999999999",
			mockSetup:   func(m *MockDecider) {},
			expectedOut: "Error: entry id is out of range\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockDecider(ctrl)
			in := NewMockPrompter(ctrl)
			tt.mockSetup(svc)
			in.EXPECT().Text("Entry ID").Return(tt.input, nil)

			var out bytes.Buffer
			err := NewDecideHandler(svc, tt.decision, in, &out)(tt.ctx)

			assert.Equal(t, tt.expectedOut, out.String())
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			}
		})
	}
}

func TestDecideHandler_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var out bytes.Buffer
	err := NewDecideHandler(NewMockDecider(ctrl), models.StatusApproved, NewMockPrompter(ctrl), &out)(context.Background())

	assert.ErrorIs(t, err, middlewares.ErrNotLoggedIn)
}
