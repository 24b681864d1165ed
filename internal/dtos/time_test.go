package dtos

import (
	"testing"
	"time"

	"github.com/justsurfingit/placement-portal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantNil bool
		wantErr bool
	}{
		{in: "", wantNil: true},
		{in: "  ", wantNil: true},
		{in: "2025-07-01", want: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2025-07-01T09:30", want: time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)},
		{in: "2025-07-01T09:30:15", want: time.Date(2025, 7, 1, 9, 30, 15, 0, time.UTC)},
		{in: "2025-07-01T09:30:00Z", want: time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)},
		{in: "01/07/2025", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadTime)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %v", got)
		})
	}
}

func TestJobOpeningRequestApply(t *testing.T) {
	req := JobOpeningRequest{CompanyID: 3, Title: "  SDE Intern ", SalaryLPA: 12.5, ApplicationDeadline: "2025-08-15"}
	o := models.JobOpening{Status: models.OpeningDraft}

	require.NoError(t, req.Apply(&o))
	assert.Equal(t, "SDE Intern", o.Title)
	assert.Equal(t, models.OpeningDraft, o.Status, "empty status keeps the current one")
	require.NotNil(t, o.ApplicationDeadline)
	assert.Equal(t, 15, o.ApplicationDeadline.Day())

	req.ApplicationDeadline = "soon"
	assert.ErrorIs(t, req.Apply(&o), ErrBadTime)
}

func TestJobOfferRequestDefaultsOfferDate(t *testing.T) {
	now := time.Date(2025, 3, 4, 15, 0, 0, 0, time.UTC)
	var o models.JobOffer

	require.NoError(t, (&JobOfferRequest{JobApplicationID: 1, Salary: 900000}).Apply(&o, now))
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), o.OfferDate)
	assert.Nil(t, o.JoiningDate)
}
