package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const courtID = "6f1c1f0e-8d4a-4a8e-9a51-3c2f7f5b9e10"

var now = time.Date(2025, 6, 10, 9, 15, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2025, 6, 10+offset, 0, 0, 0, 0, time.UTC)
}

func directSubmission() Submission {
	return Submission{
		Mode:            ModeDirect,
		UserID:          "u1",
		Date:            day(1),
		TimeSlot:        "18:00",
		CourtID:         courtID,
		NumberOfPlayers: 2,
		ParticipantIDs:  []string{"u1", "u2"},
	}
}

func requestSubmission() Submission {
	return Submission{
		Mode:            ModeRequest,
		UserID:          "u1",
		Date:            day(5),
		TimeSlot:        "19:30",
		NumberOfPlayers: 4,
		ParticipantIDs:  []string{"u1", "u2", "u3", "u4"},
	}
}

func TestValidPlayerCount(t *testing.T) {
	for n := -1; n <= 6; n++ {
		assert.Equal(t, n >= 2 && n <= 4, ValidPlayerCount(n), n)
	}
}

func TestParsePlayerCount(t *testing.T) {
	for _, s := range []string{"2", "3", " 4 "} {
		_, err := ParsePlayerCount(s)
		assert.NoError(t, err, s)
	}
	for _, s := range []string{"1", "5", "0", "-1", "2.5", "", "two"} {
		_, err := ParsePlayerCount(s)
		assert.ErrorIs(t, err, ErrInvalidPlayerCount, s)
	}
}

func TestValidateDirectSuccess(t *testing.T) {
	payload, err := Validate(directSubmission(), now)
	require.NoError(t, err)

	assert.Equal(t, ModeDirect, payload.Mode)
	assert.Nil(t, payload.Request)
	require.NotNil(t, payload.Booking)
	assert.Equal(t, "2025-06-11", payload.Booking.Date)
	assert.Equal(t, courtID, payload.Booking.CourtID)
	assert.Equal(t, []string{"u1", "u2"}, payload.Booking.ParticipantIDs)
}

func TestValidateRequestSuccess(t *testing.T) {
	payload, err := Validate(requestSubmission(), now)
	require.NoError(t, err)

	assert.Equal(t, ModeRequest, payload.Mode)
	assert.Nil(t, payload.Booking)
	require.NotNil(t, payload.Request)
	assert.Equal(t, "2025-06-15", payload.Request.Date)
	assert.Equal(t, 4, payload.Request.NumberOfPlayers)
}

func TestValidateRequestIgnoresCourt(t *testing.T) {
	sub := requestSubmission()
	sub.CourtID = ""

	_, err := Validate(sub, now)
	assert.NoError(t, err)
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Submission)
		want   error
	}{
		{"missing user", func(s *Submission) { s.UserID = " " }, ErrMissingUser},
		{"one player", func(s *Submission) { s.NumberOfPlayers = 1; s.ParticipantIDs = []string{"u1"} }, ErrInvalidPlayerCount},
		{"five players", func(s *Submission) { s.NumberOfPlayers = 5 }, ErrInvalidPlayerCount},
		{"too few participants", func(s *Submission) { s.ParticipantIDs = []string{"u1"} }, ErrIncompleteParticipants},
		{"too many participants", func(s *Submission) { s.ParticipantIDs = []string{"u1", "u2", "u3"} }, ErrIncompleteParticipants},
		{"duplicate participants", func(s *Submission) { s.ParticipantIDs = []string{"u1", "u1"} }, ErrIncompleteParticipants},
		{"blank participant", func(s *Submission) { s.ParticipantIDs = []string{"u1", ""} }, ErrIncompleteParticipants},
		{"missing court", func(s *Submission) { s.CourtID = "" }, ErrMissingCourt},
		{"court not uuid", func(s *Submission) { s.CourtID = "court-1" }, ErrInvalidCourt},
		{"missing time slot", func(s *Submission) { s.TimeSlot = "" }, ErrMissingTimeSlot},
		{"bad time slot", func(s *Submission) { s.TimeSlot = "25:00" }, ErrInvalidTimeSlot},
		{"direct in request window", func(s *Submission) { s.Date = day(2) }, ErrWindowMismatch},
		{"direct in the past", func(s *Submission) { s.Date = day(-1) }, ErrWindowMismatch},
		{"unknown mode", func(s *Submission) { s.Mode = "lottery" }, ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := directSubmission()
			tt.mutate(&sub)

			payload, err := Validate(sub, now)
			assert.Nil(t, payload)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateRequestInDirectWindow(t *testing.T) {
	for _, offset := range []int{0, 1} {
		sub := requestSubmission()
		sub.Date = day(offset)

		_, err := Validate(sub, now)
		assert.ErrorIs(t, err, ErrWindowMismatch)
	}
}

func TestValidateCheckOrder(t *testing.T) {
	// Неверное число игроков важнее отсутствующего корта и слота
	sub := Submission{Mode: ModeDirect, UserID: "u1", Date: day(0), NumberOfPlayers: 7}

	_, err := Validate(sub, now)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("ana@club.cat", "secret1"))
	assert.ErrorIs(t, ValidateLogin("", "secret1"), ErrMissingCredentials)
	assert.ErrorIs(t, ValidateLogin("ana@club.cat", ""), ErrMissingCredentials)
	assert.ErrorIs(t, ValidateLogin("ana.club.cat", "secret1"), ErrInvalidEmail)
	assert.ErrorIs(t, ValidateLogin("ana@club.cat", "12345"), ErrPasswordTooShort)
}
