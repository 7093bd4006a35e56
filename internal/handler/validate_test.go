package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Tixoni/tourportal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid", "alice", "secret1", false},
		{"empty username", "", "secret1", true},
		{"empty password", "alice", "", true},
		{"short username", "ab", "secret1", true},
		{"short password", "alice", "12345", true},
		{"minimal lengths", "abc", "123456", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCredentials(tt.username, tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com", "x+tag@sub.domain.org"}
	invalid := []string{"plain", "@no-user.com", "no-domain@", "spaces in@mail.com", "no@dot"}

	for _, email := range valid {
		assert.True(t, emailPattern.MatchString(email), email)
	}
	for _, email := range invalid {
		assert.False(t, emailPattern.MatchString(email), email)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := parseID(raw)
		assert.ErrorIs(t, err, domain.ErrValidation, raw)
	}
}

func TestMessageFor(t *testing.T) {
	validation := fmt.Errorf("%w: price must be a non-negative number", domain.ErrValidation)
	assert.Equal(t, validation.Error(), messageFor(validation))

	assert.Equal(t, "Session expired. Sign in again.",
		messageFor(&domain.HTTPError{Status: 401, Message: "Could not validate credentials"}))

	assert.Equal(t, "Request timed out. Try again.",
		messageFor(fmt.Errorf("list tours: %w", domain.ErrTimeout)))

	assert.Equal(t, "Backend is unreachable. Check your connection.",
		messageFor(fmt.Errorf("list tours: %w", domain.ErrNetwork)))

	assert.Equal(t, "Tour not found",
		messageFor(&domain.HTTPError{Status: 404, Message: "Tour not found"}))

	assert.Equal(t, "Something went wrong. Try again.",
		messageFor(errors.New("template exploded")))
}

func TestInflightGuard(t *testing.T) {
	g := newInflightGuard()

	require.True(t, g.tryAcquire("book:1"))
	assert.False(t, g.tryAcquire("book:1"))
	assert.True(t, g.tryAcquire("book:2")) // keys are independent

	g.release("book:1")
	assert.True(t, g.tryAcquire("book:1"))
}
