package cj_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/dropship-gateway/internal/cj"
)

func TestSessionValid(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session cj.Session
		want    bool
	}{
		{
			name: "valid well before expiry",
			session: cj.Session{
				AccessToken: "tok",
				ExpiresAt:   now.Add(24 * time.Hour),
			},
			want: true,
		},
		{
			name: "invalid inside refresh buffer",
			session: cj.Session{
				AccessToken: "tok",
				ExpiresAt:   now.Add(30 * time.Second),
			},
			want: false,
		},
		{
			name: "invalid at exact buffer boundary",
			session: cj.Session{
				AccessToken: "tok",
				ExpiresAt:   now.Add(60 * time.Second),
			},
			want: false,
		},
		{
			name: "valid just past buffer boundary",
			session: cj.Session{
				AccessToken: "tok",
				ExpiresAt:   now.Add(61 * time.Second),
			},
			want: true,
		},
		{
			name: "invalid when expired",
			session: cj.Session{
				AccessToken: "tok",
				ExpiresAt:   now.Add(-time.Hour),
			},
			want: false,
		},
		{
			name:    "invalid without token",
			session: cj.Session{ExpiresAt: now.Add(24 * time.Hour)},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.session.Valid(now))
		})
	}
}

func TestSessionRefreshValid(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, cj.Session{
		RefreshToken:     "r",
		RefreshExpiresAt: now.Add(time.Hour),
	}.RefreshValid(now))

	assert.False(t, cj.Session{
		RefreshToken:     "r",
		RefreshExpiresAt: now.Add(-time.Minute),
	}.RefreshValid(now))

	assert.False(t, cj.Session{
		RefreshExpiresAt: now.Add(time.Hour),
	}.RefreshValid(now))
}

func TestMemoryTokenStore(t *testing.T) {
	t.Parallel()

	store := cj.NewMemoryTokenStore()

	_, ok := store.Get()
	assert.False(t, ok, "empty store should report no session")

	sess := cj.Session{
		AccessToken:      "tok-1",
		RefreshToken:     "ref-1",
		ExpiresAt:        time.Now().Add(time.Hour),
		RefreshExpiresAt: time.Now().Add(48 * time.Hour),
	}
	store.Set(sess)

	got, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, sess, got)

	// Get returns a copy; mutating it must not affect the store.
	got.AccessToken = "mutated"
	again, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "tok-1", again.AccessToken)

	store.Clear()
	_, ok = store.Get()
	assert.False(t, ok)
}
