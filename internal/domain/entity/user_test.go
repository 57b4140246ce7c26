package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultState(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, ModeNavigate, u.Mode)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(10), u.ChatID)
}

func TestUser_SetMode(t *testing.T) {
	u := NewUser(1, 10)

	u.SetMode(ModeDetect, "chair")
	require.Equal(t, ModeDetect, u.Mode)
	require.Equal(t, "chair", u.ObjectName)

	u.SetMode(ModeNavigate, "ignored")
	require.Equal(t, ModeNavigate, u.Mode)
	require.Empty(t, u.ObjectName)
}

func TestUser_FocalLength(t *testing.T) {
	u := NewUser(1, 10)
	require.Equal(t, 800.0, u.FocalLength(800))

	u.FocalLengthPx = 1200
	require.Equal(t, 1200.0, u.FocalLength(800))
}
