package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Nickname     string      `json:"nickname" validate:"required,max=100"`
	AvatarNumber json.Number `json:"avatarNumber" validate:"required,number"`
	Password     string      `json:"password" validate:"omitempty,min=6"`
}

func TestFields_Valid(t *testing.T) {
	errs := Fields(samplePayload{Nickname: "alice", AvatarNumber: "5"})
	require.Nil(t, errs)
}

func TestFields_RequiredUsesWireNames(t *testing.T) {
	errs := Fields(samplePayload{})
	require.Contains(t, errs, "nickname")
	require.Contains(t, errs, "avatarNumber")
	require.NotContains(t, errs, "password")
	require.Equal(t, []string{"This field is required"}, errs["nickname"])
}

func TestFields_LengthMessagesCarryTheLimit(t *testing.T) {
	errs := Fields(samplePayload{
		Nickname:     strings.Repeat("x", 101),
		AvatarNumber: "5",
		Password:     "abc",
	})
	require.Equal(t, []string{"Must be no more than 100 characters"}, errs["nickname"])
	require.Equal(t, []string{"Must be at least 6 characters"}, errs["password"])
}

func TestFields_NumberFormat(t *testing.T) {
	errs := Fields(samplePayload{Nickname: "alice", AvatarNumber: "abc"})
	require.Equal(t, []string{"Must be a number"}, errs["avatarNumber"])
}
