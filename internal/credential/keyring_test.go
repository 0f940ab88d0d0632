package credential

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVault_SetGetDelete(t *testing.T) {
	v := NewVault(keyring.NewArrayKeyring(nil))

	_, err := v.Get(IMAPPassword)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, v.Set(IMAPPassword, "hunter2"))
	got, err := v.Get(IMAPPassword)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)

	require.NoError(t, v.Delete(IMAPPassword))
	_, err = v.Get(IMAPPassword)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVault_RejectsUnknownKeys(t *testing.T) {
	v := NewVault(keyring.NewArrayKeyring(nil))

	assert.ErrorIs(t, v.Set("jira-token", "x"), ErrUnknownKey)
	_, err := v.Get("jira-token")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Error(t, v.Set(IMAPPassword, ""))
}
