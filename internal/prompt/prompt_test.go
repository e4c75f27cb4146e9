package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func scripted(answers ...string) ReadFunc {
	return func(string) (string, error) {
		if len(answers) == 0 {
			return "", errors.New("no more answers")
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
}

func TestResolve_Explicit(t *testing.T) {
	keyring.MockInit()

	r := Resolver{Password: "from-env", Account: "vault.db", Read: scripted("typed")}
	got, err := r.Resolve("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

func TestResolve_Keyring(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, SavePassword("vault.db", "from-keyring"))
	assert.True(t, HasPassword("vault.db"))

	r := Resolver{Account: "vault.db", Read: scripted("typed")}
	got, err := r.Resolve("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "from-keyring", got)

	require.NoError(t, DeletePassword("vault.db"))
	assert.False(t, HasPassword("vault.db"))
}

func TestResolve_Prompt(t *testing.T) {
	keyring.MockInit()

	r := Resolver{Account: "vault.db", Read: scripted("typed")}
	got, err := r.Resolve("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "typed", got)
}

func TestResolve_NoSource(t *testing.T) {
	keyring.MockInit()

	_, err := Resolver{}.Resolve("Password: ")
	assert.ErrorIs(t, err, ErrNoPassword)

	_, err = Resolver{Read: scripted("")}.Resolve("Password: ")
	assert.ErrorIs(t, err, ErrNoPassword)
}

func TestConfirm(t *testing.T) {
	got, err := Resolver{Read: scripted("pw", "pw")}.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "pw", got)

	_, err = Resolver{Read: scripted("pw", "other")}.Confirm()
	assert.Error(t, err)

	got, err = Resolver{Password: "env"}.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "env", got)
}

func TestTerminal_NotATerminal(t *testing.T) {
	// -1 is never a terminal.
	_, err := Terminal(-1, nil)("Password: ")
	assert.ErrorIs(t, err, ErrNoPassword)
}
