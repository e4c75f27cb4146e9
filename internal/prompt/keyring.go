package prompt

import (
	"github.com/zalando/go-keyring"
)

const serviceName = "securevar"

// SavePassword stores a password in the OS keyring under account.
func SavePassword(account, password string) error {
	return keyring.Set(serviceName, account, password)
}

// GetPassword retrieves a password from the OS keyring.
func GetPassword(account string) (string, error) {
	return keyring.Get(serviceName, account)
}

// DeletePassword removes a password from the OS keyring.
func DeletePassword(account string) error {
	return keyring.Delete(serviceName, account)
}

// HasPassword reports whether a password is stored for account.
func HasPassword(account string) bool {
	_, err := keyring.Get(serviceName, account)
	return err == nil
}
