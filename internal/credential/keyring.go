// Package credential keeps secrets such as the IMAP password in the system
// keyring.
package credential

import (
	"errors"
	"fmt"
	"slices"

	"github.com/99designs/keyring"
)

const serviceName = "kitchen"

// IMAPPassword is the key of the password used to share the grocery list.
const IMAPPassword = "imap-password"

// Keys lists the credentials the application reads.
var Keys = []string{IMAPPassword}

// ErrUnknownKey is returned for keys outside Keys.
var ErrUnknownKey = errors.New("unknown credential key")

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("credential not found")

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/kitchen/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("kitchen-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Vault reads and writes known credentials in a keyring.
type Vault struct {
	ring keyring.Keyring
}

// NewVault wraps an already opened keyring.
func NewVault(ring keyring.Keyring) *Vault {
	return &Vault{ring: ring}
}

// OpenVault opens the system keyring.
func OpenVault() (*Vault, error) {
	ring, err := openKeyring()
	if err != nil {
		return nil, err
	}
	return NewVault(ring), nil
}

func checkKey(key string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return nil
}

// Get retrieves a credential value by key.
func (v *Vault) Get(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	item, err := v.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", fmt.Errorf("getting credential %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}
	return string(item.Data), nil
}

// Set stores a credential value by key.
func (v *Vault) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if value == "" {
		return fmt.Errorf("credential %q must not be empty", key)
	}
	err := v.ring.Set(keyring.Item{
		Key:   key,
		Data:  []byte(value),
		Label: "kitchen " + key,
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}
	return nil
}

// Delete removes a credential by key.
func (v *Vault) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := v.ring.Remove(key); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return fmt.Errorf("deleting credential %q: %w", key, ErrNotFound)
		}
		return fmt.Errorf("deleting credential %q: %w", key, err)
	}
	return nil
}
