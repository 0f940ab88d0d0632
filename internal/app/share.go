package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kitchen-tracker/internal/credential"
	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/share"
)

const shareTimeout = 30 * time.Second

// shareResultMsg carries the outcome of the share command.
type shareResultMsg struct {
	result share.Result
	err    error
}

// keyringAppender connects with the IMAP password stored in the keyring.
func keyringAppender(cfg model.EmailShareConfig) (share.Appender, error) {
	vault, err := credential.OpenVault()
	if err != nil {
		return nil, err
	}
	password, err := vault.Get(credential.IMAPPassword)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", credential.IMAPPassword, err)
	}
	return share.NewIMAPClient(cfg.Host, cfg.Port, cfg.Username, password, cfg.TLS), nil
}

// shareGroceries saves the open grocery items as a draft.
func (m Model) shareGroceries() tea.Cmd {
	cfg := m.cfg.Share.Email
	items := m.kitchen.Groceries.Open()
	newAppender := m.appender
	now := m.now()
	return func() tea.Msg {
		if !cfg.Configured() {
			return shareResultMsg{err: share.ErrNotConfigured}
		}
		a, err := newAppender(cfg)
		if err != nil {
			return shareResultMsg{err: err}
		}
		ctx, cancel := context.WithTimeout(context.Background(), shareTimeout)
		defer cancel()
		res, err := share.GroceryList(ctx, a, cfg, items, now)
		return shareResultMsg{result: res, err: err}
	}
}
