package share

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// ErrAuth is returned when the IMAP server rejects the credentials.
var ErrAuth = errors.New("imap authentication failed")

// IMAPClient wraps go-imap v2 for saving messages to a mailbox.
type IMAPClient struct {
	host     string
	port     string
	username string
	password string
	tls      bool
}

// NewIMAPClient creates a new IMAP client configuration.
func NewIMAPClient(
	host, port, username, password string, tls bool,
) *IMAPClient {
	return &IMAPClient{
		host:     host,
		port:     port,
		username: username,
		password: password,
		tls:      tls,
	}
}

// Connect establishes a connection to the IMAP server, authenticates,
// and returns the connected client. The caller is responsible for
// calling Logout/Close on the returned client.
//
// The connection is closed when ctx ends, which unblocks the dial, the
// greeting and any command still waiting on the server.
func (c *IMAPClient) Connect(
	ctx context.Context,
) (*imapclient.Client, error) {
	addr := net.JoinHostPort(c.host, c.port)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connecting to IMAP %s: %w", addr, err)
	}
	context.AfterFunc(ctx, func() { _ = conn.Close() })

	tlsConfig := &tls.Config{ServerName: c.host}
	var client *imapclient.Client
	if c.tls {
		tlsConfig.NextProtos = []string{"imap"}
		client = imapclient.New(tls.Client(conn, tlsConfig), nil)
	} else {
		client, err = imapclient.NewStartTLS(conn, &imapclient.Options{TLSConfig: tlsConfig})
		if err != nil {
			return nil, fmt.Errorf("starting TLS with %s: %w", addr, ctxErr(ctx, err))
		}
	}

	if err := client.Login(c.username, c.password).Wait(); err != nil {
		_ = client.Close()
		if ctx.Err() != nil {
			return nil, fmt.Errorf("logging in to %s: %w", addr, ctx.Err())
		}
		return nil, fmt.Errorf("%w for %s: %v", ErrAuth, c.username, err)
	}

	return client, nil
}

// ctxErr prefers the context's error once it is done, since a closed
// connection otherwise surfaces as a bare read error.
func ctxErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Append stores msg in mailbox flagged as a draft.
func (c *IMAPClient) Append(ctx context.Context, mailbox string, msg []byte) error {
	client, err := c.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Logout().Wait() }()

	cmd := client.Append(mailbox, int64(len(msg)), &imap.AppendOptions{
		Flags: []imap.Flag{imap.FlagDraft, imap.FlagSeen},
	})
	if _, err := cmd.Write(msg); err != nil {
		_ = cmd.Close()
		return fmt.Errorf("writing message to %s: %w", mailbox, ctxErr(ctx, err))
	}
	if err := cmd.Close(); err != nil {
		return fmt.Errorf("closing append to %s: %w", mailbox, ctxErr(ctx, err))
	}
	if _, err := cmd.Wait(); err != nil {
		return fmt.Errorf("appending to %s: %w", mailbox, ctxErr(ctx, err))
	}

	return nil
}
