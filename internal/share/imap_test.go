package share

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentServer accepts connections and never sends a greeting.
func silentServer(t *testing.T) (host, port string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	var conns []net.Conn
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			conns = append(conns, c)
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		<-done
		for _, c := range conns {
			_ = c.Close()
		}
	})

	host, port, err = net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return host, port
}

func TestIMAPClientAppend_StopsAtDeadline(t *testing.T) {
	for _, useTLS := range []bool{false, true} {
		host, port := silentServer(t)
		c := NewIMAPClient(host, port, "me@example.com", "secret", useTLS)

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		start := time.Now()
		err := c.Append(ctx, "Drafts", []byte("Subject: x\r\n\r\nbody\r\n"))
		cancel()

		require.Error(t, err, "tls=%v", useTLS)
		assert.ErrorIs(t, err, context.DeadlineExceeded, "tls=%v", useTLS)
		assert.Less(t, time.Since(start), 5*time.Second, "tls=%v", useTLS)
	}
}

func TestIMAPClientAppend_DialError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, _ := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, ln.Close())

	err = NewIMAPClient(host, port, "me", "pw", true).Append(context.Background(), "Drafts", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connecting to IMAP")
}
