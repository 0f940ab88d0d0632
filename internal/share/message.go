// Package share sends the open grocery list to an IMAP drafts folder so it
// can be forwarded from any mail client.
package share

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-message/mail"

	"github.com/nhle/kitchen-tracker/internal/grocery"
)

// Subject is the subject line of shared grocery lists.
const Subject = "Grocery list"

// Body renders the grouped list as plain text.
func Body(groups []grocery.CategoryGroup) string {
	var b strings.Builder
	count := 0
	for _, g := range groups {
		count += len(g.Items)
	}
	fmt.Fprintf(&b, "%s (%d items)\n", Subject, count)

	for _, g := range groups {
		fmt.Fprintf(&b, "\n%s\n", g.Category)
		for _, item := range g.Items {
			fmt.Fprintf(&b, "  - %s (%s)\n", item.Name, item.Quantity)
		}
	}
	return b.String()
}

// Compose builds an RFC 5322 message holding the grocery list.
func Compose(from, to string, groups []grocery.CategoryGroup, now time.Time) ([]byte, error) {
	fromAddr, err := mail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("parsing from address %q: %w", from, err)
	}
	toAddr, err := mail.ParseAddress(to)
	if err != nil {
		return nil, fmt.Errorf("parsing to address %q: %w", to, err)
	}

	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{fromAddr})
	h.SetAddressList("To", []*mail.Address{toAddr})
	h.SetSubject(fmt.Sprintf("%s for %s", Subject, now.Format("Mon Jan 2")))
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	if err := h.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("generating message id: %w", err)
	}

	var buf bytes.Buffer
	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("creating message writer: %w", err)
	}
	if _, err := w.Write([]byte(Body(groups))); err != nil {
		return nil, fmt.Errorf("writing message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing message writer: %w", err)
	}

	return buf.Bytes(), nil
}
