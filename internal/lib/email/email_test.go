package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "msg_1"}, nil
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, from: "CMS <noreply@example.com>", logger: &logger}
}

func TestPreviewRendersEveryTemplate(t *testing.T) {
	for name := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Preview(name)
			require.NoError(t, err)
			assert.Contains(t, html, "Jane Doe")
		})
	}

	_, err := Render("missing", nil)
	assert.Error(t, err)
}

func TestSendRecordChanged(t *testing.T) {
	fake := &fakeSender{}
	c := newTestClient(fake)

	err := c.SendRecordChanged(context.Background(), []string{"admin@example.com"}, RecordChange{
		Entity:     "Speaker",
		Action:     "created",
		RecordID:   7,
		RecordName: "Jane <Doe>",
		OccurredAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, []string{"admin@example.com"}, msg.To)
	assert.Equal(t, "CMS <noreply@example.com>", msg.From)
	assert.Equal(t, "[Procurement CMS] Speaker created: Jane <Doe>", msg.Subject)
	assert.Contains(t, msg.Html, "Jane &lt;Doe&gt;")
	assert.Contains(t, msg.Html, "id 7")
}

func TestSendEmailErrors(t *testing.T) {
	c := newTestClient(&fakeSender{err: errors.New("rate limited")})

	err := c.SendEmail(context.Background(), nil, "s", TemplateRecordChanged, nil)
	assert.Error(t, err)

	err = c.SendEmail(context.Background(), []string{"a@example.com"}, "s", TemplateRecordChanged, PreviewData[TemplateRecordChanged])
	assert.ErrorContains(t, err, "rate limited")
}
