package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/notify"
)

func textLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		channel notify.Channel
		want    any
		wantErr error
	}{
		{name: "email channel", channel: notify.ChannelEmail, want: &notify.EmailNotifier{}},
		{name: "sms channel", channel: notify.ChannelSMS, want: &notify.SMSNotifier{}},
		{name: "unknown channel", channel: notify.Channel("PIGEON"), wantErr: notify.ErrUnknownChannel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender, err := notify.New(tt.channel, nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorContains(t, err, string(tt.channel), "error names the unknown tag")
				assert.Nil(t, sender)
				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, sender)
		})
	}
}

func TestEmailNotifier_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := notify.NewEmailNotifier(textLogger(&buf))

	require.NoError(t, sender.Send(context.Background(), "alice@example.com", "Welcome!"))

	out := buf.String()
	assert.Contains(t, out, "Email sent")
	assert.Contains(t, out, "alice@example.com")
	assert.Contains(t, out, "Welcome!")
}

func TestEmailNotifier_SendEmptyRecipient(t *testing.T) {
	t.Parallel()

	sender := notify.NewEmailNotifier(textLogger(&bytes.Buffer{}))
	err := sender.Send(context.Background(), "", "Welcome!")
	require.ErrorIs(t, err, notify.ErrEmptyRecipient)
}

func TestSMSNotifier_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := notify.NewSMSNotifier(textLogger(&buf))

	require.NoError(t, sender.Send(context.Background(), "+15551234567", "Your code is 42"))

	out := buf.String()
	assert.Contains(t, out, "SMS sent")
	assert.Contains(t, out, "+15551234567")

	err := sender.Send(context.Background(), "", "no recipient")
	require.ErrorIs(t, err, notify.ErrEmptyRecipient)
}
