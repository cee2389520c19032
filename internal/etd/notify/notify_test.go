// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheca/etheca/internal/platform/mailer"
)

func newTestNotifier(sender *mailer.Noop) *Notifier {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNotifier(sender, "Halewick University", "https://etd.halewick.edu", "noreply@halewick.edu", "gradschool@halewick.edu", logger)
}

func testCandidate() Candidate {
	return Candidate{
		ID:              "0193-cand",
		FirstName:       "Carmen",
		LastName:        "Okafor",
		FormattedName:   "Okafor, Carmen",
		Email:           "carmen_okafor@halewick.edu",
		Title:           "Sediment Transport in Tidal Estuaries",
		Label:           "Dissertation",
		FullLabel:       "PhD Dissertation",
		DegreeAdjective: "doctoral",
	}
}

func TestNotifier_Submitted(t *testing.T) {
	sender := &mailer.Noop{}
	notifier := newTestNotifier(sender)

	require.NoError(t, notifier.Submitted(context.Background(), testCandidate()))

	require.Len(t, sender.Sent, 1)
	msg := sender.Sent[0]
	assert.Equal(t, "noreply@halewick.edu", msg.From)
	assert.Equal(t, []string{"gradschool@halewick.edu"}, msg.To)
	assert.Equal(t, "PhD Dissertation submitted", msg.Subject)
	assert.Contains(t, msg.Body, "Okafor, Carmen")
	assert.Contains(t, msg.Body, "https://etd.halewick.edu/review/0193-cand")
}

func TestNotifier_AcceptedAndRejected(t *testing.T) {
	sender := &mailer.Noop{}
	notifier := newTestNotifier(sender)
	c := testCandidate()

	require.NoError(t, notifier.Accepted(context.Background(), c))
	require.NoError(t, notifier.Rejected(context.Background(), c, "Margins: too narrow\n\n"))

	require.Len(t, sender.Sent, 2)
	// Candidate-facing mail is signed by the Graduate School address.
	assert.Equal(t, "gradschool@halewick.edu", sender.Sent[0].From)
	assert.Equal(t, "Dissertation Submission Approved", sender.Sent[0].Subject)
	assert.Contains(t, sender.Sent[0].Body, `"Sediment Transport in Tidal Estuaries"`)

	assert.Equal(t, "Dissertation Submission Rejected", sender.Sent[1].Subject)
	assert.Contains(t, sender.Sent[1].Body, "Margins: too narrow")
	assert.Contains(t, sender.Sent[1].Body, "resubmit your dissertation")
}

func TestNotifier_PaperworkReceived(t *testing.T) {
	sender := &mailer.Noop{}
	notifier := newTestNotifier(sender)
	receivedAt := time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)

	notifier.PaperworkReceived(context.Background(), testCandidate(), "bursar_receipt", receivedAt)

	require.Len(t, sender.Sent, 1)
	assert.Equal(t, "Bursar's Letter", sender.Sent[0].Subject)
	assert.Contains(t, sender.Sent[0].Body, "04/15/2026 at 09:30")
}

func TestNotifier_PaperworkReceived_NoTemplateNoMail(t *testing.T) {
	sender := &mailer.Noop{}
	notifier := newTestNotifier(sender)

	notifier.PaperworkReceived(context.Background(), testCandidate(), "dissertation_fee", time.Now())

	assert.Empty(t, sender.Sent)
}

func TestNotifier_Completed(t *testing.T) {
	sender := &mailer.Noop{}
	notifier := newTestNotifier(sender)

	notifier.Completed(context.Background(), testCandidate())

	require.Len(t, sender.Sent, 1)
	assert.Equal(t, "Submission Process Complete", sender.Sent[0].Subject)
	assert.Contains(t, sender.Sent[0].Body, "doctoral degree")
}

// failingSender refuses every delivery.
type failingSender struct{}

func (failingSender) Send(context.Context, mailer.Message) error {
	return errors.New("relay down")
}

func TestNotifier_DeliveryFailures(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := NewNotifier(failingSender{}, "Halewick University", "https://etd.halewick.edu", "noreply@halewick.edu", "gradschool@halewick.edu", logger)
	c := testCandidate()

	// Decision notices report the failure to the caller.
	assert.Error(t, notifier.Submitted(context.Background(), c))
	assert.Error(t, notifier.Accepted(context.Background(), c))
	assert.Error(t, notifier.Rejected(context.Background(), c, "Margins: too narrow\n\n"))

	// Receipts and the congratulation stay fire-and-forget.
	notifier.PaperworkReceived(context.Background(), c, "bursar_receipt", time.Now())
	notifier.Completed(context.Background(), c)
}
