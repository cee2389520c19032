// Copyright (c) 2026 Etheca. All rights reserved.
// Author: dev@etheca.app

/*
Package notify composes and sends the workflow's email notifications.

Five events produce mail: a candidate submits (to the Graduate School),
staff accept or reject (to the candidate), a paperwork item arrives (to
the candidate), and everything is finally complete (to the candidate).

Templates are plain text. A delivery failure never rolls back the
workflow decision that triggered it, but the decision notifications
(submit, accept, reject) report the failure to the caller. The
paperwork receipts and the final congratulation stay fire-and-forget:
they carry no decision, and the checklist itself records the facts.
*/
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/etheca/etheca/internal/platform/mailer"
)

// Notifier sends workflow notifications through a [mailer.Sender].
type Notifier struct {
	sender mailer.Sender
	logger *slog.Logger

	// institution is the university name woven into message bodies.
	institution string
	// serverRoot is the externally visible base URL for approval links.
	serverRoot string
	// serverEmail is the from-address for machine-generated mail.
	serverEmail string
	// gradschoolEmail receives submission notices and signs candidate mail.
	gradschoolEmail string
}

func NewNotifier(sender mailer.Sender, institution, serverRoot, serverEmail, gradschoolEmail string, logger *slog.Logger) *Notifier {
	return &Notifier{
		sender:          sender,
		logger:          logger,
		institution:     institution,
		serverRoot:      serverRoot,
		serverEmail:     serverEmail,
		gradschoolEmail: gradschoolEmail,
	}
}

// Candidate carries the recipient details the templates need.
type Candidate struct {
	ID            string
	FirstName     string
	LastName      string
	FormattedName string
	Email         string

	// Title of the thesis.
	Title string
	// Label is "Thesis" or "Dissertation" depending on the degree type.
	Label string
	// FullLabel is "Masters Thesis" or "PhD Dissertation".
	FullLabel string
	// DegreeAdjective is "masters" or "doctoral".
	DegreeAdjective string
}

// send delivers a message, logging the outcome either way.
func (notifier *Notifier) send(context context.Context, event string, msg mailer.Message) error {
	if err := notifier.sender.Send(context, msg); err != nil {
		notifier.logger.Error("notification_send_failed",
			slog.String("event", event),
			slog.Any("error", err),
		)
		return err
	}
	notifier.logger.Info("notification_sent", slog.String("event", event))
	return nil
}

// Submitted notifies the Graduate School that a thesis is awaiting
// review. Machine mail to the office goes out under the server address.
func (notifier *Notifier) Submitted(context context.Context, c Candidate) error {
	approveURL := fmt.Sprintf("%s/review/%s", notifier.serverRoot, c.ID)

	return notifier.send(context, "thesis_submitted", mailer.Message{
		From:    notifier.serverEmail,
		To:      []string{notifier.gradschoolEmail},
		Subject: c.FullLabel + " submitted",
		Body:    fmt.Sprintf("Submission from %s: %s", c.FormattedName, approveURL),
	})
}

// Accepted notifies the candidate their manuscript passed format review.
func (notifier *Notifier) Accepted(context context.Context, c Candidate) error {
	body := fmt.Sprintf(`Dear %s %s,

The manuscript of your %s, "%s", satisfies all of the Graduate School's formatting requirements.

If you have not already done so, please submit all required paperwork to fulfill your completion requirements. As this paperwork is received, you will be notified (via the email address stored in your profile) and the Graduate School will update your submission checklist.

Sincerely,
The %s Graduate School`,
		c.FirstName, c.LastName, strings.ToLower(c.Label), c.Title, notifier.institution)

	return notifier.send(context, "thesis_accepted", mailer.Message{
		From:    notifier.gradschoolEmail,
		To:      []string{c.Email},
		Subject: c.Label + " Submission Approved",
		Body:    body,
	})
}

// Rejected notifies the candidate their manuscript needs revision.
// issues is the pre-rendered list of formatting problems.
func (notifier *Notifier) Rejected(context context.Context, c Candidate, issues string) error {
	label := strings.ToLower(c.Label)
	body := fmt.Sprintf(`Dear %s %s,

Your %s, "%s", needs revision before it can be accepted by the Graduate School. The details of these required revisions are below:

%s
Please resubmit your %s once you have addressed the issues above. If you have any questions about these issues, please contact the Graduate School at %s.

Sincerely,
The %s Graduate School`,
		c.FirstName, c.LastName, label, c.Title, issues, label, notifier.gradschoolEmail, notifier.institution)

	return notifier.send(context, "thesis_rejected", mailer.Message{
		From:    notifier.gradschoolEmail,
		To:      []string{c.Email},
		Subject: c.Label + " Submission Rejected",
		Body:    body,
	})
}

// paperworkInfo maps checklist fields to their notification wording.
var paperworkInfo = map[string]struct {
	subject string
	snippet string
}{
	"bursar_receipt":                {"Bursar's Letter", "Bursar's Office letter of clearance was"},
	"gradschool_exit_survey":        {"Graduate Exit Survey", "graduate exit survey was"},
	"earned_docs_survey":            {"Survey of Earned Doctorates", "Survey of Earned Doctorates was"},
	"pages_submitted_to_gradschool": {"Signature Pages", "signature, abstract, and title pages were"},
}

// PaperworkReceived confirms receipt of one checklist item. Fields
// without candidate-facing wording (the fee marker) send nothing.
func (notifier *Notifier) PaperworkReceived(context context.Context, c Candidate, field string, receivedAt time.Time) {
	info, ok := paperworkInfo[field]
	if !ok {
		return
	}

	body := fmt.Sprintf(`Dear %s %s,

Your %s received by the Graduate School on %s.

Please submit any outstanding paperwork that is required to fulfill your completion requirements. As this paperwork is received, you will be notified (via the email address stored in your profile) and the Graduate School will update your submission checklist.

Sincerely,
The %s Graduate School`,
		c.FirstName, c.LastName, info.snippet, receivedAt.Format("01/02/2006 at 15:04"), notifier.institution)

	// Receipts are fire-and-forget; the checklist row already records
	// the fact, so a lost mail costs nothing.
	notifier.send(context, "paperwork_received", mailer.Message{
		From:    notifier.gradschoolEmail,
		To:      []string{c.Email},
		Subject: info.subject,
		Body:    body,
	})
}

// Completed congratulates the candidate: thesis accepted and paperwork done.
func (notifier *Notifier) Completed(context context.Context, c Candidate) {
	body := fmt.Sprintf(`Dear %s %s,

Congratulations! Your %s, %s, and all of the paperwork associated with your completion requirements have been received by the Graduate School. An official, written notification regarding the completion of your %s degree will be sent to you in the coming days (this email is automatically generated and, as such, is not an official communication).

Congratulations again on your accomplishment. All of %s wishes you the best of luck and great success in your future.

Sincerely,
The %s Graduate School`,
		c.FirstName, c.LastName, strings.ToLower(c.Label), c.Title, c.DegreeAdjective, notifier.institution, notifier.institution)

	notifier.send(context, "submission_complete", mailer.Message{
		From:    notifier.gradschoolEmail,
		To:      []string{c.Email},
		Subject: "Submission Process Complete",
		Body:    body,
	})
}
