package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/model"
)

// NotifierInterface delivers the post-screening message to a candidate.
// Dispatch is fire-and-forget from the pipeline's point of view: a failed
// delivery never fails the submission.
type NotifierInterface interface {
	Notify(ctx context.Context, candidate model.Candidate) error
}

type Notification struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// BuildNotification picks the message template for a screening outcome.
func BuildNotification(candidate model.Candidate) Notification {
	if candidate.Status == model.StatusQualified {
		return Notification{
			To:      candidate.Email,
			Subject: "Interview Invitation",
			Body:    "Congratulations! You've been selected for an interview. Please schedule your interview: https://calendly.com/company/interview",
		}
	}
	return Notification{
		To:      candidate.Email,
		Subject: "Application Update",
		Body:    "Thank you for your application. Unfortunately, we have decided to move forward with other candidates at this time.",
	}
}

// LogNotifier writes the notification to the log instead of delivering
// it, standing in for a real email provider.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, candidate model.Candidate) error {
	msg := BuildNotification(candidate)
	n.logger.Info("sending email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
