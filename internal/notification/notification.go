// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/wrapcheck/internal/logger"
)

// notify is replaced in tests.
var notify = beeep.Notify

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: sending title=%q, message=%q", title, message)
	// Empty icon lets beeep use the platform default
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// MismatchFound announces that document needs a line wrapping decision.
func MismatchFound(document string) error {
	return Send("wrapcheck", "Line wrapping mismatch in "+document)
}
