package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Assignment is the structured payload delivered to the agency chosen for
// an emergency.
type Assignment struct {
	EmergencyID string
	Description string
	Location    string
	Severity    string
	Tag         string
	ReportedAt  time.Time
}

// Notifier attempts delivery of an assignment to a contact address.
// A failed delivery is reported as an error and never retried.
type Notifier interface {
	NotifyAssignment(ctx context.Context, recipient string, a Assignment) error
}

// Disabled is the Notifier used when no delivery channel is configured.
// Every send fails, which the callers already treat as non-fatal.
type Disabled struct{}

func (Disabled) NotifyAssignment(context.Context, string, Assignment) error {
	return errors.New("notifications are not configured")
}

// Subject renders the mail subject line for an assignment.
func Subject(a Assignment) string {
	return "New Emergency Assignment: " + capitalize(a.Tag)
}

// Body renders the plain-text mail body for an assignment.
func Body(a Assignment) string {
	var b strings.Builder
	b.WriteString("A new emergency requires attention:\n\n")
	fmt.Fprintf(&b, "Severity: %s\n", capitalize(a.Severity))
	fmt.Fprintf(&b, "Type: %s\n", capitalize(a.Tag))
	fmt.Fprintf(&b, "Description: %s\n", a.Description)
	fmt.Fprintf(&b, "Location: Approx. %s\n", a.Location)
	fmt.Fprintf(&b, "Reported At: %s\n", a.ReportedAt.UTC().Format("2006-01-02 15:04:05 UTC"))
	b.WriteString("\nPlease respond accordingly.\n\n---\nResQForce Automated System\n")
	fmt.Fprintf(&b, "(ID: %s)\n", a.EmergencyID)
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return "N/A"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
