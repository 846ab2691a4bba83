// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/cert-publisher/internal/controller"
	"github.com/jonathan/cert-publisher/internal/orgconfig"
	"github.com/jonathan/cert-publisher/internal/state"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintOrganization outputs one organization record from the mapping.
func (p *Printer) PrintOrganization(orgID string, org orgconfig.Organization) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ID:       %s\n", orgID))
	sb.WriteString(fmt.Sprintf("Name:     %s\n", org.OrganizationName))
	if org.LogoPath != "" {
		sb.WriteString(fmt.Sprintf("Logo:     %s\n", org.LogoPath))
	}
	if org.FaviconPath != "" {
		sb.WriteString(fmt.Sprintf("Favicon:  %s\n", org.FaviconPath))
	}
	if org.WebsiteURL != "" {
		sb.WriteString(fmt.Sprintf("Website:  %s\n", org.WebsiteURL))
	}

	p.printBox("ORGANIZATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSessionView outputs a human-readable summary of a session view.
func (p *Printer) PrintSessionView(view *controller.View) {
	if view == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Greeting:   %s\n", view.Greeting))
	sb.WriteString(fmt.Sprintf("Org:        %s\n", view.OrganizationName))
	sb.WriteString(fmt.Sprintf("Formation:  %s\n", view.FormationName))
	sb.WriteString(fmt.Sprintf("Cert ID:    %s\n", view.CertID))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Step 1 done: %v\n", view.Step1Done))
	sb.WriteString(fmt.Sprintf("Step 2 done: %v\n", view.Step2Done))
	sb.WriteString(fmt.Sprintf("Banner:      %v\n", view.ShowProgressBanner))
	if view.Preview.Available {
		sb.WriteString("Preview:     rendered")
	} else {
		sb.WriteString(fmt.Sprintf("Preview:     fallback (%s)", view.Preview.FallbackURL))
	}

	p.printBox("SESSION VIEW", sb.String())
}

// PrintCompletionRecord outputs a stored completion record.
func (p *Printer) PrintCompletionRecord(key string, rec state.Record) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Key: %s\n\n", key))
	sb.WriteString(formatStep("Step 1 (profile)", rec.Step1))
	sb.WriteString("\n")
	sb.WriteString(formatStep("Step 2 (post)", rec.Step2))

	p.printBox("COMPLETION RECORD", sb.String())
}

func formatStep(label string, st state.StepState) string {
	if !st.Completed {
		return fmt.Sprintf("%s: not completed", label)
	}
	if st.Timestamp == nil {
		return fmt.Sprintf("%s: completed", label)
	}
	ts := time.UnixMilli(*st.Timestamp).UTC().Format(time.RFC3339)
	return fmt.Sprintf("%s: completed at %s", label, ts)
}
