// Package report assembles farmer-facing advisory reports from validation
// results and renders them as markdown or HTML.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/google/uuid"

	"soilsense/domain/soil"
	"soilsense/ports"
)

// AdvisoryReport wraps one validation result with the identity and summary
// the advisory layer presents to a farmer.
type AdvisoryReport struct {
	ID          string                 `json:"id"`
	FieldID     string                 `json:"fieldId,omitempty"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Summary     string                 `json:"summary"`
	Result      *soil.ValidationResult `json:"result"`
}

// Assembler turns soil records into advisory reports.
type Assembler struct {
	validator ports.SoilValidator
	now       func() time.Time
}

// NewAssembler creates a report assembler backed by the given validator.
func NewAssembler(validator ports.SoilValidator) *Assembler {
	return &Assembler{
		validator: validator,
		now:       time.Now,
	}
}

// Assemble validates a record and wraps the result into a report.
func (a *Assembler) Assemble(ctx context.Context, record soil.SoilRecord) (*AdvisoryReport, error) {
	result, err := a.validator.ValidateSoilData(ctx, record.Nutrients, record.Micronutrients, record.Options)
	if err != nil {
		return nil, err
	}
	return &AdvisoryReport{
		ID:          uuid.NewString(),
		FieldID:     record.FieldID,
		GeneratedAt: a.now().UTC(),
		Summary:     summarize(result),
		Result:      result,
	}, nil
}

// summarize produces the one-line verdict shown at the top of a report.
func summarize(result *soil.ValidationResult) string {
	if result.Valid {
		return fmt.Sprintf("Soil data accepted (confidence %.0f%%, %d finding(s))",
			result.Confidence*100, len(result.Issues))
	}
	return fmt.Sprintf("Soil data needs review (confidence %.0f%%, %d finding(s), %d anomaly(ies))",
		result.Confidence*100, len(result.Issues), len(result.Anomalies))
}

// Markdown renders the report as a markdown document.
func (r *AdvisoryReport) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Soil Advisory Report\n\n")
	if r.FieldID != "" {
		fmt.Fprintf(&b, "**Field:** %s\n\n", r.FieldID)
	}
	fmt.Fprintf(&b, "**Report:** %s  \n**Generated:** %s\n\n", r.ID, r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "%s\n\n", r.Summary)

	if len(r.Result.Issues) > 0 {
		fmt.Fprintf(&b, "## Findings\n\n")
		for _, issue := range r.Result.Issues {
			fmt.Fprintf(&b, "- **%s** (%s): %s — %s\n", issue.Parameter, issue.Severity, issue.Issue, issue.Suggestion)
		}
		b.WriteString("\n")
	}

	if len(r.Result.Anomalies) > 0 {
		fmt.Fprintf(&b, "## Anomalies\n\n")
		for _, anomaly := range r.Result.Anomalies {
			fmt.Fprintf(&b, "- **%s** (%s): %s. %s\n", anomaly.Parameter, anomaly.Severity, anomaly.Description, anomaly.RecommendedAction)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Recommendations\n\n")
	for _, rec := range r.Result.Recommendations {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	return b.String()
}

// HTML renders the report as an HTML fragment for the advisory frontend.
func (r *AdvisoryReport) HTML() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(r.Markdown()), p, renderer)
}
