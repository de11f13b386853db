package email

import "embed"

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateInquiryConfirmation corresponds to templates/inquiry_confirmation.html
	TemplateInquiryConfirmation Template = "inquiry_confirmation"
)

// templates are compiled into the binary so workers don't depend on the
// working directory.
//
//go:embed templates/*.html
var templates embed.FS

// Known reports whether name is a registered template.
func Known(name string) bool {
	switch Template(name) {
	case TemplateInquiryConfirmation:
		return true
	}
	return false
}
