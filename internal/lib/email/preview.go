package email

// PreviewData contains sample template data for local preview.
//
//	PreviewData["inquiry_confirmation"]["Name"] == "John"
var PreviewData = map[string]map[string]string{
	string(TemplateInquiryConfirmation): {
		"Name":        "John",
		"Destination": "Lisbon",
		"Reference":   "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
	},
}
