package email

// SendInquiryConfirmation acknowledges a contact form submission.
func (c *Client) SendInquiryConfirmation(to, name, destination, reference string) error {
	data := map[string]string{
		"Name":        name,
		"Destination": destination,
		"Reference":   reference,
	}

	return c.SendEmail(
		to,
		"We got your message - Vamoose!",
		TemplateInquiryConfirmation,
		data,
	)
}
