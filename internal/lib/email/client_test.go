package email

import (
	"bytes"
	"testing"

	"github.com/deppfellow/vamoose/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDryRunClient(buf *bytes.Buffer) *Client {
	logger := zerolog.New(buf)
	cfg := &config.Config{Integration: config.IntegrationConfig{EmailFrom: config.DefaultEmailFrom}}
	return NewClient(cfg, &logger)
}

func TestRender_InquiryConfirmation(t *testing.T) {
	c := newDryRunClient(&bytes.Buffer{})

	html, err := c.Render(TemplateInquiryConfirmation, PreviewData[string(TemplateInquiryConfirmation)])
	require.NoError(t, err)

	assert.Contains(t, html, "Hi John,")
	assert.Contains(t, html, "<strong>Lisbon</strong>")
	assert.Contains(t, html, "3f2504e0-4f89-11d3-9a0c-0305e82c3301")
}

func TestRender_EscapesInput(t *testing.T) {
	c := newDryRunClient(&bytes.Buffer{})

	html, err := c.Render(TemplateInquiryConfirmation, map[string]string{"Name": "<script>x</script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	c := newDryRunClient(&bytes.Buffer{})

	_, err := c.Render(Template("missing"), nil)
	assert.Error(t, err)
}

func TestSendInquiryConfirmation_DryRunLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newDryRunClient(buf)

	err := c.SendInquiryConfirmation("ana@example.com", "Ana", "", "ref-1")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dry run: email not sent")
	assert.Contains(t, buf.String(), "ana@example.com")
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("inquiry_confirmation"))
	assert.False(t, Known("welcome"))
}
