package core

import (
	"net/mail"
	"path"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgkhata/pgkhata/fs"
)

func TestEmailMessage_Render(t *testing.T) {
	require.NoError(t, parseTemplates(appfs.FS))
	conf := &Config{AppName: "PGKhata", FrontendBaseURL: "https://app.pgkhata.in"}

	msg := &EmailMessage{
		To:           []mail.Address{{Name: "Amit Shah", Address: "amit@test.in"}},
		Subject:      "Rent reminder for February 2024",
		TemplateName: "rent_reminder",
		TemplateData: map[string]interface{}{
			"TenantName": "Amit Shah",
			"Month":      "February 2024",
			"PGName":     "Sunrise PG",
			"AmountDue":  6000.0,
			"AmountPaid": 2500.0,
			"Balance":    3500.0,
		},
	}
	require.NoError(t, msg.Render(conf))
	assert.True(t, msg.HasRecipients())
	assert.True(t, msg.HasContent())
	assert.Contains(t, msg.TextContent, "Hello Amit Shah,")
	assert.Contains(t, msg.TextContent, "Balance:     Rs. 3500.00")
	assert.Contains(t, msg.TextContent, "The PGKhata Team")
	assert.Contains(t, msg.HTMLContent, "<strong>February 2024</strong> at Sunrise PG")

	t.Run("missing data", func(t *testing.T) {
		msg := &EmailMessage{TemplateName: "rent_reminder", TemplateData: map[string]interface{}{"TenantName": "Amit"}}
		assert.Error(t, msg.Render(conf))
	})

	t.Run("unknown template", func(t *testing.T) {
		msg := &EmailMessage{TemplateName: "welcome"}
		assert.EqualError(t, msg.Render(conf), `unknown email template "welcome"`)
	})

	t.Run("plain message", func(t *testing.T) {
		msg := &EmailMessage{Subject: "Hi", TextContent: "plain"}
		require.NoError(t, msg.Render(conf))
		assert.Equal(t, "plain", msg.TextContent)
		assert.False(t, msg.HasRecipients())
	})
}

func TestParseTemplates(t *testing.T) {
	defer func() { require.NoError(t, parseTemplates(appfs.FS)) }()

	fsys := make(fstest.MapFS)
	addFile := func(name, data string) {
		fsys[path.Join(emailTemplatesDir, name)] = &fstest.MapFile{Data: []byte(data)}
	}
	addFile("_base.txt", `{{template "content" .}}`)
	addFile("_base.gohtml", `<p>{{template "content" .}}</p>`)
	addFile("notice.txt", `{{define "content"}}{{.Data}}{{end}}`)
	addFile("notice.gohtml", `{{define "content"}}{{.Data}}{{end}}`)
	addFile("notice.md", `ignored`)
	addFile("textonly.txt", `{{define "content"}}only text{{end}}`)
	require.NoError(t, parseTemplates(fsys))

	msg := &EmailMessage{TemplateName: "notice", TemplateData: "<b>water cut</b>"}
	require.NoError(t, msg.Render(&Config{}))
	assert.Equal(t, "<b>water cut</b>", msg.TextContent)
	assert.Equal(t, "<p>&lt;b&gt;water cut&lt;/b&gt;</p>", msg.HTMLContent)

	msg = &EmailMessage{TemplateName: "textonly"}
	require.NoError(t, msg.Render(&Config{}))
	assert.Equal(t, "only text", msg.TextContent)
	assert.Empty(t, msg.HTMLContent)

	addFile("broken.txt", `{{define "content"}}{{.Data{{end}}`)
	assert.Error(t, parseTemplates(fsys))
}
