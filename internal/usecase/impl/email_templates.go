package impl

import (
	"bytes"
	"html/template"
	"strings"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

// Mail tags, used by providers for per-category statistics.
const (
	mailTagVerification  = "email-verification"
	mailTagPasswordReset = "password-reset"
	mailTagApplication   = "application-status"
)

const emailLayout = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #222;">
<p>{{.Greeting}}</p>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}{{if .ActionURL}}<p><a href="{{.ActionURL}}" style="padding: 8px 16px; background: #ff6b35; color: #fff; text-decoration: none; border-radius: 4px;">{{.ActionLabel}}</a></p>
{{end}}<p style="color: #888; font-size: 12px;">{{.Service}}</p>
</body>
</html>`

//nolint:gochecknoglobals
var emailTemplate = template.Must(template.New("email").Parse(emailLayout))

type emailContent struct {
	Service     string
	Greeting    string
	Paragraphs  []string
	ActionURL   string
	ActionLabel string
}

// render builds both bodies of an email from the same content.
func (c *emailContent) render(to, toName, subject, tag string) (*service.Email, error) {
	var html bytes.Buffer
	if err := emailTemplate.Execute(&html, c); err != nil {
		return nil, errors.Wrap(err, "failed to render email")
	}

	text := make([]string, 0, len(c.Paragraphs)+3)
	text = append(text, c.Greeting)
	text = append(text, c.Paragraphs...)
	if c.ActionURL != "" {
		text = append(text, c.ActionLabel+": "+c.ActionURL)
	}
	text = append(text, c.Service)

	return &service.Email{
		To:       to,
		ToName:   toName,
		Subject:  subject,
		HTMLBody: html.String(),
		TextBody: strings.Join(text, "\n\n"),
		Tag:      tag,
	}, nil
}

func greeting(name string) string {
	if name == "" {
		return "您好，"
	}

	return name + " 您好，"
}

func verificationEmail(serviceName, to, name, link string) (*service.Email, error) {
	content := &emailContent{
		Service:  serviceName,
		Greeting: greeting(name),
		Paragraphs: []string{
			"感謝您註冊 " + serviceName + "。請點擊下方按鈕完成電子郵件驗證，驗證後即可登入。",
		},
		ActionURL:   link,
		ActionLabel: "驗證電子郵件",
	}

	return content.render(to, name, serviceName+" 電子郵件驗證", mailTagVerification)
}

func passwordResetEmail(serviceName, to, link string) (*service.Email, error) {
	content := &emailContent{
		Service:  serviceName,
		Greeting: greeting(""),
		Paragraphs: []string{
			"我們收到了重設密碼的請求。若非您本人操作，請忽略此郵件。",
		},
		ActionURL:   link,
		ActionLabel: "重設密碼",
	}

	return content.render(to, "", serviceName+" 密碼重設", mailTagPasswordReset)
}

func applicationStatusEmail(serviceName string, event *service.ApplicationEvent) (*service.Email, error) {
	program := "外送員"
	if entity.ApplicationType(event.ApplicationType) == entity.ApplicationTypeRestaurant {
		program = "餐廳合作夥伴"
	}

	paragraphs := make([]string, 0, 2)
	switch entity.ApplicationStatus(event.Status) {
	case entity.ApplicationStatusApproved:
		paragraphs = append(paragraphs, "恭喜！您的"+program+"申請已通過審核。")
	case entity.ApplicationStatusRejected:
		paragraphs = append(paragraphs, "很抱歉，您的"+program+"申請未通過審核。")
	default:
		paragraphs = append(paragraphs, "您的"+program+"申請狀態已更新為 "+event.Status+"。")
	}
	if event.AdminNotes != "" {
		paragraphs = append(paragraphs, "審核備註："+event.AdminNotes)
	}

	content := &emailContent{
		Service:    serviceName,
		Greeting:   greeting(event.ApplicantName),
		Paragraphs: paragraphs,
	}

	return content.render(event.ApplicantEmail, event.ApplicantName, serviceName+" 申請審核結果", mailTagApplication)
}
