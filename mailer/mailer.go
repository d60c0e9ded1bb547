package mailer

import (
	"errors"
	"fmt"
	"log"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/techhaven/store-backend/common"
)

type SendGridConfig struct {
	APIKey       string `json:"api_key"`
	BaseURL      string `json:"base_url"`
	MailSendPath string `json:"mail_send_path"`

	// <noreply@techhaven.store>
	NoReplyEmail string `json:"no_reply_email"`
	NoReplyName  string `json:"no_reply_name"`
	// <orders@techhaven.store>
	AdminEmail string `json:"admin_email"`
	AdminName  string `json:"admin_name"`
}

const (
	CategoryOrders   string = "orders"
	CategoryPayments string = "payments"
	CategoryDisputes string = "disputes"
)

// SimpleNotification : Simple notification email data
type SimpleNotification struct {
	Subject    string
	Preheader  string
	Body       string
	CCs        []string
	Categories []string
}

var ErrMissingAPIKey = errors.New("sendgrid api key is not configured")

// Config : Sendgrid configuration
var Config SendGridConfig

func init() {
	Config = SendGridConfig{
		APIKey:       common.GetEnv("SENDGRID_API_KEY", ""),
		BaseURL:      common.GetEnv("SENDGRID_BASE_URL", "https://api.sendgrid.com"),
		MailSendPath: "/v3/mail/send",
		NoReplyEmail: common.GetEnv("SENDER_EMAIL", "noreply@techhaven.store"),
		NoReplyName:  common.GetEnv("SENDER_NAME", "TechHaven"),
		AdminEmail:   common.GetEnv("ADMIN_EMAIL", "orders@techhaven.store"),
		AdminName:    common.GetEnv("ADMIN_NAME", "TechHaven Orders"),
	}
}

func SendSimpleNotification(sn *SimpleNotification, email string) error {
	if Config.APIKey == "" {
		return ErrMissingAPIKey
	}

	m := mail.NewV3Mail()
	m.Subject = sn.Subject
	m.SetFrom(mail.NewEmail(Config.NoReplyName, Config.NoReplyEmail))

	enable := false
	m.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	tos := []*mail.Email{
		mail.NewEmail("", email),
	}
	personalization.AddTos(tos...)

	if len(sn.CCs) > 0 {
		ccs := make([]*mail.Email, 0)

		for _, cc := range sn.CCs {
			if cc != email {
				ccs = append(ccs, mail.NewEmail("", cc))
			}
		}

		if len(ccs) > 0 {
			personalization.AddCCs(ccs...)
		}
	}

	m.AddPersonalizations(personalization)

	body := sn.Body
	if sn.Preheader != "" {
		body = fmt.Sprintf("<span style=\"display:none\">%s</span>%s", sn.Preheader, sn.Body)
	}

	m.AddContent(mail.NewContent("text/html", body))

	for _, category := range sn.Categories {
		m.AddCategories(category)
	}

	request := sendgrid.GetRequest(Config.APIKey, Config.MailSendPath, Config.BaseURL)
	request.Method = "POST"
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestRetry(request)
	if err != nil {
		log.Println(err)
		return err
	}

	log.Println(response.StatusCode)

	return nil
}

// SendAdminNotification sends an operational email to the store admin inbox.
func SendAdminNotification(sn *SimpleNotification) error {
	return SendSimpleNotification(sn, Config.AdminEmail)
}
