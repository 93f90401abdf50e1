package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, fromName string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		FromName: fromName,
	}
}

// SendCoupon delivers the discount code to the captured email address.
func (s *EmailSender) SendCoupon(to, code string, percent int) error {
	data := CouponEmailData{
		Code:    code,
		Percent: percent,
	}

	tmplPath := filepath.Join("templates", "coupon.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("reading coupon email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("rendering coupon email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.User, s.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Your %s Discount Code!", code))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending coupon email over SMTP: %w", err)
	}

	return nil
}
