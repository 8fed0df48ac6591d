package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

func sendMail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	if from == "" {
		from = user
	}
	if host == "" || user == "" || pass == "" {
		return fmt.Errorf("SMTP config not set")
	}
	if port == "" {
		port = "587"
	}

	addr := host + ":" + port
	auth := smtp.PlainAuth("", user, pass, host)

	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
		"\r\n" + body

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func SendOTPEmail(to, otp string) error {
	body := fmt.Sprintf("Your verification code is: %s", otp)
	return sendMail(to, "Your verification code", body)
}

// SendGoalReminderEmail nudges a user whose monthly progress is behind pace.
func SendGoalReminderEmail(to string, monthlyProgress float64) error {
	body := fmt.Sprintf("You are at %.1f%% of your monthly mileage goal. Time to lace up!", monthlyProgress)
	return sendMail(to, "Monthly goal check-in", body)
}
