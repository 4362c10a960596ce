package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// BookingConfirmationData feeds the booking confirmation template.
type BookingConfirmationData struct {
	BookingCode string
	SeatTitle   string
	Location    string
	SeatsTaken  int
	Price       int
	Contact     string
	DetailLink  string
}

// SendBookingConfirmationEmail sends the booking confirmation (async so the
// booking response is not delayed by SMTP).
func SendBookingConfirmationEmail(to string, data BookingConfirmationData) {
	go func() {
		tmplPath := "templates/booking_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("could not load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("could not render email template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmed #"+data.BookingCode)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("could not send booking email: %v", err)
		}
	}()
}
