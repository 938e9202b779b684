package domain

// EmailMessage is a fully rendered message handed to a transport.
type EmailMessage struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}
