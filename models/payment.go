package models

import "io"

// PaymentInput selects how a booking is paid. A non-nil Proof means the user
// uploaded proof of payment and no online payment intent is opened.
type PaymentInput struct {
	Proof *ProofUpload
}

// ProofUpload is an uploaded proof-of-payment image.
type ProofUpload struct {
	Body     io.Reader
	MimeType string
	Filename string
}

// PaymentIntent is the subset of a gateway payment intent the booking flow needs.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}
