package models

import "time"

// SMSNotificationEvent asks the delivery worker to text a verification code
type SMSNotificationEvent struct {
	MSISDN    string    `json:"msisdn"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EmailNotificationEvent asks the delivery worker to mail a verification code
type EmailNotificationEvent struct {
	Email     string    `json:"email"`
	FullName  string    `json:"fullname,omitempty"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}
