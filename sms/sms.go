// Package sms abstracts the outbound SMS collaborator. The system never
// guarantees delivery, only generation and validation of codes.
package sms

import "log"

type Sender interface {
	// Send returns whether the message was handed off to the provider.
	Send(phone, message string) bool
}

// ConsoleSender logs messages instead of sending them. Development stand-in
// for a real provider integration.
type ConsoleSender struct{}

func (ConsoleSender) Send(phone, message string) bool {
	log.Printf("SMS to %s: %s", phone, message)
	return true
}
