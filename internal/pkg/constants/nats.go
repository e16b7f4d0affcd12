package constants

// NATS subjects published by the payments service
const (
	// SubjectPaymentProcessed carries events for payments that passed
	// validation and were recorded.
	SubjectPaymentProcessed = "payment.processed"
)
