package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WebhookResponse is returned to the gateway on success and on test-ack.
// Field names match what the gateway's dashboard logs expect.
type WebhookResponse struct {
	Message       string        `json:"message"`
	PaymentID     int64         `json:"paymentId,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
}

// AdminSetStatusRequest is the body of the admin update-status endpoint.
type AdminSetStatusRequest struct {
	Status string `json:"status"`
}

func (r AdminSetStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required,
			validation.In(
				string(PaymentStatusPending),
				string(PaymentStatusDPPaid),
				string(PaymentStatusPaid),
				string(PaymentStatusFailed),
			),
		),
	)
}
