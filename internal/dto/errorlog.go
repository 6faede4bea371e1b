package dto

import "time"

type FailedEventResponseDTO struct {
	ID           int       `json:"id" example:"3"`
	Topic        string    `json:"topic" example:"ezpay.transfers"`
	RoutingKey   string    `json:"routing_key" example:"transfer.requested"`
	Payload      string    `json:"payload"`
	ErrorMessage string    `json:"error_message" example:"insufficient funds"`
	Status       string    `json:"status" example:"PENDING"`
	OccurredAt   time.Time `json:"occurred_at"`
}
