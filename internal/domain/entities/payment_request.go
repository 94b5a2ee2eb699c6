package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PaymentRequestStatus represents the status of a payment request
type PaymentRequestStatus string

// Pending is the only status the API ever sets; transitions beyond it
// happen outside this system.
const PaymentRequestStatusPending PaymentRequestStatus = "pending"

// AnonymousRequester is recorded when no wallet address accompanies a
// payment request.
const AnonymousRequester = "anonymous"

// PaymentRequest represents a UPI payment request, optionally correlated
// with an on-chain request via ContractRequestID
type PaymentRequest struct {
	ID                uuid.UUID            `json:"id"`
	UpiID             string               `json:"upiId"`
	Amount            float64              `json:"amount"`
	PayeeName         null.String          `json:"payeeName"`
	Note              null.String          `json:"note"`
	ContractRequestID null.String          `json:"contractRequestId"`
	WalletAddress     null.String          `json:"walletAddress"`
	DaiAmount         null.Float64         `json:"daiAmount"`
	EthFee            null.Float64         `json:"ethFee"`
	RequesterID       string               `json:"requesterId"`
	Status            PaymentRequestStatus `json:"status"`
	CreatedAt         time.Time            `json:"createdAt"`
}

// UpiIndexEntry is the denormalized lookup row mapping a contract request
// id to the UPI details captured when the payment request was created.
// At most one entry exists per contract request id; a later payment
// request reusing the id fully replaces the earlier entry.
type UpiIndexEntry struct {
	ContractRequestID string      `json:"contractRequestId"`
	UpiID             string      `json:"upiId"`
	PayeeName         null.String `json:"payeeName"`
	Note              null.String `json:"note"`
	CreatedAt         time.Time   `json:"createdAt"`
}
