package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"

	"fulloncrypto.backend/internal/domain/entities"
	domainerrors "fulloncrypto.backend/internal/domain/errors"
	"fulloncrypto.backend/internal/interfaces/http/response"
	"fulloncrypto.backend/internal/usecases"
)

type PaymentRequestHandler struct {
	usecase *usecases.PaymentRequestUsecase
}

func NewPaymentRequestHandler(usecase *usecases.PaymentRequestUsecase) *PaymentRequestHandler {
	return &PaymentRequestHandler{usecase: usecase}
}

// CreatePaymentRequestRequest is the creation body. Amount is a pointer
// so that a missing field fails binding; a JSON string amount fails the
// float64 unmarshal outright.
type CreatePaymentRequestRequest struct {
	UpiID             string   `json:"upiId" binding:"required"`
	Amount            *float64 `json:"amount" binding:"required"`
	PayeeName         *string  `json:"payeeName"`
	Note              *string  `json:"note"`
	ContractRequestID *string  `json:"contractRequestId"`
	WalletAddress     *string  `json:"walletAddress"`
	DaiAmount         *float64 `json:"daiAmount"`
	EthFee            *float64 `json:"ethFee"`
}

// CreatePaymentRequest creates a new payment request
// POST /api/payment-request
func (h *PaymentRequestHandler) CreatePaymentRequest(c *gin.Context) {
	var req CreatePaymentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest("upiId and a numeric amount are required"))
		return
	}

	input := usecases.CreatePaymentRequestInput{
		UpiID:             req.UpiID,
		Amount:            *req.Amount,
		PayeeName:         null.StringFromPtr(req.PayeeName),
		Note:              null.StringFromPtr(req.Note),
		ContractRequestID: null.StringFromPtr(req.ContractRequestID),
		WalletAddress:     null.StringFromPtr(req.WalletAddress),
		DaiAmount:         null.Float64FromPtr(req.DaiAmount),
		EthFee:            null.Float64FromPtr(req.EthFee),
	}

	result, err := h.usecase.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":        "Payment request created successfully",
		"paymentRequest": result,
	})
}

// ListPaymentRequests lists pending payment requests, newest first
// GET /api/payment-requests
func (h *PaymentRequestHandler) ListPaymentRequests(c *gin.Context) {
	requests, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if requests == nil {
		requests = []*entities.PaymentRequest{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":         "Payment requests retrieved successfully",
		"paymentRequests": requests,
	})
}

// GetPaymentRequestByContract resolves a payment request by contract request id
// GET /api/payment-request/contract/:contractRequestId
func (h *PaymentRequestHandler) GetPaymentRequestByContract(c *gin.Context) {
	contractRequestID := c.Param("contractRequestId")

	request, err := h.usecase.GetByContractID(c.Request.Context(), contractRequestID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("payment request not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":        "Payment request retrieved successfully",
		"paymentRequest": request,
	})
}

// GetUpiIDByContract resolves UPI details by contract request id
// GET /api/upi-id/contract/:contractRequestId
func (h *PaymentRequestHandler) GetUpiIDByContract(c *gin.Context) {
	contractRequestID := c.Param("contractRequestId")

	entry, err := h.usecase.GetUpiByContractID(c.Request.Context(), contractRequestID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("no UPI details for this contract request id"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"upiId":     entry.UpiID,
		"payeeName": entry.PayeeName,
		"note":      entry.Note,
	})
}
