package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"payvault/internal/models"
	"payvault/internal/services/transfer"
	"payvault/internal/utils/response"
)

// TransferHandler exposes the account-to-account transfer endpoint.
type TransferHandler struct {
	service transfer.Service
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(s transfer.Service) *TransferHandler { return &TransferHandler{service: s} }

// Transfer handles POST /v1/accounts/transfer requests.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	var req struct {
		AccountFromID string           `json:"accountFromId" validate:"required"`
		AccountToID   string           `json:"accountToId" validate:"required"`
		Amount        *decimal.Decimal `json:"amount" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	receipt, err := h.service.Transfer(c.Context(), models.TransferRequest{
		AccountFromID: req.AccountFromID,
		AccountToID:   req.AccountToID,
		Amount:        *req.Amount,
	})
	if err != nil {
		return domainError(c, err)
	}
	return response.Success(c, "transfer completed", fiber.Map{
		"accountFrom": receipt.From,
		"accountTo":   receipt.To,
	})
}
