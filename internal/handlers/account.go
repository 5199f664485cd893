package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"payvault/internal/models"
	"payvault/internal/services/account"
	"payvault/internal/utils/response"
)

var validate = validator.New()

// AccountHandler exposes account creation and lookup endpoints.
type AccountHandler struct {
	service account.Service
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(s account.Service) *AccountHandler { return &AccountHandler{service: s} }

// CreateAccount handles POST /v1/accounts requests.
func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var req struct {
		AccountID string           `json:"accountId" validate:"required"`
		Balance   *decimal.Decimal `json:"balance" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if req.Balance.IsNegative() {
		return response.BadRequest(c, "balance must not be negative")
	}

	acc := models.Account{AccountID: req.AccountID, Balance: *req.Balance}
	if err := h.service.CreateAccount(c.Context(), acc); err != nil {
		return domainError(c, err)
	}
	return response.Created(c, "account created", acc)
}

// GetAccount handles GET /v1/accounts/:accountId requests.
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	acc, err := h.service.GetAccount(c.Context(), c.Params("accountId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(acc)
}
