package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "payvault/internal/errors"
	"payvault/internal/utils/response"
)

// domainError maps business-rule failures onto their stable HTTP classes.
// Anything outside the domain taxonomy surfaces as 500 with the detail
// withheld.
func domainError(c *fiber.Ctx, err error) error {
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == apperrors.CodeAccountNotFound {
			return response.NotFound(c, domainErr.Message)
		}
		return response.BadRequest(c, domainErr.Message)
	}
	return response.ServerError(c, "something went wrong")
}
