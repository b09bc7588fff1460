package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sellora/order-service/internal/domain"
)

// actorFromHeaders reads the caller identity established by the upstream
// auth layer. Unknown roles default to customer, the least privileged.
func actorFromHeaders(c *gin.Context) domain.Actor {
	actor := domain.Actor{
		ID:   c.GetHeader("X-User-ID"),
		Role: domain.Role(c.GetHeader("X-User-Role")),
	}
	switch actor.Role {
	case domain.RoleCustomer, domain.RoleSeller, domain.RoleAdmin:
	default:
		actor.Role = domain.RoleCustomer
	}
	return actor
}

func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrAmountMismatch),
		errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrAlreadyCompleted),
		errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrConflict):
		// Lock contention: safe for the client to retry.
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
