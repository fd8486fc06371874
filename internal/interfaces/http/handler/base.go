package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/profitlens/backend/internal/domain/shared"
	"github.com/profitlens/backend/internal/interfaces/http/dto"
)

// ShopDomainHeader carries the merchant's shop domain on every API request.
// It is set by the session layer after app installation is verified.
const ShopDomainHeader = "X-Shop-Domain"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getShopDomain extracts the shop domain from the request
func getShopDomain(c *gin.Context) string {
	return c.GetHeader(ShopDomainHeader)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// HandleError maps domain errors to HTTP responses; anything unrecognized
// becomes a 500 without leaking internals
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "Internal server error")
}
