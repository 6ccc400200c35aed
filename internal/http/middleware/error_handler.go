package middleware

import (
	"github.com/gin-gonic/gin"

	"bebeboutique.mx/app/internal/shared/apperr"
)

type errorBody struct {
	Kind    string            `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type errorResponse struct {
	Error     errorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

// Fail renders any error as the API error envelope, leaking only the
// public message.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)

	body := errorBody{
		Kind:    string(apperr.Internal),
		Message: apperr.PublicMessage(err),
	}
	if ae, ok := apperr.As(err); ok {
		body.Kind = string(ae.Kind)
		body.Fields = ae.Fields
	}

	c.AbortWithStatusJSON(apperr.HTTPStatus(err), errorResponse{
		Error:     body,
		RequestID: GetRequestID(c),
	})
}
