package wehttp

import (
	"net/http"

	"github.com/go-chi/render"
)

type errorResponse struct {
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"error"`
}

func (e *errorResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

var (
	errNotFound = &errorResponse{HTTPStatusCode: http.StatusNotFound, Message: "not found"}
	errInternal = &errorResponse{HTTPStatusCode: http.StatusInternalServerError, Message: "internal error"}
)
