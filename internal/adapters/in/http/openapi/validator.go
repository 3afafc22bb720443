// Package openapi serves the embedded API document and checks incoming API
// requests against it before they reach the handlers.
package openapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pressing/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// APIPrefix marks the requests covered by the document.
const APIPrefix = "/api/"

// LoadDocument decodes and validates the document embedded in the generated
// server code.
func LoadDocument() (*openapi3.T, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, err
	}
	return doc, nil
}

// RequestValidator rejects API requests whose path, parameters or body do not
// match doc. Requests outside APIPrefix pass through untouched.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !strings.HasPrefix(req.URL.Path, APIPrefix) {
				return next(c)
			}

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return reject(c, routeStatus(findErr), findErr)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return reject(c, http.StatusBadRequest, validateErr)
			}

			return next(c)
		}
	}, nil
}

// routeStatus maps a router failure to a response code. The router returns
// a new RouteError each time, so reasons are compared instead of identities.
func routeStatus(err error) int {
	var routeErr *routers.RouteError
	if !errors.As(err, &routeErr) {
		return http.StatusBadRequest
	}
	switch routeErr.Reason {
	case routers.ErrPathNotFound.Error():
		return http.StatusNotFound
	case routers.ErrMethodNotAllowed.Error():
		return http.StatusMethodNotAllowed
	default:
		return http.StatusBadRequest
	}
}

func reject(c echo.Context, code int, err error) error {
	return c.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}
