package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// document exposes the API document to the swagger UI.
type document struct {
	raw string
}

func (d document) ReadDoc() string {
	return d.raw
}

// RegisterDocs publishes doc under the default swag instance and mounts the
// UI at /swagger/*. The document is registered once per process.
func RegisterDocs(e *echo.Echo, doc *openapi3.T) error {
	if _, err := swag.ReadDoc(); err != nil {
		raw, marshalErr := doc.MarshalJSON()
		if marshalErr != nil {
			return marshalErr
		}
		swag.Register(swag.Name, document{raw: string(raw)})
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}
