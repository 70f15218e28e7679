package utils

import (
	"bytes"
	"io"

	"github.com/labstack/echo/v4"
)

// PeekBody reads the request body and puts it back so later middleware and
// the handler can still bind it.
func PeekBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, err
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
