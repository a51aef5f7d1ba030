package handler

import (
	"net/http"

	"github.com/deppfellow/procurement-cms/internal/errs"
	"github.com/deppfellow/procurement-cms/internal/lib/email"
	"github.com/labstack/echo/v4"
)

// EmailPreviewHandler renders notification templates with sample data so
// they can be checked in a browser. Mounted in the local environment only.
type EmailPreviewHandler struct{}

func (h *EmailPreviewHandler) Preview(c echo.Context) error {
	body, err := email.Preview(email.Template(c.Param("template")))
	if err != nil {
		code := "TEMPLATE_NOT_FOUND"
		return errs.NewNotFoundError("Unknown email template", true, &code)
	}
	return c.HTML(http.StatusOK, body)
}
