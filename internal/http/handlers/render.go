package handlers

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	applog "pizzapos/internal/log"
	"pizzapos/internal/repos"
	"pizzapos/internal/validate"
	"pizzapos/web"
)

// Views returns the template engine over the embedded web/templates.
func Views() *html.Engine {
	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		panic(err) // static embed path
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Render(tmpl, data)
}

// statusFor maps store and validation errors onto HTTP codes.
func statusFor(err error) int {
	var verr *validate.Error
	switch {
	case errors.As(err, &verr), errors.Is(err, repos.ErrMissingID):
		return fiber.StatusBadRequest
	case errors.Is(err, repos.ErrDuplicateCoupon):
		return fiber.StatusConflict
	case errors.Is(err, repos.ErrProductNotFound), errors.Is(err, repos.ErrOrderNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repos.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// fail answers with the error text, the way the desktop bridge surfaced
// failures as plain strings.
func fail(c *fiber.Ctx, action string, err error) error {
	status := statusFor(err)
	c.Status(status)
	if status >= fiber.StatusInternalServerError {
		applog.Error(c, action, err, nil)
	} else {
		applog.Warn(c, action, map[string]any{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, action, msg string) error {
	applog.Warn(c, action, map[string]any{"error": msg})
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
