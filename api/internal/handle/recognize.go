package handle

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/JohnvenTom/animeFace/api/internal/recognize"
)

// Recognize handles POST /api/recognize: validate the upload, forward it to
// the recognition service and relay the result. A successful upstream body
// is passed through byte-for-byte.
func (h *Handle) Recognize(c fiber.Ctx) error {
	rid := uuid.NewString()
	c.Set("X-Request-ID", rid)

	raw, err := collectUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorEnvelope{Error: err.Error()})
	}

	in, err := recognize.Intake(raw, h.maxBytes)
	if err != nil {
		var verr *recognize.ValidationError
		if errors.As(err, &verr) {
			h.log.Infow("request rejected", "rid", rid, "reason", verr.Error())
			return c.Status(fiber.StatusBadRequest).JSON(errorEnvelope{Error: verr.Error()})
		}
		h.log.Errorw("intake failed", "rid", rid, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorEnvelope{Error: err.Error()})
	}

	out := h.client.Search(c.Context(), in)
	if out.Kind == recognize.KindSuccess {
		h.log.Infow("recognized", "rid", rid, "bytes", len(out.Body))
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(out.Body)
	}

	status, msg, details := recognize.MapFailure(out)
	h.log.Warnw("upstream failure", "rid", rid, "kind", out.Kind, "status", status, "err", out.Err)
	return c.Status(status).JSON(errorEnvelope{Error: msg, Details: details})
}

// collectUpload pulls the file part, the url field and the option fields out
// of the multipart body. Only option keys the client actually sent end up in
// the bag, so the translator can tell "absent" from "empty".
func collectUpload(c fiber.Ctx) (recognize.RawUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return recognize.RawUpload{}, errors.New("expected a multipart/form-data body")
	}

	raw := recognize.RawUpload{Options: map[string]string{}}
	if files := form.File["file"]; len(files) > 0 {
		raw.File = files[0]
	}
	if vals := form.Value["url"]; len(vals) > 0 {
		raw.URL = vals[0]
	}
	for _, k := range recognize.OptionKeys {
		if vals, ok := form.Value[k]; ok && len(vals) > 0 {
			raw.Options[k] = vals[0]
		}
	}
	return raw, nil
}

// Health handles GET /api/health.
func (h *Handle) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
