package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/modules/health/repositories"
	"github.com/MuhamadAgungGumelar/ezcare-ai-be/internal/shared/utils"
)

type ContentHandler struct {
	contentRepo repositories.ContentRepo
}

func NewContentHandler(contentRepo repositories.ContentRepo) *ContentHandler {
	return &ContentHandler{contentRepo: contentRepo}
}

// ListFAQs godoc
// @Summary List FAQs
// @Description Returns every row of the faqs table in store order
// @Tags Content
// @Produce json
// @Success 200 {array} models.FAQ
// @Failure 500 {object} map[string]string
// @Router /faqs [get]
func (h *ContentHandler) ListFAQs(c *fiber.Ctx) error {
	faqs, err := h.contentRepo.ListFAQs(c.UserContext())
	if err != nil {
		return storeFailure(c, "Failed to fetch FAQs", err)
	}
	return c.JSON(faqs)
}

// ListTestimonials godoc
// @Summary List testimonials
// @Description Returns every testimonial; a missing rating is reported as 5
// @Tags Content
// @Produce json
// @Success 200 {array} models.Testimonial
// @Failure 500 {object} map[string]string
// @Router /testimonials [get]
func (h *ContentHandler) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.contentRepo.ListTestimonials(c.UserContext())
	if err != nil {
		return storeFailure(c, "Failed to fetch testimonials", err)
	}
	return c.JSON(testimonials)
}

// ListTrustBadges godoc
// @Summary List trust badges
// @Tags Content
// @Produce json
// @Success 200 {array} models.TrustBadge
// @Failure 500 {object} map[string]string
// @Router /trust-badges [get]
func (h *ContentHandler) ListTrustBadges(c *fiber.Ctx) error {
	badges, err := h.contentRepo.ListTrustBadges(c.UserContext())
	if err != nil {
		return storeFailure(c, "Failed to fetch trust badges", err)
	}
	return c.JSON(badges)
}

// storeFailure logs the raw error and answers 500 with a generic detail.
func storeFailure(c *fiber.Ctx, detail string, err error) error {
	utils.LogError("❌ "+detail, err, map[string]interface{}{
		"path":       c.Path(),
		"request_id": c.Locals("requestID"),
	})
	return fiber.NewError(fiber.StatusInternalServerError, detail)
}
