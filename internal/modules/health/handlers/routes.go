package handlers

import "github.com/gofiber/fiber/v2"

type Handlers struct {
	Health  *HealthHandler
	Content *ContentHandler
	Pricing *PricingHandler
	Chat    *ChatHandler
}

// RegisterRoutes mounts the public health-chat API on router.
func (h *Handlers) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.Health.GetHealth)

	router.Get("/faqs", h.Content.ListFAQs)
	router.Get("/testimonials", h.Content.ListTestimonials)
	router.Get("/trust-badges", h.Content.ListTrustBadges)

	router.Get("/pricing/plans", h.Pricing.GetPlans)

	router.Post("/chat", h.Chat.Chat)
	router.Get("/pain-categories", h.Chat.GetPainCategories)
}
