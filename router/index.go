package router

import (
	"olympic_ticketing/handler"
	"olympic_ticketing/middleware"
	"olympic_ticketing/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/signup", validate.Signup(), handler.Signup)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	offer := v1.Group("/offers", logger.New())
	offer.Get("/", handler.GetOffers)
	offer.Get("/:slug", handler.GetOfferBySlug)
	offer.Post("/", middleware.Protected(), validate.CreateOffer(), handler.CreateOffer)
	offer.Put("/:offerId", middleware.Protected(), validate.EditOffer("offerId"), handler.EditOffer)
	offer.Patch("/:offerId/active/:isActive", middleware.Protected(), validate.GetById("offerId"), handler.SetOfferActive)
	offer.Post("/:offerId/thumbnail", middleware.Protected(), validate.GetById("offerId"), handler.UploadOfferThumbnail)

	cart := v1.Group("/cart", logger.New())
	cart.Get("/", middleware.Protected(), handler.GetCartSummary)
	cart.Post("/add", middleware.Protected(), validate.CartOffer(), handler.AddOfferToCart)
	cart.Post("/update", middleware.Protected(), validate.CartQuantity(), handler.UpdateCartQuantity)
	cart.Post("/remove", middleware.Protected(), validate.CartOffer(), handler.RemoveOfferFromCart)

	order := v1.Group("/orders", logger.New())
	order.Post("/", middleware.Protected(), handler.CreateOrder)
	order.Get("/confirmation", middleware.Protected(), handler.GetOrderConfirmation)
	order.Get("/", middleware.Protected(), handler.GetMyOrders)

	ticket := v1.Group("/tickets", logger.New())
	ticket.Post("/generate/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GenerateTicketsForOrder)
}
