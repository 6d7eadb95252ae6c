package routes

import (
	"matka/controllers/admin"
	"matka/controllers/bet"
	"matka/controllers/market"
	"matka/controllers/user"
	"matka/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	userroutes := app.Group("/user")
	userroutes.Post("/register", user.RegisterUser)
	userroutes.Post("/balance", user.CheckUserBalance)
	userroutes.Post("/statement", user.Statement)

	app.Post("/bet/place", bet.PlaceBet)
	app.Get("/market/list", market.ListMarkets)

	adminroutes := app.Group("/", middlewares.AdminAuth())
	adminroutes.Post("/market/create", market.CreateMarket)
	adminroutes.Post("/market/declare/open", market.DeclareOpen)
	adminroutes.Post("/market/declare/close", market.DeclareClose)
	adminroutes.Post("/market/preview/open", market.PreviewOpen)
	adminroutes.Post("/market/preview/close", market.PreviewClose)
	adminroutes.Post("/bet/cancel", bet.CancelBet)
	adminroutes.Get("/admin/rates", admin.GetRates)
	adminroutes.Post("/admin/rates", admin.UpdateRates)
}
