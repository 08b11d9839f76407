package router

import (
	"github.com/labstack/echo/v4"

	"belarro/entities"
	"belarro/pkg/middleware"
)

type crud interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

type orderCtrl interface {
	Get(echo.Context) error
	Put(echo.Context) error
	PatchItems(echo.Context) error
	Clear(echo.Context) error
	Tracking(echo.Context) error
	History(echo.Context) error
	RecordDelivery(echo.Context) error
}

func New(
	e *echo.Echo,
	jwtSecret string,
	authEnabled bool,
	productCtrl interface {
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
		ListPublic(echo.Context) error
		Featured(echo.Context) error
		Tags(echo.Context) error
		GetBySlug(echo.Context) error
		ListAdmin(echo.Context) error
	},
	kitchenCtrl crud,
	userCtrl crud,
	authCtrl interface {
		Login(echo.Context) error
		WhoAmI(echo.Context) error
	},
	orders orderCtrl,
	submissionCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	guideCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		IngestURL(echo.Context) error
		Delete(echo.Context) error
	},
	productionCtrl interface{ Sheet(echo.Context) error },
	uploadCtrl interface{ Create(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	// Website endpoints, no auth.
	api := e.Group("/api")
	api.GET("/products", productCtrl.ListPublic)
	api.GET("/products/featured", productCtrl.Featured)
	api.GET("/products/tags", productCtrl.Tags)
	api.GET("/products/:slug", productCtrl.GetBySlug)
	api.POST("/submissions", submissionCtrl.Create)
	api.GET("/guides", guideCtrl.List)
	api.GET("/guides/:id", guideCtrl.Get)

	e.POST("/auth/login", authCtrl.Login)

	auth := middleware.Auth(jwtSecret, authEnabled)
	e.GET("/whoami", authCtrl.WhoAmI, auth)

	admin := e.Group("/admin", auth, middleware.RequireRole(entities.RoleAdmin))

	admin.GET("/products", productCtrl.ListAdmin)
	admin.POST("/products", productCtrl.Create)
	admin.GET("/products/:id", productCtrl.Get)
	admin.PUT("/products/:id", productCtrl.Update)
	admin.DELETE("/products/:id", productCtrl.Delete)

	admin.GET("/kitchens", kitchenCtrl.List)
	admin.POST("/kitchens", kitchenCtrl.Create)
	admin.GET("/kitchens/:id", kitchenCtrl.Get)
	admin.PUT("/kitchens/:id", kitchenCtrl.Update)
	admin.DELETE("/kitchens/:id", kitchenCtrl.Delete)

	// Standing order of a specific kitchen, managed on its behalf.
	admin.GET("/kitchens/:id/order", orders.Get)
	admin.PUT("/kitchens/:id/order", orders.Put)
	admin.PATCH("/kitchens/:id/order/items", orders.PatchItems)
	admin.DELETE("/kitchens/:id/order", orders.Clear)
	admin.GET("/kitchens/:id/order/tracking", orders.Tracking)
	admin.GET("/kitchens/:id/order/history", orders.History)
	admin.POST("/kitchens/:id/order/record", orders.RecordDelivery)

	admin.GET("/users", userCtrl.List)
	admin.POST("/users", userCtrl.Create)
	admin.GET("/users/:id", userCtrl.Get)
	admin.PUT("/users/:id", userCtrl.Update)
	admin.DELETE("/users/:id", userCtrl.Delete)

	admin.GET("/submissions", submissionCtrl.List)
	admin.PATCH("/submissions/:id", submissionCtrl.Patch)
	admin.DELETE("/submissions/:id", submissionCtrl.Delete)

	admin.POST("/guides/ingest/url", guideCtrl.IngestURL)
	admin.DELETE("/guides/:id", guideCtrl.Delete)

	admin.GET("/production/sheet", productionCtrl.Sheet)
	admin.POST("/uploads", uploadCtrl.Create)

	// Chef portal routes resolve the kitchen from the token claim.
	chef := e.Group("/chef", auth, middleware.RequireRole(entities.RoleChef))
	chef.GET("/order", orders.Get)
	chef.PUT("/order", orders.Put)
	chef.PATCH("/order/items", orders.PatchItems)
	chef.DELETE("/order", orders.Clear)
	chef.GET("/order/tracking", orders.Tracking)
	chef.GET("/order/history", orders.History)

	return e
}
