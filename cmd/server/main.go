package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"belarro/config"
	"belarro/database"
	"belarro/router"

	// Auth
	authCtrlImp "belarro/pkg/auth/controllerImp"

	// Products
	productCtrlImp "belarro/pkg/product/controllerImp"
	productRepoImp "belarro/pkg/product/repositoryImp"
	productSvcImp "belarro/pkg/product/serviceImp"

	// Kitchens
	kitchenCtrlImp "belarro/pkg/kitchen/controllerImp"
	kitchenRepoImp "belarro/pkg/kitchen/repositoryImp"

	// Standing orders
	orderCtrlImp "belarro/pkg/order/controllerImp"
	orderRepoImp "belarro/pkg/order/repositoryImp"
	orderSvcImp "belarro/pkg/order/serviceImp"

	// Users
	userCtrlImp "belarro/pkg/user/controllerImp"
	userRepoImp "belarro/pkg/user/repositoryImp"

	// Contact submissions
	subCtrlImp "belarro/pkg/submission/controllerImp"
	subRepoImp "belarro/pkg/submission/repositoryImp"

	// Growing guides
	guideCtrlImp "belarro/pkg/guide/controllerImp"
	guideRepoImp "belarro/pkg/guide/repositoryImp"

	// Production + uploads + health
	healthCtrlImp "belarro/pkg/health/controllerImp"
	productionCtrlImp "belarro/pkg/production/controllerImp"
	uploadCtrlImp "belarro/pkg/upload/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Business timezone. Delivery and seeding math runs on local days.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("bad TZ %q, falling back to UTC: %v", cfg.Timezone, err)
		loc = time.UTC
	}

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Static("/uploads", cfg.UploadDir)
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	// 5) Repos
	productRepo := productRepoImp.New(db)
	kitchenRepo := kitchenRepoImp.New(db)
	orderRepo := orderRepoImp.New(db)
	userRepo := userRepoImp.New(db)
	subRepo := subRepoImp.New(db)
	guideRepo := guideRepoImp.New(db)

	// 6) Services
	productSvc := productSvcImp.New(productRepo)
	orderSvc := orderSvcImp.New(orderRepo, productRepo)

	// 7) Controllers
	productCtrl := productCtrlImp.New(productSvc)
	kitchenCtrl := kitchenCtrlImp.New(kitchenRepo)
	orderCtrl := orderCtrlImp.New(orderSvc, loc)
	userCtrl := userCtrlImp.New(userRepo)
	authCtrl := authCtrlImp.New(userRepo, cfg.JWTSecret)
	subCtrl := subCtrlImp.New(subRepo)
	guideCtrl := guideCtrlImp.New(guideRepo, cfg.GuideDomains)
	productionCtrl := productionCtrlImp.New(productRepo, kitchenRepo, orderRepo, loc)
	uploadCtrl := uploadCtrlImp.New(cfg.UploadDir)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Router
	r := router.New(
		e,
		cfg.JWTSecret,
		cfg.AuthEnabled,
		productCtrl,
		kitchenCtrl,
		userCtrl,
		authCtrl,
		orderCtrl,
		subCtrl,
		guideCtrl,
		productionCtrl,
		uploadCtrl,
		healthCtrl,
	)

	// 9) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
