package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/config"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/routes"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/services"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	st := store.New(cfg, loc)
	closer := services.NewCloser(st, loc)

	if cfg.AutoCheckoutAt != "" {
		services.StartAutoCheckout(closer, cfg.AutoCheckoutAt, loc)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg, st, closer, loc)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
