package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/ikople24/smart-saard/config"
	"github.com/ikople24/smart-saard/database"
	"github.com/ikople24/smart-saard/router"

	// Auth
	authCtrlImp "github.com/ikople24/smart-saard/pkg/auth/controllerImp"

	// Parcel
	parcelCtrlImp "github.com/ikople24/smart-saard/pkg/parcel/controllerImp"
	parcelRepoImp "github.com/ikople24/smart-saard/pkg/parcel/repositoryImp"
	parcelSvcImp "github.com/ikople24/smart-saard/pkg/parcel/serviceImp"

	// Survey
	surveyCtrlImp "github.com/ikople24/smart-saard/pkg/survey/controllerImp"
	surveySvcImp "github.com/ikople24/smart-saard/pkg/survey/serviceImp"

	// Reference articles
	refCtrlImp "github.com/ikople24/smart-saard/pkg/refdata/controllerImp"
	refRepoImp "github.com/ikople24/smart-saard/pkg/refdata/repositoryImp"
	refSvcImp "github.com/ikople24/smart-saard/pkg/refdata/serviceImp"

	// Export
	exportCtrlImp "github.com/ikople24/smart-saard/pkg/export/controllerImp"

	// Health
	healthCtrlImp "github.com/ikople24/smart-saard/pkg/health/controllerImp"

	appMiddleware "github.com/ikople24/smart-saard/pkg/middleware"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + legacy survey shape rewrite
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	e.Use(appMiddleware.LIFF(cfg.EnableLIFF))

	// Static (map UI is served as built assets)
	e.Static("/static", "static")
	e.File("/", "static/index.html")

	// 4) Repos/Services
	pRepo := parcelRepoImp.New(db)
	pSvc := parcelSvcImp.New(pRepo)
	sSvc := surveySvcImp.New(pRepo)

	rRepo := refRepoImp.New(db)
	rSvc := refSvcImp.New(rRepo)

	// 5) Controllers
	pCtrl := parcelCtrlImp.New(pSvc, cfg.MaxUploadMB)
	sCtrl := surveyCtrlImp.New(sSvc)
	rCtrl := refCtrlImp.New(rSvc, cfg.RefAllowedDomains)
	xCtrl := exportCtrlImp.New(pRepo)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(
		e,
		pCtrl,
		sCtrl,
		rCtrl,
		xCtrl.SurveyXLSX,
		authCtrl,
		hCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
