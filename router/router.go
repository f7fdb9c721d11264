package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ikople24/smart-saard/pkg/middleware"
)

func New(
	e *echo.Echo,
	parcelCtrl interface {
		Import(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Patch(echo.Context) error
		ReplaceGeometry(echo.Context) error
		Delete(echo.Context) error
	},
	surveyCtrl interface {
		Get(echo.Context) error
		Put(echo.Context) error
		AutoFill(echo.Context) error
		BulkAssign(echo.Context) error
	},
	refCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	exportSurveyXLSX func(echo.Context) error,
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/parcels/import", parcelCtrl.Import)
	api.GET("/parcels", parcelCtrl.List)
	api.GET("/parcels/:id", parcelCtrl.Get)
	api.PATCH("/parcels/:id", parcelCtrl.Patch)
	api.PUT("/parcels/:id/geometry", parcelCtrl.ReplaceGeometry)
	api.DELETE("/parcels/:id", parcelCtrl.Delete)

	g := e.Group("/parcels")
	g.GET("/:id/survey", surveyCtrl.Get)
	g.PUT("/:id/survey", surveyCtrl.Put)
	g.POST("/:id/survey/autofill", surveyCtrl.AutoFill)
	api.POST("/parcels/survey/bulk", surveyCtrl.BulkAssign)

	api.POST("/refdata/ingest", refCtrl.IngestText)
	api.POST("/refdata/ingest/url", refCtrl.IngestURL)
	api.GET("/refdata/search", refCtrl.Search)

	api.GET("/export/survey.xlsx", exportSurveyXLSX)

	return e
}
