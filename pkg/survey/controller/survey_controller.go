package controller

import "github.com/labstack/echo/v4"

type SurveyController interface {
	Get(c echo.Context) error
	Put(c echo.Context) error
	AutoFill(c echo.Context) error
	BulkAssign(c echo.Context) error
}
