package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/survey/controller"
	"github.com/ikople24/smart-saard/pkg/survey/service"
)

type SurveyCtrl struct{ svc service.SurveyService }

func New(svc service.SurveyService) controller.SurveyController {
	return &SurveyCtrl{svc: svc}
}

func uidOf(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}

func (h *SurveyCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	v, err := h.svc.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, v)
}

func (h *SurveyCtrl) Put(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body entities.Allocation
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	v, err := h.svc.Commit(uint(id), uidOf(c), body)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	// over-limit rides along as advisory state, the write already happened
	return c.JSON(http.StatusOK, v)
}

func (h *SurveyCtrl) AutoFill(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Target string            `json:"target"`
		Areas  map[string]string `json:"areas"`
	}
	if err := c.Bind(&body); err != nil || body.Target == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "target required"})
	}
	text, ok, err := h.svc.AutoFill(uint(id), body.Areas, body.Target)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"target": body.Target, "area": text, "available": ok})
}

func (h *SurveyCtrl) BulkAssign(c echo.Context) error {
	var body struct {
		Codes []string `json:"codes"`
		entities.Allocation
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	codes := make([]string, 0, len(body.Codes))
	for _, code := range body.Codes {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "codes required"})
	}
	results, err := h.svc.BulkAssign(codes, uidOf(c), body.Allocation)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"results": results})
}
