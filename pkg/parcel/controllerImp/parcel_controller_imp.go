package controllerImp

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/areaunit"
	"github.com/ikople24/smart-saard/pkg/parcel/controller"
	"github.com/ikople24/smart-saard/pkg/parcel/repository"
	"github.com/ikople24/smart-saard/pkg/parcel/service"
)

type ParcelCtrl struct {
	svc      service.ParcelService
	maxBytes int64
}

func New(svc service.ParcelService, maxUploadMB int) controller.ParcelController {
	return &ParcelCtrl{svc: svc, maxBytes: int64(maxUploadMB) * 1024 * 1024}
}

func uidOf(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}

// parcelView is the list/detail response shape: stored fields plus the
// decoded allocation and its derived summary.
type parcelView struct {
	entities.Parcel
	Survey  entities.Allocation `json:"survey"`
	Summary areaunit.Summary    `json:"summary"`
}

func view(p entities.Parcel) parcelView {
	alloc := entities.DecodeAllocation(p.SurveyJSON)
	return parcelView{
		Parcel:  p,
		Survey:  alloc,
		Summary: areaunit.Summarize(p.AreaText, alloc.Areas),
	}
}

func (h *ParcelCtrl) Import(c echo.Context) error {
	body := http.MaxBytesReader(nil, c.Request().Body, h.maxBytes)
	raw, err := io.ReadAll(body)
	if err != nil {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "upload too large"})
	}
	rpt, err := h.svc.ImportGeoJSON(raw, uidOf(c))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rpt)
}

func (h *ParcelCtrl) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	f := repository.ListFilter{
		Province: c.QueryParam("province"),
		District: c.QueryParam("district"),
		Category: c.QueryParam("category"),
		Limit:    limit,
		Offset:   offset,
	}
	parcels, total, err := h.svc.List(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	items := make([]parcelView, 0, len(parcels))
	for _, p := range parcels {
		items = append(items, view(p))
	}
	return c.JSON(http.StatusOK, map[string]any{"total": total, "items": items})
}

// Get accepts either a parcel code or a numeric parcel id.
func (h *ParcelCtrl) Get(c echo.Context) error {
	key := c.Param("id")
	p, err := h.svc.GetByCode(key)
	if err != nil {
		if id, convErr := strconv.Atoi(key); convErr == nil {
			if byID, idErr := h.svc.GetByID(uint(id)); idErr == nil {
				return c.JSON(http.StatusOK, view(*byID))
			}
		}
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, view(*p))
}

func (h *ParcelCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var patch service.AttrPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p, err := h.svc.UpdateAttributes(uint(id), uidOf(c), patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, view(*p))
}

func (h *ParcelCtrl) ReplaceGeometry(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	raw, err := io.ReadAll(http.MaxBytesReader(nil, c.Request().Body, h.maxBytes))
	if err != nil {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "upload too large"})
	}
	p, err := h.svc.ReplaceGeometry(uint(id), uidOf(c), raw)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, view(*p))
}

func (h *ParcelCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uint(id)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
