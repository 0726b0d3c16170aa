package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"machine_shop_suite/internal/adapter/http/dto/response"
	"machine_shop_suite/internal/domain/entities"
	"machine_shop_suite/internal/infrastructure/slicer"
	"machine_shop_suite/internal/usecase"
	"machine_shop_suite/internal/usecase/interfaces"
	"machine_shop_suite/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SliceHandler accepts STL uploads and returns the slicer's filament and
// print-time estimate.
type SliceHandler struct {
	slice usecase.ISliceUseCase
	store interfaces.IShopConfigStore
}

func NewSliceHandler(slice usecase.ISliceUseCase, store interfaces.IShopConfigStore) *SliceHandler {
	return &SliceHandler{slice: slice, store: store}
}

// AnalyzeSTL godoc
// @Summary  Slice an STL upload and estimate filament usage
// @Tags     slicer
// @Accept   multipart/form-data
// @Produce  json
// @Param    file formData file true "STL file"
// @Param    material formData string false "material key"
// @Param    quality formData string false "quality key"
// @Param    printer formData string false "printer key"
// @Success  200 {object} response.SliceResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /slice [post]
func (h *SliceHandler) AnalyzeSTL(c *gin.Context) {
	settings := h.store.FileSettings()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(settings.MaxFileSizeMB)*1024*1024)

	file, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("NO_FILE", "No file uploaded", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !allowedUpload(file.Filename, settings.AllowedExtensions) {
		appErr := pkg.NewDomainErrorSimple("INVALID_FILE_TYPE", "Invalid file type. Only STL files are allowed.", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	params := entities.PrintParams{
		Material:      c.DefaultPostForm("material", "pla"),
		Quality:       c.DefaultPostForm("quality", "standard"),
		Printer:       c.DefaultPostForm("printer", "prusa_mk3s"),
		InfillDensity: atoiDefault(c.PostForm("infill_density"), 20),
	}
	support := strings.EqualFold(c.PostForm("support"), "true")

	stlPath := filepath.Join(os.TempDir(), "upload_"+uuid.NewString()+".stl")
	if err := c.SaveUploadedFile(file, stlPath); err != nil {
		appErr := pkg.NewDomainError("UPLOAD_FAILED", "Failed to store upload", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer os.Remove(stlPath)

	result, err := h.slice.Analyze(c.Request.Context(), stlPath, params, support)
	if err != nil {
		appErr := mapSliceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SliceResponse{Data: result})
}

func mapSliceError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("INVALID_SLICE_PARAMS", verr.Error(), http.StatusBadRequest)
	case errors.Is(err, slicer.ErrSlicingTimeout):
		return pkg.NewDomainErrorSimple("SLICING_TIMEOUT", "Slicing timeout - file may be too complex", http.StatusInternalServerError)
	case errors.Is(err, slicer.ErrSlicerNotFound):
		return pkg.NewDomainError("SLICER_UNAVAILABLE", "Slicer is not available", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("SLICING_FAILED", "Slicing failed", err, http.StatusInternalServerError)
	}
}

func allowedUpload(filename string, allowed []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
