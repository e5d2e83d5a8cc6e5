package v1

import (
	"encoding/json"
	"net/http"

	"github.com/doum4811/startbeyond-backend/internal/auth"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the export route with the RouterGroup
// that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetExport)
}

type ExportResponse struct {
	Data  map[string]json.RawMessage `json:"data"`                                      // All resources of the profile, keyed by resource name
	Error *string                    `json:"error" example:"there is no profile"` // The error, if any occurred
}

// @Summary		Export
// @Description	Returns all resources of the profile as one JSON document
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	data, err := models.Export(models.DB, auth.ProfileID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExportResponse{Data: data})
}
