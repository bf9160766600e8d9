package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"villastay/internal/app/dto"
	villasapp "villastay/internal/app/handlers/villas"
	"villastay/internal/app/queries"
)

type VillaHandler struct {
	Queries queries.Bus
}

func (h VillaHandler) Calendar(c *gin.Context) {
	q := villasapp.GetCalendarQuery{VillaID: c.Param("id")}
	result, err := queries.Ask[villasapp.GetCalendarQuery, dto.Calendar](c.Request.Context(), h.Queries, q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ VillaHTTP = VillaHandler{}
