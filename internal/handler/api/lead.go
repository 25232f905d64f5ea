package api

import (
	"net/http"

	"lead-capture/internal/domain/lead"
	reqdto "lead-capture/internal/handler/dto/request"
	resdto "lead-capture/internal/handler/dto/response"
	"lead-capture/internal/handler/httperr"
	"lead-capture/internal/pkg/errs"
	"lead-capture/internal/usecase/commands"
	"lead-capture/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	cmds commands.LeadCommands
	q    queries.LeadQueries
}

func NewLeadHandler(cmds commands.LeadCommands, q queries.LeadQueries) *LeadHandler {
	httperr.UseJSONFieldNames()
	return &LeadHandler{cmds: cmds, q: q}
}

// @Summary Submit contact request
// @Description Store a contact form submission as a pending request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitLeadRequest true "Contact form"
// @Success 201 {object} resdto.LeadResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/requests [post]
func (h *LeadHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail(err))
		return
	}

	rec, err := h.cmds.Submit(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromLeadRecord(rec))
}

// @Summary List contact requests
// @Description List stored requests, newest first
// @Tags requests
// @Produce json
// @Param today query bool false "Only requests stored with today's date"
// @Success 200 {object} resdto.LeadListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/requests [get]
func (h *LeadHandler) List(c *gin.Context) {
	var query reqdto.ListLeadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.ValidationDetail(err))
		return
	}

	var (
		views []*queries.LeadView
		err   error
	)
	if query.Today {
		views, err = h.q.FetchToday(c.Request.Context())
	} else {
		views, err = h.q.FetchAll(c.Request.Context())
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch requests", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromLeadList(views))
}

func abortSubmitError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, lead.ErrInvalidPhone):
		httperr.AbortWithError(c, http.StatusBadRequest, err, lead.ErrInvalidPhone.Error(), nil)
	case errs.Is(err, lead.ErrEmptyClientName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", []httperr.FieldError{{Field: "name", Rule: "required"}})
	case errs.Is(err, lead.ErrEmptyDescription):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", []httperr.FieldError{{Field: "message", Rule: "required"}})
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to submit request", nil)
	}
}
