package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"geo-catalog-service/internal/domain"
	"geo-catalog-service/internal/dto"
	"geo-catalog-service/internal/usecase"
)

// indexView is the template model for the search page.
type indexView struct {
	Query              string
	Rows               []dto.EntryRow
	Total              int
	Page               int
	PerPage            int
	TotalPages         int
	Options            *domain.FilterOptions
	SelectedOrganisms  map[string]bool
	SelectedDataTypes  map[string]bool
	SelectedStrategies map[string]bool
	PrevURL            string
	NextURL            string
}

func (h *Handler) Index(c *gin.Context) {
	params := searchParams(c)
	params.Organisms = c.QueryArray(domain.ColumnOrganism)
	params.DataTypes = c.QueryArray(domain.ColumnDataType)
	params.LibraryStrategies = c.QueryArray(domain.ColumnLibraryStrategy)

	result, err := h.entryUC.Search(c.Request.Context(), params)
	if err != nil {
		log.WithError(err).Error("search failed")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	options, err := h.entryUC.FilterOptions(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("load filter options failed")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	view := indexView{
		Query:              params.Query,
		Rows:               dto.ToEntryRows(result.Entries),
		Total:              result.Total,
		Page:               result.Page,
		PerPage:            result.PerPage,
		TotalPages:         result.TotalPages,
		Options:            options,
		SelectedOrganisms:  selectionSet(params.Organisms),
		SelectedDataTypes:  selectionSet(params.DataTypes),
		SelectedStrategies: selectionSet(params.LibraryStrategies),
	}
	if result.Page > 1 {
		view.PrevURL = pageURL(c, result.Page-1)
	}
	if result.Page < result.TotalPages {
		view.NextURL = pageURL(c, result.Page+1)
	}

	c.HTML(http.StatusOK, "index.html", view)
}

func (h *Handler) EntryDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", nil)
		return
	}

	entry, err := h.entryUC.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			c.HTML(http.StatusNotFound, "404.html", nil)
			return
		}
		log.WithError(err).Error("get entry failed")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "entry.html", gin.H{
		"Entry":  entry,
		"Fields": entry.Fields(),
	})
}

func (h *Handler) APISearch(c *gin.Context) {
	result, err := h.entryUC.Search(c.Request.Context(), searchParams(c))
	if err != nil {
		log.WithError(err).Error("api search failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(result))
}

func searchParams(c *gin.Context) usecase.SearchParams {
	// A missing or garbage page number falls back to 1.
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	return usecase.SearchParams{
		Query: c.Query("q"),
		Page:  page,
	}
}

func selectionSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// pageURL rebuilds the current query string with a different page number so
// pagination links keep the active term and filters.
func pageURL(c *gin.Context, page int) string {
	values := url.Values{}
	for key, vals := range c.Request.URL.Query() {
		if key == "page" {
			continue
		}
		values[key] = vals
	}
	values.Set("page", strconv.Itoa(page))
	return c.Request.URL.Path + "?" + values.Encode()
}
