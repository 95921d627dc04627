package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mallmap/server/internal/catalog"
	"mallmap/server/internal/geometry"
	"mallmap/server/internal/mapview"
	"mallmap/server/internal/metrics"
	"mallmap/server/internal/models"
	"mallmap/server/internal/tracking"
)

// ClickReader reads persisted click counters
type ClickReader interface {
	GetClickCount(mallID string) (int64, bool, error)
	GetClickCounts() (map[string]int64, error)
}

// ClickTracker records mall clicks
type ClickTracker interface {
	Track(ctx context.Context, clientKey, mallID string) (tracking.Outcome, error)
}

type Handler struct {
	holder  *catalog.Holder
	shapes  []models.RegionShape
	clicks  ClickReader
	tracker ClickTracker
	logger  *logrus.Logger
}

type TrackClickRequest struct {
	MallID string `json:"mallId" binding:"required"`
}

// MallListResponse is the body of the mall list endpoint
type MallListResponse struct {
	Query     string        `json:"query"`
	Searching bool          `json:"searching"`
	Total     int           `json:"total"`
	Count     int           `json:"count"`
	Malls     []models.Mall `json:"malls"`
	Message   string        `json:"message,omitempty"`
}

// RegionsResponse is the body of the region ranking endpoint
type RegionsResponse struct {
	Regions  []models.RegionStat `json:"regions"`
	Total    int                 `json:"total"`
	Excluded int                 `json:"excluded"`
}

// MapResponse is the body of the map view endpoint
type MapResponse struct {
	ViewBox  string               `json:"viewBox"`
	Regions  []mapview.RegionView `json:"regions"`
	Total    int                  `json:"total"`
	Unmapped []string             `json:"unmapped"`
}

func NewHandler(holder *catalog.Holder, shapes []models.RegionShape, clicks ClickReader, tracker ClickTracker, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		holder:  holder,
		shapes:  shapes,
		clicks:  clicks,
		tracker: tracker,
		logger:  logger,
	}
}

// NoMatchMessage is shown when a search matches no mall
func NoMatchMessage(query string) string {
	return fmt.Sprintf("'%s'에 해당하는 마켓을 찾을 수 없습니다", query)
}

// store returns the current catalog or answers 503
func (h *Handler) store(c *gin.Context) (*catalog.Store, bool) {
	store := h.holder.Current()
	if store == nil {
		h.logger.Error("Catalog not loaded")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog not available"})
		return nil, false
	}
	return store, true
}

// overlayCounts replaces file click counts with tracked ones where present
func (h *Handler) overlayCounts(malls []models.Mall) []models.Mall {
	if h.clicks == nil || len(malls) == 0 {
		return malls
	}
	counts, err := h.clicks.GetClickCounts()
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read click counts, using catalog values")
		return malls
	}
	out := make([]models.Mall, len(malls))
	for i, m := range malls {
		if n, ok := counts[m.ID]; ok {
			m = m.WithClickCount(n)
		}
		out[i] = m
	}
	return out
}

func (h *Handler) ListMalls(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	all := store.All()
	result := catalog.Search(all, c.Query("q"))
	if result.Active {
		metrics.SearchRequestsTotal.Inc()
	}

	resp := MallListResponse{
		Query:     result.Query,
		Searching: result.Active,
		Total:     len(all),
		Count:     len(result.Malls),
		Malls:     h.overlayCounts(result.Malls),
	}
	if result.NoMatches() {
		metrics.SearchEmptyResultsTotal.Inc()
		resp.Message = NoMatchMessage(result.Query)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMall(c *gin.Context) {
	id := c.Param("id")

	store := h.holder.Current()
	if store == nil {
		h.logger.WithField("mall_id", id).Warn("Catalog not loaded, treating mall as not found")
		metrics.DetailNotFoundTotal.Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Mall not found"})
		return
	}

	mall, found := store.FindByID(id)
	if !found {
		metrics.DetailNotFoundTotal.Inc()
		c.JSON(http.StatusNotFound, gin.H{"error": "Mall not found"})
		return
	}

	if h.clicks != nil {
		count, tracked, err := h.clicks.GetClickCount(id)
		if err != nil {
			h.logger.WithError(err).WithField("mall_id", id).Warn("Failed to read click count")
		} else if tracked {
			mall = mall.WithClickCount(count)
		}
	}

	c.JSON(http.StatusOK, mall)
}

func (h *Handler) GetRegions(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	all := store.All()
	counts := catalog.Aggregate(all)
	c.JSON(http.StatusOK, RegionsResponse{
		Regions:  mapview.Rank(counts),
		Total:    counts.Total(),
		Excluded: catalog.Unregioned(all),
	})
}

// views joins the shape table with counts from the full catalog
func (h *Handler) views(store *catalog.Store) ([]mapview.RegionView, models.RegionCounts) {
	counts := catalog.Aggregate(store.All())
	return mapview.Build(h.shapes, counts), counts
}

func (h *Handler) GetMap(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	views, counts := h.views(store)
	unmapped := mapview.Unmapped(h.shapes, counts)
	if unmapped == nil {
		unmapped = []string{}
	}
	c.JSON(http.StatusOK, MapResponse{
		ViewBox:  mapview.DefaultViewBox,
		Regions:  views,
		Total:    counts.Total(),
		Unmapped: unmapped,
	})
}

func (h *Handler) GetMapSVG(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	views, _ := h.views(store)
	var buf bytes.Buffer
	if err := mapview.RenderSVG(&buf, views, mapview.DefaultViewBox); err != nil {
		h.logger.WithError(err).Error("Failed to render map")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render map"})
		return
	}

	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", buf.Bytes())
}

func (h *Handler) GetMapGeoJSON(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}

	views, _ := h.views(store)
	fc := geometry.RegionFeatures(views, h.logger)
	data, err := fc.MarshalJSON()
	if err != nil {
		h.logger.WithError(err).Error("Failed to encode map features")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode map"})
		return
	}

	c.Data(http.StatusOK, "application/geo+json", data)
}

func (h *Handler) TrackClick(c *gin.Context) {
	var req TrackClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid track-click request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	out, err := h.tracker.Track(c.Request.Context(), c.ClientIP(), req.MallID)
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, out)
	case errors.Is(err, tracking.ErrUnknownMall):
		c.JSON(http.StatusNotFound, gin.H{"error": "Mall not found"})
	case errors.Is(err, tracking.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog not available"})
	default:
		h.logger.WithError(err).WithField("mall_id", req.MallID).Error("Failed to track click")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to track click"})
	}
}

func (h *Handler) Health(c *gin.Context) {
	store := h.holder.Current()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "malls": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "malls": store.Len()})
}
