package api

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"roomrate/server/config"
	"roomrate/server/internal/charts"
	"roomrate/server/internal/features"
	"roomrate/server/internal/geometry"
	"roomrate/server/internal/models"
	"roomrate/server/internal/predictor"
	"roomrate/server/internal/session"
)

const (
	sessionCookie      = "roomrate_session"
	topImportanceCount = 5
)

type Handler struct {
	store     *session.Store
	predictor *predictor.Predictor
	logger    *logrus.Logger
}

func NewHandler(store *session.Store, pred *predictor.Predictor, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		store:     store,
		predictor: pred,
		logger:    logger,
	}
}

// GetCities returns the supported cities with their default coordinates,
// in table order.
func (h *Handler) GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, config.SupportedCities)
}

// GetRoomTypes returns the room-type labels in table order.
func (h *Handler) GetRoomTypes(c *gin.Context) {
	c.JSON(http.StatusOK, config.RoomTypes)
}

// Predict runs one full render cycle: fold the submitted input into the
// session's form state, assemble the feature vector, scale and infer, and
// return the price with the map marker and, when toggled, the top feature
// importances. Artifact or layout failures abort the cycle with a 500; the
// client retries by submitting again.
func (h *Handler) Predict(c *gin.Context) {
	var in models.ListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.WithError(err).Error("Failed to parse listing input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
		return
	}

	if config.GetCityByName(in.City) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown city: %s", in.City)})
		return
	}
	if config.RoomTypeIndex(in.RoomType) < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown room type: %s", in.RoomType)})
		return
	}

	sess := h.resolveSession(c)
	session.Apply(&sess.Form, in)

	vector, err := features.Build(sess.Form)
	if err != nil {
		h.logger.WithError(err).Error("Failed to build feature vector")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build feature vector"})
		return
	}

	price, err := h.predictor.Predict(vector)
	if err != nil {
		h.logger.WithError(err).Error("Failed to produce prediction")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to produce prediction"})
		return
	}

	resp := models.PredictionResponse{
		Form:           sess.Form,
		Price:          price,
		PriceFormatted: formatPrice(price),
		Map:            h.mapView(sess.Form),
	}

	if in.ShowImportances {
		resp.FeatureImportances = h.predictor.TopImportances(topImportanceCount)
		sess.LastImportances = resp.FeatureImportances
	} else {
		sess.LastImportances = nil
	}

	c.JSON(http.StatusOK, resp)
}

// GetMap returns the marker GeoJSON for the session's current coordinates.
func (h *Handler) GetMap(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil || !sess.Form.CoordsSet {
		c.JSON(http.StatusNotFound, gin.H{"error": "No listing selected yet"})
		return
	}

	c.JSON(http.StatusOK, h.mapView(sess.Form))
}

// GetChart returns the feature-importance bar chart produced by the last
// prediction that had the importance toggle on.
func (h *Handler) GetChart(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil || len(sess.LastImportances) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No feature importances available yet"})
		return
	}

	html, err := charts.RenderImportances(sess.LastImportances)
	if err != nil {
		h.logger.WithError(err).Error("Failed to render importance chart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render chart"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *Handler) mapView(form models.FormState) *geometry.MapView {
	zoom := 13
	if city := config.GetCityByName(form.City); city != nil {
		zoom = city.ZoomLevel
	}
	return geometry.NewListingMap(form.Latitude, form.Longitude, zoom)
}

// resolveSession returns the caller's session, creating one and setting the
// cookie when none exists yet.
func (h *Handler) resolveSession(c *gin.Context) *session.Session {
	id, _ := c.Cookie(sessionCookie)
	sess := h.store.GetOrCreate(id)
	if sess.ID != id {
		c.SetCookie(sessionCookie, sess.ID, 0, "/", "", false, true)
	}
	return sess
}

// currentSession returns the caller's session or nil, without creating one.
func (h *Handler) currentSession(c *gin.Context) *session.Session {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		return nil
	}
	return h.store.Get(id)
}

// formatPrice renders a price as currency text, e.g. $1,234.56.
func formatPrice(price float64) string {
	neg := price < 0
	if neg {
		price = -price
	}

	s := fmt.Sprintf("%.2f", price)
	whole, frac := s[:len(s)-3], s[len(s)-3:]

	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)

	out := "$" + strings.Join(parts, ",") + frac
	if neg {
		out = "-" + out
	}
	return out
}
