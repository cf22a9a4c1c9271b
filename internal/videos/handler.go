package videos

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shortsreel/backend/internal/models"
	"github.com/shortsreel/backend/pkg/response"
)

// Sampling and listing bounds. A huge count parameter is clamped, not
// rejected.
const (
	DefaultSampleSize = 20
	MaxSampleSize     = 200
	MaxListSize       = 500
)

// Store is the persistence surface the handler needs. *Repository
// implements it; tests swap in a fake.
type Store interface {
	Insert(ctx context.Context, v *models.Video) error
	Replace(ctx context.Context, id uuid.UUID, v *models.Video) error
	List(ctx context.Context, limit int) ([]models.Video, error)
	Count(ctx context.Context) (int64, error)
	Sample(ctx context.Context, n int) ([]models.Video, error)
}

// Handler handles video catalog HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a video handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// upsertRequest is the body for insert and full-replace update. Title,
// description and tag elements accept any JSON value and are coerced to
// strings; only media_id is strict. This leniency is a kept contract
// with the existing admin panel, not an accident.
type upsertRequest struct {
	Title       interface{}   `json:"title"`
	Description interface{}   `json:"description"`
	MediaID     interface{}   `json:"media_id"`
	Tags        []interface{} `json:"tags"`
}

// video validates and normalizes the request into a record ready to
// persist.
func (req *upsertRequest) video() (*models.Video, bool) {
	mediaID, ok := req.MediaID.(string)
	mediaID = strings.TrimSpace(mediaID)
	if !ok || mediaID == "" {
		return nil, false
	}
	tags := make([]string, 0, len(req.Tags))
	for _, t := range req.Tags {
		tags = append(tags, coerceString(t))
	}
	return &models.Video{
		Title:       strings.TrimSpace(coerceString(req.Title)),
		Description: strings.TrimSpace(coerceString(req.Description)),
		MediaID:     mediaID,
		Tags:        tags,
	}, true
}

// Create handles POST /api/admin/videos.
func (h *Handler) Create(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	v, ok := req.video()
	if !ok {
		response.BadRequest(c, "media_id required")
		return
	}
	if err := h.store.Insert(c.Request.Context(), v); err != nil {
		h.logger.Error("insert video", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	response.OK(c, playable(v, true))
}

// Update handles PUT /api/admin/videos/:id, a full replace of the
// mutable fields. Same validation as Create.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid video id")
		return
	}
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	v, ok := req.video()
	if !ok {
		response.BadRequest(c, "media_id required")
		return
	}
	if err := h.store.Replace(c.Request.Context(), id, v); err != nil {
		if err == ErrNotFound {
			response.NotFound(c, "video not found")
			return
		}
		h.logger.Error("replace video", zap.Error(err), zap.String("id", id.String()))
		response.Internal(c, "Server error")
		return
	}
	response.OK(c, playable(v, true))
}

// List handles GET /api/admin/videos: newest first, capped.
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context(), MaxListSize)
	if err != nil {
		h.logger.Error("list videos", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	out := make([]models.Playable, 0, len(list))
	for i := range list {
		out = append(out, *playable(&list[i], true))
	}
	response.OK(c, out)
}

// Count handles GET /api/videos/count.
func (h *Handler) Count(c *gin.Context) {
	n, err := h.store.Count(c.Request.Context())
	if err != nil {
		h.logger.Error("count videos", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	response.OK(c, gin.H{"count": n})
}

// Random handles GET /api/videos/random?count=N for anonymous players.
// The requested count is clamped to [1, MaxSampleSize]; an undersized
// catalog returns everything it has.
func (h *Handler) Random(c *gin.Context) {
	n := DefaultSampleSize
	if raw := c.Query("count"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			n = parsed
		}
	}
	if n < 1 {
		n = 1
	}
	if n > MaxSampleSize {
		n = MaxSampleSize
	}

	list, err := h.store.Sample(c.Request.Context(), n)
	if err != nil {
		h.logger.Error("sample videos", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	out := make([]models.Playable, 0, len(list))
	for i := range list {
		out = append(out, *playable(&list[i], false))
	}
	response.OK(c, out)
}

// playable renders a stored video for a response, resolving the media
// reference to a URL. withCreatedAt is false for anonymous reads.
func playable(v *models.Video, withCreatedAt bool) *models.Playable {
	p := &models.Playable{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Tags:        v.Tags,
		URL:         ResolveMediaURL(v.MediaID),
	}
	if withCreatedAt {
		t := v.CreatedAt
		p.CreatedAt = &t
	}
	return p
}

// coerceString turns any decoded JSON value into its string form.
// Strings pass through; numbers, booleans and composites are rendered
// the way the admin panel historically sent them.
func coerceString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		b, err := json.Marshal(s)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
