package events

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ruangobat-admin/internal/api/respond"
	"ruangobat-admin/internal/app/http/middleware"
	"ruangobat-admin/internal/domain/events"
	"ruangobat-admin/internal/infra/logger"
	"ruangobat-admin/internal/infra/ruangobat"
)

type Backend interface {
	ListEvents(ctx context.Context, token string, page int) (*ruangobat.EventPage, error)
	GetEvent(ctx context.Context, token, eventID string) (*ruangobat.EventPayload, error)
	CreateEvent(ctx context.Context, token string, payload ruangobat.EventPayload) (*ruangobat.EventPayload, error)
	UpdateEvent(ctx context.Context, token, eventID string, payload ruangobat.EventPayload) error
	DeleteEvent(ctx context.Context, token, eventID string) error
}

type Handler struct {
	backend Backend
	log     logger.Logger
	loc     *time.Location
	now     func() time.Time
}

// NewHandler reads zone-less registration timestamps in loc.
func NewHandler(backend Backend, log logger.Logger, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{backend: backend, log: log, loc: loc, now: time.Now}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	_, token := middleware.CurrentAdmin(c)

	res, err := h.backend.ListEvents(c.Request.Context(), token, page)
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}

	now := h.now()
	out := eventPage{
		Events:      make([]eventRow, 0, len(res.Events)),
		Page:        res.Page,
		TotalEvents: res.TotalEvents,
		TotalPages:  res.TotalPages,
	}
	for _, p := range res.Events {
		out.Events = append(out.Events, h.row(p, now))
	}
	respond.OK(c, http.StatusOK, out)
}

func (h *Handler) Get(c *gin.Context) {
	_, token := middleware.CurrentAdmin(c)
	p, err := h.backend.GetEvent(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	respond.OK(c, http.StatusOK, h.row(*p, h.now()))
}

func (h *Handler) Create(c *gin.Context) {
	ev, ok := h.bind(c)
	if !ok {
		return
	}
	_, token := middleware.CurrentAdmin(c)

	created, err := h.backend.CreateEvent(c.Request.Context(), token, ruangobat.PayloadFromEvent(ev))
	if err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	respond.OK(c, http.StatusCreated, h.row(*created, h.now()))
}

func (h *Handler) Update(c *gin.Context) {
	ev, ok := h.bind(c)
	if !ok {
		return
	}
	_, token := middleware.CurrentAdmin(c)

	if err := h.backend.UpdateEvent(c.Request.Context(), token, c.Param("id"), ruangobat.PayloadFromEvent(ev)); err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	ev.EventID = c.Param("id")
	respond.OK(c, http.StatusOK, h.row(ruangobat.PayloadFromEvent(ev), h.now()))
}

func (h *Handler) Delete(c *gin.Context) {
	_, token := middleware.CurrentAdmin(c)
	if err := h.backend.DeleteEvent(c.Request.Context(), token, c.Param("id")); err != nil {
		respond.Fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) bind(c *gin.Context) (events.Event, bool) {
	var body eventBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.BadRequest(c, err)
		return events.Event{}, false
	}
	window, err := events.NewRegistrationWindow(body.Window.Start, body.Window.End)
	if err != nil {
		respond.Fail(c, h.log, err)
		return events.Event{}, false
	}
	return events.Event{
		Title:          body.Title,
		UniversityName: body.UniversityName,
		ImgURL:         body.ImgURL,
		Content:        body.Content,
		Window:         window,
	}, true
}

// row parses the wire window once. A malformed window is reported and the
// row carries window_error instead of a status.
func (h *Handler) row(p ruangobat.EventPayload, now time.Time) eventRow {
	r := eventRow{
		EventID:          p.EventID,
		Title:            p.Title,
		UniversityName:   p.UniversityName,
		ImgURL:           p.ImgURL,
		Content:          p.Content,
		RegistrationDate: p.RegistrationDate,
		CreatedAt:        p.CreatedAt,
	}

	ev, err := p.ToEvent(h.loc)
	if err != nil {
		h.log.Error("malformed registration window from backend", err, map[string]interface{}{
			"event_id":          p.EventID,
			"registration_date": p.RegistrationDate,
		})
		r.WindowError = err.Error()
		return r
	}

	status := ev.Window.StatusAt(now)
	b, _ := events.BadgeFor(status)
	r.Window = &ev.Window
	r.Status = status
	r.Badge = &b
	return r
}
