package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/eventconnect/backend/internal/api/http/converter"
	"github.com/eventconnect/backend/internal/domain"
	"github.com/eventconnect/backend/internal/service"
	"github.com/eventconnect/backend/internal/timebucket"
	"github.com/gin-gonic/gin"
)

type EventController struct {
	events service.EventInteractor
	rsvps  service.RSVPInteractor
}

func NewEventController(events service.EventInteractor, rsvps service.RSVPInteractor) *EventController {
	return &EventController{events: events, rsvps: rsvps}
}

type eventRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time" binding:"required"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Price       string   `json:"price"`
	IsFree      bool     `json:"is_free"`
	MaxCapacity *int     `json:"max_capacity"`

	ParkingInfo        string `json:"parking_info"`
	MeetingPoint       string `json:"meeting_point"`
	Duration           string `json:"duration"`
	WhatToBring        string `json:"what_to_bring"`
	SpecialNotes       string `json:"special_notes"`
	Requirements       string `json:"requirements"`
	ContactInfo        string `json:"contact_info"`
	CancellationPolicy string `json:"cancellation_policy"`
}

func (req *eventRequest) toDomain() *domain.Event {
	return &domain.Event{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		Date:               req.Date,
		Time:               req.Time,
		Location:           req.Location,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Price:              req.Price,
		IsFree:             req.IsFree,
		MaxCapacity:        req.MaxCapacity,
		ParkingInfo:        req.ParkingInfo,
		MeetingPoint:       req.MeetingPoint,
		Duration:           req.Duration,
		WhatToBring:        req.WhatToBring,
		SpecialNotes:       req.SpecialNotes,
		Requirements:       req.Requirements,
		ContactInfo:        req.ContactInfo,
		CancellationPolicy: req.CancellationPolicy,
	}
}

func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req eventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	event := req.toDomain()
	event.OrganizerID = currentUserID(ctx)

	created, err := c.events.CreateEvent(ctx.Request.Context(), event)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"event": created})
}

func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("eventID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req eventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	event := req.toDomain()
	event.ID = id

	updated, err := c.events.UpdateEvent(ctx.Request.Context(), currentUserID(ctx), event)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"event": updated})
}

func (c *EventController) DeactivateEvent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("eventID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := c.events.DeactivateEvent(ctx.Request.Context(), currentUserID(ctx), id); err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

// Browse serves the feed for one time bucket. The client sends its
// zone offset so the window is computed on its wall clock.
func (c *EventController) Browse(ctx *gin.Context) {
	timeFilter := ctx.Query("timeFilter")
	if timeFilter == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "timeFilter is required"})
		return
	}

	tzOffset, _ := strconv.Atoi(ctx.DefaultQuery("timezoneOffset", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	events, err := c.events.Browse(ctx.Request.Context(), timeFilter, tzOffset, limit, currentUserID(ctx))
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"events": converter.EventsToAPI(events)})
}

// FilterOptions lists the selectable buckets with display labels, so
// every client renders the same choices for the same wall clock.
func (c *EventController) FilterOptions(ctx *gin.Context) {
	tzOffset, _ := strconv.Atoi(ctx.DefaultQuery("timezoneOffset", "0"))

	ctx.JSON(http.StatusOK, gin.H{"options": timebucket.Options(time.Now(), tzOffset)})
}

func (c *EventController) GetEvent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("eventID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := c.events.GetEvent(ctx.Request.Context(), id, currentUserID(ctx))
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	// Origin travels with the request instead of client-global flags;
	// the response carries the back target it maps to.
	origin := domain.ParseOrigin(ctx.Query("origin"))

	ctx.JSON(http.StatusOK, gin.H{
		"event":       converter.EventToAPI(event),
		"back_target": origin.BackTarget(),
	})
}

func (c *EventController) MyEvents(ctx *gin.Context) {
	events, err := c.events.ListByOrganizer(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"events": converter.EventsToAPI(events)})
}

func (c *EventController) SetRSVP(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("eventID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	type request struct {
		Status string `json:"status"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rsvp, counts, err := c.rsvps.SetStatus(ctx.Request.Context(), id, currentUserID(ctx), domain.RSVPStatus(req.Status))
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"rsvp":        rsvp,
		"rsvp_count":  counts.Going,
		"maybe_count": counts.Maybe,
	})
}

func (c *EventController) ListRSVPs(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("eventID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	rsvps, err := c.rsvps.ListAttendees(ctx.Request.Context(), id)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"rsvps": rsvps})
}
