package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/eventconnect/backend/internal/api/http/converter"
	"github.com/eventconnect/backend/internal/service"
	"github.com/eventconnect/backend/lib/logger/sl"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type ChatController struct {
	chat     service.ChatInteractor
	hub      *ChatHub
	log      *slog.Logger
	upgrader websocket.Upgrader
}

func NewChatController(chat service.ChatInteractor, hub *ChatHub, log *slog.Logger) *ChatController {
	if log == nil {
		log = slog.Default()
	}
	return &ChatController{
		chat: chat,
		hub:  hub,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (c *ChatController) ListMessages(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("eventID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	beforeID, _ := strconv.ParseInt(ctx.DefaultQuery("before", "0"), 10, 64)

	messages, err := c.chat.ListMessages(ctx.Request.Context(), eventID, currentUserID(ctx), limit, beforeID)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": converter.ChatMessagesToAPI(messages)})
}

func (c *ChatController) PostMessage(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("eventID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	type request struct {
		Message string `json:"message"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	msg, err := c.chat.PostMessage(ctx.Request.Context(), eventID, currentUserID(ctx), req.Message)
	if err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	apiMsg := converter.ChatMessageToAPI(msg)
	c.hub.Publish(eventID, StreamFrame{Type: "message", EventID: eventID, Message: apiMsg})

	ctx.JSON(http.StatusCreated, gin.H{"message": apiMsg})
}

// Stream upgrades to a websocket and forwards the event's live thread.
// Inbound frames with type "message" are posted like the REST path and
// fan out to every subscriber, the sender included.
func (c *ChatController) Stream(ctx *gin.Context) {
	eventID, err := strconv.ParseInt(ctx.Param("eventID"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	userID := currentUserID(ctx)
	if err := c.chat.Access(ctx.Request.Context(), eventID, userID); err != nil {
		ctx.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		ctx.String(http.StatusInternalServerError, "failed to upgrade connection")
		return
	}

	sub := c.hub.Subscribe(eventID)
	defer c.hub.Unsubscribe(eventID, sub)

	// The forwarder goroutine is the only writer on the connection;
	// every outbound frame goes through the subscriber channel.
	sub.enqueue(StreamFrame{Type: "joined", EventID: eventID})
	go forwardFrames(conn, sub)

	for {
		var frame StreamFrame
		if err := conn.ReadJSON(&frame); err != nil {
			conn.Close()
			return
		}

		if frame.Type != "message" || frame.Message == nil {
			continue
		}

		// The request context dies once the connection is hijacked;
		// the stream outlives it.
		msg, err := c.chat.PostMessage(context.Background(), eventID, userID, frame.Message.Message)
		if err != nil {
			c.log.Info("stream message rejected", sl.Err(err))
			sub.enqueue(StreamFrame{Type: "error", EventID: eventID, Error: err.Error()})
			continue
		}

		c.hub.Publish(eventID, StreamFrame{Type: "message", EventID: eventID, Message: converter.ChatMessageToAPI(msg)})
	}
}

func forwardFrames(conn *websocket.Conn, sub *chatSubscriber) {
	for frame := range sub.frames {
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}
}
