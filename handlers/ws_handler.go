package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/odroffice/odr-go/response"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type trackingEvent struct {
	TrackingNumber string     `json:"tracking_number"`
	Status         string     `json:"status"`
	PaymentStatus  bool       `json:"payment_status"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// WatchTrackingHandler streams status changes for a tracking number over a
// websocket. The current state is sent on connect and again whenever it
// changes; the poll interval is coarse since requests move slowly.
func (h *IntakeHandler) WatchTrackingHandler(c *gin.Context) {
	trackingNumber := c.Param("id")
	requesterID := c.Query("requester_id")
	if requesterID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "requester_id is required"})
		return
	}

	req, err := h.Intake.Track(trackingNumber, requesterID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	writeChan := make(chan []byte, 16)
	done := make(chan struct{})

	go func() {
		defer conn.Close()
		for msg := range writeChan {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
	}()

	// Reader exists only to detect the client going away.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	push := func(r trackingEvent) {
		if msg, err := json.Marshal(r); err == nil {
			select {
			case writeChan <- msg:
			default:
			}
		}
	}

	last := trackingEvent{
		TrackingNumber: req.RequestID,
		Status:         string(req.Status),
		PaymentStatus:  req.PaymentStatus,
		CompletedAt:    req.CompletedAt,
	}
	push(last)

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	defer close(writeChan)

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			current, err := h.Intake.Track(trackingNumber, requesterID)
			if err != nil {
				return
			}
			event := trackingEvent{
				TrackingNumber: current.RequestID,
				Status:         string(current.Status),
				PaymentStatus:  current.PaymentStatus,
				CompletedAt:    current.CompletedAt,
			}
			if event.Status != last.Status || event.PaymentStatus != last.PaymentStatus {
				push(event)
				last = event
			}
		}
	}
}
