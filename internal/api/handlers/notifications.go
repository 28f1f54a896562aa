package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hypechain/hypechain/internal/db"
	"github.com/hypechain/hypechain/internal/middleware"
	"github.com/hypechain/hypechain/internal/models"
)

// NotificationAPI exposes notification endpoints
type NotificationAPI struct {
	repo *db.Repository
}

// NewNotificationAPI creates a new notification API
func NewNotificationAPI(repo *db.Repository) *NotificationAPI {
	return &NotificationAPI{repo: repo}
}

// notificationView is the wire representation of a notification
type notificationView struct {
	ID        int64           `json:"id"`
	Type      string          `json:"type"`
	ActorID   string          `json:"actor_id,omitempty"`
	Actor     string          `json:"actor,omitempty"`
	PostID    string          `json:"post_id,omitempty"`
	Amount    int64           `json:"amount,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListNotifications handles GET /api/notifications
func (h *NotificationAPI) ListNotifications(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 50, 200)
	userID := middleware.CallerID(c)

	notifs := db.NewNotificationRepository(h.repo)
	list, err := notifs.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	unread, err := notifs.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]notificationView, 0, len(list))
	for _, notif := range list {
		view := notificationView{
			ID:        notif.ID,
			Type:      models.NotifyTypeName(notif.Type),
			ActorID:   notif.ActorID.String,
			PostID:    notif.PostID.String,
			Amount:    notif.Amount.Int64,
			IsRead:    notif.IsRead,
			CreatedAt: notif.CreatedAt,
		}
		if notif.Payload.Valid {
			view.Payload = json.RawMessage(notif.Payload.String)
		}
		if notif.Actor != nil {
			view.Actor = notif.Actor.Username
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": views,
		"unread_count":  unread,
	})
}

// MarkAllRead handles POST /api/notifications/read
func (h *NotificationAPI) MarkAllRead(c *gin.Context) {
	notifs := db.NewNotificationRepository(h.repo)
	if err := notifs.MarkAllRead(c.Request.Context(), middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
