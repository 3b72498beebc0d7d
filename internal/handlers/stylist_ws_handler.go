package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/abhishek-0203/neural-thread-couture/internal/config"
	"github.com/abhishek-0203/neural-thread-couture/internal/middleware"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	"github.com/abhishek-0203/neural-thread-couture/internal/stylist"
)

// StylistWSHandler is the streaming stylist relay. Each connection owns
// one stylist.Session; the frame protocol per turn is: optional start,
// zero or more delta, then exactly one of done/error.
type StylistWSHandler struct {
	db     *gorm.DB
	client *stylist.Client
	config *config.Config
}

func NewStylistWSHandler(db *gorm.DB, client *stylist.Client, cfg *config.Config) *StylistWSHandler {
	return &StylistWSHandler{db: db, client: client, config: cfg}
}

type stylistTurnRequest struct {
	Message             string         `json:"message"`
	ConversationHistory []stylist.Turn `json:"conversation_history"`
}

func (h *StylistWSHandler) Handle(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
		return
	}

	userID, _, err := middleware.ParseToken(tokenStr, h.config.JWTSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		return
	}

	var profile models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	ctx := c.Request.Context()
	session := stylist.NewSession()

	frames, err := session.Apply(stylist.Event{Kind: stylist.EventOpen})
	if err != nil || writeFrames(ctx, conn, frames) != nil {
		return
	}

	// Turns are handled strictly one at a time; there is no correlation
	// id, so a second request mid-stream gets an error frame instead of
	// interleaved output.
	for {
		var req stylistTurnRequest
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			return // client went away; no reconnect protocol
		}

		frames, err := session.Apply(stylist.Event{
			Kind:    stylist.EventTurn,
			Message: req.Message,
			History: req.ConversationHistory,
		})
		if err != nil {
			return
		}
		if writeFrames(ctx, conn, frames) != nil {
			return
		}
		if session.State() != stylist.StateAwaiting {
			continue // turn was rejected (busy or empty)
		}

		if h.runTurn(ctx, conn, session, &profile) != nil {
			return
		}
	}
}

func (h *StylistWSHandler) runTurn(
	ctx context.Context,
	conn *websocket.Conn,
	session *stylist.Session,
	profile *models.Profile,
) error {

	stream, err := h.client.OpenStream(ctx, profile, session.History(), session.Pending())
	if err != nil {
		frames, _ := session.Apply(stylist.Event{Kind: stylist.EventError, Err: err.Error()})
		return writeFrames(ctx, conn, frames)
	}
	defer stream.Close()

	frames, err := session.Apply(stylist.Event{Kind: stylist.EventStart})
	if err != nil {
		return err
	}
	if err := writeFrames(ctx, conn, frames); err != nil {
		return err
	}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			frames, _ := session.Apply(stylist.Event{Kind: stylist.EventDone})
			return writeFrames(ctx, conn, frames)
		}
		if err != nil {
			// Partial output is discarded by the session, not
			// finalized — the client sees only the error frame.
			frames, _ := session.Apply(stylist.Event{Kind: stylist.EventError, Err: err.Error()})
			return writeFrames(ctx, conn, frames)
		}

		if len(resp.Choices) == 0 {
			continue
		}
		content := resp.Choices[0].Delta.Content
		if content == "" {
			continue
		}

		frames, err = session.Apply(stylist.Event{Kind: stylist.EventDelta, Content: content})
		if err != nil {
			return err
		}
		if err := writeFrames(ctx, conn, frames); err != nil {
			return err
		}
	}
}

func writeFrames(ctx context.Context, conn *websocket.Conn, frames []stylist.Frame) error {
	for _, f := range frames {
		writeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := wsjson.Write(writeCtx, conn, f)
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}
