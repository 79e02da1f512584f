package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cropconnect/api/app/services"
	"github.com/cropconnect/api/pkg/bind"
	"github.com/cropconnect/api/pkg/logger"
	"github.com/cropconnect/api/pkg/response"
	"github.com/cropconnect/api/pkg/ws"
)

// AdvisorController fronts the AI advisor over two transports: plain POST
// endpoints and a WebSocket chat at /ws/advisor.
type AdvisorController struct {
	predictor services.Predictor
	chatbot   services.Chatbot
	hub       *ws.Hub
}

func NewAdvisor(predictor services.Predictor, chatbot services.Chatbot) *AdvisorController {
	c := &AdvisorController{
		predictor: predictor,
		chatbot:   chatbot,
		hub:       ws.NewHub(),
	}
	c.hub.OnMessage = c.onChatMessage
	go c.hub.Run()
	return c
}

// PredictPrice handles POST /ai/price-prediction.
func (c *AdvisorController) PredictPrice(w http.ResponseWriter, r *http.Request) {
	var in services.PredictInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	prediction, err := c.predictor.Predict(r.Context(), in.CropName, in.Location, in.Quality)
	if err != nil {
		respondErr(w, r, err, "Crop not found")
		return
	}
	response.Success(w, prediction)
}

// Chat handles POST /ai/chat.
func (c *AdvisorController) Chat(w http.ResponseWriter, r *http.Request) {
	var in services.ChatInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	reply, err := c.chatbot.Reply(r.Context(), in.Message)
	if err != nil {
		respondErr(w, r, err, "")
		return
	}
	response.Success(w, reply)
}

// Socket handles GET /ws/advisor, upgrading to a WebSocket chat session.
// Each text frame is treated as one chat message and answered on the same
// connection.
func (c *AdvisorController) Socket(w http.ResponseWriter, r *http.Request) {
	ws.Upgrade(w, r, c.hub)
}

func (c *AdvisorController) onChatMessage(_ *ws.Hub, msg ws.Message) {
	var in services.ChatInput
	if err := json.Unmarshal(msg.Data, &in); err != nil || in.Message == "" {
		// Fall back to treating the raw frame as the message text.
		in.Message = string(msg.Data)
	}

	reply, err := c.chatbot.Reply(context.Background(), in.Message)
	if err != nil {
		logger.Error("advisor: chat reply failed", "error", err)
		return
	}
	out, err := json.Marshal(reply)
	if err != nil {
		logger.Error("advisor: marshal reply", "error", err)
		return
	}
	msg.Client.Send(out)
}
