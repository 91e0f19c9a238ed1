package interview

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"pitchmatch/internal/interview"
)

type turnRequest struct {
	History []interview.Turn `json:"history"`
	Message string           `json:"message"`
}

type turnResponse struct {
	Reply string `json:"reply"`
}

// TurnHandler answers one interview turn. The conversation history travels
// with the request; nothing is stored server-side.
func TurnHandler(client *interview.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req turnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			http.Error(w, "Message is required", http.StatusBadRequest)
			return
		}

		reply, err := client.NextQuestion(r.Context(), req.History, req.Message)
		if err != nil {
			log.Printf("Interview turn error: %v", err)
			http.Error(w, "Failed to generate interview turn", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(turnResponse{Reply: reply}); err != nil {
			log.Printf("Failed to encode interview response: %v", err)
		}
	}
}
