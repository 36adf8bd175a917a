package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// SessionCookie names the cookie that carries the chat session ID.
const SessionCookie = "csr_session"

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply. End is true when the customer
// said goodbye; the session is gone and the next message starts over.
type ChatResponse struct {
	Response string `json:"response"`
	End      bool   `json:"end"`
}

// PostChat handles POST /chat, one line of the conversation per request.
// The dialogue state lives server-side and is found through the session
// cookie, which is (re)issued on every reply.
func (s *Server) PostChat(w http.ResponseWriter, r *http.Request) {
	var body ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		decodeFailure(w, err, "request body must be JSON with a message field")
		return
	}
	if strings.TrimSpace(body.Message) == "" {
		writeJSON(w, http.StatusBadRequest, requestBody("message must not be empty"))
		return
	}

	id, sess := s.sessions.Get(sessionID(r))
	reply := sess.Handle(r.Context(), body.Message)

	if reply.End {
		s.sessions.Delete(id)
		clearSessionCookie(w)
	} else {
		setSessionCookie(w, id)
	}
	writeJSON(w, http.StatusOK, ChatResponse{Response: reply.Text, End: reply.End})
}

func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
