package http

import "github.com/vibast-solutions/ms-go-session-keys/app/entity"

// SessionKeyResponse is the wire format of a session key record. It is kept
// apart from entity.SessionKey so schema changes do not leak into responses.
type SessionKeyResponse struct {
	ID         string `json:"id"`
	SessionKey string `json:"session_key"`
}

func NewSessionKeyResponse(key *entity.SessionKey) SessionKeyResponse {
	return SessionKeyResponse{
		ID:         key.ID.String(),
		SessionKey: key.SessionKey,
	}
}

func NewSessionKeyListResponse(keys []*entity.SessionKey) []SessionKeyResponse {
	res := make([]SessionKeyResponse, 0, len(keys))
	for _, key := range keys {
		res = append(res, NewSessionKeyResponse(key))
	}
	return res
}
