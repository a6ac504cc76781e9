package entity

import "github.com/google/uuid"

type SessionKey struct {
	ID         uuid.UUID
	SessionKey string
}
