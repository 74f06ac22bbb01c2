package models

import (
	"time"
)

// StoredFile is an uploaded binary retrievable by name
type StoredFile struct {
	Filename    string    `json:"filename" db:"filename"`
	ContentType string    `json:"contentType" db:"content_type"`
	Data        []byte    `json:"-" db:"data"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
