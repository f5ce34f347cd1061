package core

import (
	"strings"
	"time"

	"github.com/jellydator/validation"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EntryDraft carries the submitted fields of a diary entry. ImageName is nil
// when no new image was supplied; an update then keeps the stored reference.
type EntryDraft struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	ImageName *string
}

func (d EntryDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.RuneLength(1, maxTitleLength)),
		validation.Field(&d.Body, validation.Required),
	)
}

func (d EntryDraft) trimmed() EntryDraft {
	d.Title = strings.TrimSpace(d.Title)
	d.Body = strings.TrimSpace(d.Body)
	return d
}

type EntryRecord struct {
	ID        uint
	Title     string
	Body      string
	ImagePath string // empty when the entry has no image
	CreatedAt time.Time
}

type EntryPage struct {
	Entries    []EntryRecord
	Query      string
	Page       int
	Total      int64
	TotalPages int
	HasNext    bool
}
