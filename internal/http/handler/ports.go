package handler

import (
	"context"
	"io"
	"net/http"

	"daybook/internal/core"
	"daybook/internal/repository"
	"daybook/internal/session"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name DiaryService . DiaryService
type DiaryService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (repository.User, error)
	ListEntries(ctx context.Context, query string, page int) (core.EntryPage, error)
	CreateEntry(ctx context.Context, draft core.EntryDraft) (core.EntryRecord, error)
	GetEntry(ctx context.Context, id uint) (core.EntryRecord, error)
	UpdateEntry(ctx context.Context, id uint, draft core.EntryDraft) (core.EntryRecord, error)
	DeleteEntry(ctx context.Context, id uint) error
}

//counterfeiter:generate -o fake -fake-name SessionManager . SessionManager
type SessionManager interface {
	Establish(w http.ResponseWriter, user *repository.User) (session.Session, error)
	Resolve(r *http.Request) (session.Session, error)
}

//counterfeiter:generate -o fake -fake-name ImageStore . ImageStore
type ImageStore interface {
	Save(filename string, src io.Reader) (string, error)
	Resolve(filename string) (string, error)
}
