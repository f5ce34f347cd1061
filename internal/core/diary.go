package core

import (
	"context"
	"daybook/internal/repository"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrEntryNotFound error = errors.New("entry not found")
var ErrInvalidEntry error = errors.New("invalid entry")

const pageSize = 10
const maxTitleLength = 120

// Diary is the application service behind every route: credential checks,
// entry CRUD and the paginated, searchable listing.
type Diary struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewDiary(logger *zap.SugaredLogger, repo Repository) *Diary {
	return &Diary{
		logs: logger,
		repo: repo,
	}
}

// Authenticate verifies the supplied credentials against the stored bcrypt
// hash. Callers must not reveal which of the two checks failed.
func (d *Diary) Authenticate(ctx context.Context, msg AuthMessage) (repository.User, error) {
	user, err := d.repo.GetUserByUsername(ctx, strings.TrimSpace(msg.Username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return repository.User{}, ErrUserNotFound
		}
		return repository.User{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return repository.User{}, ErrIncorrectPassword
	}

	return user, nil
}

// ListEntries returns one page of entries matching the query. The page number
// is clamped to the last page instead of erroring, and an empty result set
// still reports page 1 of 1.
func (d *Diary) ListEntries(ctx context.Context, rawQuery string, page int) (EntryPage, error) {
	query := strings.TrimSpace(rawQuery)
	if page < 1 {
		page = 1
	}

	total, err := d.repo.CountEntries(ctx, query)
	if err != nil {
		return EntryPage{}, fmt.Errorf("count entries: %w", err)
	}

	totalPages := int((total + pageSize - 1) / pageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	entries, err := d.repo.SearchEntries(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return EntryPage{}, fmt.Errorf("search entries: %w", err)
	}

	return EntryPage{
		Entries:    d.entriesToRecords(entries),
		Query:      query,
		Page:       page,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}, nil
}

func (d *Diary) CreateEntry(ctx context.Context, draft EntryDraft) (EntryRecord, error) {
	draft = draft.trimmed()
	if err := draft.Validate(); err != nil {
		return EntryRecord{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	entry := repository.Entry{
		Title:     draft.Title,
		Body:      draft.Body,
		ImagePath: draft.ImageName,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.repo.CreateEntry(ctx, &entry); err != nil {
		return EntryRecord{}, fmt.Errorf("create entry: %w", err)
	}

	d.logs.Infow("entry created", "id", entry.ID)

	return d.entryToRecord(entry), nil
}

func (d *Diary) GetEntry(ctx context.Context, id uint) (EntryRecord, error) {
	entry, err := d.repo.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return EntryRecord{}, ErrEntryNotFound
		}
		return EntryRecord{}, fmt.Errorf("get entry: %w", err)
	}

	return d.entryToRecord(entry), nil
}

// UpdateEntry overwrites title and body with the submitted values. The image
// reference changes only when the draft carries a new one.
func (d *Diary) UpdateEntry(ctx context.Context, id uint, draft EntryDraft) (EntryRecord, error) {
	draft = draft.trimmed()
	if err := draft.Validate(); err != nil {
		return EntryRecord{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	entry, err := d.repo.GetEntry(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return EntryRecord{}, ErrEntryNotFound
		}
		return EntryRecord{}, fmt.Errorf("get entry: %w", err)
	}

	entry.Title = draft.Title
	entry.Body = draft.Body
	if draft.ImageName != nil {
		entry.ImagePath = draft.ImageName
	}

	if err := d.repo.UpdateEntry(ctx, &entry); err != nil {
		return EntryRecord{}, fmt.Errorf("update entry: %w", err)
	}

	d.logs.Infow("entry updated", "id", entry.ID)

	return d.entryToRecord(entry), nil
}

func (d *Diary) DeleteEntry(ctx context.Context, id uint) error {
	err := d.repo.DeleteEntry(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("delete entry: %w", err)
	}

	d.logs.Infow("entry deleted", "id", id)

	return nil
}

func (d *Diary) entriesToRecords(entries []repository.Entry) []EntryRecord {
	records := make([]EntryRecord, len(entries))
	for i, entry := range entries {
		records[i] = d.entryToRecord(entry)
	}
	return records
}

func (d *Diary) entryToRecord(entry repository.Entry) EntryRecord {
	record := EntryRecord{
		ID:        entry.ID,
		Title:     entry.Title,
		Body:      entry.Body,
		CreatedAt: entry.CreatedAt,
	}
	if entry.ImagePath != nil {
		record.ImagePath = *entry.ImagePath
	}
	return record
}
