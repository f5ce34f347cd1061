package repository

import (
	"context"
	"daybook/internal/db"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrEntryNotFound error = errors.New("entry not found")

// entryOrder keeps listings newest first; ties fall back to insertion order.
const entryOrder = "created_at DESC, id ASC"

type DiaryRepository struct {
	db Storage
}

func NewDiaryRepository(db Storage) *DiaryRepository {
	return &DiaryRepository{
		db: db,
	}
}

func (r *DiaryRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Entry{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// ProvisionUser creates a user with a bcrypt-hashed password. An existing
// username is left untouched.
func (r *DiaryRepository) ProvisionUser(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)

	var existing User
	err := r.db.GetOneBy(ctx, "username", username, &existing)
	if err == nil {
		return nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("get user by username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = r.db.Insert(ctx, &User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *DiaryRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *DiaryRepository) CreateEntry(ctx context.Context, entry *Entry) error {
	err := r.db.Insert(ctx, entry)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	return nil
}

func (r *DiaryRepository) GetEntry(ctx context.Context, id uint) (Entry, error) {
	var entry Entry

	err := r.db.GetOneBy(ctx, "id", id, &entry)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Entry{}, ErrEntryNotFound
		}
		return Entry{}, fmt.Errorf("get entry by id: %w", err)
	}

	return entry, nil
}

func (r *DiaryRepository) UpdateEntry(ctx context.Context, entry *Entry) error {
	err := r.db.Save(ctx, entry)
	if err != nil {
		return fmt.Errorf("save entry: %w", err)
	}

	return nil
}

func (r *DiaryRepository) DeleteEntry(ctx context.Context, id uint) error {
	rows, err := r.db.DeleteByID(ctx, &Entry{}, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if rows == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *DiaryRepository) CountEntries(ctx context.Context, query string) (int64, error) {
	filter, args := searchFilter(query)

	count, err := r.db.CountWhere(ctx, &Entry{}, filter, args)
	if err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	return count, nil
}

func (r *DiaryRepository) SearchEntries(ctx context.Context, query string, limit, offset int) ([]Entry, error) {
	filter, args := searchFilter(query)

	var entries []Entry
	err := r.db.FindWhere(ctx, &entries, filter, args, entryOrder, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}

	return entries, nil
}

// searchFilter builds the case-insensitive substring filter over title and
// body. An empty query means no filter at all.
func searchFilter(query string) (string, []any) {
	if query == "" {
		return "", nil
	}

	like := "%" + strings.ToLower(query) + "%"
	return "lower(title) LIKE ? OR lower(body) LIKE ?", []any{like, like}
}
