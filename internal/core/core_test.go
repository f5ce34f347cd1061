package core_test

import (
	"context"
	"errors"

	"daybook/internal/core"
	"daybook/internal/core/fake"
	"daybook/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Diary", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		diary *core.Diary

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		diary = core.NewDiary(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			user           repository.User
			err            error
			hashedPassword string
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			user, err = diary.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           7,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(7)))
				Expect(user.Username).To(Equal(authMsg.Username))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal(authMsg.Username))
			})
		})

		When("username carries surrounding whitespace", func() {
			BeforeEach(func() {
				authMsg.Username = "  testuser  "
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     "testuser",
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("should look the user up by the trimmed name", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal("testuser"))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListEntries", func() {
		var (
			query string
			page  int

			result core.EntryPage
			err    error
		)

		BeforeEach(func() {
			query = ""
			page = 1

			fakeRepo.CountEntriesReturns(25, nil)
			fakeRepo.SearchEntriesReturns([]repository.Entry{
				{ID: 1, Title: "first"},
				{ID: 2, Title: "second"},
			}, nil)
		})

		JustBeforeEach(func() {
			result, err = diary.ListEntries(ctx, query, page)
		})

		When("the first page is requested", func() {
			It("should return page 1 with a next page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Page).To(Equal(1))
				Expect(result.Total).To(Equal(int64(25)))
				Expect(result.TotalPages).To(Equal(3))
				Expect(result.HasNext).To(BeTrue())

				_, argQuery, argLimit, argOffset := fakeRepo.SearchEntriesArgsForCall(0)
				Expect(argQuery).To(Equal(""))
				Expect(argLimit).To(Equal(10))
				Expect(argOffset).To(Equal(0))
			})
		})

		When("the last page is requested", func() {
			BeforeEach(func() {
				page = 3
			})

			It("should report no next page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Page).To(Equal(3))
				Expect(result.HasNext).To(BeFalse())

				_, _, _, argOffset := fakeRepo.SearchEntriesArgsForCall(0)
				Expect(argOffset).To(Equal(20))
			})
		})

		When("the page is past the end", func() {
			BeforeEach(func() {
				page = 99
			})

			It("should clamp to the last page", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Page).To(Equal(3))
				Expect(result.HasNext).To(BeFalse())

				_, _, _, argOffset := fakeRepo.SearchEntriesArgsForCall(0)
				Expect(argOffset).To(Equal(20))
			})
		})

		When("the page is below one", func() {
			BeforeEach(func() {
				page = -4
			})

			It("should fall back to page 1", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Page).To(Equal(1))
			})
		})

		When("no entries match", func() {
			BeforeEach(func() {
				fakeRepo.CountEntriesReturns(0, nil)
				fakeRepo.SearchEntriesReturns(nil, nil)
				page = 5
			})

			It("should still report page 1 of 1", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Page).To(Equal(1))
				Expect(result.TotalPages).To(Equal(1))
				Expect(result.HasNext).To(BeFalse())
				Expect(result.Entries).To(BeEmpty())
			})
		})

		When("the query carries surrounding whitespace", func() {
			BeforeEach(func() {
				query = "  beach  "
			})

			It("should search with the trimmed query", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Query).To(Equal("beach"))

				_, argQuery := fakeRepo.CountEntriesArgsForCall(0)
				Expect(argQuery).To(Equal("beach"))
				_, argQuery, _, _ = fakeRepo.SearchEntriesArgsForCall(0)
				Expect(argQuery).To(Equal("beach"))
			})
		})

		When("counting fails", func() {
			BeforeEach(func() {
				fakeRepo.CountEntriesReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.SearchEntriesCallCount()).To(Equal(0))
			})
		})

		When("searching fails", func() {
			BeforeEach(func() {
				fakeRepo.SearchEntriesReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateEntry", func() {
		var (
			draft  core.EntryDraft
			record core.EntryRecord
			err    error
		)

		BeforeEach(func() {
			draft = core.EntryDraft{
				Title: "A day at the beach",
				Body:  "Sun and salt water.",
			}

			fakeRepo.CreateEntryCalls(func(_ context.Context, entry *repository.Entry) error {
				entry.ID = 42
				return nil
			})
		})

		JustBeforeEach(func() {
			record, err = diary.CreateEntry(ctx, draft)
		})

		When("the draft is valid", func() {
			It("should persist the entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(42)))
				Expect(record.Title).To(Equal(draft.Title))
				Expect(record.Body).To(Equal(draft.Body))
				Expect(record.ImagePath).To(BeEmpty())

				Expect(fakeRepo.CreateEntryCallCount()).To(Equal(1))
				_, argEntry := fakeRepo.CreateEntryArgsForCall(0)
				Expect(argEntry.CreatedAt).NotTo(BeZero())
			})
		})

		When("the draft carries an image", func() {
			BeforeEach(func() {
				name := "abc123.png"
				draft.ImageName = &name
			})

			It("should store the image reference", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ImagePath).To(Equal("abc123.png"))
			})
		})

		When("title and body carry surrounding whitespace", func() {
			BeforeEach(func() {
				draft.Title = "  trimmed title  "
				draft.Body = "  trimmed body  "
			})

			It("should persist the trimmed values", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argEntry := fakeRepo.CreateEntryArgsForCall(0)
				Expect(argEntry.Title).To(Equal("trimmed title"))
				Expect(argEntry.Body).To(Equal("trimmed body"))
			})
		})

		When("the title is blank", func() {
			BeforeEach(func() {
				draft.Title = "   "
			})

			It("should return invalid entry error", func() {
				Expect(err).To(MatchError(core.ErrInvalidEntry))
				Expect(fakeRepo.CreateEntryCallCount()).To(Equal(0))
			})
		})

		When("the title is too long", func() {
			BeforeEach(func() {
				long := make([]byte, 121)
				for i := range long {
					long[i] = 'a'
				}
				draft.Title = string(long)
			})

			It("should return invalid entry error", func() {
				Expect(err).To(MatchError(core.ErrInvalidEntry))
			})
		})

		When("the title is exactly at the limit", func() {
			BeforeEach(func() {
				long := make([]byte, 120)
				for i := range long {
					long[i] = 'a'
				}
				draft.Title = string(long)
			})

			It("should accept the draft", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the body is blank", func() {
			BeforeEach(func() {
				draft.Body = ""
			})

			It("should return invalid entry error", func() {
				Expect(err).To(MatchError(core.ErrInvalidEntry))
			})
		})

		When("persisting fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateEntryCalls(nil)
				fakeRepo.CreateEntryReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetEntry", func() {
		var (
			record core.EntryRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = diary.GetEntry(ctx, 42)
		})

		When("the entry exists", func() {
			BeforeEach(func() {
				image := "abc123.png"
				fakeRepo.GetEntryReturns(repository.Entry{
					ID:        42,
					Title:     "found",
					Body:      "body",
					ImagePath: &image,
				}, nil)
			})

			It("should return the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(42)))
				Expect(record.ImagePath).To(Equal("abc123.png"))

				_, argID := fakeRepo.GetEntryArgsForCall(0)
				Expect(argID).To(Equal(uint(42)))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetEntryReturns(repository.Entry{}, repository.ErrEntryNotFound)
			})

			It("should return entry not found error", func() {
				Expect(err).To(MatchError(core.ErrEntryNotFound))
			})
		})
	})

	Describe("UpdateEntry", func() {
		var (
			draft  core.EntryDraft
			record core.EntryRecord
			err    error

			storedImage string
		)

		BeforeEach(func() {
			storedImage = "old.png"
			fakeRepo.GetEntryReturns(repository.Entry{
				ID:        42,
				Title:     "old title",
				Body:      "old body",
				ImagePath: &storedImage,
			}, nil)
			fakeRepo.UpdateEntryReturns(nil)

			draft = core.EntryDraft{
				Title: "new title",
				Body:  "new body",
			}
		})

		JustBeforeEach(func() {
			record, err = diary.UpdateEntry(ctx, 42, draft)
		})

		When("no new image is supplied", func() {
			It("should keep the stored image reference", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Title).To(Equal("new title"))
				Expect(record.ImagePath).To(Equal("old.png"))

				Expect(fakeRepo.UpdateEntryCallCount()).To(Equal(1))
				_, argEntry := fakeRepo.UpdateEntryArgsForCall(0)
				Expect(argEntry.ImagePath).To(HaveValue(Equal("old.png")))
			})
		})

		When("a new image is supplied", func() {
			BeforeEach(func() {
				name := "new.png"
				draft.ImageName = &name
			})

			It("should replace the image reference", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ImagePath).To(Equal("new.png"))

				_, argEntry := fakeRepo.UpdateEntryArgsForCall(0)
				Expect(argEntry.ImagePath).To(HaveValue(Equal("new.png")))
			})
		})

		When("the draft is invalid", func() {
			BeforeEach(func() {
				draft.Title = ""
			})

			It("should return invalid entry error", func() {
				Expect(err).To(MatchError(core.ErrInvalidEntry))
				Expect(fakeRepo.GetEntryCallCount()).To(Equal(0))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetEntryReturns(repository.Entry{}, repository.ErrEntryNotFound)
			})

			It("should return entry not found error", func() {
				Expect(err).To(MatchError(core.ErrEntryNotFound))
				Expect(fakeRepo.UpdateEntryCallCount()).To(Equal(0))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdateEntryReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeleteEntry", func() {
		var err error

		JustBeforeEach(func() {
			err = diary.DeleteEntry(ctx, 42)
		})

		When("the entry exists", func() {
			It("should delete it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteEntryCallCount()).To(Equal(1))
				_, argID := fakeRepo.DeleteEntryArgsForCall(0)
				Expect(argID).To(Equal(uint(42)))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeleteEntryReturns(repository.ErrEntryNotFound)
			})

			It("should return entry not found error", func() {
				Expect(err).To(MatchError(core.ErrEntryNotFound))
			})
		})

		When("deleting fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteEntryReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
