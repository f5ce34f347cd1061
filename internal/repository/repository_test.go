package repository_test

import (
	"context"
	"errors"

	"daybook/internal/db"
	"daybook/internal/repository"
	"daybook/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("DiaryRepository", func() {
	var (
		fakeStorage *fake.Storage
		ctx         context.Context

		repo *repository.DiaryRepository

		fakeErr error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		ctx = context.Background()

		repo = repository.NewDiaryRepository(fakeStorage)

		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		It("should migrate the user and entry tables", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))

			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(2))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Entry{}))
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ProvisionUser", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.ProvisionUser(ctx, " admin ", "secretpass")
		})

		When("the user does not exist yet", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should insert the user with a bcrypt hash", func() {
				Expect(err).NotTo(HaveOccurred())

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("admin"))

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				user, ok := record.(*repository.User)
				Expect(ok).To(BeTrue())
				Expect(user.Username).To(Equal("admin"))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secretpass"))).To(Succeed())
			})
		})

		When("the user already exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(nil)
			})

			It("should leave the user untouched", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.InsertCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStorage.InsertCallCount()).To(Equal(0))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "admin")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByCalls(func(_ context.Context, _ string, _ any, entity any) error {
					*entity.(*repository.User) = repository.User{ID: 1, Username: "admin"}
					return nil
				})
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(1)))
				Expect(user.Username).To(Equal("admin"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrUserNotFound", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetEntry", func() {
		var (
			entry repository.Entry
			err   error
		)

		JustBeforeEach(func() {
			entry, err = repo.GetEntry(ctx, 42)
		})

		When("the entry exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByCalls(func(_ context.Context, _ string, _ any, entity any) error {
					*entity.(*repository.Entry) = repository.Entry{ID: 42, Title: "found"}
					return nil
				})
			})

			It("should return the entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entry.ID).To(Equal(uint(42)))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal(uint(42)))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrEntryNotFound", func() {
				Expect(err).To(MatchError(repository.ErrEntryNotFound))
			})
		})
	})

	Describe("DeleteEntry", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteEntry(ctx, 42)
		})

		When("a row is deleted", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByIDReturns(1, nil)
			})

			It("should succeed", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, id := fakeStorage.DeleteByIDArgsForCall(0)
				Expect(id).To(Equal(uint(42)))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByIDReturns(0, nil)
			})

			It("should return ErrEntryNotFound", func() {
				Expect(err).To(MatchError(repository.ErrEntryNotFound))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByIDReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CountEntries", func() {
		var (
			query string
			count int64
			err   error
		)

		BeforeEach(func() {
			query = ""
			fakeStorage.CountWhereReturns(25, nil)
		})

		JustBeforeEach(func() {
			count, err = repo.CountEntries(ctx, query)
		})

		When("no query is given", func() {
			It("should count without a filter", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(25)))

				_, _, filter, args := fakeStorage.CountWhereArgsForCall(0)
				Expect(filter).To(BeEmpty())
				Expect(args).To(BeNil())
			})
		})

		When("a query is given", func() {
			BeforeEach(func() {
				query = "Beach"
			})

			It("should build a case-insensitive filter over title and body", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, filter, args := fakeStorage.CountWhereArgsForCall(0)
				Expect(filter).To(Equal("lower(title) LIKE ? OR lower(body) LIKE ?"))
				Expect(args).To(Equal([]any{"%beach%", "%beach%"}))
			})
		})

		When("counting fails", func() {
			BeforeEach(func() {
				fakeStorage.CountWhereReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SearchEntries", func() {
		var (
			query   string
			entries []repository.Entry
			err     error
		)

		BeforeEach(func() {
			query = "Beach"
			fakeStorage.FindWhereCalls(func(_ context.Context, dest any, _ string, _ []any, _ string, _, _ int) error {
				*dest.(*[]repository.Entry) = []repository.Entry{{ID: 1}, {ID: 2}}
				return nil
			})
		})

		JustBeforeEach(func() {
			entries, err = repo.SearchEntries(ctx, query, 10, 20)
		})

		It("should search newest first with the given window", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(2))

			_, _, filter, args, order, limit, offset := fakeStorage.FindWhereArgsForCall(0)
			Expect(filter).To(Equal("lower(title) LIKE ? OR lower(body) LIKE ?"))
			Expect(args).To(Equal([]any{"%beach%", "%beach%"}))
			Expect(order).To(Equal("created_at DESC, id ASC"))
			Expect(limit).To(Equal(10))
			Expect(offset).To(Equal(20))
		})

		When("no query is given", func() {
			BeforeEach(func() {
				query = ""
			})

			It("should search without a filter", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, filter, args, _, _, _ := fakeStorage.FindWhereArgsForCall(0)
				Expect(filter).To(BeEmpty())
				Expect(args).To(BeNil())
			})
		})

		When("the search fails", func() {
			BeforeEach(func() {
				fakeStorage.FindWhereCalls(nil)
				fakeStorage.FindWhereReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
