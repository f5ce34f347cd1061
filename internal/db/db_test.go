package db_test

import (
	"context"
	"database/sql"

	"daybook/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\) RETURNING "id"$`).
				WithArgs("Alice", 1).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

			mock.ExpectCommit()
		})

		It("should insert the record without errors", func() {
			err := testDB.Insert(context.Background(), &Test{ID: 1, Username: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Save", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
				WithArgs("Alice", 1).
				WillReturnResult(sqlmock.NewResult(0, 1))

			mock.ExpectCommit()
		})

		It("should update the record without errors", func() {
			err := testDB.Save(context.Background(), &Test{ID: 1, Username: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("DeleteByID", func() {
		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^DELETE FROM "tests" WHERE "tests"\."id" = \$1$`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))

				mock.ExpectCommit()
			})

			It("should report one affected row", func() {
				rows, err := testDB.DeleteByID(context.Background(), &Test{}, uint(1))
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^DELETE FROM "tests" WHERE "tests"\."id" = \$1$`).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))

				mock.ExpectCommit()
			})

			It("should report zero affected rows", func() {
				rows, err := testDB.DeleteByID(context.Background(), &Test{}, uint(99))
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(BeZero())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("CountWhere", func() {
		When("a filter is given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests" WHERE lower\(username\) LIKE \$1`).
					WithArgs("%alice%").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			})

			It("should count the matching rows", func() {
				count, err := testDB.CountWhere(context.Background(), &Test{}, "lower(username) LIKE ?", []any{"%alice%"})
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(3)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no filter is given", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
			})

			It("should count all rows", func() {
				count, err := testDB.CountWhere(context.Background(), &Test{}, "", nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(25)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("FindWhere", func() {
		When("a filtered window is requested", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE lower\(username\) LIKE \$1 ORDER BY id DESC LIMIT \$2 OFFSET \$3`).
					WithArgs("%alice%", 10, 20).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(2, "Alice").
						AddRow(1, "alice"))
			})

			It("should return the matching rows", func() {
				var results []Test
				err := testDB.FindWhere(context.Background(), &results, "lower(username) LIKE ?", []any{"%alice%"}, "id DESC", 10, 20)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].ID).To(Equal(uint(2)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests".*`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Test
				err := testDB.FindWhere(context.Background(), &results, "", nil, "id DESC", 10, 0)
				Expect(err).To(MatchError(ContainSubstring("find records")))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
