package repository_test

import (
	"context"
	"crowdledger/internal/db"
	"crowdledger/internal/repository"
	"database/sql"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
)

var _ = Describe("CampaignRepository over gorm", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		repo   *repository.CampaignRepository
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		store := db.NewGormDB(postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		}))
		repo = repository.NewCampaignRepository(store)
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("CreateUserIfMissing", func() {
		When("the user signed in before", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"\."id" LIMIT \$2`).
					WithArgs("ada@example.com", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "is_verified"}).
						AddRow("user-ada", "ada@example.com", "Ada", true))
			})

			It("should return the stored user without inserting", func() {
				user, created, err := repo.CreateUserIfMissing(ctx, repository.User{
					Email: "Ada@Example.com",
					Name:  "Ada L.",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(user.ID).To(Equal("user-ada"))
				Expect(user.Name).To(Equal("Ada"))
				Expect(user.IsVerified).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
