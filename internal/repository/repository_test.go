package repository_test

import (
	"context"
	"crowdledger/internal/db"
	"crowdledger/internal/repository"
	"crowdledger/internal/repository/fake"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CampaignRepository", func() {
	var (
		repo        *repository.CampaignRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewCampaignRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.Migrate()
		})

		When("migration succeeds", func() {
			It("should migrate users, campaigns and donations", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateModelsArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Campaign{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Donation{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("GetUserByEmail", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByEmail(ctx, "  Jane@Example.com ")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, _ any, entity any) error {
					u := entity.(*repository.User)
					u.ID = "user-1"
					u.Email = "jane@example.com"
					u.IsVerified = true
					return nil
				}
			})

			It("should look up the normalised email", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("user-1"))
				Expect(user.IsVerified).To(BeTrue())

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, entity := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("email"))
				Expect(val).To(Equal("jane@example.com"))
				Expect(entity).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateUserIfMissing", func() {
		var (
			user    repository.User
			created bool
			err     error
		)

		JustBeforeEach(func() {
			user, created, err = repo.CreateUserIfMissing(ctx, repository.User{
				Email: "New@Example.com",
				Name:  "New User",
			})
		})

		When("the user is new", func() {
			BeforeEach(func() {
				fakeStorage.FindOrCreateReturns(true, nil)
			})

			It("should insert it with an id and normalised email", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(user.ID).NotTo(BeEmpty())
				Expect(user.Email).To(Equal("new@example.com"))
				Expect(user.IsVerified).To(BeFalse())

				Expect(fakeStorage.FindOrCreateCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.FindOrCreateArgsForCall(0)
				Expect(col).To(Equal("email"))
				Expect(val).To(Equal("new@example.com"))
			})
		})

		When("the user already exists", func() {
			BeforeEach(func() {
				fakeStorage.FindOrCreateStub = func(_ context.Context, _ string, _ any, entity any) (bool, error) {
					u := entity.(*repository.User)
					u.ID = "existing"
					u.IsVerified = true
					return false, nil
				}
			})

			It("should return the stored record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(user.ID).To(Equal("existing"))
				Expect(user.IsVerified).To(BeTrue())
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStorage.FindOrCreateReturns(false, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("find or create user: fake error"))
				Expect(created).To(BeFalse())
			})
		})
	})

	Describe("CreateCampaign", func() {
		var (
			campaign repository.Campaign
			err      error
		)

		JustBeforeEach(func() {
			campaign, err = repo.CreateCampaign(ctx, repository.Campaign{
				Title:        "Help Rebuild Our Town Library",
				CreatorEmail: "Jane@Example.com",
				CampaignID:   "7",
				Status:       "pending",
			})
		})

		When("the insert succeeds", func() {
			It("should assign an id and persist the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(campaign.ID).NotTo(BeEmpty())
				Expect(campaign.CreatorEmail).To(Equal("jane@example.com"))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				stored, ok := record.(*repository.Campaign)
				Expect(ok).To(BeTrue())
				Expect(stored.CampaignID).To(Equal("7"))
				Expect(stored.ID).To(Equal(campaign.ID))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("save campaign: fake error"))
			})
		})
	})

	Describe("GetCampaign", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetCampaign(ctx, "c-1")
		})

		When("the campaign does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return campaign not found", func() {
				Expect(err).To(MatchError(repository.ErrCampaignNotFound))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal("c-1"))
			})
		})
	})

	Describe("ListCampaigns", func() {
		var (
			campaigns []repository.Campaign
			status    string
			err       error
		)

		BeforeEach(func() {
			status = ""
			fakeStorage.ListStub = func(_ context.Context, _ map[string]any, _ string, _ int, entity any) error {
				out := entity.(*[]repository.Campaign)
				*out = []repository.Campaign{{ID: "c-1"}, {ID: "c-2"}}
				return nil
			}
		})

		JustBeforeEach(func() {
			campaigns, err = repo.ListCampaigns(ctx, status, 20)
		})

		When("no status filter is given", func() {
			It("should list newest first without conditions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(campaigns).To(HaveLen(2))
				_, conds, order, limit, _ := fakeStorage.ListArgsForCall(0)
				Expect(conds).To(BeNil())
				Expect(order).To(Equal("created_at desc"))
				Expect(limit).To(Equal(20))
			})
		})

		When("a status filter is given", func() {
			BeforeEach(func() {
				status = "pending"
			})

			It("should filter by status", func() {
				_, conds, _, _, _ := fakeStorage.ListArgsForCall(0)
				Expect(conds).To(Equal(map[string]any{"status": "pending"}))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStorage.ListStub = nil
				fakeStorage.ListReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("list campaigns: fake error"))
			})
		})
	})

	Describe("CountCampaigns", func() {
		It("should return the stored count", func() {
			fakeStorage.CountStub = func(_ context.Context, _ any, _ map[string]any, count *int64) error {
				*count = 4
				return nil
			}

			n, err := repo.CountCampaigns(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(4)))
		})
	})
})
