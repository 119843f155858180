package core_test

import (
	"context"
	"crowdledger/internal/core"
	"crowdledger/internal/core/fake"
	"crowdledger/internal/repository"
	tokenIssuer "crowdledger/pkg/jwt"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Identity", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		identity *core.Identity

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		identity = core.NewIdentity(fakeLogger, fakeRepo, fakeJWT, 24*time.Hour)

		fakeErr = errors.New("fake error")
	})

	Describe("SignIn", func() {
		var (
			profile  core.Profile
			token    string
			err      error
			genToken *jwt.Token
			users    map[string]repository.User
		)

		BeforeEach(func() {
			profile = core.Profile{
				Email: "ada@example.com",
				Name:  "Ada",
				Image: "https://example.com/ada.png",
			}
			genToken = jwt.New(jwt.SigningMethodHS512)
			fakeJWT.GenerateReturns(genToken)
			fakeJWT.SignReturns("signed.token", nil)

			users = map[string]repository.User{}
			fakeRepo.CreateUserIfMissingStub = func(_ context.Context, u repository.User) (repository.User, bool, error) {
				if existing, ok := users[u.Email]; ok {
					return existing, false, nil
				}
				u.ID = "user-1"
				users[u.Email] = u
				return u, true, nil
			}
		})

		JustBeforeEach(func() {
			token, err = identity.SignIn(ctx, profile)
		})

		When("the email is new", func() {
			It("should create an unverified user and issue a token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(users).To(HaveLen(1))
				Expect(users["ada@example.com"].IsVerified).To(BeFalse())
				Expect(users["ada@example.com"].Name).To(Equal("Ada"))

				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenIssuer.TokenInfo{
					Subject:    "ada@example.com",
					Name:       "Ada",
					Image:      "https://example.com/ada.png",
					Expiration: 24 * time.Hour,
				}))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("the email already has a user", func() {
			BeforeEach(func() {
				users["ada@example.com"] = repository.User{ID: "user-0", Email: "ada@example.com", Name: "Ada L.", IsVerified: true}
			})

			It("should not create another one nor modify it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(1))
				Expect(users["ada@example.com"].ID).To(Equal("user-0"))
				Expect(users["ada@example.com"].Name).To(Equal("Ada L."))
			})
		})

		When("the same email signs in twice", func() {
			It("should create exactly one user", func() {
				_, err := identity.SignIn(ctx, profile)
				Expect(err).NotTo(HaveOccurred())
				Expect(users).To(HaveLen(1))
				Expect(fakeRepo.CreateUserIfMissingCallCount()).To(Equal(2))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserIfMissingStub = nil
				fakeRepo.CreateUserIfMissingReturns(repository.User{}, false, fakeErr)
			})

			It("should deny the sign in", func() {
				Expect(err).To(MatchError(core.ErrSignInDenied))
				Expect(err).To(MatchError(fakeErr))
				Expect(token).To(BeEmpty())
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("the profile has no email", func() {
			BeforeEach(func() {
				profile.Email = " "
			})

			It("should deny the sign in without touching the store", func() {
				Expect(err).To(MatchError(core.ErrSignInDenied))
				Expect(fakeRepo.CreateUserIfMissingCallCount()).To(Equal(0))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return the signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Caller", func() {
		It("should reject an empty token without validating", func() {
			_, err := identity.Caller(ctx, "")
			Expect(err).To(MatchError(core.ErrUnauthorized))
			Expect(fakeJWT.ValidateCallCount()).To(Equal(0))
		})

		It("should reject an invalid token", func() {
			fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenExpired)
			_, err := identity.Caller(ctx, "expired.token")
			Expect(err).To(MatchError(core.ErrUnauthorized))
			Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
		})

		It("should reject a token without subject", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"name": "Ada"}, nil)
			_, err := identity.Caller(ctx, "token")
			Expect(err).To(MatchError(core.ErrUnauthorized))
		})

		It("should read the session from the claims", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{
				"sub":     "ada@example.com",
				"name":    "Ada",
				"picture": "https://example.com/ada.png",
				"exp":     float64(1767225600),
			}, nil)

			session, err := identity.Caller(ctx, "token")
			Expect(err).NotTo(HaveOccurred())
			Expect(session).To(Equal(core.ProviderSession{
				Email:   "ada@example.com",
				Name:    "Ada",
				Image:   "https://example.com/ada.png",
				Expires: time.Unix(1767225600, 0).UTC(),
			}))
		})
	})

	Describe("Session", func() {
		var (
			view core.SessionView
			err  error
		)

		BeforeEach(func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{
				"sub":     "ada@example.com",
				"name":    "Ada",
				"picture": "https://example.com/ada.png",
			}, nil)
		})

		JustBeforeEach(func() {
			view, err = identity.Session(ctx, "token")
		})

		When("the user is stored", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					ID:         "user-1",
					Email:      "ada@example.com",
					Name:       "Ada Lovelace",
					IsVerified: true,
				}, nil)
			})

			It("should overlay the stored fields", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view).To(Equal(core.SessionView{
					ID:         "user-1",
					Email:      "ada@example.com",
					Name:       "Ada Lovelace",
					Image:      "https://example.com/ada.png",
					IsVerified: true,
				}))
			})

			It("should be stable across repeated fetches", func() {
				again, err := identity.Session(ctx, "token")
				Expect(err).NotTo(HaveOccurred())
				Expect(again.ID).To(Equal(view.ID))
				Expect(again.IsVerified).To(Equal(view.IsVerified))
				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(2))
			})
		})

		When("the store is unreachable", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, fakeErr)
			})

			It("should fall back to the provider session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(view.ID).To(BeEmpty())
				Expect(view.IsVerified).To(BeFalse())
				Expect(view.Name).To(Equal("Ada"))
				Expect(view.Email).To(Equal("ada@example.com"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, tokenIssuer.ErrTokenNotValid)
			})

			It("should return unauthorized", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.GetUserByEmailCallCount()).To(Equal(0))
			})
		})
	})

	Describe("MergeSession", func() {
		var base core.ProviderSession

		BeforeEach(func() {
			base = core.ProviderSession{Email: "ada@example.com", Name: "Ada", Image: "a.png"}
		})

		It("should return the provider session without a user", func() {
			Expect(core.MergeSession(base, nil)).To(Equal(core.SessionView{
				Email: "ada@example.com",
				Name:  "Ada",
				Image: "a.png",
			}))
		})

		It("should keep provider values the store does not have", func() {
			view := core.MergeSession(base, &repository.User{ID: "user-1"})
			Expect(view.ID).To(Equal("user-1"))
			Expect(view.Name).To(Equal("Ada"))
			Expect(view.Image).To(Equal("a.png"))
		})

		It("should not modify its inputs", func() {
			user := &repository.User{ID: "user-1", Name: "Ada Lovelace"}
			first := core.MergeSession(base, user)
			second := core.MergeSession(base, user)
			Expect(first).To(Equal(second))
			Expect(base.Name).To(Equal("Ada"))
			Expect(user.Name).To(Equal("Ada Lovelace"))
		})
	})
})
