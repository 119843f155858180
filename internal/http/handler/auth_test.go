package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"crowdledger/internal/core"
	"crowdledger/internal/http/handler"
	"crowdledger/internal/http/handler/fake"
	"crowdledger/internal/oauth"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

var _ = Describe("AuthHandler", func() {
	var (
		ah           *handler.AuthHandler
		fakeProvider *fake.OAuthProvider
		fakeIdentity *fake.IdentityService
		w            *httptest.ResponseRecorder
		req          *http.Request
		fakeErr      error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeProvider = new(fake.OAuthProvider)
		fakeProvider.AuthCodeURLStub = func(state string) string {
			return "https://accounts.example.com/auth?state=" + state
		}
		fakeIdentity = new(fake.IdentityService)

		w = httptest.NewRecorder()
		ah = handler.NewAuthHandler(zap.NewNop().Sugar(), fakeProvider, fakeIdentity, handler.AuthOpts{
			SessionTTL:  24 * time.Hour,
			RedirectURL: "/dashboard",
		})
	})

	Describe("HandleSignIn", func() {
		It("should set a state cookie and redirect to the provider", func() {
			req = httptest.NewRequest("GET", "/api/auth/signin/google", nil)
			ah.HandleSignIn(w, req)

			Expect(w.Code).To(Equal(http.StatusFound))
			state := cookieNamed(w, handler.StateCookie)
			Expect(state).NotTo(BeNil())
			Expect(state.HttpOnly).To(BeTrue())
			Expect(state.Value).To(HaveLen(43))

			Expect(fakeProvider.AuthCodeURLArgsForCall(0)).To(Equal(state.Value))
			Expect(w.Header().Get("Location")).To(HaveSuffix("state=" + state.Value))
		})
	})

	Describe("HandleCallback", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/auth/callback/google?state=abc&code=xyz", nil)
			req.AddCookie(&http.Cookie{Name: handler.StateCookie, Value: "abc"})

			fakeProvider.ExchangeReturns(oauth.Profile{
				Email:   "jane@example.com",
				Name:    "Jane Doe",
				Picture: "https://example.com/jane.png",
			}, nil)
			fakeIdentity.SignInReturns("session-token", nil)
		})

		JustBeforeEach(func() {
			ah.HandleCallback(w, req)
		})

		When("the sign in succeeds", func() {
			It("should set the session cookie and redirect", func() {
				Expect(w.Code).To(Equal(http.StatusFound))
				Expect(w.Header().Get("Location")).To(Equal("/dashboard"))

				session := cookieNamed(w, handler.SessionCookie)
				Expect(session).NotTo(BeNil())
				Expect(session.Value).To(Equal("session-token"))
				Expect(session.HttpOnly).To(BeTrue())
				Expect(session.MaxAge).To(Equal(86400))
			})

			It("should exchange the code and sign in the provider profile", func() {
				_, code := fakeProvider.ExchangeArgsForCall(0)
				Expect(code).To(Equal("xyz"))

				_, profile := fakeIdentity.SignInArgsForCall(0)
				Expect(profile).To(Equal(core.Profile{
					Email: "jane@example.com",
					Name:  "Jane Doe",
					Image: "https://example.com/jane.png",
				}))
			})
		})

		When("the state does not match", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/auth/callback/google?state=forged&code=xyz", nil)
				req.AddCookie(&http.Cookie{Name: handler.StateCookie, Value: "abc"})
			})

			It("should reject the callback before the exchange", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeProvider.ExchangeCallCount()).To(Equal(0))
			})
		})

		When("the state cookie is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/auth/callback/google?state=abc&code=xyz", nil)
			})

			It("should reject the callback", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the exchange fails", func() {
			BeforeEach(func() {
				fakeProvider.ExchangeReturns(oauth.Profile{}, fakeErr)
			})

			It("should return 400 without signing in", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeIdentity.SignInCallCount()).To(Equal(0))
			})
		})

		When("sign in is denied", func() {
			BeforeEach(func() {
				fakeIdentity.SignInReturns("", fmt.Errorf("%w: %w", core.ErrSignInDenied, fakeErr))
			})

			It("should return 403 without a session cookie", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(cookieNamed(w, handler.SessionCookie)).To(BeNil())
			})
		})
	})

	Describe("HandleSession", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/auth/session", nil)
			req.AddCookie(&http.Cookie{Name: handler.SessionCookie, Value: "session-token"})
		})

		JustBeforeEach(func() {
			ah.HandleSession(w, req)
		})

		When("the session is valid", func() {
			BeforeEach(func() {
				fakeIdentity.SessionReturns(core.SessionView{
					ID:         "user-1",
					Email:      "jane@example.com",
					IsVerified: true,
				}, nil)
			})

			It("should return the merged view", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"id":"user-1"`))
				Expect(w.Body.String()).To(ContainSubstring(`"isVerified":true`))

				_, token := fakeIdentity.SessionArgsForCall(0)
				Expect(token).To(Equal("session-token"))
			})
		})

		When("the session is invalid", func() {
			BeforeEach(func() {
				fakeIdentity.SessionReturns(core.SessionView{}, core.ErrUnauthorized)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleSignOut", func() {
		It("should expire the session cookie", func() {
			req = httptest.NewRequest("POST", "/api/auth/signout", nil)
			ah.HandleSignOut(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			session := cookieNamed(w, handler.SessionCookie)
			Expect(session).NotTo(BeNil())
			Expect(session.MaxAge).To(BeNumerically("<", 0))
		})
	})
})
