package oauth_test

import (
	"context"
	"crowdledger/internal/oauth"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Google", func() {
	var (
		server     *httptest.Server
		provider   *oauth.Google
		userInfo   map[string]any
		userStatus int
		gotCode    string
		gotBearer  string
	)

	BeforeEach(func() {
		userInfo = map[string]any{
			"sub":            "1234",
			"email":          "ada@example.com",
			"email_verified": true,
			"name":           "Ada",
			"picture":        "https://example.com/ada.png",
		}
		userStatus = http.StatusOK
		gotCode = ""
		gotBearer = ""

		mux := http.NewServeMux()
		mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
			_ = r.ParseForm()
			gotCode = r.PostForm.Get("code")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token": "access-123",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		})
		mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
			gotBearer = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(userStatus)
			_ = json.NewEncoder(w).Encode(userInfo)
		})
		server = httptest.NewServer(mux)

		provider = oauth.NewGoogle(oauth.GoogleOpts{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost:8080/api/auth/callback/google",
			TokenURL:     server.URL + "/token",
			UserInfoURL:  server.URL + "/userinfo",
		})
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("AuthCodeURL", func() {
		It("should point at the Google consent page with the state", func() {
			u, err := url.Parse(provider.AuthCodeURL("state-1"))
			Expect(err).NotTo(HaveOccurred())
			Expect(u.Host).To(Equal("accounts.google.com"))
			Expect(u.Query().Get("state")).To(Equal("state-1"))
			Expect(u.Query().Get("client_id")).To(Equal("client-id"))
			Expect(u.Query().Get("scope")).To(Equal("openid email profile"))
		})
	})

	Describe("Exchange", func() {
		var (
			profile oauth.Profile
			err     error
		)

		JustBeforeEach(func() {
			profile, err = provider.Exchange(context.Background(), "code-1")
		})

		When("the provider accepts the code", func() {
			It("should return the profile", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(gotCode).To(Equal("code-1"))
				Expect(gotBearer).To(Equal("Bearer access-123"))
				Expect(profile).To(Equal(oauth.Profile{
					Subject:       "1234",
					Email:         "ada@example.com",
					EmailVerified: true,
					Name:          "Ada",
					Picture:       "https://example.com/ada.png",
				}))
			})
		})

		When("the profile has no email", func() {
			BeforeEach(func() {
				delete(userInfo, "email")
			})

			It("should refuse it", func() {
				Expect(err).To(MatchError(oauth.ErrEmailMissing))
			})
		})

		When("the userinfo endpoint fails", func() {
			BeforeEach(func() {
				userStatus = http.StatusUnauthorized
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(ContainSubstring("status 401")))
			})
		})
	})

	Describe("NewState", func() {
		It("should not repeat", func() {
			a, err := oauth.NewState()
			Expect(err).NotTo(HaveOccurred())
			b, err := oauth.NewState()
			Expect(err).NotTo(HaveOccurred())
			Expect(a).NotTo(Equal(b))
			Expect(a).To(HaveLen(43))
		})
	})
})
