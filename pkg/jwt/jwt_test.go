package jwt_test

import (
	tokenIssuer "crowdledger/pkg/jwt"
	"time"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			Subject:    "ada@example.com",
			Name:       "Ada",
			Image:      "https://example.com/ada.png",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("should round trip the claims", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())

		sub, ok := tokenIssuer.StringClaim(claims, "sub")
		Expect(ok).To(BeTrue())
		Expect(sub).To(Equal("ada@example.com"))
		Expect(claims["name"]).To(Equal("Ada"))
		Expect(claims["picture"]).To(Equal("https://example.com/ada.png"))
	})

	It("should sign with HS512", func() {
		Expect(service.Generate(info).Method).To(Equal(jwt.SigningMethodHS512))
	})

	It("should reject a token signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		signed, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should report expired tokens", func() {
		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		tokenIssuer.TimeNow = time.Now

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("should reject an unexpected signing method", func() {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "ada@example.com"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	Describe("StringClaim", func() {
		It("should ignore empty and non string values", func() {
			claims := jwt.MapClaims{"a": "", "b": 42.0}
			_, ok := tokenIssuer.StringClaim(claims, "a")
			Expect(ok).To(BeFalse())
			_, ok = tokenIssuer.StringClaim(claims, "b")
			Expect(ok).To(BeFalse())
			_, ok = tokenIssuer.StringClaim(claims, "c")
			Expect(ok).To(BeFalse())
		})
	})
})
