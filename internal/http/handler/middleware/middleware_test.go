package middleware_test

import (
	"crowdledger/internal/http/handler/middleware"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w        *httptest.ResponseRecorder
		req      *http.Request
		seenID   string
		terminal http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/api/health", nil)
		seenID = ""
		terminal = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = middleware.GetRequestID(r.Context())
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when none is sent", func() {
			middleware.NewRequestIDMiddleware().RequestID(terminal).ServeHTTP(w, req)

			_, err := uuid.Parse(seenID)
			Expect(err).NotTo(HaveOccurred())
			Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seenID))
		})

		It("should keep a valid incoming id", func() {
			incoming := uuid.NewString()
			req.Header.Set(middleware.RequestIDHeader, incoming)

			middleware.NewRequestIDMiddleware().RequestID(terminal).ServeHTTP(w, req)
			Expect(seenID).To(Equal(incoming))
		})

		It("should replace a malformed incoming id", func() {
			req.Header.Set(middleware.RequestIDHeader, "<script>")

			middleware.NewRequestIDMiddleware().RequestID(terminal).ServeHTTP(w, req)
			Expect(seenID).NotTo(Equal("<script>"))
		})
	})

	Describe("Logging", func() {
		It("should log the handled request with its status", func() {
			core, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(core).Sugar()

			hdlr := middleware.NewLoggingMiddleware(logger).Logging(terminal)
			hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
			hdlr.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
			entries := logs.FilterMessage("request handled").All()
			Expect(entries).To(HaveLen(1))

			fields := entries[0].ContextMap()
			Expect(fields["status"]).To(BeEquivalentTo(http.StatusTeapot))
			Expect(fields["path"]).To(Equal("/api/health"))
			Expect(fields["request_id"]).To(Equal(seenID))
		})
	})
})
