// Package bgazegin mounts the bgaze HTTP API on a gin router.
package bgazegin

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bgaze-labs/bgaze/adapters/gin/handlers"
	"github.com/bgaze-labs/bgaze/adapters/ginutil"
	"github.com/bgaze-labs/bgaze/core"
	memorylimiter "github.com/bgaze-labs/bgaze/ratelimit/memory"
)

// Service wraps core.Service with HTTP mounting.
type Service struct {
	svc *core.Service
	rl  ginutil.RateLimiter
}

func NewService(svc *core.Service) *Service {
	return &Service{svc: svc}
}

func (s *Service) WithRateLimiter(rl ginutil.RateLimiter) *Service { s.rl = rl; return s }

func (s *Service) Core() *core.Service { return s.svc }

// Register mounts all routes on the provided router or group. Object-storage
// routes and session resumption require a valid session token; profile CRUD
// and the OTP endpoints are open.
func (s *Service) Register(r gin.IRouter) *Service {
	rl := s.ensureLimiter()

	r.POST("/userprofile", handlers.HandleProfileCreatePOST(s.svc))
	r.GET("/userprofile", handlers.HandleProfileListGET(s.svc))
	r.GET("/userprofile/search", handlers.HandleProfileSearchGET(s.svc))
	r.GET("/userprofile/exists", handlers.HandleProfileExistsGET(s.svc))
	r.GET("/userprofile/:idName", handlers.HandleProfileGET(s.svc))
	r.PUT("/userprofile/:idName", handlers.HandleProfileUpdatePUT(s.svc))
	r.DELETE("/userprofile/:idName", handlers.HandleProfileDeleteDELETE(s.svc))

	r.POST("/send-email-otp", handlers.HandleSendEmailOTPPOST(s.svc, rl))
	r.POST("/verify-email-otp", handlers.HandleVerifyEmailOTPPOST(s.svc, rl))
	r.GET("/auto-login", SessionRequired(s.svc), handlers.HandleAutoLoginGET(s.svc))

	storage := r.Group("/s3")
	storage.Use(SessionRequired(s.svc))
	storage.POST("/upload", handlers.HandleStorageUploadPOST(s.svc))
	storage.GET("/files", handlers.HandleStorageFilesGET(s.svc))
	storage.GET("/file/:key", handlers.HandleStorageFileURLGET(s.svc))
	storage.DELETE("/file/:key", handlers.HandleStorageFileDELETE(s.svc))
	storage.POST("/presign", handlers.HandleStoragePresignPOST(s.svc))

	return s
}

func (s *Service) ensureLimiter() ginutil.RateLimiter {
	if s.rl != nil {
		return s.rl
	}
	return memorylimiter.New(defaultMemoryLimits())
}

// defaultMemoryLimits provides sensible default rate limits for the
// code-issuing endpoints.
func defaultMemoryLimits() map[string]memorylimiter.Limit {
	return map[string]memorylimiter.Limit{
		"default":                {Limit: 120, Window: time.Minute},
		ginutil.RLSendEmailOTP:   {Limit: 6, Window: 10 * time.Minute},
		ginutil.RLVerifyEmailOTP: {Limit: 10, Window: 10 * time.Minute},
	}
}
