package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/upstream"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

// Gate outcomes. Busy is terminal for the request: the backend could not
// be reached, so nothing distinguishes "down" from "unreachable".
const (
	GateAuthenticated   = "authenticated"
	GateUnauthenticated = "unauthenticated"
	GateBusy            = "busy"
)

// User-facing gate messages, kept verbatim from the portal copy.
const (
	msgServerBusy    = "sorry. server is busy."
	msgNeedStamp     = "need stamp, please open with original link."
	msgAccessLimited = "access is limited, you should chat admin."
)

// GateState is the outcome of an entry check.
type GateState struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type gatePinger interface {
	Ping(ctx context.Context) error
}

type adminGateBackend interface {
	WhatsAppTasks(ctx context.Context) ([]models.WhatsAppTask, error)
	Login(ctx context.Context, key string) (*upstream.Result, error)
}

type studentGateBackend interface {
	Profile(ctx context.Context) (models.Student, error)
	StampLogin(ctx context.Context, key string) (*upstream.Result, error)
}

// GateService answers "may this caller enter" for both portal surfaces.
// It holds no session state; every check rides on the caller's forwarded
// cookies.
type GateService struct {
	org     gatePinger
	admin   adminGateBackend
	student studentGateBackend
	logger  *zap.Logger
}

// NewGateService constructs the gate service.
func NewGateService(org gatePinger, admin adminGateBackend, student studentGateBackend, logger *zap.Logger) *GateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GateService{org: org, admin: admin, student: student, logger: logger}
}

// AdminGate pings the backend, then probes an admin endpoint with the
// caller's cookies. Any ping failure is reported as "busy": reachability
// and availability are deliberately not distinguished.
func (s *GateService) AdminGate(ctx context.Context) GateState {
	if err := s.org.Ping(ctx); err != nil {
		s.logger.Warn("backend unreachable during admin gate", zap.Error(err))
		return GateState{Status: GateBusy, Message: msgServerBusy}
	}

	if _, err := s.admin.WhatsAppTasks(ctx); err != nil {
		if appErrors.IsAuth(err) {
			return GateState{Status: GateUnauthenticated}
		}
		s.logger.Warn("admin session probe failed", zap.Error(err))
		return GateState{Status: GateBusy, Message: msgServerBusy}
	}

	return GateState{Status: GateAuthenticated}
}

// AdminLogin forwards the admin key. The Result carries the backend's
// Set-Cookie headers for relay to the browser.
func (s *GateService) AdminLogin(ctx context.Context, key string) (*upstream.Result, error) {
	return s.admin.Login(ctx, key)
}

// StudentGate admits a student. With a stamp token it exchanges the token
// for a session; without one it probes the profile endpoint using the
// forwarded cookies.
func (s *GateService) StudentGate(ctx context.Context, stampToken string) (GateState, *upstream.Result) {
	if err := s.org.Ping(ctx); err != nil {
		s.logger.Warn("backend unreachable during student gate", zap.Error(err))
		return GateState{Status: GateBusy, Message: msgServerBusy}, nil
	}

	if stampToken != "" {
		res, err := s.student.StampLogin(ctx, stampToken)
		if err != nil {
			if appErrors.IsNetwork(err) {
				return GateState{Status: GateBusy, Message: msgServerBusy}, nil
			}
			return GateState{Status: GateUnauthenticated, Message: msgAccessLimited}, nil
		}
		return GateState{Status: GateAuthenticated}, res
	}

	if _, err := s.student.Profile(ctx); err != nil {
		if appErrors.IsNetwork(err) {
			return GateState{Status: GateBusy, Message: msgServerBusy}, nil
		}
		return GateState{Status: GateUnauthenticated, Message: msgNeedStamp}, nil
	}

	return GateState{Status: GateAuthenticated}, nil
}
