package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/upstream"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(ctx context.Context) error { return s.err }

type stubAdminGate struct {
	tasksErr error
	loginRes *upstream.Result
	loginErr error
}

func (s *stubAdminGate) WhatsAppTasks(ctx context.Context) ([]models.WhatsAppTask, error) {
	return nil, s.tasksErr
}

func (s *stubAdminGate) Login(ctx context.Context, key string) (*upstream.Result, error) {
	return s.loginRes, s.loginErr
}

type stubStudentGate struct {
	profileErr error
	stampRes   *upstream.Result
	stampErr   error
}

func (s *stubStudentGate) Profile(ctx context.Context) (models.Student, error) {
	return models.Student{}, s.profileErr
}

func (s *stubStudentGate) StampLogin(ctx context.Context, key string) (*upstream.Result, error) {
	return s.stampRes, s.stampErr
}

func TestAdminGate(t *testing.T) {
	cases := []struct {
		name     string
		ping     error
		tasksErr error
		want     GateState
	}{
		{
			name: "backend down is busy",
			ping: appErrors.NetworkError(assert.AnError),
			want: GateState{Status: GateBusy, Message: "sorry. server is busy."},
		},
		{
			name:     "no session is unauthenticated",
			tasksErr: appErrors.ApplicationError(401, "unauthorized"),
			want:     GateState{Status: GateUnauthenticated},
		},
		{
			name:     "probe network failure is busy",
			tasksErr: appErrors.NetworkError(assert.AnError),
			want:     GateState{Status: GateBusy, Message: "sorry. server is busy."},
		},
		{
			name: "valid session is authenticated",
			want: GateState{Status: GateAuthenticated},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewGateService(&stubPinger{err: tc.ping}, &stubAdminGate{tasksErr: tc.tasksErr}, &stubStudentGate{}, nil)
			assert.Equal(t, tc.want, svc.AdminGate(context.Background()))
		})
	}
}

func TestStudentGateWithoutStamp(t *testing.T) {
	svc := NewGateService(&stubPinger{}, &stubAdminGate{}, &stubStudentGate{
		profileErr: appErrors.ApplicationError(401, "unauthorized"),
	}, nil)

	state, res := svc.StudentGate(context.Background(), "")
	assert.Equal(t, GateUnauthenticated, state.Status)
	assert.Equal(t, "need stamp, please open with original link.", state.Message)
	assert.Nil(t, res)
}

func TestStudentGateStampExchange(t *testing.T) {
	result := &upstream.Result{}
	svc := NewGateService(&stubPinger{}, &stubAdminGate{}, &stubStudentGate{stampRes: result}, nil)

	state, res := svc.StudentGate(context.Background(), "tok-123")
	assert.Equal(t, GateAuthenticated, state.Status)
	assert.Same(t, result, res)
}

func TestStudentGateRejectedStamp(t *testing.T) {
	svc := NewGateService(&stubPinger{}, &stubAdminGate{}, &stubStudentGate{
		stampErr: appErrors.ApplicationError(403, "forbidden"),
	}, nil)

	state, res := svc.StudentGate(context.Background(), "tok-bad")
	assert.Equal(t, GateUnauthenticated, state.Status)
	assert.Equal(t, "access is limited, you should chat admin.", state.Message)
	assert.Nil(t, res)
}

func TestStudentGateBusyBackend(t *testing.T) {
	svc := NewGateService(&stubPinger{err: appErrors.NetworkError(assert.AnError)}, &stubAdminGate{}, &stubStudentGate{}, nil)

	state, _ := svc.StudentGate(context.Background(), "")
	assert.Equal(t, GateBusy, state.Status)
	assert.Equal(t, "sorry. server is busy.", state.Message)
}
