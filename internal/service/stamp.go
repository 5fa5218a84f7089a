package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/sentlog"
	appErrors "github.com/noah-isme/kindy-portal/pkg/errors"
)

type stampBackend interface {
	WhatsAppTasks(ctx context.Context) ([]models.WhatsAppTask, error)
}

// StampTask is a WhatsApp credential task annotated with its sent state.
type StampTask struct {
	models.WhatsAppTask
	Sent bool `json:"sent"`
}

// StampView is the stamp section view model.
type StampView struct {
	Items    []StampTask `json:"items"`
	ShowSent bool        `json:"show_sent"`
	Total    int         `json:"total"`
}

// StampService serves the credential-distribution checklist. The backend
// knows the tasks; whether a link was already sent lives only in the
// injected sent log.
type StampService struct {
	backend stampBackend
	sent    sentlog.Store
	logger  *zap.Logger
}

// NewStampService constructs the stamp service.
func NewStampService(backend stampBackend, sent sentlog.Store, logger *zap.Logger) *StampService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StampService{backend: backend, sent: sent, logger: logger}
}

// List returns the task list. Sent tasks are hidden unless showSent is
// set; search matches name, phone and task ID.
func (s *StampService) List(ctx context.Context, query string, showSent bool) (*StampView, error) {
	tasks, err := s.backend.WhatsAppTasks(ctx)
	if err != nil {
		return nil, err
	}
	sentIDs, err := s.sent.Sent(ctx)
	if err != nil {
		return nil, err
	}

	annotated := make([]StampTask, 0, len(tasks))
	for _, task := range tasks {
		t := StampTask{WhatsAppTask: task, Sent: sentIDs[task.ID]}
		if t.Sent && !showSent {
			continue
		}
		annotated = append(annotated, t)
	}

	filtered := listview.Filter(annotated, query, func(t StampTask) []string {
		return []string{t.Name, t.Phone, t.ID}
	})

	return &StampView{Items: filtered, ShowSent: showSent, Total: len(filtered)}, nil
}

// MarkSent records a task as sent and returns its WhatsApp deep link for
// the browser to open.
func (s *StampService) MarkSent(ctx context.Context, taskID string) (string, error) {
	tasks, err := s.backend.WhatsAppTasks(ctx)
	if err != nil {
		return "", err
	}
	for _, task := range tasks {
		if task.ID == taskID {
			if err := s.sent.MarkSent(ctx, taskID); err != nil {
				return "", err
			}
			return task.WALink, nil
		}
	}
	return "", appErrors.Clone(appErrors.ErrNotFound, "task not found")
}

// ClearSent drops the whole sent record, restoring every task to the
// default view.
func (s *StampService) ClearSent(ctx context.Context) error {
	return s.sent.Clear(ctx)
}
