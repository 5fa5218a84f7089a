package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/listview"
	"github.com/noah-isme/kindy-portal/internal/models"
)

type openAsBackend interface {
	Students(ctx context.Context) ([]models.Student, error)
}

// OpenAsRow pairs a student with the link an admin follows to open the
// student portal on that student's behalf.
type OpenAsRow struct {
	models.Student
	PortalLink string `json:"portal_link"`
}

// OpenAsService serves the open-as section: the full student roster with
// per-student portal links, searchable by name and phone.
type OpenAsService struct {
	backend openAsBackend
	logger  *zap.Logger
}

// NewOpenAsService constructs the open-as service.
func NewOpenAsService(backend openAsBackend, logger *zap.Logger) *OpenAsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAsService{backend: backend, logger: logger}
}

// List returns the searchable roster. The portal link rides on the
// backend-issued open-as token when present and falls back to the
// student ID.
func (s *OpenAsService) List(ctx context.Context, query string) (*ListView[OpenAsRow], error) {
	students, err := s.backend.Students(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]OpenAsRow, 0, len(students))
	for _, st := range students {
		rows = append(rows, OpenAsRow{Student: st, PortalLink: portalLink(st)})
	}

	filtered := listview.Filter(rows, query, func(r OpenAsRow) []string {
		fields := []string{r.Name}
		if r.Phone != nil {
			fields = append(fields, *r.Phone)
		}
		return fields
	})

	return &ListView[OpenAsRow]{Items: filtered, Total: len(filtered)}, nil
}

func portalLink(st models.Student) string {
	if st.OpenAs != "" {
		return "/student?open_as=" + st.OpenAs
	}
	return "/student?open_as=" + st.ID
}
