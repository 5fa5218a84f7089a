package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/kindy-portal/internal/models"
	"github.com/noah-isme/kindy-portal/internal/upstream"
)

// sectionProbePath maps each admin section to the endpoint whose
// accessibility decides whether the section is shown. Stamp rides on the
// WhatsApp task list, OpenAs on the student list.
var sectionProbePath = map[models.Section]string{
	models.SectionPayment:     upstream.PathAdminPayments,
	models.SectionInvoice:     upstream.PathAdminInvoices,
	models.SectionOutstanding: upstream.PathAdminOutstanding,
	models.SectionSaving:      upstream.PathAdminSavings,
	models.SectionInfaq:       upstream.PathAdminInfaq,
	models.SectionStamp:       upstream.PathAdminWhatsApp,
	models.SectionOpenAs:      upstream.PathAdminStudents,
	models.SectionSetor:       upstream.PathAdminSetor,
}

// SectionLink is one navigation entry.
type SectionLink struct {
	Section models.Section `json:"section"`
	Label   string         `json:"label"`
}

// NavigationView lists the sections this admin may see. Active is the
// first accessible section; empty when none are.
type NavigationView struct {
	Sections []SectionLink  `json:"sections"`
	Active   models.Section `json:"active,omitempty"`
}

// NavigationService decides which admin sections to render by probing
// each section's backing endpoint with the caller's cookies. A 403 hides
// the section; it is not an error.
type NavigationService struct {
	prober upstream.Prober
	logger *zap.Logger
}

// NewNavigationService constructs the navigation service.
func NewNavigationService(prober upstream.Prober, logger *zap.Logger) *NavigationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NavigationService{prober: prober, logger: logger}
}

// Sections probes every section in parallel and returns the accessible
// ones in display order.
func (s *NavigationService) Sections(ctx context.Context) NavigationView {
	all := models.AllSections()
	accessible := make([]bool, len(all))

	var wg sync.WaitGroup
	for i, section := range all {
		path, ok := sectionProbePath[section]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			accessible[i] = s.prober.Accessible(ctx, path)
		}(i, path)
	}
	wg.Wait()

	view := NavigationView{Sections: make([]SectionLink, 0, len(all))}
	for i, section := range all {
		if !accessible[i] {
			continue
		}
		view.Sections = append(view.Sections, SectionLink{Section: section, Label: section.Label()})
		if view.Active == "" {
			view.Active = section
		}
	}
	return view
}
