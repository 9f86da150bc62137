package worker

import (
	"errors"

	"mountworks/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyServiceArea = errors.New("service area must cover at least one zip")
	ErrInvalidZip       = errors.New("invalid zip code")
)

// ServiceArea is a named coverage region, held as an explicit ZIP list.
// Polygon-drawn areas are resolved to ZIP lists before they reach the core.
type ServiceArea struct {
	name string
	zips []string
}

func NewServiceArea(name string, zips []string) (ServiceArea, error) {
	if len(zips) == 0 {
		return ServiceArea{}, ErrEmptyServiceArea
	}
	normalized := make([]string, 0, len(zips))
	for _, z := range zips {
		nz, err := NormalizeZip(z)
		if err != nil {
			return ServiceArea{}, err
		}
		normalized = append(normalized, nz)
	}
	return ServiceArea{name: name, zips: normalized}, nil
}

func (a ServiceArea) Name() string   { return a.name }
func (a ServiceArea) Zips() []string { return a.zips }

func (a ServiceArea) ContainsZip(zip string) bool {
	for _, z := range a.zips {
		if z == zip {
			return true
		}
	}
	return false
}

// NormalizeZip validates the 5-digit US format. Strict: no prefix or radius
// matching anywhere in the core.
func NormalizeZip(zip string) (string, error) {
	if len(zip) != 5 {
		return "", ErrInvalidZip
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return "", ErrInvalidZip
		}
	}
	return zip, nil
}

type Worker struct {
	id       uuid.UUID
	name     string
	email    string
	phone    string
	active   bool
	areas    []ServiceArea
	schedule schedule.WeeklySchedule
}

func ReconstructWorker(
	id uuid.UUID,
	name, email, phone string,
	active bool,
	areas []ServiceArea,
	weekly schedule.WeeklySchedule,
) *Worker {
	return &Worker{
		id:       id,
		name:     name,
		email:    email,
		phone:    phone,
		active:   active,
		areas:    areas,
		schedule: weekly,
	}
}

func (w *Worker) ID() uuid.UUID                      { return w.id }
func (w *Worker) Name() string                       { return w.name }
func (w *Worker) Email() string                      { return w.email }
func (w *Worker) Phone() string                      { return w.phone }
func (w *Worker) IsActive() bool                     { return w.active }
func (w *Worker) Areas() []ServiceArea               { return w.areas }
func (w *Worker) Schedule() schedule.WeeklySchedule  { return w.schedule }

// CoversZip is strict containment across all areas. An inactive worker
// covers nothing.
func (w *Worker) CoversZip(zip string) bool {
	if !w.active {
		return false
	}
	for _, a := range w.areas {
		if a.ContainsZip(zip) {
			return true
		}
	}
	return false
}
