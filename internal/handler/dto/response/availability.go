package response

import (
	"mountworks/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Date        string      `json:"date"`
	StartMin    int         `json:"startMin"`
	DurationMin int         `json:"durationMin"`
	WorkerIDs   []uuid.UUID `json:"workerIds"`
}

type AvailabilityResponse struct {
	Zip   string         `json:"zip"`
	Slots []SlotResponse `json:"slots"`
}

type NextAvailableResponse struct {
	Zip   string         `json:"zip"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlotViews(zip string, views []queries.SlotView) *AvailabilityResponse {
	return &AvailabilityResponse{
		Zip:   zip,
		Slots: toSlotResponses(views),
	}
}

func FromNextAvailable(zip, date string, views []queries.SlotView) *NextAvailableResponse {
	return &NextAvailableResponse{
		Zip:   zip,
		Date:  date,
		Slots: toSlotResponses(views),
	}
}

func toSlotResponses(views []queries.SlotView) []SlotResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{
			Date:        v.Date.Format("2006-01-02"),
			StartMin:    v.StartMin,
			DurationMin: v.DurationMin,
			WorkerIDs:   v.WorkerIDs,
		}
	}
	return slots
}
