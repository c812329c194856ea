package dto

import (
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	"github.com/SscSPs/thoughtlog_backend/internal/core/journal"
)

// CreateEntryRequest carries a new journal entry. The day key uses the
// custom "datekey" validation registered on the binding engine.
type CreateEntryRequest struct {
	Text           string `json:"text" binding:"required"`
	JournalDateKey string `json:"journalDateKey" binding:"required,datekey"`
}

// EntryResponse is the wire form of a single entry.
type EntryResponse struct {
	EntryID     string    `json:"entryID"`
	Text        string    `json:"text"`
	JournalDate time.Time `json:"journalDate"`
	CreatedAt   time.Time `json:"createdAt"`
	DayKey      string    `json:"dayKey"`
	Backfilled  bool      `json:"backfilled,omitempty"`
}

// ToEntryResponse converts a domain.Entry, deriving its day key in loc.
func ToEntryResponse(e domain.Entry, loc *time.Location) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		Text:        e.Text,
		JournalDate: e.JournalDate,
		CreatedAt:   e.CreatedAt,
		DayKey:      journal.ResolveDayAttribution(e, loc).Key.String(),
		Backfilled:  journal.IsBackfilled(e, loc),
	}
}

// CreateEntryResponse returns the saved entry and the day the view moves to.
type CreateEntryResponse struct {
	Entry       EntryResponse `json:"entry"`
	SelectedDay string        `json:"selectedDay"`
}

// ListEntriesParams defines query parameters for listing entries. A zero
// limit returns the full collection in one response.
type ListEntriesParams struct {
	Limit     int    `form:"limit,default=0" binding:"omitempty,gte=0,lte=500"`
	NextToken string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken string          `json:"nextToken,omitempty"`
}

// ToListEntriesResponse converts a page of domain entries.
func ToListEntriesResponse(entries []domain.Entry, nextToken string, loc *time.Location) ListEntriesResponse {
	out := make([]EntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToEntryResponse(e, loc)
	}
	return ListEntriesResponse{Entries: out, NextToken: nextToken}
}

// DayViewResponse renders one selected day with its navigation targets.
// NextDay is omitted when forward navigation would pass today.
type DayViewResponse struct {
	Day     string          `json:"day"`
	PrevDay string          `json:"prevDay"`
	NextDay *string         `json:"nextDay,omitempty"`
	Entries []EntryResponse `json:"entries"`
}

// ToDayViewResponse converts a journal.DayView to its wire form.
func ToDayViewResponse(view *journal.DayView, loc *time.Location) DayViewResponse {
	resp := DayViewResponse{
		Day:     view.Day.String(),
		PrevDay: view.PrevDay.String(),
		Entries: make([]EntryResponse, len(view.Entries)),
	}
	if view.NextDay != nil {
		next := view.NextDay.String()
		resp.NextDay = &next
	}
	for i, e := range view.Entries {
		er := ToEntryResponse(e.Entry, loc)
		er.Backfilled = e.Backfilled
		resp.Entries[i] = er
	}
	return resp
}

// CalendarCellResponse is one grid slot; a zero Day marks a placeholder cell
// outside the month.
type CalendarCellResponse struct {
	Day        int    `json:"day,omitempty"`
	DateKey    string `json:"dateKey,omitempty"`
	HasEntries bool   `json:"hasEntries,omitempty"`
	Selected   bool   `json:"selected,omitempty"`
}

// CalendarMonthResponse is the 6x7 picker grid plus adjacent month coordinates.
type CalendarMonthResponse struct {
	Year      int                      `json:"year"`
	Month     int                      `json:"month"`
	Weeks     [][]CalendarCellResponse `json:"weeks"`
	PrevYear  int                      `json:"prevYear"`
	PrevMonth int                      `json:"prevMonth"`
	NextYear  int                      `json:"nextYear"`
	NextMonth int                      `json:"nextMonth"`
}

// ToCalendarMonthResponse converts a journal.MonthView to its wire form.
func ToCalendarMonthResponse(view *journal.MonthView) CalendarMonthResponse {
	weeks := make([][]CalendarCellResponse, len(view.Weeks))
	for i, row := range view.Weeks {
		cells := make([]CalendarCellResponse, len(row))
		for j, cell := range row {
			cells[j] = CalendarCellResponse{
				Day:        cell.Day,
				DateKey:    cell.Key.String(),
				HasEntries: cell.HasEntries,
				Selected:   cell.Selected,
			}
		}
		weeks[i] = cells
	}
	return CalendarMonthResponse{
		Year:      view.Year,
		Month:     int(view.Month),
		Weeks:     weeks,
		PrevYear:  view.PrevYear,
		PrevMonth: int(view.PrevMonth),
		NextYear:  view.NextYear,
		NextMonth: int(view.NextMonth),
	}
}
