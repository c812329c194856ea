package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/thoughtlog_backend/internal/apperrors"
	"github.com/SscSPs/thoughtlog_backend/internal/core/domain"
	portssvc "github.com/SscSPs/thoughtlog_backend/internal/core/ports/services"
	"github.com/SscSPs/thoughtlog_backend/internal/core/services"
	"github.com/SscSPs/thoughtlog_backend/internal/dto"
	"github.com/SscSPs/thoughtlog_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
	FindEntriesByOwnerFn      func(ctx context.Context, ownerID string) ([]domain.Entry, error)
	FindEntriesByOwnerAfterFn func(ctx context.Context, ownerID string, after time.Time, afterID string, limit int) ([]domain.Entry, error)
	SaveEntryFn               func(ctx context.Context, entry domain.Entry) error
}

func (m *MockEntryRepository) FindEntriesByOwner(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	if m.FindEntriesByOwnerFn != nil {
		return m.FindEntriesByOwnerFn(ctx, ownerID)
	}
	args := m.Called(ctx, ownerID)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) FindEntriesByOwnerAfter(ctx context.Context, ownerID string, after time.Time, afterID string, limit int) ([]domain.Entry, error) {
	if m.FindEntriesByOwnerAfterFn != nil {
		return m.FindEntriesByOwnerAfterFn(ctx, ownerID, after, afterID, limit)
	}
	args := m.Called(ctx, ownerID, after, afterID, limit)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	if m.SaveEntryFn != nil {
		return m.SaveEntryFn(ctx, entry)
	}
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	service       portssvc.JournalSvcFacade
	ownerID       string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewJournalService(suite.mockEntryRepo, time.UTC)
	suite.ownerID = uuid.NewString()
}

func (suite *JournalServiceTestSuite) entryOn(day domain.DateKey, createdAt time.Time) domain.Entry {
	return domain.Entry{
		EntryID:     uuid.NewString(),
		OwnerID:     suite.ownerID,
		Text:        "note",
		JournalDate: day.Time(time.UTC),
		CreatedAt:   createdAt,
	}
}

// --- CreateEntry Tests ---
func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	today := domain.TodayKey(time.UTC)

	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.Entry) bool {
		return e.OwnerID == suite.ownerID &&
			e.Text == "first note" &&
			domain.DateKeyFromTime(e.JournalDate, time.UTC) == today &&
			!e.CreatedAt.IsZero()
	})).Return(nil).Once()

	entry, selected, err := suite.service.CreateEntry(ctx, suite.ownerID, dto.CreateEntryRequest{
		Text:           "  first note  ",
		JournalDateKey: string(today),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("first note", entry.Text)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(today, selected)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_EscapesMarkup() {
	ctx := context.Background()
	today := domain.TodayKey(time.UTC)

	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.Entry")).Return(nil).Once()

	entry, _, err := suite.service.CreateEntry(ctx, suite.ownerID, dto.CreateEntryRequest{
		Text:           "<script>alert(1)</script>",
		JournalDateKey: string(today),
	})

	suite.Require().NoError(err)
	suite.Equal("&lt;script&gt;alert(1)&lt;/script&gt;", entry.Text)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_BlankText() {
	ctx := context.Background()
	today := domain.TodayKey(time.UTC)

	entry, _, err := suite.service.CreateEntry(ctx, suite.ownerID, dto.CreateEntryRequest{
		Text:           "   \n\t ",
		JournalDateKey: string(today),
	})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateEntry_FutureDateRejected() {
	ctx := context.Background()
	tomorrow := domain.TodayKey(time.UTC).AddDays(1)

	entry, _, err := suite.service.CreateEntry(ctx, suite.ownerID, dto.CreateEntryRequest{
		Text:           "from the future",
		JournalDateKey: string(tomorrow),
	})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateEntry_MalformedDateKey() {
	ctx := context.Background()

	entry, _, err := suite.service.CreateEntry(ctx, suite.ownerID, dto.CreateEntryRequest{
		Text:           "note",
		JournalDateKey: "2024-2-05",
	})

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateEntry_BackfillSelectsPastDay() {
	ctx := context.Background()
	lastWeek := domain.TodayKey(time.UTC).AddDays(-7)

	suite.mockEntryRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.Entry")).Return(nil).Once()

	_, selected, err := suite.service.CreateEntry(ctx, suite.ownerID, dto.CreateEntryRequest{
		Text:           "catching up",
		JournalDateKey: string(lastWeek),
	})

	suite.Require().NoError(err)
	suite.Equal(lastWeek, selected)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_NonUTCZoneKeepsDay() {
	ctx := context.Background()
	loc, err := time.LoadLocation("America/New_York")
	suite.Require().NoError(err)
	svc := services.NewJournalService(suite.mockEntryRepo, loc)

	key := domain.TodayKey(loc)
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(e domain.Entry) bool {
		// The stored instant must resolve to the same local day even when a
		// reader sees it in a UTC wall representation.
		return domain.DateKeyFromTime(e.JournalDate, loc) == key &&
			domain.DateKeyFromTime(e.JournalDate.UTC(), loc) == key
	})).Return(nil).Once()

	entry, selected, err := svc.CreateEntry(ctx, suite.ownerID, dto.CreateEntryRequest{
		Text:           "evening note",
		JournalDateKey: string(key),
	})

	suite.Require().NoError(err)
	suite.Equal(key, selected)
	suite.Equal(key, domain.DateKeyFromTime(entry.JournalDate, loc))
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- ListEntries Tests ---
func (suite *JournalServiceTestSuite) TestListEntries_NoLimitReturnsEverything() {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stored := []domain.Entry{
		suite.entryOn("2024-05-01", base),
		suite.entryOn("2024-05-02", base.Add(24*time.Hour)),
		suite.entryOn("2024-05-03", base.Add(48*time.Hour)),
	}

	suite.mockEntryRepo.On("FindEntriesByOwner", ctx, suite.ownerID).Return(stored, nil).Once()

	entries, nextToken, err := suite.service.ListEntries(ctx, suite.ownerID, dto.ListEntriesParams{})

	suite.Require().NoError(err)
	suite.Len(entries, 3)
	suite.Empty(nextToken)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_SinglePage() {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stored := []domain.Entry{
		suite.entryOn("2024-05-01", base),
		suite.entryOn("2024-05-02", base.Add(24*time.Hour)),
	}

	suite.mockEntryRepo.On("FindEntriesByOwnerAfter", ctx, suite.ownerID, time.Time{}, "", 11).Return(stored, nil).Once()

	entries, nextToken, err := suite.service.ListEntries(ctx, suite.ownerID, dto.ListEntriesParams{Limit: 10})

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.Empty(nextToken)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_ReturnsNextToken() {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	stored := []domain.Entry{
		suite.entryOn("2024-05-01", base),
		suite.entryOn("2024-05-01", base.Add(time.Hour)),
		suite.entryOn("2024-05-02", base.Add(2*time.Hour)),
	}

	suite.mockEntryRepo.On("FindEntriesByOwnerAfter", ctx, suite.ownerID, time.Time{}, "", 3).Return(stored, nil).Once()

	entries, nextToken, err := suite.service.ListEntries(ctx, suite.ownerID, dto.ListEntriesParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.Require().NotEmpty(nextToken)

	after, afterID, err := pagination.DecodeToken(nextToken)
	suite.Require().NoError(err)
	suite.True(after.Equal(entries[1].CreatedAt))
	suite.Equal(entries[1].EntryID, afterID)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_TiedTimestampsCrossPages() {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	first := suite.entryOn("2024-05-01", createdAt)
	second := suite.entryOn("2024-05-01", createdAt)

	suite.mockEntryRepo.On("FindEntriesByOwnerAfter", ctx, suite.ownerID, time.Time{}, "", 2).
		Return([]domain.Entry{first, second}, nil).Once()

	entries, nextToken, err := suite.service.ListEntries(ctx, suite.ownerID, dto.ListEntriesParams{Limit: 1})
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(first.EntryID, entries[0].EntryID)
	suite.Require().NotEmpty(nextToken)

	// The cursor carries the boundary entry's ID, so the next page starts
	// after that exact entry rather than after its timestamp.
	suite.mockEntryRepo.On("FindEntriesByOwnerAfter", ctx, suite.ownerID,
		mock.MatchedBy(func(after time.Time) bool { return after.Equal(first.CreatedAt) }),
		first.EntryID, 2).
		Return([]domain.Entry{second}, nil).Once()

	entries, nextToken, err = suite.service.ListEntries(ctx, suite.ownerID, dto.ListEntriesParams{Limit: 1, NextToken: nextToken})
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(second.EntryID, entries[0].EntryID)
	suite.Empty(nextToken)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestListEntries_InvalidToken() {
	ctx := context.Background()

	entries, _, err := suite.service.ListEntries(ctx, suite.ownerID, dto.ListEntriesParams{NextToken: "not-a-token"})

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntriesByOwnerAfter")
}

// --- GetDayView Tests ---
func (suite *JournalServiceTestSuite) TestGetDayView_Success() {
	ctx := context.Background()
	day := domain.DateKey("2024-05-02")
	stored := []domain.Entry{
		suite.entryOn("2024-05-01", time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)),
		suite.entryOn("2024-05-02", time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)),
		suite.entryOn("2024-05-02", time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)),
	}

	suite.mockEntryRepo.On("FindEntriesByOwner", ctx, suite.ownerID).Return(stored, nil).Once()

	view, err := suite.service.GetDayView(ctx, suite.ownerID, day)

	suite.Require().NoError(err)
	suite.Equal(day, view.Day)
	suite.Require().Len(view.Entries, 2)
	suite.False(view.Entries[0].Backfilled)
	suite.True(view.Entries[1].Backfilled)
	suite.Equal(domain.DateKey("2024-05-01"), view.PrevDay)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- GetCalendarMonth Tests ---
func (suite *JournalServiceTestSuite) TestGetCalendarMonth_Success() {
	ctx := context.Background()
	stored := []domain.Entry{
		suite.entryOn("2024-05-07", time.Date(2024, 5, 7, 9, 0, 0, 0, time.UTC)),
	}

	suite.mockEntryRepo.On("FindEntriesByOwner", ctx, suite.ownerID).Return(stored, nil).Once()

	view, err := suite.service.GetCalendarMonth(ctx, suite.ownerID, 2024, time.May, "2024-05-07")

	suite.Require().NoError(err)
	suite.Equal(2024, view.Year)
	suite.Equal(time.May, view.Month)
	suite.Len(view.Weeks, 6)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetCalendarMonth_InvalidMonth() {
	ctx := context.Background()

	view, err := suite.service.GetCalendarMonth(ctx, suite.ownerID, 2024, time.Month(13), "")

	suite.Require().Error(err)
	suite.Nil(view)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntriesByOwner")
}

// --- GetStats Tests ---
func (suite *JournalServiceTestSuite) TestGetStats_StreakAcrossGap() {
	ctx := context.Background()
	stored := []domain.Entry{
		suite.entryOn("2024-01-01", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)),
		suite.entryOn("2024-01-02", time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)),
		suite.entryOn("2024-01-03", time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)),
		suite.entryOn("2024-01-10", time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)),
	}

	suite.mockEntryRepo.On("FindEntriesByOwner", ctx, suite.ownerID).Return(stored, nil).Once()

	stats, err := suite.service.GetStats(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(4, stats.TotalEntries)
	suite.Equal(4, stats.DaysWithEntries)
	suite.Equal(3, stats.LongestStreak)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestGetStats_NoEntries() {
	ctx := context.Background()

	suite.mockEntryRepo.On("FindEntriesByOwner", ctx, suite.ownerID).Return([]domain.Entry{}, nil).Once()

	stats, err := suite.service.GetStats(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(0, stats.TotalEntries)
	suite.Equal(0, stats.LongestStreak)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
