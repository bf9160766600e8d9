package sessions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villastay/internal/app/outbox"
	"villastay/internal/domain/availability"
	"villastay/internal/domain/calendar"
	"villastay/internal/domain/shared/money"
	"villastay/internal/domain/stay"
	"villastay/internal/domain/villa"
)

type fakeSessions struct {
	items map[string]*stay.Session
}

func (f *fakeSessions) ByID(_ context.Context, id string) (*stay.Session, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, stay.ErrNotFound
	}
	return s, nil
}

func (f *fakeSessions) Save(_ context.Context, s *stay.Session) error {
	f.items[s.ID] = s
	return nil
}

type fakeVillas struct {
	items map[villa.VillaID]*villa.Villa
}

func (f *fakeVillas) ByID(_ context.Context, id villa.VillaID) (*villa.Villa, error) {
	v, ok := f.items[id]
	if !ok {
		return nil, villa.ErrNotFound
	}
	return v, nil
}

func (f *fakeVillas) Save(_ context.Context, v *villa.Villa) error {
	f.items[v.ID] = v
	return nil
}

func (f *fakeVillas) List(_ context.Context) ([]*villa.Villa, error) {
	out := make([]*villa.Villa, 0, len(f.items))
	for _, v := range f.items {
		out = append(out, v)
	}
	return out, nil
}

type collectingOutbox struct {
	records []outbox.EventRecord
}

func (o *collectingOutbox) Add(_ context.Context, rec outbox.EventRecord) error {
	o.records = append(o.records, rec)
	return nil
}

func (o *collectingOutbox) Flush(context.Context) error { return nil }

func (o *collectingOutbox) names() []string {
	out := make([]string, 0, len(o.records))
	for _, r := range o.records {
		out = append(out, r.Name)
	}
	return out
}

func demoVilla(t *testing.T) *villa.Villa {
	t.Helper()
	v, err := villa.NewVilla(villa.CreateVillaParams{
		ID:                 "villa-1",
		Name:               "Villa Helios",
		WeeklyRate:         money.Must(8400, "EUR"),
		NightlyRate:        money.Must(1200, "EUR"),
		DiscountPercent:    15,
		DiscountMinWeeks:   2,
		MinShortStayNights: 3,
		MaxShortStayNights: 21,
		WeeklyBookings: []availability.WeeklyBooking{
			{Start: calendar.MustParse("2025-04-12"), Weeks: 1},
		},
	})
	require.NoError(t, err)
	return v
}

func testDeps(t *testing.T) (Deps, *collectingOutbox) {
	t.Helper()
	box := &collectingOutbox{}
	return Deps{
		Sessions: &fakeSessions{items: map[string]*stay.Session{}},
		Villas:   &fakeVillas{items: map[villa.VillaID]*villa.Villa{"villa-1": demoVilla(t)}},
		Outbox:   box,
		Encoder:  outbox.JSONEventEncoder{},
	}, box
}

func TestCreateSessionDefaultsToWeekly(t *testing.T) {
	deps, _ := testDeps(t)
	h := &CreateSessionHandler{Deps: deps}

	view, err := h.Handle(context.Background(), CreateSessionCommand{CommandID: "sess-1", VillaID: "villa-1"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", view.ID)
	assert.Equal(t, "weekly", view.Mode)
	assert.False(t, view.Selection.Active)
	assert.Equal(t, 1, view.Selection.Weeks)
	assert.Equal(t, 3, view.Selection.Nights)
	assert.Nil(t, view.Summary)
}

func TestCreateSessionUnknownVilla(t *testing.T) {
	deps, _ := testDeps(t)
	h := &CreateSessionHandler{Deps: deps}

	_, err := h.Handle(context.Background(), CreateSessionCommand{CommandID: "sess-1", VillaID: "nope"})
	assert.ErrorIs(t, err, villa.ErrNotFound)
}

func TestSelectDateReturnsSummary(t *testing.T) {
	deps, box := testDeps(t)
	create := &CreateSessionHandler{Deps: deps}
	_, err := create.Handle(context.Background(), CreateSessionCommand{CommandID: "sess-1", VillaID: "villa-1"})
	require.NoError(t, err)

	h := &SelectDateHandler{Deps: deps}
	view, err := h.Handle(context.Background(), SelectDateCommand{SessionID: "sess-1", Date: "2025-04-05"})
	require.NoError(t, err)

	assert.True(t, view.Selection.Active)
	assert.Equal(t, "2025-04-05", view.Selection.Start)
	assert.Equal(t, "2025-04-11", view.Selection.End)
	assert.Equal(t, "2025-04-12", view.Selection.Checkout)
	require.NotNil(t, view.Summary)
	assert.Equal(t, "Apr 5-11", view.Summary.Label)
	assert.Equal(t, int64(8400), view.Summary.Price.FinalPrice)
	assert.False(t, view.Summary.Price.HasDiscount)
	assert.Equal(t, []string{"stay.selected"}, box.names())
}

func TestSelectDateConflictRecordsEvent(t *testing.T) {
	deps, box := testDeps(t)
	create := &CreateSessionHandler{Deps: deps}
	_, err := create.Handle(context.Background(), CreateSessionCommand{CommandID: "sess-1", VillaID: "villa-1"})
	require.NoError(t, err)

	h := &SelectDateHandler{Deps: deps}
	_, err = h.Handle(context.Background(), SelectDateCommand{SessionID: "sess-1", Date: "2025-04-12"})
	assert.ErrorIs(t, err, stay.ErrPeriodUnavailable)
	assert.Equal(t, []string{"stay.conflict_detected"}, box.names())
}

func TestSelectDateBadInput(t *testing.T) {
	deps, _ := testDeps(t)
	h := &SelectDateHandler{Deps: deps}

	_, err := h.Handle(context.Background(), SelectDateCommand{SessionID: "sess-1", Date: "not-a-date"})
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestAdjustDurationWithDiscount(t *testing.T) {
	deps, _ := testDeps(t)
	create := &CreateSessionHandler{Deps: deps}
	_, err := create.Handle(context.Background(), CreateSessionCommand{CommandID: "sess-1", VillaID: "villa-1"})
	require.NoError(t, err)

	sel := &SelectDateHandler{Deps: deps}
	// May 24 is a free Saturday with the following week open too.
	_, err = sel.Handle(context.Background(), SelectDateCommand{SessionID: "sess-1", Date: "2025-05-24"})
	require.NoError(t, err)

	adj := &AdjustDurationHandler{Deps: deps}
	view, err := adj.Handle(context.Background(), AdjustDurationCommand{SessionID: "sess-1", Delta: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, view.Selection.Weeks)
	require.NotNil(t, view.Summary)
	assert.True(t, view.Summary.Price.HasDiscount)
	assert.Equal(t, int64(16800), view.Summary.Price.BasePrice)
	assert.Equal(t, int64(14280), view.Summary.Price.FinalPrice)
	assert.Equal(t, int64(2520), view.Summary.Price.Savings)
}

func TestAdjustDurationRejectsZeroDelta(t *testing.T) {
	deps, _ := testDeps(t)
	h := &AdjustDurationHandler{Deps: deps}

	_, err := h.Handle(context.Background(), AdjustDurationCommand{SessionID: "sess-1", Delta: 0})
	assert.ErrorIs(t, err, ErrZeroDelta)
}

func TestSwitchModeResets(t *testing.T) {
	deps, _ := testDeps(t)
	create := &CreateSessionHandler{Deps: deps}
	_, err := create.Handle(context.Background(), CreateSessionCommand{CommandID: "sess-1", VillaID: "villa-1"})
	require.NoError(t, err)

	sel := &SelectDateHandler{Deps: deps}
	_, err = sel.Handle(context.Background(), SelectDateCommand{SessionID: "sess-1", Date: "2025-04-05"})
	require.NoError(t, err)

	sw := &SwitchModeHandler{Deps: deps}
	view, err := sw.Handle(context.Background(), SwitchModeCommand{SessionID: "sess-1", Mode: "short"})
	require.NoError(t, err)
	assert.Equal(t, "short", view.Mode)
	assert.False(t, view.Selection.Active)
	assert.Nil(t, view.Summary)
}

func TestConfirmRequiresActiveSelection(t *testing.T) {
	deps, _ := testDeps(t)
	create := &CreateSessionHandler{Deps: deps}
	_, err := create.Handle(context.Background(), CreateSessionCommand{CommandID: "sess-1", VillaID: "villa-1"})
	require.NoError(t, err)

	h := &ConfirmStayHandler{Deps: deps}
	_, err = h.Handle(context.Background(), ConfirmStayCommand{SessionID: "sess-1"})
	assert.ErrorIs(t, err, stay.ErrSelectionRequired)
}

func TestGridQueryValidatesMonth(t *testing.T) {
	deps, _ := testDeps(t)
	h := &GetGridHandler{Deps: deps}

	_, err := h.Handle(context.Background(), GetGridQuery{SessionID: "sess-1", Year: 2025, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestGridQueryMarksBookedDays(t *testing.T) {
	deps, _ := testDeps(t)
	create := &CreateSessionHandler{Deps: deps}
	_, err := create.Handle(context.Background(), CreateSessionCommand{CommandID: "sess-1", VillaID: "villa-1"})
	require.NoError(t, err)

	h := &GetGridHandler{Deps: deps}
	view, err := h.Handle(context.Background(), GetGridQuery{SessionID: "sess-1", Year: 2025, Month: 4})
	require.NoError(t, err)

	require.Len(t, view.Weeks, 6)
	var booked, eligible int
	for _, row := range view.Weeks {
		require.Len(t, row, 7)
		for _, cell := range row {
			if cell.IsUnavailable {
				booked++
			}
			if cell.IsCheckinEligible {
				eligible++
			}
		}
	}
	// One booked week.
	assert.Equal(t, 7, booked)
	// Saturdays in April 2025 are the 5th, 12th, 19th and 26th; only the
	// booked 12th is ineligible.
	assert.Equal(t, 3, eligible)
}
