package app_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_console/internal/app"
	"hotel_console/internal/domain"
)

func TestStore_CreateRefetchesList(t *testing.T) {
	api := newHotelAPI()
	api.seed(domain.HotelRequest{Name: "Old", City: "Baku"})
	n := &fakeNotifier{}
	s := app.NewHotelStore(api, n)
	ctx := context.Background()

	require.Len(t, s.List(ctx), 1)
	before := api.calls()

	ok := s.Create(ctx, domain.HotelRequest{Name: "Grand", Country: "AZ", City: "Baku"})
	require.True(t, ok)
	assert.Equal(t, before+1, api.calls(), "a successful create must re-list")

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Grand", items[1].Name)
	assert.Equal(t, notice{true, "Hotel created successfully."}, n.last())
	assert.NoError(t, s.Err())
	assert.False(t, s.Loading())
}

func TestStore_LoadingSpansMutationAndRefetch(t *testing.T) {
	api := newHotelAPI()
	s := app.NewHotelStore(api, nil)
	create := api.hold("create")
	list := api.hold("list")

	done := make(chan bool)
	go func() { done <- s.Create(context.Background(), domain.HotelRequest{Name: "Slow"}) }()

	<-create.entered
	assert.True(t, s.Loading(), "loading while the create is in flight")
	close(create.release)

	<-list.entered
	assert.True(t, s.Loading(), "loading while the refetch is in flight")
	close(list.release)

	assert.True(t, <-done)
	assert.False(t, s.Loading())
	require.Len(t, s.Items(), 1)
}

func TestStore_LoadReportsItsOwnFailure(t *testing.T) {
	api := newHotelAPI()
	api.seed(domain.HotelRequest{Name: "Keep"})
	s := app.NewHotelStore(api, nil)
	ctx := context.Background()
	require.Len(t, s.List(ctx), 1)

	api.setErr(errors.New("database is down"))
	items, err := s.Load(ctx)
	require.EqualError(t, err, "database is down")
	assert.Len(t, items, 1, "previous items are kept")

	// a later successful call clears the shared error but not the one returned above
	api.setErr(nil)
	_, err2 := s.Load(ctx)
	require.NoError(t, err2)
	assert.NoError(t, s.Err())
	assert.EqualError(t, err, "database is down")
}

func TestStore_FailedMutationKeepsList(t *testing.T) {
	api := newHotelAPI()
	api.seed(domain.HotelRequest{Name: "Keep"})
	n := &fakeNotifier{}
	s := app.NewHotelStore(api, n)
	ctx := context.Background()
	s.List(ctx)

	api.err = errors.New("Hotel name already taken")
	calls := api.calls()

	assert.False(t, s.Create(ctx, domain.HotelRequest{Name: "Keep"}))
	assert.Equal(t, calls, api.calls(), "no re-list after a failure")
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "Keep", s.Items()[0].Name)
	assert.EqualError(t, s.Err(), "Hotel name already taken")
	assert.Equal(t, notice{false, "Hotel was not created: Hotel name already taken"}, n.last())
}

func TestStore_WrongSuccessStatusIsFailure(t *testing.T) {
	api := newUserAPI()
	api.status = http.StatusOK // create must answer 201
	s := app.NewUserStore(api, &fakeNotifier{})

	assert.False(t, s.Create(context.Background(), domain.UserRequest{Username: "bob"}))
	require.Error(t, s.Err())
	assert.Contains(t, s.Err().Error(), "unexpected status 200")
	assert.Equal(t, 0, api.calls())
}

func TestStore_UpdateAndDelete(t *testing.T) {
	api := newUserAPI()
	id := api.seed(domain.UserRequest{Username: "alice", Name: "Alice"})
	n := &fakeNotifier{}
	s := app.NewUserStore(api, n)
	ctx := context.Background()

	require.True(t, s.Update(ctx, id, domain.UserRequest{Username: "alice2", Name: "Alice"}))
	assert.Equal(t, "alice2", s.Items()[0].Username)
	assert.Equal(t, "User details updated successfully.", n.last().msg)

	require.True(t, s.Delete(ctx, id))
	assert.Empty(t, s.Items())
	assert.Equal(t, "User deleted successfully.", n.last().msg)
	assert.Equal(t, []int64{id}, api.deleted)
}

func TestStore_GetByIDNotFoundIsAbsent(t *testing.T) {
	n := &fakeNotifier{}
	s := app.NewHotelStore(newHotelAPI(), n)

	_, ok := s.GetByID(context.Background(), 42)
	assert.False(t, ok)
	assert.ErrorIs(t, s.Err(), domain.ErrNotFound)
	assert.False(t, n.last().ok)
}

func TestStore_ListFailureKeepsPreviousItems(t *testing.T) {
	api := newHotelAPI()
	api.seed(domain.HotelRequest{Name: "A"})
	s := app.NewHotelStore(api, nil)
	ctx := context.Background()
	s.List(ctx)

	api.err = errors.New("boom")
	got := s.List(ctx)
	assert.Len(t, got, 1)
	assert.EqualError(t, s.Err(), "boom")

	api.err = nil
	s.List(ctx)
	assert.NoError(t, s.Err(), "a new operation clears the previous error")
}

func TestStore_ItemsIsACopy(t *testing.T) {
	api := newHotelAPI()
	api.seed(domain.HotelRequest{Name: "A"})
	s := app.NewHotelStore(api, nil)
	s.List(context.Background())

	items := s.Items()
	items[0].Name = "mutated"
	assert.Equal(t, "A", s.Items()[0].Name)
}
