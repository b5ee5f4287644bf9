package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_console/internal/app"
	"hotel_console/internal/domain"
)

func TestDeleteConfirmation_DismissCallsNothing(t *testing.T) {
	calls := 0
	c := app.NewDeleteConfirmation("", "", func(context.Context) bool { calls++; return true })
	assert.Equal(t, app.DefaultConfirmTitle, c.Title)
	assert.Equal(t, app.DefaultConfirmDescription, c.Description)
	assert.Equal(t, 0, calls, "opening must not delete")

	c.Dismiss()
	assert.False(t, c.IsOpen())
	assert.False(t, c.Confirm(context.Background()), "a dismissed prompt cannot be confirmed")
	assert.Equal(t, 0, calls)
}

func TestDeleteConfirmation_ConfirmDeletesOnce(t *testing.T) {
	api := newHotelAPI()
	id := api.seed(domain.HotelRequest{Name: "Doomed"})
	c := app.NewConsole(&fakeBackend{hotels: api, users: newUserAPI()}, newMemKV(), nil, nil)

	prompt := c.ConfirmHotelDelete(id)
	assert.Equal(t, app.HotelDeleteTitle, prompt.Title)
	assert.Contains(t, prompt.Description, "selected hotel and all its data will be removed")
	assert.Empty(t, api.deleted)

	require.True(t, prompt.Confirm(context.Background()))
	assert.False(t, prompt.IsOpen())
	assert.False(t, prompt.Confirm(context.Background()))
	assert.Equal(t, []int64{id}, api.deleted)
	assert.Empty(t, c.Hotels.Items())
}

func TestDeleteConfirmation_UserPromptNamesTheUser(t *testing.T) {
	users := newUserAPI()
	id := users.seed(domain.UserRequest{Username: "gone"})
	c := app.NewConsole(&fakeBackend{hotels: newHotelAPI(), users: users}, newMemKV(), nil, nil)

	prompt := c.ConfirmUserDelete(id)
	assert.Equal(t, app.UserDeleteTitle, prompt.Title)
	assert.Contains(t, prompt.Description, "selected user and all its data will be removed")
	assert.Empty(t, users.deleted)
}

func TestDeleteConfirmation_CustomText(t *testing.T) {
	c := app.NewDeleteConfirmation("Delete user?", "Gone for good.", func(context.Context) bool { return true })
	assert.Equal(t, "Delete user?", c.Title)
	assert.Equal(t, "Gone for good.", c.Description)
}

type fakeBackend struct {
	fakeAuth
	hotels *fakeAPI[domain.HotelRequest, domain.Hotel]
	users  *fakeAPI[domain.UserRequest, domain.User]
}

func (b *fakeBackend) Hotels() domain.HotelAPI { return b.hotels }
func (b *fakeBackend) Users() domain.UserAPI   { return b.users }
