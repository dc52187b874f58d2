package jsonstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/garagehub/vehicle-service/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestVehicleStoreSeedsOnFirstOpen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewVehicleStore(dir)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "vehicles.json"))

	vehicles, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	require.Equal(t, "#00001", vehicles[0].VehicleID)
	require.Equal(t, "ABC-1234", vehicles[0].LicensePlate)
}

func TestVehicleStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewVehicleStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Insert(ctx, &domain.Vehicle{ID: 2, Brand: "Honda", Model: "Civic"}))

	reopened, err := NewVehicleStore(dir)
	require.NoError(t, err)
	vehicles, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	require.Equal(t, "Honda", vehicles[1].Brand)
}

func TestVehicleStoreUpdateAndDelete(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewVehicleStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, 1, &domain.Vehicle{ID: 1, Brand: "Fiat"}))
	updated, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Fiat", updated.Brand)

	removed, err := store.Delete(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, removed.ID)

	_, err = store.GetByID(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.Delete(ctx, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleStoreGetByIDReturnsDetachedCopy(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewVehicleStore(dir)
	require.NoError(t, err)

	fetched, err := store.GetByID(ctx, 1)
	require.NoError(t, err)

	// Mutations on the returned record must stay invisible until persisted
	// through Update.
	fetched.Brand = "Honda"
	fetched.Media.Photos = append(fetched.Media.Photos, "/uploads/x.jpg")

	kept, err := store.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Toyota", kept.Brand)
	require.Empty(t, kept.Media.Photos)
	require.NotNil(t, kept.Media.Photos)
}

func TestCounterStoreAdvancesAndPersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	counter, err := NewCounterStore(dir)
	require.NoError(t, err)

	first, err := counter.NextVehicleNumber(ctx)
	require.NoError(t, err)
	second, err := counter.NextVehicleNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, first)
	require.Equal(t, 2, second)

	reopened, err := NewCounterStore(dir)
	require.NoError(t, err)
	third, err := reopened.NextVehicleNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, third)
}

func TestSettingsStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	store := NewSettingsStore(dir)

	_, err := store.LoadProfile(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = store.LoadCompany(ctx)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.SaveProfile(ctx, &domain.Profile{ID: 1, Name: "Jane Roe"}))
	profile, err := store.LoadProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, "Jane Roe", profile.Name)

	require.NoError(t, store.SaveCompany(ctx, &domain.Company{Name: "Garage X", Email: "x@x.com"}))
	company, err := store.LoadCompany(ctx)
	require.NoError(t, err)
	require.Equal(t, "Garage X", company.Name)
}

func TestUserStoreSeedsAndUpserts(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewUserStore(dir)
	require.NoError(t, err)

	users, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "admin@garage.com", users[0].Email)

	require.NoError(t, store.Upsert(ctx, &domain.User{ID: 1, Name: "Renamed", Email: "r@garage.com", Role: domain.Admin}))
	require.NoError(t, store.Upsert(ctx, &domain.User{ID: 3, Name: "Third", Email: "t@garage.com", Role: domain.AppUser}))

	reopened, err := NewUserStore(dir)
	require.NoError(t, err)
	users, err = reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, "Renamed", users[0].Name)
}
