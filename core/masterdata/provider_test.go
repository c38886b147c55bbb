package masterdata

import (
	"context"
	"testing"
	"time"

	"attendance-manager/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Employee{}, &Shift{}))

	require.NoError(t, db.Create([]Shift{
		{ID: "morning", Name: "Morning", StartTime: "08:00", EndTime: "16:00"},
		{ID: "late-start", Name: "Late Start", StartTime: "09:30", EndTime: "17:30"},
	}).Error)
	require.NoError(t, db.Create([]Employee{
		{Code: "E001", Name: "Alice Tan"},
		{Code: "E002", Name: "Budi Santoso", ShiftID: "morning"},
		{Code: "E003", Name: "Citra Dewi", ShiftID: "night"},
	}).Error)

	return db
}

func TestSnapshotThreshold(t *testing.T) {
	snap := &Snapshot{
		Employees: map[string]Employee{
			"E001": {Code: "E001", Name: "Alice Tan"},
			"E002": {Code: "E002", Name: "Budi Santoso", ShiftID: "morning"},
			"E003": {Code: "E003", Name: "Citra Dewi", ShiftID: "night"},
		},
		Shifts: map[string]Shift{
			"morning": {ID: "morning", StartTime: "08:00"},
		},
	}

	// Employee without a shift, with a known shift, with a dangling shift
	// id, and unknown entirely.
	assert.Equal(t, DefaultThreshold, snap.Threshold("E001"))
	assert.Equal(t, "08:00", snap.Threshold("E002"))
	assert.Equal(t, DefaultThreshold, snap.Threshold("E003"))
	assert.Equal(t, DefaultThreshold, snap.Threshold("Z999"))
}

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()

	snap, err := NewStaticProvider(nil).Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Employees)

	fixed := &Snapshot{
		Employees: map[string]Employee{"E001": {Code: "E001", Name: "Alice Tan"}},
		Shifts:    map[string]Shift{},
	}
	snap, err = NewStaticProvider(fixed).Snapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, fixed, snap)
}

func TestGormProvider_Snapshot(t *testing.T) {
	ctx := context.Background()
	provider := NewGormProvider(newSeededDB(t), time.Minute)

	snap, err := provider.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Employees, 3)
	assert.Len(t, snap.Shifts, 2)

	emp, ok := snap.Employee("E002")
	require.True(t, ok)
	assert.Equal(t, "Budi Santoso", emp.Name)
	assert.Equal(t, "08:00", snap.Threshold("E002"))
	assert.Equal(t, "09:30", snap.Shifts["late-start"].StartTime)
	// Dangling shift assignment falls back to the default.
	assert.Equal(t, DefaultThreshold, snap.Threshold("E003"))
}

func TestGormProvider_CachesWithinTTL(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	provider := NewGormProvider(db, time.Minute)

	first, err := provider.Snapshot(ctx)
	require.NoError(t, err)

	// A roster change is invisible until the cache expires or is dropped.
	require.NoError(t, db.Create(&Employee{Code: "E004", Name: "Dewi Lestari"}).Error)

	cached, err := provider.Snapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, first, cached)

	provider.Invalidate()
	fresh, err := provider.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh.Employees, 4)
}

func TestGormProvider_ZeroTTLAlwaysReloads(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	provider := NewGormProvider(db, 0)

	_, err := provider.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, db.Create(&Employee{Code: "E004", Name: "Dewi Lestari"}).Error)

	snap, err := provider.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Employees, 4)
}
