package repository_test

import (
	"context"
	"testing"

	"travelclock/config"
	"travelclock/internal/domains/location/model"
	"travelclock/internal/domains/location/repository"
	"travelclock/shared/constant"
	"travelclock/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	repo := repository.New(&config.Config{})

	locations, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.Defaults, locations)
	assert.Equal(t, "New York", locations[0].Name)
}

func TestGetAll_ReturnsCopy(t *testing.T) {
	repo := repository.New(&config.Config{})

	locations, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	locations[0].Name = "Gotham"

	again, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "New York", again[0].Name)
}

func TestNewFromEntries(t *testing.T) {
	repo := repository.NewFromEntries([]string{
		"Oslo=Europe/Oslo",
		" Chicago = America/Chicago ",
		"Atlantis=Ocean/Atlantis",
		"no-separator",
		"=Europe/Paris",
	})

	locations, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.Location{
		{Name: "Oslo", Zone: "Europe/Oslo", Pattern: constant.PatternDefault},
		{Name: "Chicago", Zone: "America/Chicago", Pattern: constant.PatternUS},
	}, locations)
}

func TestNewFromEntries_AllInvalidFallsBack(t *testing.T) {
	repo := repository.NewFromEntries([]string{"Atlantis=Ocean/Atlantis"})

	locations, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, locations, len(model.Defaults))
}

func TestGet(t *testing.T) {
	repo := repository.New(&config.Config{})

	tests := []struct {
		name     string
		query    string
		wantZone string
		wantErr  bool
	}{
		{name: "exact name", query: "Tokyo", wantZone: "Asia/Tokyo"},
		{name: "case insensitive", query: "los angeles", wantZone: "America/Los_Angeles"},
		{name: "menu number", query: "8", wantZone: "Asia/Singapore"},
		{name: "menu number zero", query: "0", wantErr: true},
		{name: "menu number too large", query: "9", wantErr: true},
		{name: "unknown name", query: "Gotham", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Get(context.Background(), tt.query)

			if tt.wantErr {
				assert.True(t, failure.IsReason(err, failure.ReasonNotFound))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantZone, got.Zone)
		})
	}
}
