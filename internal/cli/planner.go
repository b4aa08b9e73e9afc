package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"travelclock/infras/otel"
	clockDto "travelclock/internal/domains/clock/model/dto"
	clockService "travelclock/internal/domains/clock/service"
	flightDto "travelclock/internal/domains/flight/model/dto"
	flightService "travelclock/internal/domains/flight/service"
	"travelclock/shared/constant"
	"travelclock/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	choiceUTC = iota
	choiceWorld
	choiceFlight
	choiceCompare
	choiceExit
)

var menu = []string{
	"View current UTC time",
	"View times around the world",
	"Plan a flight",
	"Compare home and destination times",
	"Exit",
}

// Planner is the interactive travel booking menu.
type Planner struct {
	prompter Prompter
	out      io.Writer
	clock    clockService.Clock
	flight   flightService.Flight
	otel     otel.Otel
}

func New(prompter Prompter, out io.Writer, clock clockService.Clock, flight flightService.Flight, otel otel.Otel) *Planner {
	return &Planner{
		prompter: prompter,
		out:      out,
		clock:    clock,
		flight:   flight,
		otel:     otel,
	}
}

// Run shows the menu until the user exits. Bad answers are reported and the
// menu is shown again; only prompt failures end the loop early.
func (p *Planner) Run(ctx context.Context) error {
	p.printf("\n===== GLOBAL TRAVEL BOOKING SYSTEM - TIME DISPLAY =====\n")

	for {
		choice, err := p.prompter.Select(ctx, SelectConfig{
			Message: "Select an option:",
			Options: menu,
		})
		if err != nil {
			return p.stop(err)
		}

		switch choice {
		case choiceUTC:
			p.showUTC(ctx)
		case choiceWorld:
			p.showWorld(ctx)
		case choiceFlight:
			err = p.planFlight(ctx)
		case choiceCompare:
			err = p.compare(ctx)
		case choiceExit:
			p.printf("\nThank you for using the Global Travel Booking System. Goodbye!\n")

			return nil
		default:
			p.printf("\nInvalid choice. Please enter a number between 1 and %d.\n", len(menu))
		}

		if err != nil {
			return p.stop(err)
		}
	}
}

// Close flushes pending traces.
func (p *Planner) Close(ctx context.Context) error {
	return p.otel.Shutdown(ctx)
}

func (p *Planner) stop(err error) error {
	if errors.Is(err, ErrAborted) {
		p.printf("\nGoodbye!\n")

		return nil
	}

	return err
}

func (p *Planner) showUTC(ctx context.Context) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelCLIScopeName, constant.OtelCLIScopeName+".ShowUTC")
	defer scope.End()

	res, err := p.clock.UTC(ctx)
	if err != nil {
		scope.TraceError(err)
		p.printf("\nError: %s\n", err)

		return
	}

	p.printf("\nCurrent UTC Time: %s\n", res.Formatted)
}

func (p *Planner) showWorld(ctx context.Context) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelCLIScopeName, constant.OtelCLIScopeName+".ShowWorld")
	defer scope.End()

	res, err := p.clock.WorldClock(ctx, clockDto.WorldClockQuery{})
	if err != nil {
		scope.TraceError(err)
		p.printf("\nError: %s\n", err)

		return
	}

	p.printf("\n----- CURRENT TIMES AROUND THE WORLD -----\n")

	for _, city := range res.Cities {
		p.printf("%s: %s\n", city.City, city.Formatted)
	}
}

func (p *Planner) planFlight(ctx context.Context) error {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelCLIScopeName, constant.OtelCLIScopeName+".PlanFlight")
	defer scope.End()

	p.printf("\n----- FLIGHT BOOKING PLANNER -----\n")

	cities, ok, err := p.pickCities(ctx, "Select departure city:", "Select arrival city:")
	if err != nil || !ok {
		return err
	}

	p.printf("\nEnter departure date and time:\n")

	date, err := p.prompter.Input(ctx, InputConfig{
		Message:   "Enter date:",
		Help:      "Date format: YYYY-MM-DD (e.g., 2025-03-20)",
		Validator: layoutValidator("datetime=2006-01-02", "please use YYYY-MM-DD format for date"),
	})
	if err != nil {
		return err
	}

	clock, err := p.prompter.Input(ctx, InputConfig{
		Message:   "Enter time:",
		Help:      "Time format: HH:MM in 24-hour format (e.g., 14:30)",
		Validator: layoutValidator("datetime=15:04", "please use HH:MM format for time"),
	})
	if err != nil {
		return err
	}

	rawDuration, err := p.prompter.Input(ctx, InputConfig{
		Message: "Enter flight duration:",
		Help:    "Flight duration in hours (e.g., 8.5 for 8 hours 30 minutes)",
	})
	if err != nil {
		return err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(rawDuration), 64)
	if err != nil {
		p.printf("Invalid input. Please enter numbers only.\n")

		return nil
	}

	res, err := p.flight.Plan(ctx, flightDto.PlanRequest{
		Departure:     cities[0],
		Arrival:       cities[1],
		Date:          date,
		Time:          clock,
		DurationHours: duration,
	})
	if err != nil {
		scope.TraceError(err)
		p.printf("Error in flight planning: %s\n", err)

		return nil
	}

	p.printf("\n----- FLIGHT DETAILS -----\n")
	p.printf("Flight: %s to %s\n", res.Departure.City, res.Arrival.City)
	p.printf("Departure: %s\n", res.Departure.Formatted)
	p.printf("Arrival: %s\n", res.Arrival.Formatted)
	p.printf("Time Difference: %s\n", res.Display)

	return nil
}

func (p *Planner) compare(ctx context.Context) error {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelCLIScopeName, constant.OtelCLIScopeName+".Compare")
	defer scope.End()

	p.printf("\n----- TRAVELER TIME COMPARISON -----\n")

	cities, ok, err := p.pickCities(ctx, "Select your home city:", "Select your destination city:")
	if err != nil || !ok {
		return err
	}

	res, err := p.clock.Compare(ctx, cities[0], cities[1])
	if err != nil {
		scope.TraceError(err)
		p.printf("Error in time comparison: %s\n", err)

		return nil
	}

	p.printf("\nYour current time (%s): %s\n", res.Home.City, res.Home.Formatted)
	p.printf("Destination time (%s): %s\n", res.Destination.City, res.Destination.Formatted)
	p.printf("Time Difference: %s\n", res.Difference.Display)

	return nil
}

// pickCities asks for two cities from the location table. ok is false when a
// selection is out of range.
func (p *Planner) pickCities(ctx context.Context, first, second string) ([2]string, bool, error) {
	var picked [2]string

	locations, err := p.clock.Locations(ctx)
	if err != nil {
		p.printf("\nError: %s\n", err)

		return picked, false, nil
	}

	names := make([]string, len(locations))
	for i, loc := range locations {
		names[i] = loc.Name
	}

	for i, message := range []string{first, second} {
		idx, err := p.prompter.Select(ctx, SelectConfig{Message: message, Options: names, PageSize: len(names)})
		if err != nil {
			return picked, false, err
		}

		if idx < 0 || idx >= len(names) {
			p.printf("Invalid city selection.\n")

			return picked, false, nil
		}

		picked[i] = names[idx]
	}

	return picked, true, nil
}

func layoutValidator(tag, hint string) func(string) error {
	return func(value string) error {
		if err := validator.ValidateVar(strings.TrimSpace(value), tag); err != nil {
			return errors.New(hint)
		}

		return nil
	}
}

func (p *Planner) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		log.Warn().Err(err).Msg("failed to write to terminal")
	}
}
