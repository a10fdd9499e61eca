package main

import (
	"errors"
	"flag"
	"net/http"
	"time"

	"github.com/evently/evently-ui/internal/adapters/bookingapi"
	"github.com/evently/evently-ui/internal/domain/model"
)

// sampleEvents is a small fixture set for local development against a
// fresh booking API.
func sampleEvents(start time.Time) []model.CreateEventRequest {
	return []model.CreateEventRequest{
		{
			Title:        "Go Conference",
			Description:  "Two days of talks on services, tooling, and the runtime.",
			Date:         start.AddDate(0, 0, 14),
			Venue:        "Harbor Convention Center",
			TotalTickets: 250,
			Price:        149,
		},
		{
			Title:        "Jazz Evening",
			Description:  "An open-air quartet session by the river.",
			Date:         start.AddDate(0, 0, 21),
			Venue:        "Riverside Amphitheater",
			TotalTickets: 120,
			Price:        35,
		},
		{
			Title:        "Food Truck Festival",
			Description:  "Thirty trucks, one parking lot, zero regrets.",
			Date:         start.AddDate(0, 1, 0),
			Venue:        "Old Market Square",
			TotalTickets: 500,
			Price:        10,
		},
	}
}

// runSeedEvents signs in as an admin and creates the sample events.
func runSeedEvents(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("seed-events", flag.ContinueOnError)
	email := fs.String("email", "", "admin account email (required)")
	password := fs.String("password", "", "admin account password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("both -email and -password are required")
	}

	client, err := bookingapi.NewClient(bookingapi.Config{
		BaseURL:    ctx.Config.API.BaseURL,
		HTTPClient: &http.Client{Timeout: ctx.Config.API.Timeout},
	})
	if err != nil {
		return err
	}

	token, err := client.ExchangeCredentials(ctx.Ctx, *email, *password)
	if err != nil {
		return err
	}

	for _, req := range sampleEvents(time.Now()) {
		event, createErr := client.CreateEvent(ctx.Ctx, token, req)
		if createErr != nil {
			return createErr
		}
		ctx.Logger.InfoContext(ctx.Ctx, "event created",
			"event_id", event.ID, "title", event.Title)
	}

	return nil
}
