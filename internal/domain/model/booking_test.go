package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		tickets   int
		available int
		wantErr   error
	}{
		{name: "zero tickets", tickets: 0, available: 10, wantErr: ErrTooFewTickets},
		{name: "negative tickets", tickets: -2, available: 10, wantErr: ErrTooFewTickets},
		{name: "more than available", tickets: 11, available: 10, wantErr: ErrTooManyTickets},
		{name: "sold out", tickets: 1, available: 0, wantErr: ErrTooManyTickets},
		{name: "exactly available", tickets: 10, available: 10},
		{name: "single ticket", tickets: 1, available: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BookingRequest{NumberOfTickets: tt.tickets, EventID: 1}
			err := req.Validate(tt.available)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
