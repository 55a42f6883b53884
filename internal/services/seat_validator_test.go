package services

import (
	"strings"
	"testing"
)

func TestValidateSeat_Valid(t *testing.T) {
	cases := []struct {
		name       string
		row, seat  int
		rows, sipr int
	}{
		{"middle of cabin", 7, 5, 15, 10},
		{"first seat", 1, 1, 15, 10},
		{"last seat", 15, 10, 15, 10},
		{"single seat airplane", 1, 1, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateSeat(tc.row, tc.seat, tc.rows, tc.sipr); err != nil {
				t.Errorf("expected valid seat, got %v", err)
			}
		})
	}
}

func TestValidateSeat_RowOutOfRange(t *testing.T) {
	err := ValidateSeat(16, 5, 15, 10)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msgs, ok := err.Fields["row"]
	if !ok || len(msgs) != 1 {
		t.Fatalf("expected one row error, got %v", err.Fields)
	}
	if msgs[0] != "row number must be in available range: (1, rows): (1, 15)" {
		t.Errorf("unexpected message: %q", msgs[0])
	}
	if _, ok := err.Fields["seat"]; ok {
		t.Error("seat was in range, should not be reported")
	}
}

func TestValidateSeat_SeatOutOfRange(t *testing.T) {
	err := ValidateSeat(7, 11, 15, 10)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msgs, ok := err.Fields["seat"]
	if !ok || len(msgs) != 1 {
		t.Fatalf("expected one seat error, got %v", err.Fields)
	}
	if !strings.Contains(msgs[0], "(1, 10)") {
		t.Errorf("message should name the seat range: %q", msgs[0])
	}
	if _, ok := err.Fields["row"]; ok {
		t.Error("row was in range, should not be reported")
	}
}

func TestValidateSeat_BothOutOfRange(t *testing.T) {
	err := ValidateSeat(0, 0, 15, 10)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if _, ok := err.Fields["row"]; !ok {
		t.Error("row error missing")
	}
	if _, ok := err.Fields["seat"]; !ok {
		t.Error("seat error missing")
	}
}

func TestValidateSeat_LowerBound(t *testing.T) {
	for _, tc := range []struct{ row, seat int }{{0, 5}, {-3, 5}, {7, 0}, {7, -1}} {
		if err := ValidateSeat(tc.row, tc.seat, 15, 10); err == nil {
			t.Errorf("row=%d seat=%d should be invalid", tc.row, tc.seat)
		}
	}
}

func TestAvailableSeats(t *testing.T) {
	cases := []struct {
		capacity, tickets, want int
	}{
		{150, 0, 150},
		{150, 150, 0},
		{150, 37, 113},
		{1, 1, 0},
	}
	for _, tc := range cases {
		if got := AvailableSeats(tc.capacity, tc.tickets); got != tc.want {
			t.Errorf("AvailableSeats(%d, %d) = %d, want %d", tc.capacity, tc.tickets, got, tc.want)
		}
	}
}
