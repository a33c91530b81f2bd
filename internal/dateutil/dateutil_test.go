package dateutil

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestTruncateToDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.UTC)
	got := TruncateToDay(input)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFirstOfMonth(t *testing.T) {
	got := FirstOfMonth(time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC))
	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "monday", want: 1},
		{input: "Sunday", want: 0},
		{input: " SATURDAY ", want: 6},
		{input: "wed", want: 3},
		{input: "Thu", want: 4},
		{input: "0", want: 0},
		{input: "6", want: 6},
		{input: "7", wantErr: true},
		{input: "-1", wantErr: true},
		{input: "mo", wantErr: true},
		{input: "funday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWeekday) {
					t.Fatalf("got error %v, want %v", err, ErrInvalidWeekday)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekdayNames(t *testing.T) {
	if got := WeekdayName(1); got != "monday" {
		t.Errorf("WeekdayName(1) = %q, want monday", got)
	}
	if got := WeekdayName(-1); got != "saturday" {
		t.Errorf("WeekdayName(-1) = %q, want saturday", got)
	}
	if got := WeekdayDisplayName(3); got != "Wednesday" {
		t.Errorf("WeekdayDisplayName(3) = %q, want Wednesday", got)
	}
}

func TestParseMonth(t *testing.T) {
	// Reference date: Saturday, January 31, 2025
	ref := time.Date(2025, 1, 31, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{name: "empty keeps the day", input: "", want: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
		{name: "today keyword", input: "TODAY", want: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
		{name: "this month", input: "this", want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "next month does not overflow", input: "next", want: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "prev rolls year", input: "prev", want: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "previous alias", input: "previous", want: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "positive offset", input: "+12", want: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "negative offset", input: "-13", want: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "year month", input: "2024-02", want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "full date", input: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "bad offset", input: "+x", wantErr: ErrInvalidMonthFormat},
		{name: "bad month", input: "2024-13", wantErr: ErrInvalidMonthFormat},
		{name: "garbage", input: "soon", wantErr: ErrInvalidMonthFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.input, ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDayList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{name: "single", input: "7", want: []int{7}},
		{name: "list", input: "7, 8,21", want: []int{7, 8, 21}},
		{name: "range", input: "9-11", want: []int{9, 10, 11}},
		{name: "mixed", input: "1,9-10,50", want: []int{1, 9, 10, 50}},
		{name: "trailing comma", input: "3,", want: []int{3}},
		{name: "empty", input: "", wantErr: true},
		{name: "word", input: "seven", wantErr: true},
		{name: "reversed range", input: "10-9", wantErr: true},
		{name: "full month range", input: "1-31", want: fullMonth()},
		{name: "range past month end", input: "1-200000000", wantErr: true},
		{name: "range end past 31", input: "30-32", wantErr: true},
		{name: "range from zero", input: "0-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDayList(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDayList) {
					t.Fatalf("got error %v, want %v", err, ErrInvalidDayList)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDayArgs(t *testing.T) {
	got, err := ParseDayArgs([]string{"7", "9-10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{7, 9, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func fullMonth() []int {
	days := make([]int, 31)
	for i := range days {
		days[i] = i + 1
	}
	return days
}
