package timefmt

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{"00:00", 0, 0, false},
		{"09:30", 9, 30, false},
		{"9:30", 9, 30, false},
		{"23:59", 23, 59, false},
		{"12:05", 12, 5, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"1:5", 0, 0, true},
		{"ab:cd", 0, 0, true},
		{"12", 0, 0, true},
		{"", 0, 0, true},
		{"12:30:00", 0, 0, true},
		{"-1:30", 0, 0, true},
		{" 12:30", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			hour, minute, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = (%d, %d), want error", tt.input, hour, minute)
				}
				if !errors.Is(err, ErrBadClock) {
					t.Errorf("Parse(%q) error = %v, want ErrBadClock", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if hour != tt.wantHour || minute != tt.wantMinute {
				t.Errorf("Parse(%q) = (%d, %d), want (%d, %d)",
					tt.input, hour, minute, tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		use24h bool
		want   string
	}{
		{"24h afternoon", 14, 5, true, "14:05"},
		{"12h afternoon", 14, 5, false, "02:05 PM"},
		{"24h midnight", 0, 0, true, "00:00"},
		{"12h midnight is 12 AM", 0, 0, false, "12:00 AM"},
		{"12h noon is 12 PM", 12, 0, false, "12:00 PM"},
		{"12h late evening", 23, 59, false, "11:59 PM"},
		{"12h morning", 9, 7, false, "09:07 AM"},
		{"24h morning", 9, 7, true, "09:07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.hour, tt.minute, tt.use24h)
			if got != tt.want {
				t.Errorf("Format(%d, %d, %v) = %q, want %q",
					tt.hour, tt.minute, tt.use24h, got, tt.want)
			}
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := FormatSeconds(14, 5, 9, true); got != "14:05:09" {
		t.Errorf("FormatSeconds 24h = %q, want 14:05:09", got)
	}
	if got := FormatSeconds(14, 5, 9, false); got != "02:05:09 PM" {
		t.Errorf("FormatSeconds 12h = %q, want 02:05:09 PM", got)
	}
	if got := FormatSeconds(0, 0, 0, false); got != "12:00:00 AM" {
		t.Errorf("FormatSeconds midnight = %q, want 12:00:00 AM", got)
	}
}
