package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMarshalFixedMillisecondPrecision(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "whole second",
			in:   time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			want: `"2024-01-15T10:30:00.000Z"`,
		},
		{
			name: "with milliseconds",
			in:   time.Date(2024, 1, 15, 10, 30, 0, 123_000_000, time.UTC),
			want: `"2024-01-15T10:30:00.123Z"`,
		},
		{
			name: "nanoseconds truncated",
			in:   time.Date(2024, 1, 15, 10, 30, 0, 123_456_789, time.UTC),
			want: `"2024-01-15T10:30:00.123Z"`,
		},
		{
			name: "non-utc normalized",
			in:   time.Date(2024, 1, 15, 12, 30, 0, 0, time.FixedZone("EET", 2*3600)),
			want: `"2024-01-15T10:30:00.000Z"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(NewTime(tt.in))
			if err != nil {
				t.Fatalf("json marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Fatalf("got %s, want %s", data, tt.want)
			}
		})
	}
}

func TestUnmarshalAcceptsRFC3339Variants(t *testing.T) {
	tests := []string{
		`"2024-01-15T10:30:00Z"`,
		`"2024-01-15T10:30:00.123Z"`,
		`"2024-01-15T10:30:00.123456789Z"`,
		`"2024-01-15T12:30:00+02:00"`,
	}

	for _, in := range tests {
		var ts Time
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Errorf("unmarshal %s: %v", in, err)
			continue
		}
		if !ts.Equal(time.Date(2024, 1, 15, 10, 30, 0, int(ts.Nanosecond()), time.UTC)) {
			t.Errorf("unmarshal %s: unexpected instant %v", in, ts.Time)
		}
	}
}

func TestUnmarshalNullPreservesValue(t *testing.T) {
	ts := NewTime(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	if err := json.Unmarshal([]byte("null"), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.IsZero() {
		t.Fatal("null must not zero the existing value")
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	var ts Time
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRoundTrip(t *testing.T) {
	in := NewTime(time.Date(2024, 6, 1, 8, 0, 0, 500_000_000, time.UTC))
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}

	var out Time
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if !out.Equal(in.Time) {
		t.Fatalf("round trip changed instant: %v != %v", out.Time, in.Time)
	}
}

func TestNowIsRecent(t *testing.T) {
	now := Now()
	if d := time.Since(now.Time); d < 0 || d > time.Minute {
		t.Fatalf("Now() returned implausible time: %v", now.Time)
	}
}
