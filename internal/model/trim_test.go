package model

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{-time.Second, "00:00.0"},
		{0, "00:00.0"},
		{1500 * time.Millisecond, "00:01.5"},
		{90 * time.Second, "01:30.0"},
		{time.Hour, "01:00:00.0"},
		{time.Hour + time.Minute + time.Second + 250*time.Millisecond, "01:01:01.2"},
	}

	for _, test := range tests {
		result := FormatTimestamp(test.d)
		if result != test.expected {
			t.Errorf("FormatTimestamp(%v) = %s, expected %s", test.d, result, test.expected)
		}
	}
}

func TestTrimRange_DurationAndValid(t *testing.T) {
	tests := []struct {
		r        TrimRange
		duration time.Duration
		valid    bool
	}{
		{TrimRange{Start: 0, End: 10 * time.Second}, 10 * time.Second, true},
		{TrimRange{Start: 5 * time.Second, End: 5 * time.Second}, 0, false},
		{TrimRange{Start: 8 * time.Second, End: 2 * time.Second}, 0, false},
		{TrimRange{Start: -time.Second, End: 2 * time.Second}, 3 * time.Second, false},
	}

	for _, test := range tests {
		if got := test.r.Duration(); got != test.duration {
			t.Errorf("%v.Duration() = %v, expected %v", test.r, got, test.duration)
		}
		if got := test.r.Valid(); got != test.valid {
			t.Errorf("%v.Valid() = %v, expected %v", test.r, got, test.valid)
		}
	}
}

func TestTrimRange_Clamp(t *testing.T) {
	r := TrimRange{Start: -2 * time.Second, End: 2 * time.Minute}
	got := r.Clamp(time.Minute)

	if got.Start != 0 || got.End != time.Minute {
		t.Errorf("Clamp() = %v, expected [0, 1m]", got)
	}
}

func TestRangeFromSliderValues(t *testing.T) {
	total := 200 * time.Second

	got := RangeFromSliderValues(25, 75, 100, total)
	if got.Start != 50*time.Second || got.End != 150*time.Second {
		t.Errorf("RangeFromSliderValues() = %v, expected 00:50.0 - 02:30.0", got)
	}

	if empty := RangeFromSliderValues(25, 75, 0, total); empty != (TrimRange{}) {
		t.Errorf("Expected empty range for zero max value, got %v", empty)
	}
}

func TestTrimRange_SliderValues(t *testing.T) {
	total := 40 * time.Second
	r := TrimRange{Start: 10 * time.Second, End: 30 * time.Second}

	minValue, maxValue := r.SliderValues(100, total)
	if minValue != 25 || maxValue != 75 {
		t.Errorf("SliderValues() = (%v, %v), expected (25, 75)", minValue, maxValue)
	}

	minValue, maxValue = r.SliderValues(100, 0)
	if minValue != 0 || maxValue != 100 {
		t.Errorf("SliderValues() with unknown duration = (%v, %v), expected (0, 100)", minValue, maxValue)
	}
}

func TestExportTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		input    string
		output   string
		expected string
	}{
		{"/videos/holiday.mp4", "/out/holiday-trim-00m05s-00m10s.mp4", "holiday-trim-00m05s-00m10s"},
		{"/videos/holiday.mp4", "", "holiday"},
		{"", "", ""},
	}

	for _, test := range tests {
		task := &ExportTask{InputPath: test.input, OutputPath: test.output}
		if got := task.GetDisplayTitle(); got != test.expected {
			t.Errorf("GetDisplayTitle() with input=%q output=%q = %q, expected %q",
				test.input, test.output, got, test.expected)
		}
	}
}
