package nutrient

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0.00"},
		{70, "70.00"},
		{100, "100.00"},
		{123.456, "123.46"},
		{-33.333333333333336, "-33.33"},
		{66.66666666666666, "66.67"},
		// Exact binary ties round away from zero
		{0.125, "0.13"},
		{-0.125, "-0.13"},
		// Stored slightly below the tie
		{1.005, "1.00"},
		{2.675, "2.67"},
		{0.045, "0.04"},
		// Stored slightly above the tie
		{0.005, "0.01"},
		{1.455, "1.46"},
		// Carry into the integer part
		{9.999, "10.00"},
		{-99.995, "-100.00"},
		// Sign handling around zero
		{-0.001, "-0.00"},
		{math.Copysign(0, -1), "0.00"},
		// Non-finite and huge values
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
		{1e21, "1e+21"},
		{-1.5e25, "-1.5e+25"},
	}

	for _, tc := range tests {
		got := FormatFixed(tc.input, 2)
		if got != tc.want {
			t.Errorf("FormatFixed(%v, 2) = %q; want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatFixed_Digits(t *testing.T) {
	tests := []struct {
		input  float64
		digits int
		want   string
	}{
		{2.5, 0, "3"},
		{-2.5, 0, "-3"},
		{0.4, 0, "0"},
		{1.23456, 4, "1.2346"},
		{1.5, -1, "2"},
	}

	for _, tc := range tests {
		got := FormatFixed(tc.input, tc.digits)
		if got != tc.want {
			t.Errorf("FormatFixed(%v, %d) = %q; want %q", tc.input, tc.digits, got, tc.want)
		}
	}
}

func TestComparisonString(t *testing.T) {
	c := Comparison{Name: "Calories", Difference: 70, Percentage: 100}
	want := "Calories: Difference = 70.00, Difference in % = 100.00%"
	if got := c.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	comparisons := []Comparison{
		{Name: "Calories", Difference: -28, Percentage: -40},
		{Name: "Salt (mg)", Difference: 0, Percentage: 0},
	}

	if err := WriteReport(&buf, comparisons); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	want := "Calories: Difference = -28.00, Difference in % = -40.00%\n" +
		"Salt (mg): Difference = 0.00, Difference in % = 0.00%\n"
	if buf.String() != want {
		t.Errorf("report = %q; want %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReport_WriterError(t *testing.T) {
	err := WriteReport(failingWriter{}, []Comparison{{Name: "Calories"}})
	if err == nil {
		t.Fatal("expected error from failing writer, got nil")
	}
}
