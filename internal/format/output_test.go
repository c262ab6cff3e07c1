package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tripboard/internal/model"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "00M"},
		{in: 30*time.Minute + 59*time.Second, want: "30M"},
		{in: 95 * time.Minute, want: "01H 35M"},
		{in: 26*time.Hour + 5*time.Minute, want: "01D 02H 05M"},
		{in: -time.Hour, want: "00M"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%s): got %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrite_JSONAndText(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 3, 18, 12, 25, 0, 0, time.UTC)
	evs := []model.Event{{
		ID: "ev-1", Type: model.EventTypeFlight, Destination: "Chamonix",
		DateFrom: from, DateTo: from.Add(95 * time.Minute), BasePrice: 160, IsFavorite: true,
	}}

	var js bytes.Buffer
	if err := Write(&js, evs, "json", false); err != nil {
		t.Fatalf("json: %v", err)
	}
	var back []map[string]any
	if err := json.Unmarshal(js.Bytes(), &back); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if back[0]["id"] != "ev-1" || back[0]["basePrice"] != float64(160) {
		t.Fatalf("unexpected json: %v", back[0])
	}

	var txt bytes.Buffer
	if err := Write(&txt, evs, "text", false); err != nil {
		t.Fatalf("text: %v", err)
	}
	out := txt.String()
	for _, want := range []string{"DESTINATION", "Chamonix", "Mar 18 12:25", "01H 35M", "160"} {
		if !strings.Contains(out, want) {
			t.Fatalf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWrite_TextFallsBackToJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"count": 3}, "text", false); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `"count": 3`) {
		t.Fatalf("expected indented JSON, got %q", buf.String())
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, nil, "edn", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
