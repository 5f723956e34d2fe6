package printers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"tableflip.dev/chrono/pkg/schedule"
	"tableflip.dev/chrono/pkg/timeline"
)

func TestEncodeTimeline(t *testing.T) {
	tl := timeline.Group([]schedule.Item{
		{ID: "a", Title: "Gym", Tag: "sport", Time: schedule.StringPtr("18:00 - 19:00"), OtherTags: []string{}},
		{ID: "b", Title: "Report", Tag: "focus", OtherTags: []string{}},
	})

	var js bytes.Buffer
	if err := Encode(&js, FormatJSON, tl); err != nil {
		t.Fatalf("json: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(js.Bytes(), &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	buckets := decoded["buckets"].([]interface{})
	first := buckets[0].(map[string]interface{})
	if first["hour"].(float64) != 18 {
		t.Fatalf("unexpected bucket %v", first)
	}
	span := first["items"].([]interface{})[0].(map[string]interface{})["span"].(map[string]interface{})
	if span["start"] != "18:00" || span["end"] != "19:00" {
		t.Fatalf("unexpected span %v", span)
	}

	var ym bytes.Buffer
	if err := Encode(&ym, "YAML", tl); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var back map[string]interface{}
	if err := yaml.Unmarshal(ym.Bytes(), &back); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if !strings.Contains(ym.String(), "title: Report") {
		t.Fatalf("unexpected yaml:\n%s", ym.String())
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, "xml", struct{}{}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
