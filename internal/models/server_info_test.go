package models

import (
	"encoding/json"
	"testing"
	"time"
)

const serverInfoJSON = `{
	"cobalt": {
		"version": "10.5.1",
		"url": "http://127.0.0.1:9000",
		"startTime": "1724140800000",
		"durationLimit": 10800,
		"services": ["twitter", "youtube", "tiktok"]
	},
	"git": {
		"commit": "a1b2c3d",
		"branch": "main",
		"remote": "imputnet/cobalt"
	}
}`

func TestServerInfo_Unmarshal(t *testing.T) {
	var info ServerInfo
	if err := json.Unmarshal([]byte(serverInfoJSON), &info); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if info.Cobalt.Version != "10.5.1" {
		t.Errorf("Version = %q", info.Cobalt.Version)
	}
	if info.Cobalt.URL != "http://127.0.0.1:9000" {
		t.Errorf("URL = %q", info.Cobalt.URL)
	}
	if info.Cobalt.DurationLimit != 10800 {
		t.Errorf("DurationLimit = %d", info.Cobalt.DurationLimit)
	}
	if len(info.Cobalt.Services) != 3 || info.Cobalt.Services[0] != "twitter" {
		t.Errorf("Services = %v", info.Cobalt.Services)
	}
	if info.Git.Commit != "a1b2c3d" || info.Git.Branch != "main" {
		t.Errorf("Git = %+v", info.Git)
	}

	expected := time.UnixMilli(1724140800000)
	if !info.Cobalt.StartTime.Time().Equal(expected) {
		t.Errorf("StartTime = %v, want %v", info.Cobalt.StartTime.Time(), expected)
	}
}

func TestMillisTime_UnmarshalBareNumber(t *testing.T) {
	var m MillisTime
	if err := json.Unmarshal([]byte(`1724140800000`), &m); err != nil {
		t.Fatalf("Unmarshal bare number: %v", err)
	}
	if !m.Time().Equal(time.UnixMilli(1724140800000)) {
		t.Errorf("Time = %v", m.Time())
	}
}

func TestMillisTime_UnmarshalInvalid(t *testing.T) {
	var m MillisTime
	if err := json.Unmarshal([]byte(`"not-a-timestamp"`), &m); err == nil {
		t.Fatal("Expected error for non-numeric timestamp")
	}
}

func TestMillisTime_MarshalRoundTrip(t *testing.T) {
	original := MillisTime(time.UnixMilli(1724140800123))

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"1724140800123"` {
		t.Fatalf("Marshal = %s", string(data))
	}

	var decoded MillisTime
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !decoded.Time().Equal(original.Time()) {
		t.Errorf("Round trip mismatch: %v != %v", decoded.Time(), original.Time())
	}
}
