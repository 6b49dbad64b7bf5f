package listings

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCoerceFlag(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{token: "True", want: true},
		{token: "", want: false},
		{token: "true", want: false},
		{token: "TRUE", want: false},
		{token: "False", want: false},
		{token: "false", want: false},
		{token: "0", want: false},
		{token: "1", want: false},
		{token: "y", want: false},
		{token: " True", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := CoerceFlag(tt.token); got != tt.want {
				t.Errorf("CoerceFlag(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestSeekingFlagUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want SeekingFlag
	}{
		{name: "affirmative token", raw: `"True"`, want: true},
		{name: "other token", raw: `"False"`, want: false},
		{name: "empty token", raw: `""`, want: false},
		{name: "json boolean", raw: `true`, want: false},
		{name: "json number", raw: `1`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in VenueInput
			body := `{"seeking_talent":` + tt.raw + `}`
			if err := json.Unmarshal([]byte(body), &in); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if in.SeekingTalent != tt.want {
				t.Errorf("SeekingTalent = %v, want %v", in.SeekingTalent, tt.want)
			}
		})
	}
}

func TestShowInputDecoding(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantStart time.Time
		wantErr   bool
	}{
		{
			name:      "form layout with string ids",
			body:      `{"artist_id":"4","venue_id":"1","start_time":"2035-04-01 20:00:00"}`,
			wantStart: time.Date(2035, 4, 1, 20, 0, 0, 0, time.Local),
		},
		{
			name:      "rfc3339 with numeric ids",
			body:      `{"artist_id":4,"venue_id":1,"start_time":"2035-04-01T20:00:00Z"}`,
			wantStart: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage start time",
			body:    `{"artist_id":4,"venue_id":1,"start_time":"next friday"}`,
			wantErr: true,
		},
		{
			name:    "non-numeric id",
			body:    `{"artist_id":"abc","venue_id":1,"start_time":"2035-04-01 20:00:00"}`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			body:    `{"artist_id":4,"venue_id":1,"start_time":"2035-04-01 20:00:00","csrf":"x"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in ShowInput
			err := Decode("create show", strings.NewReader(tt.body), &in)
			if tt.wantErr {
				if KindOf(err) != KindValidation {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if in.ArtistID != 4 || in.VenueID != 1 {
				t.Errorf("unexpected ids %d/%d", in.ArtistID, in.VenueID)
			}
			if !in.StartTime.Equal(tt.wantStart) {
				t.Errorf("StartTime = %v, want %v", in.StartTime.Time, tt.wantStart)
			}
		})
	}
}

func TestDecodeRejectsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated", body: `{"name":`},
		{name: "trailing text", body: `{"name":"x"} junk`},
		{name: "second object", body: `{"name":"x"}{"name":"y"}`},
		{name: "trailing brace", body: `{"name":"x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in VenueInput
			err := Decode("create venue", strings.NewReader(tt.body), &in)
			if KindOf(err) != KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestDecodeAllowsTrailingWhitespace(t *testing.T) {
	var in VenueInput
	if err := Decode("create venue", strings.NewReader("{\"name\":\"x\"}\n  "), &in); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if in.Name != "x" {
		t.Errorf("Name = %q, want x", in.Name)
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{
			name:  "complete venue",
			input: VenueInput{Name: "Hop", City: "San Francisco", State: "CA", Address: "1 Folsom"},
		},
		{
			name:    "venue missing address",
			input:   VenueInput{Name: "Hop", City: "San Francisco", State: "CA"},
			wantErr: true,
		},
		{
			name:  "empty patch",
			input: VenuePatch{},
		},
		{
			name:    "patch blanking a required column",
			input:   ArtistPatch{Name: ptr("")},
			wantErr: true,
		},
		{
			name:  "patch blanking an optional column",
			input: ArtistPatch{Phone: ptr("")},
		},
		{
			name:    "show without start time",
			input:   ShowInput{ArtistID: 1, VenueID: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput("test", tt.input)
			if tt.wantErr && KindOf(err) != KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPatchAssignments(t *testing.T) {
	flag := SeekingFlag(true)
	genres := []string{"Folk"}
	patch := VenuePatch{
		Name:          ptr("Renamed"),
		Genres:        &genres,
		SeekingTalent: &flag,
	}

	set := patch.assignments()

	want := []string{"name", "genres", "seeking_talent"}
	if len(set) != len(want) {
		t.Fatalf("got %d assignments, want %d", len(set), len(want))
	}
	for i, col := range want {
		if set[i].Column != col {
			t.Errorf("set[%d].Column = %q, want %q", i, set[i].Column, col)
		}
	}
	if set[2].Value != true {
		t.Errorf("seeking_talent value = %v, want true", set[2].Value)
	}
}

func TestPayloadName(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{body: `{"name":"The Musical Hop"}`, want: "The Musical Hop"},
		{body: `{"name":42}`, want: ""},
		{body: `{"city":"x"}`, want: ""},
		{body: `not json`, want: ""},
		{body: ``, want: ""},
	}

	for _, tt := range tests {
		if got := PayloadName([]byte(tt.body)); got != tt.want {
			t.Errorf("PayloadName(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}

func ptr(s string) *string {
	return &s
}
