package render

import (
	"testing"

	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

func TestBuildPlan_Empty(t *testing.T) {
	plan := BuildPlan(nil, Config{ShowMarkers: true, DefaultDateLabel: "Date"})
	if !plan.Empty {
		t.Fatal("plan.Empty = false for no entries")
	}
	if plan.StartMarker || len(plan.Items) != 0 {
		t.Errorf("empty plan must carry no markers or items: %+v", plan)
	}
}

func TestBuildPlan_DateResolution(t *testing.T) {
	tests := []struct {
		name     string
		entry    timeline.Entry
		cfg      Config
		wantDate string
		wantMeta bool
	}{
		{
			name:     "own date wins over default",
			entry:    timeline.Entry{Date: "2024", Title: "Launch"},
			cfg:      Config{DefaultDateLabel: "Date"},
			wantDate: "2024",
			wantMeta: true,
		},
		{
			name:     "default fills missing date",
			entry:    timeline.Entry{Title: "Launch"},
			cfg:      Config{DefaultDateLabel: "Date"},
			wantDate: "Date",
			wantMeta: true,
		},
		{
			name:     "blank default is no date",
			entry:    timeline.Entry{Title: "Launch"},
			cfg:      Config{DefaultDateLabel: "   "},
			wantDate: "",
			wantMeta: true,
		},
		{
			name:     "no date no title no default omits meta",
			entry:    timeline.Entry{Body: "prose"},
			cfg:      Config{},
			wantDate: "",
			wantMeta: false,
		},
		{
			name:     "default alone still shows meta",
			entry:    timeline.Entry{Body: "prose"},
			cfg:      Config{DefaultDateLabel: "Date"},
			wantDate: "Date",
			wantMeta: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildPlan([]timeline.Entry{tt.entry}, tt.cfg)
			if len(plan.Items) != 1 {
				t.Fatalf("got %d items, want 1", len(plan.Items))
			}
			item := plan.Items[0]
			if item.Date != tt.wantDate {
				t.Errorf("item.Date = %q, want %q", item.Date, tt.wantDate)
			}
			if item.ShowMeta != tt.wantMeta {
				t.Errorf("item.ShowMeta = %v, want %v", item.ShowMeta, tt.wantMeta)
			}
		})
	}
}

func TestBuildPlan_Markers(t *testing.T) {
	entries := []timeline.Entry{{Title: "a"}, {Title: "b"}}

	on := BuildPlan(entries, Config{ShowMarkers: true})
	if !on.StartMarker {
		t.Error("StartMarker = false with ShowMarkers on")
	}
	for i, item := range on.Items {
		if !item.Marker {
			t.Errorf("item %d Marker = false with ShowMarkers on", i)
		}
	}

	off := BuildPlan(entries, Config{ShowMarkers: false})
	if off.StartMarker {
		t.Error("StartMarker = true with ShowMarkers off")
	}
	for i, item := range off.Items {
		if item.Marker {
			t.Errorf("item %d Marker = true with ShowMarkers off", i)
		}
	}
}

func TestBuildPlan_BodyInclusion(t *testing.T) {
	entries := []timeline.Entry{
		{Title: "a", Body: "prose"},
		{Title: "b", Body: "  \n "},
		{Title: "c"},
	}
	plan := BuildPlan(entries, Config{})
	if plan.Items[0].Body != "prose" {
		t.Errorf("item 0 Body = %q, want prose source", plan.Items[0].Body)
	}
	for i := 1; i < 3; i++ {
		if plan.Items[i].Body != "" {
			t.Errorf("item %d Body = %q, want omitted", i, plan.Items[i].Body)
		}
	}
}
