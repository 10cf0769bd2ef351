package domain

import "testing"

func TestBatchState_Transitions(t *testing.T) {
	s := NewBatchState()
	if s.Phase != PhaseInput {
		t.Fatalf("new state phase = %s, want input", s.Phase)
	}

	videos := []*VideoMeta{
		{VideoID: "aaaaaaaaaaa", Selected: true},
		{VideoID: "bbbbbbbbbbb", Selected: false},
		{VideoID: "ccccccccccc", Selected: true},
	}

	s.ToReview(videos)
	if s.Phase != PhaseReview {
		t.Errorf("phase = %s, want review", s.Phase)
	}
	if len(s.Pending) != 3 {
		t.Errorf("pending = %d, want 3", len(s.Pending))
	}

	selected := s.SelectedVideos()
	if len(selected) != 2 {
		t.Fatalf("selected = %d, want 2", len(selected))
	}
	if selected[0].VideoID != "aaaaaaaaaaa" || selected[1].VideoID != "ccccccccccc" {
		t.Errorf("selection order broken: %s, %s", selected[0].VideoID, selected[1].VideoID)
	}

	s.ToProcessing()
	if s.Phase != PhaseProcessing {
		t.Errorf("phase = %s, want processing", s.Phase)
	}

	results := []ProcessResult{
		{VideoID: "aaaaaaaaaaa", Status: StatusSuccess},
		{VideoID: "ccccccccccc", Status: StatusError, Message: "boom"},
	}
	s.ToComplete(results)
	if s.Phase != PhaseComplete {
		t.Errorf("phase = %s, want complete", s.Phase)
	}
	if !s.Results[0].IsSuccess() {
		t.Error("first result should be success")
	}
	if s.Results[1].IsSuccess() {
		t.Error("second result should not be success")
	}

	s.Reset()
	if s.Phase != PhaseInput || s.Pending != nil || s.Results != nil {
		t.Errorf("Reset() left state dirty: %+v", s)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "[00:00]"},
		{5, "[00:05]"},
		{65, "[01:05]"},
		{3725, "[62:05]"},
		{-3, "[00:00]"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.seconds); got != tt.want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestTranscriptText(t *testing.T) {
	entries := []TranscriptEntry{
		{Timestamp: "[00:00]", Text: "hello there"},
		{Timestamp: "[00:05]", Text: "  general kenobi  "},
		{Timestamp: "[00:10]", Text: ""},
	}

	got := TranscriptText(entries)
	want := "hello there general kenobi"
	if got != want {
		t.Errorf("TranscriptText() = %q, want %q", got, want)
	}
}
