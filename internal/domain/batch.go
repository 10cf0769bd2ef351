package domain

// Phase is a stage of the session workflow.
type Phase string

const (
	PhaseInput      Phase = "input"
	PhaseReview     Phase = "review"
	PhaseProcessing Phase = "processing"
	PhaseComplete   Phase = "complete"
)

// Status values for ProcessResult.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// ProcessResult records the outcome of processing one video: the files
// that were written, or the error that stopped it. Created at save
// time, never mutated afterwards.
type ProcessResult struct {
	VideoID string
	URL     string
	Status  string
	Message string
	Title   string
	Files   []string
}

// IsSuccess reports whether the entry was fully processed.
func (r ProcessResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// BatchState carries one session's videos and results through the
// input → review → processing → complete workflow. It is owned by the
// session service and passed explicitly; nothing else mutates it.
type BatchState struct {
	Phase   Phase
	Pending []*VideoMeta
	Results []ProcessResult
}

// NewBatchState returns a state in the input phase.
func NewBatchState() *BatchState {
	return &BatchState{Phase: PhaseInput}
}

// Reset returns the state to the input phase, dropping all videos.
func (s *BatchState) Reset() {
	s.Phase = PhaseInput
	s.Pending = nil
	s.Results = nil
}

// ToReview moves to the review phase with the fetched videos.
func (s *BatchState) ToReview(videos []*VideoMeta) {
	s.Pending = videos
	s.Phase = PhaseReview
}

// ToProcessing moves to the processing phase.
func (s *BatchState) ToProcessing() {
	s.Phase = PhaseProcessing
	s.Results = nil
}

// ToComplete moves to the complete phase with the per-video results.
func (s *BatchState) ToComplete(results []ProcessResult) {
	s.Results = results
	s.Phase = PhaseComplete
}

// SelectedVideos returns the videos marked for processing, in order.
func (s *BatchState) SelectedVideos() []*VideoMeta {
	var selected []*VideoMeta
	for _, v := range s.Pending {
		if v.Selected {
			selected = append(selected, v)
		}
	}
	return selected
}
