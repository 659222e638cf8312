package models

// Track is the recruitment track a question or applicant belongs to.
type Track string

const (
	TrackGachon   Track = "GACHON"
	TrackBackend  Track = "BACKEND"
	TrackFrontend Track = "FRONTEND"
	TrackAI       Track = "AI"
	TrackDesign   Track = "DESIGN"
)
