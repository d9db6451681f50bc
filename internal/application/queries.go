package application

import (
	"github.com/bnema/twmj/internal/domain"
)

type ClassifyResult struct {
	Filename string
	Size     int
	Image    domain.Image
	Decks    []domain.ClassifiedDeck
}

type ScanStatus string

const (
	ScanStatusSuccess ScanStatus = "success"
	ScanStatusError   ScanStatus = "error"
)

// ScanResult is the reply to one frame: the stabilized decks on success, or a
// message describing why that frame alone was rejected.
type ScanResult struct {
	Status  ScanStatus
	Decks   []domain.ClassifiedDeck
	Message string
}

type ScanSessionState string

const (
	ScanSessionOpen   ScanSessionState = "open"
	ScanSessionClosed ScanSessionState = "closed"
)
