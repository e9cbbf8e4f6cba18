package domain

import (
	"context"
	"time"
)

type TrackRequest struct {
	Path      string `json:"path"`
	Referrer  string `json:"referrer"`
	UserAgent string `json:"-"`
}

type SummaryRequest struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

type SummaryResponse struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Paths []PathTotal `json:"paths"`
}

type Service interface {
	Track(ctx context.Context, req TrackRequest) error
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
