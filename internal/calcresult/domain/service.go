package domain

import (
	"context"

	"github.com/amanahworks/folio/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
)

type SaveResultRequest struct {
	Variant string
	UserID  *snowflake.ID
	Inputs  map[string]any
	Summary map[string]any
}

type ListResultRequest struct {
	PageToken string
	PageSize  int32
	Variant   string
}

type ListResultResponse struct {
	pagination.PageInfo
	Results []CalculatorResult `json:"results"`
}

type Service interface {
	Save(ctx context.Context, req SaveResultRequest) (CalculatorResult, error)
	List(ctx context.Context, req ListResultRequest) (ListResultResponse, error)
}
