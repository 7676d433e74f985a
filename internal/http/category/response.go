package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmcardoso/penny/internal/category"
)

type categoryResponse struct {
	ID                uuid.UUID                `json:"id"`
	Name              string                   `json:"name"`
	Type              category.Type            `json:"type"`
	Icon              string                   `json:"icon,omitempty"`
	Color             string                   `json:"color,omitempty"`
	Description       string                   `json:"description,omitempty"`
	TransactionType   category.TransactionType `json:"transactionType"`
	IsRecurring       bool                     `json:"isRecurring"`
	Frequency         *category.Frequency      `json:"frequency,omitempty"`
	DefaultAmount     *int64                   `json:"defaultAmount,omitempty"`
	IsActive          bool                     `json:"isActive"`
	LastProcessedDate *time.Time               `json:"lastProcessedDate,omitempty"`
	NextProcessedDate *time.Time               `json:"nextProcessedDate,omitempty"`
	Budget            *int64                   `json:"budget,omitempty"`
	IsDefault         bool                     `json:"isDefault"`
	CreatedBy         *uuid.UUID               `json:"createdBy,omitempty"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         *time.Time               `json:"updatedAt,omitempty"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:                c.ID,
		Name:              c.Name,
		Type:              c.Type,
		Icon:              c.Icon,
		Color:             c.Color,
		Description:       c.Description,
		TransactionType:   c.TransactionType,
		IsRecurring:       c.IsRecurring,
		Frequency:         c.Frequency,
		DefaultAmount:     c.DefaultAmount,
		IsActive:          c.IsActive,
		LastProcessedDate: c.LastProcessedDate,
		NextProcessedDate: c.NextProcessedDate,
		Budget:            c.Budget,
		IsDefault:         c.IsDefault,
		CreatedBy:         c.CreatedBy,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func toResponseList(cats []*category.Category) []categoryResponse {
	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = toResponse(c)
	}

	return resp
}
