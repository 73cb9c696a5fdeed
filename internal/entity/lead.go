package entity

import (
	"context"
	"strings"
	"time"
)

type Lead struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Company        string    `json:"company,omitempty"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Budget         string    `json:"budget,omitempty"` // bucket: "1000-2500", "2500-5000", "5000+", "not-sure"
	ProjectDetails string    `json:"project_details,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
}

// SplitName separa o nome em firstName/lastName: o primeiro token vira o
// primeiro nome e o resto vira sobrenome.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
