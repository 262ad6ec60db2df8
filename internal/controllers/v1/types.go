package v1

import (
	"github.com/finance-visualizer/backend/internal/service"
	"github.com/finance-visualizer/backend/internal/uuid"
)

// Controller holds the handlers of API v1.
type Controller struct {
	Service *service.Transactions
}

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
