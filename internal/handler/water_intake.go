package handler

import (
	"github.com/daytrack/daytrack/internal/server"
	"github.com/daytrack/daytrack/internal/service"
	"github.com/labstack/echo/v4"
)

// WaterIntakeHandler exposes the daily water intake endpoints.
type WaterIntakeHandler struct {
	Handler
	water *service.WaterIntakeService
}

// NewWaterIntakeHandler constructs a WaterIntakeHandler.
func NewWaterIntakeHandler(s *server.Server, water *service.WaterIntakeService) *WaterIntakeHandler {
	return &WaterIntakeHandler{
		Handler: NewHandler(s),
		water:   water,
	}
}

// UpsertWaterIntakeRequest is the POST /water-intake payload.
// Count is a pointer because 0 is a valid count; only null/absent is
// rejected.
type UpsertWaterIntakeRequest struct {
	Date  *string `json:"date" validate:"required,min=1"`
	Count *int64  `json:"count" validate:"required"`
}

func (r *UpsertWaterIntakeRequest) Validate() error {
	return validate.Struct(r)
}

// MessageResponse is a bare acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UpsertWaterIntake creates or overwrites the record for the supplied
// date. Created and updated are deliberately indistinguishable: both
// answer 200.
func (h *WaterIntakeHandler) UpsertWaterIntake(c echo.Context, req *UpsertWaterIntakeRequest) (*MessageResponse, error) {
	if err := h.water.UpsertWaterIntake(c.Request().Context(), *req.Date, *req.Count); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Water intake saved successfully"}, nil
}

// GetWaterIntakeRequest carries the date path parameter of
// GET /water-intake/:date.
type GetWaterIntakeRequest struct {
	Date string `param:"date" validate:"required"`
}

func (r *GetWaterIntakeRequest) Validate() error {
	return validate.Struct(r)
}

// GetWaterIntake answers with the record for the date, or the
// zero-valued placeholder when the date was never written.
func (h *WaterIntakeHandler) GetWaterIntake(c echo.Context, req *GetWaterIntakeRequest) (*service.WaterIntakeRecord, error) {
	return h.water.GetWaterIntake(c.Request().Context(), req.Date)
}

// ListWaterIntakeRequest is the (empty) GET /water-intake payload.
type ListWaterIntakeRequest struct{}

func (r *ListWaterIntakeRequest) Validate() error {
	return nil
}

// ListWaterIntake answers with every record, newest id first.
func (h *WaterIntakeHandler) ListWaterIntake(c echo.Context, req *ListWaterIntakeRequest) ([]service.WaterIntakeRecord, error) {
	return h.water.ListWaterIntake(c.Request().Context())
}
