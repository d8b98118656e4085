package http

import (
	"time"

	"fieldops/internal/core/application/usecases/commands"
	"fieldops/internal/core/application/usecases/queries"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/order"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse returns the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// GeolocationPayload carries GPS coordinates captured in the field.
type GeolocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

func (p *GeolocationPayload) toDomain() (*kernel.Geolocation, error) {
	if p == nil {
		return nil, nil
	}

	geo, err := kernel.NewGeolocation(p.Latitude, p.Longitude, p.Accuracy)
	if err != nil {
		return nil, err
	}
	return &geo, nil
}

// CreateOrderRequest is the payload for registering a new order.
type CreateOrderRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	ServicePackage  string `json:"servicePackage"`
	Cluster         string `json:"cluster"`
	STO             string `json:"sto"`
	Priority        string `json:"priority"`
}

// AssignTechnicianRequest is the payload for a manual assignment.
type AssignTechnicianRequest struct {
	TechnicianID string `json:"technicianId"`
	Notes        string `json:"notes"`
}

// AcceptAssignmentRequest is the payload for a technician accepting an order.
type AcceptAssignmentRequest struct {
	Notes    string              `json:"notes"`
	Location *GeolocationPayload `json:"location"`
}

// FieldWorkPayload is a merge patch of technician-captured progress.
// Nil fields leave the stored value untouched; photos are appended.
type FieldWorkPayload struct {
	SurveyCompleted       *bool      `json:"surveyCompleted"`
	SurveyCompletedAt     *time.Time `json:"surveyCompletedAt"`
	SurveyPhotos          []string   `json:"surveyPhotos"`
	InstallationStarted   *bool      `json:"installationStarted"`
	InstallationStartedAt *time.Time `json:"installationStartedAt"`
	InstallationPhotos    []string   `json:"installationPhotos"`
	CustomerSignature     *string    `json:"customerSignature"`
}

func (p *FieldWorkPayload) toDomain() *order.FieldWorkPatch {
	if p == nil {
		return nil
	}

	return &order.FieldWorkPatch{
		SurveyCompleted:       p.SurveyCompleted,
		SurveyCompletedAt:     p.SurveyCompletedAt,
		SurveyPhotos:          p.SurveyPhotos,
		InstallationStarted:   p.InstallationStarted,
		InstallationStartedAt: p.InstallationStartedAt,
		InstallationPhotos:    p.InstallationPhotos,
		CustomerSignature:     p.CustomerSignature,
	}
}

// InstallationPayload is a merge patch of terminal-stage installation data.
type InstallationPayload struct {
	ONTSerialNumber   *string  `json:"ontSerialNumber"`
	SignalStrengthDBm *float64 `json:"signalStrengthDbm"`
	TestResult        *string  `json:"testResult"`
	QualityScore      *int     `json:"qualityScore"`
}

func (p *InstallationPayload) toDomain() *order.InstallationDetailsPatch {
	if p == nil {
		return nil
	}

	return &order.InstallationDetailsPatch{
		ONTSerialNumber:   p.ONTSerialNumber,
		SignalStrengthDBm: p.SignalStrengthDBm,
		TestResult:        p.TestResult,
		QualityScore:      p.QualityScore,
	}
}

// AdvanceOrderRequest is the payload for moving an order forward along the
// main status chain.
type AdvanceOrderRequest struct {
	Status       string               `json:"status"`
	Notes        string               `json:"notes"`
	Location     *GeolocationPayload  `json:"location"`
	FieldWork    *FieldWorkPayload    `json:"fieldWork"`
	Installation *InstallationPayload `json:"installation"`
}

// ReassignTechnicianRequest is the payload for replacing the assigned technician.
type ReassignTechnicianRequest struct {
	TechnicianID string `json:"technicianId"`
	Reason       string `json:"reason"`
}

// SetTechnicianStatusRequest is the payload for the technician's secondary
// status annotation.
type SetTechnicianStatusRequest struct {
	Status   string              `json:"status"`
	Reason   string              `json:"reason"`
	Location *GeolocationPayload `json:"location"`
}

// CancelOrderRequest is the payload for withdrawing an order.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// BulkAssignRequest is the payload for assigning several orders to one technician.
type BulkAssignRequest struct {
	OrderIDs     []string `json:"orderIds"`
	TechnicianID string   `json:"technicianId"`
	Notes        string   `json:"notes"`
}

// BulkAssignResultResponse reports the outcome for one order of a bulk assignment.
type BulkAssignResultResponse struct {
	OrderID string `json:"orderId"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func bulkAssignResponse(results []commands.BulkAssignResult) []BulkAssignResultResponse {
	response := make([]BulkAssignResultResponse, 0, len(results))
	for _, result := range results {
		entry := BulkAssignResultResponse{
			OrderID: result.OrderID.String(),
			Success: result.Err == nil,
		}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}
		response = append(response, entry)
	}
	return response
}

// CreateTechnicianRequest is the payload for registering a technician.
type CreateTechnicianRequest struct {
	AccountID   string   `json:"accountId"`
	EmployeeID  string   `json:"employeeId"`
	Name        string   `json:"name"`
	Cluster     string   `json:"cluster"`
	Skills      []string `json:"skills"`
	Territory   []string `json:"territory"`
	WorkStart   string   `json:"workStart"`
	WorkEnd     string   `json:"workEnd"`
	WorkingDays []int    `json:"workingDays"`
}

// SetAvailabilityRequest is the payload for toggling a technician's availability.
type SetAvailabilityRequest struct {
	Available bool                `json:"available"`
	Location  *GeolocationPayload `json:"location"`
}

// OrderResponse is the JSON shape of one order on the read side.
type OrderResponse struct {
	ID                     string                 `json:"id"`
	SequenceNumber         int64                  `json:"sequenceNumber"`
	CustomerName           string                 `json:"customerName"`
	CustomerPhone          string                 `json:"customerPhone,omitempty"`
	CustomerAddress        string                 `json:"customerAddress"`
	ServicePackage         string                 `json:"servicePackage,omitempty"`
	Cluster                string                 `json:"cluster"`
	STO                    string                 `json:"sto"`
	Priority               string                 `json:"priority"`
	Status                 string                 `json:"status"`
	TechnicianID           string                 `json:"technicianId,omitempty"`
	TechnicianName         string                 `json:"technicianName,omitempty"`
	AssignedAt             *time.Time             `json:"assignedAt,omitempty"`
	AcceptedAt             *time.Time             `json:"acceptedAt,omitempty"`
	TechnicianStatus       string                 `json:"technicianStatus,omitempty"`
	TechnicianStatusReason string                 `json:"technicianStatusReason,omitempty"`
	History                []HistoryEntryResponse `json:"history,omitempty"`
}

// HistoryEntryResponse is one audit-trail entry in JSON form.
type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	ActorID   string    `json:"actorId"`
	Timestamp time.Time `json:"timestamp"`
	Notes     string    `json:"notes,omitempty"`
}

func orderResponseFromReadModel(model queries.GetOrderQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:                     model.ID.String(),
		SequenceNumber:         model.SequenceNumber,
		CustomerName:           model.CustomerName,
		CustomerPhone:          model.CustomerPhone,
		CustomerAddress:        model.CustomerAddress,
		ServicePackage:         model.ServicePackage,
		Cluster:                model.Cluster,
		STO:                    model.STO,
		Priority:               model.Priority,
		Status:                 model.Status,
		TechnicianName:         model.TechnicianName,
		AssignedAt:             model.AssignedAt,
		AcceptedAt:             model.AcceptedAt,
		TechnicianStatus:       model.TechnicianStatus,
		TechnicianStatusReason: model.TechnicianStatusReason,
	}

	if model.TechnicianID != nil {
		response.TechnicianID = model.TechnicianID.String()
	}

	response.History = make([]HistoryEntryResponse, 0, len(model.History))
	for _, entry := range model.History {
		response.History = append(response.History, HistoryEntryResponse{
			Status:    entry.Status,
			ActorID:   entry.ActorID.String(),
			Timestamp: entry.Timestamp,
			Notes:     entry.Notes,
		})
	}

	return response
}

func activeOrdersResponse(models []queries.GetActiveOrdersQueryResponse) []OrderResponse {
	response := make([]OrderResponse, 0, len(models))
	for _, model := range models {
		response = append(response, OrderResponse{
			ID:              model.ID.String(),
			SequenceNumber:  model.SequenceNumber,
			CustomerName:    model.CustomerName,
			CustomerAddress: model.CustomerAddress,
			Cluster:         model.Cluster,
			STO:             model.STO,
			Priority:        model.Priority,
			Status:          model.Status,
			TechnicianName:  model.TechnicianName,
			AssignedAt:      model.AssignedAt,
		})
	}
	return response
}

// TechnicianResponse is the JSON shape of one assignable technician.
type TechnicianResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employeeId"`
	Name             string   `json:"name"`
	Cluster          string   `json:"cluster"`
	Skills           []string `json:"skills"`
	TotalAssignments int      `json:"totalAssignments"`
}

func assignableTechniciansResponse(models []queries.GetAssignableTechniciansQueryResponse) []TechnicianResponse {
	response := make([]TechnicianResponse, 0, len(models))
	for _, model := range models {
		response = append(response, TechnicianResponse{
			ID:               model.ID.String(),
			EmployeeID:       model.EmployeeID,
			Name:             model.Name,
			Cluster:          model.Cluster,
			Skills:           model.Skills,
			TotalAssignments: model.TotalAssignments,
		})
	}
	return response
}

// TechnicianAnalyticsResponse is the JSON shape of a technician's performance
// read model.
type TechnicianAnalyticsResponse struct {
	TechnicianID               string    `json:"technicianId"`
	EmployeeID                 string    `json:"employeeId"`
	Name                       string    `json:"name"`
	TotalAssignments           int       `json:"totalAssignments"`
	CompletedAssignments       int       `json:"completedAssignments"`
	ActiveAssignments          int       `json:"activeAssignments"`
	AverageCompletionTimeHours float64   `json:"averageCompletionTimeHours"`
	CustomerRating             float64   `json:"customerRating"`
	LastUpdated                time.Time `json:"lastUpdated"`
}

func technicianAnalyticsResponse(model queries.GetTechnicianAnalyticsQueryResponse) TechnicianAnalyticsResponse {
	return TechnicianAnalyticsResponse{
		TechnicianID:               model.TechnicianID.String(),
		EmployeeID:                 model.EmployeeID,
		Name:                       model.Name,
		TotalAssignments:           model.TotalAssignments,
		CompletedAssignments:       model.CompletedAssignments,
		ActiveAssignments:          model.ActiveAssignments,
		AverageCompletionTimeHours: model.AverageCompletionTimeHours,
		CustomerRating:             model.CustomerRating,
		LastUpdated:                model.LastUpdated,
	}
}
