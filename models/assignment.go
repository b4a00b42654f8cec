package models

type AssignMode string

const (
	AssignModeAdd     AssignMode = "add"
	AssignModeReplace AssignMode = "replace"
)

type UnassignType string

const (
	UnassignAll   UnassignType = "all"
	UnassignCrew  UnassignType = "crew"
	UnassignUsers UnassignType = "users"
)

type AssignCrewRequest struct {
	CrewID   string `json:"crewID" validate:"required"`
	Override bool   `json:"override"`
}

type AssignWorkersRequest struct {
	WorkerIDs []string   `json:"workerIDs" validate:"required,min=1"`
	Mode      AssignMode `json:"mode" validate:"required,oneof=add replace"`
	Override  bool       `json:"override"`
}

type UnassignRequest struct {
	Type      UnassignType `json:"type" validate:"required,oneof=all crew users"`
	WorkerIDs []string     `json:"workerIDs,omitempty"`
}

type OverrideRequest struct {
	Reason      string `json:"reason" validate:"required"`
	AddWorkerID string `json:"addWorkerID,omitempty"`
}
