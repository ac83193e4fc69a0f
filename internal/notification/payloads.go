package notification

// Outbox record kinds. The kind selects the template the deliverer renders.
const (
	KindApplicationValidated = "show.application.validated"
	KindApplicationRefused   = "show.application.refused"
	KindAnimalAssigned       = "animals.assigned"
)

type applicationValidatedPayload struct {
	ApplicationID string `json:"applicationId"`
	ExhibitorID   string `json:"exhibitorId"`
	ContactName   string `json:"contactName"`
	StructureName string `json:"structureName"`
}

type applicationRefusedPayload struct {
	ApplicationID  string `json:"applicationId"`
	ContactName    string `json:"contactName"`
	StructureName  string `json:"structureName"`
	RefusalMessage string `json:"refusalMessage"`
}

type animalAssignedPayload struct {
	AnimalID    string `json:"animalId"`
	AnimalName  string `json:"animalName"`
	ManagerName string `json:"managerName"`
}
