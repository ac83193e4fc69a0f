package email

const (
	subjectApplicationValidated = "Votre candidature au salon est acceptée"
	subjectApplicationRefused   = "Votre candidature au salon n'a pas été retenue"
	subjectAnimalAssignedFmt    = "%s vous a été confié"
)
