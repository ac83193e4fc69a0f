package domain

// PartnerCategory classifies a show partner.
type PartnerCategory string

const (
	PartnerSponsor     PartnerCategory = "SPONSOR"
	PartnerInstitution PartnerCategory = "INSTITUTION"
	PartnerMedia       PartnerCategory = "MEDIA"
	PartnerAssociation PartnerCategory = "ASSOCIATION"
)

func ParsePartnerCategory(raw string) (PartnerCategory, bool) {
	switch PartnerCategory(raw) {
	case PartnerSponsor, PartnerInstitution, PartnerMedia, PartnerAssociation:
		return PartnerCategory(raw), true
	}
	return "", false
}
