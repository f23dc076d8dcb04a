package service

import "ShowFolio/model"

// Pure permission predicates over already-fetched project data.
// No I/O happens here; callers translate false into a 403.

// CanEdit reports whether the requester may mutate a project. The
// owner's edit right is an explicit grant and does not depend on the
// owner appearing in the contributor list, though project creation
// does insert the owner as an EDITOR contributor.
func CanEdit(ownerEmail string, contributors []model.Contributor, requesterEmail string) bool {
	if requesterEmail == "" {
		return false
	}
	if requesterEmail == ownerEmail {
		return true
	}
	for _, c := range contributors {
		if c.Email == requesterEmail && c.Role == model.ContributorEditor {
			return true
		}
	}
	return false
}

// CanView reports whether the requester may see a project. PUBLIC
// projects are visible to everyone; DRAFT only to the owner and
// contributors of either role; DELETED to no one.
func CanView(visibility, ownerEmail string, contributors []model.Contributor, requesterEmail string) bool {
	switch visibility {
	case model.VisibilityPublic:
		return true
	case model.VisibilityDraft:
		if requesterEmail == "" {
			return false
		}
		if requesterEmail == ownerEmail {
			return true
		}
		for _, c := range contributors {
			if c.Email == requesterEmail {
				return true
			}
		}
		return false
	default:
		return false
	}
}
