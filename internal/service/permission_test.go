package service

import (
	"ShowFolio/model"
	"testing"
)

func TestCanEdit(t *testing.T) {
	contributors := []model.Contributor{
		{Email: "editor@test.com", Role: model.ContributorEditor},
		{Email: "viewer@test.com", Role: model.ContributorViewer},
	}

	testCases := []struct {
		name      string
		requester string
		expected  bool
	}{
		{"owner", "owner@test.com", true},
		{"editor contributor", "editor@test.com", true},
		{"viewer contributor", "viewer@test.com", false},
		{"stranger", "other@test.com", false},
		{"anonymous", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanEdit("owner@test.com", contributors, tc.requester)
			if got != tc.expected {
				t.Fatalf("CanEdit(%q) = %v, want %v", tc.requester, got, tc.expected)
			}
		})
	}
}

// The owner's edit right does not depend on the contributor list.
func TestCanEditOwnerWithoutContributorRow(t *testing.T) {
	if !CanEdit("owner@test.com", nil, "owner@test.com") {
		t.Fatal("owner denied edit with empty contributor list")
	}
}

func TestCanView(t *testing.T) {
	contributors := []model.Contributor{
		{Email: "editor@test.com", Role: model.ContributorEditor},
		{Email: "viewer@test.com", Role: model.ContributorViewer},
	}

	testCases := []struct {
		name       string
		visibility string
		requester  string
		expected   bool
	}{
		{"public anonymous", model.VisibilityPublic, "", true},
		{"public stranger", model.VisibilityPublic, "other@test.com", true},
		{"draft anonymous", model.VisibilityDraft, "", false},
		{"draft owner", model.VisibilityDraft, "owner@test.com", true},
		{"draft editor", model.VisibilityDraft, "editor@test.com", true},
		{"draft viewer", model.VisibilityDraft, "viewer@test.com", true},
		{"draft stranger", model.VisibilityDraft, "other@test.com", false},
		{"deleted owner", model.VisibilityDeleted, "owner@test.com", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CanView(tc.visibility, "owner@test.com", contributors, tc.requester)
			if got != tc.expected {
				t.Fatalf("CanView(%s, %q) = %v, want %v", tc.visibility, tc.requester, got, tc.expected)
			}
		})
	}
}
