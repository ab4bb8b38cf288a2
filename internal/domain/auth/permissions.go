package auth

import "context"

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

const (
	PermScorecardsRead      = "scorecards.read"
	PermScorecardsWrite     = "scorecards.write"
	PermTargetsRead         = "targets.read"
	PermTargetsWrite        = "targets.write"
	PermPeerFeedbackRead    = "peerfeedback.read"
	PermPeerFeedbackWrite   = "peerfeedback.write"
	PermPeerFeedbackRequest = "peerfeedback.request"
	PermRecognitionRead     = "recognition.read"
	PermRecognitionCompute  = "recognition.compute"
	PermReviewsGenerate     = "reviews.generate"
	PermReportsRead         = "reports.read"
	PermReportsTeam         = "reports.team"
	PermNotificationsRead   = "notifications.read"
	PermAdminMetrics        = "admin.metrics"
)

var RolePermissions = map[string][]string{
	RoleEmployee: {
		PermScorecardsRead,
		PermScorecardsWrite,
		PermTargetsRead,
		PermPeerFeedbackRead,
		PermPeerFeedbackWrite,
		PermRecognitionRead,
		PermReportsRead,
		PermNotificationsRead,
	},
	RoleManager: {
		PermScorecardsRead,
		PermScorecardsWrite,
		PermTargetsRead,
		PermTargetsWrite,
		PermPeerFeedbackRead,
		PermPeerFeedbackWrite,
		PermPeerFeedbackRequest,
		PermRecognitionRead,
		PermRecognitionCompute,
		PermReviewsGenerate,
		PermReportsRead,
		PermReportsTeam,
		PermNotificationsRead,
	},
	RoleAdmin: {
		PermScorecardsRead,
		PermScorecardsWrite,
		PermTargetsRead,
		PermTargetsWrite,
		PermPeerFeedbackRead,
		PermPeerFeedbackWrite,
		PermPeerFeedbackRequest,
		PermRecognitionRead,
		PermRecognitionCompute,
		PermReviewsGenerate,
		PermReportsRead,
		PermReportsTeam,
		PermNotificationsRead,
		PermAdminMetrics,
	},
}

// Rules answers permission checks from the static role table. Roles are
// fixed, so no database round trip is involved.
type Rules struct{}

func (Rules) HasPermission(_ context.Context, roleName, permission string) (bool, error) {
	for _, p := range RolePermissions[roleName] {
		if p == permission {
			return true, nil
		}
	}
	return false, nil
}
