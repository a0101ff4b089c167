package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool { return &v }

func TestPreferences_EmailUpdatesEnabled(t *testing.T) {
	tests := []struct {
		name  string
		prefs *Preferences
		want  bool
	}{
		{name: "nil document", prefs: nil, want: false},
		{name: "empty document", prefs: &Preferences{}, want: false},
		{
			name:  "notifications without email branch",
			prefs: &Preferences{Notifications: &NotificationPreferences{}},
			want:  false,
		},
		{
			name: "email branch without updates flag",
			prefs: &Preferences{
				Notifications: &NotificationPreferences{Email: &EmailPreferences{}},
			},
			want: false,
		},
		{
			name: "updates explicitly false",
			prefs: &Preferences{
				Notifications: &NotificationPreferences{Email: &EmailPreferences{Updates: boolPtr(false)}},
			},
			want: false,
		},
		{
			name: "updates explicitly true",
			prefs: &Preferences{
				Notifications: &NotificationPreferences{Email: &EmailPreferences{Updates: boolPtr(true)}},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.prefs.EmailUpdatesEnabled())
		})
	}
}

func TestDispatchReport_Add(t *testing.T) {
	report := &DispatchReport{OpportunityID: "o1"}

	report.Add(CandidateResult{Outcome: OutcomeSent})
	report.Add(CandidateResult{Outcome: OutcomeSkipped, Reason: ReasonNoEmail})
	report.Add(CandidateResult{Outcome: OutcomeSkipped, Reason: ReasonOutsideArea})
	report.Add(CandidateResult{Outcome: OutcomeFailed, Reason: ReasonSendFailed})

	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Len(t, report.Results, 4)
}
