package notification

import (
	"testing"
	"time"

	"unifix/models"

	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestIsSentToFirmsTransition(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		before   models.Report
		after    models.Report
		expected bool
	}{
		{
			name:     "status change to senttofirms",
			before:   models.Report{Status: "Open"},
			after:    models.Report{Status: "senttofirms"},
			expected: true,
		},
		{
			name:     "status change to spaced variant",
			before:   models.Report{Status: "Open"},
			after:    models.Report{Status: "Sent To Firms"},
			expected: true,
		},
		{
			name:     "status change to unrelated value",
			before:   models.Report{Status: "Open"},
			after:    models.Report{Status: "In Progress"},
			expected: false,
		},
		{
			name:     "equal statuses with no other signal",
			before:   models.Report{Status: "senttofirms", Title: "a"},
			after:    models.Report{Status: "senttofirms", Title: "b"},
			expected: false,
		},
		{
			name:     "flag flips false to true",
			before:   models.Report{Status: "Open"},
			after:    models.Report{Status: "Open", SentToFirms: true},
			expected: true,
		},
		{
			name:     "flag already true",
			before:   models.Report{SentToFirms: true},
			after:    models.Report{SentToFirms: true},
			expected: false,
		},
		{
			name:     "timestamp appears",
			before:   models.Report{Status: "Open"},
			after:    models.Report{Status: "Open", SentToFirmsAt: timePtr(now)},
			expected: true,
		},
		{
			name:     "timestamp already present",
			before:   models.Report{SentToFirmsAt: timePtr(now)},
			after:    models.Report{SentToFirmsAt: timePtr(now.Add(time.Hour))},
			expected: false,
		},
		{
			name:     "no signal at all",
			before:   models.Report{Status: "Open"},
			after:    models.Report{Status: "Open"},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isSentToFirmsTransition(&tc.before, &tc.after))
		})
	}
}

func TestStatusChanged(t *testing.T) {
	assert.True(t, statusChanged(&models.Report{Status: "Open"}, &models.Report{Status: "In Progress"}))
	assert.False(t, statusChanged(&models.Report{Status: "Open"}, &models.Report{Status: "Open"}))
	assert.False(t, statusChanged(&models.Report{}, &models.Report{Status: "Open"}))
	assert.False(t, statusChanged(&models.Report{Status: "Open"}, &models.Report{}))
}

func TestSelectionChanged(t *testing.T) {
	assert.True(t, selectionChanged(&models.Report{}, &models.Report{SelectedApplicationID: "app1"}))
	assert.True(t, selectionChanged(&models.Report{SelectedApplicationID: "app1"}, &models.Report{SelectedApplicationID: "app2"}))
	assert.False(t, selectionChanged(&models.Report{SelectedApplicationID: "app1"}, &models.Report{SelectedApplicationID: "app1"}))
	// Clearing a selection does not notify.
	assert.False(t, selectionChanged(&models.Report{SelectedApplicationID: "app1"}, &models.Report{}))
}

func TestNewlyAssignedWorkers(t *testing.T) {
	tests := []struct {
		name     string
		before   []string
		after    []string
		expected []string
	}{
		{"first assignment", nil, []string{"w1"}, []string{"w1"}},
		{"one added", []string{"w1"}, []string{"w1", "w2"}, []string{"w2"}},
		{"several added", []string{"w1"}, []string{"w3", "w1", "w2"}, []string{"w3", "w2"}},
		{"reorder only", []string{"w1", "w2"}, []string{"w2", "w1"}, nil},
		{"removal only", []string{"w1", "w2"}, []string{"w1"}, nil},
		{"both absent", nil, nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := models.Report{AssignedWorkerIDs: tc.before}
			after := models.Report{AssignedWorkerIDs: tc.after}
			assert.Equal(t, tc.expected, newlyAssignedWorkers(&before, &after))
		})
	}
}

func TestTimestampEdgeFiresOnceAcrossSequence(t *testing.T) {
	now := time.Now()

	// w0 -> w1 introduces the timestamp, w1 -> w2 rewrites it.
	w0 := (*time.Time)(nil)
	w1 := timePtr(now)
	w2 := timePtr(now)

	assert.True(t, timestampEdge(w0, w1))
	assert.False(t, timestampEdge(w1, w2))
	assert.False(t, timestampEdge(w1, nil))
}

func TestTerminalStatusEdgeFiresOnceAcrossSequence(t *testing.T) {
	assert.True(t, terminalStatusEdge("pending", "approved", "approved"))
	assert.False(t, terminalStatusEdge("approved", "approved", "approved"))
	assert.False(t, terminalStatusEdge("pending", "rejected", "approved"))
	assert.True(t, terminalStatusEdge("", "approved", "approved"))
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, "senttofirms", normalizeStatus("  SentToFirms "))
	assert.Equal(t, "sent to firms", normalizeStatus("Sent To Firms"))
	assert.Equal(t, "", normalizeStatus(""))
}
