package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

func TestApprovalLevelFor(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.PayableStatus
		want    domain.ApprovalLevel
		wantOK  bool
	}{
		{
			name:   "pending management requires management level",
			status: domain.PayableStatusPendingManagement,
			want:   domain.ApprovalLevelManagement,
			wantOK: true,
		},
		{
			name:   "pending director requires director level",
			status: domain.PayableStatusPendingDirector,
			want:   domain.ApprovalLevelDirector,
			wantOK: true,
		},
		{
			name:   "pending president requires president level",
			status: domain.PayableStatusPendingPresident,
			want:   domain.ApprovalLevelPresident,
			wantOK: true,
		},
		{
			name:   "approved has no approval level",
			status: domain.PayableStatusApproved,
			wantOK: false,
		},
		{
			name:   "paid has no approval level",
			status: domain.PayableStatusPaid,
			wantOK: false,
		},
		{
			name:   "rejected has no approval level",
			status: domain.PayableStatusRejected,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ApprovalLevelFor(tt.status)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextPayableStatus(t *testing.T) {
	tests := []struct {
		name   string
		status domain.PayableStatus
		want   domain.PayableStatus
		wantOK bool
	}{
		{
			name:   "management approval advances to director",
			status: domain.PayableStatusPendingManagement,
			want:   domain.PayableStatusPendingDirector,
			wantOK: true,
		},
		{
			name:   "director approval advances to president",
			status: domain.PayableStatusPendingDirector,
			want:   domain.PayableStatusPendingPresident,
			wantOK: true,
		},
		{
			name:   "president approval lands on approved",
			status: domain.PayableStatusPendingPresident,
			want:   domain.PayableStatusApproved,
			wantOK: true,
		},
		{
			name:   "approved has no successor via approval",
			status: domain.PayableStatusApproved,
			wantOK: false,
		},
		{
			name:   "rejected is terminal",
			status: domain.PayableStatusRejected,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.NextPayableStatus(tt.status)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayableStatusRank(t *testing.T) {
	assert.Less(t,
		domain.PayableStatusRank(domain.PayableStatusPendingManagement),
		domain.PayableStatusRank(domain.PayableStatusPendingDirector))
	assert.Less(t,
		domain.PayableStatusRank(domain.PayableStatusPendingDirector),
		domain.PayableStatusRank(domain.PayableStatusPendingPresident))
	assert.Less(t,
		domain.PayableStatusRank(domain.PayableStatusPendingPresident),
		domain.PayableStatusRank(domain.PayableStatusApproved))
	assert.Less(t,
		domain.PayableStatusRank(domain.PayableStatusApproved),
		domain.PayableStatusRank(domain.PayableStatusPaid))
	assert.Equal(t, -1, domain.PayableStatusRank(domain.PayableStatusRejected))
	assert.Equal(t, -1, domain.PayableStatusRank(domain.PayableStatus("UNKNOWN")))
}

func TestPayableStatusesForFilter(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   []domain.PayableStatus
		wantOK bool
	}{
		{
			name:   "new maps to the first pending stage",
			token:  "NEW",
			want:   []domain.PayableStatus{domain.PayableStatusPendingManagement},
			wantOK: true,
		},
		{
			name:  "pending covers every pending stage",
			token: "PENDING",
			want: []domain.PayableStatus{
				domain.PayableStatusPendingManagement,
				domain.PayableStatusPendingDirector,
				domain.PayableStatusPendingPresident,
			},
			wantOK: true,
		},
		{
			name:   "authorize maps to the final pending stage",
			token:  "AUTHORIZE",
			want:   []domain.PayableStatus{domain.PayableStatusPendingPresident},
			wantOK: true,
		},
		{
			name:   "exact status passes through",
			token:  "PENDING_DIRECTOR",
			want:   []domain.PayableStatus{domain.PayableStatusPendingDirector},
			wantOK: true,
		},
		{
			name:   "rejected passes through",
			token:  "REJECTED",
			want:   []domain.PayableStatus{domain.PayableStatusRejected},
			wantOK: true,
		},
		{
			name:   "unknown token",
			token:  "BOGUS",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.PayableStatusesForFilter(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayableStatus_IsPending(t *testing.T) {
	assert.True(t, domain.PayableStatusPendingManagement.IsPending())
	assert.True(t, domain.PayableStatusPendingDirector.IsPending())
	assert.True(t, domain.PayableStatusPendingPresident.IsPending())
	assert.False(t, domain.PayableStatusApproved.IsPending())
	assert.False(t, domain.PayableStatusPaid.IsPending())
	assert.False(t, domain.PayableStatusRejected.IsPending())
}
