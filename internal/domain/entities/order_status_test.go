package entities

import "testing"

func TestOrderStatus_Style(t *testing.T) {
	cases := []struct {
		status OrderStatus
		label  string
	}{
		{OrderStatusDraft, "Rascunho"},
		{OrderStatusPendingApproval, "Aguardando aprovação"},
		{OrderStatusApproved, "Aprovado"},
		{OrderStatusInProgress, "Em andamento"},
		{OrderStatusCompleted, "Concluído"},
		{OrderStatusCancelled, "Cancelado"},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			if got := tc.status.Style().Label; got != tc.label {
				t.Fatalf("expected %q, got %q", tc.label, got)
			}
			if !tc.status.Known() {
				t.Fatalf("expected %s to be known", tc.status)
			}
		})
	}

	t.Run("unknown falls back to raw label", func(t *testing.T) {
		s := OrderStatus("ON_HOLD")
		style := s.Style()
		if style.Label != "ON_HOLD" || style.Color != statusNeutral {
			t.Fatalf("unexpected fallback style: %+v", style)
		}
		if s.Known() {
			t.Fatalf("expected ON_HOLD to be unknown")
		}
	})
}
