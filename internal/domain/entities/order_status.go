package entities

// OrderStatus represents the lifecycle of a service order (ordem de serviço).
//
// Domain notes:
//   - The set is closed; Style must be extended together with the constants.
//   - Statuses introduced by the order service before this package is updated
//     still render, with the raw value as label and a neutral color.
type OrderStatus string

const (
	OrderStatusDraft           OrderStatus = "DRAFT"
	OrderStatusPendingApproval OrderStatus = "PENDING_APPROVAL"
	OrderStatusApproved        OrderStatus = "APPROVED"
	OrderStatusInProgress      OrderStatus = "IN_PROGRESS"
	OrderStatusCompleted       OrderStatus = "COMPLETED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
)

// RGB is a display color.
type RGB struct {
	R, G, B int
}

type StatusStyle struct {
	Label string
	Color RGB
}

var statusNeutral = RGB{R: 107, G: 114, B: 128}

func (s OrderStatus) Style() StatusStyle {
	switch s {
	case OrderStatusDraft:
		return StatusStyle{Label: "Rascunho", Color: statusNeutral}
	case OrderStatusPendingApproval:
		return StatusStyle{Label: "Aguardando aprovação", Color: RGB{R: 245, G: 158, B: 11}}
	case OrderStatusApproved:
		return StatusStyle{Label: "Aprovado", Color: RGB{R: 16, G: 185, B: 129}}
	case OrderStatusInProgress:
		return StatusStyle{Label: "Em andamento", Color: RGB{R: 59, G: 130, B: 246}}
	case OrderStatusCompleted:
		return StatusStyle{Label: "Concluído", Color: RGB{R: 34, G: 197, B: 94}}
	case OrderStatusCancelled:
		return StatusStyle{Label: "Cancelado", Color: RGB{R: 239, G: 68, B: 68}}
	default:
		return StatusStyle{Label: string(s), Color: statusNeutral}
	}
}

// Known reports whether s is one of the declared statuses.
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusDraft, OrderStatusPendingApproval, OrderStatusApproved,
		OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
