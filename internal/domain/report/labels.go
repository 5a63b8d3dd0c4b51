package report

import "github.com/jhoicas/reportes-ventas/internal/domain/entity"

var orderStatusLabels = map[string]string{
	entity.SaleOrderStateDraft:  "Quotation",
	entity.SaleOrderStateSent:   "Quotation Sent",
	entity.SaleOrderStateSale:   "Confirmed",
	entity.SaleOrderStateDone:   "Locked",
	entity.SaleOrderStateCancel: "Cancelled",
}

var pickingStatusLabels = map[string]string{
	entity.PickingStateDraft:     "Draft",
	entity.PickingStateWaiting:   "Waiting",
	entity.PickingStateConfirmed: "Waiting",
	entity.PickingStateAssigned:  "Ready",
	entity.PickingStateDone:      "Delivered",
	entity.PickingStateCancel:    "Cancelled",
}

// OrderStatusLabel etiqueta de la columna Status para una fila de pedido.
// Estados desconocidos se muestran tal cual.
func OrderStatusLabel(state string) string {
	if l, ok := orderStatusLabels[state]; ok {
		return l
	}
	return state
}

// PickingStatusLabel etiqueta de la columna Status para una fila de entrega.
func PickingStatusLabel(state string) string {
	if l, ok := pickingStatusLabels[state]; ok {
		return l
	}
	return state
}
