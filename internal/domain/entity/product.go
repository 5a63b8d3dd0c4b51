package entity

// Tipos de producto del ERP. Solo los almacenables participan en el reporte de entregas.
const (
	ProductTypeStockable  = "product" // almacenable
	ProductTypeConsumable = "consu"   // consumible
	ProductTypeService    = "service" // servicio
)
