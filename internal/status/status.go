// Package status mapea cada estado de orden a su presentación de progreso.
// Es una tabla fija, no una máquina de estados.
package status

import "titanpc-store/internal/model"

// Progress es la presentación visual de un estado: porcentaje de la barra,
// clase de color e icono.
type Progress struct {
	Percentage int    `json:"percentage"`
	ColorClass string `json:"colorClass"`
	Icon       string `json:"icon"`
}

// Una orden cancelada vuelve a 0%: la cancelación resetea el progreso visual
// en lugar de congelarlo en el último estado alcanzado. Es intencional.
var table = map[model.OrderStatus]Progress{
	model.StatusConfirmado: {Percentage: 20, ColorClass: "bg-blue-500", Icon: "check-circle"},
	model.StatusPreparando: {Percentage: 40, ColorClass: "bg-yellow-500", Icon: "package"},
	model.StatusEnviado:    {Percentage: 60, ColorClass: "bg-indigo-500", Icon: "truck"},
	model.StatusEnReparto:  {Percentage: 80, ColorClass: "bg-orange-500", Icon: "map-pin"},
	model.StatusEntregado:  {Percentage: 100, ColorClass: "bg-green-500", Icon: "home"},
	model.StatusCancelado:  {Percentage: 0, ColorClass: "bg-red-500", Icon: "x-circle"},
}

// For devuelve la presentación del estado. Un estado desconocido se pinta
// como 0% gris en vez de romper el render.
func For(s model.OrderStatus) Progress {
	if p, ok := table[s]; ok {
		return p
	}
	return Progress{Percentage: 0, ColorClass: "bg-gray-400", Icon: "help-circle"}
}
