// Package money formatea precios en rublos para los campos de presentación.
// Los precios del dominio son enteros; aquí solo se agrupan los millares
// al estilo ruso (espacio como separador) y se añade el símbolo ₽.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Russian)

// Format devuelve el precio agrupado con el símbolo de rublo, ej. "12 500 ₽".
func Format(amount int64) string {
	return printer.Sprintf("%d", amount) + " ₽"
}

// FormatPoints devuelve un total de puntos de bonificación, ej. "225 баллов".
func FormatPoints(points int64) string {
	return printer.Sprintf("%d", points) + " баллов"
}
