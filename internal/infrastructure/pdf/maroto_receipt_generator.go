// Package pdf implementa el comprobante PDF del pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: EcoMarket  │  N° Pedido + Fecha                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre / teléfono / email                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | Precio | Importe                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Баллы списано / ИТОГО                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: punto de entrega + horario                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ecomarket/storefront-api/internal/application/ports"
	"github.com/ecomarket/storefront-api/internal/domain/entity"
	"github.com/ecomarket/storefront-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 125, Blue: 50} // verde eco
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ports.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceipt genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	order *entity.Order,
	point *entity.PickupPoint,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("EcoMarket — comprobante de pedido", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(pickupFooterRow(order, point))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y número de pedido + fecha (der).
func headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("02.01.2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("EcoMarket", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Магазин эко-товаров за баллы", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ПОДТВЕРЖДЕНИЕ ЗАКАЗА", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Дата: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente del formulario de pedido.
func customerRow(order *entity.Order) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ПОЛУЧАТЕЛЬ", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Тел: %s   |   Email: %s",
				order.UserName, order.Phone, order.Email,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int, alignTo align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignTo, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("Кол-во", 2, align.Left),
		header("Товар", 5, align.Left),
		header("Цена", 2, align.Right),
		header("Сумма", 3, align.Right),
	)
}

func tableItemRows(items []entity.CartLine) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d шт.", it.Quantity), props.Text{Size: 8, Top: 1})),
			col.New(5).Add(text.New(it.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(money.Format(it.Price), props.Text{Size: 8, Top: 1, Align: align.Right})),
			col.New(3).Add(text.New(money.Format(it.Price*it.Quantity), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func totalsRows(order *entity.Order) []core.Row {
	totalLine := func(label, value string, bold bool) core.Row {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return row.New(6).Add(
			col.New(9).Add(text.New(label, props.Text{Size: 9, Top: 1, Align: align.Right, Style: style})),
			col.New(3).Add(text.New(value, props.Text{Size: 9, Top: 1, Align: align.Right, Style: style})),
		)
	}
	return []core.Row{
		totalLine("Подытог:", money.Format(order.Subtotal), false),
		totalLine("Списано баллов:", money.FormatPoints(order.BonusUsed), false),
		totalLine("ИТОГО К ОПЛАТЕ:", money.Format(order.FinalPrice), true),
	}
}

// pickupFooterRow: punto de entrega; si el id ya no existe en la config se
// muestra el id crudo.
func pickupFooterRow(order *entity.Order, point *entity.PickupPoint) core.Row {
	name := order.PickupPoint
	hours := ""
	if point != nil {
		name = point.FullName()
		hours = point.WorkingHours
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ПУНКТ ВЫДАЧИ", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   %s", name, hours), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}
