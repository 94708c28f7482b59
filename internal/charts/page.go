package charts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/components"
)

// PageTitle es el título de la pestaña del dashboard
const PageTitle = "Dashboard E-commerce"

// Page monta todos los gráficos en una sola página vertical
func Page(figs []Figure, assetsHost string) *components.Page {
	page := components.NewPage()
	page.SetPageTitle(PageTitle)
	if assetsHost != "" {
		page.SetAssetsHost(assetsHost)
	}
	page.SetLayout(components.PageCenterLayout)
	for _, f := range figs {
		page.AddCharts(f.Charter())
	}
	return page
}

// RenderPage escribe el HTML completo de la página
func RenderPage(w io.Writer, figs []Figure, assetsHost string) error {
	return Page(figs, assetsHost).Render(w)
}
