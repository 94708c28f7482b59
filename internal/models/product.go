package models

// Nombres de columnas del CSV de e-commerce
const (
	ColTitulo         = "Título"
	ColNota           = "Nota"
	ColNAvaliacoes    = "N_Avaliações"
	ColDesconto       = "Desconto"
	ColMarca          = "Marca"
	ColMaterial       = "Material"
	ColGenero         = "Gênero"
	ColTemporada      = "Temporada"
	ColQtdVendidos    = "Qtd_Vendidos"
	ColPreco          = "Preço"
	ColMarcaCod       = "Marca_Cod"
	ColMaterialCod    = "Material_Cod"
	ColTemporadaCod   = "Temporada_Cod"
	ColQtdVendidosCod = "Qtd_Vendidos_Cod"
)

// Product representa una fila del dataset
type Product struct {
	Titulo         string `json:"titulo" csv:"Título"`
	Nota           Number `json:"nota" csv:"Nota"`
	NAvaliacoes    Number `json:"n_avaliacoes" csv:"N_Avaliações"`
	Desconto       Number `json:"desconto" csv:"Desconto"`
	Marca          string `json:"marca" csv:"Marca"`
	Material       string `json:"material" csv:"Material"`
	Genero         string `json:"genero" csv:"Gênero"`
	Temporada      string `json:"temporada" csv:"Temporada"`
	QtdVendidos    string `json:"qtd_vendidos" csv:"Qtd_Vendidos"`
	Preco          Number `json:"preco" csv:"Preço"`
	MarcaCod       Number `json:"marca_cod" csv:"Marca_Cod"`
	MaterialCod    Number `json:"material_cod" csv:"Material_Cod"`
	TemporadaCod   Number `json:"temporada_cod" csv:"Temporada_Cod"`
	QtdVendidosCod Number `json:"qtd_vendidos_cod" csv:"Qtd_Vendidos_Cod"`
}

// NumericFields mapea cada columna numérica a su valor en la fila
var NumericFields = map[string]func(*Product) float64{
	ColNota:           func(p *Product) float64 { return p.Nota.Float() },
	ColNAvaliacoes:    func(p *Product) float64 { return p.NAvaliacoes.Float() },
	ColDesconto:       func(p *Product) float64 { return p.Desconto.Float() },
	ColPreco:          func(p *Product) float64 { return p.Preco.Float() },
	ColMarcaCod:       func(p *Product) float64 { return p.MarcaCod.Float() },
	ColMaterialCod:    func(p *Product) float64 { return p.MaterialCod.Float() },
	ColTemporadaCod:   func(p *Product) float64 { return p.TemporadaCod.Float() },
	ColQtdVendidosCod: func(p *Product) float64 { return p.QtdVendidosCod.Float() },
}

// TextFields mapea cada columna de texto a su valor en la fila
var TextFields = map[string]func(*Product) string{
	ColTitulo:      func(p *Product) string { return p.Titulo },
	ColMarca:       func(p *Product) string { return p.Marca },
	ColMaterial:    func(p *Product) string { return p.Material },
	ColGenero:      func(p *Product) string { return p.Genero },
	ColTemporada:   func(p *Product) string { return p.Temporada },
	ColQtdVendidos: func(p *Product) string { return p.QtdVendidos },
}
