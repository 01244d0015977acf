package entity

// BlockKind identifica o tipo de bloco do documento.
type BlockKind int

const (
	BlockTitle BlockKind = iota
	BlockHeader
	BlockSpacer
	BlockTable
	BlockPageBreak
	BlockImage
)

// TableRow é uma linha rótulo/valor da tabela de indicadores.
type TableRow struct {
	Label string
	Value string
}

// DocumentBlock is one element of the document flow. Only the fields relevant
// to Kind are set: Text for titles and headers, Height (points) for spacers,
// Rows for tables, ImagePath/Width/ImageHeight (mm) for images.
type DocumentBlock struct {
	Kind        BlockKind
	Text        string
	Height      float64
	Rows        []TableRow
	ImagePath   string
	Width       float64
	ImageHeight float64
}

// PageGeometry descreve o tamanho da página e as margens, em milímetros.
type PageGeometry struct {
	Orientation  string
	Size         string
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

// LandscapeA4 is the report page: A4 landscape with 10 mm margins.
func LandscapeA4() PageGeometry {
	return PageGeometry{
		Orientation:  "L",
		Size:         "A4",
		Width:        297,
		Height:       210,
		MarginLeft:   10,
		MarginRight:  10,
		MarginTop:    10,
		MarginBottom: 10,
	}
}

// UsableWidth é a largura útil entre as margens.
func (g PageGeometry) UsableWidth() float64 {
	return g.Width - g.MarginLeft - g.MarginRight
}

// Document é a lista ordenada de blocos e a geometria de página do relatório.
type Document struct {
	Geometry PageGeometry
	Blocks   []DocumentBlock
}
