package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/repository"
	"github.com/diillson/segment-report-go/internal/domain/service"
	"github.com/disintegration/imaging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Cores das modalidades no gráfico empilhado.
var (
	boletoColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	cardColor   = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	otherColor  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 4 * vg.Inch
	barWidth    = 28
)

// ChartRepositoryImpl implementa o ChartRepository com gonum/plot.
type ChartRepositoryImpl struct{}

// NewChartRepository cria uma nova implementação do ChartRepository.
func NewChartRepository() repository.ChartRepository {
	return &ChartRepositoryImpl{}
}

// RenderChart gera o gráfico de barras empilhadas (boleto, cartão, outras) por
// tier e grava em <outputDir>/payment_methods_<YYYY>-<MM>.png, sobrescrevendo
// o arquivo do mesmo período.
func (r *ChartRepositoryImpl) RenderChart(model entity.ReportModel, outputDir string, period time.Time) (string, error) {
	series := model.ChartSeries()
	if len(series.Labels) == 0 {
		return "", fmt.Errorf("cannot render chart: %w", errEmptyModel)
	}

	p, err := buildPlot(series, period)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating chart directory '%s': %w", outputDir, err)
	}

	canvas := vgimg.New(chartWidth, chartHeight)
	p.Draw(draw.New(canvas))

	path := service.ChartPath(outputDir, period)
	if err := imaging.Save(canvas.Image(), path); err != nil {
		return "", fmt.Errorf("error writing chart file: %w", err)
	}
	return path, nil
}

func buildPlot(series entity.ChartSeries, period time.Time) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Receita por Modalidade - %s", period.Format("January 2006"))
	p.Y.Label.Text = "Receita (R$)"
	p.Legend.Top = true

	boleto, err := plotter.NewBarChart(plotter.Values(series.Boleto), barWidth)
	if err != nil {
		return nil, fmt.Errorf("error building boleto bars: %w", err)
	}
	boleto.Color = boletoColor
	boleto.LineStyle.Width = 0

	card, err := plotter.NewBarChart(plotter.Values(series.Card), barWidth)
	if err != nil {
		return nil, fmt.Errorf("error building card bars: %w", err)
	}
	card.Color = cardColor
	card.LineStyle.Width = 0
	card.StackOn(boleto)

	// Outras fica sobre a base boleto+cartão.
	other, err := plotter.NewBarChart(plotter.Values(series.Other), barWidth)
	if err != nil {
		return nil, fmt.Errorf("error building other bars: %w", err)
	}
	other.Color = otherColor
	other.LineStyle.Width = 0
	other.StackOn(card)

	p.Add(boleto, card, other)
	p.Legend.Add(entity.CategoryBoleto.Label(), boleto)
	p.Legend.Add(entity.CategoryCard.Label(), card)
	p.Legend.Add(entity.CategoryOther.Label(), other)

	p.NominalX(series.Labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4

	p.Y.Min = 0
	if top := series.MaxStack(); top > 0 {
		p.Y.Max = top * 1.1
	} else {
		p.Y.Max = 1
	}
	return p, nil
}
