package console

import (
	"fmt"
	"strings"

	"github.com/diillson/segment-report-go/internal/shared/types"
	"go.uber.org/zap"
)

// JSONConsole implementa o ConsoleInterface emitindo uma linha JSON por evento
// com o zap. Spinners e barras de progresso viram eventos ou no-ops.
type JSONConsole struct {
	logger *zap.Logger
}

// NewJSONConsole cria um JSONConsole com a configuração de produção do zap.
func NewJSONConsole() (*JSONConsole, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("error building zap logger: %w", err)
	}
	return &JSONConsole{logger: logger}, nil
}

// NewJSONConsoleWithLogger usa um logger já configurado.
func NewJSONConsoleWithLogger(logger *zap.Logger) *JSONConsole {
	return &JSONConsole{logger: logger}
}

// Sync descarrega os buffers do logger.
func (c *JSONConsole) Sync() error {
	return c.logger.Sync()
}

func (c *JSONConsole) Print(a ...interface{}) {
	c.logger.Info(strings.TrimSpace(fmt.Sprint(a...)))
}

func (c *JSONConsole) Printf(format string, a ...interface{}) {
	c.logger.Info(strings.TrimSpace(fmt.Sprintf(format, a...)))
}

func (c *JSONConsole) Println(a ...interface{}) {
	c.logger.Info(strings.TrimSpace(fmt.Sprint(a...)))
}

func (c *JSONConsole) LogInfo(format string, a ...interface{}) {
	c.logger.Info(fmt.Sprintf(format, a...))
}

func (c *JSONConsole) LogWarning(format string, a ...interface{}) {
	c.logger.Warn(fmt.Sprintf(format, a...))
}

func (c *JSONConsole) LogError(format string, a ...interface{}) {
	c.logger.Error(fmt.Sprintf(format, a...))
}

func (c *JSONConsole) LogSuccess(format string, a ...interface{}) {
	c.logger.Info(fmt.Sprintf(format, a...), zap.Bool("success", true))
}

type jsonStatus struct {
	logger *zap.Logger
}

func (c *JSONConsole) Status(message string) types.StatusHandle {
	c.logger.Debug(message, zap.String("event", "status"))
	return &jsonStatus{logger: c.logger}
}

func (h *jsonStatus) Update(message string) {
	h.logger.Debug(message, zap.String("event", "status"))
}

func (h *jsonStatus) Stop() {}

type jsonProgress struct{}

func (c *JSONConsole) ProgressWithTotal(total int) types.ProgressHandle {
	return jsonProgress{}
}

func (jsonProgress) Increment() {}
func (jsonProgress) Stop()      {}

// CreateTable devolve uma tabela que, ao renderizar, registra cada linha como um evento.
func (c *JSONConsole) CreateTable() types.TableInterface {
	return &jsonTable{logger: c.logger}
}

type jsonTable struct {
	logger  *zap.Logger
	columns []string
	rows    [][]string
}

func (t *jsonTable) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

func (t *jsonTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

// Render registra as linhas e devolve string vazia, já que nada vai para o terminal.
func (t *jsonTable) Render() string {
	for _, row := range t.rows {
		fields := make([]zap.Field, 0, len(row))
		for i, cell := range row {
			name := fmt.Sprintf("col%d", i)
			if i < len(t.columns) {
				name = t.columns[i]
			}
			fields = append(fields, zap.String(name, cell))
		}
		t.logger.Info("table row", fields...)
	}
	return ""
}

func (c *JSONConsole) DisplayRevenueBars(title string, bars []types.RevenueBar) {
	fields := make([]zap.Field, 0, len(bars))
	for _, b := range bars {
		fields = append(fields, zap.Float64(b.Label, b.Revenue))
	}
	c.logger.Info(title, fields...)
}
