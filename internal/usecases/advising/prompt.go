package advising

import (
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const promptPreamble = "You are a sales analytics expert. Analyze the following sales data and respond to the question:"

// BuildPrompt junta a instrução fixa, o snapshot completo dos dados e a pergunta.
// O arquivo inteiro vai em todo prompt, sem limite de tamanho.
func BuildPrompt(data *domain.SalesData, question string) (string, error) {
	salesDataJSON, err := utils.IndentJSON(data)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s\n\nSales Data: %s\n\nQuestion: %s", promptPreamble, salesDataJSON, question), nil
}
