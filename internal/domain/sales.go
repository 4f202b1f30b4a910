// Package domain contém as estruturas de dados do domínio da aplicação
package domain

type Deal struct {
	Client string  `json:"client"`
	Value  float64 `json:"value"`
	Status string  `json:"status"` // Ex: Closed Won, In Progress, Closed Lost
}

type Client struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Contact  string `json:"contact"`
}

// SalesRep representa um representante de vendas com seus negócios e clientes.
// O ID é único apenas por convenção do arquivo de dados.
type SalesRep struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Region  string   `json:"region"`
	Deals   []Deal   `json:"deals"`
	Skills  []string `json:"skills"`
	Clients []Client `json:"clients"`
}

type SalesData struct {
	SalesReps []SalesRep `json:"salesReps"`
}

// FindByID retorna o primeiro representante com o ID informado
func (d *SalesData) FindByID(id int) (*SalesRep, bool) {
	for i := range d.SalesReps {
		if d.SalesReps[i].ID == id {
			return &d.SalesReps[i], true
		}
	}
	return nil, false
}

// DuplicateIDs retorna os IDs que aparecem mais de uma vez, na ordem em que repetem
func (d *SalesData) DuplicateIDs() []int {
	seen := make(map[int]bool, len(d.SalesReps))
	duplicates := make([]int, 0)
	for _, rep := range d.SalesReps {
		if seen[rep.ID] {
			duplicates = append(duplicates, rep.ID)
			continue
		}
		seen[rep.ID] = true
	}
	return duplicates
}
