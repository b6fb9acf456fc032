// Package inventoryv1 holds the JSON wire types of the inventory HTTP API.
package inventoryv1

const (
	PartTypeInHouse    = "in-house"
	PartTypeOutsourced = "outsourced"
)

type Part struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`

	// Type is "in-house" or "outsourced"; exactly one of MachineID and
	// CompanyName is set to match it.
	Type        string  `json:"type"`
	MachineID   *int    `json:"machine_id,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
}

type PartRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`

	Type        string `json:"type"`
	MachineID   *int   `json:"machine_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`

	AssociatedParts []Part `json:"associated_parts"`
}

type ProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`

	PartIDs []int `json:"part_ids"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Health struct {
	Status   string `json:"status"`
	Parts    int    `json:"parts"`
	Products int    `json:"products"`
}
