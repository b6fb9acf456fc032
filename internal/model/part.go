package model

type PartKind int8

const (
	PartKindUnknown PartKind = iota
	// Manufactured internally, tracked by machine id.
	PartKindInHouse
	// Purchased from a named company.
	PartKindOutsourced
)

func (k PartKind) String() string {
	switch k {
	case PartKindInHouse:
		return "in-house"
	case PartKindOutsourced:
		return "outsourced"
	default:
		return "unknown"
	}
}

// ParsePartKind is the inverse of PartKind.String.
func ParsePartKind(s string) PartKind {
	switch s {
	case "in-house":
		return PartKindInHouse
	case "outsourced":
		return PartKindOutsourced
	default:
		return PartKindUnknown
	}
}

// Part is an inventory part. The kind tag decides which of machineID and
// companyName is meaningful; callers switch on Kind().
//
// Stock/Min/Max consistency is not checked here, see PartParams.Validate.
type Part struct {
	id int

	Name  string
	Price float64
	Stock int
	Min   int
	Max   int

	kind        PartKind
	machineID   int
	companyName string
}

func NewInHouse(id int, name string, price float64, stock, min, max, machineID int) *Part {
	return &Part{
		id:        id,
		Name:      name,
		Price:     price,
		Stock:     stock,
		Min:       min,
		Max:       max,
		kind:      PartKindInHouse,
		machineID: machineID,
	}
}

func NewOutsourced(id int, name string, price float64, stock, min, max int, companyName string) *Part {
	return &Part{
		id:          id,
		Name:        name,
		Price:       price,
		Stock:       stock,
		Min:         min,
		Max:         max,
		kind:        PartKindOutsourced,
		companyName: companyName,
	}
}

func (p *Part) ID() int        { return p.id }
func (p *Part) Kind() PartKind { return p.kind }

// MachineID reports false for outsourced parts.
func (p *Part) MachineID() (int, bool) {
	if p.kind != PartKindInHouse {
		return 0, false
	}
	return p.machineID, true
}

func (p *Part) SetMachineID(machineID int) bool {
	if p.kind != PartKindInHouse {
		return false
	}
	p.machineID = machineID
	return true
}

// CompanyName reports false for in-house parts.
func (p *Part) CompanyName() (string, bool) {
	if p.kind != PartKindOutsourced {
		return "", false
	}
	return p.companyName, true
}

func (p *Part) SetCompanyName(name string) bool {
	if p.kind != PartKindOutsourced {
		return false
	}
	p.companyName = name
	return true
}

// SourceLabel is the caption shown next to the variant field.
func (p *Part) SourceLabel() string {
	switch p.kind {
	case PartKindInHouse:
		return "Machine ID"
	case PartKindOutsourced:
		return "Company"
	default:
		return ""
	}
}
