package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/parts-inventory/internal/model"
	inventoryv1 "github.com/you-humble/parts-inventory/pkg/api/inventory/v1"
)

func PartFromModel(p *model.Part) inventoryv1.Part {
	out := inventoryv1.Part{
		ID:    p.ID(),
		Name:  p.Name,
		Price: p.Price,
		Stock: p.Stock,
		Min:   p.Min,
		Max:   p.Max,
		Type:  partTypeFromModel(p.Kind()),
	}

	switch p.Kind() {
	case model.PartKindInHouse:
		id, _ := p.MachineID()
		out.MachineID = lo.ToPtr(id)
	case model.PartKindOutsourced:
		name, _ := p.CompanyName()
		out.CompanyName = lo.ToPtr(name)
	case model.PartKindUnknown:
	}

	return out
}

func PartsFromModel(parts []*model.Part) []inventoryv1.Part {
	return lo.Map(parts, func(p *model.Part, _ int) inventoryv1.Part {
		return PartFromModel(p)
	})
}

func PartRequestToParams(req inventoryv1.PartRequest) model.PartParams {
	return model.PartParams{
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Min:         req.Min,
		Max:         req.Max,
		Kind:        model.ParsePartKind(req.Type),
		MachineID:   req.MachineID,
		CompanyName: req.CompanyName,
	}
}

func partTypeFromModel(k model.PartKind) string {
	switch k {
	case model.PartKindInHouse:
		return inventoryv1.PartTypeInHouse
	case model.PartKindOutsourced:
		return inventoryv1.PartTypeOutsourced
	default:
		return ""
	}
}
