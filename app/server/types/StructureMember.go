package types

type StructureMember struct {
	ID       string `json:"id"`
	Position string `json:"position"` // 职位
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Level    string `json:"level"` // leader / executive / staff / division
}

type StructurePatch struct {
	Position *string `json:"position"`
	Name     *string `json:"name"`
	Icon     *string `json:"icon"`
	Level    *string `json:"level"`
}

func (p *StructurePatch) Apply(member *StructureMember) {
	if p.Position != nil {
		member.Position = *p.Position
	}
	if p.Name != nil {
		member.Name = *p.Name
	}
	if p.Icon != nil {
		member.Icon = *p.Icon
	}
	if p.Level != nil {
		member.Level = *p.Level
	}
}
