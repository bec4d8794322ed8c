package scene

// InfoPanel is the popup model. It stays as is until another body is
// picked or it is hidden.
type InfoPanel struct {
	Visible  bool
	Body     BodyID
	Name     string
	Diameter string
	Distance string
	Rotation string
}

func (p *InfoPanel) Show(b *Body) {
	p.Visible = true
	p.Body = b.ID
	p.Name = b.Name()
	p.Diameter = b.Info.Diameter
	p.Distance = b.Info.Distance
	p.Rotation = b.Info.Rotation
}

func (p *InfoPanel) Hide() { p.Visible = false }

// Lines returns the panel text, one field per line.
func (p *InfoPanel) Lines() []string {
	return []string{
		"Name: " + p.Name,
		"Diameter: " + p.Diameter,
		"Distance from Sun: " + p.Distance,
		"Rotation Period: " + p.Rotation,
	}
}
