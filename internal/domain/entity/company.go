package entity

// Company empresa registrada en el API. Capacity es texto libre (ej. "50-100").
type Company struct {
	ID       int64
	Name     string
	Capacity string
	Location string
	Owner    *User // nil cuando el API no lo incluye
}

// CompanyPatch campos editables de una empresa; nil = sin cambio.
type CompanyPatch struct {
	Name     *string
	Capacity *string
	Location *string
}

// Apply devuelve una copia de c con los campos presentes en p.
func (p CompanyPatch) Apply(c Company) Company {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Capacity != nil {
		c.Capacity = *p.Capacity
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	return c
}
