package partfile

// File is the decoded content of a part definition file.
type File struct {
	Materials []MaterialRecord `yaml:"materials" toml:"materials"`
	Parts     []PartRecord     `yaml:"parts" toml:"parts"`
}

// MaterialRecord adds or overrides a catalog material.
type MaterialRecord struct {
	Name    string  `yaml:"name" toml:"name"`
	Density float64 `yaml:"density" toml:"density"`
	Cost    float64 `yaml:"cost" toml:"cost"`
}

// PartRecord describes one part.
type PartRecord struct {
	Name         string       `yaml:"name" toml:"name"`
	Size         float64      `yaml:"size" toml:"size"`
	AddMass      float64      `yaml:"add_mass" toml:"add_mass"`
	AddCost      float64      `yaml:"add_cost" toml:"add_cost"`
	ReservedCost float64      `yaml:"reserved_cost" toml:"reserved_cost"`
	Volumes      []NodeRecord `yaml:"volumes" toml:"volumes"`
}

// NodeRecord describes a volume node. Exactly one of Density, Mass and
// Material specifies the content unless Component is set. Cost is the cost
// per volume next to Density and the total cost next to Mass.
type NodeRecord struct {
	Name       string         `yaml:"name" toml:"name"`
	Volume     float64        `yaml:"volume" toml:"volume"`
	Cost       *float64       `yaml:"cost" toml:"cost"`
	Density    *float64       `yaml:"density" toml:"density"`
	Mass       *float64       `yaml:"mass" toml:"mass"`
	Material   string         `yaml:"material" toml:"material"`
	Surface    *SurfaceRecord `yaml:"surface" toml:"surface"`
	Subvolumes []NodeRecord   `yaml:"subvolumes" toml:"subvolumes"`
	Count      float64        `yaml:"count" toml:"count"`

	Component string  `yaml:"component" toml:"component"`
	Energy    float64 `yaml:"energy" toml:"energy"`
	Area      float64 `yaml:"area" toml:"area"`
}

// SurfaceRecord describes the shell of a node.
type SurfaceRecord struct {
	Area      float64 `yaml:"area" toml:"area"`
	Thickness float64 `yaml:"thickness" toml:"thickness"`
	Material  string  `yaml:"material" toml:"material"`
}

func (n NodeRecord) hasContent() bool {
	return n.Density != nil || n.Mass != nil || n.Material != "" || n.Cost != nil
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
