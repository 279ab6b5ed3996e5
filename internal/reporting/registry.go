// Package reporting defines the dynamic report registry, translates JSON
// filters into SQL and renders stored results in the supported formats.
package reporting

import (
	_ "embed"
	"fmt"
	"strings"

	apperrors "myjobs/internal/errors"

	"gopkg.in/yaml.v3"
)

// ColumnType is the value type of a report column
type ColumnType string

const (
	TypeString ColumnType = "string"
	TypeInt    ColumnType = "int"
	TypeDate   ColumnType = "date"
	TypeBool   ColumnType = "bool"
	TypeTags   ColumnType = "tags"
)

// Column is one selectable field of a data type
type Column struct {
	Field      string     `yaml:"field" json:"field"`
	Column     string     `yaml:"column" json:"-"`
	LinkColumn string     `yaml:"link_column" json:"-"`
	Type       ColumnType `yaml:"type" json:"type"`
	Label      string     `yaml:"label" json:"label"`
	Filterable bool       `yaml:"filterable" json:"filterable"`
	Default    bool       `yaml:"default" json:"default"`
}

// Header returns the column label, humanizing the field name when none is set
func (c Column) Header() string {
	if c.Label != "" {
		return c.Label
	}
	return Humanize(c.Field)
}

// Join is an extra table joined into a data type's query
type Join struct {
	Table string `yaml:"table"`
	Alias string `yaml:"alias"`
	On    string `yaml:"on"`
	Type  string `yaml:"type"`
}

// TagSource names the many-to-many table linking rows to tags
type TagSource struct {
	JoinTable  string `yaml:"join_table"`
	ForeignKey string `yaml:"foreign_key"`
}

// DataType is one reportable table
type DataType struct {
	Name           string    `yaml:"name" json:"name"`
	Description    string    `yaml:"description" json:"description"`
	Table          string    `yaml:"table" json:"-"`
	Alias          string    `yaml:"alias" json:"-"`
	CompanyColumn  string    `yaml:"company_column" json:"-"`
	ArchivedColumn string    `yaml:"archived_column" json:"-"`
	DefaultOrder   string    `yaml:"default_order" json:"default_order"`
	Joins          []Join    `yaml:"joins" json:"-"`
	Tags           TagSource `yaml:"tags" json:"-"`
	Columns        []Column  `yaml:"columns" json:"columns"`
}

// Column looks up a column by field name
func (d *DataType) Column(field string) (Column, bool) {
	for _, c := range d.Columns {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

// DefaultValues lists the fields selected when a report names none
func (d *DataType) DefaultValues() []string {
	var out []string
	for _, c := range d.Columns {
		if c.Default {
			out = append(out, c.Field)
		}
	}
	return out
}

// ResolveColumns maps requested field names to columns, preserving order
func (d *DataType) ResolveColumns(values []string) ([]Column, error) {
	if len(values) == 0 {
		values = d.DefaultValues()
	}
	cols := make([]Column, 0, len(values))
	for _, v := range values {
		c, ok := d.Column(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidColumn, v)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

// ReportType groups data types
type ReportType struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	DataTypes   []string `yaml:"data_types" json:"data_types"`
}

// Registry is the set of known report and data types
type Registry struct {
	ReportTypes []ReportType `yaml:"report_types"`
	DataTypes   []DataType   `yaml:"data_types"`
}

//go:embed registry.yaml
var registryYAML []byte

// LoadRegistry parses the embedded registry
func LoadRegistry() (*Registry, error) {
	return ParseRegistry(registryYAML)
}

// ParseRegistry parses and checks a registry document
func ParseRegistry(data []byte) (*Registry, error) {
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse report registry: %w", err)
	}
	for _, rt := range reg.ReportTypes {
		for _, name := range rt.DataTypes {
			if _, err := reg.DataType(name); err != nil {
				return nil, fmt.Errorf("report type %q references unknown data type %q", rt.Name, name)
			}
		}
	}
	for _, dt := range reg.DataTypes {
		if dt.Table == "" || dt.Alias == "" || dt.CompanyColumn == "" {
			return nil, fmt.Errorf("data type %q is missing table, alias or company column", dt.Name)
		}
		for _, c := range dt.Columns {
			if c.Type != TypeTags && c.Column == "" {
				return nil, fmt.Errorf("data type %q column %q has no column", dt.Name, c.Field)
			}
		}
	}
	return &reg, nil
}

// ReportType looks up a report type by name
func (r *Registry) ReportType(name string) (*ReportType, error) {
	for i := range r.ReportTypes {
		if r.ReportTypes[i].Name == name {
			return &r.ReportTypes[i], nil
		}
	}
	return nil, apperrors.ErrReportTypeNotFound
}

// DataType looks up a data type by name
func (r *Registry) DataType(name string) (*DataType, error) {
	for i := range r.DataTypes {
		if r.DataTypes[i].Name == name {
			return &r.DataTypes[i], nil
		}
	}
	return nil, apperrors.ErrDataTypeNotFound
}

// DataTypesFor lists the data types of a report type
func (r *Registry) DataTypesFor(reportType string) ([]DataType, error) {
	rt, err := r.ReportType(reportType)
	if err != nil {
		return nil, err
	}
	out := make([]DataType, 0, len(rt.DataTypes))
	for _, name := range rt.DataTypes {
		dt, err := r.DataType(name)
		if err != nil {
			return nil, err
		}
		out = append(out, *dt)
	}
	return out, nil
}

// Humanize turns "job_applications" into "Job Applications"
func Humanize(field string) string {
	parts := strings.Fields(strings.ReplaceAll(field, "_", " "))
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
