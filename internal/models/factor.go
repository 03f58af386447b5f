package models

// FactorRecord is one raw row of the emission-factor reference table. The
// factor is kept as text: rows whose factor does not parse are dropped when
// the index is built, not when the table is read.
type FactorRecord struct {
	Category string `csv:"category" yaml:"category" json:"category"`
	Factor   string `csv:"factor_kg_co2_per_unit" yaml:"factor_kg_co2_per_unit" json:"factor_kg_co2_per_unit"`
}
